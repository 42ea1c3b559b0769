package export

import (
	"bytes"
	"fmt"
	"io"

	"github.com/jung-kurt/gofpdf"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/thenoetrevino/jot/internal/models"
	"github.com/thenoetrevino/jot/internal/view"
)

// Page geometry in millimetres
const (
	pageMargin  = 15.0
	accentWidth = 1.5
	chipHeight  = 7.0
	lineHeight  = 5.5
	thumbHeight = 25.0
)

// imageTypes are the photo formats gofpdf can embed
var imageTypes = map[string]string{
	"image/png":  "PNG",
	"image/jpeg": "JPG",
	"image/gif":  "GIF",
}

func writePDF(w io.Writer, rows []view.Row, opts Options) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(pageMargin, pageMargin, pageMargin)
	pdf.SetAutoPageBreak(true, pageMargin)
	pdf.SetTitle(opts.Title, true)
	if opts.Author != "" {
		pdf.SetAuthor(opts.Author, true)
	}
	pdf.AddPage()

	// core fonts are cp1252; translate user text so accents survive
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(0, 10, tr(opts.Title))
	pdf.Ln(10)
	pdf.SetFont("Arial", "", 9)
	setTextColor(pdf, "#666666")
	byline := fmt.Sprintf("Generated %s", opts.GeneratedAt.Format("2006-01-02 15:04"))
	if opts.Author != "" {
		byline += " by " + opts.Author
	}
	pdf.Cell(0, 6, tr(byline))
	pdf.Ln(10)

	if len(rows) == 0 {
		pdf.SetFont("Arial", "I", 11)
		pdf.Cell(0, 8, "No tasks")
	}

	for i, row := range rows {
		writePDFTask(pdf, tr, row.Task, i)
		if err := pdf.Error(); err != nil {
			return fmt.Errorf("rendering pdf: %w", err)
		}
	}

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("writing pdf: %w", err)
	}
	return nil
}

// writePDFTask draws one task: accent bar, category chip, due and priority
// labels, the text in its font color and the photo thumbnail
func writePDFTask(pdf *gofpdf.Fpdf, tr func(string) string, t models.Task, index int) {
	left, _, right, _ := pdf.GetMargins()
	pageW, _ := pdf.GetPageSize()
	contentX := left + accentWidth + 2
	contentW := pageW - right - contentX

	top := pdf.GetY()
	pdf.SetX(contentX)

	// header line
	pdf.SetFont("Arial", "B", 10)
	setFillColor(pdf, t.CategoryColor)
	pdf.SetTextColor(255, 255, 255)
	pdf.CellFormat(pdf.GetStringWidth(string(t.Category))+6, chipHeight, tr(string(t.Category)), "", 0, "C", true, 0, "")

	pdf.SetFont("Arial", "", 10)
	setTextColor(pdf, "#444444")
	if due := view.DueLabel(t); due != "" {
		pdf.CellFormat(pdf.GetStringWidth(due)+6, chipHeight, due, "", 0, "L", false, 0, "")
	}
	setTextColor(pdf, view.AccentColor(t))
	pdf.SetFont("Arial", "B", 10)
	pdf.CellFormat(0, chipHeight, string(t.Priority), "", 1, "L", false, 0, "")

	// body
	pdf.SetX(contentX)
	pdf.SetFont("Arial", "", 11)
	setTextColor(pdf, t.FontColor)
	pdf.MultiCell(contentW, lineHeight, tr(t.Text), "", "L", false)

	if t.Photo != nil {
		writePDFPhoto(pdf, t.Photo, fmt.Sprintf("photo-%d", index), contentX)
	}

	bottom := pdf.GetY()
	// the accent bar only spans the task when it did not cross a page break
	if bottom > top {
		setFillColor(pdf, view.AccentColor(t))
		pdf.Rect(left, top, accentWidth, bottom-top, "F")
	}
	pdf.Ln(4)
}

func writePDFPhoto(pdf *gofpdf.Fpdf, photo *models.Photo, name string, x float64) {
	imageType, ok := imageTypes[photo.MIME]
	if !ok {
		photoMarker(pdf, x, "[photo: "+photo.MIME+"]")
		return
	}

	opts := gofpdf.ImageOptions{ImageType: imageType, ReadDpi: false}
	pdf.RegisterImageOptionsReader(name, opts, bytes.NewReader(photo.Data))
	if pdf.Err() {
		// an undecodable image must not take the whole document down
		pdf.ClearError()
		photoMarker(pdf, x, "[photo could not be embedded]")
		return
	}

	pdf.Ln(1)
	pdf.ImageOptions(name, x, pdf.GetY(), 0, thumbHeight, true, opts, 0, "")
}

func photoMarker(pdf *gofpdf.Fpdf, x float64, text string) {
	pdf.SetX(x)
	pdf.SetFont("Arial", "I", 9)
	setTextColor(pdf, "#666666")
	pdf.CellFormat(0, lineHeight, text, "", 1, "L", false, 0, "")
}

// rgb255 parses a #rrggbb color, falling back to black
func rgb255(hex string) (int, int, int) {
	c, err := colorful.Hex(hex)
	if err != nil {
		return 0, 0, 0
	}
	r, g, b := c.RGB255()
	return int(r), int(g), int(b)
}

func setFillColor(pdf *gofpdf.Fpdf, hex string) {
	pdf.SetFillColor(rgb255(hex))
}

func setTextColor(pdf *gofpdf.Fpdf, hex string) {
	pdf.SetTextColor(rgb255(hex))
}
