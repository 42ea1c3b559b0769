package models

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

// Photo is an image embedded in a task. It is stored as a data URL so the
// whole list stays a single JSON document.
type Photo struct {
	MIME string
	Data []byte
}

// NewPhoto builds a photo from raw bytes, sniffing the content type.
func NewPhoto(data []byte) *Photo {
	return &Photo{MIME: SniffMIME(data), Data: data}
}

// SniffMIME returns the detected media type of data without parameters
func SniffMIME(data []byte) string {
	mime := http.DetectContentType(data)
	if i := strings.IndexByte(mime, ';'); i >= 0 {
		mime = mime[:i]
	}
	return strings.TrimSpace(mime)
}

// Size returns the decoded image size in bytes
func (p *Photo) Size() int {
	if p == nil {
		return 0
	}
	return len(p.Data)
}

// IsImage reports whether both the declared and the sniffed type are images
func (p *Photo) IsImage() bool {
	if p == nil || len(p.Data) == 0 {
		return false
	}
	return strings.HasPrefix(p.MIME, "image/") && strings.HasPrefix(SniffMIME(p.Data), "image/")
}

// DataURL encodes the photo as data:<mime>;base64,<payload>
func (p *Photo) DataURL() string {
	return "data:" + p.MIME + ";base64," + base64.StdEncoding.EncodeToString(p.Data)
}

// ParseDataURL decodes a base64 data URL into a Photo
func ParseDataURL(s string) (*Photo, error) {
	rest, ok := strings.CutPrefix(s, "data:")
	if !ok {
		return nil, ErrNotDataURL
	}
	meta, payload, ok := strings.Cut(rest, ",")
	if !ok {
		return nil, ErrNotDataURL
	}
	mime, ok := strings.CutSuffix(meta, ";base64")
	if !ok {
		return nil, ErrNotDataURL
	}
	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotDataURL, err)
	}
	return &Photo{MIME: mime, Data: data}, nil
}

// MarshalJSON writes the photo as its data URL string
func (p Photo) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.DataURL())
}

// UnmarshalJSON reads a data URL string
func (p *Photo) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	parsed, err := ParseDataURL(s)
	if err != nil {
		return err
	}
	*p = *parsed
	return nil
}
