package colors

// ColorScheme defines all configurable color values
type ColorScheme struct {
	// Preset name ("default" or "monochrome")
	Preset string `yaml:"preset"`

	// Primary accent color (used for selections, titles, highlights)
	Accent string `yaml:"accent"`

	// Semantic colors
	Create string `yaml:"create"` // Green - add form
	Edit   string `yaml:"edit"`   // Blue - inline edit row
	Delete string `yaml:"delete"` // Red - delete confirmation

	// UI element colors
	RowBorder      string `yaml:"row_border"`
	SelectedBorder string `yaml:"selected_border"`
	SelectedBg     string `yaml:"selected_bg"`

	// Text colors
	Title  string `yaml:"title"`
	Subtle string `yaml:"subtle"` // Muted/placeholder text
	Normal string `yaml:"normal"`

	// Notification colors (foreground/background pairs)
	InfoFg    string `yaml:"info_fg"`
	InfoBg    string `yaml:"info_bg"`
	WarningFg string `yaml:"warning_fg"`
	WarningBg string `yaml:"warning_bg"`
	ErrorFg   string `yaml:"error_fg"`
	ErrorBg   string `yaml:"error_bg"`

	// Status bar
	StatusBarBg   string `yaml:"status_bar_bg"`
	StatusBarText string `yaml:"status_bar_text"`
}

// GetPreset returns a preset color scheme by name
func GetPreset(name string) *ColorScheme {
	switch name {
	case "monochrome":
		return Monochrome()
	default:
		return Default()
	}
}

// ApplyDefaults fills in missing color values using the preset as base
func (c *ColorScheme) ApplyDefaults() {
	c.MergeFrom(*GetPreset(c.Preset))
}

// MergeFrom copies every non-empty field of other into the empty fields of c
func (c *ColorScheme) MergeFrom(other ColorScheme) {
	fill := func(dst *string, src string) {
		if *dst == "" {
			*dst = src
		}
	}
	fill(&c.Preset, other.Preset)
	fill(&c.Accent, other.Accent)
	fill(&c.Create, other.Create)
	fill(&c.Edit, other.Edit)
	fill(&c.Delete, other.Delete)
	fill(&c.RowBorder, other.RowBorder)
	fill(&c.SelectedBorder, other.SelectedBorder)
	fill(&c.SelectedBg, other.SelectedBg)
	fill(&c.Title, other.Title)
	fill(&c.Subtle, other.Subtle)
	fill(&c.Normal, other.Normal)
	fill(&c.InfoFg, other.InfoFg)
	fill(&c.InfoBg, other.InfoBg)
	fill(&c.WarningFg, other.WarningFg)
	fill(&c.WarningBg, other.WarningBg)
	fill(&c.ErrorFg, other.ErrorFg)
	fill(&c.ErrorBg, other.ErrorBg)
	fill(&c.StatusBarBg, other.StatusBarBg)
	fill(&c.StatusBarText, other.StatusBarText)
}

// Override copies every non-empty field of other over c
func (c *ColorScheme) Override(other ColorScheme) {
	merged := other
	merged.MergeFrom(*c)
	*c = merged
}
