package colors

// ColorScheme defines the colors used by human-readable CLI output
type ColorScheme struct {
	// Preset name (e.g., "default", "monochrome")
	Preset string `yaml:"preset"`

	// Primary accent color (used for field labels, borders, headings)
	Accent string `yaml:"accent"`

	// Text colors
	Title  string `yaml:"title"`
	Subtle string `yaml:"subtle"` // Muted text such as "(none)" and timestamps
	Normal string `yaml:"normal"`

	// Notification colors (foreground/background pairs)
	InfoFg    string `yaml:"info_fg"`
	InfoBg    string `yaml:"info_bg"`
	WarningFg string `yaml:"warning_fg"`
	WarningBg string `yaml:"warning_bg"`
	ErrorFg   string `yaml:"error_fg"`
	ErrorBg   string `yaml:"error_bg"`
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
	preset := GetPreset(c.Preset)
	if c.Preset == "" {
		c.Preset = preset.Preset
	}
	c.fillFrom(preset, false)
}

// MergeFrom overrides colors with every non-empty value in other
func (c *ColorScheme) MergeFrom(other ColorScheme) {
	if other.Preset != "" {
		c.Preset = other.Preset
	}
	c.fillFrom(&other, true)
}

// fillFrom copies colors from src. With override set, non-empty src values
// replace existing ones; otherwise only empty fields are filled.
func (c *ColorScheme) fillFrom(src *ColorScheme, override bool) {
	pairs := []struct {
		dst *string
		src string
	}{
		{&c.Accent, src.Accent},
		{&c.Title, src.Title},
		{&c.Subtle, src.Subtle},
		{&c.Normal, src.Normal},
		{&c.InfoFg, src.InfoFg},
		{&c.InfoBg, src.InfoBg},
		{&c.WarningFg, src.WarningFg},
		{&c.WarningBg, src.WarningBg},
		{&c.ErrorFg, src.ErrorFg},
		{&c.ErrorBg, src.ErrorBg},
	}
	for _, p := range pairs {
		if p.src == "" {
			continue
		}
		if override || *p.dst == "" {
			*p.dst = p.src
		}
	}
}
