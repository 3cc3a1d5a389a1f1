package models

// TextColors holds the nested text.* color tokens.
type TextColors struct {
	Primary   string `json:"primary,omitempty" yaml:"primary,omitempty"`
	Secondary string `json:"secondary,omitempty" yaml:"secondary,omitempty"`
	Disabled  string `json:"disabled,omitempty" yaml:"disabled,omitempty"`
}

// ThemeColors holds the semantic color tokens of a theme. Any token may
// be empty; consumers substitute a documented default and never fail.
type ThemeColors struct {
	Primary    string     `json:"primary,omitempty" yaml:"primary,omitempty"`
	Secondary  string     `json:"secondary,omitempty" yaml:"secondary,omitempty"`
	Accent     string     `json:"accent,omitempty" yaml:"accent,omitempty"`
	Background string     `json:"background,omitempty" yaml:"background,omitempty"`
	Surface    string     `json:"surface,omitempty" yaml:"surface,omitempty"`
	Error      string     `json:"error,omitempty" yaml:"error,omitempty"`
	Success    string     `json:"success,omitempty" yaml:"success,omitempty"`
	Warning    string     `json:"warning,omitempty" yaml:"warning,omitempty"`
	Text       TextColors `json:"text,omitempty" yaml:"text,omitempty"`
}

// Typography holds the type scale of a theme.
type Typography struct {
	FontFamily string  `json:"fontFamily,omitempty" yaml:"fontFamily,omitempty"`
	BaseSize   int     `json:"baseSize,omitempty" yaml:"baseSize,omitempty"`
	ScaleRatio float64 `json:"scaleRatio,omitempty" yaml:"scaleRatio,omitempty"`
}

// ThemeConfig is the full set of semantic design tokens of a composition.
type ThemeConfig struct {
	Colors     ThemeColors `json:"colors,omitempty" yaml:"colors,omitempty"`
	Typography Typography  `json:"typography,omitempty" yaml:"typography,omitempty"`
	Spacing    int         `json:"spacing,omitempty" yaml:"spacing,omitempty"`
	Radius     int         `json:"radius,omitempty" yaml:"radius,omitempty"`
	Shadows    bool        `json:"shadows,omitempty" yaml:"shadows,omitempty"`
}
