package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/fatih/color"

	"caret/internal/diag"
	"caret/internal/snippet"
)

// Theme names the color roles of pretty output. Each value is a comma
// separated list of attribute names, e.g. "red,bold". Roles left empty keep
// their default.
type Theme struct {
	Span    string `toml:"span"`
	Marker  string `toml:"marker"`
	Gutter  string `toml:"gutter"`
	Error   string `toml:"error"`
	Warning string `toml:"warning"`
	Info    string `toml:"info"`
}

// DefaultTheme matches the usual compiler palette: red highlights, blue
// gutter, severity-colored headers.
func DefaultTheme() *Theme {
	return &Theme{
		Span:    "red,bold",
		Marker:  "red,bold",
		Gutter:  "blue",
		Error:   "red,bold",
		Warning: "yellow,bold",
		Info:    "cyan,bold",
	}
}

// LoadTheme decodes a TOML theme file. Unknown keys and unknown attribute
// names are rejected so a typo does not silently fall back to no styling.
func LoadTheme(path string) (*Theme, error) {
	t := DefaultTheme()
	meta, err := toml.DecodeFile(path, t)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("%s: unknown key %q", path, undecoded[0].String())
	}
	if err := t.validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}

func (t *Theme) validate() error {
	for role, spec := range map[string]string{
		"span": t.Span, "marker": t.Marker, "gutter": t.Gutter,
		"error": t.Error, "warning": t.Warning, "info": t.Info,
	} {
		if _, err := parseAttributes(spec); err != nil {
			return fmt.Errorf("role %s: %w", role, err)
		}
	}
	return nil
}

var attributeNames = map[string]color.Attribute{
	"bold":       color.Bold,
	"faint":      color.Faint,
	"italic":     color.Italic,
	"underline":  color.Underline,
	"black":      color.FgBlack,
	"red":        color.FgRed,
	"green":      color.FgGreen,
	"yellow":     color.FgYellow,
	"blue":       color.FgBlue,
	"magenta":    color.FgMagenta,
	"cyan":       color.FgCyan,
	"white":      color.FgWhite,
	"hi-black":   color.FgHiBlack,
	"hi-red":     color.FgHiRed,
	"hi-green":   color.FgHiGreen,
	"hi-yellow":  color.FgHiYellow,
	"hi-blue":    color.FgHiBlue,
	"hi-magenta": color.FgHiMagenta,
	"hi-cyan":    color.FgHiCyan,
	"hi-white":   color.FgHiWhite,
}

func parseAttributes(spec string) ([]color.Attribute, error) {
	var attrs []color.Attribute
	for _, part := range strings.Split(spec, ",") {
		name := strings.TrimSpace(part)
		if name == "" {
			continue
		}
		attr, ok := attributeNames[name]
		if !ok {
			return nil, fmt.Errorf("unknown color attribute %q", name)
		}
		attrs = append(attrs, attr)
	}
	return attrs, nil
}

// roleColor builds an always-on color for an attribute list. The list was
// validated at load time; a default theme never fails to parse.
func roleColor(attrSpec string) *color.Color {
	attrs, err := parseAttributes(attrSpec)
	if err != nil || len(attrs) == 0 {
		return color.New(color.Reset)
	}
	c := color.New(attrs...)
	c.EnableColor()
	return c
}

func colorHook(c *color.Color) snippet.FormatFunc {
	return func(w io.Writer, text string) error {
		_, err := c.Fprint(w, text)
		return err
	}
}

// SnippetOptions builds the render hooks for this theme. With color off the
// zero Options value is returned and every hook stays pass-through.
func (t *Theme) SnippetOptions(colorOn bool) snippet.Options {
	if !colorOn {
		return snippet.Options{}
	}
	return snippet.Options{
		Span:   colorHook(roleColor(t.Span)),
		Marker: colorHook(roleColor(t.Marker)),
		Number: colorHook(roleColor(t.Gutter)),
	}
}

func (t *Theme) severityLabel(sev diag.Severity, colorOn bool) string {
	label := sev.String()
	if !colorOn {
		return label
	}
	spec := t.Info
	switch sev {
	case diag.SevError:
		spec = t.Error
	case diag.SevWarning:
		spec = t.Warning
	}
	return roleColor(spec).Sprint(label)
}
