package styles

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/matzehuels/wristscale/pkg/errors"
)

// Theme names.
const (
	Dark  = "dark"
	Light = "light"

	// Default is used when no preference has been stored.
	Default = Dark
)

// ContainerRadius is the corner radius of the canvas container.
const ContainerRadius = 18.0

// Theme is a color palette. Colors are "#rrggbb" hex strings.
type Theme struct {
	Name       string `json:"name"`
	Background string `json:"background"`
	Container  string `json:"container"`
	InfoName   string `json:"info_name"`
	InfoSpec   string `json:"info_spec"`
	WatchError string `json:"watch_error"`
	BoxStroke  string `json:"box_stroke"`
}

var themes = map[string]Theme{
	Dark: {
		Name:       Dark,
		Background: "#0f1115",
		Container:  "#1a1d24",
		InfoName:   "#e8eaed",
		InfoSpec:   "#9aa0a6",
		WatchError: "#5c2b2b",
		BoxStroke:  "#3c4049",
	},
	Light: {
		Name:       Light,
		Background: "#f5f5f7",
		Container:  "#ffffff",
		InfoName:   "#1d1d1f",
		InfoSpec:   "#6e6e73",
		WatchError: "#f3d6d6",
		BoxStroke:  "#d2d2d7",
	},
}

// Names lists the available themes.
func Names() []string { return []string{Dark, Light} }

// Lookup returns the named theme. The empty name selects [Default].
func Lookup(name string) (Theme, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		name = Default
	}
	t, ok := themes[name]
	if !ok {
		return Theme{}, errors.New(errors.ErrCodeInvalidTheme, "unknown theme %q (want dark or light)", name)
	}
	return t, nil
}

// MustLookup is like Lookup but falls back to the default theme.
func MustLookup(name string) Theme {
	if t, err := Lookup(name); err == nil {
		return t
	}
	return themes[Default]
}

// Toggle returns the other theme's name: dark becomes light and anything
// else becomes dark.
func Toggle(name string) string {
	if strings.EqualFold(strings.TrimSpace(name), Dark) {
		return Light
	}
	return Dark
}

// RGBA parses a "#rrggbb" or "#rgb" color. Malformed input yields opaque black.
func RGBA(hex string) color.RGBA {
	s := strings.TrimPrefix(hex, "#")
	if len(s) == 3 {
		s = string([]byte{s[0], s[0], s[1], s[1], s[2], s[2]})
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if len(s) != 6 || err != nil {
		return color.RGBA{A: 0xff}
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}
}

// EscapeXML escapes s for use in SVG text and attribute values.
func EscapeXML(s string) string {
	var buf bytes.Buffer
	xml.EscapeText(&buf, []byte(s))
	return buf.String()
}

// CSS renders the palette as CSS custom properties, for front ends that
// style their own chrome around a rendered canvas.
func (t Theme) CSS() string {
	return fmt.Sprintf(":root{--bg:%s;--container-bg:%s;--info-name:%s;--info-spec:%s;--watch-error:%s;--box-stroke:%s}",
		t.Background, t.Container, t.InfoName, t.InfoSpec, t.WatchError, t.BoxStroke)
}
