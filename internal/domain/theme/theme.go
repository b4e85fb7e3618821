// Package theme holds the fixed colour palettes offered to users.
package theme

import (
	"errors"
	"fmt"
)

// ID identifies one of the fixed palettes.
type ID string

const (
	Dark   ID = "dark"
	Violet ID = "violet"
	Red    ID = "red"
	Light  ID = "light"
)

// Default is used when a user never picked a theme.
const Default = Dark

// Colors is the four-colour palette of a theme.
type Colors struct {
	Primary    string `json:"primary"`
	Background string `json:"bg"`
	Surface    string `json:"surface"`
	Highlight  string `json:"highlight"`
}

// Option is one entry of the theme picker. LabelKey resolves through the
// localization catalog.
type Option struct {
	ID       ID     `json:"id"`
	LabelKey string `json:"labelKey"`
}

// ErrUnknown is returned by Parse for identifiers outside the fixed set.
var ErrUnknown = errors.New("unknown theme")

var palettes = map[ID]Colors{
	Dark:   {Primary: "#3b9eff", Background: "#0b0b10", Surface: "#141419", Highlight: "#1c1c24"},
	Violet: {Primary: "#a855f7", Background: "#0d0a14", Surface: "#16121f", Highlight: "#1f1a2b"},
	Red:    {Primary: "#ef4444", Background: "#100a0a", Surface: "#1a1214", Highlight: "#241c1e"},
	Light:  {Primary: "#2563eb", Background: "#f5f5f5", Surface: "#ffffff", Highlight: "#f3f4f6"},
}

var list = []Option{
	{ID: Dark, LabelKey: "theme.dark"},
	{ID: Violet, LabelKey: "theme.violet"},
	{ID: Red, LabelKey: "theme.red"},
	{ID: Light, LabelKey: "theme.light"},
}

// Parse converts an inbound string (database column, select menu value) into an ID.
func Parse(s string) (ID, error) {
	id := ID(s)
	if _, ok := palettes[id]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknown, s)
	}
	return id, nil
}

// Palette returns the colours of id. Every ID constant has a palette.
func Palette(id ID) Colors {
	return palettes[id]
}

// List returns the picker entries in display order.
func List() []Option {
	out := make([]Option, len(list))
	copy(out, list)
	return out
}

// All returns a copy of the id -> palette table.
func All() map[ID]Colors {
	out := make(map[ID]Colors, len(palettes))
	for id, c := range palettes {
		out[id] = c
	}
	return out
}
