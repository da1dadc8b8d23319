// ABOUTME: Closed set of color tags a note can carry.
// ABOUTME: Parses and formats colors by their lowercase names.

package models

import (
	"errors"
	"fmt"
	"strings"
)

var ErrInvalidColor = errors.New("invalid note color")

// Color is one of the fixed note colors. The zero value is Yellow.
type Color uint8

const (
	Yellow Color = iota
	Green
	Pink
	Blue
	Purple
	Orange
)

// DefaultColor is applied when a note is created without a color.
const DefaultColor = Yellow

var colorNames = [...]string{
	Yellow: "yellow",
	Green:  "green",
	Pink:   "pink",
	Blue:   "blue",
	Purple: "purple",
	Orange: "orange",
}

// Colors returns every valid color in palette order.
func Colors() []Color {
	return []Color{Yellow, Green, Pink, Blue, Purple, Orange}
}

// ParseColor resolves a color name, ignoring case and surrounding spaces.
// An empty name yields DefaultColor.
func ParseColor(name string) (Color, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return DefaultColor, nil
	}
	for i, n := range colorNames {
		if n == name {
			return Color(i), nil
		}
	}
	return DefaultColor, fmt.Errorf("%w: %q", ErrInvalidColor, name)
}

func (c Color) IsValid() bool {
	return int(c) < len(colorNames)
}

func (c Color) String() string {
	if !c.IsValid() {
		return fmt.Sprintf("Color(%d)", uint8(c))
	}
	return colorNames[c]
}

// Label is the capitalized display name.
func (c Color) Label() string {
	s := c.String()
	if !c.IsValid() {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func (c Color) MarshalText() ([]byte, error) {
	if !c.IsValid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidColor, uint8(c))
	}
	return []byte(colorNames[c]), nil
}

func (c *Color) UnmarshalText(text []byte) error {
	parsed, err := ParseColor(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
