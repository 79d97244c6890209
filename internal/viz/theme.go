package viz

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// UnmarshalYAML parses a colour written as "#rrggbb" (the leading '#' is
// optional).
func (c *RGB) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(s) != 6 {
		return fmt.Errorf("colour %q: want rrggbb hex", s)
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return fmt.Errorf("colour %q: %w", s, err)
	}
	c.R = uint8(v >> 16)
	c.G = uint8(v >> 8)
	c.B = uint8(v)
	return nil
}

// LoadPalette reads a YAML theme file. Colours not named in the file keep
// their light-theme defaults, so a theme only needs to list what it changes.
func LoadPalette(path string) (Palette, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Palette{}, fmt.Errorf("read theme: %w", err)
	}
	pal := LightPalette()
	if err := yaml.Unmarshal(data, &pal); err != nil {
		return Palette{}, fmt.Errorf("parse theme %s: %w", path, err)
	}
	return pal, nil
}
