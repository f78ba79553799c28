package asset

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"unicode/utf8"

	"gopkg.in/yaml.v3"
)

//go:embed tiers.yaml
var defaultManifest []byte

// ErrInvalidManifest is wrapped by every manifest validation failure
var ErrInvalidManifest = errors.New("invalid tier manifest")

// RGB is a 24-bit color
type RGB struct {
	R, G, B uint8
}

// Tier is the visual handle for one piece tier
type Tier struct {
	Index  int
	Name   string
	Glyph  rune
	Color  RGB
	Sprite string
}

// TierTable maps tier index to its visual handle; every index in [0, Count) is present
type TierTable struct {
	tiers []Tier
}

type manifestFile struct {
	Tiers []manifestTier `yaml:"tiers"`
}

type manifestTier struct {
	Name   string `yaml:"name"`
	Glyph  string `yaml:"glyph"`
	Color  string `yaml:"color"`
	Sprite string `yaml:"sprite"`
}

// LoadManifest reads and validates a tier manifest file
func LoadManifest(path string) (*TierTable, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read tier manifest: %w", err)
	}
	return ParseManifest(raw)
}

// ParseManifest validates a YAML tier manifest; any tier missing a glyph or color fails the whole table
func ParseManifest(raw []byte) (*TierTable, error) {
	var mf manifestFile
	if err := yaml.Unmarshal(raw, &mf); err != nil {
		return nil, fmt.Errorf("parse tier manifest: %w", err)
	}
	if len(mf.Tiers) == 0 {
		return nil, fmt.Errorf("%w: no tiers", ErrInvalidManifest)
	}

	t := &TierTable{tiers: make([]Tier, 0, len(mf.Tiers))}
	for i, mt := range mf.Tiers {
		if mt.Name == "" {
			return nil, fmt.Errorf("%w: tier %d has no name", ErrInvalidManifest, i)
		}
		if utf8.RuneCountInString(mt.Glyph) != 1 {
			return nil, fmt.Errorf("%w: tier %d (%s) glyph %q must be one character", ErrInvalidManifest, i, mt.Name, mt.Glyph)
		}
		color, err := parseHexColor(mt.Color)
		if err != nil {
			return nil, fmt.Errorf("%w: tier %d (%s): %v", ErrInvalidManifest, i, mt.Name, err)
		}
		glyph, _ := utf8.DecodeRuneInString(mt.Glyph)
		t.tiers = append(t.tiers, Tier{
			Index:  i,
			Name:   mt.Name,
			Glyph:  glyph,
			Color:  color,
			Sprite: mt.Sprite,
		})
	}
	return t, nil
}

// DefaultTable returns the embedded ten-tier cookie table
func DefaultTable() *TierTable {
	t, err := ParseManifest(defaultManifest)
	if err != nil {
		panic(fmt.Sprintf("embedded tier manifest: %v", err))
	}
	return t
}

// Count returns the number of tiers
func (t *TierTable) Count() int {
	return len(t.tiers)
}

// Tier returns the handle for tier i; out-of-range indices wrap like merges do
func (t *TierTable) Tier(i int) Tier {
	n := len(t.tiers)
	i %= n
	if i < 0 {
		i += n
	}
	return t.tiers[i]
}

// Tiers returns all handles in tier order
func (t *TierTable) Tiers() []Tier {
	return t.tiers
}

func parseHexColor(s string) (RGB, error) {
	hex, ok := strings.CutPrefix(s, "#")
	if !ok || len(hex) != 6 {
		return RGB{}, fmt.Errorf("color %q must be #rrggbb", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return RGB{}, fmt.Errorf("color %q: %w", s, err)
	}
	return RGB{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}, nil
}
