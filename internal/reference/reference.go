// Package reference holds the static guidance text shown next to an estimate.
package reference

import (
	_ "embed"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed reference.yaml
var raw []byte

type AMDR struct {
	MinPercent float64 `yaml:"min_percent" json:"min_percent"`
	MaxPercent float64 `yaml:"max_percent" json:"max_percent"`
}

// Content is the reference card, tips and disclaimer.
type Content struct {
	Title        string   `yaml:"title" json:"title"`
	Tagline      string   `yaml:"tagline" json:"tagline"`
	References   []string `yaml:"references" json:"references"`
	MPSTip       string   `yaml:"mps_tip" json:"mps_tip"`
	EstimateNote string   `yaml:"estimate_note" json:"estimate_note"`
	Disclaimer   string   `yaml:"disclaimer" json:"disclaimer"`
	AMDR         AMDR     `yaml:"amdr" json:"amdr"`
}

// Load parses the embedded reference document.
func Load() (*Content, error) {
	return Parse(raw)
}

func Parse(data []byte) (*Content, error) {
	var c Content
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parse reference content: %w", err)
	}
	if len(c.References) == 0 {
		return nil, fmt.Errorf("parse reference content: no references")
	}
	return &c, nil
}

// MustLoad is for callers that cannot run without the embedded document.
func MustLoad() *Content {
	c, err := Load()
	if err != nil {
		panic(err)
	}
	return c
}

// WithinAMDR reports whether a protein share of calories is inside the range.
func (c *Content) WithinAMDR(percent float64) bool {
	return percent >= c.AMDR.MinPercent && percent <= c.AMDR.MaxPercent
}

// Markdown renders the content for terminal display.
func (c *Content) Markdown() string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n%s\n\n## References\n\n", c.Title, c.Tagline)
	for _, r := range c.References {
		fmt.Fprintf(&b, "- %s\n", r)
	}
	fmt.Fprintf(&b, "\n## Per-meal tip\n\n%s\n\n> %s\n\n_%s_\n", c.MPSTip, c.EstimateNote, c.Disclaimer)
	return b.String()
}
