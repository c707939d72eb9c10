// Package preset loads named layout presets from TOML, so hosts can keep
// spacing and alignment policy in a layouts.toml file instead of code.
// Every recognized option is a typed, named field; unknown alignment or
// direction strings are rejected at load time.
package preset

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/agiangrant/flow"
)

// Config represents a layouts.toml file: a table of named presets.
type Config struct {
	Layouts map[string]Preset `toml:"layouts"`
}

// Preset is one named layout configuration. Zero values mean "layout
// default"; pointer fields distinguish "absent" from zero, matching the
// unset semantics of the gap overrides and explicit dimensions.
type Preset struct {
	// Direction is "horizontal" or "vertical".
	Direction string `toml:"direction"`

	Gap      float32  `toml:"gap"`
	FirstGap *float32 `toml:"first_gap"`
	LastGap  *float32 `toml:"last_gap"`

	PaddingTop    float32 `toml:"padding_top"`
	PaddingRight  float32 `toml:"padding_right"`
	PaddingBottom float32 `toml:"padding_bottom"`
	PaddingLeft   float32 `toml:"padding_left"`

	// HorizontalAlign is "left", "center", or "right".
	HorizontalAlign string `toml:"horizontal_align"`
	// VerticalAlign is "top", "middle", "bottom", or "justify".
	VerticalAlign string `toml:"vertical_align"`

	// Distribute shares one computed main-axis size among all items.
	Distribute bool `toml:"distribute"`

	Virtual            bool `toml:"virtual"`
	VariableDimensions bool `toml:"variable_dimensions"`
}

// Load reads and parses a layouts.toml file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	config, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return config, nil
}

// Parse parses TOML preset data and validates every preset.
func Parse(data []byte) (*Config, error) {
	var config Config
	if err := toml.Unmarshal(data, &config); err != nil {
		return nil, err
	}
	for name, preset := range config.Layouts {
		if _, err := preset.Build(); err != nil {
			return nil, fmt.Errorf("layout %q: %w", name, err)
		}
	}
	return &config, nil
}

// Build returns the named preset as a configured layout.
func (c *Config) Build(name string) (flow.Layouter, error) {
	preset, ok := c.Layouts[name]
	if !ok {
		return nil, fmt.Errorf("no layout named %q", name)
	}
	return preset.Build()
}

// Build constructs the layout a preset describes.
func (p Preset) Build() (flow.Layouter, error) {
	horizontalAlign, err := parseHorizontalAlign(p.HorizontalAlign)
	if err != nil {
		return nil, err
	}
	verticalAlign, err := parseVerticalAlign(p.VerticalAlign)
	if err != nil {
		return nil, err
	}

	switch p.Direction {
	case "", "horizontal":
		l := flow.NewHorizontalLayout()
		l.Gap = p.Gap
		l.FirstGap = optional(p.FirstGap)
		l.LastGap = optional(p.LastGap)
		l.PaddingTop = p.PaddingTop
		l.PaddingRight = p.PaddingRight
		l.PaddingBottom = p.PaddingBottom
		l.PaddingLeft = p.PaddingLeft
		l.HorizontalAlign = horizontalAlign
		l.VerticalAlign = verticalAlign
		l.DistributeWidths = p.Distribute
		l.UseVirtualLayout = p.Virtual
		l.HasVariableItemDimensions = p.VariableDimensions
		return l, nil
	case "vertical":
		l := flow.NewVerticalLayout()
		l.Gap = p.Gap
		l.FirstGap = optional(p.FirstGap)
		l.LastGap = optional(p.LastGap)
		l.PaddingTop = p.PaddingTop
		l.PaddingRight = p.PaddingRight
		l.PaddingBottom = p.PaddingBottom
		l.PaddingLeft = p.PaddingLeft
		if verticalAlign == flow.AlignJustify {
			return nil, fmt.Errorf("vertical layouts justify on the cross axis; unsupported vertical_align %q", p.VerticalAlign)
		}
		l.VerticalAlign = verticalAlign
		l.HorizontalAlign = horizontalAlign
		l.DistributeHeights = p.Distribute
		l.UseVirtualLayout = p.Virtual
		l.HasVariableItemDimensions = p.VariableDimensions
		return l, nil
	default:
		return nil, fmt.Errorf("unknown direction %q", p.Direction)
	}
}

func parseHorizontalAlign(s string) (flow.HorizontalAlign, error) {
	switch s {
	case "", "left":
		return flow.AlignLeft, nil
	case "center":
		return flow.AlignCenter, nil
	case "right":
		return flow.AlignRight, nil
	default:
		return flow.AlignLeft, fmt.Errorf("unknown horizontal_align %q", s)
	}
}

func parseVerticalAlign(s string) (flow.VerticalAlign, error) {
	switch s {
	case "", "top":
		return flow.AlignTop, nil
	case "middle":
		return flow.AlignMiddle, nil
	case "bottom":
		return flow.AlignBottom, nil
	case "justify":
		return flow.AlignJustify, nil
	default:
		return flow.AlignTop, fmt.Errorf("unknown vertical_align %q", s)
	}
}

func optional(v *float32) flow.Dim {
	if v == nil {
		return flow.Dim{}
	}
	return flow.Px(*v)
}
