package main

import (
	"fmt"
	"strings"

	"github.com/kelseyhightower/envconfig"

	"github.com/treeviewer/highlight"
)

// Config holds the demo settings. Every field can be set from a
// CLADEHL_-prefixed environment variable and overridden by flags.
type Config struct {
	Layout     string   `envconfig:"LAYOUT" default:"circular"`
	Depth      int      `envconfig:"DEPTH" default:"4"`
	Arity      int      `envconfig:"ARITY" default:"3"`
	Nodes      []string `envconfig:"NODES" default:"0.1,0.2.0"`
	Output     string   `envconfig:"OUTPUT" default:"clades.png"`
	Width      int      `envconfig:"WIDTH" default:"800"`
	Height     int      `envconfig:"HEIGHT" default:"800"`
	Gradient   bool     `envconfig:"GRADIENT" default:"true"`
	LeafToLeaf bool     `envconfig:"LEAF_TO_LEAF" default:"false"`
	Margin     float64  `envconfig:"MARGIN" default:"6"`
	Stroke     float64  `envconfig:"STROKE" default:"1.5"`
	Dash       float64  `envconfig:"DASH" default:"0"`
	Envelope   bool     `envconfig:"ENVELOPE" default:"false"`
	From       string   `envconfig:"FROM" default:"#00a2e8"`
	To         string   `envconfig:"TO" default:"#e23366"`
	Opacity    float64  `envconfig:"OPACITY" default:"0.45"`
	Verbose    bool     `envconfig:"VERBOSE" default:"false"`
}

// loadConfig reads the environment.
func loadConfig() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("cladehl", &cfg); err != nil {
		return nil, fmt.Errorf("cladehl: environment: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// validate rejects settings that would otherwise draw with a fallback.
func (c *Config) validate() error {
	for name, v := range map[string]string{"FROM": c.From, "TO": c.To} {
		if _, err := highlight.ParseHex(v); err != nil {
			return fmt.Errorf("cladehl: %s: %w", name, err)
		}
	}
	return nil
}

// request converts the settings into a highlight request.
func (c *Config) request() highlight.Request {
	req := highlight.DefaultRequest()
	req.Margins = highlight.Uniform(c.Margin)
	req.Margin = c.Margin
	req.ConvexHull = !c.Envelope

	from := highlight.Hex(c.From).WithAlpha(c.Opacity)
	to := highlight.Hex(c.To).WithAlpha(c.Opacity)
	req.FillColor = from
	if c.Gradient {
		req.Fill = highlight.FillGradient
		req.GradientStart = from
		req.GradientEnd = to
	}
	if c.LeafToLeaf {
		req.GradientDirection = highlight.LeafToLeaf
	}

	if c.Stroke > 0 {
		req.Stroke = highlight.DefaultStroke()
		req.Stroke.Join = highlight.LineJoinRound
		req.Stroke.Width = c.Stroke
		if c.Dash > 0 {
			req.Stroke = req.Stroke.WithDashPattern(c.Dash, c.Dash)
		}
	}
	return req
}

// targets returns the set of node names to highlight.
func (c *Config) targets() map[string]bool {
	set := make(map[string]bool, len(c.Nodes))
	for _, n := range c.Nodes {
		if n = strings.TrimSpace(n); n != "" {
			set[n] = true
		}
	}
	return set
}
