// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// CollisionPolicy decides what happens when two files claim the same
// (topic, role) slot.
type CollisionPolicy string

const (
	// CollisionOverwrite keeps the later file and logs a warning.
	CollisionOverwrite CollisionPolicy = "overwrite"
	// CollisionAbort aborts the run.
	CollisionAbort CollisionPolicy = "error"
)

const (
	DefaultInputDir    = "."
	DefaultPattern     = "*.ipynb"
	DefaultOutputPath  = "compiled_notes.md"
	DefaultTitle       = "Python Learning Materials - Compiled Notes"
	DefaultDescription = "This document contains markdown content extracted from Jupyter notebooks"
)

// CompileConfig holds settings for a compile run.
type CompileConfig struct {
	// InputDir is the directory scanned for notebooks (not recursive).
	InputDir string `json:"input_dir" yaml:"input_dir" mapstructure:"input_dir"`

	// Pattern is the glob matched against names in InputDir.
	Pattern string `json:"pattern" yaml:"pattern" mapstructure:"pattern"`

	// OutputPath is the compiled document, overwritten on every run.
	OutputPath string `json:"output_path" yaml:"output_path" mapstructure:"output_path"`

	// Title and Description make up the document preamble.
	Title       string `json:"title" yaml:"title" mapstructure:"title"`
	Description string `json:"description" yaml:"description" mapstructure:"description"`

	// OnCollision selects the duplicate slot policy (default overwrite).
	OnCollision CollisionPolicy `json:"on_collision" yaml:"on_collision" mapstructure:"on_collision"`
}

// DefaultCompileConfig returns the settings that reproduce a plain run in
// the current directory.
func DefaultCompileConfig() CompileConfig {
	return CompileConfig{
		InputDir:    DefaultInputDir,
		Pattern:     DefaultPattern,
		OutputPath:  DefaultOutputPath,
		Title:       DefaultTitle,
		Description: DefaultDescription,
		OnCollision: CollisionOverwrite,
	}
}

// WithDefaults fills every empty field from DefaultCompileConfig.
func (c CompileConfig) WithDefaults() CompileConfig {
	d := DefaultCompileConfig()
	if c.InputDir == "" {
		c.InputDir = d.InputDir
	}
	if c.Pattern == "" {
		c.Pattern = d.Pattern
	}
	if c.OutputPath == "" {
		c.OutputPath = d.OutputPath
	}
	if c.Title == "" {
		c.Title = d.Title
	}
	if c.Description == "" {
		c.Description = d.Description
	}
	if c.OnCollision == "" {
		c.OnCollision = d.OnCollision
	}
	return c
}
