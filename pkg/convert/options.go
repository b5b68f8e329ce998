package convert

import (
	"path/filepath"
	"strings"
)

// Options control conversion and where generated files go.
//
// UseGetterFlags     – gate and decorate getters with the getter flags instead of the setter flags.
// ExcludeSynthesized – drop compiler-synthesized properties from converted classes.
// ExcludeProperties  – names of properties to drop (case‑insensitive).
// InFile             – descriptor document to read.
// OutDir             – output directory.
// OutFile            – output filename; derived from the class name when empty.
// ManifestPath       – manifest to record outputs in; nothing is recorded when empty.
// Package            – Go package name of mirror files.
// Pluralize          – also emit a plural slice type in mirror files.
type Options struct {
	UseGetterFlags     bool     `json:"use_getter_flags,omitempty" yaml:"use_getter_flags,omitempty" toml:"use_getter_flags,omitempty" mapstructure:"use_getter_flags,omitempty"`
	ExcludeSynthesized bool     `json:"exclude_synthesized,omitempty" yaml:"exclude_synthesized,omitempty" toml:"exclude_synthesized,omitempty" mapstructure:"exclude_synthesized,omitempty"`
	ExcludeProperties  []string `json:"exclude_properties,omitempty" yaml:"exclude_properties,omitempty" toml:"exclude_properties,omitempty" mapstructure:"exclude_properties,omitempty"`
	InFile             string   `json:"in_file,omitempty" yaml:"in_file,omitempty" toml:"in_file,omitempty" mapstructure:"in_file,omitempty"`
	OutDir             string   `json:"out_dir,omitempty" yaml:"out_dir,omitempty" toml:"out_dir,omitempty" mapstructure:"out_dir,omitempty"`
	OutFile            string   `json:"out_file,omitempty" yaml:"out_file,omitempty" toml:"out_file,omitempty" mapstructure:"out_file,omitempty"`
	ManifestPath       string   `json:"-" yaml:"-" toml:"-" mapstructure:"-"`
	Package            string   `json:"package,omitempty" yaml:"package,omitempty" toml:"package,omitempty" mapstructure:"package,omitempty"`
	Pluralize          bool     `json:"pluralize,omitempty" yaml:"pluralize,omitempty" toml:"pluralize,omitempty" mapstructure:"pluralize,omitempty"`
}

func NewOptions() *Options {
	return &Options{
		OutDir:  "out",
		Package: "model",
	}
}

func (o *Options) Normalize(excludePropertiesStrings ...string) {
	for _, s := range excludePropertiesStrings {
		for _, n := range strings.Split(s, ",") {
			if n = strings.TrimSpace(n); n != "" {
				o.ExcludeProperties = append(o.ExcludeProperties, n)
			}
		}
	}
	// Paths are recorded in manifests, so they must not depend on the
	// directory a later check runs from.
	if len(o.InFile) > 0 {
		o.InFile, _ = filepath.Abs(o.InFile)
	}
	if len(o.OutDir) == 0 {
		o.OutDir = "out"
	}
	o.OutDir, _ = filepath.Abs(o.OutDir)
	if len(o.Package) == 0 {
		o.Package = "model"
	}
}

// functional option pattern ---------------------------------------------------

type Option func(*Options)

func WithUseGetterFlags() Option     { return func(o *Options) { o.UseGetterFlags = true } }
func WithExcludeSynthesized() Option { return func(o *Options) { o.ExcludeSynthesized = true } }
func WithExcludeProperties(names ...string) Option {
	return func(o *Options) {
		for _, n := range names {
			o.ExcludeProperties = append(o.ExcludeProperties, strings.TrimSpace(n))
		}
	}
}
func WithInFile(f string) Option       { return func(o *Options) { o.InFile = f } }
func WithOutDir(d string) Option       { return func(o *Options) { o.OutDir = d } }
func WithOutFile(f string) Option      { return func(o *Options) { o.OutFile = f } }
func WithManifestPath(p string) Option { return func(o *Options) { o.ManifestPath = p } }
func WithPackage(p string) Option      { return func(o *Options) { o.Package = p } }
func WithPluralize() Option            { return func(o *Options) { o.Pluralize = true } }
