package manifest

import (
	"os"
	"path/filepath"
	"sort"

	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"

	"github.com/cmmoran/kpoet/pkg/convert"
)

// Kind is the flavor of a generated output.
type Kind string

const (
	KindKotlin Kind = "kotlin"
	KindMirror Kind = "mirror"
)

// Output represents a generated file entry in the manifest.
type Output struct {
	Class   string          `yaml:"class" json:"class"`
	Source  string          `yaml:"source" json:"source"`
	File    string          `yaml:"file" json:"file"`
	Kind    Kind            `yaml:"kind" json:"kind"`
	Options convert.Options `yaml:"options,omitempty" json:"options,omitempty"`
}

// Manifest tracks the outputs generated from descriptor documents, so they
// can be checked for staleness later.
type Manifest struct {
	Outputs []Output `yaml:"outputs" json:"outputs"`
}

// Load reads a manifest from the provided path. If the file does not exist,
// an empty manifest is returned.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return &Manifest{}, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "read manifest")
	}

	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, errors.Wrap(err, "unmarshal manifest")
	}

	return &m, nil
}

// Save writes the manifest to the provided path, creating parent directories as needed.
func (m *Manifest) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errors.Wrap(err, "create manifest directory")
	}

	data, err := yaml.Marshal(m)
	if err != nil {
		return errors.Wrap(err, "marshal manifest")
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.Wrap(err, "write manifest")
	}

	return nil
}

// Record adds an output, replacing an existing entry for the same file.
// Outputs are kept sorted by file.
func (m *Manifest) Record(o Output) {
	o.File = filepath.Clean(o.File)
	for i := range m.Outputs {
		if m.Outputs[i].File == o.File {
			m.Outputs[i] = o
			return
		}
	}

	m.Outputs = append(m.Outputs, o)
	sort.Slice(m.Outputs, func(i, j int) bool { return m.Outputs[i].File < m.Outputs[j].File })
}

// Find returns the entry for file, if present.
func (m *Manifest) Find(file string) (Output, bool) {
	file = filepath.Clean(file)
	for _, o := range m.Outputs {
		if o.File == file {
			return o, true
		}
	}
	return Output{}, false
}
