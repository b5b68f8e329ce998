package km

import (
	"io"
	"os"

	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"

	"github.com/cmmoran/kpoet/pkg/kotlin"
)

// Property is a decoded property descriptor.
type Property struct {
	Name        string `yaml:"name" json:"name"`
	ReturnType  Type   `yaml:"return_type" json:"return_type"`
	Flags       Flags  `yaml:"flags" json:"flags"`
	GetterFlags Flags  `yaml:"getter_flags,omitempty" json:"getter_flags,omitempty"`
	SetterFlags Flags  `yaml:"setter_flags,omitempty" json:"setter_flags,omitempty"`
}

// TypeParameter is a declared type parameter; ID is the index type
// references use to point at it.
type TypeParameter struct {
	Name string `yaml:"name" json:"name"`
	ID   int    `yaml:"id" json:"id"`
}

// Class is a decoded class descriptor.
type Class struct {
	// Name is the internal name, e.g. "com/example/User".
	Name           string          `yaml:"name" json:"name"`
	Flags          Flags           `yaml:"flags" json:"flags"`
	TypeParameters []TypeParameter `yaml:"type_parameters,omitempty" json:"type_parameters,omitempty"`
	Properties     []Property      `yaml:"properties,omitempty" json:"properties,omitempty"`
}

// TypeParameterResolver resolves indices against the class's own type
// parameters.
func (c Class) TypeParameterResolver() TypeParamResolver {
	byID := make(map[int]string, len(c.TypeParameters))
	for _, tp := range c.TypeParameters {
		byID[tp.ID] = tp.Name
	}
	return func(index int) (kotlin.TypeName, error) {
		name, ok := byID[index]
		if !ok {
			return nil, errors.WithHint(
				errors.Wrapf(ErrUnresolvedTypeParameter, "index %d in class %s", index, c.Name),
				"declare it under type_parameters")
		}
		return kotlin.TypeVariable(name), nil
	}
}

// Load reads a class descriptor document from path.
func Load(path string) (*Class, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "open descriptor")
	}
	defer f.Close()

	c, err := Decode(f)
	if err != nil {
		return nil, errors.Wrapf(err, "descriptor %s", path)
	}
	return c, nil
}

// Decode reads a class descriptor document. Unknown keys are rejected.
func Decode(r io.Reader) (*Class, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var c Class
	if err := dec.Decode(&c); err != nil {
		return nil, errors.Wrap(err, "decode descriptor")
	}
	if c.Name == "" {
		return nil, errors.New("descriptor has no class name")
	}
	return &c, nil
}
