package kotlin

import "github.com/cockroachdb/errors"

// ParameterSpec is a built function or lambda parameter. An empty name
// marks an unnamed parameter, rendered as its type alone.
type ParameterSpec struct {
	name         string
	typ          TypeName
	modifiers    []Modifier
	kdoc         CodeBlock
	defaultValue CodeBlock
	hasDefault   bool
}

func (p ParameterSpec) Name() string          { return p.name }
func (p ParameterSpec) Type() TypeName        { return p.typ }
func (p ParameterSpec) Modifiers() []Modifier { return append([]Modifier(nil), p.modifiers...) }
func (p ParameterSpec) Kdoc() CodeBlock       { return p.kdoc }

// DefaultValue returns the default value, if one was set.
func (p ParameterSpec) DefaultValue() (CodeBlock, bool) {
	return p.defaultValue, p.hasDefault
}

type ParameterSpecBuilder struct {
	errorState
	name         string
	typ          TypeName
	modifiers    modifierSet
	kdoc         *CodeBlockBuilder
	defaultValue CodeBlock
	hasDefault   bool
}

func NewParameterBuilder(name string, t TypeName) *ParameterSpecBuilder {
	return &ParameterSpecBuilder{
		name:      name,
		typ:       t,
		modifiers: make(modifierSet),
		kdoc:      NewCodeBlockBuilder(),
	}
}

func (b *ParameterSpecBuilder) AddModifiers(mods ...Modifier) *ParameterSpecBuilder {
	if !b.live() {
		return b
	}
	if err := checkModifiers(mods); err != nil {
		b.fail(errors.Wrapf(err, "parameter %s", b.name))
		return b
	}
	b.modifiers.add(mods...)
	return b
}

func (b *ParameterSpecBuilder) AddKdoc(format string, args ...any) *ParameterSpecBuilder {
	b.kdoc.Add(format, args...)
	return b
}

func (b *ParameterSpecBuilder) AddKdocBlock(cb CodeBlock) *ParameterSpecBuilder {
	b.kdoc.AddBlock(cb)
	return b
}

// DefaultValue reads back the default value set so far.
func (b *ParameterSpecBuilder) DefaultValue() (CodeBlock, bool) {
	return b.defaultValue, b.hasDefault
}

func (b *ParameterSpecBuilder) SetDefaultValue(cb CodeBlock) *ParameterSpecBuilder {
	if b.live() {
		b.defaultValue, b.hasDefault = cb, true
	}
	return b
}

func (b *ParameterSpecBuilder) Build() (ParameterSpec, error) {
	if err := b.finish(); err != nil {
		return ParameterSpec{}, err
	}
	if b.typ == nil {
		return ParameterSpec{}, errors.Wrapf(ErrInvalidSpec, "parameter %q has no type", b.name)
	}
	kdoc, err := b.kdoc.Build()
	if err != nil {
		return ParameterSpec{}, errors.Wrapf(err, "parameter %s kdoc", b.name)
	}
	return ParameterSpec{
		name:         b.name,
		typ:          b.typ,
		modifiers:    b.modifiers.sorted(),
		kdoc:         kdoc,
		defaultValue: b.defaultValue,
		hasDefault:   b.hasDefault,
	}, nil
}
