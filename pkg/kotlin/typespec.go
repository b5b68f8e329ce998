package kotlin

import "github.com/cockroachdb/errors"

// TypeSpec is a built class declaration holding properties.
type TypeSpec struct {
	className     ClassName
	modifiers     []Modifier
	typeVariables []TypeVariableName
	properties    []PropertySpec
	tag           any
}

func (t TypeSpec) Name() string                      { return t.className.SimpleName() }
func (t TypeSpec) ClassName() ClassName              { return t.className }
func (t TypeSpec) Modifiers() []Modifier             { return append([]Modifier(nil), t.modifiers...) }
func (t TypeSpec) TypeVariables() []TypeVariableName { return append([]TypeVariableName(nil), t.typeVariables...) }
func (t TypeSpec) Properties() []PropertySpec        { return append([]PropertySpec(nil), t.properties...) }
func (t TypeSpec) Tag() any                          { return t.tag }

type TypeSpecBuilder struct {
	errorState
	className     ClassName
	modifiers     modifierSet
	typeVariables []TypeVariableName
	properties    []PropertySpec
	tag           any
}

func NewClassBuilder(name ClassName) *TypeSpecBuilder {
	return &TypeSpecBuilder{className: name.NonNull(), modifiers: make(modifierSet)}
}

func (b *TypeSpecBuilder) AddModifiers(mods ...Modifier) *TypeSpecBuilder {
	if !b.live() {
		return b
	}
	if err := checkModifiers(mods); err != nil {
		b.fail(errors.Wrapf(err, "class %s", b.className))
		return b
	}
	b.modifiers.add(mods...)
	return b
}

func (b *TypeSpecBuilder) AddTypeVariable(v TypeVariableName) *TypeSpecBuilder {
	if b.live() {
		b.typeVariables = append(b.typeVariables, v)
	}
	return b
}

func (b *TypeSpecBuilder) AddProperty(p PropertySpec) *TypeSpecBuilder {
	if !b.live() {
		return b
	}
	for _, existing := range b.properties {
		if existing.name == p.name {
			b.fail(errors.Wrapf(ErrInvalidSpec, "class %s already has a property %s", b.className, p.name))
			return b
		}
	}
	b.properties = append(b.properties, p)
	return b
}

func (b *TypeSpecBuilder) Tag(tag any) *TypeSpecBuilder {
	if b.live() {
		b.tag = tag
	}
	return b
}

func (b *TypeSpecBuilder) Build() (TypeSpec, error) {
	if err := b.finish(); err != nil {
		return TypeSpec{}, err
	}
	if b.className.SimpleName() == "" {
		return TypeSpec{}, errors.Wrap(ErrInvalidSpec, "class without a name")
	}
	return TypeSpec{
		className:     b.className,
		modifiers:     b.modifiers.sorted(),
		typeVariables: append([]TypeVariableName(nil), b.typeVariables...),
		properties:    append([]PropertySpec(nil), b.properties...),
		tag:           b.tag,
	}, nil
}
