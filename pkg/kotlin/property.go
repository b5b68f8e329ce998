package kotlin

import "github.com/cockroachdb/errors"

// PropertySpec is a built property declaration.
type PropertySpec struct {
	name        string
	typ         TypeName
	modifiers   []Modifier
	mutable     bool
	annotations []AnnotationSpec
	initializer *CodeBlock
	delegate    *CodeBlock
	getter      *FunSpec
	setter      *FunSpec
	tag         any
}

func (p PropertySpec) Name() string                  { return p.name }
func (p PropertySpec) Type() TypeName                { return p.typ }
func (p PropertySpec) Modifiers() []Modifier         { return append([]Modifier(nil), p.modifiers...) }
func (p PropertySpec) Mutable() bool                 { return p.mutable }
func (p PropertySpec) Annotations() []AnnotationSpec { return append([]AnnotationSpec(nil), p.annotations...) }

// Tag returns the value attached with PropertySpecBuilder.Tag.
func (p PropertySpec) Tag() any { return p.tag }

func (p PropertySpec) HasModifier(m Modifier) bool {
	for _, x := range p.modifiers {
		if x == m {
			return true
		}
	}
	return false
}

func (p PropertySpec) Initializer() (CodeBlock, bool) { return deref(p.initializer) }
func (p PropertySpec) Delegate() (CodeBlock, bool)    { return deref(p.delegate) }

func (p PropertySpec) Getter() (FunSpec, bool) {
	if p.getter == nil {
		return FunSpec{}, false
	}
	return *p.getter, true
}

func (p PropertySpec) Setter() (FunSpec, bool) {
	if p.setter == nil {
		return FunSpec{}, false
	}
	return *p.setter, true
}

func deref(cb *CodeBlock) (CodeBlock, bool) {
	if cb == nil {
		return CodeBlock{}, false
	}
	return *cb, true
}

type PropertySpecBuilder struct {
	errorState
	name        string
	typ         TypeName
	modifiers   modifierSet
	mutable     bool
	annotations []AnnotationSpec
	initializer *CodeBlock
	delegate    *CodeBlock
	getter      *FunSpec
	setter      *FunSpec
	tag         any
}

func NewPropertyBuilder(name string, t TypeName) *PropertySpecBuilder {
	return &PropertySpecBuilder{name: name, typ: t, modifiers: make(modifierSet)}
}

func (b *PropertySpecBuilder) AddModifiers(mods ...Modifier) *PropertySpecBuilder {
	if !b.live() {
		return b
	}
	if err := checkModifiers(mods); err != nil {
		b.fail(errors.Wrapf(err, "property %s", b.name))
		return b
	}
	b.modifiers.add(mods...)
	return b
}

// Mutable switches between var (true) and val (false).
func (b *PropertySpecBuilder) Mutable(mutable bool) *PropertySpecBuilder {
	if b.live() {
		b.mutable = mutable
	}
	return b
}

func (b *PropertySpecBuilder) AddAnnotation(a AnnotationSpec) *PropertySpecBuilder {
	if b.live() {
		b.annotations = append(b.annotations, a)
	}
	return b
}

func (b *PropertySpecBuilder) Initializer(format string, args ...any) *PropertySpecBuilder {
	b.initializer = b.block(format, args)
	return b
}

// Delegate sets the expression after "by". An empty format is a valid
// placeholder delegate.
func (b *PropertySpecBuilder) Delegate(format string, args ...any) *PropertySpecBuilder {
	b.delegate = b.block(format, args)
	return b
}

func (b *PropertySpecBuilder) Getter(f FunSpec) *PropertySpecBuilder {
	if b.live() {
		b.getter = &f
	}
	return b
}

func (b *PropertySpecBuilder) Setter(f FunSpec) *PropertySpecBuilder {
	if b.live() {
		b.setter = &f
	}
	return b
}

// Tag attaches an opaque value, typically the metadata the property was
// derived from.
func (b *PropertySpecBuilder) Tag(tag any) *PropertySpecBuilder {
	if b.live() {
		b.tag = tag
	}
	return b
}

func (b *PropertySpecBuilder) block(format string, args []any) *CodeBlock {
	if !b.live() {
		return nil
	}
	cb, err := Of(format, args...)
	if err != nil {
		b.fail(errors.Wrapf(err, "property %s", b.name))
		return nil
	}
	return &cb
}

func (b *PropertySpecBuilder) Build() (PropertySpec, error) {
	if err := b.finish(); err != nil {
		return PropertySpec{}, err
	}
	switch {
	case b.name == "":
		return PropertySpec{}, errors.Wrap(ErrInvalidSpec, "property without a name")
	case b.typ == nil:
		return PropertySpec{}, errors.Wrapf(ErrInvalidSpec, "property %s has no type", b.name)
	case b.initializer != nil && b.delegate != nil:
		return PropertySpec{}, errors.Wrapf(ErrInvalidSpec, "property %s has both an initializer and a delegate", b.name)
	case b.getter != nil && !b.getter.IsGetter():
		return PropertySpec{}, errors.Wrapf(ErrInvalidSpec, "property %s getter was not built with NewGetterBuilder", b.name)
	case b.setter != nil && !b.setter.IsSetter():
		return PropertySpec{}, errors.Wrapf(ErrInvalidSpec, "property %s setter was not built with NewSetterBuilder", b.name)
	case b.setter != nil && !b.mutable:
		return PropertySpec{}, errors.WithHint(
			errors.Wrapf(ErrInvalidSpec, "read-only property %s cannot have a setter", b.name),
			"call Mutable(true) before Build")
	}
	return PropertySpec{
		name:        b.name,
		typ:         b.typ,
		modifiers:   b.modifiers.sorted(),
		mutable:     b.mutable,
		annotations: append([]AnnotationSpec(nil), b.annotations...),
		initializer: b.initializer,
		delegate:    b.delegate,
		getter:      b.getter,
		setter:      b.setter,
		tag:         b.tag,
	}, nil
}
