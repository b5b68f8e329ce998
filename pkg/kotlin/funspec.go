package kotlin

import (
	"github.com/cockroachdb/errors"
)

// AnnotationSpec is a marker annotation without arguments.
type AnnotationSpec struct {
	Type ClassName
}

type accessorKind int

const (
	notAccessor accessorKind = iota
	getterAccessor
	setterAccessor
)

// FunSpec is a built function or property accessor.
type FunSpec struct {
	name        string
	accessor    accessorKind
	modifiers   []Modifier
	annotations []AnnotationSpec
	params      []ParameterSpec
	returnType  TypeName
	body        CodeBlock
}

func (f FunSpec) Name() string                  { return f.name }
func (f FunSpec) Modifiers() []Modifier         { return append([]Modifier(nil), f.modifiers...) }
func (f FunSpec) Annotations() []AnnotationSpec { return append([]AnnotationSpec(nil), f.annotations...) }
func (f FunSpec) Parameters() []ParameterSpec   { return append([]ParameterSpec(nil), f.params...) }
func (f FunSpec) ReturnType() TypeName          { return f.returnType }
func (f FunSpec) Body() CodeBlock               { return f.body }
func (f FunSpec) IsGetter() bool                { return f.accessor == getterAccessor }
func (f FunSpec) IsSetter() bool                { return f.accessor == setterAccessor }

// HasModifier reports whether m was added to the function.
func (f FunSpec) HasModifier(m Modifier) bool {
	for _, x := range f.modifiers {
		if x == m {
			return true
		}
	}
	return false
}

// FunSpecBuilder accumulates a function. Its body supports the same
// statement and control flow operations as CodeBlockBuilder.
type FunSpecBuilder struct {
	errorState
	name        string
	accessor    accessorKind
	modifiers   modifierSet
	annotations []AnnotationSpec
	params      []ParameterSpec
	returnType  TypeName
	body        *CodeBlockBuilder
}

func NewFunBuilder(name string) *FunSpecBuilder {
	return newFunBuilder(name, notAccessor)
}

// NewGetterBuilder starts a property getter.
func NewGetterBuilder() *FunSpecBuilder {
	return newFunBuilder("get()", getterAccessor)
}

// NewSetterBuilder starts a property setter.
func NewSetterBuilder() *FunSpecBuilder {
	return newFunBuilder("set()", setterAccessor)
}

func newFunBuilder(name string, kind accessorKind) *FunSpecBuilder {
	return &FunSpecBuilder{
		name:      name,
		accessor:  kind,
		modifiers: make(modifierSet),
		body:      NewCodeBlockBuilder(),
	}
}

func (b *FunSpecBuilder) AddModifiers(mods ...Modifier) *FunSpecBuilder {
	if !b.live() {
		return b
	}
	if err := checkModifiers(mods); err != nil {
		b.fail(errors.Wrapf(err, "function %s", b.name))
		return b
	}
	b.modifiers.add(mods...)
	return b
}

func (b *FunSpecBuilder) AddAnnotation(a AnnotationSpec) *FunSpecBuilder {
	if b.live() {
		b.annotations = append(b.annotations, a)
	}
	return b
}

func (b *FunSpecBuilder) AddParameter(p ParameterSpec) *FunSpecBuilder {
	if b.live() {
		b.params = append(b.params, p)
	}
	return b
}

func (b *FunSpecBuilder) Returns(t TypeName) *FunSpecBuilder {
	if b.live() {
		b.returnType = t
	}
	return b
}

// Body returns the builder accumulating the function body.
func (b *FunSpecBuilder) Body() *CodeBlockBuilder {
	return b.body
}

func (b *FunSpecBuilder) AddStatement(format string, args ...any) *FunSpecBuilder {
	b.body.AddStatement(format, args...)
	return b
}

func (b *FunSpecBuilder) AddCode(format string, args ...any) *FunSpecBuilder {
	b.body.Add(format, args...)
	return b
}

func (b *FunSpecBuilder) AddCodeBlock(cb CodeBlock) *FunSpecBuilder {
	b.body.AddBlock(cb)
	return b
}

func (b *FunSpecBuilder) BeginControlFlow(format string, args ...any) *FunSpecBuilder {
	b.body.BeginControlFlow(format, args...)
	return b
}

func (b *FunSpecBuilder) NextControlFlow(format string, args ...any) *FunSpecBuilder {
	b.body.NextControlFlow(format, args...)
	return b
}

func (b *FunSpecBuilder) EndControlFlow() *FunSpecBuilder {
	b.body.EndControlFlow()
	return b
}

func (b *FunSpecBuilder) Build() (FunSpec, error) {
	if err := b.finish(); err != nil {
		return FunSpec{}, err
	}
	body, err := b.body.Build()
	if err != nil {
		return FunSpec{}, errors.Wrapf(err, "function %s", b.name)
	}
	switch {
	case b.accessor == notAccessor && b.name == "":
		return FunSpec{}, errors.Wrap(ErrInvalidSpec, "function without a name")
	case b.accessor == getterAccessor && len(b.params) > 0:
		return FunSpec{}, errors.Wrap(ErrInvalidSpec, "getter cannot have parameters")
	case b.accessor == setterAccessor && len(b.params) > 1:
		return FunSpec{}, errors.Wrapf(ErrInvalidSpec, "setter takes at most one parameter, got %d", len(b.params))
	case b.accessor != notAccessor && b.returnType != nil:
		return FunSpec{}, errors.Wrap(ErrInvalidSpec, "accessors cannot declare a return type")
	}
	return FunSpec{
		name:        b.name,
		accessor:    b.accessor,
		modifiers:   b.modifiers.sorted(),
		annotations: append([]AnnotationSpec(nil), b.annotations...),
		params:      append([]ParameterSpec(nil), b.params...),
		returnType:  b.returnType,
		body:        body,
	}, nil
}

func checkModifiers(mods []Modifier) error {
	for _, m := range mods {
		if _, ok := modifierKeywords[m]; !ok {
			return errors.Wrapf(ErrInvalidSpec, "unknown modifier %d", int(m))
		}
	}
	return nil
}
