// Package convert turns metadata descriptors into Kotlin declarations.
package convert

import (
	"log/slog"

	"github.com/cockroachdb/errors"

	"github.com/cmmoran/kpoet/internal/flagmap"
	"github.com/cmmoran/kpoet/pkg/km"
	"github.com/cmmoran/kpoet/pkg/kotlin"
)

var (
	// ErrUnsupportedFlag is returned for flag states that have no modifier,
	// such as local visibility or a NOT_DEFAULT accessor.
	ErrUnsupportedFlag = flagmap.ErrUnsupportedFlag
	// ErrConflictingMutability is returned for a property flagged both var
	// and val.
	ErrConflictingMutability = errors.New("property is both var and val")
)

// Converter holds the options of a conversion run.
type Converter struct {
	Opts Options

	log *slog.Logger
}

// New returns a Converter configured with opts.
func New(opts ...Option) *Converter {
	o := NewOptions()
	for _, fn := range opts {
		fn(o)
	}

	return NewWithOpts(o)
}

func NewWithOpts(opts *Options) *Converter {
	opts.Normalize()

	return &Converter{
		Opts: *opts,
		log:  slog.Default().With("component", "convert"),
	}
}

// PropertySpec converts p. resolve handles type parameter references in
// the property type. No partial spec is returned on error.
func (c *Converter) PropertySpec(p km.Property, resolve km.TypeParamResolver) (kotlin.PropertySpec, error) {
	log := c.log.With("property", p.Name, "flags", p.Flags.String())

	typ, err := p.ReturnType.TypeName(resolve)
	if err != nil {
		return kotlin.PropertySpec{}, errors.Wrapf(err, "property %s", p.Name)
	}
	b := kotlin.NewPropertyBuilder(p.Name, typ)

	visibility, err := flagmap.Visibility(p.Flags)
	if err != nil {
		return kotlin.PropertySpec{}, errors.Wrapf(err, "property %s", p.Name)
	}
	override := p.Flags.IsOverride()
	b.AddModifiers(visibility)
	b.AddModifiers(flagmap.FilterFinal(flagmap.Modalities(p.Flags), override)...)
	if override {
		b.AddModifiers(kotlin.Override)
	}
	if p.Flags.IsConst() {
		b.AddModifiers(kotlin.Const)
	}

	switch {
	case p.Flags.IsVar() && p.Flags.IsVal():
		return kotlin.PropertySpec{}, errors.WithHint(
			errors.Wrapf(ErrConflictingMutability, "property %s", p.Name),
			"well-formed metadata sets exactly one of var and val")
	case p.Flags.IsVar():
		b.Mutable(true)
	case p.Flags.IsVal():
		b.Mutable(false)
	}

	if p.Flags.IsDelegated() {
		// The delegate expression is not part of the metadata.
		b.Delegate("")
	}
	if p.Flags.IsExpect() {
		b.AddModifiers(kotlin.Expect)
	}
	if p.Flags.IsExternal() {
		b.AddModifiers(kotlin.External)
	}
	if p.Flags.IsLateinit() {
		b.AddModifiers(kotlin.Lateinit)
	}
	if p.Flags.IsSynthesized() {
		b.AddAnnotation(kotlin.AnnotationSpec{Type: kotlin.JvmSynthetic})
	}

	if p.Flags.HasGetter() {
		flags := p.SetterFlags
		if c.Opts.UseGetterFlags {
			flags = p.GetterFlags
		}
		getter, ok, err := accessor(kotlin.NewGetterBuilder(), flags, override)
		if err != nil {
			return kotlin.PropertySpec{}, errors.Wrapf(err, "property %s getter", p.Name)
		}
		if ok {
			log.Debug("explicit getter", "modifiers", getter.Modifiers())
			b.Getter(getter)
		}
	}
	if p.Flags.HasSetter() {
		setter, ok, err := accessor(kotlin.NewSetterBuilder(), p.SetterFlags, override)
		if err != nil {
			return kotlin.PropertySpec{}, errors.Wrapf(err, "property %s setter", p.Name)
		}
		if ok {
			log.Debug("explicit setter", "modifiers", setter.Modifiers())
			b.Setter(setter)
		}
	}

	spec, err := b.Tag(p).Build()
	if err != nil {
		return kotlin.PropertySpec{}, err
	}
	log.Debug("converted property", "modifiers", spec.Modifiers(), "mutable", spec.Mutable())
	return spec, nil
}

// accessor builds an accessor from flags, reporting false when the flags
// describe a default accessor that needs no declaration. FINAL is kept
// only when the property overrides.
func accessor(b *kotlin.FunSpecBuilder, flags km.Flags, override bool) (kotlin.FunSpec, bool, error) {
	visibility, err := flagmap.Visibility(flags)
	if err != nil {
		return kotlin.FunSpec{}, false, err
	}
	modalities := flagmap.FilterFinal(flagmap.Modalities(flags), override)
	accessorFlags := flags.AccessorFlags()
	if visibility == kotlin.Public && len(modalities) == 0 && len(accessorFlags) == 0 {
		return kotlin.FunSpec{}, false, nil
	}
	mods, err := flagmap.AccessorModifiers(accessorFlags)
	if err != nil {
		return kotlin.FunSpec{}, false, err
	}
	fn, err := b.AddModifiers(visibility).
		AddModifiers(modalities...).
		AddModifiers(mods...).
		Build()
	if err != nil {
		return kotlin.FunSpec{}, false, err
	}
	return fn, true, nil
}

// Class converts every property of c that the options keep. The class
// carries c's visibility, its non-final modality and its type parameters.
func (c *Converter) Class(kc km.Class) (kotlin.TypeSpec, error) {
	log := c.log.With("class", kc.Name)

	name, err := km.ParseClassName(kc.Name)
	if err != nil {
		return kotlin.TypeSpec{}, err
	}
	b := kotlin.NewClassBuilder(name)
	if kc.Flags != 0 {
		visibility, err := flagmap.Visibility(kc.Flags)
		if err != nil {
			return kotlin.TypeSpec{}, errors.Wrapf(err, "class %s", kc.Name)
		}
		b.AddModifiers(visibility)
		b.AddModifiers(flagmap.FilterFinal(flagmap.Modalities(kc.Flags), false)...)
	}
	for _, tp := range kc.TypeParameters {
		b.AddTypeVariable(kotlin.TypeVariable(tp.Name))
	}

	resolve := kc.TypeParameterResolver()
	for _, p := range kc.Properties {
		if shouldOmitProperty(p, &c.Opts) {
			log.Debug("omitting property", "property", p.Name)
			continue
		}
		spec, err := c.PropertySpec(p, resolve)
		if err != nil {
			return kotlin.TypeSpec{}, errors.Wrapf(err, "class %s", kc.Name)
		}
		b.AddProperty(spec)
	}

	spec, err := b.Tag(kc).Build()
	if err != nil {
		return kotlin.TypeSpec{}, err
	}
	log.Debug("converted class", "properties", len(spec.Properties()))
	return spec, nil
}
