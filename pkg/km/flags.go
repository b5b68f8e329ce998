// Package km describes decoded Kotlin compiler metadata: declaration flag
// bitsets, type references and property/class descriptors. Values are
// usually produced by a metadata reader, or loaded from YAML documents
// that mirror them.
package km

import (
	"strings"

	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"
)

// Flags is a declaration flag bitset. Visibility and modality use one bit
// per value; well-formed metadata sets exactly one visibility bit and at
// most one modality bit, but nothing here enforces that.
type Flags uint32

const (
	FlagHasAnnotations Flags = 1 << iota
	FlagInternal
	FlagPrivate
	FlagProtected
	FlagPublic
	FlagPrivateToThis
	FlagLocal
	FlagFinal
	FlagOpen
	FlagAbstract
	FlagSealed
	FlagOverride
	FlagVar
	FlagVal
	FlagConst
	FlagLateinit
	FlagHasConstant
	FlagExternal
	FlagDelegated
	FlagExpect
	FlagSynthesized
	FlagHasGetter
	FlagHasSetter
	FlagDeclaration
	FlagDelegation
	// Accessor-only flags.
	FlagNotDefault
	FlagExternalAccessor
	FlagInlineAccessor
)

var flagNames = []struct {
	flag Flags
	name string
}{
	{FlagHasAnnotations, "has_annotations"},
	{FlagInternal, "internal"},
	{FlagPrivate, "private"},
	{FlagProtected, "protected"},
	{FlagPublic, "public"},
	{FlagPrivateToThis, "private_to_this"},
	{FlagLocal, "local"},
	{FlagFinal, "final"},
	{FlagOpen, "open"},
	{FlagAbstract, "abstract"},
	{FlagSealed, "sealed"},
	{FlagOverride, "override"},
	{FlagVar, "var"},
	{FlagVal, "val"},
	{FlagConst, "const"},
	{FlagLateinit, "lateinit"},
	{FlagHasConstant, "has_constant"},
	{FlagExternal, "external"},
	{FlagDelegated, "delegated"},
	{FlagExpect, "expect"},
	{FlagSynthesized, "synthesized"},
	{FlagHasGetter, "has_getter"},
	{FlagHasSetter, "has_setter"},
	{FlagDeclaration, "declaration"},
	{FlagDelegation, "delegation"},
	{FlagNotDefault, "not_default"},
	{FlagExternalAccessor, "external_accessor"},
	{FlagInlineAccessor, "inline_accessor"},
}

// ErrUnknownFlag is returned when parsing a flag name that has no bit.
var ErrUnknownFlag = errors.New("unknown flag")

// With returns f with bits set.
func (f Flags) With(bits ...Flags) Flags {
	for _, b := range bits {
		f |= b
	}
	return f
}

// Has reports whether every bit of b is set.
func (f Flags) Has(b Flags) bool { return f&b == b }

func (f Flags) HasAnnotations() bool     { return f.Has(FlagHasAnnotations) }
func (f Flags) IsInternal() bool         { return f.Has(FlagInternal) }
func (f Flags) IsPrivate() bool          { return f.Has(FlagPrivate) }
func (f Flags) IsProtected() bool        { return f.Has(FlagProtected) }
func (f Flags) IsPublic() bool           { return f.Has(FlagPublic) }
func (f Flags) IsPrivateToThis() bool    { return f.Has(FlagPrivateToThis) }
func (f Flags) IsLocal() bool            { return f.Has(FlagLocal) }
func (f Flags) IsFinal() bool            { return f.Has(FlagFinal) }
func (f Flags) IsOpen() bool             { return f.Has(FlagOpen) }
func (f Flags) IsAbstract() bool         { return f.Has(FlagAbstract) }
func (f Flags) IsSealed() bool           { return f.Has(FlagSealed) }
func (f Flags) IsOverride() bool         { return f.Has(FlagOverride) }
func (f Flags) IsVar() bool              { return f.Has(FlagVar) }
func (f Flags) IsVal() bool              { return f.Has(FlagVal) }
func (f Flags) IsConst() bool            { return f.Has(FlagConst) }
func (f Flags) IsLateinit() bool         { return f.Has(FlagLateinit) }
func (f Flags) HasConstant() bool        { return f.Has(FlagHasConstant) }
func (f Flags) IsExternal() bool         { return f.Has(FlagExternal) }
func (f Flags) IsDelegated() bool        { return f.Has(FlagDelegated) }
func (f Flags) IsExpect() bool           { return f.Has(FlagExpect) }
func (f Flags) IsSynthesized() bool      { return f.Has(FlagSynthesized) }
func (f Flags) HasGetter() bool          { return f.Has(FlagHasGetter) }
func (f Flags) HasSetter() bool          { return f.Has(FlagHasSetter) }
func (f Flags) IsDeclaration() bool      { return f.Has(FlagDeclaration) }
func (f Flags) IsDelegation() bool       { return f.Has(FlagDelegation) }
func (f Flags) IsNotDefault() bool       { return f.Has(FlagNotDefault) }
func (f Flags) IsExternalAccessor() bool { return f.Has(FlagExternalAccessor) }
func (f Flags) IsInlineAccessor() bool   { return f.Has(FlagInlineAccessor) }

// Names lists the names of the set bits in bit order.
func (f Flags) Names() []string {
	var out []string
	for _, fn := range flagNames {
		if f.Has(fn.flag) {
			out = append(out, fn.name)
		}
	}
	return out
}

func (f Flags) String() string {
	if f == 0 {
		return "none"
	}
	return strings.Join(f.Names(), "|")
}

// ParseFlags parses flag names, as produced by Names, into a bitset.
func ParseFlags(names ...string) (Flags, error) {
	var f Flags
	for _, n := range names {
		bit, ok := lookupFlag(strings.ToLower(strings.TrimSpace(n)))
		if !ok {
			return 0, errors.Wrapf(ErrUnknownFlag, "%q", n)
		}
		f |= bit
	}
	return f, nil
}

func lookupFlag(name string) (Flags, bool) {
	for _, fn := range flagNames {
		if fn.name == name {
			return fn.flag, true
		}
	}
	return 0, false
}

// UnmarshalYAML accepts a sequence of flag names or a raw integer.
func (f *Flags) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.SequenceNode:
		var names []string
		if err := node.Decode(&names); err != nil {
			return errors.Wrap(err, "decode flag names")
		}
		parsed, err := ParseFlags(names...)
		if err != nil {
			return errors.Wrapf(err, "line %d", node.Line)
		}
		*f = parsed
		return nil
	case yaml.ScalarNode:
		var raw uint32
		if err := node.Decode(&raw); err != nil {
			return errors.Wrapf(err, "line %d: flags must be a list of names or an integer", node.Line)
		}
		*f = Flags(raw)
		return nil
	}
	return errors.Newf("line %d: flags must be a list of names or an integer", node.Line)
}

func (f Flags) MarshalYAML() (any, error) {
	names := f.Names()
	if names == nil {
		names = []string{}
	}
	return names, nil
}

// AccessorFlag is a property accessor characteristic.
type AccessorFlag int

const (
	AccessorExternal AccessorFlag = iota
	AccessorInline
	AccessorNotDefault
)

func (a AccessorFlag) String() string {
	switch a {
	case AccessorExternal:
		return "EXTERNAL"
	case AccessorInline:
		return "INLINE"
	case AccessorNotDefault:
		return "NOT_DEFAULT"
	}
	return "AccessorFlag(invalid)"
}

// AccessorFlags returns the accessor characteristics set in f.
func (f Flags) AccessorFlags() []AccessorFlag {
	var out []AccessorFlag
	if f.IsExternalAccessor() {
		out = append(out, AccessorExternal)
	}
	if f.IsInlineAccessor() {
		out = append(out, AccessorInline)
	}
	if f.IsNotDefault() {
		out = append(out, AccessorNotDefault)
	}
	return out
}
