// Package flagmap projects metadata flag bitsets onto Kotlin modifiers.
// States the projection has no answer for are reported as errors.
package flagmap

import (
	"slices"

	"github.com/cockroachdb/errors"

	"github.com/cmmoran/kpoet/pkg/km"
	"github.com/cmmoran/kpoet/pkg/kotlin"
)

// ErrUnsupportedFlag is returned for flag states that have no modifier.
var ErrUnsupportedFlag = errors.New("unsupported flag")

// Visibility returns the single visibility modifier of f. Bits are tested
// as internal, private, protected, public; the first one set wins.
func Visibility(f km.Flags) (kotlin.Modifier, error) {
	switch {
	case f.IsInternal():
		return kotlin.Internal, nil
	case f.IsPrivate():
		return kotlin.Private, nil
	case f.IsProtected():
		return kotlin.Protected, nil
	case f.IsPublic():
		return kotlin.Public, nil
	case f.IsPrivateToThis():
		return 0, errors.WithHint(
			errors.Wrap(ErrUnsupportedFlag, "private_to_this visibility"),
			"private-to-this has no source modifier")
	case f.IsLocal():
		return 0, errors.WithHint(
			errors.Wrap(ErrUnsupportedFlag, "local visibility"),
			"local declarations cannot be regenerated as members")
	}
	return 0, errors.Wrapf(ErrUnsupportedFlag, "no visibility in %s", f)
}

// Modalities returns every modality bit set in f, in the order final,
// open, abstract, sealed.
func Modalities(f km.Flags) []kotlin.Modifier {
	var out []kotlin.Modifier
	if f.IsFinal() {
		out = append(out, kotlin.Final)
	}
	if f.IsOpen() {
		out = append(out, kotlin.Open)
	}
	if f.IsAbstract() {
		out = append(out, kotlin.Abstract)
	}
	if f.IsSealed() {
		out = append(out, kotlin.Sealed)
	}
	return out
}

// FilterFinal drops FINAL from mods unless the declaration overrides.
// Members are final by default, so FINAL only says something on an
// override.
func FilterFinal(mods []kotlin.Modifier, override bool) []kotlin.Modifier {
	if override {
		return mods
	}
	return slices.DeleteFunc(slices.Clone(mods), func(m kotlin.Modifier) bool {
		return m == kotlin.Final
	})
}

// AccessorModifiers maps accessor characteristics onto modifiers.
func AccessorModifiers(flags []km.AccessorFlag) ([]kotlin.Modifier, error) {
	out := make([]kotlin.Modifier, 0, len(flags))
	for _, a := range flags {
		switch a {
		case km.AccessorExternal:
			out = append(out, kotlin.External)
		case km.AccessorInline:
			out = append(out, kotlin.Inline)
		case km.AccessorNotDefault:
			return nil, errors.WithHint(
				errors.Wrap(ErrUnsupportedFlag, "not_default accessor"),
				"accessors with a custom body cannot be reconstructed from metadata")
		default:
			return nil, errors.AssertionFailedf("unknown accessor flag %d", int(a))
		}
	}
	return out, nil
}
