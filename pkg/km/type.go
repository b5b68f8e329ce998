package km

import (
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/cmmoran/kpoet/pkg/kotlin"
)

var (
	// ErrInvalidType is returned for a type reference that names neither a
	// class nor a type parameter.
	ErrInvalidType = errors.New("invalid type reference")
	// ErrUnresolvedTypeParameter is returned when a type parameter index has
	// no declaration the resolver knows of.
	ErrUnresolvedTypeParameter = errors.New("unresolved type parameter")
)

// TypeParamResolver maps a type parameter index to the type it stands for.
type TypeParamResolver func(index int) (kotlin.TypeName, error)

// Type is a type reference as found in metadata. Exactly one of Class,
// TypeParameter or Star is expected to be set.
type Type struct {
	// Class is the JVM-style internal name, e.g. "kotlin/collections/Map.Entry".
	Class         string `yaml:"class,omitempty" json:"class,omitempty"`
	TypeParameter *int   `yaml:"type_parameter,omitempty" json:"type_parameter,omitempty"`
	Star          bool   `yaml:"star,omitempty" json:"star,omitempty"`
	Arguments     []Type `yaml:"arguments,omitempty" json:"arguments,omitempty"`
	Nullable      bool   `yaml:"nullable,omitempty" json:"nullable,omitempty"`
}

// ClassType is a shorthand for a class reference.
func ClassType(internalName string, args ...Type) Type {
	return Type{Class: internalName, Arguments: args}
}

// ParamType is a shorthand for a type parameter reference.
func ParamType(index int) Type {
	return Type{TypeParameter: &index}
}

// TypeName resolves t, using resolve for type parameter references.
func (t Type) TypeName(resolve TypeParamResolver) (kotlin.TypeName, error) {
	if t.Star {
		return kotlin.Star, nil
	}
	if t.TypeParameter != nil {
		if resolve == nil {
			return nil, errors.Wrapf(ErrUnresolvedTypeParameter, "index %d without a resolver", *t.TypeParameter)
		}
		tn, err := resolve(*t.TypeParameter)
		if err != nil {
			return nil, err
		}
		return nullable(tn, t.Nullable), nil
	}
	if t.Class == "" {
		return nil, errors.Wrap(ErrInvalidType, "neither a class nor a type parameter")
	}
	cn, err := ParseClassName(t.Class)
	if err != nil {
		return nil, err
	}
	if len(t.Arguments) == 0 {
		return nullable(cn, t.Nullable), nil
	}
	args := make([]kotlin.TypeName, len(t.Arguments))
	for i, a := range t.Arguments {
		if args[i], err = a.TypeName(resolve); err != nil {
			return nil, errors.Wrapf(err, "argument %d of %s", i, t.Class)
		}
	}
	return nullable(kotlin.Parameterized(cn, args...), t.Nullable), nil
}

func nullable(tn kotlin.TypeName, yes bool) kotlin.TypeName {
	if yes {
		return tn.AsNullable()
	}
	return tn
}

// ParseClassName converts an internal name such as "kotlin/collections/Map.Entry"
// to a ClassName: '/' separates packages and '.' separates nested classes.
func ParseClassName(internalName string) (kotlin.ClassName, error) {
	if strings.HasPrefix(internalName, ".") {
		return kotlin.ClassName{}, errors.WithHint(
			errors.Wrapf(ErrInvalidType, "local class %q", internalName),
			"local classes have no name that can be referenced from generated code")
	}
	pkg, names := "", internalName
	if i := strings.LastIndexByte(internalName, '/'); i >= 0 {
		pkg, names = strings.ReplaceAll(internalName[:i], "/", "."), internalName[i+1:]
	}
	parts := strings.Split(names, ".")
	for _, p := range parts {
		if p == "" {
			return kotlin.ClassName{}, errors.Wrapf(ErrInvalidType, "malformed class name %q", internalName)
		}
	}
	return kotlin.NewClassName(pkg, parts...), nil
}
