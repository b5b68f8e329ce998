package kotlin

import "strings"

// TypeName is a reference to a Kotlin type as it appears in source.
type TypeName interface {
	// Canonical returns the fully qualified spelling, including the trailing
	// '?' of nullable types.
	Canonical() string
	IsNullable() bool
	// AsNullable returns a nullable copy of the type.
	AsNullable() TypeName
}

// ClassName names a class, possibly nested: Names holds the outermost
// simple name first.
type ClassName struct {
	Package  string
	Names    []string
	nullable bool
}

// NewClassName returns the class pkg.names[0].names[1]...
func NewClassName(pkg string, names ...string) ClassName {
	return ClassName{Package: pkg, Names: append([]string(nil), names...)}
}

// SimpleName is the innermost name.
func (c ClassName) SimpleName() string {
	if len(c.Names) == 0 {
		return ""
	}
	return c.Names[len(c.Names)-1]
}

func (c ClassName) Canonical() string {
	var sb strings.Builder
	if c.Package != "" {
		sb.WriteString(c.Package)
		sb.WriteByte('.')
	}
	sb.WriteString(strings.Join(c.Names, "."))
	if c.nullable {
		sb.WriteByte('?')
	}
	return sb.String()
}

func (c ClassName) IsNullable() bool { return c.nullable }

func (c ClassName) AsNullable() TypeName {
	c.nullable = true
	return c
}

// NonNull drops the nullable marker.
func (c ClassName) NonNull() ClassName {
	c.nullable = false
	return c
}

// Equal compares package, names and nullability.
func (c ClassName) Equal(o ClassName) bool {
	return c.Canonical() == o.Canonical()
}

func (c ClassName) String() string { return c.Canonical() }

// ParameterizedTypeName is a generic class applied to type arguments.
type ParameterizedTypeName struct {
	Raw      ClassName
	Args     []TypeName
	nullable bool
}

// Parameterized applies args to raw.
func Parameterized(raw ClassName, args ...TypeName) ParameterizedTypeName {
	return ParameterizedTypeName{Raw: raw.NonNull(), Args: append([]TypeName(nil), args...)}
}

func (p ParameterizedTypeName) Canonical() string {
	var sb strings.Builder
	sb.WriteString(p.Raw.Canonical())
	sb.WriteByte('<')
	for i, a := range p.Args {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(a.Canonical())
	}
	sb.WriteByte('>')
	if p.nullable {
		sb.WriteByte('?')
	}
	return sb.String()
}

func (p ParameterizedTypeName) IsNullable() bool { return p.nullable }

func (p ParameterizedTypeName) AsNullable() TypeName {
	p.nullable = true
	return p
}

func (p ParameterizedTypeName) String() string { return p.Canonical() }

// TypeVariableName is a reference to a declared type parameter.
type TypeVariableName struct {
	Name     string
	nullable bool
}

func TypeVariable(name string) TypeVariableName {
	return TypeVariableName{Name: name}
}

func (v TypeVariableName) Canonical() string {
	if v.nullable {
		return v.Name + "?"
	}
	return v.Name
}

func (v TypeVariableName) IsNullable() bool { return v.nullable }

func (v TypeVariableName) AsNullable() TypeName {
	v.nullable = true
	return v
}

func (v TypeVariableName) String() string { return v.Canonical() }

type starProjection struct{}

// Star is the '*' projection used as a type argument.
var Star TypeName = starProjection{}

func (starProjection) Canonical() string      { return "*" }
func (starProjection) IsNullable() bool       { return false }
func (s starProjection) AsNullable() TypeName { return s }

var (
	Any     = NewClassName("kotlin", "Any")
	Unit    = NewClassName("kotlin", "Unit")
	String  = NewClassName("kotlin", "String")
	Boolean = NewClassName("kotlin", "Boolean")
	Byte    = NewClassName("kotlin", "Byte")
	Short   = NewClassName("kotlin", "Short")
	Int     = NewClassName("kotlin", "Int")
	Long    = NewClassName("kotlin", "Long")
	Char    = NewClassName("kotlin", "Char")
	Float   = NewClassName("kotlin", "Float")
	Double  = NewClassName("kotlin", "Double")

	List       = NewClassName("kotlin.collections", "List")
	Set        = NewClassName("kotlin.collections", "Set")
	Map        = NewClassName("kotlin.collections", "Map")
	Collection = NewClassName("kotlin.collections", "Collection")
	Iterable   = NewClassName("kotlin.collections", "Iterable")

	MutableList = NewClassName("kotlin.collections", "MutableList")
	MutableSet  = NewClassName("kotlin.collections", "MutableSet")
	MutableMap  = NewClassName("kotlin.collections", "MutableMap")

	JvmSynthetic = NewClassName("kotlin.jvm", "JvmSynthetic")
)
