// Package mirror renders converted Kotlin classes as Go structs, so JSON
// produced on the Kotlin side can be decoded in Go.
package mirror

import (
	"bytes"
	"strings"
	"unicode"

	"github.com/cockroachdb/errors"
	"github.com/dave/jennifer/jen"
	"github.com/jinzhu/inflection"

	"github.com/cmmoran/kpoet/pkg/kotlin"
)

// ErrNameCollision is returned when two properties map to one Go field.
var ErrNameCollision = errors.New("field name collision")

type Generator struct {
	PackageName string
	// Pluralize also emits a slice type named after the plural of each class.
	Pluralize bool
}

func NewGenerator(packageName string, pluralize bool) Generator {
	return Generator{PackageName: packageName, Pluralize: pluralize}
}

// File builds a Go file holding one struct per class.
func (g Generator) File(specs ...kotlin.TypeSpec) (*jen.File, error) {
	f := jen.NewFile(g.PackageName)
	sources := make([]string, len(specs))
	for i, s := range specs {
		sources[i] = s.ClassName().Canonical()
	}
	f.HeaderComment("Code generated by kpoet from " + strings.Join(sources, ", ") + ". DO NOT EDIT.")

	for _, s := range specs {
		if err := g.generateStruct(f, s); err != nil {
			return nil, err
		}
	}
	return f, nil
}

// Render returns the formatted source of File(specs...).
func (g Generator) Render(specs ...kotlin.TypeSpec) ([]byte, error) {
	f, err := g.File(specs...)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err = f.Render(&buf); err != nil {
		return nil, errors.Wrap(err, "render mirror")
	}
	return buf.Bytes(), nil
}

func (g Generator) generateStruct(f *jen.File, s kotlin.TypeSpec) error {
	name := s.Name()
	seen := make(map[string]string)
	var fields []jen.Code
	for _, p := range s.Properties() {
		field := fieldName(p.Name())
		if prev, ok := seen[field]; ok {
			return errors.Wrapf(ErrNameCollision, "class %s: %s and %s both map to %s", name, prev, p.Name(), field)
		}
		seen[field] = p.Name()

		typ, nilable := goType(p.Type())
		tag := p.Name()
		if p.Type().IsNullable() || nilable {
			tag += ",omitempty"
		}
		fields = append(fields, jen.Id(field).Add(typ).Tag(map[string]string{"json": tag}).Comment(p.Type().Canonical()))
	}

	f.Commentf("%s mirrors the Kotlin class %s.", name, s.ClassName().Canonical())
	f.Type().Id(name).Struct(fields...)

	if g.Pluralize {
		plural := inflection.Plural(name)
		if plural == name {
			plural = name + "List"
		}
		f.Line()
		f.Type().Id(plural).Index().Id(name)
	}
	return nil
}

// goType maps t to a Go type, reporting whether the Go type can already
// hold nil. Nullable types that cannot hold nil become pointers.
func goType(t kotlin.TypeName) (jen.Code, bool) {
	code, nilable := baseType(t)
	if t.IsNullable() && !nilable {
		return jen.Op("*").Add(code), true
	}
	return code, nilable
}

var builtins = map[string]string{
	"kotlin.String":  "string",
	"kotlin.Char":    "rune",
	"kotlin.Boolean": "bool",
	"kotlin.Byte":    "int8",
	"kotlin.Short":   "int16",
	"kotlin.Int":     "int32",
	"kotlin.Long":    "int64",
	"kotlin.Float":   "float32",
	"kotlin.Double":  "float64",
	"kotlin.UByte":   "uint8",
	"kotlin.UShort":  "uint16",
	"kotlin.UInt":    "uint32",
	"kotlin.ULong":   "uint64",
}

var sliceTypes = map[string]bool{
	kotlin.List.Canonical():        true,
	kotlin.Set.Canonical():         true,
	kotlin.Collection.Canonical():  true,
	kotlin.Iterable.Canonical():    true,
	kotlin.MutableList.Canonical(): true,
	kotlin.MutableSet.Canonical():  true,
}

var mapTypes = map[string]bool{
	kotlin.Map.Canonical():        true,
	kotlin.MutableMap.Canonical(): true,
}

func baseType(t kotlin.TypeName) (jen.Code, bool) {
	switch v := t.(type) {
	case kotlin.ClassName:
		raw := v.NonNull().Canonical()
		if id, ok := builtins[raw]; ok {
			return jen.Id(id), false
		}
		if v.NonNull().Equal(kotlin.Any) {
			return jen.Id("any"), true
		}
		if raw == "kotlin.ByteArray" {
			return jen.Index().Byte(), true
		}
		if sliceTypes[raw] {
			return jen.Index().Id("any"), true
		}
		if mapTypes[raw] {
			return jen.Map(jen.String()).Id("any"), true
		}
		return jen.Id(v.SimpleName()), false
	case kotlin.ParameterizedTypeName:
		raw := v.Raw.Canonical()
		switch {
		case sliceTypes[raw] && len(v.Args) == 1:
			elem, _ := goType(v.Args[0])
			return jen.Index().Add(elem), true
		case mapTypes[raw] && len(v.Args) == 2:
			key, _ := goType(v.Args[0])
			val, _ := goType(v.Args[1])
			return jen.Map(key).Add(val), true
		}
		args := make([]jen.Code, len(v.Args))
		for i, a := range v.Args {
			args[i], _ = goType(a)
		}
		return jen.Id(v.Raw.SimpleName()).Types(args...), false
	}
	// Type variables and star projections.
	return jen.Id("any"), true
}

var initialisms = map[string]string{
	"id":   "ID",
	"url":  "URL",
	"uri":  "URI",
	"api":  "API",
	"json": "JSON",
	"http": "HTTP",
	"uuid": "UUID",
}

// fieldName exports a Kotlin property name: leading underscores are
// dropped and a whole-word initialism is upper-cased.
func fieldName(name string) string {
	name = strings.TrimLeft(name, "_")
	if name == "" {
		return "X"
	}
	if up, ok := initialisms[strings.ToLower(name)]; ok {
		return up
	}
	r := []rune(name)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}
