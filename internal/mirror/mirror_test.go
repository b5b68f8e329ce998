package mirror

import (
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"go/types"
	"reflect"
	"strings"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/dave/jennifer/jen"
	"github.com/stretchr/testify/require"

	"github.com/cmmoran/kpoet/pkg/kotlin"
)

func property(t *testing.T, name string, typ kotlin.TypeName) kotlin.PropertySpec {
	t.Helper()
	p, err := kotlin.NewPropertyBuilder(name, typ).AddModifiers(kotlin.Public).Build()
	require.NoError(t, err)
	return p
}

func userSpec(t *testing.T) kotlin.TypeSpec {
	t.Helper()
	address := kotlin.NewClassName("com.example", "Address")
	spec, err := kotlin.NewClassBuilder(kotlin.NewClassName("com.example", "User")).
		AddProperty(property(t, "id", kotlin.Long)).
		AddProperty(property(t, "name", kotlin.String)).
		AddProperty(property(t, "nickname", kotlin.String.AsNullable())).
		AddProperty(property(t, "tags", kotlin.Parameterized(kotlin.List, kotlin.String))).
		AddProperty(property(t, "scores", kotlin.Parameterized(kotlin.Map, kotlin.String, kotlin.Double))).
		AddProperty(property(t, "address", address.AsNullable())).
		AddProperty(property(t, "payload", kotlin.TypeVariable("T"))).
		AddProperty(property(t, "_active", kotlin.Boolean)).
		Build()
	require.NoError(t, err)
	return spec
}

type field struct {
	typ string
	tag string
}

func parseStructs(t *testing.T, src []byte) (*ast.File, map[string]map[string]field) {
	t.Helper()
	file, err := parser.ParseFile(token.NewFileSet(), "mirror_gen.go", src, parser.ParseComments)
	require.NoError(t, err, string(src))

	out := map[string]map[string]field{}
	ast.Inspect(file, func(n ast.Node) bool {
		ts, ok := n.(*ast.TypeSpec)
		if !ok {
			return true
		}
		st, ok := ts.Type.(*ast.StructType)
		if !ok {
			return true
		}
		fields := map[string]field{}
		for _, f := range st.Fields.List {
			tag := ""
			if f.Tag != nil {
				tag = reflect.StructTag(strings.Trim(f.Tag.Value, "`")).Get("json")
			}
			for _, n := range f.Names {
				fields[n.Name] = field{typ: types.ExprString(f.Type), tag: tag}
			}
		}
		out[ts.Name.Name] = fields
		return true
	})
	return file, out
}

func TestRender(t *testing.T) {
	src, err := NewGenerator("model", false).Render(userSpec(t))
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(string(src), "// Code generated by kpoet from com.example.User. DO NOT EDIT."))
	require.Contains(t, string(src), "// User mirrors the Kotlin class com.example.User.")

	file, structs := parseStructs(t, src)
	require.Equal(t, "model", file.Name.Name)
	require.Equal(t, map[string]map[string]field{
		"User": {
			"ID":       {typ: "int64", tag: "id"},
			"Name":     {typ: "string", tag: "name"},
			"Nickname": {typ: "*string", tag: "nickname,omitempty"},
			"Tags":     {typ: "[]string", tag: "tags,omitempty"},
			"Scores":   {typ: "map[string]float64", tag: "scores,omitempty"},
			"Address":  {typ: "*Address", tag: "address,omitempty"},
			"Payload":  {typ: "any", tag: "payload,omitempty"},
			"Active":   {typ: "bool", tag: "_active"},
		},
	}, structs)
}

func TestRenderPluralize(t *testing.T) {
	src, err := NewGenerator("model", true).Render(userSpec(t))
	require.NoError(t, err)

	file, _ := parseStructs(t, src)
	var plural *ast.TypeSpec
	ast.Inspect(file, func(n ast.Node) bool {
		if ts, ok := n.(*ast.TypeSpec); ok && ts.Name.Name == "Users" {
			plural = ts
		}
		return true
	})
	require.NotNil(t, plural, string(src))
	require.Equal(t, "[]User", types.ExprString(plural.Type))
}

func TestGoType(ttt *testing.T) {
	tests := []struct {
		in   kotlin.TypeName
		want string
	}{
		{in: kotlin.Int, want: "int32"},
		{in: kotlin.Int.AsNullable(), want: "*int32"},
		{in: kotlin.Any, want: "any"},
		{in: kotlin.Any.AsNullable(), want: "any"},
		{in: kotlin.Parameterized(kotlin.Set, kotlin.Long.AsNullable()), want: "[]*int64"},
		{in: kotlin.Parameterized(kotlin.List, kotlin.Star), want: "[]any"},
		{in: kotlin.Parameterized(kotlin.NewClassName("com.example", "Box"), kotlin.String), want: "Box[string]"},
		{in: kotlin.NewClassName("kotlin", "ByteArray"), want: "[]byte"},
		{in: kotlin.Map, want: "map[string]any"},
	}
	for _, tt := range tests {
		ttt.Run(tt.in.Canonical(), func(t *testing.T) {
			code, _ := goType(tt.in)
			decl := fmt.Sprintf("%#v", jen.Var().Id("_").Add(code))
			require.Equal(t, "var _ "+tt.want, strings.TrimSpace(decl))
		})
	}
}

func TestFieldNameCollision(t *testing.T) {
	spec, err := kotlin.NewClassBuilder(kotlin.NewClassName("com.example", "Twin")).
		AddProperty(property(t, "value", kotlin.Int)).
		AddProperty(property(t, "_value", kotlin.Int)).
		Build()
	require.NoError(t, err)

	_, err = NewGenerator("model", false).Render(spec)
	require.True(t, errors.Is(err, ErrNameCollision))
}

func TestFieldName(t *testing.T) {
	require.Equal(t, "Name", fieldName("name"))
	require.Equal(t, "URL", fieldName("url"))
	require.Equal(t, "UserID", fieldName("userID"))
	require.Equal(t, "Hash", fieldName("__hash"))
	require.Equal(t, "X", fieldName("_"))
}
