package kotlin

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestPropertyRendering(ttt *testing.T) {
	privateSetter, err := NewSetterBuilder().AddModifiers(Private).Build()
	require.NoError(ttt, err)
	openGetter, err := NewGetterBuilder().AddModifiers(Open, Public).Build()
	require.NoError(ttt, err)

	tests := []struct {
		name  string
		build func() (PropertySpec, error)
		want  string
	}{
		{
			name: "modifiers render in canonical order",
			build: func() (PropertySpec, error) {
				return NewPropertyBuilder("name", String).
					AddModifiers(Override, Open, Public).
					Build()
			},
			want: "public open override val name: kotlin.String\n",
		},
		{
			name: "mutable with private setter",
			build: func() (PropertySpec, error) {
				return NewPropertyBuilder("count", Int).
					AddModifiers(Public).
					Mutable(true).
					Setter(privateSetter).
					Build()
			},
			want: "public var count: kotlin.Int\n    private set\n",
		},
		{
			name: "getter and annotation",
			build: func() (PropertySpec, error) {
				return NewPropertyBuilder("tags", Parameterized(List, String).AsNullable()).
					AddAnnotation(AnnotationSpec{Type: JvmSynthetic}).
					AddModifiers(Internal).
					Getter(openGetter).
					Build()
			},
			want: "@kotlin.jvm.JvmSynthetic\ninternal val tags: kotlin.collections.List<kotlin.String>?\n    public open get\n",
		},
		{
			name: "placeholder delegate",
			build: func() (PropertySpec, error) {
				return NewPropertyBuilder("lazyValue", Long).Delegate("").Build()
			},
			want: "val lazyValue: kotlin.Long by\n",
		},
		{
			name: "initializer",
			build: func() (PropertySpec, error) {
				return NewPropertyBuilder("greeting", String).
					AddModifiers(Const, Private).
					Initializer("%S", "hi").
					Build()
			},
			want: "private const val greeting: kotlin.String = \"hi\"\n",
		},
	}
	for _, tt := range tests {
		ttt.Run(tt.name, func(t *testing.T) {
			got, err := tt.build()
			require.NoError(t, err)
			require.Empty(t, cmp.Diff(tt.want, got.String()))
		})
	}
}

func TestPropertyValidation(ttt *testing.T) {
	setter, err := NewSetterBuilder().AddModifiers(Private).Build()
	require.NoError(ttt, err)
	getter, err := NewGetterBuilder().Build()
	require.NoError(ttt, err)

	tests := []struct {
		name string
		b    *PropertySpecBuilder
	}{
		{name: "setter on val", b: NewPropertyBuilder("a", Int).Setter(setter)},
		{name: "getter used as setter", b: NewPropertyBuilder("a", Int).Mutable(true).Setter(getter)},
		{name: "initializer and delegate", b: NewPropertyBuilder("a", Int).Initializer("1").Delegate("lazy { 1 }")},
		{name: "missing type", b: NewPropertyBuilder("a", nil)},
		{name: "missing name", b: NewPropertyBuilder("", Int)},
		{name: "invalid modifier", b: NewPropertyBuilder("a", Int).AddModifiers(Modifier(0))},
	}
	for _, tt := range tests {
		ttt.Run(tt.name, func(t *testing.T) {
			_, err := tt.b.Build()
			require.True(t, errors.Is(err, ErrInvalidSpec), "got %v", err)
		})
	}
}

func TestFunctionRendering(t *testing.T) {
	def, err := Of("%S", "world")
	require.NoError(t, err)
	who, err := NewParameterBuilder("who", String).
		AddKdoc("the name to greet").
		SetDefaultValue(def).
		Build()
	require.NoError(t, err)

	fn, err := NewFunBuilder("greet").
		AddModifiers(Public).
		AddParameter(who).
		Returns(String).
		BeginControlFlow("if (%N.isEmpty())", who).
		AddStatement("return %S", "nobody").
		EndControlFlow().
		AddStatement("return %P", "unused").
		Build()
	require.True(t, errors.Is(err, ErrInvalidFormat))

	fn, err = NewFunBuilder("greet").
		AddModifiers(Public).
		AddParameter(who).
		Returns(String).
		BeginControlFlow("if (%N.isEmpty())", who).
		AddStatement("return %S", "nobody").
		EndControlFlow().
		AddStatement("return %S + %N", "hello ", who).
		Build()
	require.NoError(t, err)

	want := `/**
 * @param who the name to greet
 */
public fun greet(who: kotlin.String = "world"): kotlin.String {
    if (who.isEmpty()) {
        return "nobody"
    }
    return "hello " + who
}
`
	require.Empty(t, cmp.Diff(want, fn.String()))
}

func TestAccessorValidation(t *testing.T) {
	p, err := NewParameterBuilder("value", Int).Build()
	require.NoError(t, err)

	_, err = NewGetterBuilder().AddParameter(p).Build()
	require.True(t, errors.Is(err, ErrInvalidSpec))

	_, err = NewSetterBuilder().AddParameter(p).AddParameter(p).Build()
	require.True(t, errors.Is(err, ErrInvalidSpec))

	_, err = NewFunBuilder("").Build()
	require.True(t, errors.Is(err, ErrInvalidSpec))

	setter, err := NewSetterBuilder().
		AddParameter(p).
		AddStatement("field = value").
		Build()
	require.NoError(t, err)
	require.Equal(t, "set(value) {\n    field = value\n}\n", setter.String())
}

func TestRenderFile(t *testing.T) {
	id, err := NewPropertyBuilder("id", Long).AddModifiers(Public).Build()
	require.NoError(t, err)
	value, err := NewPropertyBuilder("value", TypeVariable("T").AsNullable()).
		AddModifiers(Public).
		Mutable(true).
		Build()
	require.NoError(t, err)

	box, err := NewClassBuilder(NewClassName("com.example", "Box")).
		AddModifiers(Public).
		AddTypeVariable(TypeVariable("T")).
		AddProperty(id).
		AddProperty(value).
		Build()
	require.NoError(t, err)
	empty, err := NewClassBuilder(NewClassName("com.example", "Empty")).Build()
	require.NoError(t, err)

	want := `package com.example

public class Box<T> {
    public val id: kotlin.Long

    public var value: T?
}

class Empty
`
	require.Empty(t, cmp.Diff(want, RenderFile("com.example", box, empty)))

	_, err = NewClassBuilder(NewClassName("com.example", "Dup")).AddProperty(id).AddProperty(id).Build()
	require.True(t, errors.Is(err, ErrInvalidSpec))
}

func TestClassNameEqual(t *testing.T) {
	user := NewClassName("com.example", "User")
	require.True(t, user.Equal(NewClassName("com.example", "User")))
	require.False(t, user.Equal(NewClassName("com.example", "User", "Id")))
	require.False(t, user.Equal(NewClassName("com.other", "User")))
	require.True(t, user.AsNullable().(ClassName).NonNull().Equal(user))
}
