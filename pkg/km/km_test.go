package km

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestFlags(t *testing.T) {
	f := Flags(0).With(FlagPublic, FlagVar, FlagHasGetter)
	assert.True(t, f.IsPublic())
	assert.True(t, f.IsVar())
	assert.True(t, f.HasGetter())
	assert.False(t, f.IsVal())
	assert.Equal(t, []string{"public", "var", "has_getter"}, f.Names())
	assert.Equal(t, "public|var|has_getter", f.String())
	assert.Equal(t, "none", Flags(0).String())

	parsed, err := ParseFlags("PUBLIC", " var ", "has_getter")
	require.NoError(t, err)
	assert.Equal(t, f, parsed)

	_, err = ParseFlags("public", "mutable")
	assert.True(t, errors.Is(err, ErrUnknownFlag))
}

func TestAccessorFlags(t *testing.T) {
	assert.Empty(t, FlagPublic.AccessorFlags())
	got := FlagInlineAccessor.With(FlagExternalAccessor, FlagNotDefault).AccessorFlags()
	assert.Equal(t, []AccessorFlag{AccessorExternal, AccessorInline, AccessorNotDefault}, got)
	assert.Equal(t, "NOT_DEFAULT", AccessorNotDefault.String())
}

func TestFlagsYAML(ttt *testing.T) {
	tests := []struct {
		name    string
		doc     string
		want    Flags
		wantErr bool
	}{
		{name: "names", doc: "[public, final, val]", want: FlagPublic | FlagFinal | FlagVal},
		{name: "integer", doc: "16", want: FlagPublic},
		{name: "empty list", doc: "[]", want: 0},
		{name: "unknown name", doc: "[public, mutable]", wantErr: true},
		{name: "mapping", doc: "{public: true}", wantErr: true},
		{name: "text", doc: "public", wantErr: true},
	}
	for _, tt := range tests {
		ttt.Run(tt.name, func(t *testing.T) {
			var f Flags
			err := yaml.Unmarshal([]byte(tt.doc), &f)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, f)
		})
	}

	ttt.Run("marshal", func(t *testing.T) {
		out, err := yaml.Marshal(struct {
			Flags Flags `yaml:"flags"`
		}{FlagPrivate | FlagVar})
		require.NoError(t, err)
		require.Equal(t, "flags:\n    - private\n    - var\n", string(out))
	})
}

func TestParseClassName(ttt *testing.T) {
	tests := []struct {
		in      string
		want    string
		simple  string
		wantErr error
	}{
		{in: "kotlin/String", want: "kotlin.String", simple: "String"},
		{in: "kotlin/collections/Map.Entry", want: "kotlin.collections.Map.Entry", simple: "Entry"},
		{in: "TopLevel", want: "TopLevel", simple: "TopLevel"},
		{in: ".Local", wantErr: ErrInvalidType},
		{in: "com/example/", wantErr: ErrInvalidType},
		{in: "com/example/Outer..Inner", wantErr: ErrInvalidType},
	}
	for _, tt := range tests {
		ttt.Run(tt.in, func(t *testing.T) {
			cn, err := ParseClassName(tt.in)
			if tt.wantErr != nil {
				require.True(t, errors.Is(err, tt.wantErr), "got %v", err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, cn.Canonical())
			require.Equal(t, tt.simple, cn.SimpleName())
		})
	}
}

func TestTypeName(t *testing.T) {
	c := Class{
		Name:           "com/example/Box",
		TypeParameters: []TypeParameter{{Name: "T", ID: 0}},
	}
	resolve := c.TypeParameterResolver()

	mapType := ClassType("kotlin/collections/Map", ClassType("kotlin/String"), ParamType(0))
	mapType.Nullable = true
	tn, err := mapType.TypeName(resolve)
	require.NoError(t, err)
	assert.Equal(t, "kotlin.collections.Map<kotlin.String, T>?", tn.Canonical())
	assert.True(t, tn.IsNullable())

	star, err := ClassType("kotlin/collections/List", Type{Star: true}).TypeName(resolve)
	require.NoError(t, err)
	assert.Equal(t, "kotlin.collections.List<*>", star.Canonical())

	_, err = ParamType(3).TypeName(resolve)
	assert.True(t, errors.Is(err, ErrUnresolvedTypeParameter))
	assert.Contains(t, errors.FlattenHints(err), "type_parameters")

	_, err = ParamType(0).TypeName(nil)
	assert.True(t, errors.Is(err, ErrUnresolvedTypeParameter))

	_, err = Type{}.TypeName(resolve)
	assert.True(t, errors.Is(err, ErrInvalidType))

	_, err = ClassType("kotlin/collections/List", Type{}).TypeName(resolve)
	assert.True(t, errors.Is(err, ErrInvalidType))
}

const userDoc = `
name: com/example/User
flags: [public, final]
type_parameters:
  - name: T
    id: 0
properties:
  - name: id
    return_type:
      class: kotlin/Long
    flags: [public, final, val, has_getter]
    getter_flags: [public, final]
  - name: payload
    return_type:
      type_parameter: 0
      nullable: true
    flags: [public, final, var, has_getter, has_setter]
    getter_flags: [public, final]
    setter_flags: [public, final]
`

func TestDecode(t *testing.T) {
	c, err := Decode(strings.NewReader(userDoc))
	require.NoError(t, err)
	require.Equal(t, "com/example/User", c.Name)
	require.Len(t, c.Properties, 2)

	id := c.Properties[0]
	assert.Equal(t, "id", id.Name)
	assert.Equal(t, "kotlin/Long", id.ReturnType.Class)
	assert.True(t, id.Flags.IsVal())
	assert.Equal(t, FlagPublic|FlagFinal, id.GetterFlags)
	assert.Zero(t, id.SetterFlags)

	payload := c.Properties[1]
	require.NotNil(t, payload.ReturnType.TypeParameter)
	tn, err := payload.ReturnType.TypeName(c.TypeParameterResolver())
	require.NoError(t, err)
	assert.Equal(t, "T?", tn.Canonical())
}

func TestDecodeRejects(ttt *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{name: "unknown key", doc: "name: a/B\nvisibility: public\n"},
		{name: "missing name", doc: "flags: [public]\n"},
		{name: "bad flag", doc: "name: a/B\nflags: [publik]\n"},
	}
	for _, tt := range tests {
		ttt.Run(tt.name, func(t *testing.T) {
			_, err := Decode(strings.NewReader(tt.doc))
			require.Error(t, err)
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "user.yaml")
	require.NoError(t, os.WriteFile(path, []byte(userDoc), 0o644))

	c, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "com/example/User", c.Name)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}
