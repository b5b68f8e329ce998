package check

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/require"

	"github.com/cmmoran/kpoet/pkg/action/mirror"
	"github.com/cmmoran/kpoet/pkg/action/render"
	"github.com/cmmoran/kpoet/pkg/convert"
	"github.com/cmmoran/kpoet/pkg/manifest"
)

const userDoc = `
name: com/example/User
flags: [public, final]
properties:
  - name: id
    return_type:
      class: kotlin/Long
    flags: [public, final, val, has_getter]
    getter_flags: [public, final]
  - name: name
    return_type:
      class: kotlin/String
    flags: [public, final, var, has_getter, has_setter]
    getter_flags: [public, final]
    setter_flags: [private, final]
`

func setup(t *testing.T) (dir, manifestPath string, opts func() *convert.Options) {
	t.Helper()
	dir = t.TempDir()
	in := filepath.Join(dir, "user.yaml")
	require.NoError(t, os.WriteFile(in, []byte(userDoc), 0o644))
	manifestPath = filepath.Join(dir, "manifest.yaml")
	return dir, manifestPath, func() *convert.Options {
		o := convert.NewOptions()
		for _, fn := range []convert.Option{
			convert.WithInFile(in),
			convert.WithOutDir(filepath.Join(dir, "out")),
			convert.WithManifestPath(manifestPath),
			convert.WithUseGetterFlags(),
		} {
			fn(o)
		}
		return o
	}
}

func TestDiff(t *testing.T) {
	dir, manifestPath, opts := setup(t)

	kt := render.Generate(opts())
	gofile := mirror.Generate(opts())
	require.Equal(t, filepath.Join(dir, "out", "User.kt"), kt)
	require.Equal(t, filepath.Join(dir, "out", "user_gen.go"), gofile)

	src, err := os.ReadFile(kt)
	require.NoError(t, err)
	require.Equal(t, "package com.example\n\npublic class User {\n    public val id: kotlin.Long\n\n    public var name: kotlin.String\n        private set\n}\n", string(src))

	m, err := manifest.Load(manifestPath)
	require.NoError(t, err)
	require.Len(t, m.Outputs, 2)
	o, ok := m.Find(kt)
	require.True(t, ok)
	require.Equal(t, "com/example/User", o.Class)
	require.Equal(t, manifest.KindKotlin, o.Kind)

	diffs, err := Diff(manifestPath)
	require.NoError(t, err)
	require.Empty(t, diffs)

	require.NoError(t, os.WriteFile(kt, []byte(strings.Replace(string(src), "private set", "set", 1)), 0o644))
	require.NoError(t, os.Remove(gofile))

	diffs, err = Diff(manifestPath)
	require.NoError(t, err)
	require.Len(t, diffs, 2)
	require.Contains(t, diffs[kt], "private set")
	require.Contains(t, diffs[gofile], "DO NOT EDIT")
}

func TestDiffErrors(t *testing.T) {
	dir, manifestPath, _ := setup(t)

	m := &manifest.Manifest{}
	m.Record(manifest.Output{Class: "a/B", Source: filepath.Join(dir, "user.yaml"), File: filepath.Join(dir, "b.txt"), Kind: "text"})
	require.NoError(t, m.Save(manifestPath))
	_, err := Diff(manifestPath)
	require.True(t, errors.Is(err, ErrUnknownKind))

	m = &manifest.Manifest{}
	m.Record(manifest.Output{Class: "a/B", Source: filepath.Join(dir, "missing.yaml"), File: filepath.Join(dir, "B.kt"), Kind: manifest.KindKotlin})
	require.NoError(t, m.Save(manifestPath))
	_, err = Diff(manifestPath)
	require.Error(t, err)
}

func TestGeneratePanicsOnBadDescriptor(t *testing.T) {
	_, _, opts := setup(t)
	o := opts()
	o.UseGetterFlags = false
	// The getter of "id" has no setter flags to be gated on.
	require.Panics(t, func() { render.Generate(o) })
}

func TestDiffFromOtherDirectory(t *testing.T) {
	root := t.TempDir()
	a, b := filepath.Join(root, "a"), filepath.Join(root, "b")
	require.NoError(t, os.MkdirAll(a, 0o755))
	require.NoError(t, os.MkdirAll(b, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(a, "user.yaml"), []byte(userDoc), 0o644))
	manifestPath := filepath.Join(root, "manifest.yaml")

	chdir(t, a)
	o := convert.NewOptions()
	for _, fn := range []convert.Option{
		convert.WithInFile("user.yaml"),
		convert.WithManifestPath(manifestPath),
		convert.WithUseGetterFlags(),
	} {
		fn(o)
	}
	kt := render.Generate(o)
	require.Equal(t, filepath.Join(a, "out", "User.kt"), kt)

	m, err := manifest.Load(manifestPath)
	require.NoError(t, err)
	require.Len(t, m.Outputs, 1)
	require.Equal(t, kt, m.Outputs[0].File)
	require.Equal(t, filepath.Join(a, "user.yaml"), m.Outputs[0].Source)

	chdir(t, b)
	diffs, err := Diff(manifestPath)
	require.NoError(t, err)
	require.Empty(t, diffs)
}

// chdir changes the working directory for the rest of the test and restores
// it on cleanup (stand-in for testing.T.Chdir, which needs Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
}
