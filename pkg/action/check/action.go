package check

import (
	"os"

	"github.com/cockroachdb/errors"
	"github.com/google/go-cmp/cmp"

	"github.com/cmmoran/kpoet/pkg/action/mirror"
	"github.com/cmmoran/kpoet/pkg/action/render"
	"github.com/cmmoran/kpoet/pkg/manifest"
)

// ErrUnknownKind is returned for a manifest entry of an unknown kind.
var ErrUnknownKind = errors.New("unknown output kind")

// Diff regenerates every output recorded in the manifest and returns a
// diff per file whose content on disk is out of date. A missing file is
// diffed against empty content.
func Diff(manifestPath string) (map[string]string, error) {
	m, err := manifest.Load(manifestPath)
	if err != nil {
		return nil, err
	}

	diffs := make(map[string]string)
	for _, o := range m.Outputs {
		opts := o.Options
		opts.InFile = o.Source

		var want []byte
		switch o.Kind {
		case manifest.KindKotlin:
			want, _, err = render.Kotlin(&opts)
		case manifest.KindMirror:
			want, _, err = mirror.Source(&opts)
		default:
			return nil, errors.Wrapf(ErrUnknownKind, "%q for %s", o.Kind, o.File)
		}
		if err != nil {
			return nil, errors.Wrapf(err, "regenerate %s", o.File)
		}

		current, err := os.ReadFile(o.File)
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, errors.Wrapf(err, "read %s", o.File)
		}
		if d := cmp.Diff(string(current), string(want)); d != "" {
			diffs[o.File] = d
		}
	}

	return diffs, nil
}
