package mirror

import (
	"strings"

	gomirror "github.com/cmmoran/kpoet/internal/mirror"
	"github.com/cmmoran/kpoet/pkg/action/render"
	"github.com/cmmoran/kpoet/pkg/convert"
	"github.com/cmmoran/kpoet/pkg/kotlin"
	"github.com/cmmoran/kpoet/pkg/manifest"
)

// Source returns the Go mirror of the descriptor named by opts.InFile.
func Source(opts *convert.Options) ([]byte, kotlin.TypeSpec, error) {
	_, spec, err := render.Convert(opts)
	if err != nil {
		return nil, kotlin.TypeSpec{}, err
	}
	src, err := gomirror.NewGenerator(opts.Package, opts.Pluralize).Render(spec)
	if err != nil {
		return nil, kotlin.TypeSpec{}, err
	}
	return src, spec, nil
}

// Generate writes the Go mirror to OutDir/OutFile and records it in the
// manifest when one is configured. It returns the written path.
func Generate(opts *convert.Options) string {
	src, spec, err := Source(opts)
	if err != nil {
		panic(err)
	}
	if opts.OutFile == "" {
		opts.OutFile = strings.ToLower(spec.Name()) + "_gen.go"
	}
	outFile := render.Write(opts, src)
	render.Record(opts, spec, outFile, manifest.KindMirror)
	return outFile
}
