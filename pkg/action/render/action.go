package render

import (
	"log/slog"
	"os"
	"path/filepath"

	"github.com/cockroachdb/errors"

	"github.com/cmmoran/kpoet/pkg/convert"
	"github.com/cmmoran/kpoet/pkg/km"
	"github.com/cmmoran/kpoet/pkg/kotlin"
	"github.com/cmmoran/kpoet/pkg/manifest"
)

// Convert loads the descriptor named by opts.InFile and converts it.
func Convert(opts *convert.Options) (*km.Class, kotlin.TypeSpec, error) {
	if opts.InFile == "" {
		return nil, kotlin.TypeSpec{}, errors.WithHint(errors.New("no descriptor given"), "pass one with --input-file")
	}
	kc, err := km.Load(opts.InFile)
	if err != nil {
		return nil, kotlin.TypeSpec{}, err
	}
	spec, err := convert.NewWithOpts(opts).Class(*kc)
	if err != nil {
		return nil, kotlin.TypeSpec{}, err
	}
	return kc, spec, nil
}

// Kotlin returns the Kotlin source of the descriptor named by opts.InFile.
func Kotlin(opts *convert.Options) ([]byte, kotlin.TypeSpec, error) {
	_, spec, err := Convert(opts)
	if err != nil {
		return nil, kotlin.TypeSpec{}, err
	}
	return []byte(kotlin.RenderFile(spec.ClassName().Package, spec)), spec, nil
}

// Generate renders the descriptor to OutDir/OutFile and records the output
// in the manifest when one is configured. It returns the written path.
func Generate(opts *convert.Options) string {
	src, spec, err := Kotlin(opts)
	if err != nil {
		panic(err)
	}
	if opts.OutFile == "" {
		opts.OutFile = spec.Name() + ".kt"
	}
	outFile := Write(opts, src)
	Record(opts, spec, outFile, manifest.KindKotlin)
	return outFile
}

// Write writes src to OutDir/OutFile, creating OutDir as needed. The
// returned path is absolute.
func Write(opts *convert.Options, src []byte) string {
	_ = os.MkdirAll(opts.OutDir, 0755)
	outFile, err := filepath.Abs(filepath.Join(opts.OutDir, opts.OutFile))
	if err != nil {
		panic(errors.Wrapf(err, "resolve %s", opts.OutFile))
	}
	if err := os.WriteFile(outFile, src, 0644); err != nil {
		panic(errors.Wrapf(err, "write %s", outFile))
	}
	slog.Default().With("file", outFile, "bytes", len(src)).Info("wrote output")
	return outFile
}

// Record adds outFile to the manifest at opts.ManifestPath, if set.
func Record(opts *convert.Options, spec kotlin.TypeSpec, outFile string, kind manifest.Kind) {
	if opts.ManifestPath == "" {
		return
	}
	m, err := manifest.Load(opts.ManifestPath)
	if err != nil {
		panic(err)
	}
	class := spec.ClassName().Canonical()
	if kc, ok := spec.Tag().(km.Class); ok {
		class = kc.Name
	}
	m.Record(manifest.Output{
		Class:   class,
		Source:  opts.InFile,
		File:    outFile,
		Kind:    kind,
		Options: *opts,
	})
	if err = m.Save(opts.ManifestPath); err != nil {
		panic(err)
	}
}
