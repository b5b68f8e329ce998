package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cmmoran/kpoet/pkg/action/mirror"
	"github.com/cmmoran/kpoet/pkg/convert"
)

func init() {
	rootCmd.AddCommand(NewMirrorCommand())
}

func NewMirrorCommand() *cobra.Command {
	var (
		options           = convert.NewOptions()
		excludeProperties = make([]string, 0)
	)

	// mirrorCmd represents the kpoet mirror command
	var mirrorCmd = &cobra.Command{
		Use:   "mirror",
		Short: "render a Go mirror",
		Long:  "Convert a class descriptor and write a Go struct mirroring it, for JSON interop",
		Args:  cobra.NoArgs,
		Run: func(c *cobra.Command, args []string) {
			resolveConvertOptions(c, options, excludeProperties)
			fmt.Fprintln(c.OutOrStdout(), mirror.Generate(options))
		},
	}
	addConvertFlags(mirrorCmd, options, &excludeProperties)
	mirrorCmd.Flags().StringVarP(&options.Package, "package", "p", "model", "Go package name of the generated file")
	mirrorCmd.Flags().BoolVarP(&options.Pluralize, "pluralize", "P", false, "also generate a plural slice type")

	return mirrorCmd
}
