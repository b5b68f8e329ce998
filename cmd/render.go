package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/cmmoran/kpoet/pkg/action/render"
	"github.com/cmmoran/kpoet/pkg/convert"
)

func init() {
	rootCmd.AddCommand(NewRenderCommand())
}

// addConvertFlags registers the flags shared by every command that converts
// a descriptor. Conversion switches fall back to the convert.* config keys.
func addConvertFlags(c *cobra.Command, options *convert.Options, excludeProperties *[]string) {
	c.Flags().StringVarP(&options.InFile, "input-file", "i", "", "descriptor document to read")
	c.Flags().StringVarP(&options.OutDir, "output-directory", "o", "out", "directory to write generated files")
	c.Flags().StringVarP(&options.OutFile, "output-file", "f", "", "output file; derived from the class name when empty")
	c.Flags().StringVar(&options.ManifestPath, "manifest", "", "manifest to record generated files in")
	c.Flags().Bool("use-getter-flags", false, "decide getters from getter flags instead of setter flags")
	c.Flags().Bool("exclude-synthesized", false, "drop compiler-synthesized properties")
	c.Flags().StringSliceVarP(excludeProperties, "exclude-properties", "x", []string{}, "drop named properties (case-insensitive)")
}

// resolveConvertOptions applies config defaults and normalizes options.
// Flags are bound at run time because render and mirror share the keys.
func resolveConvertOptions(c *cobra.Command, options *convert.Options, excludeProperties []string) {
	_ = viper.BindPFlag("convert.use_getter_flags", c.Flags().Lookup("use-getter-flags"))
	_ = viper.BindPFlag("convert.exclude_synthesized", c.Flags().Lookup("exclude-synthesized"))
	options.UseGetterFlags = viper.GetBool("convert.use_getter_flags")
	options.ExcludeSynthesized = viper.GetBool("convert.exclude_synthesized")
	if len(excludeProperties) == 0 {
		excludeProperties = viper.GetStringSlice("convert.exclude_properties")
	}
	options.Normalize(excludeProperties...)
}

func NewRenderCommand() *cobra.Command {
	var (
		options           = convert.NewOptions()
		excludeProperties = make([]string, 0)
	)

	// renderCmd represents the kpoet render command
	var renderCmd = &cobra.Command{
		Use:   "render",
		Short: "render Kotlin",
		Long:  "Convert a class descriptor and write it as Kotlin source",
		Args:  cobra.NoArgs,
		Run: func(c *cobra.Command, args []string) {
			resolveConvertOptions(c, options, excludeProperties)
			fmt.Fprintln(c.OutOrStdout(), render.Generate(options))
		},
	}
	addConvertFlags(renderCmd, options, &excludeProperties)

	return renderCmd
}
