package cmd

import (
	"fmt"
	"sort"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/cmmoran/kpoet/pkg/action/check"
)

func init() {
	rootCmd.AddCommand(NewCheckCommand())
}

// ErrStale is returned by check when any recorded output is out of date.
var ErrStale = errors.New("generated files are out of date")

func NewCheckCommand() *cobra.Command {
	var manifestPath string

	// checkCmd represents the kpoet check command
	var checkCmd = &cobra.Command{
		Use:   "check",
		Short: "check generated files",
		Long:  "Regenerate every file recorded in a manifest and report the ones that differ",
		Args:  cobra.NoArgs,
		// A stale file is not a usage error.
		SilenceUsage: true,
		RunE: func(c *cobra.Command, args []string) error {
			diffs, err := check.Diff(manifestPath)
			if err != nil {
				return err
			}
			files := make([]string, 0, len(diffs))
			for f := range diffs {
				files = append(files, f)
			}
			sort.Strings(files)
			for _, f := range files {
				fmt.Fprintf(c.OutOrStdout(), "%s (-current +want):\n%s\n", f, diffs[f])
			}
			if len(files) > 0 {
				return errors.WithHint(errors.Wrapf(ErrStale, "%d file(s)", len(files)),
					"rerun render or mirror for the listed files")
			}
			return nil
		},
	}
	checkCmd.Flags().StringVarP(&manifestPath, "manifest", "m", "kpoet-manifest.yaml", "manifest to check")

	return checkCmd
}
