package cmd

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/spf13/viper"

	"github.com/spf13/cobra"
)

const levelTrace = slog.Level(-8)

var (
	configFiles    []string
	level, version string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "kpoet",
	Short: "generate Kotlin declarations from metadata descriptors",
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	defer func() {
		if r := recover(); r != nil {
			err, ok := r.(error)
			if !ok {
				err = errors.Newf("%v", r)
			}
			reportError(os.Stderr, err)
			os.Exit(1)
		}
	}()
	if err := rootCmd.Execute(); err != nil {
		reportError(os.Stderr, err)
		os.Exit(1)
	}
}

// reportError logs err and prints its hints to w.
func reportError(w io.Writer, err error) {
	slog.Default().With("error", err).Error("command failed")
	if hints := errors.FlattenHints(err); hints != "" {
		fmt.Fprintln(w, "hint:", hints)
	}
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVarP(&level, "level", "l", "info", "log level (trace, debug, info, warn, error, debug+1, etc)")
	rootCmd.PersistentFlags().StringSliceVar(&configFiles, "config", []string{}, "config file(s) - multiple config files are merged with last specified file having highest priority")
}

func parseLevel(s string) slog.Level {
	var ll slog.Level
	if err := (&ll).UnmarshalText([]byte(s)); err != nil {
		if strings.EqualFold(s, "trace") {
			return levelTrace
		}
		panic("invalid log level: " + s)
	}
	return ll
}

func newLogger(ll slog.Level) *slog.Logger {
	return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		AddSource:   false,
		Level:       ll,
		ReplaceAttr: nil,
	}))
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	ll := parseLevel(level)
	l := newLogger(ll)
	slog.SetDefault(l)

	if len(configFiles) > 0 {
		// Use config file from the flag.
		viper.SetConfigFile(configFiles[0])
	} else {
		viper.AddConfigPath(".")
		viper.AddConfigPath("/etc")
		viper.SetConfigType("yaml")
		viper.SetConfigName("kpoet")
	}

	viper.SetEnvPrefix("kpoet")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv() // read in environment variables that match

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		l.With("config", viper.ConfigFileUsed()).Debug("using config file(s)")
	} else {
		l.With("error", err, "config", viper.ConfigFileUsed()).Debug("unable to use config file(s)")
	}
	if len(configFiles) > 1 {
		for _, file := range configFiles[1:] {
			if configBytes, err := os.ReadFile(file); err == nil {
				if err = viper.MergeConfig(bytes.NewReader(configBytes)); err != nil {
					l.With("error", err, "file", file).Warn("failed to merge config file")
				} else {
					l.With("file", file).Debug("merged config file")
				}
			}
		}
	}
	if len(version) > 0 {
		viper.Set("version", version)
	}

	// A configured level applies unless one was given on the command line.
	if llstr := viper.GetString("common.log.level"); llstr != "" && !rootCmd.PersistentFlags().Changed("level") {
		slog.SetDefault(newLogger(parseLevel(llstr)))
	}
}
