// Command conjugador prints Portuguese verb conjugations in the terminal.
package main

import (
	"fmt"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/cours-de-latin/conjugador/internal/config"
	"github.com/cours-de-latin/conjugador/internal/logger"
)

var (
	configPath string
	v          *viper.Viper
	cfg        *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "conjugador",
	Short: "Conjugate Portuguese verbs",
	Long: `conjugador conjugates Portuguese verbs in Brazilian and European
Portuguese, before and after the 1990 spelling reform.

Examples:
  conjugador conjugate falar
  conjugador conjugate dar --variant ep --tense preterite-indicative
  conjugador conjugate dizer --pronoun lhe --pronoun o
  conjugador inspect pôr
  conjugador analyze ir fomos`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		v = config.New(configPath)
		if err := v.BindPFlag("log.level", cmd.Root().PersistentFlags().Lookup("log-level")); err != nil {
			return err
		}
		var err error
		cfg, err = config.LoadWithViper(v, configPath != "")
		if err != nil {
			return err
		}
		return logger.Initialize(cfg.Log.JSON, cfg.Log.Level)
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		logger.Cleanup()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to a conjugador.toml file")
	rootCmd.PersistentFlags().String("log-level", config.Default().Log.Level, "log level (debug, info, warn, error)")

	rootCmd.AddCommand(conjugateCmd)
	rootCmd.AddCommand(inspectCmd)
	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, errorMessage(err))
		os.Exit(1)
	}
}

// errorMessage renders err followed by the hints attached to it.
func errorMessage(err error) string {
	if hint := errors.FlattenHints(err); hint != "" {
		return err.Error() + "\nhint: " + hint
	}
	return err.Error()
}
