// Command server exposes the conjugator as a JSON REST API.
//
// Endpoints:
//
//	GET /api/verb?infinitive=<verb>
//	GET /api/conjugate?infinitive=<verb>[&variant=bp|bp-pre|ep|ep-pre]
//	    [&mood=regular|passive|progressive][&pronoun=<p>]...
//	GET /api/analyze?infinitive=<verb>&form=<form>
//	GET /api/health
package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/rs/cors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	conjugador "github.com/cours-de-latin/conjugador"
	"github.com/cours-de-latin/conjugador/internal/config"
	"github.com/cours-de-latin/conjugador/internal/logger"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:          "server",
	Short:        "Serve Portuguese verb conjugations over HTTP",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		v := config.New(configPath)
		if err := v.BindPFlag("server.addr", cmd.Flags().Lookup("addr")); err != nil {
			return err
		}
		cfg, err := config.LoadWithViper(v, configPath != "")
		if err != nil {
			return err
		}
		if err := logger.Initialize(cfg.Log.JSON, cfg.Log.Level); err != nil {
			return err
		}
		defer logger.Cleanup()
		log := logger.Desugar()
		zap.ReplaceGlobals(log)

		log.Info("building auxiliary tables")
		conj, err := conjugador.New(conjugador.WithLogger(log))
		if err != nil {
			return err
		}

		mux := newMux(conj, defaults{variant: cfg.Defaults.Variant, mood: cfg.Defaults.Mood})
		handler := cors.New(cors.Options{
			AllowedOrigins: cfg.Server.CORSOrigins,
			AllowedMethods: []string{http.MethodGet},
		}).Handler(logRequests(log, mux))

		log.Info("listening", zap.String("addr", cfg.Server.Addr))
		return http.ListenAndServe(cfg.Server.Addr, handler)
	},
}

func init() {
	rootCmd.Flags().StringVar(&configPath, "config", "", "path to a conjugador.toml file")
	rootCmd.Flags().String("addr", ":8080", "listen address")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
