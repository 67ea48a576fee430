package main

import (
	"errors"
	"fmt"
	"net/http"
	"os"

	"github.com/bvisness/portwire/app"
	"github.com/bvisness/portwire/app/core"
	"github.com/bvisness/portwire/app/telemetry"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var rootCmd = &cobra.Command{
	Use:   "portwire",
	Short: "Drag boxes around and wire their ports together",
	Long: `portwire opens a window with a small node diagram. Drag a node by its
body to move it; press on a port and release over a port of another node to
connect them.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runEditor(cmd)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().String("config", app.DefaultSettingsPath, "Settings file (YAML)")
	rootCmd.PersistentFlags().String("log-level", "", "Log level, overriding the settings file")
	rootCmd.PersistentFlags().Bool("dev", false, "Human-readable development logging")
}

// loadSettings reads the settings file named by --config and applies flag
// overrides.
func loadSettings(cmd *cobra.Command) (*app.Settings, error) {
	path, _ := cmd.Flags().GetString("config")
	s, err := app.LoadSettings(path)
	if err != nil {
		return nil, err
	}
	if lvl, _ := cmd.Flags().GetString("log-level"); lvl != "" {
		s.LogLevel = lvl
	}
	return s, nil
}

func newLogger(cmd *cobra.Command, s *app.Settings) (*zap.Logger, error) {
	dev, _ := cmd.Flags().GetBool("dev")
	return telemetry.NewLogger(s.LogLevel, dev)
}

func runEditor(cmd *cobra.Command) error {
	s, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	log, err := newLogger(cmd, s)
	if err != nil {
		return err
	}
	defer log.Sync()

	hooks := telemetry.LogHooks(log)
	if s.MetricsAddr != "" {
		reg := prometheus.NewRegistry()
		metrics := telemetry.NewMetrics(reg)
		hooks = core.ChainHooks(hooks, metrics.Hooks())

		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
		go func() {
			log.Info("serving metrics", zap.String("addr", s.MetricsAddr))
			if err := http.ListenAndServe(s.MetricsAddr, mux); err != nil && !errors.Is(err, http.ErrServerClosed) {
				log.Error("metrics server stopped", zap.Error(err))
			}
		}()
	}

	return app.Main(app.Options{
		Settings: s,
		Hooks:    hooks,
		Logger:   log,
	})
}
