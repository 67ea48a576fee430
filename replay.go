package main

import (
	"encoding/json"
	"fmt"
	"maps"
	"os"
	"slices"

	"github.com/bvisness/portwire/app"
	"github.com/bvisness/portwire/app/telemetry"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	heading = color.New(color.FgHiGreen, color.Bold)
	subtle  = color.New(color.FgHiBlack)
	warn    = color.New(color.FgYellow)
)

var replayCmd = &cobra.Command{
	Use:   "replay <script.yaml>",
	Short: "Run a recorded pointer script without opening a window",
	Long: `Replays a YAML script of pointer frames against the configured diagram
and prints the resulting nodes and connections.`,
	Args:         cobra.ExactArgs(1),
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runReplay(cmd, args[0])
	},
}

func init() {
	replayCmd.Flags().Bool("json", false, "Print the report as JSON")
	replayCmd.Flags().String("svg", "", "Also write the final frame to this SVG file")
	rootCmd.AddCommand(replayCmd)
}

func runReplay(cmd *cobra.Command, path string) error {
	s, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	log, err := newLogger(cmd, s)
	if err != nil {
		return err
	}
	defer log.Sync()

	script, err := app.LoadReplayScript(path)
	if err != nil {
		return err
	}
	report, out, err := app.Replay(s, script, telemetry.LogHooks(log))
	if err != nil {
		return err
	}

	if svgPath, _ := cmd.Flags().GetString("svg"); svgPath != "" {
		f, err := os.Create(svgPath)
		if err != nil {
			return err
		}
		if err := app.WriteSVG(f, out, s); err != nil {
			f.Close()
			return fmt.Errorf("writing %s: %w", svgPath, err)
		}
		if err := f.Close(); err != nil {
			return err
		}
	}

	w := cmd.OutOrStdout()
	if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	}

	heading.Fprintf(w, "%d frames, ended in %s\n", report.Frames, report.Mode)
	for _, n := range report.Nodes {
		fmt.Fprintf(w, "  %s ", n.Name)
		subtle.Fprintf(w, "at (%.1f, %.1f)\n", n.X, n.Y)
	}
	heading.Fprintf(w, "%d connections\n", len(report.Connections))
	for _, c := range report.Connections {
		fmt.Fprintf(w, "  %s -> %s\n", c.From, c.To)
	}
	for _, reason := range slices.Sorted(maps.Keys(report.Aborts)) {
		warn.Fprintf(w, "  %d aborted (%s)\n", report.Aborts[reason], reason)
	}
	subtle.Fprintf(w, "%d drags\n", report.Drags)
	return nil
}
