package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/team1160/assistant-vision/internal/config"
)

// rootOptions are the flags shared by every subcommand.
type rootOptions struct {
	configPath string
	source     string
	path       string
	host       string
	backend    string
	verbose    bool
}

// newRootCmd builds the command tree.
func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:   "assistant-vision",
		Short: "Hot goal vision for the 2014 FRC robot",
		Long: `assistant-vision finds the lit ("hot") goal in camera frames.

It thresholds each frame on the retro-reflective tape colour, measures the
particles, scores them against the vertical and horizontal tape strips and
reports whether the best pairing is hot together with the distance to it.`,
		SilenceUsage: true,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&opts.configPath, "config", "c", "", "tuning file (default "+config.DefaultConfigPath+" if present)")
	flags.StringVar(&opts.source, "source", "", "camera source: axis, directory, file or video")
	flags.StringVar(&opts.path, "path", "", "frame directory, image file or video for the selected source")
	flags.StringVar(&opts.host, "host", "", "network camera address for the axis source")
	flags.StringVar(&opts.backend, "backend", "", "particle analysis backend: go or gocv")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "log every particle's classification and scores")

	rootCmd.AddCommand(
		newRunCmd(opts),
		newTrackCmd(opts),
		newAnalyzeCmd(opts),
		newServeCmd(opts),
		newConfigCmd(opts),
		newVersionCmd(),
	)
	return rootCmd
}

// loadConfig reads the tuning file and applies the flag overrides.
func (o *rootOptions) loadConfig() (*config.Config, error) {
	cfg, err := config.LoadOrDefault(o.configPath)
	if err != nil {
		return nil, err
	}

	if o.source != "" {
		cfg.Camera.Source = o.source
	}
	if o.path != "" {
		cfg.Camera.Path = o.path
	}
	if o.host != "" {
		cfg.Camera.Host = o.host
	}
	if o.backend != "" {
		cfg.Particles.Backend = o.backend
	}
	if o.verbose || debugLogging() {
		cfg.Verbose = true
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// writeJSON prints v as indented JSON.
func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
