package main

import (
	"fmt"
	"log"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/team1160/assistant-vision/internal/imaging"
	"github.com/team1160/assistant-vision/internal/particle"
	"github.com/team1160/assistant-vision/internal/vision"
)

type analyzeResult struct {
	Frames  map[string]*vision.FrameResult `json:"frames"`
	Summary vision.Summary                 `json:"summary"`
}

func newAnalyzeCmd(root *rootOptions) *cobra.Command {
	var artifactDir string

	cmd := &cobra.Command{
		Use:   "analyze IMAGE...",
		Short: "Analyze image files and print the results as JSON",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := root.loadConfig()
			if err != nil {
				return err
			}
			analyzer, err := particle.NewAnalyzer(cfg.Particles.Backend)
			if err != nil {
				return err
			}

			opts := cfg.ProcessorOptions(log.Default())
			opts.ThresholdPath, opts.FilteredPath = "", ""
			if artifactDir != "" {
				opts.ThresholdPath = filepath.Join(artifactDir, filepath.Base(cfg.Artifacts.Threshold))
				opts.FilteredPath = filepath.Join(artifactDir, filepath.Base(cfg.Artifacts.Filtered))
			}
			proc := vision.NewProcessor(nil, analyzer, opts)

			cache := imaging.NewImageCache()
			out := analyzeResult{Frames: make(map[string]*vision.FrameResult, len(args))}
			results := make([]*vision.FrameResult, 0, len(args))
			for _, path := range args {
				img, err := cache.Load(path)
				if err != nil {
					return err
				}
				res, err := proc.Analyze(img)
				if err != nil {
					return fmt.Errorf("%s: %w", path, err)
				}
				out.Frames[path] = res
				results = append(results, res)
			}
			out.Summary = vision.Summarize(results)
			return writeJSON(cmd.OutOrStdout(), out)
		},
	}

	cmd.Flags().StringVar(&artifactDir, "artifact-dir", "", "write the threshold and filtered images of the last frame here")
	return cmd
}
