package main

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/team1160/assistant-vision/internal/camera"
	"github.com/team1160/assistant-vision/internal/config"
	"github.com/team1160/assistant-vision/internal/particle"
	"github.com/team1160/assistant-vision/internal/robot"
	"github.com/team1160/assistant-vision/internal/vision"
)

// newProcessor builds the camera and the frame processor described by cfg.
// The caller releases the camera with closeCamera.
func newProcessor(cfg *config.Config, onFrame func(*vision.FrameResult)) (*vision.Processor, camera.Camera, error) {
	cam, err := camera.New(cfg)
	if err != nil {
		return nil, nil, err
	}
	analyzer, err := particle.NewAnalyzer(cfg.Particles.Backend)
	if err != nil {
		closeCamera(cam)
		return nil, nil, err
	}

	opts := cfg.ProcessorOptions(log.Default())
	opts.OnFrame = onFrame
	return vision.NewProcessor(cam, analyzer, opts), cam, nil
}

func closeCamera(cam camera.Camera) {
	if err := camera.Close(cam); err != nil {
		log.Printf("failed to close camera: %v", err)
	}
}

func newRunCmd(root *rootOptions) *cobra.Command {
	var frames int

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Process camera frames until interrupted",
		Long: `Process camera frames one at a time, logging the verdict of each, until
interrupted or until --frames frames have been processed. Frames the camera
cannot deliver are skipped. A summary is printed on exit.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := root.loadConfig()
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()

			var results []*vision.FrameResult
			var rc *robot.Context
			proc, cam, err := newProcessor(cfg, func(res *vision.FrameResult) {
				results = append(results, res)
				if frames > 0 && len(results) >= frames {
					rc.SetAutonomous(false)
				}
			})
			if err != nil {
				return err
			}
			defer closeCamera(cam)

			rc = robot.NewContext(robot.Subsystems{Vision: proc}, log.Default())
			rc.SetAutonomous(true)

			err = rc.RunVision(ctx)
			if err != nil && !errors.Is(err, context.Canceled) {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), vision.Summarize(results))
		},
	}

	cmd.Flags().IntVarP(&frames, "frames", "n", 0, "stop after this many processed frames (0 runs until interrupted)")
	return cmd
}

func newTrackCmd(root *rootOptions) *cobra.Command {
	var maxFrames int

	cmd := &cobra.Command{
		Use:   "track",
		Short: "Run the autonomous target tracking command",
		Long: `Run the autonomous tracking command: look at frames until a hot target is
seen or --max-frames frames have been examined, then stop the drivetrain and
print the last frame.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := root.loadConfig()
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()

			proc, cam, err := newProcessor(cfg, nil)
			if err != nil {
				return err
			}
			defer closeCamera(cam)
			rc := robot.NewContext(robot.Subsystems{Vision: proc}, log.Default())
			rc.SetAutonomous(true)

			track := &robot.TrackTarget{MaxFrames: maxFrames}
			if err := robot.RunCommand(ctx, rc, track); err != nil && !errors.Is(err, context.Canceled) {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), track.Last)
		},
	}

	cmd.Flags().IntVar(&maxFrames, "max-frames", 50, "frames to examine before giving up (0 is unbounded)")
	return cmd
}
