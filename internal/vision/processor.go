package vision

import (
	"context"
	"errors"
	"fmt"
	"image"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/team1160/assistant-vision/internal/imaging"
	"github.com/team1160/assistant-vision/internal/particle"
)

// ErrCameraUnavailable wraps failures to acquire a frame.
var ErrCameraUnavailable = errors.New("camera unavailable")

// ErrMeasurement wraps failures while measuring particles.
var ErrMeasurement = errors.New("vision measurement failed")

// Camera supplies frames.
type Camera interface {
	GetImage(ctx context.Context) (image.Image, error)
}

// Options configures a Processor.
type Options struct {
	Scorer   Scorer
	HSV      imaging.HSVRange
	Criteria particle.Criteria

	// FrameWidth and FrameHeight resize incoming frames; 0 keeps them as is.
	FrameWidth  int
	FrameHeight int

	// ThresholdPath and FilteredPath receive the intermediate binary images.
	// Empty disables the write.
	ThresholdPath string
	FilteredPath  string

	// Verbose logs the classification and scores of every particle.
	Verbose bool
	Logger  *log.Logger

	// OnFrame, if set, receives every successfully processed frame from Run.
	OnFrame func(*FrameResult)
}

// FrameResult is everything learned from one camera frame.
type FrameResult struct {
	ID       uuid.UUID     `json:"id"`
	Captured time.Time     `json:"captured"`
	Elapsed  time.Duration `json:"elapsed_ns"`
	Width    int           `json:"width"`
	Height   int           `json:"height"`

	// ParticleCount is the number of particles left after area filtering.
	ParticleCount int `json:"particle_count"`
	Evaluation
}

// Processor runs the vision pipeline on camera frames.
type Processor struct {
	camera   Camera
	analyzer particle.Analyzer
	opts     Options
	logger   *log.Logger
}

// NewProcessor creates a Processor reading frames from cam and measuring
// particles with analyzer. A nil analyzer selects the pure Go labeller.
func NewProcessor(cam Camera, analyzer particle.Analyzer, opts Options) *Processor {
	if analyzer == nil {
		analyzer = particle.NewLabeler()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}
	return &Processor{camera: cam, analyzer: analyzer, opts: opts, logger: logger}
}

// Run processes frames one at a time while enabled returns true.
//
// Camera and measurement failures are logged and the frame is skipped; the
// next iteration tries again straight away. Run returns nil once enabled
// reports false, or the context error when ctx is done.
func (p *Processor) Run(ctx context.Context, enabled func() bool) error {
	for enabled() {
		if err := ctx.Err(); err != nil {
			return err
		}

		res, err := p.ProcessFrame(ctx)
		if err != nil {
			if errors.Is(err, ErrCameraUnavailable) || errors.Is(err, ErrMeasurement) {
				p.logger.Printf("frame skipped: %v", err)
				continue
			}
			return err
		}
		if p.opts.OnFrame != nil {
			p.opts.OnFrame(res)
		}
	}
	return nil
}

// Once processes a single frame and logs any failure instead of returning it.
// It returns nil when the frame was skipped.
func (p *Processor) Once(ctx context.Context) *FrameResult {
	res, err := p.ProcessFrame(ctx)
	if err != nil {
		p.logger.Printf("frame skipped: %v", err)
		return nil
	}
	return res
}

// ProcessFrame acquires one frame from the camera and analyses it.
func (p *Processor) ProcessFrame(ctx context.Context) (*FrameResult, error) {
	if p.camera == nil {
		return nil, fmt.Errorf("%w: no camera configured", ErrCameraUnavailable)
	}
	img, err := p.camera.GetImage(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCameraUnavailable, err)
	}
	return p.Analyze(img)
}

// Analyze runs the pipeline on an already acquired frame.
func (p *Processor) Analyze(img image.Image) (*FrameResult, error) {
	start := time.Now()
	img = imaging.Normalize(img, p.opts.FrameWidth, p.opts.FrameHeight)

	thresholded := imaging.ThresholdHSV(img, p.opts.HSV)
	p.writeArtifact(thresholded, p.opts.ThresholdPath)

	measured, err := p.analyzer.Analyze(thresholded)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMeasurement, err)
	}
	filtered := measured.Filter(p.opts.Criteria)
	if p.opts.FilteredPath != "" {
		p.writeArtifact(filtered.Image(), p.opts.FilteredPath)
	}

	ev, err := p.opts.Scorer.Evaluate(filtered.Reports)
	if err != nil {
		return nil, err
	}

	res := &FrameResult{
		ID:            uuid.New(),
		Captured:      start,
		Width:         img.Bounds().Dx(),
		Height:        img.Bounds().Dy(),
		ParticleCount: filtered.Len(),
		Evaluation:    *ev,
	}
	p.logFrame(res)
	res.Elapsed = time.Since(start)
	return res, nil
}

// writeArtifact saves a diagnostic image. Failures are logged only; a frame
// is never dropped for a missing artifact.
func (p *Processor) writeArtifact(img image.Image, path string) {
	if err := imaging.WriteArtifact(img, path); err != nil {
		p.logger.Printf("artifact: %v", err)
	}
}

func (p *Processor) logFrame(res *FrameResult) {
	if p.opts.Verbose {
		for _, pr := range res.Particles {
			r := pr.Report
			if pr.Class == ClassNone {
				p.logger.Printf("particle %d is not a target centerX: %.1f centerY: %.1f", r.Index, r.CenterX, r.CenterY)
			} else {
				p.logger.Printf("particle %d is a %s target centerX: %.1f centerY: %.1f", r.Index, pr.Class, r.CenterX, r.CenterY)
			}
			p.logger.Printf("rect: %.1f ARHoriz: %.1f ARVert: %.1f",
				pr.Scores.Rectangularity, pr.Scores.AspectRatioHorizontal, pr.Scores.AspectRatioVertical)
		}
	}

	if res.Target == nil {
		return
	}
	if res.Hot {
		p.logger.Printf("hot target located, distance %.2f ft", res.Distance)
	} else {
		p.logger.Printf("no hot target present, distance %.2f ft", res.Distance)
	}
}
