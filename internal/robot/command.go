package robot

import (
	"context"
	"errors"

	"github.com/team1160/assistant-vision/internal/vision"
)

var errNoVision = errors.New("no vision subsystem")

// Command is a unit of robot behaviour driven by RunCommand.
type Command interface {
	Initialize(rc *Context)
	Execute(ctx context.Context, rc *Context) error
	IsFinished(rc *Context) bool
	End(rc *Context)
}

// RunCommand initializes cmd, executes it until it is finished and ends it.
// End runs even when Execute fails or ctx is done.
func RunCommand(ctx context.Context, rc *Context, cmd Command) error {
	cmd.Initialize(rc)
	defer cmd.End(rc)

	for !cmd.IsFinished(rc) {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := cmd.Execute(ctx, rc); err != nil {
			return err
		}
	}
	return nil
}

// TrackTarget looks at one frame per Execute during autonomous until it sees
// a hot target. It stops the drivetrain when it ends.
type TrackTarget struct {
	// MaxFrames bounds the frames examined; 0 is unbounded.
	MaxFrames int

	// Last is the most recent processed frame, nil if it was skipped.
	Last   *vision.FrameResult
	Frames int
}

func (t *TrackTarget) Initialize(rc *Context) {
	t.Last = nil
	t.Frames = 0
	rc.Logger.Printf("track target: start")
}

func (t *TrackTarget) Execute(ctx context.Context, rc *Context) error {
	if rc.Vision == nil {
		return errNoVision
	}
	t.Last = rc.Vision.Once(ctx)
	t.Frames++
	return nil
}

func (t *TrackTarget) IsFinished(rc *Context) bool {
	if t.Last != nil && t.Last.Hot {
		return true
	}
	if t.MaxFrames > 0 && t.Frames >= t.MaxFrames {
		return true
	}
	return !rc.IsAutonomous()
}

func (t *TrackTarget) End(rc *Context) {
	if err := rc.Drivetrain.Stop(); err != nil {
		rc.Logger.Printf("track target: stop drivetrain: %v", err)
	}
	hot := t.Last != nil && t.Last.Hot
	rc.Logger.Printf("track target: done after %d frames, hot=%t", t.Frames, hot)
}

// Snapshot processes exactly one frame. It is the operator's check during
// teleop and ignores the autonomous flag.
type Snapshot struct {
	Result *vision.FrameResult
	done   bool
}

func (s *Snapshot) Initialize(*Context) {
	s.Result = nil
	s.done = false
}

func (s *Snapshot) Execute(ctx context.Context, rc *Context) error {
	if rc.Vision == nil {
		return errNoVision
	}
	s.Result = rc.Vision.Once(ctx)
	s.done = true
	return nil
}

func (s *Snapshot) IsFinished(*Context) bool {
	return s.done
}

func (s *Snapshot) End(*Context) {}
