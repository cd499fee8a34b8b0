package robot

import (
	"bytes"
	"context"
	"errors"
	"log"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/team1160/assistant-vision/internal/vision"
)

// fakeVision replays results; a nil entry is a skipped frame.
type fakeVision struct {
	results []*vision.FrameResult
	calls   int
	onFrame func()
}

func (v *fakeVision) Once(ctx context.Context) *vision.FrameResult {
	i := v.calls
	v.calls++
	if v.onFrame != nil {
		v.onFrame()
	}
	if i >= len(v.results) {
		return nil
	}
	return v.results[i]
}

func (v *fakeVision) Run(ctx context.Context, enabled func() bool) error {
	for enabled() {
		if err := ctx.Err(); err != nil {
			return err
		}
		v.Once(ctx)
	}
	return nil
}

type countingDrivetrain struct {
	stops int
}

func (d *countingDrivetrain) Drive(left, right float64) error { return nil }
func (d *countingDrivetrain) Stop() error {
	d.stops++
	return nil
}

func frame(hot bool) *vision.FrameResult {
	return &vision.FrameResult{Evaluation: vision.Evaluation{Target: &vision.TargetReport{Hot: hot}, Hot: hot}}
}

func newTestContext(v Vision, dt Drivetrain) (*Context, *bytes.Buffer) {
	var logs bytes.Buffer
	rc := NewContext(Subsystems{Vision: v, Drivetrain: dt}, log.New(&logs, "", 0))
	return rc, &logs
}

func TestNewContext_Stubs(t *testing.T) {
	rc, logs := newTestContext(nil, nil)

	require.IsType(t, LogDrivetrain{}, rc.Drivetrain)
	require.IsType(t, LogPneumatics{}, rc.Pneumatics)
	require.IsType(t, LogShooter{}, rc.Shooter)
	assert.Nil(t, rc.Vision)

	require.NoError(t, rc.Drivetrain.Drive(0.5, -0.5))
	require.NoError(t, rc.Drivetrain.Stop())
	require.NoError(t, rc.Pneumatics.SetCompressor(true))
	require.NoError(t, rc.Shooter.Fire())

	out := logs.String()
	assert.Contains(t, out, "drive left=0.50 right=-0.50")
	assert.Contains(t, out, "drivetrain: stop")
	assert.Contains(t, out, "compressor on=true")
	assert.Contains(t, out, "shooter: fire")
}

func TestContext_Autonomous(t *testing.T) {
	rc, _ := newTestContext(nil, nil)
	assert.False(t, rc.IsAutonomous())
	rc.SetAutonomous(true)
	assert.True(t, rc.IsAutonomous())
	rc.SetAutonomous(false)
	assert.False(t, rc.IsAutonomous())
}

func TestContext_RunVision(t *testing.T) {
	v := &fakeVision{}
	rc, _ := newTestContext(v, nil)
	rc.SetAutonomous(true)
	v.onFrame = func() {
		if v.calls == 3 {
			rc.SetAutonomous(false)
		}
	}

	require.NoError(t, rc.RunVision(context.Background()))
	assert.Equal(t, 3, v.calls)

	rc.Vision = nil
	assert.ErrorIs(t, rc.RunVision(context.Background()), errNoVision)
}

func TestTrackTarget_StopsOnHot(t *testing.T) {
	v := &fakeVision{results: []*vision.FrameResult{nil, frame(false), frame(true), frame(false)}}
	dt := &countingDrivetrain{}
	rc, logs := newTestContext(v, dt)
	rc.SetAutonomous(true)

	cmd := &TrackTarget{}
	require.NoError(t, RunCommand(context.Background(), rc, cmd))

	assert.Equal(t, 3, cmd.Frames)
	require.NotNil(t, cmd.Last)
	assert.True(t, cmd.Last.Hot)
	assert.Equal(t, 1, dt.stops)
	assert.Contains(t, logs.String(), "done after 3 frames, hot=true")
}

func TestTrackTarget_StopsWhenAutonomousEnds(t *testing.T) {
	v := &fakeVision{results: []*vision.FrameResult{frame(false), frame(false), frame(false)}}
	dt := &countingDrivetrain{}
	rc, _ := newTestContext(v, dt)
	rc.SetAutonomous(true)
	v.onFrame = func() {
		if v.calls == 2 {
			rc.SetAutonomous(false)
		}
	}

	cmd := &TrackTarget{}
	require.NoError(t, RunCommand(context.Background(), rc, cmd))
	assert.Equal(t, 2, cmd.Frames)
	assert.False(t, cmd.Last.Hot)
	assert.Equal(t, 1, dt.stops)
}

func TestTrackTarget_MaxFrames(t *testing.T) {
	v := &fakeVision{}
	rc, _ := newTestContext(v, nil)
	rc.SetAutonomous(true)

	cmd := &TrackTarget{MaxFrames: 4}
	require.NoError(t, RunCommand(context.Background(), rc, cmd))
	assert.Equal(t, 4, v.calls)
	assert.Nil(t, cmd.Last)
}

func TestTrackTarget_NotAutonomous(t *testing.T) {
	v := &fakeVision{}
	rc, _ := newTestContext(v, nil)

	require.NoError(t, RunCommand(context.Background(), rc, &TrackTarget{}))
	assert.Equal(t, 0, v.calls)
}

func TestRunCommand_ContextCancelled(t *testing.T) {
	v := &fakeVision{}
	dt := &countingDrivetrain{}
	rc, _ := newTestContext(v, dt)
	rc.SetAutonomous(true)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := RunCommand(ctx, rc, &TrackTarget{})
	assert.True(t, errors.Is(err, context.Canceled))
	assert.Equal(t, 1, dt.stops)
}

func TestRunCommand_NoVision(t *testing.T) {
	dt := &countingDrivetrain{}
	rc, _ := newTestContext(nil, dt)
	rc.SetAutonomous(true)

	err := RunCommand(context.Background(), rc, &TrackTarget{})
	assert.ErrorIs(t, err, errNoVision)
	assert.Equal(t, 1, dt.stops)
}

func TestSnapshot(t *testing.T) {
	v := &fakeVision{results: []*vision.FrameResult{frame(true), frame(true)}}
	rc, _ := newTestContext(v, nil)

	cmd := &Snapshot{}
	require.NoError(t, RunCommand(context.Background(), rc, cmd))
	assert.Equal(t, 1, v.calls)
	require.NotNil(t, cmd.Result)
	assert.True(t, cmd.Result.Hot)

	// A command can be run again.
	require.NoError(t, RunCommand(context.Background(), rc, cmd))
	assert.Equal(t, 2, v.calls)
}

var _ Vision = (*vision.Processor)(nil)
