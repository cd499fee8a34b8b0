package robot

import (
	"context"
	"log"
	"sync/atomic"
)

// Subsystems lists the subsystems of a Context. Nil entries are replaced by
// the logging stubs; Vision has no stub.
type Subsystems struct {
	Drivetrain Drivetrain
	Pneumatics Pneumatics
	Shooter    Shooter
	Vision     Vision
}

// Context holds the subsystems and the match state shared by commands.
type Context struct {
	Drivetrain Drivetrain
	Pneumatics Pneumatics
	Shooter    Shooter
	Vision     Vision
	Logger     *log.Logger

	autonomous atomic.Bool
}

// NewContext builds a Context from s. A nil logger selects log.Default().
func NewContext(s Subsystems, logger *log.Logger) *Context {
	if logger == nil {
		logger = log.Default()
	}
	c := &Context{
		Drivetrain: s.Drivetrain,
		Pneumatics: s.Pneumatics,
		Shooter:    s.Shooter,
		Vision:     s.Vision,
		Logger:     logger,
	}
	if c.Drivetrain == nil {
		c.Drivetrain = LogDrivetrain{Logger: logger}
	}
	if c.Pneumatics == nil {
		c.Pneumatics = LogPneumatics{Logger: logger}
	}
	if c.Shooter == nil {
		c.Shooter = LogShooter{Logger: logger}
	}
	return c
}

// SetAutonomous sets the autonomous period flag. It may be called from any
// goroutine.
func (c *Context) SetAutonomous(on bool) {
	c.autonomous.Store(on)
}

// IsAutonomous reports whether the autonomous period is running.
func (c *Context) IsAutonomous() bool {
	return c.autonomous.Load()
}

// RunVision processes frames until the autonomous flag drops or ctx ends.
func (c *Context) RunVision(ctx context.Context) error {
	if c.Vision == nil {
		return errNoVision
	}
	return c.Vision.Run(ctx, c.IsAutonomous)
}
