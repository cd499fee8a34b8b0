package robot

import (
	"context"
	"log"

	"github.com/team1160/assistant-vision/internal/vision"
)

// Drivetrain moves the robot.
type Drivetrain interface {
	// Drive sets the left and right side outputs in [-1, 1].
	Drive(left, right float64) error
	Stop() error
}

// Pneumatics controls the compressor.
type Pneumatics interface {
	SetCompressor(on bool) error
}

// Shooter launches the ball.
type Shooter interface {
	Fire() error
}

// Vision is the vision subsystem as commands see it. *vision.Processor
// implements it.
type Vision interface {
	Once(ctx context.Context) *vision.FrameResult
	Run(ctx context.Context, enabled func() bool) error
}

// LogDrivetrain is a Drivetrain that only logs.
type LogDrivetrain struct {
	Logger *log.Logger
}

func (d LogDrivetrain) Drive(left, right float64) error {
	d.Logger.Printf("drivetrain: drive left=%.2f right=%.2f", left, right)
	return nil
}

func (d LogDrivetrain) Stop() error {
	d.Logger.Printf("drivetrain: stop")
	return nil
}

// LogPneumatics is a Pneumatics that only logs.
type LogPneumatics struct {
	Logger *log.Logger
}

func (p LogPneumatics) SetCompressor(on bool) error {
	p.Logger.Printf("pneumatics: compressor on=%t", on)
	return nil
}

// LogShooter is a Shooter that only logs.
type LogShooter struct {
	Logger *log.Logger
}

func (s LogShooter) Fire() error {
	s.Logger.Printf("shooter: fire")
	return nil
}
