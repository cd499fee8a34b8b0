// Package robot wires the vision pipeline to the robot's subsystems.
//
// Subsystems are reached through a Context passed to every Command, never
// through package state. The subsystems without hardware behind them in this
// repository (drivetrain, pneumatics, shooter) are logging stubs that satisfy
// the interfaces, so commands can be run and tested off the robot.
package robot
