// Package vision finds the hot goal in a camera frame.
//
// The field goal carries two strips of retro-reflective tape: a vertical strip
// 4" wide and 32" tall, and a horizontal strip 23.5" wide and 4" tall that is
// only lit while the goal is "hot". Every camera frame runs through the same
// pipeline:
//
//  1. HSV threshold the frame into a binary image
//  2. Measure the particles and drop the ones below the minimum area
//  3. Score every particle for rectangularity and both aspect ratios
//  4. Classify each particle as horizontal tape, vertical tape or neither
//     (horizontal is checked first, so a particle is never both)
//  5. Score every vertical/horizontal pair and keep the best one
//  6. Decide hot or not from the best pair's scores and estimate the
//     distance to its vertical strip
//
// # Scores
//
// Every score is in [0,100]. 0 means the measurement is outside the acceptable
// range and 100 is an ideal match. Comparisons against an ideal value go
// through RatioToScore, a tent function peaking at a ratio of 1.
//
// # Frames Are Independent
//
// Nothing carries over between frames: no tracking, no smoothing. A failed
// frame (camera or measurement error) is logged and skipped by Run.
//
// The scoring functions are pure and work on any Particle, so they can be fed
// from the built-in particle analyser, the OpenCV backend or hand-built reports.
package vision
