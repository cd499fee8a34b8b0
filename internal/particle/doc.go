// Package particle turns a binary (thresholded) image into particle reports.
//
// A particle is a connected blob of foreground pixels. For every particle the
// analyser measures the geometry the target scorer needs:
//
//   - Bounding rectangle (left, top, width, height)
//   - Center of mass (mean pixel x and y)
//   - Area (pixel count)
//   - Perimeter (number of exposed pixel edges)
//   - Equivalent rectangle sides (the rectangle with the same area and perimeter)
//
// # Connectivity
//
// Foreground pixels are grouped with 8-connectivity, so diagonal neighbours
// belong to the same particle. Particles are numbered in the order their first
// pixel is met during a row-major scan (top row first, left to right).
//
// # Backends
//
// Labeler is the pure Go backend and is always available. Building with the
// "gocv" tag adds CVLabeler, which hands the connected component pass to
// OpenCV and shares the measurement code with Labeler.
//
// # Filtering
//
// Criteria removes particles whose measurements fall outside (or, with
// Exclude set, inside) a range. The filtered Result renumbers the surviving
// particles from zero and can render them back into a binary image.
package particle
