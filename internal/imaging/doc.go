// Package imaging provides the image plumbing around the vision pipeline.
//
// It covers everything between a decoded camera frame and the binary image the
// particle analyser consumes:
//
//   - ImageCache: path-keyed cache of decoded image files
//   - ThresholdHSV: colour threshold into a binary image
//   - Normalize: resize frames to the configured camera resolution
//   - WriteArtifact: save intermediate images for offline inspection
//
// # Coordinate System
//
// All pixel coordinates are 0-based with (0,0) at the top-left corner, X
// increasing rightward and Y increasing downward.
//
// # HSV Scale
//
// Thresholds use the 0-255 scale for all three channels (hue included), the
// same scale the robot's tuning values were recorded in. Hue 0-360 degrees maps
// linearly onto 0-255.
//
// # Binary Images
//
// Binary images are *image.Gray with 255 for foreground and 0 for background.
// They encode as ordinary grayscale files, so artifacts open in any viewer.
//
// # Thread Safety
//
// ImageCache is safe for concurrent use. The remaining functions are stateless
// and never modify their input image.
package imaging
