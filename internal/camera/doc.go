// Package camera provides the frame sources of the vision pipeline.
//
// Every source implements Camera. New builds the source named by the
// configuration:
//
//   - axis: JPEG snapshots from an Axis network camera over HTTP
//   - directory: replays the image files of a directory in name order, looping
//   - file: returns the same image file on every call
//   - video: reads frames from a video file or capture device through OpenCV
//     (requires building with the "gocv" tag)
//
// Sources are safe for use by one processing loop at a time.
package camera
