//go:build !gocv

package camera

import "errors"

func newVideoCamera(string) (Camera, error) {
	return nil, errors.New(`the "video" source requires building with -tags gocv`)
}
