//go:build !gocv

package particle

import "errors"

var errNoGoCV = errors.New(`the "gocv" backend requires building with -tags gocv`)

func newCVAnalyzer() (Analyzer, error) {
	return nil, errNoGoCV
}

func cvVersion() string {
	return ""
}
