package particle

import "fmt"

// BackendGo selects the pure Go Labeler. It is always available.
const BackendGo = "go"

// BackendGoCV selects the OpenCV CVLabeler, built with the gocv tag.
const BackendGoCV = "gocv"

// BackendInfo describes an analysis backend and whether this binary has it.
type BackendInfo struct {
	Name      string `json:"name"`
	Available bool   `json:"available"`
	Version   string `json:"version,omitempty"`
	Error     string `json:"error,omitempty"`
}

// NewAnalyzer returns the Analyzer registered under name. An empty name
// selects the pure Go labeller.
func NewAnalyzer(name string) (Analyzer, error) {
	switch name {
	case "", BackendGo:
		return NewLabeler(), nil
	case BackendGoCV:
		return newCVAnalyzer()
	default:
		return nil, fmt.Errorf("unknown particle backend %q", name)
	}
}

// Backends reports the availability of every backend.
func Backends() []BackendInfo {
	infos := []BackendInfo{{Name: BackendGo, Available: true}}

	cv := BackendInfo{Name: BackendGoCV}
	if _, err := newCVAnalyzer(); err != nil {
		cv.Error = err.Error()
	} else {
		cv.Available = true
		cv.Version = cvVersion()
	}
	return append(infos, cv)
}
