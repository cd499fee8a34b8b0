// Package config holds the tuning of the vision pipeline: camera source and
// geometry, HSV threshold window, particle filter and score limits.
//
// A tuning file is JSON. Load starts from Default and unmarshals the file
// over it, so a file only needs the values it changes:
//
//	{
//	  "camera": {"source": "directory", "path": "testdata/frames"},
//	  "limits": {"lr_score": 45}
//	}
package config
