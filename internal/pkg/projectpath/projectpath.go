// Package projectpath resolves the repository root at compile time so that
// auxiliary files (.env, logs) can be located regardless of the working directory.
package projectpath

import (
	"path/filepath"
	"runtime"
)

var (
	_, b, _, _ = runtime.Caller(0)

	// Root is the root directory of this project.
	Root = filepath.Join(filepath.Dir(b), "../../..")
)
