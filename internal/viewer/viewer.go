// Package viewer opens the chart file in the system image viewer.
package viewer

import (
	"io"

	"github.com/pkg/browser"
)

// Open launches the OS default viewer for the file at path. Launching is
// best effort: the viewer's own diagnostics are discarded and a failed
// launch never fails the run.
func Open(path string) {
	browser.Stdout = io.Discard
	browser.Stderr = io.Discard

	_ = browser.OpenFile(path)
}
