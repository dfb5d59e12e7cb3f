// Package svg persists chart rectangles as an SVG file.
package svg

import (
	"errors"
	"fmt"
	"os"

	svgo "github.com/ajstarks/svgo"
)

// ErrOutputWrite indicates that the chart file cannot be created or written.
var ErrOutputWrite = errors.New("write chart output")

// Canvas writes rectangles into an SVG file. It implements heatmap.Canvas.
type Canvas struct {
	file *os.File
	svg  *svgo.SVG
}

// New creates or overwrites the SVG file at path with the given pixel size.
func New(path string, width, height int) (*Canvas, error) {
	file, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrOutputWrite, path, err)
	}

	canvas := svgo.New(file)
	canvas.Start(width, height)

	return &Canvas{file: file, svg: canvas}, nil
}

// Rect adds a filled rectangle.
func (c *Canvas) Rect(x, y, w, h int, fill string) {
	c.svg.Rect(x, y, w, h, "fill:"+fill)
}

// Close finishes the SVG document and flushes the file.
func (c *Canvas) Close() error {
	c.svg.End()

	err := c.file.Close()
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrOutputWrite, c.file.Name(), err)
	}

	return nil
}
