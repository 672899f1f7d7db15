// Package lightbox models the image viewer overlaying the gallery grid:
// a cursor into the loaded image list plus a zoom level. Navigation wraps
// around and resets zoom; zoom moves in fixed steps between hard bounds.
package lightbox

import (
	"errors"
	"math"
)

const (
	ZoomMin     = 0.5
	ZoomMax     = 3.0
	ZoomStep    = 0.2
	ZoomDefault = 1.0
)

var (
	ErrNoImages        = errors.New("lightbox: no images loaded")
	ErrIndexOutOfRange = errors.New("lightbox: index out of range")
)

// Lightbox is the viewer state for one loaded image list. The zero value is
// unusable; construct with New.
type Lightbox struct {
	Count int     `json:"count"`
	Index int     `json:"index"`
	Zoom  float64 `json:"zoom"`
	Open  bool    `json:"open"`
}

// New returns a closed viewer over count images, positioned at the first
// image with default zoom.
func New(count int) Lightbox {
	return Lightbox{
		Count: count,
		Zoom:  ZoomDefault,
	}
}

// OpenAt opens the viewer on the image at index.
func (l *Lightbox) OpenAt(index int) error {
	if l.Count == 0 {
		return ErrNoImages
	}
	if index < 0 || index >= l.Count {
		return ErrIndexOutOfRange
	}
	l.Index = index
	l.Zoom = ZoomDefault
	l.Open = true
	return nil
}

// Close hides the viewer. Index and zoom are irrelevant while closed; both
// reset on the next OpenAt.
func (l *Lightbox) Close() {
	l.Open = false
}

// Next advances to the following image, wrapping past the end. Moving to a
// new image always resets zoom.
func (l *Lightbox) Next() error {
	if l.Count == 0 {
		return ErrNoImages
	}
	l.Index = (l.Index + 1) % l.Count
	l.Zoom = ZoomDefault
	return nil
}

// Prev retreats to the preceding image, wrapping past the start.
func (l *Lightbox) Prev() error {
	if l.Count == 0 {
		return ErrNoImages
	}
	l.Index = (l.Index - 1 + l.Count) % l.Count
	l.Zoom = ZoomDefault
	return nil
}

// ZoomIn raises zoom one step, clamped at ZoomMax.
func (l *Lightbox) ZoomIn() {
	l.Zoom = clampZoom(l.Zoom + ZoomStep)
}

// ZoomOut lowers zoom one step, clamped at ZoomMin.
func (l *Lightbox) ZoomOut() {
	l.Zoom = clampZoom(l.Zoom - ZoomStep)
}

// ResetZoom restores the default zoom, e.g. on double-click.
func (l *Lightbox) ResetZoom() {
	l.Zoom = ZoomDefault
}

// clampZoom bounds the value and rounds to one decimal so repeated 0.2
// steps never accumulate float drift.
func clampZoom(z float64) float64 {
	z = math.Round(z*10) / 10
	if z < ZoomMin {
		return ZoomMin
	}
	if z > ZoomMax {
		return ZoomMax
	}
	return z
}
