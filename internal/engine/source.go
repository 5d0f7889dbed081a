package engine

import (
	"fmt"
	"image"

	"github.com/disintegration/imaging"
)

// FrameSource supplies frames to the detection loop. Capture returns a nil
// image with a nil error when no frame is currently available; window and
// screen grabbing implementations live outside this module.
type FrameSource interface {
	Capture() (image.Image, error)
}

// FileSource is a FrameSource backed by a fixed list of image files,
// returned one per Capture call. Useful for replaying saved frames through
// the engine.
type FileSource struct {
	paths []string
	next  int
}

// NewFileSource creates a FileSource over the given image paths.
func NewFileSource(paths ...string) *FileSource {
	return &FileSource{paths: paths}
}

// Capture decodes and returns the next file, or (nil, nil) once exhausted.
func (s *FileSource) Capture() (image.Image, error) {
	if s.next >= len(s.paths) {
		return nil, nil
	}

	path := s.paths[s.next]
	s.next++

	img, err := imaging.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load frame %s: %w", path, err)
	}
	return img, nil
}

// Remaining reports how many frames have not been captured yet.
func (s *FileSource) Remaining() int {
	return len(s.paths) - s.next
}
