package gol

import (
	"bytes"
	"fmt"
	"log"

	"github.com/anthonynsimon/bild/imgio"
	"github.com/icza/mjpeg"
)

// Encode frames in generation order into an MJPEG AVI file
func writeVideo(frames []frame, path string, fps int) (err error) {
	if len(frames) == 0 {
		log.Print("No frames to export")
		return nil
	}

	first, err := decodeImage(frames[0].path)
	if err != nil {
		return &IOError{Op: "read frame", Path: frames[0].path, Err: err}
	}
	bounds := first.Bounds()

	// Create an MJPEG video writer
	writer, err := mjpeg.New(path, int32(bounds.Dx()), int32(bounds.Dy()), int32(fps))
	if err != nil {
		return &IOError{Op: "create video", Path: path, Err: err}
	}
	defer func() {
		if closeErr := writer.Close(); closeErr != nil && err == nil {
			err = &IOError{Op: "close video", Path: path, Err: closeErr}
		}
	}()

	var buf bytes.Buffer
	encode := imgio.JPEGEncoder(100)
	for i, f := range frames {
		img := first
		if i != 0 {
			if img, err = decodeImage(f.path); err != nil {
				return &IOError{Op: "read frame", Path: f.path, Err: err}
			}
		}
		if img.Bounds().Dx() != bounds.Dx() || img.Bounds().Dy() != bounds.Dy() {
			return &IOError{Op: "read frame", Path: f.path,
				Err: fmt.Errorf("size %v differs from first frame %v", img.Bounds().Size(), bounds.Size())}
		}
		if err = encode(&buf, img); err != nil {
			return &IOError{Op: "encode frame", Path: f.path, Err: err}
		}
		if err = writer.AddFrame(buf.Bytes()); err != nil {
			return &IOError{Op: "write video", Path: path, Err: err}
		}
		buf.Reset()
	}
	log.Printf("Video %s written (%d frames at %d fps)", path, len(frames), fps)
	return nil
}
