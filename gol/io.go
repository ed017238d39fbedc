package gol

import (
	"errors"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/anthonynsimon/bild/imgio"
	"github.com/anthonynsimon/bild/transform"
	_ "golang.org/x/image/bmp"
)

// ioState is the internal state of the io goroutine
type ioState struct {
	params    Params
	operation *ioOperation
	cond      *sync.Cond
}

// ioCommand allows requesting behaviour from the io goroutine.
type ioCommand uint8

const (
	ioOutput ioCommand = iota // Write a frame
	ioInput                   // Read the source image
	ioResume                  // Read the latest frame
	ioExport                  // Assemble frames into the video
	ioQuit
)

type ioOperation struct {
	command    ioCommand
	generation int
	grid       Grid
	filename   string
	found      bool // Set by ioResume when a frame exists
	err        error
	completed  bool
}

// A saved frame in the output directory
type frame struct {
	generation int
	path       string
}

// List frames in generation order, names that are not "<generation>.png" are ignored
func listFrames(dir string) ([]frame, error) {
	entries, err := os.ReadDir(dir)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, &IOError{Op: "list frames", Path: dir, Err: err}
	}
	frames := make([]frame, 0, len(entries))
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || filepath.Ext(name) != ".png" {
			continue
		}
		generation, err := strconv.Atoi(strings.TrimSuffix(name, ".png"))
		// Only the canonical spelling, so "05.png" never shadows "5.png"
		if err != nil || generation < 0 || name != strconv.Itoa(generation)+".png" {
			continue
		}
		frames = append(frames, frame{generation: generation, path: filepath.Join(dir, name)})
	}
	sort.Slice(frames, func(i, j int) bool { return frames[i].generation < frames[j].generation })
	return frames, nil
}

func decodeImage(path string) (image.Image, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	img, _, err := image.Decode(file)
	return img, err
}

// readSource decodes the source image into the first grid
func (io *ioState) readSource() {
	path := io.params.Source
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		io.operation.err = &ConfigurationError{Field: "source", Reason: "image " + path + " does not exist"}
		return
	}
	img, err := decodeImage(path)
	if err != nil {
		io.operation.err = &IOError{Op: "read source", Path: path, Err: err}
		return
	}
	pad_to := 0
	if io.params.Pad {
		pad_to = io.params.TileSize
	}
	io.operation.grid = gridFromImage(img, pad_to)
	log.Printf("Source %s loaded (%dx%d)", path, io.operation.grid.Width, io.operation.grid.Height)
}

// readLatest decodes the highest generation frame, if any, back to simulation resolution
func (io *ioState) readLatest() {
	frames, err := listFrames(io.params.OutDir)
	if err != nil {
		io.operation.err = err
		return
	}
	if len(frames) == 0 {
		return
	}
	last := frames[len(frames)-1]
	img, err := decodeImage(last.path)
	if err != nil {
		io.operation.err = &IOError{Op: "read frame", Path: last.path, Err: err}
		return
	}
	io.operation.grid = gridFromFrame(img, io.params.Scale)
	io.operation.generation = last.generation
	io.operation.filename = last.path
	io.operation.found = true
	log.Printf("Resuming from %s", last.path)
}

// writeFrame encodes the grid enlarged by the display scale
// The frame is renamed into place so it only exists once complete
func (io *ioState) writeFrame() {
	dir := io.params.OutDir
	path := filepath.Join(dir, strconv.Itoa(io.operation.generation)+".png")
	fail := func(err error) {
		io.operation.err = &IOError{Op: "write frame", Path: path, Err: err}
	}

	if err := os.MkdirAll(dir, os.ModePerm); err != nil {
		fail(err)
		return
	}

	grid := io.operation.grid
	var img image.Image = grid.image()
	if scale := io.params.Scale; scale > 1 {
		img = transform.Resize(img, grid.Width*scale, grid.Height*scale, transform.NearestNeighbor)
	}

	file, err := os.CreateTemp(dir, ".frame-*.tmp")
	if err != nil {
		fail(err)
		return
	}
	defer os.Remove(file.Name())
	if err = imgio.PNGEncoder()(file, img); err == nil {
		err = file.Sync()
	}
	if closeErr := file.Close(); err == nil {
		err = closeErr
	}
	if err == nil {
		err = os.Rename(file.Name(), path)
	}
	if err != nil {
		fail(err)
		return
	}
	io.operation.filename = path
}

// exportVideo assembles every saved frame into the output video
func (io *ioState) exportVideo() {
	frames, err := listFrames(io.params.OutDir)
	if err != nil {
		io.operation.err = err
		return
	}
	io.operation.err = writeVideo(frames, io.params.Video, io.params.FrameRate)
	io.operation.filename = io.params.Video
}

// startIo should be the entrypoint of the io goroutine.
func startIo(io *ioState) {
	io.cond.L.Lock()
	defer io.cond.L.Unlock()
	for {
		for io.operation == nil || io.operation.completed {
			io.cond.Wait()
		}
		switch io.operation.command {
		case ioInput:
			io.readSource()
		case ioResume:
			io.readLatest()
		case ioOutput:
			io.writeFrame()
		case ioExport:
			io.exportVideo()
		case ioQuit:
			return
		}
		io.operation.completed = true
		io.cond.Signal()
	}
}

// Initiate an IO request
func (io *ioState) sendIoRequest(operation *ioOperation) {
	io.cond.L.Lock()
	io.operation = operation
	io.cond.Signal()
	io.cond.L.Unlock()
}

// Wait until last IO operation completed
func (io *ioState) waitIoRequest() {
	io.cond.L.Lock()
	for !io.operation.completed {
		io.cond.Wait()
	}
	io.cond.L.Unlock()
}

// Send a signal to IO thread to quit
func (io *ioState) quit() {
	io.sendIoRequest(&ioOperation{command: ioQuit})
}
