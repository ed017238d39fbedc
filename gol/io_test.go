package gol

import (
	"errors"
	"image"
	"image/color"
	"math/rand"
	"os"
	"path/filepath"
	"sync"
	"testing"
)

func TestListFramesOrdersNumerically(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"10.png", "2.png", "0.png", "notes.txt", "x.png", ".frame-1.tmp", "-1.png"} {
		if err := os.WriteFile(filepath.Join(dir, name), nil, 0o644); err != nil {
			t.Fatal(err)
		}
	}
	if err := os.Mkdir(filepath.Join(dir, "3.png"), 0o755); err != nil {
		t.Fatal(err)
	}
	frames, err := listFrames(dir)
	if err != nil {
		t.Fatal(err)
	}
	want := []int{0, 2, 10}
	if len(frames) != len(want) {
		t.Fatalf("got %d frames, want %d", len(frames), len(want))
	}
	for i, f := range frames {
		if f.generation != want[i] {
			t.Errorf("frame %d is generation %d, want %d", i, f.generation, want[i])
		}
	}
}

func TestListFramesMissingDir(t *testing.T) {
	frames, err := listFrames(filepath.Join(t.TempDir(), "missing"))
	if err != nil || frames != nil {
		t.Fatalf("got %v, %v", frames, err)
	}
}

func TestListFramesNotADirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "file")
	if err := os.WriteFile(path, nil, 0o644); err != nil {
		t.Fatal(err)
	}
	_, err := listFrames(path)
	var ioErr *IOError
	if !errors.As(err, &ioErr) {
		t.Fatalf("got %v, want IOError", err)
	}
}

func TestGridFromImagePads(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 3, 5))
	img.Set(2, 4, color.RGBA{R: 9, G: 8, B: 7, A: 255})
	grid := gridFromImage(img, 4)
	if grid.Width != 4 || grid.Height != 8 {
		t.Fatalf("got %dx%d, want 4x8", grid.Width, grid.Height)
	}
	if grid.Pixels[4][2] != (Color{9, 8, 7}) {
		t.Fatalf("got %v", grid.Pixels[4][2])
	}
	if grid.alive() != 1 {
		t.Fatalf("padding is not dead")
	}
	if unpadded := gridFromImage(img, 0); unpadded.Width != 3 || unpadded.Height != 5 {
		t.Fatalf("got %dx%d, want 3x5", unpadded.Width, unpadded.Height)
	}
}

func TestGridFromImageDropsAlpha(t *testing.T) {
	for _, test := range []struct {
		name string
		in   color.NRGBA
		want Color
	}{
		{"opaque", color.NRGBA{R: 200, G: 100, B: 50, A: 255}, Color{200, 100, 50}},
		{"half transparent", color.NRGBA{R: 200, G: 100, B: 50, A: 128}, Color{200, 100, 50}},
		{"transparent", color.NRGBA{R: 255, G: 255, B: 255, A: 0}, Color{255, 255, 255}},
		{"transparent black", color.NRGBA{}, Dead},
	} {
		img := image.NewNRGBA(image.Rect(0, 0, 2, 2))
		img.SetNRGBA(1, 1, test.in)
		if got := gridFromImage(img, 0).Pixels[1][1]; got != test.want {
			t.Errorf("%s: got %v, want %v", test.name, got, test.want)
		}
		// Frames enlarged by 2 have the same pixel in the centre of block (0,0)
		if got := gridFromFrame(img, 2).Pixels[0][0]; got != test.want {
			t.Errorf("%s frame: got %v, want %v", test.name, got, test.want)
		}
	}
}

func TestListFramesIgnoresNonCanonicalNames(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"5.png", "05.png", "+5.png", "007.png", "6.png"} {
		if err := os.WriteFile(filepath.Join(dir, name), nil, 0o644); err != nil {
			t.Fatal(err)
		}
	}
	frames, err := listFrames(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(frames) != 2 || frames[0].path != filepath.Join(dir, "5.png") || frames[1].path != filepath.Join(dir, "6.png") {
		t.Fatalf("got %v", frames)
	}
}

// Frames are written enlarged and read back at simulation resolution through the io goroutine
func TestIoFrameRoundTrip(t *testing.T) {
	dir := t.TempDir()
	io := &ioState{
		params: Params{OutDir: dir, Scale: 5},
		cond:   sync.NewCond(new(sync.Mutex)),
	}
	go startIo(io)
	defer io.quit()

	grid := randomGrid(rand.New(rand.NewSource(13)), 6, 4, 0.6)
	for _, generation := range []int{0, 3} {
		operation := &ioOperation{command: ioOutput, generation: generation, grid: grid}
		io.sendIoRequest(operation)
		io.waitIoRequest()
		if operation.err != nil {
			t.Fatal(operation.err)
		}
	}

	img, err := decodeImage(filepath.Join(dir, "3.png"))
	if err != nil {
		t.Fatal(err)
	}
	if size := img.Bounds().Size(); size.X != 30 || size.Y != 20 {
		t.Fatalf("frame is %v, want 30x20", size)
	}

	operation := &ioOperation{command: ioResume}
	io.sendIoRequest(operation)
	io.waitIoRequest()
	if operation.err != nil {
		t.Fatal(operation.err)
	}
	if !operation.found || operation.generation != 3 {
		t.Fatalf("resumed generation %d (found %v), want 3", operation.generation, operation.found)
	}
	assertGridEqual(t, operation.grid, grid)

	leftovers, _ := filepath.Glob(filepath.Join(dir, "*.tmp"))
	if len(leftovers) != 0 {
		t.Fatalf("temporary files left behind: %v", leftovers)
	}
}
