package gol

import (
	"image"
	"image/color"
)

// Grid is the full colour matrix of one generation
type Grid struct {
	Width  int
	Height int
	Pixels [][]Color // Indexed [y][x], rows share a single backing array
}

// MakeGrid makes a grid of dead cells
func MakeGrid(width, height int) Grid {
	grid := Grid{
		Width:  width,
		Height: height,
		Pixels: make([][]Color, height),
	}
	pixel_data := make([]Color, width*height)
	for y := 0; y != height; y++ {
		grid.Pixels[y] = pixel_data[0:width:width]
		pixel_data = pixel_data[width:]
	}
	return grid
}

// Number of alive cells
func (grid Grid) alive() int {
	count := 0
	for y := 0; y != grid.Height; y++ {
		for x := 0; x != grid.Width; x++ {
			if grid.Pixels[y][x].alive() {
				count++
			}
		}
	}
	return count
}

// Number of cells whose colour differs between two grids of the same size
func countChanged(prev, next Grid) int {
	changed := 0
	for y := 0; y != prev.Height; y++ {
		for x := 0; x != prev.Width; x++ {
			if prev.Pixels[y][x] != next.Pixels[y][x] {
				changed++
			}
		}
	}
	return changed
}

// Colour of an image pixel with alpha dropped, RGB is not premultiplied
func colourAt(img image.Image, x, y int) Color {
	c := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
	return Color{R: c.R, G: c.G, B: c.B}
}

// Build grid from a decoded image, alpha is discarded
// If padTo is positive, dimensions are rounded up to a multiple of it with dead cells
func gridFromImage(img image.Image, padTo int) Grid {
	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	if padTo > 0 {
		width = roundUp(width, padTo)
		height = roundUp(height, padTo)
	}
	grid := MakeGrid(width, height)
	for y := 0; y != bounds.Dy(); y++ {
		for x := 0; x != bounds.Dx(); x++ {
			grid.Pixels[y][x] = colourAt(img, bounds.Min.X+x, bounds.Min.Y+y)
		}
	}
	return grid
}

// Recover simulation grid from a frame enlarged by scale, sampling the centre of every block
func gridFromFrame(img image.Image, scale int) Grid {
	bounds := img.Bounds()
	grid := MakeGrid(bounds.Dx()/scale, bounds.Dy()/scale)
	for y := 0; y != grid.Height; y++ {
		for x := 0; x != grid.Width; x++ {
			grid.Pixels[y][x] = colourAt(img, bounds.Min.X+x*scale+scale/2, bounds.Min.Y+y*scale+scale/2)
		}
	}
	return grid
}

// Render grid at simulation resolution
func (grid Grid) image() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, grid.Width, grid.Height))
	for y := 0; y != grid.Height; y++ {
		for x := 0; x != grid.Width; x++ {
			c := grid.Pixels[y][x]
			img.SetRGBA(x, y, color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xFF})
		}
	}
	return img
}

func roundUp(value, multiple int) int {
	if rem := value % multiple; rem != 0 {
		return value + multiple - rem
	}
	return value
}
