package gol

import "fmt"

// Flatten tile pixels to RGB bytes in row-major order
func compressTile(tile Tile) []byte {
	data := make([]byte, 0, tile.Size*tile.Size*3)
	for y := 0; y != tile.Size; y++ {
		for _, c := range tile.Pixels[y] {
			data = append(data, c.R, c.G, c.B)
		}
	}
	return data
}

// Rebuild a tile from RGB bytes
func decompressTile(row, col, size int, data []byte) (Tile, error) {
	if size <= 0 || len(data) != size*size*3 {
		return Tile{}, fmt.Errorf("tile (%d,%d): %d bytes for size %d", row, col, len(data), size)
	}
	tile := Tile{Row: row, Col: col, Size: size, Pixels: make([][]Color, size)}
	pixel_data := make([]Color, size*size)
	for i := range pixel_data {
		pixel_data[i] = Color{R: data[i*3], G: data[i*3+1], B: data[i*3+2]}
	}
	for y := 0; y != size; y++ {
		tile.Pixels[y] = pixel_data[y*size : (y+1)*size : (y+1)*size]
	}
	return tile, nil
}
