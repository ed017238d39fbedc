package gol

import "fmt"

// Divide grid into square tiles of the given size
// Every tile is a copy, so workers never alias the source grid
func partition(grid Grid, size int) ([][]Tile, error) {
	if size <= 0 {
		return nil, &ConfigurationError{Field: "tile size", Reason: fmt.Sprintf("%d is not positive", size)}
	}
	if grid.Width%size != 0 || grid.Height%size != 0 {
		return nil, &ConfigurationError{
			Field:  "tile size",
			Reason: fmt.Sprintf("%d does not divide grid %dx%d", size, grid.Width, grid.Height),
		}
	}
	rows := grid.Height / size
	cols := grid.Width / size
	tiles := make([][]Tile, rows)
	for row := 0; row != rows; row++ {
		tiles[row] = make([]Tile, cols)
		for col := 0; col != cols; col++ {
			tile := Tile{Row: row, Col: col, Size: size, Pixels: make([][]Color, size)}
			pixel_data := make([]Color, size*size)
			for y := 0; y != size; y++ {
				tile.Pixels[y] = pixel_data[y*size : (y+1)*size : (y+1)*size]
				copy(tile.Pixels[y], grid.Pixels[row*size+y][col*size:(col+1)*size])
			}
			tiles[row][col] = tile
		}
	}
	return tiles, nil
}

// Check if a local cell lies on a side of its tile that faces another tile
// Sides at the grid boundary have no neighbour to share with
func onBorder(row, col, rows, cols, x, y, size int) bool {
	return (x == 0 && col > 0) ||
		(x == size-1 && col < cols-1) ||
		(y == 0 && row > 0) ||
		(y == size-1 && row < rows-1)
}

// Concatenate tiles back into a grid, inverse of partition
func combine(tiles [][]Tile) Grid {
	if len(tiles) == 0 || len(tiles[0]) == 0 {
		return MakeGrid(0, 0)
	}
	size := tiles[0][0].Size
	grid := MakeGrid(len(tiles[0])*size, len(tiles)*size)
	for row := range tiles {
		for col := range tiles[row] {
			tile := tiles[row][col]
			for y := 0; y != size; y++ {
				copy(grid.Pixels[row*size+y][col*size:(col+1)*size], tile.Pixels[y])
			}
		}
	}
	return grid
}
