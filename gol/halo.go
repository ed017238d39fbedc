package gol

// Halo maps global coordinates of tile border cells to their colour
// It is read-only while tiles are being stepped
type Halo map[Cell]Color

// Collect every cell that some adjacent tile needs to read
// Rebuilt from scratch each generation so entries are never stale
func buildHalo(grid Grid, size int) Halo {
	rows := grid.Height / size
	cols := grid.Width / size
	halo := make(Halo, 4*size*rows*cols)
	for row := 0; row != rows; row++ {
		for col := 0; col != cols; col++ {
			for y := 0; y != size; y++ {
				for x := 0; x != size; x++ {
					if onBorder(row, col, rows, cols, x, y, size) {
						cell := Cell{X: col*size + x, Y: row*size + y}
						halo[cell] = grid.Pixels[cell.Y][cell.X]
					}
				}
			}
		}
	}
	return halo
}

// Ring of halo cells immediately surrounding a tile
func (halo Halo) around(tile Tile) Halo {
	origin := tile.Origin()
	ring := make(Halo, 4*tile.Size+4)
	add := func(cell Cell) {
		if c, ok := halo[cell]; ok {
			ring[cell] = c
		}
	}
	for x := origin.X - 1; x <= origin.X+tile.Size; x++ {
		add(Cell{X: x, Y: origin.Y - 1})
		add(Cell{X: x, Y: origin.Y + tile.Size})
	}
	for y := origin.Y; y != origin.Y+tile.Size; y++ {
		add(Cell{X: origin.X - 1, Y: y})
		add(Cell{X: origin.X + tile.Size, Y: y})
	}
	return ring
}
