// Definitions of types that are shared between the distributor, the worker pool and remote workers

package gol

// Cell is a global grid coordinate
type Cell struct {
	X, Y int
}

// Tile is a copy of a square region of the grid
type Tile struct {
	Row    int       // Tile row (Y / Size)
	Col    int       // Tile column (X / Size)
	Size   int       // Side length of the tile
	Pixels [][]Color // Size x Size, indexed [y][x]
}

// Origin returns the global coordinate of the top-left cell of the tile
func (tile Tile) Origin() Cell {
	return Cell{X: tile.Col * tile.Size, Y: tile.Row * tile.Size}
}

// StepArgs is the request sent to a remote worker for one tile
type StepArgs struct {
	Row    int
	Col    int
	Size   int
	Pixels []byte // Compressed tile pixels
	Halo   Halo   // Ring of border cells surrounding the tile
	Fade   bool
}

// StepReply carries the compressed next generation of a tile
type StepReply struct {
	Pixels []byte
}
