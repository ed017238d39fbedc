package gol

import (
	"fmt"
	"math/rand"
	"testing"
)

// Every in-grid neighbour outside a tile must be in the halo, and nothing else may be
func TestHaloCoversEveryOutsideNeighbour(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	grid := randomGrid(rng, 24, 16, 0.6)
	for _, size := range []int{1, 2, 4, 8} {
		t.Run(fmt.Sprint(size), func(t *testing.T) {
			halo := buildHalo(grid, size)
			needed := make(map[Cell]bool)
			for y := 0; y != grid.Height; y++ {
				for x := 0; x != grid.Width; x++ {
					for dy := -1; dy <= 1; dy++ {
						for dx := -1; dx <= 1; dx++ {
							nx, ny := x+dx, y+dy
							if nx < 0 || nx >= grid.Width || ny < 0 || ny >= grid.Height {
								continue
							}
							if nx/size != x/size || ny/size != y/size {
								needed[Cell{X: nx, Y: ny}] = true
							}
						}
					}
				}
			}
			for cell := range needed {
				c, ok := halo[cell]
				if !ok {
					t.Fatalf("neighbour %v missing from halo", cell)
				}
				if c != grid.Pixels[cell.Y][cell.X] {
					t.Fatalf("halo %v = %v, want %v", cell, c, grid.Pixels[cell.Y][cell.X])
				}
			}
			if len(halo) != len(needed) {
				t.Fatalf("halo has %d cells, %d are needed", len(halo), len(needed))
			}
		})
	}
}

func TestHaloSingleTileIsEmpty(t *testing.T) {
	grid := randomGrid(rand.New(rand.NewSource(4)), 8, 8, 1)
	if halo := buildHalo(grid, 8); len(halo) != 0 {
		t.Fatalf("got %d halo cells", len(halo))
	}
}

func TestHaloReflectsNewGrid(t *testing.T) {
	grid := gridWith(8, 8, map[Cell]Color{{X: 3, Y: 2}: {R: 7}})
	halo := buildHalo(grid, 4)
	if halo[Cell{X: 3, Y: 2}] != (Color{R: 7}) {
		t.Fatal("halo missing border colour")
	}
	next := stepTiled(t, grid, 4, false)
	halo = buildHalo(next, 4)
	if halo[Cell{X: 3, Y: 2}] != Dead {
		t.Fatal("halo kept a stale colour")
	}
}

func TestHaloAround(t *testing.T) {
	grid := randomGrid(rand.New(rand.NewSource(5)), 6, 6, 1)
	halo := buildHalo(grid, 2)
	tiles, err := partition(grid, 2)
	if err != nil {
		t.Fatal(err)
	}
	tests := []struct {
		row, col int
		want     int
	}{
		{1, 1, 12}, // Full ring
		{0, 0, 5},  // Grid corner
		{0, 1, 8},  // Grid edge
	}
	for _, test := range tests {
		ring := halo.around(tiles[test.row][test.col])
		if len(ring) != test.want {
			t.Errorf("tile (%d,%d): ring has %d cells, want %d", test.row, test.col, len(ring), test.want)
		}
		// Stepping with only the ring matches stepping with the whole halo
		tile := tiles[test.row][test.col]
		got := StepTile(tile, ring, false)
		want := StepTile(tile, halo, false)
		for y := range want.Pixels {
			for x := range want.Pixels[y] {
				if got.Pixels[y][x] != want.Pixels[y][x] {
					t.Fatalf("tile (%d,%d) cell (%d,%d) differs", test.row, test.col, x, y)
				}
			}
		}
	}
}
