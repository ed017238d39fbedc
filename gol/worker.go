package gol

import "sync"

// Stepper computes the next generation of every tile of a generation
// Step returns only once all tiles are done, which is the generation barrier
type Stepper interface {
	Step(tiles [][]Tile, halo Halo) ([][]Tile, error)
	Close() error
}

// StepTile computes the next generation of a single tile
// Neighbours outside the tile are read from halo, those absent from halo are off-grid
// The input tile is never modified
func StepTile(tile Tile, halo Halo, fade bool) Tile {
	size := tile.Size
	if len(tile.Pixels) != size {
		panic("malformed tile")
	}
	origin := tile.Origin()
	next := Tile{Row: tile.Row, Col: tile.Col, Size: size, Pixels: make([][]Color, size)}
	pixel_data := make([]Color, size*size)
	var buffer [8]Color
	for y := 0; y != size; y++ {
		next.Pixels[y] = pixel_data[y*size : (y+1)*size : (y+1)*size]
		for x := 0; x != size; x++ {
			neighbours := buffer[:0]
			for dy := -1; dy <= 1; dy++ {
				for dx := -1; dx <= 1; dx++ {
					if dx == 0 && dy == 0 {
						continue
					}
					nx, ny := x+dx, y+dy
					if 0 <= nx && nx < size && 0 <= ny && ny < size {
						neighbours = append(neighbours, tile.Pixels[ny][nx])
					} else if c, ok := halo[Cell{X: origin.X + nx, Y: origin.Y + ny}]; ok {
						neighbours = append(neighbours, c)
					}
				}
			}
			next.Pixels[y][x] = nextColour(tile.Pixels[y][x], neighbours, fade)
		}
	}
	return next
}

type tileJob struct {
	tile Tile
	halo Halo
}

// Fixed set of goroutines stepping tiles, created once for the whole run
type workerPool struct {
	fade        bool
	job_chan    chan tileJob
	result_chan chan Tile
	wg          sync.WaitGroup
}

func newWorkerPool(threads int, fade bool) *workerPool {
	pool := &workerPool{
		fade:        fade,
		job_chan:    make(chan tileJob),
		result_chan: make(chan Tile),
	}
	pool.wg.Add(threads)
	for i := 0; i != threads; i++ {
		go pool.worker()
	}
	return pool
}

func (pool *workerPool) worker() {
	defer pool.wg.Done()
	for job := range pool.job_chan {
		pool.result_chan <- StepTile(job.tile, job.halo, pool.fade)
	}
}

// Step dispatches every tile to the pool and waits for all results
func (pool *workerPool) Step(tiles [][]Tile, halo Halo) ([][]Tile, error) {
	count := 0
	result := make([][]Tile, len(tiles))
	for row := range tiles {
		result[row] = make([]Tile, len(tiles[row]))
		count += len(tiles[row])
	}
	// Feed from another goroutine so workers never block on an unread result
	go func() {
		for row := range tiles {
			for col := range tiles[row] {
				pool.job_chan <- tileJob{tile: tiles[row][col], halo: halo}
			}
		}
	}()
	for i := 0; i != count; i++ {
		tile := <-pool.result_chan
		result[tile.Row][tile.Col] = tile
	}
	return result, nil
}

// Close stops all pool goroutines
func (pool *workerPool) Close() error {
	close(pool.job_chan)
	pool.wg.Wait()
	return nil
}
