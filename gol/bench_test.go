package gol

import (
	"fmt"
	"testing"
)

// Stepping only, without any frame output
func Benchmark_Step_256(b *testing.B) {
	grid := randomGrid(newRand(256), 256, 256, 0.35)
	tiles, err := partition(grid, 16)
	if err != nil {
		b.Fatal(err)
	}
	halo := buildHalo(grid, 16)
	for threads := 1; threads <= 16; threads *= 2 {
		b.Run(fmt.Sprintf("256x256-%d", threads), func(b *testing.B) {
			pool := newWorkerPool(threads, false)
			defer pool.Close()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if _, err := pool.Step(tiles, halo); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func Benchmark_Halo_512(b *testing.B) {
	grid := randomGrid(newRand(512), 512, 512, 0.35)
	for i := 0; i < b.N; i++ {
		buildHalo(grid, 16)
	}
}
