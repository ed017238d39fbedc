package gol

import (
	"context"
	"errors"
	"time"
)

type distributorChannels struct {
	events chan<- Event
}

func (c distributorChannels) send(event Event) {
	if c.events != nil {
		c.events <- event
	}
}

// Cancellation is only observed between generations
func checkCancelled(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ErrInterrupted
	default:
		return nil
	}
}

// distributor drives generations and interacts with the io goroutine.
func distributor(ctx context.Context, p Params, io *ioState, stepper Stepper, c distributorChannels) (Summary, error) {

	start := time.Now()
	defer io.quit()

	// Resume from the latest frame, or read the source image
	operation := &ioOperation{command: ioResume}
	io.sendIoRequest(operation)
	io.waitIoRequest()
	if operation.err != nil {
		return Summary{}, operation.err
	}
	resumed := operation.found
	if !resumed {
		operation = &ioOperation{command: ioInput}
		io.sendIoRequest(operation)
		io.waitIoRequest()
		if operation.err != nil {
			return Summary{}, operation.err
		}
	}
	grid := operation.grid
	generation := operation.generation

	// Reject tile sizes not dividing the grid before doing any work
	if _, err := partition(grid, p.TileSize); err != nil {
		return Summary{}, err
	}

	if !resumed {
		operation = &ioOperation{command: ioOutput, generation: generation, grid: grid}
		io.sendIoRequest(operation)
		io.waitIoRequest()
		if operation.err != nil {
			return Summary{}, operation.err
		}
		c.send(FrameOutputComplete{generation, operation.filename})
	}

	summary := Summary{Video: p.Video}
	first := generation
	halo := buildHalo(grid, p.TileSize)

	// Frame writes overlap the next generation, a failed write aborts the run
	var pending *ioOperation
	flush := func() error {
		if pending == nil {
			return nil
		}
		io.waitIoRequest()
		written := pending
		pending = nil
		if written.err != nil {
			return written.err
		}
		c.send(FrameOutputComplete{written.generation, written.filename})
		return nil
	}

	state := Executing
	c.send(StateChange{generation, state})
	if grid.alive() == 0 {
		state = Stable
	}

	for state == Executing {
		if err := checkCancelled(ctx); errors.Is(err, ErrInterrupted) {
			state = Cancelled
			break
		}
		if p.Turns != 0 && generation-first == p.Turns {
			state = Completed
			break
		}

		tiles, err := partition(grid, p.TileSize)
		if err == nil {
			tiles, err = stepper.Step(tiles, halo)
		}
		if err != nil {
			return summary, errors.Join(err, flush())
		}
		next := combine(tiles)

		changed := countChanged(grid, next)
		if changed == 0 {
			state = Stable
			break
		}

		if err := flush(); err != nil {
			return summary, err
		}
		generation++
		pending = &ioOperation{command: ioOutput, generation: generation, grid: next}
		io.sendIoRequest(pending)

		grid = next
		halo = buildHalo(grid, p.TileSize)
		c.send(GenerationComplete{generation, changed, grid.alive()})
	}
	if err := flush(); err != nil {
		return summary, err
	}

	summary.State = state
	summary.Generation = generation
	summary.Generations = generation - first
	c.send(StateChange{generation, state})
	c.send(FinalGenerationComplete{generation, grid.alive()})

	// Export whatever frames exist so far
	operation = &ioOperation{command: ioExport}
	io.sendIoRequest(operation)
	io.waitIoRequest()
	if operation.err != nil {
		return summary, operation.err
	}
	c.send(VideoOutputComplete{generation, operation.filename})

	summary.Elapsed = time.Since(start)
	return summary, nil
}
