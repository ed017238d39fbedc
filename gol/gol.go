package gol

import (
	"context"
	"fmt"
	"sync"
)

// Params provides the details of how to run the simulation and where frames go.
// They are fixed for the whole run.
type Params struct {
	Source    string   // Image seeding the grid on a fresh start
	OutDir    string   // Frame directory, also the resume source
	Video     string   // Output video path
	TileSize  int      // Side length of a tile, must divide both grid dimensions
	Threads   int      // Size of the local worker pool
	FrameRate int      // Video frames per second
	Fade      bool     // Darken stable live cells by one step per generation
	Scale     int      // Display scale of saved frames
	Pad       bool     // Pad the source image with dead cells up to a multiple of TileSize
	Turns     int      // Maximum generations for this run, 0 for no limit
	Workers   []string // Remote worker node addresses, local pool when empty
}

func (p Params) validate() error {
	for _, field := range []struct{ name, value string }{
		{"source", p.Source},
		{"output directory", p.OutDir},
		{"video", p.Video},
	} {
		if field.value == "" {
			return &ConfigurationError{Field: field.name, Reason: "path is empty"}
		}
	}
	for _, field := range []struct {
		name  string
		value int
	}{
		{"tile size", p.TileSize},
		{"threads", p.Threads},
		{"frame rate", p.FrameRate},
		{"scale", p.Scale},
	} {
		if field.value <= 0 {
			return &ConfigurationError{Field: field.name, Reason: fmt.Sprintf("%d is not positive", field.value)}
		}
	}
	if p.Turns < 0 {
		return &ConfigurationError{Field: "turns", Reason: fmt.Sprintf("%d is negative", p.Turns)}
	}
	return nil
}

// Run simulates generations until the grid is stable, ctx is cancelled or the turn cap is reached,
// then exports the video. Cancellation is not an error.
// events may be nil, otherwise it is closed when Run returns.
func Run(ctx context.Context, p Params, events chan<- Event) (Summary, error) {
	if events != nil {
		defer close(events)
	}
	if err := p.validate(); err != nil {
		return Summary{}, err
	}

	var stepper Stepper
	if len(p.Workers) != 0 {
		remote, err := dialWorkers(p.Workers, p.Fade)
		if err != nil {
			return Summary{}, err
		}
		stepper = remote
	} else {
		stepper = newWorkerPool(p.Threads, p.Fade)
	}
	defer stepper.Close()

	io := &ioState{
		params: p,
		cond:   sync.NewCond(new(sync.Mutex)),
	}
	go startIo(io)

	return distributor(ctx, p, io, stepper, distributorChannels{events: events})
}
