package gol

import (
	"fmt"
	"time"
)

// Event represents any progress report sent by Run
type Event interface {
	fmt.Stringer
	GetGeneration() int
}

// State represents a state of the simulation loop
type State uint8

const (
	Initialising State = iota
	Executing
	Stable    // No cell changed in the last generation
	Cancelled // Stopped by the caller
	Completed // Generation cap reached
)

func (state State) String() string {
	switch state {
	case Initialising:
		return "Initialising"
	case Executing:
		return "Executing"
	case Stable:
		return "Stable"
	case Cancelled:
		return "Cancelled"
	case Completed:
		return "Completed"
	default:
		return fmt.Sprintf("State(%d)", uint8(state))
	}
}

// StateChange is sent on every transition of the simulation loop
type StateChange struct {
	Generation int
	NewState   State
}

// GenerationComplete is sent after each generation is computed
type GenerationComplete struct {
	Generation int
	Changed    int // Cells whose colour changed
	Alive      int
}

// FrameOutputComplete is sent once a frame has been written
type FrameOutputComplete struct {
	Generation int
	Filename   string
}

// VideoOutputComplete is sent once the video has been exported
type VideoOutputComplete struct {
	Generation int
	Filename   string
}

// FinalGenerationComplete is sent when the loop reaches a terminal state
type FinalGenerationComplete struct {
	Generation int
	Alive      int
}

func (event StateChange) GetGeneration() int             { return event.Generation }
func (event GenerationComplete) GetGeneration() int      { return event.Generation }
func (event FrameOutputComplete) GetGeneration() int     { return event.Generation }
func (event VideoOutputComplete) GetGeneration() int     { return event.Generation }
func (event FinalGenerationComplete) GetGeneration() int { return event.Generation }

func (event StateChange) String() string {
	return fmt.Sprintf("Generation %d: %v", event.Generation, event.NewState)
}

func (event GenerationComplete) String() string {
	return fmt.Sprintf("Generation %d complete: %d changed, %d alive", event.Generation, event.Changed, event.Alive)
}

func (event FrameOutputComplete) String() string {
	return fmt.Sprintf("Frame %s written", event.Filename)
}

func (event VideoOutputComplete) String() string {
	return fmt.Sprintf("Video %s written", event.Filename)
}

func (event FinalGenerationComplete) String() string {
	return fmt.Sprintf("Final generation %d: %d alive", event.Generation, event.Alive)
}

// Summary reports the outcome of a run
type Summary struct {
	State       State
	Generations int // Generations computed by this run
	Generation  int // Generation index reached, including resumed ones
	Elapsed     time.Duration
	Video       string
}

func (summary Summary) String() string {
	if summary.Generations == 0 {
		return fmt.Sprintf("%v after %v without new generations. In total, %d generations have been calculated.",
			summary.State, summary.Elapsed, summary.Generation)
	}
	return fmt.Sprintf("Took %v to simulate %d generations (%v/gen). In total, %d generations have been calculated.",
		summary.Elapsed, summary.Generations, summary.Elapsed/time.Duration(summary.Generations), summary.Generation)
}
