package gol

// Color is the RGB value of a single cell. The zero value is a dead cell.
type Color struct {
	R, G, B uint8
}

// Dead is the colour of a dead cell
var Dead = Color{}

func (c Color) alive() bool {
	return c != Dead
}

// Compute next colour of a cell from its colour and its in-grid neighbours
// Neighbours outside the grid are simply not present in the slice
func nextColour(centre Color, neighbours []Color, fade bool) Color {
	live := 0
	var r, g, b int
	for _, neighbour := range neighbours {
		if neighbour.alive() {
			live++
		}
		// Dead neighbours add zero to the sums
		r += int(neighbour.R)
		g += int(neighbour.G)
		b += int(neighbour.B)
	}
	if live == 0 {
		return Dead
	}
	average := Color{R: uint8(r / live), G: uint8(g / live), B: uint8(b / live)}
	if !centre.alive() {
		if live == 3 {
			// Birth
			return average
		}
		return Dead
	}
	switch live {
	case 2:
		fallthrough
	case 3:
		if fade {
			return Color{R: fadeChannel(centre.R), G: fadeChannel(centre.G), B: fadeChannel(centre.B)}
		}
		return centre
	default:
		// Under or overpopulation
		return Dead
	}
}

func fadeChannel(value uint8) uint8 {
	if value == 0 {
		return 0
	}
	return value - 1
}
