package gol

import (
	"fmt"
	"log"
	"net/rpc"
)

// TileServer is the RPC service run by worker nodes, registered as "Worker"
type TileServer struct{}

// Step computes the next generation of one tile sent by the broker
func (server *TileServer) Step(args StepArgs, reply *StepReply) error {
	tile, err := decompressTile(args.Row, args.Col, args.Size, args.Pixels)
	if err != nil {
		return err
	}
	reply.Pixels = compressTile(StepTile(tile, args.Halo, args.Fade))
	return nil
}

// Stepper dispatching tiles to remote worker nodes round-robin
type remoteStepper struct {
	clients []*rpc.Client
	fade    bool
}

// Connect to every worker node, all of them must be reachable
func dialWorkers(addrs []string, fade bool) (*remoteStepper, error) {
	remote := &remoteStepper{fade: fade}
	for _, addr := range addrs {
		client, err := rpc.DialHTTP("tcp", addr)
		if err != nil {
			remote.Close()
			return nil, fmt.Errorf("dial worker %s: %w", addr, err)
		}
		log.Printf("Worker node %s connected", addr)
		remote.clients = append(remote.clients, client)
	}
	return remote, nil
}

// Step sends each tile with its halo ring and collects every reply
func (remote *remoteStepper) Step(tiles [][]Tile, halo Halo) ([][]Tile, error) {
	count := 0
	result := make([][]Tile, len(tiles))
	for row := range tiles {
		result[row] = make([]Tile, len(tiles[row]))
		count += len(tiles[row])
	}

	// Channel for asynchronous calls
	call_chan := make(chan *rpc.Call, count)
	index := 0
	for row := range tiles {
		for col := range tiles[row] {
			tile := tiles[row][col]
			args := StepArgs{
				Row:    tile.Row,
				Col:    tile.Col,
				Size:   tile.Size,
				Pixels: compressTile(tile),
				Halo:   halo.around(tile),
				Fade:   remote.fade,
			}
			remote.clients[index%len(remote.clients)].Go("Worker.Step", args, &StepReply{}, call_chan)
			index++
		}
	}

	// Check if all RPC calls succeeded
	var failed error
	for i := 0; i != count; i++ {
		call := <-call_chan
		if call.Error != nil {
			log.Print(call.Error.Error())
			if failed == nil {
				failed = call.Error
			}
			continue
		}
		args := call.Args.(StepArgs)
		tile, err := decompressTile(args.Row, args.Col, args.Size, call.Reply.(*StepReply).Pixels)
		if err != nil {
			if failed == nil {
				failed = err
			}
			continue
		}
		result[tile.Row][tile.Col] = tile
	}
	if failed != nil {
		return nil, fmt.Errorf("remote step: %w", failed)
	}
	return result, nil
}

// Close disconnects from all worker nodes
func (remote *remoteStepper) Close() error {
	var first error
	for _, client := range remote.clients {
		if err := client.Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}
