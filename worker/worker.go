package main

import (
	"flag"
	"log"
	"net"
	"net/http"
	"net/rpc"
	"sync"

	"colourlife/gol"
)

func main() {
	port := flag.Int("port", 2000, "Port to listen on")
	flag.Parse()

	control := newControl()

	// Register RPC services
	if err := rpc.RegisterName("Worker", &gol.TileServer{}); err != nil {
		log.Panic(err.Error())
	}
	if err := rpc.Register(control); err != nil {
		log.Panic(err.Error())
	}
	rpc.HandleHTTP()

	// Start RPC handling service
	listener, err := net.ListenTCP("tcp", &net.TCPAddr{Port: *port})
	if err != nil {
		log.Panic(err.Error())
	}
	go http.Serve(listener, nil)
	log.Printf("Worker node listening on %s", listener.Addr())

	control.flag.Wait()
	listener.Close()
}

// Control lets a client shut the worker node down
type Control struct {
	flag sync.WaitGroup
	once sync.Once
}

func newControl() *Control {
	control := &Control{}
	control.flag.Add(1)
	return control
}

func (control *Control) Kill(struct{}, *struct{}) error {
	log.Print("Kill")
	control.once.Do(control.flag.Done)
	return nil
}
