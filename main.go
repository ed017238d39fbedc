package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime"
	"strings"
	"syscall"

	"colourlife/gol"
)

func main() {
	var p gol.Params
	flag.StringVar(&p.Source, "source", "", "Image to seed the grid from")
	flag.StringVar(&p.OutDir, "out", "frames", "Directory for frames, resumed from if it already has some")
	flag.StringVar(&p.Video, "video", "out.avi", "Path of the exported video")
	flag.IntVar(&p.TileSize, "tile", 8, "Side length of a tile, must divide the grid size")
	flag.IntVar(&p.Threads, "threads", runtime.NumCPU(), "Number of worker goroutines")
	flag.IntVar(&p.FrameRate, "fps", 10, "Frames per second of the video")
	flag.BoolVar(&p.Fade, "fade", false, "Slowly darken stable live cells")
	flag.IntVar(&p.Scale, "scale", 16, "Display scale of saved frames")
	flag.BoolVar(&p.Pad, "pad", false, "Pad the source with dead cells up to a multiple of the tile size")
	flag.IntVar(&p.Turns, "turns", 0, "Stop after this many generations, 0 for no limit")
	workers := flag.String("workers", "", "Comma separated worker node addresses, empty to step tiles locally")
	flag.Parse()

	if *workers != "" {
		p.Workers = strings.Split(*workers, ",")
	}

	// Interrupting stops after the current generation and still exports the video
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	events := make(chan gol.Event, 16)
	done := make(chan struct{})
	go func() {
		for event := range events {
			log.Print(event)
		}
		close(done)
	}()

	summary, err := gol.Run(ctx, p, events)
	<-done
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(summary)
}
