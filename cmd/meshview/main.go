package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/smasonuk/meshview"
	"github.com/smasonuk/meshview/internal/viewconfig"
	"github.com/smasonuk/meshview/internal/viewer"
)

func main() {
	configPath := flag.String("config", "meshview.yaml", "path to the viewer config file")
	info := flag.Bool("info", false, "print mesh statistics and exit without opening a window")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [flags] model.obj\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}
	path := flag.Arg(0)

	if *info {
		printInfo(os.Stdout, path)
		return
	}

	cfg, err := viewconfig.Load(*configPath)
	if err != nil {
		log.Printf("Using default settings: %v", err)
	}

	log.Println("Opening viewer...")
	if err := viewer.New(cfg, path).Run(); err != nil {
		log.Fatalf("viewer: %v", err)
	}
}

// printInfo writes the vertex and face counts of the model at path, its
// bounds when it has any, and every topology problem Validate finds.
func printInfo(w io.Writer, path string) {
	m := meshview.Load(path)
	defer m.Release()

	b := m.Bounds()
	fmt.Fprintf(w, "%s\n", path)
	fmt.Fprintf(w, "  vertices: %d\n", m.VertexCount())
	fmt.Fprintf(w, "  faces:    %d\n", m.FaceCount())
	if !b.IsEmpty() {
		size := b.Size()
		fmt.Fprintf(w, "  min:      %.4f %.4f %.4f\n", b.Min[0], b.Min[1], b.Min[2])
		fmt.Fprintf(w, "  max:      %.4f %.4f %.4f\n", b.Max[0], b.Max[1], b.Max[2])
		fmt.Fprintf(w, "  size:     %.4f %.4f %.4f\n", size[0], size[1], size[2])
	}
	if err := m.Validate(); err != nil {
		fmt.Fprintf(w, "  problems:\n%v\n", err)
	}
}
