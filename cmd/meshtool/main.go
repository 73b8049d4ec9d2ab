// meshtool is a CLI utility for generating, inspecting and rendering meshes.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"runtime"

	"github.com/Faultbox/launchpad/internal/engine/debug"
	"github.com/Faultbox/launchpad/internal/engine/raster"
	"github.com/Faultbox/launchpad/internal/logger"
	"github.com/Faultbox/launchpad/pkg/formats"
	"github.com/Faultbox/launchpad/pkg/mesh"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	var err error
	switch command {
	case "info":
		err = cmdInfo(args)
	case "gen", "generate":
		err = cmdGen(args)
	case "convert":
		err = cmdConvert(args)
	case "snap", "snapshot":
		err = cmdSnap(args)
	case "batch":
		err = cmdBatch(args)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`meshtool - procedural mesh utility

Usage:
  meshtool <command> [options]

Commands:
  info <file|primitive>               Show counts, bounds and validation
  gen [options] <primitive>           Generate a primitive into a .mesh file
  convert <in.obj> <out.mesh>         Convert an OBJ model to the binary format
  snap [options] <file|primitive>     Software render to .webp or .png
  batch [options] <dir>               Snapshot every mesh in a directory

Primitives:
  cone, cube, cylinder, ship

Examples:
  meshtool gen -n 32 -color 1,0.5,0 -o cone.mesh cone
  meshtool info cone.mesh
  meshtool snap -size 256 -o ship.webp ship
  meshtool batch -j 8 -o snaps ./models`)
}

var errUsage = errors.New("invalid arguments")

// genFlags registers the generator options shared by gen, info and snap.
func genFlags(fs *flag.FlagSet) func() (mesh.Options, error) {
	n := fs.Int("n", mesh.DefaultSubdivisions, "Subdivisions")
	capped := fs.Bool("capped", true, "Close open ends")
	color := fs.String("color", "1,1,1", "Vertex color as r,g,b")
	return func() (mesh.Options, error) {
		c, err := parseColor(*color)
		if err != nil {
			return mesh.Options{}, err
		}
		o := mesh.DefaultOptions()
		o.Subdivisions = *n
		o.Capped = *capped
		o.Color = c
		return o, o.Check()
	}
}

func cmdInfo(args []string) error {
	fs := flag.NewFlagSet("info", flag.ExitOnError)
	opts := genFlags(fs)
	fs.Parse(args)

	if fs.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Usage: meshtool info [options] <file|primitive>")
		return errUsage
	}
	o, err := opts()
	if err != nil {
		return err
	}
	d, err := loadSource(fs.Arg(0), o)
	if err != nil {
		return err
	}
	printInfo(os.Stdout, fs.Arg(0), d)
	return nil
}

func cmdGen(args []string) error {
	fs := flag.NewFlagSet("gen", flag.ExitOnError)
	opts := genFlags(fs)
	out := fs.String("o", "", "Output file (default <primitive>.mesh)")
	fs.Parse(args)

	if fs.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Usage: meshtool gen [options] <cone|cube|cylinder|ship>")
		return errUsage
	}
	o, err := opts()
	if err != nil {
		return err
	}
	name := fs.Arg(0)
	d, err := generate(name, o)
	if err != nil {
		return err
	}

	path := *out
	if path == "" {
		path = name + formats.ExtMeshBin
	}
	if err := formats.SaveMeshBinFile(path, d); err != nil {
		return err
	}
	fmt.Printf("Wrote: %s (%d vertices, %d triangles)\n", path, d.Len(), d.TriangleCount())
	return nil
}

func cmdConvert(args []string) error {
	if len(args) < 2 {
		fmt.Fprintln(os.Stderr, "Usage: meshtool convert <in.obj> <out.mesh>")
		return errUsage
	}
	d, err := formats.LoadMesh(args[0])
	if err != nil {
		return err
	}
	if err := formats.SaveMeshBinFile(args[1], d); err != nil {
		return err
	}
	fmt.Printf("Converted: %s -> %s (%d vertices)\n", args[0], args[1], d.Len())
	return nil
}

func cmdSnap(args []string) error {
	fs := flag.NewFlagSet("snap", flag.ExitOnError)
	opts := genFlags(fs)
	view := viewFlags(fs)
	out := fs.String("o", "", "Output image (.webp or .png)")
	fs.Parse(args)

	if fs.NArg() < 1 || *out == "" {
		fmt.Fprintln(os.Stderr, "Usage: meshtool snap [options] -o <out.webp|out.png> <file|primitive>")
		return errUsage
	}
	o, err := opts()
	if err != nil {
		return err
	}
	d, err := loadSource(fs.Arg(0), o)
	if err != nil {
		return err
	}

	if err := debug.WriteImage(*out, raster.Snapshot(d, view())); err != nil {
		return err
	}
	fmt.Printf("Rendered: %s\n", *out)
	return nil
}

func cmdBatch(args []string) error {
	fs := flag.NewFlagSet("batch", flag.ExitOnError)
	view := viewFlags(fs)
	out := fs.String("o", "snapshots", "Output directory")
	format := fs.String("format", "webp", "Image format (webp or png)")
	jobs := fs.Int("j", runtime.NumCPU(), "Parallel jobs")
	verbose := fs.Bool("v", false, "Log each rendered file")
	fs.Parse(args)

	if fs.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Usage: meshtool batch [options] <dir>")
		return errUsage
	}

	level := "warn"
	if *verbose {
		level = "debug"
	}
	if err := logger.Init(level, ""); err != nil {
		return err
	}
	defer logger.Sync()

	b := Batch{
		OutputDir: *out,
		Format:    *format,
		View:      view(),
		Jobs:      *jobs,
		Log:       logger.Named("batch"),
	}
	written, err := b.Run(context.Background(), fs.Arg(0))
	if err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "\nRendered %d files\n", len(written))
	return nil
}

func viewFlags(fs *flag.FlagSet) func() raster.View {
	size := fs.Int("size", 512, "Image size in pixels")
	ss := fs.Int("ss", 2, "Supersample factor")
	yaw := fs.Float64("yaw", 35, "Camera yaw in degrees")
	pitch := fs.Float64("pitch", 25, "Camera pitch in degrees")
	return func() raster.View {
		v := raster.DefaultView(*size, *ss)
		v.Yaw = degToRad(*yaw)
		v.Pitch = degToRad(*pitch)
		return v
	}
}
