// Command pixelarray converts an icon into a C header holding its 32x32 RGBA
// pixels.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/edward-ap/iconheader/internal/config"
	"github.com/edward-ap/iconheader/internal/convert"
)

const usage = "usage: pixelarray [-var name] [-config file] [-trace] input.ico output.h"

func main() {
	os.Exit(run(os.Args[1:], os.Stderr))
}

func run(args []string, stderr io.Writer) int {
	fs := flag.NewFlagSet("pixelarray", flag.ContinueOnError)
	fs.SetOutput(stderr)
	varName := fs.String("var", "", "array identifier (default "+config.DefaultPixelVarName+")")
	cfgPath := fs.String("config", "", "optional JSON or TOML settings file")
	trace := fs.Bool("trace", false, "log every pipeline step")
	fs.Usage = func() { fmt.Fprintln(stderr, usage) }
	if err := fs.Parse(args); err != nil {
		return 1
	}
	if fs.NArg() != 2 {
		fs.Usage()
		return 1
	}
	convert.SetTraceLoggingEnabled(*trace)

	cfg, err := config.Load(*cfgPath, config.ModePixels)
	if err != nil {
		return exitErr(stderr, fmt.Errorf("load config: %w", err))
	}
	cfg.Override(*varName)
	if err := convert.New(cfg, nil).PixelArray(fs.Arg(0), fs.Arg(1)); err != nil {
		return exitErr(stderr, err)
	}
	return 0
}

func exitErr(w io.Writer, err error) int {
	fmt.Fprintln(w, err)
	return 1
}
