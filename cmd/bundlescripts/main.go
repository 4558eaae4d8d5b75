// Command bundlescripts packs script files into a single header of byte
// arrays.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/edward-ap/iconheader/internal/config"
	"github.com/edward-ap/iconheader/internal/convert"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stderr))
}

func run(args []string, stderr io.Writer) int {
	fs := flag.NewFlagSet("bundlescripts", flag.ContinueOnError)
	fs.SetOutput(stderr)
	out := fs.String("o", "", "output header (default "+config.DefaultBundleOutput+")")
	manifest := fs.String("manifest", "", "optional TOML or JSON bundle manifest")
	trace := fs.Bool("trace", false, "log every bundled file")
	fs.Usage = func() {
		fmt.Fprintln(stderr, "usage: bundlescripts [-o out.h] [-manifest bundle.toml] [-trace] [script ...]")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return 1
	}
	convert.SetTraceLoggingEnabled(*trace)

	m, err := config.LoadManifest(*manifest)
	if err != nil {
		fmt.Fprintln(stderr, fmt.Errorf("load manifest: %w", err))
		return 1
	}
	if fs.NArg() > 0 {
		m.Files = fs.Args()
	}
	if *out != "" {
		m.Output = *out
	}
	if err := convert.Bundle(m, nil); err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	return 0
}
