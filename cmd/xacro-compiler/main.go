// Package main provides the CLI entrypoint for xacro-compiler.
//
// xacro-compiler turns sensor calibration YAML into parameterized xacro
// files:
//   - Loads the main calibration plus one calibration per joint unit
//   - Classifies every transformation into a sensor kind
//   - Renders an aggregate sensors.xacro and one xacro per unit
package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/davecgh/go-spew/spew"

	"xacro-compiler/internal/calibration"
	"xacro-compiler/internal/compiler"
	"xacro-compiler/internal/diagnostic"
)

func usage() {
	fmt.Fprintf(os.Stderr, "usage: %s [flags] <template-dir> <calibration-dir> <output-dir> <project-name>\n",
		filepath.Base(os.Args[0]))
	flag.PrintDefaults()
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("xacro-compiler: ")

	dump := flag.Bool("dump", false, "print the parsed main calibration and exit")
	flag.Usage = usage
	flag.Parse()

	if flag.NArg() != 4 {
		usage()
		os.Exit(2)
	}

	cfg := compiler.Config{
		TemplateDir:    flag.Arg(0),
		CalibrationDir: flag.Arg(1),
		OutputDir:      flag.Arg(2),
		ProjectName:    flag.Arg(3),
	}

	if *dump {
		if err := dumpCalibration(cfg.CalibrationDir); err != nil {
			log.Fatal(err)
		}

		return
	}

	c := compiler.New(cfg)
	if err := c.Run(); err != nil {
		var notFound *calibration.NotFoundError
		if errors.As(err, &notFound) {
			log.Fatalf("%v (is the calibration directory complete?)", err)
		}

		log.Fatal(err)
	}

	printDiagnostics(c.Diagnostics())
}

// dumpCalibration parses the main calibration and prints the resulting model.
func dumpCalibration(calibrationDir string) error {
	root, err := calibration.LoadFile(filepath.Join(calibrationDir, compiler.MainCalibrationFile))
	if err != nil {
		return err
	}

	diags := &diagnostic.Diagnostics{}

	calib, err := calibration.New(root, diags)
	if err != nil {
		return err
	}

	spew.Dump(calib)
	printDiagnostics(diags)

	return nil
}

func printDiagnostics(diags *diagnostic.Diagnostics) {
	if diags == nil || diags.IsEmpty() {
		return
	}

	for _, d := range diags.All() {
		fmt.Fprintln(os.Stderr, d.String())
	}
}
