// Package main provides the CLI entrypoint for xacro-diff, a reviewer's
// summary of what changed between two generated xacro files.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"xacro-compiler/internal/xacrodiff"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("xacro-diff: ")

	originalPath := flag.String("original", "", "xacro file before the change")
	updatedPath := flag.String("new", "", "xacro file after the change")
	flag.Parse()

	if *originalPath == "" || *updatedPath == "" {
		flag.Usage()
		os.Exit(2)
	}

	analyzer, err := xacrodiff.NewAnalyzer(*originalPath, *updatedPath)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Print(analyzer.Report())
}
