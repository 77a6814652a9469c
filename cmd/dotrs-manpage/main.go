package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra/doc"

	"github.com/dotrs/dotrs/cmd/dotrs"
	"github.com/dotrs/dotrs/internal/version"
)

func main() {
	rootCmd := dotrs.NewRootCmd()

	header := &doc.GenManHeader{
		Title:   "DOTRS",
		Section: "1",
		Source:  "dotrs " + version.Version,
		Manual:  "dotrs manual",
	}

	if err := doc.GenMan(rootCmd, header, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error generating man page: %v\n", err)
		os.Exit(1)
	}
}
