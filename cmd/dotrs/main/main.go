package main

import (
	"context"
	"os"

	"github.com/dotrs/dotrs/cmd/dotrs"
	"github.com/dotrs/dotrs/pkg/ui"
)

func main() {
	rootCmd := dotrs.NewRootCmd()
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		ui.NewPrinter(ui.FormatAuto, os.Stderr).Error(err)
		os.Exit(1)
	}
}
