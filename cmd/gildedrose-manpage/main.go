package main

import (
	"os"

	"github.com/arthur-debert/gildedrose/internal/cli"
	"github.com/arthur-debert/gildedrose/internal/version"
	"github.com/arthur-debert/gildedrose/pkg/logging"
	"github.com/spf13/cobra/doc"
)

func main() {
	rootCmd := cli.NewRootCmd()

	header := &doc.GenManHeader{
		Title:   "GILDEDROSE",
		Section: "1",
		Source:  "gildedrose " + version.Version,
		Manual:  "gildedrose manual",
	}

	logging.Must(doc.GenMan(rootCmd, header, os.Stdout), "Error generating man page")
}
