package main

import (
	"fmt"
	"os"

	"github.com/arthur-debert/gildedrose/internal/cli"
	"github.com/arthur-debert/gildedrose/pkg/report/styles"
)

func main() {
	rootCmd := cli.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		errorStyle := styles.GetStyle("Expired")
		fmt.Fprintln(os.Stderr, errorStyle.Render(fmt.Sprintf("Error: %v", err)))
		os.Exit(1)
	}
}
