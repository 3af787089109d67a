package main

import (
	"embed"
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/cobra"

	"github.com/aaronzipp/explorers-mission/internal/cli"
)

//go:embed templates static
var assets embed.FS

var version = "dev"

func main() {
	templates, err := fs.Sub(assets, "templates")
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	static, err := fs.Sub(assets, "static")
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	rootCmd := &cobra.Command{
		Use:     "explorers",
		Short:   "Explorer's mission: a three-part language game for kids",
		Version: version,
		Long: `Explorer's mission walks a child through three short activities:
find objects for the backpack, sort belongings by owner, then share a picnic.

Play in a browser with "explorers serve" or right here with "explorers play".`,
	}

	rootCmd.AddCommand(cli.ServeCmd(cli.Assets{Templates: templates, Static: static}))
	rootCmd.AddCommand(cli.PlayCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
