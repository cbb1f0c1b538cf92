package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	pageserrors "github.com/davestewart/wxt-module-pages/internal/errors"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

const banner = `
  ╔═╗┌─┐┌─┐┌─┐┌─┐
  ╠═╝├─┤│ ┬├┤ └─┐
  ╩  ┴ ┴└─┘└─┘└─┘
`

func main() {
	rootCmd := &cobra.Command{
		Use:   "pagegen",
		Short: "Generate router configuration from pages directories",
		Long: `Pagegen turns directory trees of page components into nested
route configurations for client-side routers.

Conventions:

  • index files map to their directory's path
  • [id] segments become :id route parameters
  • [...slug] segments become catch-all parameters
  • (group)/ directories organize files without affecting paths
  • @scope/ directories route their pages to a separate output
  • layout and parent files wrap or nest their siblings`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(
		genCmd(),
		routesCmd(),
		devCmd(),
		versionCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		pageserrors.PrintError(err)
		os.Exit(1)
	}
}

// printBanner prints the ASCII art banner.
func printBanner() {
	fmt.Print(banner)
}

// success prints a success message.
func success(format string, args ...any) {
	fmt.Printf("\033[32m✓\033[0m %s\n", fmt.Sprintf(format, args...))
}

// info prints an info message.
func info(format string, args ...any) {
	fmt.Printf("  %s\n", fmt.Sprintf(format, args...))
}

// warn prints a warning message.
func warn(format string, args ...any) {
	fmt.Printf("\033[33m⚠\033[0m %s\n", fmt.Sprintf(format, args...))
}
