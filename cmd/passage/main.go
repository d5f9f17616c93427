package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/passage-dev/passage/internal/errors"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

const banner = `
  ╔═╗┌─┐┌─┐┌─┐┌─┐┌─┐┌─┐
  ╠═╝├─┤└─┐└─┐├─┤│ ┬├┤
  ╩  ┴ ┴└─┘└─┘┴ ┴└─┘└─┘
`

func main() {
	rootCmd := &cobra.Command{
		Use:   "passage",
		Short: "Client-side navigation for single-page applications",
		Long: `Passage is a client-side navigation engine for single-page
applications written in Go.

It maps URL paths to content handlers, intercepts link activations,
and keeps the browser history in sync without full page loads.
The CLI provides project tooling:

  • Development server with live reload
  • History fallback so deep links always resolve
  • One-command asset deployment to S3`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(
		initCmd(),
		devCmd(),
		deployCmd(),
		versionCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		var perr *errors.PassageError
		if errors.As(err, &perr) {
			fmt.Fprintln(os.Stderr, perr.Format())
		} else {
			fmt.Fprintf(os.Stderr, "\033[31mError:\033[0m %s\n", err)
		}
		os.Exit(1)
	}
}

// printBanner prints the Passage ASCII art banner.
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
