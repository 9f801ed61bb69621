package main

import (
	stderrors "errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/domweave/domweave/internal/errors"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

const banner = `
  ╔╦╗┌─┐┌┬┐┬ ┬┌─┐┌─┐┬  ┬┌─┐
   ║║│ ││││││││├┤ ├─┤└┐┌┘├┤
  ═╩╝└─┘┴ ┴└┴┘└─┘┴ ┴ └┘ └─┘
`

func main() {
	rootCmd := &cobra.Command{
		Use:   "domweave",
		Short: "Typed HTML bindings for Go, generated from a schema",
		Long: `domweave turns a declarative tag/attribute/event schema into
typed Go constructors for building DOM trees.

Commands cover the full binding lifecycle:

  • Generate constructor sources from the schema table
  • Validate a schema before generating
  • Preview the schema reference with live reload
  • Render and publish the reference docs`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(
		genCmd(),
		validateCmd(),
		previewCmd(),
		publishCmd(),
		versionCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		var we *errors.WeaveError
		if stderrors.As(err, &we) {
			fmt.Fprintln(os.Stderr, we.Format())
		} else {
			fmt.Fprintf(os.Stderr, "\033[31mError:\033[0m %s\n", err)
		}
		os.Exit(1)
	}
}

// printBanner prints the domweave ASCII art banner.
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

// errorMsg prints an error message.
func errorMsg(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "\033[31m✗\033[0m %s\n", fmt.Sprintf(format, args...))
}
