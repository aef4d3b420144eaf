package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/asharish/portfolio-api/internal/build"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "portfolio-api",
		Short: "Backend for the portfolio website",
		Long:  "Content store, admin surface, and REST API behind the portfolio site.",
	}

	rootCmd.AddCommand(newServeCmd())
	rootCmd.AddCommand(newMigrateCmd())
	rootCmd.AddCommand(newSeedCmd())
	rootCmd.AddCommand(newVersionCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("portfolio-api %s (commit %s, branch %s)\n", build.Version, build.Commit, build.Branch)
		},
	}
}
