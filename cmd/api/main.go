// Package main is the employee portal command line: the HTTP server and a few
// maintenance commands.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:           "employee-portal",
	Short:         "Employee management portal",
	Long:          "Employee portal serves the employee list, add and edit forms, and a JSON API over an in-memory employee store.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
