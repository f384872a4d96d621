package main

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "resumectl",
	Short: "Render country-formatted resumes from the command line",
	Long: `resumectl renders a resume request file into country-formatted HTML
or PDF without running the HTTP server. The same rule table and templates
the server uses drive the output.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
