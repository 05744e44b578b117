// Package main implements mailctl, a command line front end to the job
// application mailer.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:           "mailctl",
	Short:         "Draft and send job application emails",
	Long:          "mailctl extracts resume text, drafts application emails with Gemini and sends them with the resume attached, using the same profile as the HTTP API.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func main() {
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
