package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/justsurfingit/job-mailer/internal/models"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Draft an application email for a job post",
	RunE:  runGenerate,
}

var (
	generateJobFile      string
	generateInstructions string
	generateTemplate     string
	generateTo           string
)

func init() {
	generateCmd.Flags().StringVarP(&generateJobFile, "job-file", "j", "", "Path to a file holding the job post, text or HTML (required)")
	generateCmd.Flags().StringVarP(&generateInstructions, "instructions", "i", "", "Extra instructions for the draft")
	generateCmd.Flags().StringVarP(&generateTemplate, "template", "t", string(models.StyleStandard), "Style: standard, creative, technical or executive")
	generateCmd.Flags().StringVar(&generateTo, "to", "", "Recipient address, overrides the one found in the job post")

	if err := generateCmd.MarkFlagRequired("job-file"); err != nil {
		panic(fmt.Sprintf("failed to mark job-file flag as required: %v", err))
	}

	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, _ []string) error {
	jobPost, err := os.ReadFile(generateJobFile)
	if err != nil {
		return fmt.Errorf("failed to read job post %s: %w", generateJobFile, err)
	}

	a, err := newApp(cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	email, err := a.Applications.GenerateEmail(cmd.Context(), models.GenerationInput{
		JobPost:      string(jobPost),
		Instructions: generateInstructions,
		Style:        models.ParseStyle(generateTemplate),
		Recipient:    generateTo,
	})
	if err != nil {
		return err
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(email)
}
