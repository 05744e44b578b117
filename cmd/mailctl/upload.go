package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

var uploadCmd = &cobra.Command{
	Use:   "upload <resume.pdf>",
	Short: "Store a resume and cache its text on the profile",
	Args:  cobra.ExactArgs(1),
	RunE:  runUpload,
}

func init() {
	rootCmd.AddCommand(uploadCmd)
}

func runUpload(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	f, err := os.Open(args[0])
	if err != nil {
		return fmt.Errorf("open resume: %w", err)
	}
	defer f.Close()

	p, err := a.Resumes.Upload(cmd.Context(), filepath.Base(args[0]), f)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(cmd.OutOrStdout(), "stored %s (%d characters of text)\n", p.ResumeFileName, len(p.ResumeContent))
	return err
}
