package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/justsurfingit/job-mailer/internal/models"
)

var sendCmd = &cobra.Command{
	Use:   "send",
	Short: "Send a reviewed draft with the stored resume attached",
	Long:  "Sends the draft in --draft (the JSON printed by generate) or the one built from --to, --subject and --body-file.",
	RunE:  runSend,
}

var (
	sendDraft    string
	sendTo       string
	sendSubject  string
	sendBodyFile string
)

func init() {
	sendCmd.Flags().StringVarP(&sendDraft, "draft", "d", "", "Path to a draft JSON file")
	sendCmd.Flags().StringVar(&sendTo, "to", "", "Recipient address")
	sendCmd.Flags().StringVarP(&sendSubject, "subject", "s", "", "Subject line")
	sendCmd.Flags().StringVarP(&sendBodyFile, "body-file", "b", "", "Path to a file holding the body")

	sendCmd.MarkFlagsMutuallyExclusive("draft", "body-file")

	rootCmd.AddCommand(sendCmd)
}

func loadDraft() (*models.GeneratedEmail, error) {
	email := &models.GeneratedEmail{}
	if sendDraft != "" {
		data, err := os.ReadFile(sendDraft)
		if err != nil {
			return nil, fmt.Errorf("failed to read draft %s: %w", sendDraft, err)
		}
		if err := json.Unmarshal(data, email); err != nil {
			return nil, fmt.Errorf("failed to decode draft: %w", err)
		}
	}
	if sendBodyFile != "" {
		body, err := os.ReadFile(sendBodyFile)
		if err != nil {
			return nil, fmt.Errorf("failed to read body %s: %w", sendBodyFile, err)
		}
		email.Body = string(body)
	}
	if sendTo != "" {
		email.ReceiverEmail = sendTo
	}
	if sendSubject != "" {
		email.Subject = sendSubject
	}
	return email, nil
}

func runSend(cmd *cobra.Command, _ []string) error {
	email, err := loadDraft()
	if err != nil {
		return err
	}

	a, err := newApp(cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	if err := a.Applications.SendEmail(cmd.Context(), email); err != nil {
		return err
	}
	_, err = fmt.Fprintf(cmd.OutOrStdout(), "sent to %s\n", email.ReceiverEmail)
	return err
}
