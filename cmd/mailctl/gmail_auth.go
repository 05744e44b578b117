package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/justsurfingit/job-mailer/internal/auth"
	"github.com/justsurfingit/job-mailer/internal/config"
)

var gmailAuthCmd = &cobra.Command{
	Use:   "gmail-auth",
	Short: "Authorize the Gmail transport and cache its token",
	Long:  "Without --code, prints the consent URL. Run again with --code set to the authorization code to store the token file.",
	RunE:  runGmailAuth,
}

var gmailAuthCode string

func init() {
	gmailAuthCmd.Flags().StringVar(&gmailAuthCode, "code", "", "Authorization code returned by Google")
	rootCmd.AddCommand(gmailAuthCmd)
}

func runGmailAuth(cmd *cobra.Command, _ []string) error {
	cfg := config.Load()
	oauthCfg, err := auth.GmailConfig(cfg.GmailCredentialsFile)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if gmailAuthCode == "" {
		_, err := fmt.Fprintf(out, "Open this link to authorize Gmail access:\n%s\n\nThen run: mailctl gmail-auth --code <code>\n", auth.AuthCodeURL(oauthCfg))
		return err
	}

	if err := auth.ExchangeAndSave(cmd.Context(), oauthCfg, gmailAuthCode, cfg.GmailTokenFile); err != nil {
		return err
	}
	_, err = fmt.Fprintf(out, "token saved to %s\n", cfg.GmailTokenFile)
	return err
}
