package commands

import (
	"fmt"
	"time"

	"portfolio-backend/internal/usecase"
	"portfolio-backend/pkg/auth"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	tokenEmail string
	tokenName  string
)

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Mint an admin session token for an allowlisted email",
	Long: `Sign a session token with SESSION_SECRET without going through Google sign-in.
The email must be in ALLOWED_EMAILS; the API checks it again on every request.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		sessions := auth.NewSessionSigner(globalConfig.SessionSecret, time.Duration(globalConfig.SessionTTLHours)*time.Hour)
		authUC := usecase.NewAuthUsecase(nil, "", nil, sessions, globalConfig.AllowedEmails)

		token, session, err := authUC.IssueSession(tokenEmail, tokenName)
		if err != nil {
			return err
		}

		color.Cyan("session for %s, expires %s", session.Email, session.ExpiresAt.Format(time.RFC3339))
		fmt.Println(token)
		return nil
	},
}

func init() {
	tokenCmd.Flags().StringVarP(&tokenEmail, "email", "e", "", "admin email (must be allowlisted)")
	tokenCmd.Flags().StringVarP(&tokenName, "name", "n", "", "display name")
	_ = tokenCmd.MarkFlagRequired("email")
}
