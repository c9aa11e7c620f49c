package commands

import (
	"fmt"
	"os"

	"portfolio-backend/internal/admin"
	"portfolio-backend/internal/admin/tui"

	"github.com/spf13/cobra"
)

var (
	adminURL   string
	adminToken string
)

var adminCmd = &cobra.Command{
	Use:   "admin",
	Short: "Open the terminal admin dashboard",
	Long: `Manage projects, skills and certificates against a running API.
The token defaults to PORTFOLIO_TOKEN; mint one with "portfolioctl token".`,
	RunE: func(cmd *cobra.Command, args []string) error {
		url := adminURL
		if url == "" {
			url = os.Getenv("PORTFOLIO_API_URL")
		}
		if url == "" {
			url = "http://localhost:" + globalConfig.Port
		}

		token := adminToken
		if token == "" {
			token = os.Getenv("PORTFOLIO_TOKEN")
		}
		if token == "" {
			return fmt.Errorf("no session token: pass --token or set PORTFOLIO_TOKEN")
		}

		return tui.Run(cmd.Context(), admin.NewClient(url, token))
	},
}

func init() {
	adminCmd.Flags().StringVar(&adminURL, "url", "", "API base URL (default $PORTFOLIO_API_URL or http://localhost:$PORT)")
	adminCmd.Flags().StringVar(&adminToken, "token", "", "admin session token")
}
