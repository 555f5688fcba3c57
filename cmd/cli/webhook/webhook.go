package webhook

import (
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/ARROM2405/hero-search-bot/internal/telegram"
	"github.com/spf13/cobra"
)

var Group = &cobra.Group{
	ID:    "webhook",
	Title: "Webhook operations",
}

func init() {
	Set.Flags().String("url", "", "public base URL or full webhook URL")
	_ = Set.MarkFlagRequired("url")
}

var Set = &cobra.Command{
	Use:     "set",
	GroupID: "webhook",
	Short:   "Set the Telegram webhook",
	Long:    `Registers the bot's webhook URL with Telegram. The token path segment is appended when missing.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		token := os.Getenv("BOT_TOKEN")
		if token == "" {
			return fmt.Errorf("BOT_TOKEN is not set")
		}

		url, err := cmd.Flags().GetString("url")
		if err != nil {
			return err
		}
		urlTail := "/api/telegram/webhook/" + token
		if !strings.HasSuffix(url, urlTail) {
			url = strings.TrimRight(url, "/") + urlTail
		}

		client := telegram.NewClient(&http.Client{Timeout: 30 * time.Second}, "", token)
		if err = client.SetWebhook(cmd.Context(), url); err != nil {
			return fmt.Errorf("set webhook: %w", err)
		}
		cmd.Println("Webhook set successfully.")
		return nil
	},
}
