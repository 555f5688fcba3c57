package main

import (
	"fmt"
	"os"

	"github.com/ARROM2405/hero-search-bot/cmd/cli/export"
	"github.com/ARROM2405/hero-search-bot/cmd/cli/webhook"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func init() {
	if err := godotenv.Load(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
	}
	rootCmd.AddGroup(webhook.Group)
	rootCmd.AddCommand(webhook.Set)
	rootCmd.AddGroup(export.Group)
	rootCmd.AddCommand(export.Report)
}

var rootCmd = &cobra.Command{
	Use:  "hero-search-bot-cli",
	Long: `Command line utilities for the hero search bot.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func main() {
	Execute()
}
