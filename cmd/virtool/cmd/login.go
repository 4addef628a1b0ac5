package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/OfficialArms/virtool/internal/app/client"
	"github.com/OfficialArms/virtool/internal/infrastructure/virtool"
)

var loginUser string

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Store a Virtool API key",
	Long: `Asks for a Virtool API key, checks it against the server and stores it
in the config directory for later runs.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		if loginUser != "" {
			cfg.User = loginUser
		}
		if cfg.User == "" {
			fmt.Print("User: ")
			_, _ = fmt.Scanln(&cfg.User)
		}

		fmt.Print("API key: ")
		key, err := term.ReadPassword(int(os.Stdin.Fd()))
		if err != nil {
			return fmt.Errorf("read api key: %w", err)
		}
		fmt.Println()

		cfg.APIKey = strings.TrimSpace(string(key))
		if cfg.APIKey == "" {
			return fmt.Errorf("empty api key")
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
		defer cancel()

		if err := virtool.NewClient(cfg, log).HealthCheck(ctx); err != nil {
			return fmt.Errorf("check api key: %w", err)
		}

		if err := client.SaveAPIKey(cfg, cfg.APIKey); err != nil {
			return err
		}

		fmt.Println(color.GreenString("✓"), "logged in to", cfg.ServerAddress, "as", cfg.User)
		return nil
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Remove the stored API key",
	RunE: func(_ *cobra.Command, _ []string) error {
		if err := client.ClearAPIKey(cfg); err != nil {
			return err
		}
		fmt.Println(color.GreenString("✓"), "logged out")
		return nil
	},
}

func init() {
	loginCmd.Flags().StringVar(&loginUser, "user", "", "Virtool user name")
}
