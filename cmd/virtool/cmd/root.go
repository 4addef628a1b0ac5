package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/exp/slog"

	"github.com/OfficialArms/virtool/internal/app/client/config"
	"github.com/OfficialArms/virtool/internal/infrastructure/viewclient"
	"github.com/OfficialArms/virtool/internal/utils/logger"
)

var (
	cfgFile    string
	cfg        *config.Config
	log        *slog.Logger
	view       *viewclient.Client
	debug      bool
	jsonOutput bool
	serverAddr string
	listenAddr string
)

var rootCmd = &cobra.Command{
	Use:   "virtool",
	Short: "Virtool state mirror",
	Long: `virtool keeps a local mirror of a Virtool server's samples, references,
indexes, jobs and administration data.

Run "virtool daemon" to start mirroring. The other commands read the mirror
and dispatch actions through the running daemon.`,
	PersistentPreRunE: setup,
	SilenceUsage:      true,
	SilenceErrors:     true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%s %v\n", color.RedString("Error:"), err)
		os.Exit(1)
	}
}

func setup(_ *cobra.Command, _ []string) error {
	var err error
	cfg, err = loadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	if serverAddr != "" {
		cfg.ServerAddress = serverAddr
	}
	if listenAddr != "" {
		cfg.ListenAddress = listenAddr
	}

	level := cfg.LogLevel
	if debug {
		level = "debug"
	}
	log = logger.WithLevel(cfg.Env, level)

	view = viewclient.New(cfg.ListenAddress)

	return nil
}

func loadConfig() (*config.Config, error) {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}

		viper.AddConfigPath(filepath.Join(home, ".virtool"))
		viper.AddConfigPath(".")
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
	}

	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	return config.MustLoad(), nil
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default ~/.virtool/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "log at debug level")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "print JSON")
	rootCmd.PersistentFlags().StringVar(&serverAddr, "server", "", "Virtool server address (host:port)")
	rootCmd.PersistentFlags().StringVar(&listenAddr, "listen", "", "daemon view API address (host:port)")

	rootCmd.AddCommand(daemonCmd, stateCmd, dispatchCmd, errorsCmd, reportsCmd, loginCmd, logoutCmd)
}
