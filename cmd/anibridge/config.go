package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vmunix/anibridge/internal/config"
	"github.com/vmunix/anibridge/internal/mal"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Configuration management",
}

var configInitCmd = &cobra.Command{
	Use:   "init [path]",
	Short: "Write a starter config file",
	Long:  "Writes a commented starter config to the given path, or to the default location when no path is given.",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runConfigInit,
}

var configTestCmd = &cobra.Command{
	Use:   "test [path]",
	Short: "Validate a config file",
	Long:  "Checks TOML syntax, required fields, and environment variable references without starting the server.",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runConfigTest,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configTestCmd)
	configInitCmd.Flags().Bool("force", false, "Overwrite an existing file")
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	path := config.DefaultPath()
	if configPath != "" {
		path = configPath
	}
	if len(args) > 0 {
		path = args[0]
	}

	force, _ := cmd.Flags().GetBool("force")
	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("%s already exists (use --force to overwrite)", path)
	}
	if err := config.WriteDefault(path); err != nil {
		return err
	}

	fmt.Printf("Wrote %s\n", path)
	fmt.Println("Set MAL_CLIENT_ID or edit mal.client_id before serving.")
	return nil
}

func runConfigTest(cmd *cobra.Command, args []string) error {
	path := configPath
	if len(args) > 0 {
		path = args[0]
	}
	if path == "" {
		var err error
		if path, err = config.Discover(); err != nil {
			return err
		}
	}

	fmt.Printf("Validating %s...\n\n", path)

	cfg, err := config.Load(path)
	if err != nil {
		var cfgErr *config.ConfigError
		if errors.As(err, &cfgErr) {
			printConfigErrors(cfgErr)
			return fmt.Errorf("configuration invalid")
		}
		return err
	}

	printConfigSummary(cfg)
	fmt.Println("\nConfiguration valid!")
	return nil
}

func printConfigErrors(e *config.ConfigError) {
	if len(e.Missing) > 0 {
		fmt.Println("Missing environment variables:")
		for _, m := range e.Missing {
			fmt.Printf("  - %s\n", m)
		}
		fmt.Println()
	}

	if len(e.Errors) > 0 {
		fmt.Println("Validation errors:")
		for _, msg := range e.Errors {
			fmt.Printf("  - %s\n", msg)
		}
		fmt.Println()
	}
}

func printConfigSummary(cfg *config.Config) {
	fmt.Println("Configuration Summary:")
	fmt.Printf("  Transport:  %s\n", cfg.Server.Transport)
	if cfg.Server.Transport == "http" {
		fmt.Printf("  Address:    %s\n", cfg.Server.Addr)
	}
	fmt.Printf("  Log level:  %s\n", cfg.Server.LogLevel)

	catalog := cfg.MAL.BaseURL
	if catalog == "" {
		catalog = mal.DefaultBaseURL
	}
	fmt.Printf("  Catalog:    %s (timeout %s)\n", catalog, cfg.MAL.Timeout())

	clientID := "configured"
	if cfg.MAL.ClientID == "" {
		clientID = "missing"
	}
	fmt.Printf("  Client ID:  %s\n", clientID)

	auditPath := cfg.Audit.Path
	if auditPath == "" {
		auditPath = "disabled"
	}
	fmt.Printf("  Audit log:  %s\n", auditPath)
}
