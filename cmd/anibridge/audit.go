package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vmunix/anibridge/internal/audit"
)

var auditCmd = &cobra.Command{
	Use:   "audit",
	Short: "Show recent tool calls",
	Long: `Show the most recent tool calls recorded by the server.

Requires audit.path to be set in the configuration.`,
	Args: cobra.NoArgs,
	RunE: runAudit,
}

func init() {
	rootCmd.AddCommand(auditCmd)
	auditCmd.Flags().Int("limit", 20, "Entries to show")
}

func runAudit(cmd *cobra.Command, args []string) error {
	// Reading the log needs no catalog client, so an incomplete config
	// (say, a missing client ID) is fine here.
	cfg, err := loadConfigUnvalidated()
	if err != nil {
		return err
	}
	if cfg.Audit.Path == "" {
		return fmt.Errorf("audit log not configured (set audit.path)")
	}
	limit, _ := cmd.Flags().GetInt("limit")
	if limit < 1 {
		return fmt.Errorf("--limit must be positive")
	}

	auditLog, err := audit.Open(cfg.Audit.Path)
	if err != nil {
		return err
	}
	defer auditLog.Close()

	entries, err := auditLog.Recent(cmd.Context(), limit)
	if err != nil {
		return err
	}

	if jsonOutput {
		printJSON(entries)
		return nil
	}

	printAuditHuman(entries)
	return nil
}

func printAuditHuman(entries []audit.Entry) {
	if len(entries) == 0 {
		fmt.Println("No tool calls recorded")
		return
	}

	fmt.Printf("Tool calls (%d):\n\n", len(entries))
	fmt.Printf("  %-19s │ %-20s │ %-6s │ %s\n", "TIME", "TOOL", "STATUS", "DURATION")
	fmt.Println("──────────────────────┼──────────────────────┼────────┼─────────")

	for _, e := range entries {
		tool := e.Tool
		if len(tool) > 20 {
			tool = tool[:17] + "..."
		}
		fmt.Printf("  %-19s │ %-20s │ %-6s │ %8s\n",
			e.CreatedAt.Local().Format("2006-01-02 15:04:05"),
			tool, e.Status, e.Duration.Round(time.Millisecond))
		if e.Error != "" {
			msg := e.Error
			if len(msg) > 60 {
				msg = msg[:57] + "..."
			}
			fmt.Printf("  %19s │ %s\n", "", msg)
		}
	}
}
