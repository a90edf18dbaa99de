package main

import (
	"os"

	"github.com/spf13/cobra"
)

var completionCmd = &cobra.Command{
	Use:   "completion [bash|zsh|fish|powershell]",
	Short: "Generate shell completion scripts",
	Long: `Generate shell completion scripts for anibridge.

To load completions:

Bash:
  $ source <(anibridge completion bash)
  # To load completions for each session, execute once:
  # Linux:
  $ anibridge completion bash > /etc/bash_completion.d/anibridge
  # macOS:
  $ anibridge completion bash > $(brew --prefix)/etc/bash_completion.d/anibridge

Zsh:
  $ source <(anibridge completion zsh)
  # To load completions for each session, execute once:
  $ anibridge completion zsh > "${fpath[1]}/_anibridge"

Fish:
  $ anibridge completion fish | source
  # To load completions for each session, execute once:
  $ anibridge completion fish > ~/.config/fish/completions/anibridge.fish

PowerShell:
  PS> anibridge completion powershell | Out-String | Invoke-Expression
  # To load completions for each session, execute once:
  PS> anibridge completion powershell > anibridge.ps1
  # and source this file from your PowerShell profile.
`,
	DisableFlagsInUseLine: true,
	ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
	Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	RunE: func(cmd *cobra.Command, args []string) error {
		switch args[0] {
		case "bash":
			return rootCmd.GenBashCompletion(os.Stdout)
		case "zsh":
			return rootCmd.GenZshCompletion(os.Stdout)
		case "fish":
			return rootCmd.GenFishCompletion(os.Stdout, true)
		case "powershell":
			return rootCmd.GenPowerShellCompletionWithDesc(os.Stdout)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(completionCmd)
}
