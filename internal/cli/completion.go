package cli

import (
	"os"

	"github.com/spf13/cobra"

	anchorerrors "github.com/princespaghetti/rootanchor/internal/errors"
)

// completionCmd represents the completion command.
var completionCmd = &cobra.Command{
	Use:   "completion [bash|zsh]",
	Short: "Generate shell completion scripts",
	Long: `Generate shell completion scripts for bash or zsh.

To load completions:

Bash:

  $ source <(rootanchor completion bash)

  # To load completions for each session, execute once:
  # Linux:
  $ rootanchor completion bash > /etc/bash_completion.d/rootanchor
  # macOS:
  $ rootanchor completion bash > $(brew --prefix)/etc/bash_completion.d/rootanchor

Zsh:

  # If shell completion is not already enabled in your environment,
  # you will need to enable it.  You can execute the following once:

  $ echo "autoload -U compinit; compinit" >> ~/.zshrc

  # To load completions for each session, execute once:
  $ rootanchor completion zsh > "${fpath[1]}/_rootanchor"

  # You will need to start a new shell for this setup to take effect.`,
	ValidArgs: []string{"bash", "zsh"},
	Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	RunE:      runCompletion,
}

func init() {
	rootCmd.AddCommand(completionCmd)
}

func runCompletion(cmd *cobra.Command, args []string) error {
	var err error
	switch args[0] {
	case "bash":
		err = rootCmd.GenBashCompletion(os.Stdout)
	case "zsh":
		err = rootCmd.GenZshCompletion(os.Stdout)
	}

	if err != nil {
		Error("Failed to generate completion script: %v", err)
		os.Exit(anchorerrors.ExitGeneralError)
	}
	return nil
}
