package config

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

var completionShells = []string{"bash", "zsh", "fish", "powershell"}

// GenCompletions writes the completion script for shell to out.
func GenCompletions(root *cobra.Command, shell string, out io.Writer) error {
	switch shell {
	case "bash":
		return root.GenBashCompletion(out)
	case "zsh":
		return root.GenZshCompletion(out)
	case "fish":
		return root.GenFishCompletion(out, true)
	case "powershell":
		return root.GenPowerShellCompletionWithDesc(out)
	default:
		return fmt.Errorf("unsupported shell %q (expected one of %v)", shell, completionShells)
	}
}

const CompletionsHelp = `To load completions:

Bash:
  $ source <(reasoning --set-completions bash)

Zsh:
  $ reasoning --set-completions zsh > "${fpath[1]}/_reasoning"

fish:
  $ reasoning --set-completions fish | source

PowerShell:
  PS> reasoning --set-completions powershell | Out-String | Invoke-Expression
`
