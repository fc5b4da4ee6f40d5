package commands

import (
	"github.com/spf13/cobra"

	tea "github.com/charmbracelet/bubbletea"

	"agency_estimator/cmd/estimator/tui"
)

func wizardCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "wizard",
		Short: "Walk through the estimate wizard interactively",
		RunE: func(cmd *cobra.Command, args []string) error {
			p := tea.NewProgram(tui.New(estimator), tea.WithInput(cmd.InOrStdin()), tea.WithOutput(cmd.OutOrStdout()))
			_, err := p.Run()
			return err
		},
	}
}
