package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"agency_estimator/internal/domain/entities"
	"agency_estimator/internal/usecase"
)

func quoteCmd() *cobra.Command {
	var (
		service    string
		complexity string
		features   []string
		timeline   string
		currency   string
	)

	cmd := &cobra.Command{
		Use:   "quote",
		Short: "Print the estimate for a selection",
		Example: "  estimator quote --service lead-capture --complexity medium --feature crm-integration --timeline urgent\n" +
			"  estimator quote --service web-development --complexity simple --currency USD",
		RunE: func(cmd *cobra.Command, args []string) error {
			sel := entities.Selection{
				ServiceID:  strings.TrimSpace(service),
				Complexity: entities.ComplexityTier(strings.ToLower(complexity)),
				Features:   features,
				Timeline:   entities.TimelineOption(strings.ToLower(timeline)),
				Currency:   entities.Currency(strings.ToUpper(currency)),
			}
			if sel.Features == nil {
				sel.Features = []string{}
			}

			view, err := usecase.NewEstimateUseCase(estimator, log).Quote(context.Background(), sel)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if !view.Result.Ready {
				fmt.Fprintln(out, "Pick a service and a complexity tier to get an estimate.")
				return nil
			}
			fmt.Fprintf(out, "Estimate: %s\n", view.Result.FormattedPoint)
			fmt.Fprintf(out, "Range:    %s\n", view.Result.FormattedRange)
			if view.Summary != "" {
				fmt.Fprintf(out, "\n%s\n", view.Summary)
			} else {
				fmt.Fprintln(out, "\nAdd --timeline for the full summary.")
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&service, "service", "s", "", "service id")
	cmd.Flags().StringVar(&complexity, "complexity", "", "simple, medium or complex")
	cmd.Flags().StringArrayVarP(&features, "feature", "f", nil, "feature add-on id (repeatable)")
	cmd.Flags().StringVarP(&timeline, "timeline", "t", "", "urgent, standard or flexible")
	cmd.Flags().StringVarP(&currency, "currency", "c", "", "currency code (default: catalog default)")
	return cmd
}
