package commands

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"agency_estimator/internal/domain/entities"
)

func catalogCmd() *cobra.Command {
	var (
		currency     string
		showFeatures bool
	)

	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "List services and their starting prices",
		RunE: func(cmd *cobra.Command, args []string) error {
			cat := estimator.Catalog()
			code := entities.Currency(strings.ToUpper(currency))
			if code == "" {
				code = cat.DefaultCurrency()
			}
			if _, ok := cat.Currency(code); !ok {
				return fmt.Errorf("unsupported currency %q", code)
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tSERVICE\tFROM")
			for _, s := range cat.Services() {
				from, err := estimator.FormatCurrency(s.BasePrice[code], code)
				if err != nil {
					return err
				}
				fmt.Fprintf(w, "%s\t%s\t%s\n", s.ID, s.Name, from)
				if !showFeatures {
					continue
				}
				for _, f := range s.Features {
					price, err := estimator.FormatCurrency(f.Price[code], code)
					if err != nil {
						return err
					}
					fmt.Fprintf(w, "  %s\t  %s\t+%s\n", f.ID, f.Name, price)
				}
			}
			return w.Flush()
		},
	}

	cmd.Flags().StringVarP(&currency, "currency", "c", "", "currency code (default: catalog default)")
	cmd.Flags().BoolVar(&showFeatures, "features", false, "include feature add-ons")
	return cmd
}
