package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newStatsCmd())
}

func newStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats [affiliate-id]",
		Short: "Mostra cliques, conversões e comissões por afiliado",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withCore(func(c *core) error {
				ctx := context.Background()

				if len(args) == 1 {
					stats, err := c.engine.AffiliateStats(ctx, args[0])
					if err != nil {
						return err
					}
					fmt.Printf("%s: %d cliques, %d conversões (%.1f%%), R$ %.2f em comissões\n",
						stats.AffiliateID, stats.Clicks, stats.Conversions,
						stats.ConversionRate*100, stats.TotalCommission)
					return nil
				}

				all, err := c.engine.AllStats(ctx)
				if err != nil {
					return err
				}
				if len(all) == 0 {
					fmt.Println("Nenhum clique ou conversão registrado.")
					return nil
				}
				for _, stats := range all {
					fmt.Printf("%-16s %5d cliques %5d conversões %7.1f%% R$ %10.2f\n",
						stats.AffiliateID, stats.Clicks, stats.Conversions,
						stats.ConversionRate*100, stats.TotalCommission)
				}
				return nil
			})
		},
	}
}
