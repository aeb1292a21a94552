package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/archangel777IA/plataforma-de-afiliados-impulse/internal/seed"
)

func init() {
	rootCmd.AddCommand(newSeedCmd())
}

func newSeedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Carrega dados de demonstração (ambientes de teste apenas)",
		Long: `Carrega o conjunto de dados de demonstração: contas fixas (senhas de
demonstração), histórico aleatório de cliques e conversões dos últimos 30
dias, configurações padrão e três produtos. Não use em produção.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withCore(func(c *core) error {
				summary, err := seed.Apply(context.Background(), c.store)
				if err != nil {
					return err
				}
				fmt.Printf("Seed concluído: %d usuários, %d cliques, %d conversões, %d produtos\n",
					summary.Users, summary.Clicks, summary.Conversions, summary.Products)
				return nil
			})
		},
	}
}
