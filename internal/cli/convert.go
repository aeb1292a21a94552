package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/archangel777IA/plataforma-de-afiliados-impulse/internal/commission"
)

func init() {
	rootCmd.AddCommand(newConvertCmd())
	rootCmd.AddCommand(newBuyCmd())
}

func newConvertCmd() *cobra.Command {
	var (
		buyerName  string
		buyerPhone string
	)

	cmd := &cobra.Command{
		Use:   "convert <valor>",
		Short: "Registra uma venda atribuída ao indicador ativo do visitante",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			value, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return fmt.Errorf("valor inválido: %q", args[0])
			}

			return withCore(func(c *core) error {
				conversion, err := c.engine.RecordConversion(context.Background(), visitorID, value, buyerName, buyerPhone)
				if errors.Is(err, commission.ErrNoActiveReferrer) {
					fmt.Println(err.Error())
					return nil
				}
				if err != nil {
					return err
				}
				fmt.Printf("Conversão de R$ %.2f registrada para o afiliado %s (comissão R$ %.2f)\n",
					conversion.ProductValue, conversion.AffiliateID, conversion.Commission)
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&buyerName, "buyer", "", "buyer name")
	cmd.Flags().StringVar(&buyerPhone, "phone", "", "buyer phone")
	return cmd
}

// buy records a conversion using a catalog product's price.
func newBuyCmd() *cobra.Command {
	var (
		buyerName  string
		buyerPhone string
	)

	cmd := &cobra.Command{
		Use:   "buy <product-id>",
		Short: "Registra a compra de um produto do catálogo",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("id de produto inválido: %q", args[0])
			}

			return withCore(func(c *core) error {
				ctx := context.Background()
				products, err := c.store.ListProducts(ctx)
				if err != nil {
					return err
				}
				for _, p := range products {
					if p.ID != id {
						continue
					}
					conversion, err := c.engine.RecordConversion(ctx, visitorID, p.Price, buyerName, buyerPhone)
					if errors.Is(err, commission.ErrNoActiveReferrer) {
						fmt.Println(err.Error())
						return nil
					}
					if err != nil {
						return err
					}
					fmt.Printf("Compra de %q (R$ %.2f) atribuída ao afiliado %s (comissão R$ %.2f)\n",
						p.Name, p.Price, conversion.AffiliateID, conversion.Commission)
					return nil
				}
				return fmt.Errorf("produto %d não encontrado", id)
			})
		},
	}

	cmd.Flags().StringVar(&buyerName, "buyer", "", "buyer name")
	cmd.Flags().StringVar(&buyerPhone, "phone", "", "buyer phone")
	return cmd
}
