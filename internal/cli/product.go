package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/archangel777IA/plataforma-de-afiliados-impulse/internal/model"
)

func init() {
	rootCmd.AddCommand(newProductCmd())
}

func newProductCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "product",
		Short: "Administra o catálogo de produtos",
	}
	cmd.AddCommand(newProductListCmd())
	cmd.AddCommand(newProductAddCmd())
	cmd.AddCommand(newProductDeleteCmd())
	return cmd
}

func newProductListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Lista os produtos",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withCore(func(c *core) error {
				products, err := c.store.ListProducts(context.Background())
				if err != nil {
					return err
				}
				for _, p := range products {
					fmt.Printf("%4d  %-40s R$ %8.2f  %s\n", p.ID, p.Name, p.Price, p.Description)
				}
				return nil
			})
		},
	}
}

func newProductAddCmd() *cobra.Command {
	var description string

	cmd := &cobra.Command{
		Use:   "add <nome> <preço>",
		Short: "Adiciona um produto",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			price, err := strconv.ParseFloat(args[1], 64)
			if err != nil || price < 0 {
				return fmt.Errorf("preço inválido: %q", args[1])
			}
			return withCore(func(c *core) error {
				product := &model.Product{Name: args[0], Price: price, Description: description}
				if err := c.store.AddProduct(context.Background(), product); err != nil {
					return err
				}
				fmt.Printf("Produto %d criado: %s\n", product.ID, product.Name)
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&description, "description", "", "product description")
	return cmd
}

func newProductDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Remove um produto",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("id inválido: %q", args[0])
			}
			return withCore(func(c *core) error {
				if err := c.store.DeleteProduct(context.Background(), id); err != nil {
					return err
				}
				fmt.Printf("Produto %d removido\n", id)
				return nil
			})
		},
	}
}
