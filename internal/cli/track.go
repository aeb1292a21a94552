package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newTrackCmd())
}

func newTrackCmd() *cobra.Command {
	var clientTag string

	cmd := &cobra.Command{
		Use:   "track <ref-token>",
		Short: "Registra uma visita indicada por um afiliado",
		Long: `Registra uma visita com o token de indicação informado. Um token válido
grava o afiliado como indicador ativo do visitante e adiciona um clique;
tokens desconhecidos são ignorados em silêncio.

Exemplo:
  affiliated track afiliado-07 --visitor sess-42`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withCore(func(c *core) error {
				ctx := context.Background()
				if err := c.tracker.Track(ctx, visitorID, args[0], clientTag); err != nil {
					return err
				}

				marker, err := c.tracker.ActiveReferrer(ctx, visitorID)
				if err != nil {
					return err
				}
				if marker == nil {
					fmt.Println("Visita registrada sem indicador ativo (token desconhecido ou vazio).")
					return nil
				}
				fmt.Printf("Indicador ativo: %s (desde %d)\n", marker.AffiliateID, marker.Timestamp)
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&clientTag, "client-tag", "cli", "client tag stored with the click")
	return cmd
}
