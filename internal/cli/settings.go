package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/archangel777IA/plataforma-de-afiliados-impulse/internal/model"
	"github.com/archangel777IA/plataforma-de-afiliados-impulse/internal/store"
)

func init() {
	rootCmd.AddCommand(newSettingsCmd())
}

func newSettingsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Consulta e altera as configurações da plataforma",
	}
	cmd.AddCommand(newSettingsGetCmd())
	cmd.AddCommand(newSettingsSetCmd())
	return cmd
}

func newSettingsGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get",
		Short: "Mostra as configurações atuais",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withCore(func(c *core) error {
				settings, err := c.store.GetSettings(context.Background())
				if errors.Is(err, store.ErrSettingsNotFound) {
					settings = model.DefaultSettings()
				} else if err != nil {
					return err
				}
				fmt.Printf("Taxa de comissão:      %.2f%%\n", settings.CommissionRate*100)
				fmt.Printf("Janela de atribuição:  %d dias\n", settings.AttributionDays)
				fmt.Printf("Cadastro liberado:     %v\n", settings.AllowSignup)
				return nil
			})
		},
	}
}

func newSettingsSetCmd() *cobra.Command {
	var (
		rate        float64
		days        int
		allowSignup bool
	)

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Altera configurações; mudanças valem imediatamente",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withCore(func(c *core) error {
				ctx := context.Background()
				settings, err := c.store.GetSettings(ctx)
				if errors.Is(err, store.ErrSettingsNotFound) {
					settings = model.DefaultSettings()
				} else if err != nil {
					return err
				}

				if cmd.Flags().Changed("rate") {
					if rate < 0 || rate > 1 {
						return fmt.Errorf("taxa de comissão deve estar entre 0 e 1")
					}
					settings.CommissionRate = rate
				}
				if cmd.Flags().Changed("days") {
					if days <= 0 {
						return fmt.Errorf("janela de atribuição deve ser positiva")
					}
					settings.AttributionDays = days
				}
				if cmd.Flags().Changed("allow-signup") {
					settings.AllowSignup = allowSignup
				}

				if err := c.store.SaveSettings(ctx, settings); err != nil {
					return err
				}
				fmt.Println("Configurações salvas.")
				return nil
			})
		},
	}

	cmd.Flags().Float64Var(&rate, "rate", 0, "commission rate as a fraction, e.g. 0.10")
	cmd.Flags().IntVar(&days, "days", 0, "attribution window in days")
	cmd.Flags().BoolVar(&allowSignup, "allow-signup", true, "whether self-signup is enabled")
	return cmd
}
