package cli

import (
	"github.com/spf13/cobra"

	"github.com/archangel777IA/plataforma-de-afiliados-impulse/internal/config"
)

var (
	dbDSN     string
	visitorID string
)

var rootCmd = &cobra.Command{
	Use:   "affiliated",
	Short: "Plataforma de afiliados: rastreamento de indicações e comissões",
	Long: `affiliated administra a plataforma de afiliados pela linha de comando:
registra visitas indicadas, converte vendas em comissões dentro da janela de
atribuição e gerencia afiliados, produtos e configurações.`,
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cfg, _ := config.Load()
	rootCmd.PersistentFlags().StringVar(&dbDSN, "db", cfg.Database.DSN(), "database DSN (postgres:// URL or SQLite file)")
	rootCmd.PersistentFlags().StringVar(&visitorID, "visitor", "local", "visitor/session id the operation applies to")
}
