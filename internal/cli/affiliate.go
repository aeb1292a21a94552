package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newAffiliateCmd())
}

func newAffiliateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "affiliate",
		Short: "Administra contas de afiliados",
	}
	cmd.AddCommand(newAffiliateListCmd())
	cmd.AddCommand(newAffiliateAddCmd())
	cmd.AddCommand(newAffiliateToggleCmd())
	cmd.AddCommand(newAffiliateUpdateCmd())
	return cmd
}

func newAffiliateListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Lista todas as contas",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withCore(func(c *core) error {
				users, err := c.store.ListUsers(context.Background())
				if err != nil {
					return err
				}
				for _, u := range users {
					status := "ativo"
					if !u.IsActive {
						status = "inativo"
					}
					fmt.Printf("%-16s %-28s %-10s %s\n", u.ID, u.Email, u.Role, status)
				}
				return nil
			})
		},
	}
}

func newAffiliateAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add <email> <senha>",
		Short: "Cadastra um afiliado (ignora a trava de cadastro)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withCore(func(c *core) error {
				user, err := c.guard.CreateAffiliate(context.Background(), args[0], args[1])
				if err != nil {
					return err
				}
				fmt.Printf("Afiliado cadastrado: %s (%s)\n", user.Email, user.ID)
				return nil
			})
		},
	}
}

func newAffiliateToggleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "toggle <id>",
		Short: "Alterna o status ativo/inativo de um afiliado",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withCore(func(c *core) error {
				ctx := context.Background()
				user, err := c.store.GetUserByID(ctx, args[0])
				if err != nil {
					return err
				}
				if err := c.guard.SetActive(ctx, user.ID, !user.IsActive); err != nil {
					return err
				}
				if user.IsActive {
					fmt.Printf("%s desativado\n", user.ID)
				} else {
					fmt.Printf("%s ativado\n", user.ID)
				}
				return nil
			})
		},
	}
}

func newAffiliateUpdateCmd() *cobra.Command {
	var (
		email    string
		password string
	)

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Atualiza email e/ou senha de um afiliado",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if email == "" && password == "" {
				return fmt.Errorf("informe --email e/ou --password")
			}
			return withCore(func(c *core) error {
				if err := c.guard.UpdateCredentials(context.Background(), args[0], email, password); err != nil {
					return err
				}
				fmt.Printf("Credenciais de %s atualizadas\n", args[0])
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "new email")
	cmd.Flags().StringVar(&password, "password", "", "new password")
	return cmd
}
