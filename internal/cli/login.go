package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newLoginCmd())
	rootCmd.AddCommand(newSignupCmd())
}

func newLoginCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "login <email> <senha>",
		Short: "Valida credenciais aplicando o bloqueio por tentativas",
		Long: `Valida um par email/senha. Após 5 falhas consecutivas na mesma sessão o
login fica bloqueado por 30 segundos. O contador de tentativas vive no
processo, então cada invocação do binário parte de uma sessão limpa; o
comando existe para verificar credenciais e exercitar o fluxo.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withCore(func(c *core) error {
				user, err := c.guard.Login(context.Background(), visitorID, args[0], args[1])
				if err != nil {
					fmt.Println(err.Error())
					return nil
				}
				fmt.Printf("Login ok: %s (%s, papel %s)\n", user.Email, user.ID, user.Role)
				return nil
			})
		},
	}
}

func newSignupCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "signup <email> <senha>",
		Short: "Cadastra um novo afiliado (quando o cadastro está liberado)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withCore(func(c *core) error {
				user, err := c.guard.Signup(context.Background(), args[0], args[1])
				if err != nil {
					fmt.Println(err.Error())
					return nil
				}
				fmt.Printf("Afiliado cadastrado: %s (%s)\n", user.Email, user.ID)
				return nil
			})
		},
	}
}
