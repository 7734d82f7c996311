// token emite un JWT de desarrollo firmado con JWT_SECRET.
//
// Uso: go run ./cmd/token --user u-1 --company c-1 --role facturador
package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/jhoicas/invoice-generator/pkg/config"
	"github.com/jhoicas/invoice-generator/pkg/jwt"
)

func main() {
	app := &cli.App{
		Name:  "token",
		Usage: "emite un JWT de desarrollo",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "user", Value: "dev-user", Usage: "user_id del token"},
			&cli.StringFlag{Name: "company", Value: "dev-company", Usage: "company_id del token"},
			&cli.StringFlag{Name: "role", Value: jwt.RoleBilling, Usage: "rol: admin, facturador o consulta"},
		},
		Action: func(c *cli.Context) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("cargar configuración: %w", err)
			}
			tok, err := jwt.Generate(cfg.JWT.Secret, jwt.TokenParams{
				UserID:     c.String("user"),
				CompanyID:  c.String("company"),
				Role:       c.String("role"),
				Issuer:     cfg.JWT.Issuer,
				ExpMinutes: cfg.JWT.Expiration,
			})
			if err != nil {
				return err
			}
			fmt.Fprintln(c.App.Writer, tok)
			return nil
		},
	}
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "token: %v\n", err)
		os.Exit(1)
	}
}
