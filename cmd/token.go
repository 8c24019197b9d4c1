package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/guttosm/label-service/config"
	"github.com/guttosm/label-service/internal/domain/dto"
	"github.com/guttosm/label-service/internal/service"
)

func newTokenCmd(cfg config.Config) *cobra.Command {
	var (
		claims dto.Claims
		secret = cfg.Auth.JWTSecretKey
		ttl    = cfg.Auth.TokenTTL
	)

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Mint an operator token for local testing",
		Long: `Signs an operator JWT with JWT_SECRET_KEY. Production tokens come from the
identity provider; this is for development and smoke tests.`,
		Example: `  labelsvc token --subject op-7 --email op7@example.com --role supervisor`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if secret == "" {
				return errors.New("no signing secret: set JWT_SECRET_KEY or --secret")
			}
			if ttl <= 0 {
				ttl = time.Hour
			}
			token, err := service.NewHMACTokenService(secret).Issue(claims, ttl)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), token)
			return err
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&claims.Subject, "subject", "", "operator id (sub claim)")
	flags.StringVar(&claims.Name, "name", "", "display name")
	flags.StringVar(&claims.Email, "email", "", "operator email")
	flags.StringSliceVar(&claims.Roles, "role", nil, "role, repeatable")
	flags.StringVar(&secret, "secret", secret, "HMAC signing secret")
	flags.DurationVar(&ttl, "ttl", ttl, "token lifetime")
	_ = cmd.MarkFlagRequired("subject")

	return cmd
}
