package main

import (
	"context"
	"fmt"
	"time"

	"topics/internal/api/handler/v1handler"
	"topics/internal/config"
	"topics/pkg/logger"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// JWTCommand constructs the 'jwt' subcommand that generates a signed RS256 JWT
// scoped to an organization and environment using the configured private key.
func JWTCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "jwt",
		Short: "Generates JWT token for given organization and environment",
		Run: func(cmd *cobra.Command, args []string) {
			ctx := context.Background()
			subject, _ := cmd.Flags().GetString("subject")
			org, _ := cmd.Flags().GetString("organization")
			env, _ := cmd.Flags().GetString("environment")
			TTL, _ := cmd.Flags().GetDuration("ttl")

			if _, err := uuid.Parse(org); err != nil {
				logger.Fatal(ctx, "invalid organization id", zap.Error(err))
			}
			if _, err := uuid.Parse(env); err != nil {
				logger.Fatal(ctx, "invalid environment id", zap.Error(err))
			}

			key, err := jwt.ParseRSAPrivateKeyFromPEM([]byte(cfg.JWT.PrivateKey))
			if err != nil {
				logger.Fatal(ctx, "could not parse RSA private key", zap.Error(err))
			}

			now := time.Now()
			claims := v1handler.Claims{
				RegisteredClaims: jwt.RegisteredClaims{
					Subject:   subject,
					ExpiresAt: jwt.NewNumericDate(now.Add(TTL)),
					IssuedAt:  jwt.NewNumericDate(now),
					NotBefore: jwt.NewNumericDate(now),
				},
				OrganizationID: org,
				EnvironmentID:  env,
			}
			token := jwt.NewWithClaims(jwt.SigningMethodRS256, claims)
			signed, err := token.SignedString(key)
			if err != nil {
				logger.Fatal(ctx, "could not sign JWT", zap.Error(err))
			}

			fmt.Println(signed) //nolint: forbidigo
		},
	}

	cmd.Flags().String("subject", "", "JWT subject (e.g., client name)")
	cmd.Flags().String("organization", "", "Organization ID the token is scoped to")
	cmd.Flags().String("environment", "", "Environment ID the token is scoped to")
	cmd.Flags().Duration("ttl", cfg.JWT.TTL, "Token TTL (e.g., 30s, 15m, 1h)")
	_ = cmd.MarkFlagRequired("organization")
	_ = cmd.MarkFlagRequired("environment")

	return cmd
}
