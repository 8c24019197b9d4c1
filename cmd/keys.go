package main

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"

	"github.com/spf13/cobra"
)

func generateSecureKey(length int) (string, error) {
	bytes := make([]byte, length)
	if _, err := rand.Read(bytes); err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(bytes), nil
}

func newKeysCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "keys",
		Short: "Generate a JWT secret and an API key",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			// 32 bytes for HS256, 24 for API keys
			jwtSecret, err := generateSecureKey(32)
			if err != nil {
				return fmt.Errorf("generate JWT secret: %w", err)
			}
			apiKey, err := generateSecureKey(24)
			if err != nil {
				return fmt.Errorf("generate API key: %w", err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "# Add these to your .env file")
			fmt.Fprintf(out, "JWT_SECRET_KEY=%s\n", jwtSecret)
			fmt.Fprintf(out, "API_KEYS=%s\n", apiKey)
			return nil
		},
	}
}
