package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guttosm/label-service/internal/service"
)

func TestToken_IssuesVerifiableToken(t *testing.T) {
	out, err := execute(t, "token",
		"--secret", "dev-secret",
		"--subject", "op-7",
		"--email", "op7@example.com",
		"--role", "supervisor", "--role", "operator",
		"--ttl", "5m")
	require.NoError(t, err)

	claims, err := service.NewHMACTokenService("dev-secret").Verify(strings.TrimSpace(out))
	require.NoError(t, err)
	assert.Equal(t, "op-7", claims.Subject)
	assert.Equal(t, "op7@example.com", claims.Email)
	assert.ElementsMatch(t, []string{"supervisor", "operator"}, claims.Roles)
}

func TestToken_RequiresSecret(t *testing.T) {
	t.Setenv("JWT_SECRET_KEY", "")

	_, err := execute(t, "token", "--subject", "op-7")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "JWT_SECRET_KEY")
}

func TestKeys_PrintsEnvLines(t *testing.T) {
	out, err := execute(t, "keys")
	require.NoError(t, err)

	assert.Contains(t, out, "JWT_SECRET_KEY=")
	assert.Contains(t, out, "API_KEYS=")

	first, err := generateSecureKey(32)
	require.NoError(t, err)
	second, err := generateSecureKey(32)
	require.NoError(t, err)
	assert.NotEqual(t, first, second)
	assert.Len(t, first, 44)
}
