package service

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guttosm/label-service/internal/domain/dto"
)

func TestHMACTokenService_Verify(t *testing.T) {
	issuer := NewHMACTokenService("plant-secret")
	operator := dto.Claims{Subject: "op-17", Name: "Ana", Email: "ana@plant.example", Roles: []string{"printer"}}

	valid, err := issuer.Issue(operator, time.Hour)
	require.NoError(t, err)
	expired, err := issuer.Issue(operator, -time.Minute)
	require.NoError(t, err)
	otherSecret, err := NewHMACTokenService("other").Issue(operator, time.Hour)
	require.NoError(t, err)
	anonymous, err := issuer.Issue(dto.Claims{}, time.Hour)
	require.NoError(t, err)
	none, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{"sub": "x"}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	tests := []struct {
		name    string
		token   string
		wantErr bool
	}{
		{name: "valid token", token: valid},
		{name: "expired token", token: expired, wantErr: true},
		{name: "wrong secret", token: otherSecret, wantErr: true},
		{name: "no operator", token: anonymous, wantErr: true},
		{name: "unsigned token", token: none, wantErr: true},
		{name: "garbage", token: "not-a-token", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := issuer.Verify(tt.token)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidToken)
				assert.Nil(t, claims)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, &operator, claims)
			assert.Equal(t, "ana@plant.example", claims.Operator())
		})
	}
}

func TestHMACTokenService_EmptySecret(t *testing.T) {
	svc := NewHMACTokenService("")

	_, err := svc.Issue(dto.Claims{Subject: "x"}, time.Hour)
	assert.Error(t, err)

	_, err = svc.Verify("anything")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
