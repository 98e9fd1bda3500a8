package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"brigade/internal/model"
)

func TestTokenService_RoundTrip(t *testing.T) {
	svc := NewTokenService("signing-key", "brigade", "brigade-clients", time.Hour)

	token, err := svc.Generate(&model.User{
		ID:       12,
		Username: "coordinator",
		Role:     model.RoleAdmin,
	})
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := svc.Validate(token)
	assert.NoError(t, err)
	assert.Equal(t, 12, claims.UserID)
	assert.Equal(t, "coordinator", claims.Username)
	assert.Equal(t, model.RoleAdmin, claims.Role)
	assert.Equal(t, "brigade", claims.Issuer)
	assert.Contains(t, claims.Audience, "brigade-clients")
	assert.True(t, claims.ExpiresAt.After(time.Now()))
}

func TestTokenService_RejectsForeignKey(t *testing.T) {
	issuer := NewTokenService("signing-key", "brigade", "brigade-clients", time.Hour)
	verifier := NewTokenService("different-key", "brigade", "brigade-clients", time.Hour)

	token, err := issuer.Generate(&model.User{ID: 1, Username: "volunteer", Role: model.RoleUser})
	assert.NoError(t, err)

	claims, err := verifier.Validate(token)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestTokenService_RejectsExpired(t *testing.T) {
	svc := NewTokenService("signing-key", "brigade", "brigade-clients", -time.Minute)

	token, err := svc.Generate(&model.User{ID: 1, Username: "volunteer", Role: model.RoleUser})
	assert.NoError(t, err)

	claims, err := svc.Validate(token)
	assert.Error(t, err)
	assert.Nil(t, claims)
}
