package jwt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndParseToken(t *testing.T) {
	svc := &jwtService{secretKey: "test-secret", issuer: "FRIDGE_ELF"}

	token := svc.GenerateTokenUser("user-1", "U1234567890")
	require.NotEmpty(t, token)

	userID, lineUserID, err := svc.GetUserIDByToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", userID)
	assert.Equal(t, "U1234567890", lineUserID)
}

func TestGetUserIDByToken_RejectsWrongSecret(t *testing.T) {
	issuing := &jwtService{secretKey: "secret-a", issuer: "FRIDGE_ELF"}
	verifying := &jwtService{secretKey: "secret-b", issuer: "FRIDGE_ELF"}

	token := issuing.GenerateTokenUser("user-1", "U1234567890")

	_, _, err := verifying.GetUserIDByToken(token)
	assert.Error(t, err)
}

func TestGetUserIDByToken_RejectsGarbage(t *testing.T) {
	svc := &jwtService{secretKey: "test-secret", issuer: "FRIDGE_ELF"}

	_, _, err := svc.GetUserIDByToken("not.a.token")
	assert.Error(t, err)
}
