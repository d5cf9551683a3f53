package jwt_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gestorpro/orcamentos-api/pkg/jwt"
)

func TestGenerateParse_IdaEVolta(t *testing.T) {
	token, err := jwt.Generate("segredo", "user-42", "orcamentos-api", 60)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	userID, err := jwt.Parse("segredo", token)
	require.NoError(t, err)
	assert.Equal(t, "user-42", userID)
}

func TestParse_AssinaturaErrada(t *testing.T) {
	token, err := jwt.Generate("segredo", "user-42", "orcamentos-api", 60)
	require.NoError(t, err)

	_, err = jwt.Parse("outro-segredo", token)
	assert.Error(t, err)
}

func TestParse_TokenExpirado(t *testing.T) {
	token, err := jwt.Generate("segredo", "user-42", "orcamentos-api", -1)
	require.NoError(t, err)

	_, err = jwt.Parse("segredo", token)
	assert.Error(t, err)
}

func TestGenerate_SecretVazio(t *testing.T) {
	_, err := jwt.Generate("", "user-42", "orcamentos-api", 60)
	assert.Error(t, err)
}
