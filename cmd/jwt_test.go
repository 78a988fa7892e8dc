package main

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"ground/internal/api/handler/v1handler"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

func TestSignToken(t *testing.T) {
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	privPEM := pem.EncodeToMemory(&pem.Block{Type: "RSA PRIVATE KEY", Bytes: x509.MarshalPKCS1PrivateKey(key)})

	signed, err := signToken(string(privPEM), "user_id", "user@gmail.com", "User", time.Hour)
	require.NoError(t, err)

	var claims v1handler.Claims
	_, err = jwt.ParseWithClaims(signed, &claims, func(*jwt.Token) (any, error) {
		return &key.PublicKey, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodRS256.Alg()}))
	require.NoError(t, err)
	require.Equal(t, "user_id", claims.Subject)
	require.Equal(t, "user@gmail.com", claims.Email)
	require.Equal(t, "User", claims.Name)

	_, err = signToken("not a key", "user_id", "", "", time.Hour)
	require.Error(t, err)
}
