package v1handler

import (
	"context"
	"crypto/rsa"
	"fmt"
	"ground/internal/config"
	"ground/pkg/domain"
	"ground/pkg/serrors"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

// CtxKey is a string-based type used for storing values in request contexts.
type CtxKey string

const (
	// UserKey is the context key under which the authenticated domain.User is stored.
	UserKey CtxKey = "User"
)

// Claims are the JWT claims accepted by the API. The subject is the user ID.
type Claims struct {
	jwt.RegisteredClaims

	Email string `json:"email,omitempty"`
	Name  string `json:"name,omitempty"`
}

// SecHandlerOptions configures SecHandler.
type SecHandlerOptions struct {
	// PublicKey is the PEM encoded RSA public key used to verify tokens.
	PublicKey string
}

// NewSecHandlerOptions constructs SecHandlerOptions from the application config.
func NewSecHandlerOptions(cfg *config.Config) *SecHandlerOptions {
	return &SecHandlerOptions{PublicKey: cfg.JWT.PublicKey}
}

// SecHandler authenticates requests carrying an RS256 bearer token.
type SecHandler struct {
	publicKey *rsa.PublicKey
}

func NewSecHandler(opts *SecHandlerOptions) (*SecHandler, error) {
	key, err := jwt.ParseRSAPublicKeyFromPEM([]byte(opts.PublicKey))
	if err != nil {
		return nil, fmt.Errorf("could not parse RSA public key: %w", err)
	}

	return &SecHandler{publicKey: key}, nil
}

// HandleBearerAuth verifies token and returns ctx carrying the user it was
// issued for.
func (s SecHandler) HandleBearerAuth(ctx context.Context, token string) (context.Context, error) {
	var claims Claims
	_, err := jwt.ParseWithClaims(token, &claims, func(*jwt.Token) (any, error) {
		return s.publicKey, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodRS256.Alg()}))
	if err != nil {
		return ctx, serrors.Wrap(serrors.ErrUnauthorized, err, "invalid token")
	}
	if claims.Subject == "" {
		return ctx, serrors.With(serrors.ErrUnauthorized, "token without subject")
	}

	return context.WithValue(ctx, UserKey, domain.User{
		ID:          claims.Subject,
		Email:       claims.Email,
		DisplayName: claims.Name,
	}), nil
}

// GetUserFromContext returns the authenticated user stored by HandleBearerAuth.
func GetUserFromContext(ctx context.Context) domain.User {
	user, _ := ctx.Value(UserKey).(domain.User)

	return user
}

// secure wraps next with bearer authentication.
func (h Handler) secure(sec *SecHandler, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
		if !ok || token == "" {
			h.writeError(w, r, serrors.With(serrors.ErrUnauthorized, "missing bearer token"))

			return
		}

		ctx, err := sec.HandleBearerAuth(r.Context(), strings.TrimSpace(token))
		if err != nil {
			h.writeError(w, r, err)

			return
		}

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
