package authenticating

import (
	"context"
	"errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/vfg2006/sales-dashboard-api/internal/config"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/pkg/apiErrors"
)

// Authenticator valida os tokens emitidos pelo provedor de sessão externo
type Authenticator interface {
	ValidateToken(tokenString string) (*domain.Claims, error)
}

type Service struct {
	secret []byte
}

func NewService(cfg *config.Config) Authenticator {
	return &Service{
		secret: []byte(cfg.Auth.Secret),
	}
}

func (s *Service) ValidateToken(tokenString string) (*domain.Claims, error) {
	if tokenString == "" {
		return nil, NewAuthError(ErrMissingToken, apiErrors.ErrMissingToken, "")
	}

	claims := &domain.Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, NewAuthError(ErrExpiredToken, apiErrors.ErrExpiredToken, "Sessão expirada")
		}
		return nil, NewAuthError(ErrInvalidToken, apiErrors.ErrInvalidToken, err.Error())
	}

	if !token.Valid {
		return nil, NewAuthError(ErrInvalidToken, apiErrors.ErrInvalidToken, "")
	}

	if claims.SessionUserID() == "" {
		return nil, NewAuthError(ErrMissingSubject, apiErrors.ErrInvalidToken, "")
	}

	if claims.Role == "" {
		claims.Role = domain.RoleMember
	}

	return claims, nil
}

type contextKey string

const (
	contextKeyClaims contextKey = "session_claims"
	contextKeyToken  contextKey = "session_token"
)

// WithSession guarda as claims e o token bruto da sessão no contexto
func WithSession(ctx context.Context, claims *domain.Claims, token string) context.Context {
	ctx = context.WithValue(ctx, contextKeyClaims, claims)
	return context.WithValue(ctx, contextKeyToken, token)
}

// ClaimsFromContext devolve as claims da sessão, se houver
func ClaimsFromContext(ctx context.Context) (*domain.Claims, bool) {
	claims, ok := ctx.Value(contextKeyClaims).(*domain.Claims)
	return claims, ok && claims != nil
}

// TokenFromContext devolve o token bruto da sessão ou vazio
func TokenFromContext(ctx context.Context) string {
	token, _ := ctx.Value(contextKeyToken).(string)
	return token
}

// SessionTokenProvider repassa ao backend o mesmo token recebido na requisição.
// Sem sessão, o token é vazio e a chamada segue sem autenticação.
type SessionTokenProvider struct{}

func (SessionTokenProvider) Token(ctx context.Context) (string, error) {
	return TokenFromContext(ctx), nil
}

// StaticTokenProvider usa sempre o mesmo token
type StaticTokenProvider string

func (p StaticTokenProvider) Token(context.Context) (string, error) {
	return string(p), nil
}
