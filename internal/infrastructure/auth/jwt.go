// Package auth verifies the tokens issued by the external identity
// provider and exposes the signed-in user to the data layer.
package auth

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"assistencia_tecnica/internal/usecase/interfaces"
	"assistencia_tecnica/pkg"

	"github.com/gin-gonic/gin"
	jwt "github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
)

var (
	ErrMissingToken = errors.New("missing bearer token")
	ErrInvalidToken = errors.New("invalid token")
	ErrNoSubject    = errors.New("token has no subject")
)

var errUnauthenticated = pkg.NewDomainErrorSimple("UNAUTHENTICATED", "Usuário não autenticado. Faça login novamente.", http.StatusUnauthorized)

type userIDKey struct{}

// WithUserID returns a copy of ctx carrying uid.
func WithUserID(ctx context.Context, uid string) context.Context {
	return context.WithValue(ctx, userIDKey{}, uid)
}

// ContextIdentity reads the uid stored by Middleware.
type ContextIdentity struct{}

var _ interfaces.IIdentityProvider = ContextIdentity{}

func (ContextIdentity) CurrentUserID(ctx context.Context) (string, bool) {
	uid, ok := ctx.Value(userIDKey{}).(string)
	return uid, ok && uid != ""
}

// Verifier checks HS256 tokens whose subject is the user id.
type Verifier struct {
	secret []byte
}

func NewVerifier(secret string) *Verifier {
	return &Verifier{secret: []byte(secret)}
}

func (v *Verifier) Verify(tokenString string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(*jwt.Token) (interface{}, error) {
		return v.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return "", errors.Join(ErrInvalidToken, err)
	}
	if !token.Valid {
		return "", ErrInvalidToken
	}
	if claims.Subject == "" {
		return "", ErrNoSubject
	}
	return claims.Subject, nil
}

// Middleware authenticates the Authorization header. With required set to
// false, requests without a header pass through anonymously; a header that
// is present but invalid is always rejected.
func Middleware(v *Verifier, required bool, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw, err := bearerToken(c.GetHeader("Authorization"))
		if err != nil {
			if !required && errors.Is(err, ErrMissingToken) {
				c.Next()
				return
			}
			abort(c, logger, err)
			return
		}

		uid, err := v.Verify(raw)
		if err != nil {
			abort(c, logger, err)
			return
		}

		c.Request = c.Request.WithContext(WithUserID(c.Request.Context(), uid))
		c.Next()
	}
}

func bearerToken(header string) (string, error) {
	if header == "" {
		return "", ErrMissingToken
	}
	scheme, token, ok := strings.Cut(header, " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(token) == "" {
		return "", ErrInvalidToken
	}
	return strings.TrimSpace(token), nil
}

func abort(c *gin.Context, logger *zap.Logger, err error) {
	logger.Debug("request rejected", zap.String("path", c.FullPath()), zap.Error(err))
	c.AbortWithStatusJSON(errUnauthenticated.HTTPStatus, errUnauthenticated.ToHTTPError())
}
