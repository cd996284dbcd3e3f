package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/itchan-dev/forum/shared/domain"
	internal_errors "github.com/itchan-dev/forum/shared/errors"
	jwt_internal "github.com/itchan-dev/forum/shared/jwt"
	"github.com/itchan-dev/forum/shared/logger"
	"github.com/itchan-dev/forum/shared/utils"
)

// Key to store the caller in the request context
type key int

const CallerKey key = 0

// Auth holds dependencies for authentication middleware
type Auth struct {
	jwtService jwt_internal.JwtService
}

func NewAuth(jwtService jwt_internal.JwtService) *Auth {
	return &Auth{jwtService: jwtService}
}

var errNoToken = internal_errors.Unauthorized("Missing authentication")

// NeedAuth rejects requests without a valid bearer token.
func (a *Auth) NeedAuth() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			caller, err := a.extractCaller(r)
			if err != nil {
				logger.Log.Debug("request rejected", "path", r.URL.Path, "error", err)
				utils.WriteErrorAndStatusCode(w, err)
				return
			}

			ctx := context.WithValue(r.Context(), CallerKey, caller)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// extractCaller reads the token from the Authorization header, falling back
// to the accessToken cookie.
func (a *Auth) extractCaller(r *http.Request) (*domain.Caller, error) {
	var tokenString string
	if token, found := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer "); found {
		tokenString = token
	} else if cookie, err := r.Cookie("accessToken"); err == nil {
		tokenString = cookie.Value
	}
	if tokenString == "" {
		return nil, errNoToken
	}

	caller, err := a.jwtService.ParseCaller(tokenString)
	if err != nil {
		return nil, err
	}
	return &caller, nil
}

// GetCallerFromContext returns nil when the request went through no auth middleware.
func GetCallerFromContext(r *http.Request) *domain.Caller {
	caller, ok := r.Context().Value(CallerKey).(*domain.Caller)
	if !ok {
		return nil
	}
	return caller
}
