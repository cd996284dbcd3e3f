package jwt

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/itchan-dev/forum/shared/domain"
	internal_errors "github.com/itchan-dev/forum/shared/errors"
	"github.com/itchan-dev/forum/shared/logger"
)

type JwtService interface {
	NewToken(caller domain.Caller) (string, error)
	ParseCaller(token string) (domain.Caller, error)
}

// Claims carries the caller as "id" and "username" next to the registered claims.
type Claims struct {
	Id       domain.UserId   `json:"id"`
	Username domain.Username `json:"username"`
	jwt.RegisteredClaims
}

type Jwt struct {
	secretKey []byte
	ttl       time.Duration
}

func New(secretKey string, ttl time.Duration) JwtService {
	return &Jwt{secretKey: []byte(secretKey), ttl: ttl}
}

func (j *Jwt) NewToken(caller domain.Caller) (string, error) {
	now := time.Now()
	claims := Claims{
		Id:       caller.Id,
		Username: caller.Username,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(j.ttl)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(j.secretKey)
	if err != nil {
		logger.Log.Error("failed to sign token", "error", err)
		return "", errors.New("Can't create token")
	}
	return signed, nil
}

// ParseCaller accepts only unexpired HS256 tokens carrying a non-empty id.
func (j *Jwt) ParseCaller(token string) (domain.Caller, error) {
	var claims Claims
	_, err := jwt.ParseWithClaims(token, &claims,
		func(*jwt.Token) (any, error) { return j.secretKey, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		logger.Log.Debug("token rejected", "error", err)
		return domain.Caller{}, internal_errors.Unauthorized("Invalid access token")
	}
	if claims.Id == "" {
		return domain.Caller{}, internal_errors.Unauthorized("Invalid token")
	}
	return domain.Caller{Id: claims.Id, Username: claims.Username}, nil
}
