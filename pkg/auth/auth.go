package auth

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/pkg/errors"
)

const (
	RoleUser      = "user"
	RoleLibrarian = "librarian"
)

// DevSecret is the signing secret used when JWT_SECRET is unset. It is only
// accepted with in-memory storage.
const DevSecret = "lending-dev-secret"

type Config struct {
	Secret string        `yaml:"secret" envconfig:"JWT_SECRET" default:"lending-dev-secret"`
	TTL    time.Duration `yaml:"ttl" envconfig:"JWT_TTL" default:"24h"`
}

type Profile struct {
	UserID   string `json:"userId"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

type Claims struct {
	Profile Profile `json:"profile"`
	jwt.RegisteredClaims
}

var ErrInvalidToken = errors.New("invalid token")

// NewToken signs an HS256 token for the profile. It returns the token and its expiry.
func NewToken(cfg Config, p Profile, now time.Time) (string, time.Time, error) {
	expiresAt := now.Add(cfg.TTL)
	claims := &Claims{
		Profile: p,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   p.UserID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(cfg.Secret))
	if err != nil {
		return "", time.Time{}, errors.Wrap(err, "token.SignedString")
	}
	return signed, expiresAt, nil
}

func ParseToken(cfg Config, tokenStr string) (*Claims, error) {
	claims := new(Claims)
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return []byte(cfg.Secret), nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

type ctxKey struct{}

func SetAuthContext(ctx context.Context, p Profile) context.Context {
	return context.WithValue(ctx, ctxKey{}, p)
}

func GetAuthContext(ctx context.Context) (Profile, bool) {
	p, ok := ctx.Value(ctxKey{}).(Profile)
	return p, ok
}
