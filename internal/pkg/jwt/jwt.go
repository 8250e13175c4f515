package jwt

import (
	"errors"

	"hotelfront/internal/pkg/clock"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token expired")
)

// Claims are the fields the hotel backend puts into its access tokens.
type Claims struct {
	UserID string `json:"id,omitempty"`
	Role   string `json:"role,omitempty"`
	jwt.RegisteredClaims
}

// SubjectID returns the user id, falling back to the registered sub claim.
func (c *Claims) SubjectID() string {
	if c.UserID != "" {
		return c.UserID
	}
	return c.RegisteredClaims.Subject
}

// Inspector decodes tokens issued by the backend. The signing key stays with
// the backend, which verifies every forwarded token itself; the gateway only
// reads claims for logging and turns away tokens that are already expired.
type Inspector struct {
	parser *jwt.Parser
	clock  clock.Clock
}

func NewInspector(clk clock.Clock) *Inspector {
	return &Inspector{
		parser: jwt.NewParser(),
		clock:  clk,
	}
}

func (i *Inspector) Inspect(tokenString string) (*Claims, error) {
	claims := &Claims{}
	if _, _, err := i.parser.ParseUnverified(tokenString, claims); err != nil {
		return nil, ErrInvalidToken
	}
	if claims.ExpiresAt != nil && !i.clock.Now().Before(claims.ExpiresAt.Time) {
		return nil, ErrExpiredToken
	}
	return claims, nil
}

// Verifier validates tokens signed with a key this service holds. It guards
// operations that never reach the backend.
type Verifier struct {
	secretKey []byte
	parser    *jwt.Parser
}

func NewVerifier(secretKey string, clk clock.Clock) *Verifier {
	return &Verifier{
		secretKey: []byte(secretKey),
		parser: jwt.NewParser(
			jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg(), jwt.SigningMethodHS384.Alg(), jwt.SigningMethodHS512.Alg()}),
			jwt.WithTimeFunc(clk.Now),
		),
	}
}

// Enabled reports whether a key is configured. Without one every token is rejected.
func (v *Verifier) Enabled() bool {
	return len(v.secretKey) > 0
}

func (v *Verifier) ValidateToken(tokenString string) (*Claims, error) {
	if !v.Enabled() {
		return nil, ErrInvalidToken
	}

	token, err := v.parser.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return v.secretKey, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
