package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

var (
	// ErrNotConfigured indicates the server has no owner identity or signing
	// secret configured. Surfaced as a server misconfiguration (500), not 401.
	ErrNotConfigured = errors.New("server auth is not configured")

	// ErrInvalidCredentials covers both unknown email and wrong password.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrInvalidToken covers missing, malformed, tampered and expired tokens.
	ErrInvalidToken = errors.New("invalid or expired token")
)

// Role is the closed set of identities a token may carry. There is exactly
// one: the site owner. The claim is validated on both issuance and
// verification so a token with any other role never passes the gate.
type Role string

const RoleOwner Role = "owner"

func (r Role) Valid() bool { return r == RoleOwner }

// Identity is the verified caller identity extracted from a bearer token.
type Identity struct {
	Email string `json:"email"`
	Role  Role   `json:"role"`
}

// Owner is the single statically configured identity allowed to authenticate.
type Owner struct {
	Email        string
	PasswordHash string // bcrypt hash, see cmd/hashpw
}

// Gate issues and validates bearer tokens for the owner. It is stateless by
// design: no session store, no revocation list. Logout is a client-side
// discard, and an unexpired token replayed after logout still validates.
type Gate struct {
	owner  Owner
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewGate builds a gate from explicit configuration. The secret is held
// server-side only and never transmitted.
func NewGate(owner Owner, secret string, ttl time.Duration) *Gate {
	return &Gate{owner: owner, secret: []byte(secret), ttl: ttl, now: time.Now}
}

// IssueToken checks the supplied credentials against the configured owner and
// returns a signed bearer token plus the identity it encodes.
func (g *Gate) IssueToken(email, password string) (string, Identity, error) {
	if g.owner.Email == "" || g.owner.PasswordHash == "" || len(g.secret) == 0 {
		return "", Identity{}, ErrNotConfigured
	}
	if email != g.owner.Email {
		return "", Identity{}, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(g.owner.PasswordHash), []byte(password)); err != nil {
		return "", Identity{}, ErrInvalidCredentials
	}

	id := Identity{Email: email, Role: RoleOwner}
	if !id.Role.Valid() {
		return "", Identity{}, ErrNotConfigured
	}
	now := g.now()
	claims := jwt.MapClaims{
		"sub":   id.Email,
		"email": id.Email,
		"role":  string(id.Role),
		"iat":   now.Unix(),
		"exp":   now.Add(g.ttl).Unix(),
	}
	jt := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := jt.SignedString(g.secret)
	if err != nil {
		return "", Identity{}, fmt.Errorf("sign token: %w", err)
	}
	return signed, id, nil
}

// ValidateToken verifies signature and expiry and returns the encoded
// identity. Any failure maps to ErrInvalidToken.
func (g *Gate) ValidateToken(raw string) (Identity, error) {
	if raw == "" {
		return Identity{}, ErrInvalidToken
	}
	parsed, err := jwt.Parse(raw,
		func(t *jwt.Token) (interface{}, error) { return g.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(g.now),
	)
	if err != nil || !parsed.Valid {
		return Identity{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return Identity{}, ErrInvalidToken
	}
	if _, hasExp := claims["exp"]; !hasExp {
		return Identity{}, fmt.Errorf("%w: missing expiry", ErrInvalidToken)
	}
	email, _ := claims["email"].(string)
	roleStr, _ := claims["role"].(string)
	role := Role(roleStr)
	if email == "" || !role.Valid() {
		return Identity{}, fmt.Errorf("%w: bad claims", ErrInvalidToken)
	}
	return Identity{Email: email, Role: role}, nil
}
