package middleware

import (
	"math/rand"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const identityKey = "identity"

// Identity is the authenticated caller as produced by the upstream auth
// collaborator. The API only ever reads it.
type Identity struct {
	ID string `json:"id"`
}

// Resolver establishes the request identity. The second return is false
// when the request carries no usable identity; handlers decide what that
// means per endpoint.
type Resolver interface {
	Resolve(r *http.Request) (Identity, bool)
}

// Authenticate stores the resolved identity in the request context.
// Requests without one pass through; each handler enforces its own policy.
func Authenticate(resolver Resolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		if id, ok := resolver.Resolve(c.Request); ok {
			c.Set(identityKey, id)
		}
		c.Next()
	}
}

// CurrentIdentity returns the identity attached by Authenticate, if any.
func CurrentIdentity(c *gin.Context) (Identity, bool) {
	v, ok := c.Get(identityKey)
	if !ok {
		return Identity{}, false
	}
	id, ok := v.(Identity)
	return id, ok
}

// MockResolver mimics the development auth stub: each request randomly
// becomes one of two fixed users, or stays anonymous.
type MockResolver struct {
	Users []string
}

func NewMockResolver() *MockResolver {
	return &MockResolver{Users: []string{
		"1e684e82-f501-4840-a1af-e397a4248270",
		"7ee2fd06-62f1-4a0a-8337-4b61d7c1ef5b",
	}}
}

func (m *MockResolver) Resolve(_ *http.Request) (Identity, bool) {
	prob := rand.Float64()
	if prob < 0.45 {
		return Identity{ID: m.Users[0]}, true
	}
	if prob < 0.9 {
		return Identity{ID: m.Users[1]}, true
	}
	return Identity{}, false
}

// StaticResolver always resolves the same identity. Intended for tests.
type StaticResolver struct {
	ID string
}

func (s StaticResolver) Resolve(_ *http.Request) (Identity, bool) {
	if s.ID == "" {
		return Identity{}, false
	}
	return Identity{ID: s.ID}, true
}

// JWTResolver reads a Bearer token and takes the subject claim as the
// caller's id. Tokens that fail signature or claim checks resolve to no
// identity rather than an error; the endpoint's own policy answers.
type JWTResolver struct {
	Secret []byte
}

func NewJWTResolver(secret string) *JWTResolver {
	return &JWTResolver{Secret: []byte(secret)}
}

func (j *JWTResolver) Resolve(r *http.Request) (Identity, bool) {
	header := r.Header.Get("Authorization")
	if !strings.HasPrefix(header, "Bearer ") {
		return Identity{}, false
	}
	raw := strings.TrimPrefix(header, "Bearer ")

	token, err := jwt.Parse(raw, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return j.Secret, nil
	})
	if err != nil || !token.Valid {
		return Identity{}, false
	}

	sub, err := token.Claims.GetSubject()
	if err != nil || sub == "" {
		return Identity{}, false
	}
	return Identity{ID: sub}, true
}
