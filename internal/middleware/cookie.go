package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// CookieCodec signs and verifies the session cookie. The cookie carries
// only the session id as a signed JWT; tokens never leave the server.
type CookieCodec struct {
	secret []byte
	ttl    time.Duration
	name   string
	domain string
	secure bool
}

// CookieConfig holds session cookie settings
type CookieConfig struct {
	Secret string
	TTL    time.Duration
	Name   string
	Domain string
	Secure bool
}

var ErrInvalidCookie = errors.New("invalid session cookie")

// NewCookieCodec creates a session cookie codec
func NewCookieCodec(cfg CookieConfig) *CookieCodec {
	if cfg.Name == "" {
		cfg.Name = "admin_session"
	}
	if cfg.TTL == 0 {
		cfg.TTL = 30 * 24 * time.Hour
	}
	return &CookieCodec{
		secret: []byte(cfg.Secret),
		ttl:    cfg.TTL,
		name:   cfg.Name,
		domain: cfg.Domain,
		secure: cfg.Secure,
	}
}

// Name returns the cookie name
func (cc *CookieCodec) Name() string {
	return cc.name
}

// Issue signs a cookie value for the given session id
func (cc *CookieCodec) Issue(sessionID string) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   sessionID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(cc.ttl)),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(cc.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign session cookie: %w", err)
	}
	return signed, nil
}

// Parse verifies a cookie value and returns the session id
func (cc *CookieCodec) Parse(value string) (string, error) {
	token, err := jwt.ParseWithClaims(value, &jwt.RegisteredClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return cc.secret, nil
	})
	if err != nil || !token.Valid {
		return "", ErrInvalidCookie
	}
	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || claims.Subject == "" {
		return "", ErrInvalidCookie
	}
	return claims.Subject, nil
}

// Set writes the session cookie on the response
func (cc *CookieCodec) Set(c *gin.Context, value string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(cc.name, value, int(cc.ttl.Seconds()), "/", cc.domain, cc.secure, true)
}

// Clear expires the session cookie
func (cc *CookieCodec) Clear(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(cc.name, "", -1, "/", cc.domain, cc.secure, true)
}
