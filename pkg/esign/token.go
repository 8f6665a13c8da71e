package esign

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

// ErrInvalidToken reports a signing token that failed verification.
var ErrInvalidToken = errors.New("esign: invalid signing token")

// TokenClaims binds a signing link to one document. The token is handed to
// the signer (typically embedded in a signing URL) and verified before any
// capture is accepted, so a link for one document can never sign another.
type TokenClaims struct {
	DocumentID string `json:"documentId"`
	TemplateID string `json:"templateId"`
	SessionID  string `json:"sessionId,omitempty"`
	jwt.RegisteredClaims
}

// TokenIssuer mints and verifies HS256 signing-session tokens.
type TokenIssuer struct {
	secret []byte
	issuer string
	ttl    time.Duration
	now    func() time.Time
}

// NewTokenIssuer creates an issuer. A non-positive ttl falls back to the
// service's DefaultExpiry so tokens never outlive the signing request by
// default.
func NewTokenIssuer(secret []byte, issuer string, ttl time.Duration) (*TokenIssuer, error) {
	if len(secret) == 0 {
		return nil, fmt.Errorf("esign: token secret is required")
	}
	if ttl <= 0 {
		ttl = DefaultExpiry
	}
	return &TokenIssuer{
		secret: secret,
		issuer: issuer,
		ttl:    ttl,
		now:    time.Now,
	}, nil
}

// Issue mints a token for the signing request.
func (t *TokenIssuer) Issue(doc SignedDocument) (string, error) {
	now := t.now()
	claims := TokenClaims{
		DocumentID: doc.ID,
		TemplateID: doc.TemplateID,
		SessionID:  doc.SessionID,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    t.issuer,
			Subject:   doc.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(t.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(t.secret)
	if err != nil {
		return "", fmt.Errorf("esign: sign token: %w", err)
	}
	return signed, nil
}

// Verify parses a token and returns its claims. Expired, malformed, or
// wrongly signed tokens all surface as ErrInvalidToken.
func (t *TokenIssuer) Verify(raw string) (TokenClaims, error) {
	var claims TokenClaims
	token, err := jwt.ParseWithClaims(raw, &claims, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
		}
		return t.secret, nil
	})
	if err != nil || !token.Valid {
		return TokenClaims{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if claims.DocumentID == "" {
		return TokenClaims{}, fmt.Errorf("%w: missing document id", ErrInvalidToken)
	}
	return claims, nil
}
