package security

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Token subject types.
const (
	TypeCompany = "company"
	TypeAdmin   = "admin"
)

// Claims is the bearer token payload: record id, email and subject type.
type Claims struct {
	jwt.RegisteredClaims
	UserID string `json:"id"`
	Email  string `json:"email"`
	Type   string `json:"type"` // company | admin
}

type JWTManager struct {
	signingKey []byte
	companyTTL time.Duration
	adminTTL   time.Duration
}

func NewJWTManager(signingKey string, companyTTL, adminTTL time.Duration) *JWTManager {
	return &JWTManager{
		signingKey: []byte(signingKey),
		companyTTL: companyTTL,
		adminTTL:   adminTTL,
	}
}

// Issue signs an HS256 token for the given subject; TTL depends on the type.
func (m *JWTManager) Issue(subjectType, userID, email string) (string, error) {
	if subjectType != TypeCompany && subjectType != TypeAdmin {
		return "", fmt.Errorf("unknown subject type %q", subjectType)
	}
	ttl := m.companyTTL
	if subjectType == TypeAdmin {
		ttl = m.adminTTL
	}
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		UserID: userID,
		Email:  email,
		Type:   subjectType,
	}
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return tok.SignedString(m.signingKey)
}

// Parse verifies signature and expiry and returns the claims.
func (m *JWTManager) Parse(tokenStr string) (*Claims, error) {
	tok, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(token *jwt.Token) (any, error) {
		if token.Method != jwt.SigningMethodHS256 {
			return nil, fmt.Errorf("unexpected signing method")
		}
		return m.signingKey, nil
	})
	if err != nil {
		return nil, err
	}
	claims, ok := tok.Claims.(*Claims)
	if !ok || !tok.Valid {
		return nil, fmt.Errorf("invalid token")
	}
	if claims.UserID == "" {
		claims.UserID = claims.Subject
	}
	return claims, nil
}
