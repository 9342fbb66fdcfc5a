package token

import (
	stderrors "errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/rafabene/legalpro-backend/internal/domain/entities"
	"github.com/rafabene/legalpro-backend/internal/domain/errors"
	"github.com/rafabene/legalpro-backend/internal/domain/ports"
)

// claims é o payload assinado: {id, email, role}
type claims struct {
	UserID uint   `json:"id"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// JWTManager implementa ports.TokenManager com HS256
type JWTManager struct {
	secret []byte
	expiry time.Duration
}

// NewJWTManager cria um novo JWTManager
func NewJWTManager(secret string, expiry time.Duration) ports.TokenManager {
	return &JWTManager{
		secret: []byte(secret),
		expiry: expiry,
	}
}

// Issue emite um token assinado carregando o role armazenado do usuário
func (m *JWTManager) Issue(user *entities.User) (string, error) {
	now := time.Now()

	c := &claims{
		UserID: user.ID,
		Email:  user.Email.String(),
		Role:   string(user.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatUint(uint64(user.ID), 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.expiry)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, c)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// Verify valida assinatura e expiração e produz o identity claim.
// Token expirado e token malformado são erros distintos.
func (m *JWTManager) Verify(tokenString string) (entities.Claim, error) {
	var c claims

	token, err := jwt.ParseWithClaims(tokenString, &c, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil {
		if stderrors.Is(err, jwt.ErrTokenExpired) {
			return entities.Claim{}, errors.ErrCredentialExpired
		}
		return entities.Claim{}, errors.ErrInvalidCredential
	}

	if !token.Valid {
		return entities.Claim{}, errors.ErrInvalidCredential
	}

	return entities.Claim{
		UserID: c.UserID,
		Email:  c.Email,
		Role:   entities.NormalizeRole(c.Role),
	}, nil
}
