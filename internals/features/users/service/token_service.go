// file: internals/features/users/service/token_service.go
package service

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"

	"edubridge_backend/internals/configs"
	model "edubridge_backend/internals/features/users/model"
)

const (
	AccessTokenTTL  = 24 * time.Hour
	RefreshTokenTTL = 7 * 24 * time.Hour
)

func claimsFor(op model.OperatorModel, expiresAt time.Time) jwt.MapClaims {
	claims := jwt.MapClaims{
		"id":    op.OperatorID.String(),
		"role":  op.OperatorRole,
		"email": op.OperatorEmail,
		"iat":   time.Now().Unix(),
		"exp":   expiresAt.Unix(),
	}
	if op.OperatorConsultancyID != nil {
		claims["consultancy_id"] = op.OperatorConsultancyID.String()
	}
	if op.OperatorAgentID != nil {
		claims["agent_id"] = op.OperatorAgentID.String()
	}
	return claims
}

// IssueAccessToken signs a short-lived token for the middleware to verify.
func IssueAccessToken(op model.OperatorModel) (string, time.Time, error) {
	expiresAt := time.Now().Add(AccessTokenTTL)
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claimsFor(op, expiresAt))
	signed, err := tok.SignedString([]byte(configs.JWTSecret))
	return signed, expiresAt, err
}

// IssueRefreshToken signs a longer-lived token against the refresh secret.
func IssueRefreshToken(op model.OperatorModel) (string, error) {
	expiresAt := time.Now().Add(RefreshTokenTTL)
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claimsFor(op, expiresAt))
	return tok.SignedString([]byte(configs.JWTRefreshSecret))
}

// ParseRefreshToken verifies a refresh token and returns the operator id claim.
func ParseRefreshToken(raw string) (string, error) {
	tok, err := jwt.Parse(raw, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fiber.NewError(fiber.StatusUnauthorized, "Invalid signing method")
		}
		return []byte(configs.JWTRefreshSecret), nil
	})
	if err != nil || !tok.Valid {
		return "", fiber.NewError(fiber.StatusUnauthorized, "Invalid refresh token")
	}
	claims, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return "", fiber.NewError(fiber.StatusUnauthorized, "Invalid token claims")
	}
	id, _ := claims["id"].(string)
	if id == "" {
		return "", fiber.NewError(fiber.StatusUnauthorized, "Token has no subject")
	}
	return id, nil
}
