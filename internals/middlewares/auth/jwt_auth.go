package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

// Locals keys hydrated by AuthJWT.
const (
	LocUserID        = "user_id"
	LocRole          = "role"
	LocConsultancyID = "consultancy_id"
	LocAgentID       = "agent_id"
)

type AuthJWTOpts struct {
	Secret              string
	AllowCookieFallback bool // use the access_token cookie when there is no Bearer header
}

func AuthJWT(o AuthJWTOpts) fiber.Handler {
	secret := strings.TrimSpace(o.Secret)
	if secret == "" {
		panic("AuthJWT: Secret is required")
	}

	return func(c *fiber.Ctx) error {
		// 1) Token source: Authorization: Bearer xxx (or cookie when allowed)
		raw := ""
		if authz := strings.TrimSpace(c.Get(fiber.HeaderAuthorization)); strings.HasPrefix(strings.ToLower(authz), "bearer ") {
			raw = strings.TrimSpace(authz[7:])
		} else if o.AllowCookieFallback {
			raw = strings.TrimSpace(c.Cookies("access_token"))
		}
		if raw == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized")
		}

		// 2) Parse + verify algorithm
		tok, err := jwt.Parse(raw, func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fiber.NewError(fiber.StatusUnauthorized, "Invalid signing method")
			}
			return []byte(secret), nil
		})
		if err != nil || !tok.Valid {
			return fiber.NewError(fiber.StatusUnauthorized, "Invalid token")
		}

		claims, ok := tok.Claims.(jwt.MapClaims)
		if !ok {
			return fiber.NewError(fiber.StatusUnauthorized, "Invalid token claims")
		}
		c.Locals("jwt_claims", claims)

		// user_id: id/sub/user_id in order of preference, must be a UUID
		uid := firstStrClaim(claims, "id", "sub", "user_id")
		if uid == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "Token has no subject")
		}
		if _, err := uuid.Parse(uid); err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "Invalid subject")
		}
		c.Locals(LocUserID, uid)

		if role := strClaim(claims, "role"); role != "" {
			c.Locals(LocRole, strings.ToLower(role))
		}
		if cid := strClaim(claims, "consultancy_id"); cid != "" {
			c.Locals(LocConsultancyID, cid)
		}
		if aid := strClaim(claims, "agent_id"); aid != "" {
			c.Locals(LocAgentID, aid)
		}

		return c.Next()
	}
}

func strClaim(m jwt.MapClaims, key string) string {
	if v, ok := m[key]; ok {
		if s, ok := v.(string); ok {
			return strings.TrimSpace(s)
		}
	}
	return ""
}

func firstStrClaim(m jwt.MapClaims, keys ...string) string {
	for _, k := range keys {
		if s := strClaim(m, k); s != "" {
			return s
		}
	}
	return ""
}

// UserID reads the authenticated caller id set by AuthJWT.
func UserID(c *fiber.Ctx) (uuid.UUID, error) {
	s, _ := c.Locals(LocUserID).(string)
	id, err := uuid.Parse(strings.TrimSpace(s))
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "Unauthorized")
	}
	return id, nil
}

// Role reads the caller role set by AuthJWT ("" when absent).
func Role(c *fiber.Ctx) string {
	s, _ := c.Locals(LocRole).(string)
	return strings.ToLower(strings.TrimSpace(s))
}

// ConsultancyID reads the caller's consultancy scope, when present.
func ConsultancyID(c *fiber.Ctx) (uuid.UUID, bool) {
	s, _ := c.Locals(LocConsultancyID).(string)
	id, err := uuid.Parse(strings.TrimSpace(s))
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}

// AgentID reads the caller's agent scope, when present.
func AgentID(c *fiber.Ctx) (uuid.UUID, bool) {
	s, _ := c.Locals(LocAgentID).(string)
	id, err := uuid.Parse(strings.TrimSpace(s))
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}
