// internals/middlewares/auth/auth_middleware.go
package auth

import (
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"

	"perpusku_backend/internals/configs"
)

// AuthMiddleware memastikan request membawa bearer token pustakawan yang valid.
// Dipasang sebelum semua route /api/a agar business logic bebas dari urusan auth.
func AuthMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString, err := extractBearerToken(c)
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, err.Error())
		}

		secretKey := configs.JWTSecret
		if secretKey == "" {
			log.Println("[ERROR] JWT_SECRET kosong")
			return fiber.NewError(fiber.StatusInternalServerError, "Missing JWT Secret")
		}

		claims := jwt.RegisteredClaims{}
		if _, err := jwt.ParseWithClaims(tokenString, &claims, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return []byte(secretKey), nil
		}); err != nil {
			log.Println("[ERROR] Gagal parse token:", err)
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Token invalid or expired")
		}

		if claims.Subject == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Invalid or missing librarian ID")
		}
		c.Locals("librarian_id", claims.Subject)

		return c.Next()
	}
}

func extractBearerToken(c *fiber.Ctx) (string, error) {
	authHeader := strings.TrimSpace(c.Get("Authorization"))
	if authHeader == "" {
		return "", fiber.NewError(fiber.StatusUnauthorized, "Authorization header kosong")
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || strings.TrimSpace(parts[1]) == "" {
		return "", fiber.NewError(fiber.StatusUnauthorized, "Format Authorization harus 'Bearer <token>'")
	}
	return strings.TrimSpace(parts[1]), nil
}
