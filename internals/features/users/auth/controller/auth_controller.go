// internals/features/users/auth/controller/auth_controller.go
package controller

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"perpusku_backend/internals/configs"
	dto "perpusku_backend/internals/features/users/auth/dto"
	model "perpusku_backend/internals/features/users/auth/model"
	helper "perpusku_backend/internals/helpers"
)

type AuthController struct {
	DB *gorm.DB
}

var validate = validator.New()

const tokenTTL = 24 * time.Hour

// =========================================================
// LOGIN - POST /api/login
// =========================================================
func (h *AuthController) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	req.Normalize()
	if err := validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var lib model.LibrarianModel
	if err := h.DB.WithContext(c.UserContext()).First(&lib, "librarian_email = ?", req.Email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Email atau password salah")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memproses login")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(lib.LibrarianPassword), []byte(req.Password)); err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Email atau password salah")
	}

	if configs.JWTSecret == "" {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Missing JWT Secret")
	}

	expiresAt := time.Now().Add(tokenTTL)
	claims := jwt.RegisteredClaims{
		Subject:   lib.LibrarianID.String(),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(configs.JWTSecret))
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat token")
	}

	return helper.JsonOK(c, "Login berhasil", dto.LoginResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		Librarian: dto.ToLibrarianResponse(&lib),
	})
}
