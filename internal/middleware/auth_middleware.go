package middleware

import (
	"strings"

	"github.com/bcilak/invitation-maker-magic-sub000/internal/models"
	"github.com/bcilak/invitation-maker-magic-sub000/internal/repository"
	jwtPkg "github.com/bcilak/invitation-maker-magic-sub000/pkg/jwt"
	"github.com/gofiber/fiber/v2"
)

// AuthMiddleware Bearer token'ı doğrular, ardından yönetici kaydının halen
// var ve aktif olduğunu denetler. Token geçerli olsa bile pasif hesap
// yetkilendirilmez.
func AuthMiddleware(adminRepo *repository.AdminRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(models.ErrorResponse("Authorization başlığı gerekli"))
		}

		if !strings.HasPrefix(authHeader, "Bearer ") {
			return c.Status(fiber.StatusUnauthorized).JSON(models.ErrorResponse("Geçersiz authorization başlığı"))
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		claims, err := jwtPkg.ValidateToken(tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(models.ErrorResponse("Geçersiz token"))
		}

		adminIDFloat, ok := claims["admin_id"].(float64)
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(models.ErrorResponse("Geçersiz token"))
		}
		adminID := uint(adminIDFloat)

		admin, err := adminRepo.GetByID(adminID)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(models.ErrorResponse("Hesap bulunamadı"))
		}
		if !admin.IsActive {
			return c.Status(fiber.StatusForbidden).JSON(models.ErrorResponse("Hesap devre dışı"))
		}

		c.Locals("adminID", admin.ID)
		c.Locals("adminEmail", admin.Email)

		return c.Next()
	}
}
