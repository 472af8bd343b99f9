package handler

import (
	"errors"

	"github.com/bcilak/invitation-maker-magic-sub000/internal/models"
	"github.com/bcilak/invitation-maker-magic-sub000/internal/service"
	"github.com/bcilak/invitation-maker-magic-sub000/pkg/utils"
	"github.com/gofiber/fiber/v2"
)

type AuthHandler struct {
	authService *service.AuthService
	validator   *utils.Validator
}

func NewAuthHandler(authService *service.AuthService, validator *utils.Validator) *AuthHandler {
	return &AuthHandler{authService: authService, validator: validator}
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req models.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Geçersiz istek gövdesi"))
	}

	if err := h.validator.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.FieldErrorResponse(h.validator.FieldErrors(err)))
	}

	resp, err := h.authService.Login(req, c.IP())
	if err != nil {
		switch {
		case errors.Is(err, service.ErrRateLimited):
			return c.Status(fiber.StatusTooManyRequests).JSON(models.ErrorResponse("Çok fazla deneme, lütfen bekleyin"))
		case errors.Is(err, service.ErrInvalidCredential):
			return c.Status(fiber.StatusUnauthorized).JSON(models.ErrorResponse("E-posta veya şifre hatalı"))
		case errors.Is(err, service.ErrInactiveAdmin):
			return c.Status(fiber.StatusForbidden).JSON(models.ErrorResponse("Hesap devre dışı"))
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse("Giriş yapılamadı"))
		}
	}

	return c.JSON(models.SuccessResponse(resp, "Giriş başarılı"))
}
