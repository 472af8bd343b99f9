package handler

import (
	"errors"
	"fmt"
	"time"

	"github.com/bcilak/invitation-maker-magic-sub000/internal/models"
	"github.com/bcilak/invitation-maker-magic-sub000/internal/service"
	"github.com/bcilak/invitation-maker-magic-sub000/pkg/utils"
	"github.com/gofiber/fiber/v2"
)

type RegistrationHandler struct {
	regService *service.RegistrationService
	validator  *utils.Validator
}

func NewRegistrationHandler(regService *service.RegistrationService, validator *utils.Validator) *RegistrationHandler {
	return &RegistrationHandler{regService: regService, validator: validator}
}

// Register kamuya açık kayıt formunu işler. Doğrulama bütün alanlar için
// tek seferde çalışır; hatalar alan adıyla döner.
func (h *RegistrationHandler) Register(c *fiber.Ctx) error {
	url := c.Params("url")

	var req models.RegistrationRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Geçersiz istek gövdesi"))
	}

	if err := h.validator.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.FieldErrorResponse(h.validator.FieldErrors(err)))
	}

	reg, err := h.regService.Register(url, req, c.IP())
	if err != nil {
		switch {
		case errors.Is(err, service.ErrRateLimited):
			return c.Status(fiber.StatusTooManyRequests).JSON(models.ErrorResponse("Çok fazla istek, lütfen bekleyin"))
		case errors.Is(err, service.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(models.ErrorResponse("Etkinlik bulunamadı"))
		case errors.Is(err, service.ErrDuplicateEmail):
			return c.Status(fiber.StatusConflict).JSON(models.ErrorResponse("Bu e-posta ile zaten kayıt yapılmış"))
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse("Kayıt oluşturulamadı"))
		}
	}

	return c.Status(fiber.StatusCreated).JSON(models.SuccessResponse(reg, "Kaydınız alındı"))
}

func (h *RegistrationHandler) GetEventRegistrations(c *fiber.Ctx) error {
	eventID, err := parseID(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Geçersiz etkinlik ID"))
	}

	regs, err := h.regService.GetEventRegistrations(eventID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse("Kayıtlar alınamadı"))
	}
	return c.JSON(models.SuccessResponse(regs, "Kayıtlar listelendi"))
}

func (h *RegistrationHandler) DeleteRegistration(c *fiber.Ctx) error {
	id, err := parseID(c, "registrationId")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Geçersiz kayıt ID"))
	}

	if err := h.regService.DeleteRegistration(id); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(models.ErrorResponse("Kayıt bulunamadı"))
		}
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse("Kayıt silinemedi"))
	}
	return c.JSON(models.SuccessResponse(nil, "Kayıt silindi"))
}

// ExportCSV katılımcı listesini Excel uyumlu CSV dosyası olarak indirir.
func (h *RegistrationHandler) ExportCSV(c *fiber.Ctx) error {
	eventID, err := parseID(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Geçersiz etkinlik ID"))
	}

	data, err := h.regService.ExportCSV(eventID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse("Dışa aktarım başarısız"))
	}

	filename := fmt.Sprintf("kayitlar-%d-%s.csv", eventID, time.Now().Format("20060102"))
	c.Set("Content-Type", "text/csv; charset=utf-8")
	c.Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	return c.Send(data)
}
