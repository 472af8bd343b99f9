package handler

import (
	"encoding/json"
	"errors"
	"image"
	_ "image/jpeg"
	_ "image/png"

	"github.com/bcilak/invitation-maker-magic-sub000/internal/models"
	"github.com/bcilak/invitation-maker-magic-sub000/internal/service"
	"github.com/bcilak/invitation-maker-magic-sub000/pkg/poster"
	"github.com/bcilak/invitation-maker-magic-sub000/pkg/utils"
	"github.com/gofiber/fiber/v2"
)

type InvitationHandler struct {
	invitationService *service.InvitationService
	validator         *utils.Validator
}

func NewInvitationHandler(invitationService *service.InvitationService, validator *utils.Validator) *InvitationHandler {
	return &InvitationHandler{invitationService: invitationService, validator: validator}
}

// Options davetiye editörünün seçeceği şablon ve boyut listelerini döner.
func (h *InvitationHandler) Options(c *fiber.Ctx) error {
	return c.JSON(models.SuccessResponse(fiber.Map{
		"templates": poster.Templates(),
		"sizes":     poster.SizePresets(),
	}, "Seçenekler getirildi"))
}

// Generate gelişmiş parametrelerle etkinlik afişi üretir. İstek JSON gövde
// ya da multipart olabilir; multipart'ta parametreler "payload" alanında,
// arka plan görseli "background" dosyasında gelir.
func (h *InvitationHandler) Generate(c *fiber.Ctx) error {
	eventID, err := parseID(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Geçersiz etkinlik ID"))
	}

	var req models.InvitationRequest
	var background image.Image

	if form, fErr := c.MultipartForm(); fErr == nil && form != nil {
		if payloads := form.Value["payload"]; len(payloads) > 0 {
			if err := json.Unmarshal([]byte(payloads[0]), &req); err != nil {
				return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Geçersiz payload alanı"))
			}
		}
		if files := form.File["background"]; len(files) > 0 {
			f, err := files[0].Open()
			if err != nil {
				return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Arka plan dosyası açılamadı"))
			}
			defer f.Close()
			img, _, dErr := image.Decode(f)
			if dErr != nil {
				return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Arka plan görseli çözümlenemedi"))
			}
			background = img
		}
	} else if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Geçersiz istek gövdesi"))
	}

	if err := h.validator.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.FieldErrorResponse(h.validator.FieldErrors(err)))
	}

	result, err := h.invitationService.Generate(eventID, req, background)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(models.ErrorResponse("Etkinlik bulunamadı"))
		}
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse("Davetiye üretilemedi"))
	}

	if result.URL != "" {
		return c.JSON(models.SuccessResponse(result, "Davetiye üretildi ve yüklendi"))
	}

	c.Set("Content-Type", result.ContentType)
	return c.Send(result.Bytes)
}

// Personalized kayıt sahibine özel QR'lı davetiyeyi üretip e-posta ile yollar.
func (h *InvitationHandler) Personalized(c *fiber.Ctx) error {
	registrationID, err := parseID(c, "registrationId")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Geçersiz kayıt ID"))
	}

	result, err := h.invitationService.Personalized(registrationID)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(models.ErrorResponse("Kayıt bulunamadı"))
		}
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse("Davetiye üretilemedi"))
	}

	return c.JSON(models.SuccessResponse(result, "Kişisel davetiye gönderildi"))
}
