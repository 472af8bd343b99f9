package handler

import (
	"github.com/bcilak/invitation-maker-magic-sub000/internal/models"
	"github.com/bcilak/invitation-maker-magic-sub000/internal/service"
	"github.com/bcilak/invitation-maker-magic-sub000/pkg/utils"
	"github.com/gofiber/fiber/v2"
)

type SectionHandler struct {
	sectionService *service.SectionService
	validator      *utils.Validator
}

func NewSectionHandler(sectionService *service.SectionService, validator *utils.Validator) *SectionHandler {
	return &SectionHandler{sectionService: sectionService, validator: validator}
}

func (h *SectionHandler) GetSections(c *fiber.Ctx) error {
	eventID, err := parseID(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Geçersiz etkinlik ID"))
	}

	sections, err := h.sectionService.GetEventSections(eventID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse("Bölümler alınamadı"))
	}
	return c.JSON(models.SuccessResponse(sections, "Bölümler listelendi"))
}

// SaveSection bölüm ayarlarını aynı anahtar üzerine yazar; yoksa oluşturur.
func (h *SectionHandler) SaveSection(c *fiber.Ctx) error {
	eventID, err := parseID(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Geçersiz etkinlik ID"))
	}

	var req models.PageSectionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Geçersiz istek gövdesi"))
	}

	if err := h.validator.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.FieldErrorResponse(h.validator.FieldErrors(err)))
	}

	section, err := h.sectionService.SaveSection(eventID, req)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse("Bölüm kaydedilemedi"))
	}
	return c.JSON(models.SuccessResponse(section, "Bölüm kaydedildi"))
}

func (h *SectionHandler) DeleteSection(c *fiber.Ctx) error {
	eventID, err := parseID(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Geçersiz etkinlik ID"))
	}
	key := c.Params("key")
	if key == "" {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Bölüm anahtarı gerekli"))
	}

	if err := h.sectionService.DeleteSection(eventID, key); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse("Bölüm silinemedi"))
	}
	return c.JSON(models.SuccessResponse(nil, "Bölüm silindi"))
}
