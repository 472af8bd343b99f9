package handler

import (
	"errors"
	"strconv"

	"github.com/bcilak/invitation-maker-magic-sub000/internal/models"
	"github.com/bcilak/invitation-maker-magic-sub000/internal/service"
	"github.com/bcilak/invitation-maker-magic-sub000/pkg/qrcode"
	"github.com/bcilak/invitation-maker-magic-sub000/pkg/utils"
	"github.com/gofiber/fiber/v2"
)

type EventHandler struct {
	eventService   *service.EventService
	sectionService *service.SectionService
	qrService      *qrcode.QRService
	validator      *utils.Validator
}

func NewEventHandler(
	eventService *service.EventService,
	sectionService *service.SectionService,
	qrService *qrcode.QRService,
	validator *utils.Validator,
) *EventHandler {
	return &EventHandler{
		eventService:   eventService,
		sectionService: sectionService,
		qrService:      qrService,
		validator:      validator,
	}
}

func (h *EventHandler) CreateEvent(c *fiber.Ctx) error {
	var req models.EventRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Geçersiz istek gövdesi"))
	}

	if err := h.validator.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.FieldErrorResponse(h.validator.FieldErrors(err)))
	}

	event, err := h.eventService.CreateEvent(req)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse("Etkinlik oluşturulamadı"))
	}

	return c.Status(fiber.StatusCreated).JSON(models.SuccessResponse(event, "Etkinlik oluşturuldu"))
}

func (h *EventHandler) GetAllEvents(c *fiber.Ctx) error {
	events, err := h.eventService.GetAllEvents()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse("Etkinlikler alınamadı"))
	}
	return c.JSON(models.SuccessResponse(events, "Etkinlikler listelendi"))
}

func (h *EventHandler) GetEvent(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Geçersiz etkinlik ID"))
	}

	event, err := h.eventService.GetEvent(id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(models.ErrorResponse("Etkinlik bulunamadı"))
		}
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse("Etkinlik alınamadı"))
	}
	return c.JSON(models.SuccessResponse(event, "Etkinlik getirildi"))
}

func (h *EventHandler) UpdateEvent(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Geçersiz etkinlik ID"))
	}

	var req models.UpdateEventRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Geçersiz istek gövdesi"))
	}

	event, err := h.eventService.UpdateEvent(id, req)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(models.ErrorResponse("Etkinlik bulunamadı"))
		}
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse("Etkinlik güncellenemedi"))
	}
	return c.JSON(models.SuccessResponse(event, "Etkinlik güncellendi"))
}

func (h *EventHandler) DeleteEvent(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Geçersiz etkinlik ID"))
	}

	if err := h.eventService.DeleteEvent(id); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(models.ErrorResponse("Etkinlik bulunamadı"))
		}
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse("Etkinlik silinemedi"))
	}
	return c.JSON(models.SuccessResponse(nil, "Etkinlik silindi"))
}

// GetLanding yayınlanmış etkinliğin kamuya açık sayfa verisini döner:
// etkinlik alanları ve türetilmiş stilleriyle görünür bölümler.
func (h *EventHandler) GetLanding(c *fiber.Ctx) error {
	url := c.Params("url")

	event, err := h.eventService.GetEventByURL(url)
	if err != nil || !event.IsPublished {
		return c.Status(fiber.StatusNotFound).JSON(models.ErrorResponse("Etkinlik bulunamadı"))
	}

	sections, err := h.sectionService.LandingSections(event.ID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse("Sayfa verisi alınamadı"))
	}

	return c.JSON(models.SuccessResponse(fiber.Map{
		"event":    event,
		"sections": sections,
	}, "Etkinlik sayfası getirildi"))
}

// GetEventQR etkinlik sayfası adresini PNG QR olarak döner.
func (h *EventHandler) GetEventQR(c *fiber.Ctx) error {
	url := c.Query("url")
	if url == "" {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("url parametresi gerekli"))
	}

	size := c.QueryInt("size", 512)
	if size < 64 || size > 2048 {
		size = 512
	}

	png, err := h.qrService.GenerateEventQR(url, size)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse("QR üretilemedi"))
	}

	c.Set("Content-Type", "image/png")
	return c.Send(png)
}

func parseID(c *fiber.Ctx, param string) (uint, error) {
	id, err := strconv.ParseUint(c.Params(param), 10, 32)
	if err != nil || id == 0 {
		return 0, fiber.ErrBadRequest
	}
	return uint(id), nil
}
