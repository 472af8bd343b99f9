package handler

import (
	"errors"

	"github.com/bcilak/invitation-maker-magic-sub000/internal/models"
	"github.com/bcilak/invitation-maker-magic-sub000/internal/service"
	"github.com/bcilak/invitation-maker-magic-sub000/pkg/qrcode"
	"github.com/bcilak/invitation-maker-magic-sub000/pkg/utils"
	"github.com/gofiber/fiber/v2"
)

type CheckInHandler struct {
	checkinService *service.CheckInService
	validator      *utils.Validator
}

func NewCheckInHandler(checkinService *service.CheckInService, validator *utils.Validator) *CheckInHandler {
	return &CheckInHandler{checkinService: checkinService, validator: validator}
}

// ScanIn kapıda okutulan kodu giriş olarak işler.
func (h *CheckInHandler) ScanIn(c *fiber.Ctx) error {
	eventID, req, errResp := h.parseScan(c)
	if errResp != nil {
		return errResp(c)
	}

	rec, err := h.checkinService.CheckIn(req.QRData, eventID, req.Staff)
	if err != nil {
		return scanError(c, err)
	}
	return c.JSON(models.SuccessResponse(rec, "Giriş yapıldı"))
}

// ScanOut girişi yapılmış kodu çıkış olarak işler.
func (h *CheckInHandler) ScanOut(c *fiber.Ctx) error {
	eventID, req, errResp := h.parseScan(c)
	if errResp != nil {
		return errResp(c)
	}

	rec, err := h.checkinService.CheckOut(req.QRData, eventID, req.Staff)
	if err != nil {
		return scanError(c, err)
	}
	return c.JSON(models.SuccessResponse(rec, "Çıkış yapıldı"))
}

func (h *CheckInHandler) Invalidate(c *fiber.Ctx) error {
	id, err := parseID(c, "recordId")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Geçersiz kayıt ID"))
	}

	if err := h.checkinService.Invalidate(id); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse("Kod iptal edilemedi"))
	}
	return c.JSON(models.SuccessResponse(nil, "Kod iptal edildi"))
}

func (h *CheckInHandler) Stats(c *fiber.Ctx) error {
	eventID, err := parseID(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Geçersiz etkinlik ID"))
	}

	stats, err := h.checkinService.Stats(eventID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse("İstatistikler alınamadı"))
	}
	return c.JSON(models.SuccessResponse(stats, "İstatistikler getirildi"))
}

func (h *CheckInHandler) List(c *fiber.Ctx) error {
	eventID, err := parseID(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Geçersiz etkinlik ID"))
	}

	recs, err := h.checkinService.EventRecords(eventID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse("Kayıtlar alınamadı"))
	}
	return c.JSON(models.SuccessResponse(recs, "Check-in kayıtları listelendi"))
}

func (h *CheckInHandler) parseScan(c *fiber.Ctx) (uint, models.ScanRequest, func(*fiber.Ctx) error) {
	var req models.ScanRequest

	eventID, err := parseID(c, "id")
	if err != nil {
		return 0, req, func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Geçersiz etkinlik ID"))
		}
	}

	if err := c.BodyParser(&req); err != nil {
		return 0, req, func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Geçersiz istek gövdesi"))
		}
	}

	if err := h.validator.Struct(req); err != nil {
		fields := h.validator.FieldErrors(err)
		return 0, req, func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusBadRequest).JSON(models.FieldErrorResponse(fields))
		}
	}

	return eventID, req, nil
}

// scanError makine hatalarını kapı personelinin anlayacağı mesajlara çevirir.
func scanError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, qrcode.ErrInvalidPayload):
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Kod okunamadı"))
	case errors.Is(err, service.ErrCrossEvent):
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Kod bu etkinliğe ait değil"))
	case errors.Is(err, service.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(models.ErrorResponse("Kayıt bulunamadı"))
	case errors.Is(err, service.ErrAlreadyCheckedIn):
		return c.Status(fiber.StatusConflict).JSON(models.ErrorResponse("Giriş zaten yapılmış"))
	case errors.Is(err, service.ErrNotCheckedIn):
		return c.Status(fiber.StatusConflict).JSON(models.ErrorResponse("Önce giriş yapılmalı"))
	case errors.Is(err, service.ErrAlreadyCheckedOut):
		return c.Status(fiber.StatusConflict).JSON(models.ErrorResponse("Çıkış zaten yapılmış"))
	case errors.Is(err, service.ErrInvalidated):
		return c.Status(fiber.StatusGone).JSON(models.ErrorResponse("Kod iptal edilmiş"))
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse("İşlem tamamlanamadı"))
	}
}
