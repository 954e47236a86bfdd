package handler

import (
	"encoding/json"
	"time"

	"github.com/gofiber/fiber/v2"

	"gestion-talento/internal/domain"
	"gestion-talento/internal/middleware"
	"gestion-talento/internal/service/certificate"
)

type CertificateHandler struct {
	certService certificate.Service
}

func NewCertificateHandler(certService certificate.Service) *CertificateHandler {
	return &CertificateHandler{certService: certService}
}

const maxCertificateSize = 10 << 20 // 10 MiB

// Upload accepts a multipart form with a "file" part and a "meta" part
// holding the JSON CreateCertificateInput.
func (h *CertificateHandler) Upload(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return middleware.BadRequest("file is required")
	}
	if fileHeader.Size > maxCertificateSize {
		return middleware.BadRequest("file exceeds the 10 MiB limit")
	}

	var input domain.CreateCertificateInput
	if meta := c.FormValue("meta"); meta != "" {
		if err := json.Unmarshal([]byte(meta), &input); err != nil {
			return middleware.BadRequest("Invalid meta JSON")
		}
	}
	if input.Name == "" {
		input.Name = fileHeader.Filename
	}
	if input.ExpiresAt != nil && input.ExpiresAt.Before(time.Now()) {
		return middleware.BadRequest("certificate is already expired")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return middleware.BadRequest("cannot read file")
	}
	defer file.Close()

	mimeType := fileHeader.Header.Get("Content-Type")
	if mimeType == "" {
		mimeType = "application/octet-stream"
	}

	cert, err := h.certService.Upload(c.Context(), middleware.CurrentUserID(c), input, fileHeader.Filename, fileHeader.Size, mimeType, file)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(cert)
}

func (h *CertificateHandler) Get(c *fiber.Ctx) error {
	certID, err := parseUUIDParam(c, "certId")
	if err != nil {
		return err
	}

	cert, err := h.certService.Get(c.Context(), middleware.CurrentUserID(c), certID)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(cert)
}

func (h *CertificateHandler) List(c *fiber.Ctx) error {
	certs, err := h.certService.List(c.Context(), middleware.CurrentUserID(c))
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"data": certs})
}

func (h *CertificateHandler) Delete(c *fiber.Ctx) error {
	certID, err := parseUUIDParam(c, "certId")
	if err != nil {
		return err
	}

	if err := h.certService.Delete(c.Context(), middleware.CurrentUserID(c), certID); err != nil {
		return err
	}

	return c.SendStatus(fiber.StatusNoContent)
}
