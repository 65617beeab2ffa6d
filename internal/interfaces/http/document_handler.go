package http

import (
	"path"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/jhoicas/Tributo-api/internal/application/dto"
	"github.com/jhoicas/Tributo-api/internal/application/ports"
)

// Tipos de sustento válidos para subir documentos.
var documentKinds = map[string]bool{
	"voucher":     true, // voucher bancario
	"contract":    true, // contrato de compraventa
	"origin_decl": true, // declaración jurada de procedencia
	"invoice":     true, // factura de proveedor
	"receipt":     true, // comprobante de gasto
}

// DocumentHandler sube y descarga los sustentos escaneados. Las referencias
// devueltas se adjuntan después a compras, transferencias y gastos.
type DocumentHandler struct {
	store ports.DocumentStore
}

// NewDocumentHandler construye el handler de sustentos.
func NewDocumentHandler(store ports.DocumentStore) *DocumentHandler {
	return &DocumentHandler{store: store}
}

// documentUploadResponse referencia estable del documento subido.
type documentUploadResponse struct {
	Ref string `json:"ref"`
}

// Upload godoc
// @Summary      Subir un sustento escaneado
// @Description  multipart/form-data con campos kind (voucher | contract | origin_decl | invoice | receipt) y file.
// @Tags         documents
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        kind  formData  string  true  "Tipo de sustento"
// @Param        file  formData  file    true  "Archivo escaneado"
// @Success      201   {object}  documentUploadResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/documents [post]
func (h *DocumentHandler) Upload(c *fiber.Ctx) error {
	kind := c.FormValue("kind")
	if !documentKinds[kind] {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "kind inválido: voucher, contract, origin_decl, invoice o receipt"})
	}
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "falta el archivo 'file'"})
	}

	f, err := fileHeader.Open()
	if err != nil {
		return respondError(c, err)
	}
	defer f.Close()

	contentType := fileHeader.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	key := path.Join(kind, uuid.New().String()+path.Ext(fileHeader.Filename))
	ref, err := h.store.Put(c.Context(), key, contentType, f)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(documentUploadResponse{Ref: ref})
}

// Download godoc
// @Summary      Descargar un sustento por referencia
// @Description  Si el backend soporta URLs firmadas redirige a una; de lo contrario sirve el archivo directo.
// @Tags         documents
// @Produce      application/octet-stream
// @Security     BearerAuth
// @Param        ref  path  string  true  "Referencia del documento"
// @Success      200  {file}  file
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/documents/{ref} [get]
func (h *DocumentHandler) Download(c *fiber.Ctx) error {
	ref := c.Params("*")
	if ref == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "referencia vacía"})
	}

	// URL firmada de 15 minutos si el backend la ofrece (S3).
	if url, err := h.store.SignedURL(c.Context(), ref, 900); err == nil && url != "" {
		return c.Redirect(url, fiber.StatusTemporaryRedirect)
	}

	body, contentType, err := h.store.Get(c.Context(), ref)
	if err != nil {
		return respondError(c, err)
	}
	// fasthttp cierra el stream al terminar de enviarlo (implementa io.Closer).
	c.Set(fiber.HeaderContentType, contentType)
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+path.Base(ref)+`"`)
	return c.SendStream(body)
}
