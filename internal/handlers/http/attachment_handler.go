package http

import (
	"io"
	"mime"
	"net/http"
	"path/filepath"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/rafabene/legalpro-backend/internal/domain/entities"
	"github.com/rafabene/legalpro-backend/internal/domain/errors"
	"github.com/rafabene/legalpro-backend/internal/handlers/dto"
	"github.com/rafabene/legalpro-backend/internal/handlers/middleware"
	"github.com/rafabene/legalpro-backend/internal/services"
)

// AttachmentHandler lida com upload, listagem, download e remoção de
// alvarás, arquivos de negócio e arquivos de resultado.
type AttachmentHandler struct {
	attachmentService *services.AttachmentService
}

// NewAttachmentHandler cria um novo AttachmentHandler
func NewAttachmentHandler(attachmentService *services.AttachmentService) *AttachmentHandler {
	return &AttachmentHandler{attachmentService: attachmentService}
}

// UploadPermit envia um alvará para um negócio
func (h *AttachmentHandler) UploadPermit(c *gin.Context) {
	h.uploadForBusiness(c, entities.KindPermit)
}

// ListPermits lista os alvarás de um negócio
func (h *AttachmentHandler) ListPermits(c *gin.Context) {
	h.listForBusiness(c, entities.KindPermit)
}

// DownloadPermit baixa um alvará
func (h *AttachmentHandler) DownloadPermit(c *gin.Context) {
	h.downloadForBusiness(c, entities.KindPermit)
}

// DeletePermit remove um alvará
func (h *AttachmentHandler) DeletePermit(c *gin.Context) {
	h.deleteForBusiness(c, entities.KindPermit)
}

// UploadBusinessFile envia um arquivo de negócio
func (h *AttachmentHandler) UploadBusinessFile(c *gin.Context) {
	h.uploadForBusiness(c, entities.KindBusinessFile)
}

// ListBusinessFiles lista os arquivos de um negócio
func (h *AttachmentHandler) ListBusinessFiles(c *gin.Context) {
	h.listForBusiness(c, entities.KindBusinessFile)
}

// DownloadBusinessFile baixa um arquivo de negócio
func (h *AttachmentHandler) DownloadBusinessFile(c *gin.Context) {
	h.downloadForBusiness(c, entities.KindBusinessFile)
}

// DeleteBusinessFile remove um arquivo de negócio
func (h *AttachmentHandler) DeleteBusinessFile(c *gin.Context) {
	h.deleteForBusiness(c, entities.KindBusinessFile)
}

// UploadResult envia um arquivo de resultado de consulta
func (h *AttachmentHandler) UploadResult(c *gin.Context) {
	claim := middleware.CurrentClaim(c)

	consultationID, err := pathID(c, "id")
	if err != nil {
		dto.Fail(c, err)
		return
	}

	upload, cleanup, err := formUpload(c)
	if err != nil {
		dto.Fail(c, err)
		return
	}
	defer cleanup()

	attachment, err := h.attachmentService.UploadResult(c.Request.Context(), claim, consultationID, upload)
	if err != nil {
		dto.Fail(c, err)
		return
	}

	dto.Created(c, "attachment.uploaded", dto.ToAttachmentResponse(attachment))
}

// ListResults lista os arquivos de resultado de uma consulta
func (h *AttachmentHandler) ListResults(c *gin.Context) {
	claim := middleware.CurrentClaim(c)

	consultationID, err := pathID(c, "id")
	if err != nil {
		dto.Fail(c, err)
		return
	}

	attachments, err := h.attachmentService.ListResults(c.Request.Context(), claim, consultationID)
	if err != nil {
		dto.Fail(c, err)
		return
	}

	dto.OK(c, "attachment.listed", dto.ToAttachmentResponses(attachments))
}

// DownloadResult baixa um arquivo de resultado
func (h *AttachmentHandler) DownloadResult(c *gin.Context) {
	claim := middleware.CurrentClaim(c)

	consultationID, err := pathID(c, "id")
	if err != nil {
		dto.Fail(c, err)
		return
	}
	attachmentID, err := pathID(c, "attachmentId")
	if err != nil {
		dto.Fail(c, err)
		return
	}

	attachment, content, err := h.attachmentService.DownloadResult(c.Request.Context(), claim, consultationID, attachmentID)
	if err != nil {
		dto.Fail(c, err)
		return
	}

	streamAttachment(c, attachment, content)
}

// DeleteResult remove um arquivo de resultado
func (h *AttachmentHandler) DeleteResult(c *gin.Context) {
	claim := middleware.CurrentClaim(c)

	consultationID, err := pathID(c, "id")
	if err != nil {
		dto.Fail(c, err)
		return
	}
	attachmentID, err := pathID(c, "attachmentId")
	if err != nil {
		dto.Fail(c, err)
		return
	}

	if err := h.attachmentService.DeleteResult(c.Request.Context(), claim, consultationID, attachmentID); err != nil {
		dto.Fail(c, err)
		return
	}

	dto.OK(c, "attachment.deleted", nil)
}

func (h *AttachmentHandler) uploadForBusiness(c *gin.Context, kind entities.AttachmentKind) {
	claim := middleware.CurrentClaim(c)

	businessID, err := pathID(c, "id")
	if err != nil {
		dto.Fail(c, err)
		return
	}

	upload, cleanup, err := formUpload(c)
	if err != nil {
		dto.Fail(c, err)
		return
	}
	defer cleanup()

	attachment, err := h.attachmentService.UploadForBusiness(c.Request.Context(), claim, businessID, kind, upload)
	if err != nil {
		dto.Fail(c, err)
		return
	}

	dto.Created(c, "attachment.uploaded", dto.ToAttachmentResponse(attachment))
}

func (h *AttachmentHandler) listForBusiness(c *gin.Context, kind entities.AttachmentKind) {
	claim := middleware.CurrentClaim(c)

	businessID, err := pathID(c, "id")
	if err != nil {
		dto.Fail(c, err)
		return
	}

	attachments, err := h.attachmentService.ListForBusiness(c.Request.Context(), claim, businessID, kind)
	if err != nil {
		dto.Fail(c, err)
		return
	}

	dto.OK(c, "attachment.listed", dto.ToAttachmentResponses(attachments))
}

func (h *AttachmentHandler) downloadForBusiness(c *gin.Context, kind entities.AttachmentKind) {
	claim := middleware.CurrentClaim(c)

	businessID, err := pathID(c, "id")
	if err != nil {
		dto.Fail(c, err)
		return
	}
	attachmentID, err := pathID(c, "attachmentId")
	if err != nil {
		dto.Fail(c, err)
		return
	}

	attachment, content, err := h.attachmentService.DownloadForBusiness(c.Request.Context(), claim, businessID, attachmentID, kind)
	if err != nil {
		dto.Fail(c, err)
		return
	}

	streamAttachment(c, attachment, content)
}

func (h *AttachmentHandler) deleteForBusiness(c *gin.Context, kind entities.AttachmentKind) {
	claim := middleware.CurrentClaim(c)

	businessID, err := pathID(c, "id")
	if err != nil {
		dto.Fail(c, err)
		return
	}
	attachmentID, err := pathID(c, "attachmentId")
	if err != nil {
		dto.Fail(c, err)
		return
	}

	if err := h.attachmentService.DeleteForBusiness(c.Request.Context(), claim, businessID, attachmentID, kind); err != nil {
		dto.Fail(c, err)
		return
	}

	dto.OK(c, "attachment.deleted", nil)
}

// formUpload extrai o arquivo do campo multipart "file"
func formUpload(c *gin.Context) (services.UploadInput, func(), error) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return services.UploadInput{}, nil, errors.ErrNoFile
	}

	file, err := fileHeader.Open()
	if err != nil {
		return services.UploadInput{}, nil, errors.Internal(err)
	}

	upload := services.UploadInput{
		Filename: filepath.Base(fileHeader.Filename),
		Size:     fileHeader.Size,
		Content:  file,
	}
	return upload, func() { _ = file.Close() }, nil
}

// streamAttachment envia o conteúdo com o nome original do arquivo
func streamAttachment(c *gin.Context, attachment *entities.Attachment, content io.ReadCloser) {
	defer func() { _ = content.Close() }()

	contentType := mime.TypeByExtension(filepath.Ext(attachment.Filename))
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	c.Header("Content-Disposition", "attachment; filename="+strconv.Quote(attachment.Filename))
	c.Header("Content-Type", contentType)
	c.Status(http.StatusOK)
	_, _ = io.Copy(c.Writer, content)
}
