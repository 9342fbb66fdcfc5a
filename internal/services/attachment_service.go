package services

import (
	"context"
	"io"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/rafabene/legalpro-backend/internal/domain/entities"
	"github.com/rafabene/legalpro-backend/internal/domain/errors"
	"github.com/rafabene/legalpro-backend/internal/domain/ports"
	"github.com/rafabene/legalpro-backend/internal/domain/repositories"
)

// allowedExtensions limita uploads aos mesmos formatos do sistema original
var allowedExtensions = map[string]bool{
	".pdf":  true,
	".jpg":  true,
	".jpeg": true,
	".png":  true,
}

// AttachmentService gerencia alvarás, arquivos de negócio e arquivos de
// resultado de consulta — três famílias com a mesma forma, distinguidas
// por AttachmentKind.
type AttachmentService struct {
	attachments   repositories.AttachmentRepository
	businesses    repositories.BusinessRepository
	consultations repositories.ConsultationRepository
	store         ports.FileStore
	authz         *AuthorizationService
	logger        ports.Logger
	maxFileSize   int64
}

// NewAttachmentService cria um novo AttachmentService
func NewAttachmentService(
	attachments repositories.AttachmentRepository,
	businesses repositories.BusinessRepository,
	consultations repositories.ConsultationRepository,
	store ports.FileStore,
	authz *AuthorizationService,
	logger ports.Logger,
	maxFileSize int64,
) *AttachmentService {
	return &AttachmentService{
		attachments:   attachments,
		businesses:    businesses,
		consultations: consultations,
		store:         store,
		authz:         authz,
		logger:        logger,
		maxFileSize:   maxFileSize,
	}
}

// UploadInput representa um arquivo recebido em um multipart form
type UploadInput struct {
	Filename string
	Size     int64
	Content  io.Reader
}

// UploadForBusiness envia um alvará ou arquivo de negócio.
// Alvarás são restritos a donos puros; arquivos de negócio aceitam ADMIN.
func (s *AttachmentService) UploadForBusiness(ctx context.Context, claim entities.Claim, businessID uint, kind entities.AttachmentKind, upload UploadInput) (*entities.Attachment, error) {
	if kind == entities.KindPermit {
		if err := s.authz.RequirePureOwner(ctx, claim); err != nil {
			return nil, err
		}
	} else {
		if err := s.authz.RequireRole(claim, entities.RoleOwner, entities.RoleAdmin); err != nil {
			return nil, err
		}
	}

	business, err := s.findBusiness(ctx, businessID)
	if err != nil {
		return nil, err
	}
	if err := s.authz.CanAccessBusiness(claim, business); err != nil {
		return nil, err
	}

	key, err := s.saveUpload(ctx, upload)
	if err != nil {
		return nil, err
	}

	attachment := &entities.Attachment{
		Kind:       kind,
		BusinessID: businessID,
		Filename:   upload.Filename,
		StorageKey: key,
	}
	if err := s.attachments.Create(ctx, attachment); err != nil {
		return nil, errors.Internal(err)
	}

	s.logger.Info("attachment uploaded", "attachment_id", attachment.ID, "kind", string(kind), "business_id", businessID)
	return attachment, nil
}

// ListForBusiness lista anexos de um negócio: o dono ou ADMIN; para
// arquivos de negócio, também o advogado atribuído ao negócio.
func (s *AttachmentService) ListForBusiness(ctx context.Context, claim entities.Claim, businessID uint, kind entities.AttachmentKind) ([]*entities.Attachment, error) {
	business, err := s.findBusiness(ctx, businessID)
	if err != nil {
		return nil, err
	}

	if err := s.canReadBusinessAttachment(ctx, claim, kind, business); err != nil {
		return nil, err
	}

	attachments, err := s.attachments.ListByBusiness(ctx, businessID, kind)
	if err != nil {
		return nil, errors.Internal(err)
	}
	return attachments, nil
}

// DownloadForBusiness abre o conteúdo de um anexo de negócio. Uma linha de
// índice sem objeto físico é reportada como FILE_NOT_FOUND, distinto de
// NOT_FOUND do índice.
func (s *AttachmentService) DownloadForBusiness(ctx context.Context, claim entities.Claim, businessID, attachmentID uint, kind entities.AttachmentKind) (*entities.Attachment, io.ReadCloser, error) {
	attachment, err := s.findBusinessAttachment(ctx, businessID, attachmentID, kind)
	if err != nil {
		return nil, nil, err
	}

	business, err := s.findBusiness(ctx, businessID)
	if err != nil {
		return nil, nil, err
	}
	if err := s.canReadBusinessAttachment(ctx, claim, kind, business); err != nil {
		return nil, nil, err
	}

	content, err := s.store.Open(ctx, attachment.StorageKey)
	if err != nil {
		return nil, nil, err
	}
	return attachment, content, nil
}

// DeleteForBusiness remove um anexo de negócio. A remoção do objeto físico
// é best-effort: a linha de índice é apagada mesmo que o objeto já tenha
// sumido do file store.
func (s *AttachmentService) DeleteForBusiness(ctx context.Context, claim entities.Claim, businessID, attachmentID uint, kind entities.AttachmentKind) error {
	if kind == entities.KindPermit {
		if err := s.authz.RequirePureOwner(ctx, claim); err != nil {
			return err
		}
	} else {
		if err := s.authz.RequireRole(claim, entities.RoleOwner, entities.RoleAdmin); err != nil {
			return err
		}
	}

	attachment, err := s.findBusinessAttachment(ctx, businessID, attachmentID, kind)
	if err != nil {
		return err
	}

	business, err := s.findBusiness(ctx, businessID)
	if err != nil {
		return err
	}
	if err := s.authz.CanAccessBusiness(claim, business); err != nil {
		return err
	}

	return s.removeAttachment(ctx, attachment)
}

// UploadResult envia um arquivo de resultado: apenas o advogado atribuído
func (s *AttachmentService) UploadResult(ctx context.Context, claim entities.Claim, consultationID uint, upload UploadInput) (*entities.Attachment, error) {
	profile, err := s.authz.RequireLawyer(ctx, claim)
	if err != nil {
		return nil, err
	}

	consultation, err := s.findConsultation(ctx, consultationID)
	if err != nil {
		return nil, err
	}
	if !consultation.IsAssignedTo(profile.ID) {
		return nil, errors.ErrForbidden
	}

	key, err := s.saveUpload(ctx, upload)
	if err != nil {
		return nil, err
	}

	attachment := &entities.Attachment{
		Kind:           entities.KindResultFile,
		BusinessID:     consultation.BusinessID,
		ConsultationID: &consultation.ID,
		Filename:       upload.Filename,
		StorageKey:     key,
	}
	if err := s.attachments.Create(ctx, attachment); err != nil {
		return nil, errors.Internal(err)
	}

	s.logger.Info("result file uploaded", "attachment_id", attachment.ID, "consultation_id", consultationID)
	return attachment, nil
}

// ListResults lista arquivos de resultado: ADMIN ou o advogado atribuído
func (s *AttachmentService) ListResults(ctx context.Context, claim entities.Claim, consultationID uint) ([]*entities.Attachment, error) {
	consultation, err := s.findConsultation(ctx, consultationID)
	if err != nil {
		return nil, err
	}

	if err := s.authz.CanWriteConsultation(ctx, claim, consultation); err != nil {
		return nil, err
	}

	attachments, err := s.attachments.ListByConsultation(ctx, consultationID)
	if err != nil {
		return nil, errors.Internal(err)
	}
	return attachments, nil
}

// DownloadResult abre um arquivo de resultado: ADMIN, o advogado atribuído
// ou o dono do negócio da consulta.
func (s *AttachmentService) DownloadResult(ctx context.Context, claim entities.Claim, consultationID, attachmentID uint) (*entities.Attachment, io.ReadCloser, error) {
	consultation, err := s.findConsultation(ctx, consultationID)
	if err != nil {
		return nil, nil, err
	}

	attachment, err := s.findResultAttachment(ctx, consultationID, attachmentID)
	if err != nil {
		return nil, nil, err
	}

	if err := s.canReadResult(ctx, claim, consultation); err != nil {
		return nil, nil, err
	}

	content, err := s.store.Open(ctx, attachment.StorageKey)
	if err != nil {
		return nil, nil, err
	}
	return attachment, content, nil
}

// DeleteResult remove um arquivo de resultado: ADMIN ou o advogado atribuído
func (s *AttachmentService) DeleteResult(ctx context.Context, claim entities.Claim, consultationID, attachmentID uint) error {
	consultation, err := s.findConsultation(ctx, consultationID)
	if err != nil {
		return err
	}

	attachment, err := s.findResultAttachment(ctx, consultationID, attachmentID)
	if err != nil {
		return err
	}

	if err := s.authz.CanWriteConsultation(ctx, claim, consultation); err != nil {
		return err
	}

	return s.removeAttachment(ctx, attachment)
}

func (s *AttachmentService) findBusiness(ctx context.Context, id uint) (*entities.Business, error) {
	business, err := s.businesses.FindByID(ctx, id)
	if err != nil {
		return nil, errors.Internal(err)
	}
	if business == nil {
		return nil, errors.ErrBusinessNotFound
	}
	return business, nil
}

func (s *AttachmentService) findConsultation(ctx context.Context, id uint) (*entities.Consultation, error) {
	consultation, err := s.consultations.FindByID(ctx, id)
	if err != nil {
		return nil, errors.Internal(err)
	}
	if consultation == nil {
		return nil, errors.ErrConsultationNotFound
	}
	return consultation, nil
}

// findBusinessAttachment carrega um anexo e confere que pertence ao negócio
// e à família esperada; qualquer divergência é NOT_FOUND.
func (s *AttachmentService) findBusinessAttachment(ctx context.Context, businessID, attachmentID uint, kind entities.AttachmentKind) (*entities.Attachment, error) {
	attachment, err := s.attachments.FindByID(ctx, attachmentID)
	if err != nil {
		return nil, errors.Internal(err)
	}
	if attachment == nil || attachment.BusinessID != businessID || attachment.Kind != kind {
		return nil, errors.ErrAttachmentNotFound
	}
	return attachment, nil
}

func (s *AttachmentService) findResultAttachment(ctx context.Context, consultationID, attachmentID uint) (*entities.Attachment, error) {
	attachment, err := s.attachments.FindByID(ctx, attachmentID)
	if err != nil {
		return nil, errors.Internal(err)
	}
	if attachment == nil || attachment.Kind != entities.KindResultFile ||
		attachment.ConsultationID == nil || *attachment.ConsultationID != consultationID {
		return nil, errors.ErrAttachmentNotFound
	}
	return attachment, nil
}

func (s *AttachmentService) canReadBusinessAttachment(ctx context.Context, claim entities.Claim, kind entities.AttachmentKind, business *entities.Business) error {
	if claim.Role.Is(entities.RoleAdmin) || business.IsOwnedBy(claim.UserID) {
		return nil
	}
	if kind == entities.KindBusinessFile {
		assigned, err := s.authz.IsAssignedLawyer(ctx, claim, business)
		if err != nil {
			return err
		}
		if assigned {
			return nil
		}
	}
	return errors.ErrForbidden
}

func (s *AttachmentService) canReadResult(ctx context.Context, claim entities.Claim, consultation *entities.Consultation) error {
	if claim.Role.Is(entities.RoleAdmin) {
		return nil
	}

	business, err := s.findBusiness(ctx, consultation.BusinessID)
	if err != nil {
		return err
	}
	if business.IsOwnedBy(claim.UserID) {
		return nil
	}

	return s.authz.CanWriteConsultation(ctx, claim, consultation)
}

// saveUpload valida extensão e tamanho e grava o objeto com uma chave opaca
func (s *AttachmentService) saveUpload(ctx context.Context, upload UploadInput) (string, error) {
	if upload.Filename == "" || upload.Content == nil {
		return "", errors.ErrNoFile
	}

	ext := strings.ToLower(filepath.Ext(upload.Filename))
	if !allowedExtensions[ext] {
		return "", errors.ErrFileType
	}
	if s.maxFileSize > 0 && upload.Size > s.maxFileSize {
		return "", errors.ErrFileTooLarge
	}

	key := uuid.NewString() + ext
	if err := s.store.Save(ctx, key, upload.Content); err != nil {
		return "", errors.Internal(err)
	}
	return key, nil
}

// removeAttachment apaga o objeto físico (idempotente) e a linha de índice
func (s *AttachmentService) removeAttachment(ctx context.Context, attachment *entities.Attachment) error {
	if err := s.store.Remove(ctx, attachment.StorageKey); err != nil {
		s.logger.Warn("failed to remove stored object, deleting index row anyway",
			"attachment_id", attachment.ID, "error", err)
	}

	if err := s.attachments.Delete(ctx, attachment.ID); err != nil {
		return errors.Internal(err)
	}

	s.logger.Info("attachment deleted", "attachment_id", attachment.ID)
	return nil
}
