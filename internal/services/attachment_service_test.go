package services

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rafabene/legalpro-backend/internal/domain/entities"
	"github.com/rafabene/legalpro-backend/internal/domain/errors"
	"github.com/rafabene/legalpro-backend/internal/infrastructure/storage"
)

func newAttachmentService(t *testing.T, env *testEnv, maxFileSize int64) *AttachmentService {
	t.Helper()

	store, err := storage.NewDiskStore(t.TempDir())
	require.NoError(t, err)

	return NewAttachmentService(
		env.attachments, env.businesses, env.consultations,
		store, env.authz, noopLogger{}, maxFileSize,
	)
}

func upload(name, content string) UploadInput {
	return UploadInput{
		Filename: name,
		Size:     int64(len(content)),
		Content:  strings.NewReader(content),
	}
}

func TestAttachmentService_UploadForBusiness(t *testing.T) {
	ctx := context.Background()

	t.Run("dono envia alvará e o índice registra a família", func(t *testing.T) {
		env := newTestEnv(t)
		svc := newAttachmentService(t, env, 0)

		maria, claim := env.seedUser(t, "Maria", "maria@example.com", entities.RoleOwner)
		business := env.seedBusiness(t, "Padaria", maria.ID, nil)

		attachment, err := svc.UploadForBusiness(ctx, claim, business.ID, entities.KindPermit, upload("alvara.pdf", "%PDF-1.4"))
		require.NoError(t, err)

		assert.Equal(t, entities.KindPermit, attachment.Kind)
		assert.Equal(t, business.ID, attachment.BusinessID)
		assert.Equal(t, "alvara.pdf", attachment.Filename)
		assert.NotEmpty(t, attachment.StorageKey)
		assert.NotEqual(t, "alvara.pdf", attachment.StorageKey)
	})

	t.Run("ADMIN não envia alvará, mas envia arquivo de negócio", func(t *testing.T) {
		env := newTestEnv(t)
		svc := newAttachmentService(t, env, 0)

		maria, _ := env.seedUser(t, "Maria", "maria@example.com", entities.RoleOwner)
		_, admin := env.seedUser(t, "Root", "root@example.com", entities.RoleAdmin)
		business := env.seedBusiness(t, "Padaria", maria.ID, nil)

		_, err := svc.UploadForBusiness(ctx, admin, business.ID, entities.KindPermit, upload("alvara.pdf", "%PDF-1.4"))
		assert.ErrorIs(t, err, errors.ErrAdminForbidden)

		_, err = svc.UploadForBusiness(ctx, admin, business.ID, entities.KindBusinessFile, upload("contrato.pdf", "%PDF-1.4"))
		assert.NoError(t, err)
	})

	t.Run("extensão não permitida é rejeitada", func(t *testing.T) {
		env := newTestEnv(t)
		svc := newAttachmentService(t, env, 0)

		maria, claim := env.seedUser(t, "Maria", "maria@example.com", entities.RoleOwner)
		business := env.seedBusiness(t, "Padaria", maria.ID, nil)

		_, err := svc.UploadForBusiness(ctx, claim, business.ID, entities.KindPermit, upload("script.exe", "MZ"))
		assert.ErrorIs(t, err, errors.ErrFileType)
	})

	t.Run("arquivo acima do limite é rejeitado", func(t *testing.T) {
		env := newTestEnv(t)
		svc := newAttachmentService(t, env, 4)

		maria, claim := env.seedUser(t, "Maria", "maria@example.com", entities.RoleOwner)
		business := env.seedBusiness(t, "Padaria", maria.ID, nil)

		_, err := svc.UploadForBusiness(ctx, claim, business.ID, entities.KindPermit, upload("alvara.pdf", "%PDF-1.4"))
		assert.ErrorIs(t, err, errors.ErrFileTooLarge)
	})

	t.Run("upload sem arquivo é rejeitado", func(t *testing.T) {
		env := newTestEnv(t)
		svc := newAttachmentService(t, env, 0)

		maria, claim := env.seedUser(t, "Maria", "maria@example.com", entities.RoleOwner)
		business := env.seedBusiness(t, "Padaria", maria.ID, nil)

		_, err := svc.UploadForBusiness(ctx, claim, business.ID, entities.KindPermit, UploadInput{})
		assert.ErrorIs(t, err, errors.ErrNoFile)
	})
}

func TestAttachmentService_ListForBusiness(t *testing.T) {
	ctx := context.Background()

	t.Run("advogado atribuído lê arquivos de negócio, mas não alvarás", func(t *testing.T) {
		env := newTestEnv(t)
		svc := newAttachmentService(t, env, 0)

		maria, mariaClaim := env.seedUser(t, "Maria", "maria@example.com", entities.RoleOwner)
		_, profile, anaClaim := env.seedLawyer(t, "Ana", "ana@example.com")
		business := env.seedBusiness(t, "Padaria", maria.ID, &profile.ID)

		_, err := svc.UploadForBusiness(ctx, mariaClaim, business.ID, entities.KindPermit, upload("alvara.pdf", "%PDF-1.4"))
		require.NoError(t, err)
		_, err = svc.UploadForBusiness(ctx, mariaClaim, business.ID, entities.KindBusinessFile, upload("contrato.pdf", "%PDF-1.4"))
		require.NoError(t, err)

		files, err := svc.ListForBusiness(ctx, anaClaim, business.ID, entities.KindBusinessFile)
		require.NoError(t, err)
		assert.Len(t, files, 1)

		_, err = svc.ListForBusiness(ctx, anaClaim, business.ID, entities.KindPermit)
		assert.ErrorIs(t, err, errors.ErrForbidden)
	})

	t.Run("listagem separa as famílias de anexo", func(t *testing.T) {
		env := newTestEnv(t)
		svc := newAttachmentService(t, env, 0)

		maria, claim := env.seedUser(t, "Maria", "maria@example.com", entities.RoleOwner)
		business := env.seedBusiness(t, "Padaria", maria.ID, nil)

		_, err := svc.UploadForBusiness(ctx, claim, business.ID, entities.KindPermit, upload("alvara.pdf", "%PDF-1.4"))
		require.NoError(t, err)
		_, err = svc.UploadForBusiness(ctx, claim, business.ID, entities.KindBusinessFile, upload("contrato.pdf", "%PDF-1.4"))
		require.NoError(t, err)

		permits, err := svc.ListForBusiness(ctx, claim, business.ID, entities.KindPermit)
		require.NoError(t, err)
		require.Len(t, permits, 1)
		assert.Equal(t, "alvara.pdf", permits[0].Filename)
	})
}

func TestAttachmentService_DownloadForBusiness(t *testing.T) {
	ctx := context.Background()

	t.Run("conteúdo retorna íntegro com o registro do índice", func(t *testing.T) {
		env := newTestEnv(t)
		svc := newAttachmentService(t, env, 0)

		maria, claim := env.seedUser(t, "Maria", "maria@example.com", entities.RoleOwner)
		business := env.seedBusiness(t, "Padaria", maria.ID, nil)

		uploaded, err := svc.UploadForBusiness(ctx, claim, business.ID, entities.KindPermit, upload("alvara.pdf", "conteudo-do-alvara"))
		require.NoError(t, err)

		attachment, content, err := svc.DownloadForBusiness(ctx, claim, business.ID, uploaded.ID, entities.KindPermit)
		require.NoError(t, err)
		defer content.Close()

		data, err := io.ReadAll(content)
		require.NoError(t, err)
		assert.Equal(t, "conteudo-do-alvara", string(data))
		assert.Equal(t, uploaded.ID, attachment.ID)
	})

	t.Run("anexo de outra família ou de outro negócio é NOT_FOUND", func(t *testing.T) {
		env := newTestEnv(t)
		svc := newAttachmentService(t, env, 0)

		maria, claim := env.seedUser(t, "Maria", "maria@example.com", entities.RoleOwner)
		business := env.seedBusiness(t, "Padaria", maria.ID, nil)
		outro := env.seedBusiness(t, "Mercearia", maria.ID, nil)

		uploaded, err := svc.UploadForBusiness(ctx, claim, business.ID, entities.KindPermit, upload("alvara.pdf", "%PDF-1.4"))
		require.NoError(t, err)

		_, _, err = svc.DownloadForBusiness(ctx, claim, business.ID, uploaded.ID, entities.KindBusinessFile)
		assert.ErrorIs(t, err, errors.ErrAttachmentNotFound)

		_, _, err = svc.DownloadForBusiness(ctx, claim, outro.ID, uploaded.ID, entities.KindPermit)
		assert.ErrorIs(t, err, errors.ErrAttachmentNotFound)
	})
}

func TestAttachmentService_DeleteForBusiness(t *testing.T) {
	ctx := context.Background()

	t.Run("remove índice e objeto físico", func(t *testing.T) {
		env := newTestEnv(t)
		svc := newAttachmentService(t, env, 0)

		maria, claim := env.seedUser(t, "Maria", "maria@example.com", entities.RoleOwner)
		business := env.seedBusiness(t, "Padaria", maria.ID, nil)

		uploaded, err := svc.UploadForBusiness(ctx, claim, business.ID, entities.KindPermit, upload("alvara.pdf", "%PDF-1.4"))
		require.NoError(t, err)

		require.NoError(t, svc.DeleteForBusiness(ctx, claim, business.ID, uploaded.ID, entities.KindPermit))

		_, _, err = svc.DownloadForBusiness(ctx, claim, business.ID, uploaded.ID, entities.KindPermit)
		assert.ErrorIs(t, err, errors.ErrAttachmentNotFound)
	})

	t.Run("remove o índice mesmo com objeto físico já ausente", func(t *testing.T) {
		env := newTestEnv(t)

		store, err := storage.NewDiskStore(t.TempDir())
		require.NoError(t, err)
		svc := NewAttachmentService(
			env.attachments, env.businesses, env.consultations,
			store, env.authz, noopLogger{}, 0,
		)

		maria, claim := env.seedUser(t, "Maria", "maria@example.com", entities.RoleOwner)
		business := env.seedBusiness(t, "Padaria", maria.ID, nil)

		uploaded, err := svc.UploadForBusiness(ctx, claim, business.ID, entities.KindPermit, upload("alvara.pdf", "%PDF-1.4"))
		require.NoError(t, err)

		// Simula o objeto sumindo do disco antes da exclusão do índice
		require.NoError(t, store.Remove(ctx, uploaded.StorageKey))

		require.NoError(t, svc.DeleteForBusiness(ctx, claim, business.ID, uploaded.ID, entities.KindPermit))

		listed, err := svc.ListForBusiness(ctx, claim, business.ID, entities.KindPermit)
		require.NoError(t, err)
		assert.Empty(t, listed)
	})
}

func TestAttachmentService_ResultFiles(t *testing.T) {
	ctx := context.Background()

	t.Run("apenas o advogado atribuído envia resultado", func(t *testing.T) {
		env := newTestEnv(t)
		svc := newAttachmentService(t, env, 0)

		maria, _ := env.seedUser(t, "Maria", "maria@example.com", entities.RoleOwner)
		_, profile, anaClaim := env.seedLawyer(t, "Ana", "ana@example.com")
		_, _, betoClaim := env.seedLawyer(t, "Beto", "beto@example.com")

		business := env.seedBusiness(t, "Padaria", maria.ID, nil)
		consultation := env.seedConsultation(t, business.ID, &profile.ID)

		attachment, err := svc.UploadResult(ctx, anaClaim, consultation.ID, upload("parecer.pdf", "%PDF-1.4"))
		require.NoError(t, err)
		assert.Equal(t, entities.KindResultFile, attachment.Kind)
		require.NotNil(t, attachment.ConsultationID)
		assert.Equal(t, consultation.ID, *attachment.ConsultationID)

		_, err = svc.UploadResult(ctx, betoClaim, consultation.ID, upload("parecer.pdf", "%PDF-1.4"))
		assert.ErrorIs(t, err, errors.ErrForbidden)
	})

	t.Run("dono do negócio baixa o resultado; outro dono não", func(t *testing.T) {
		env := newTestEnv(t)
		svc := newAttachmentService(t, env, 0)

		maria, mariaClaim := env.seedUser(t, "Maria", "maria@example.com", entities.RoleOwner)
		_, otherClaim := env.seedUser(t, "Beto", "beto@example.com", entities.RoleOwner)
		_, profile, anaClaim := env.seedLawyer(t, "Ana", "ana@example.com")

		business := env.seedBusiness(t, "Padaria", maria.ID, nil)
		consultation := env.seedConsultation(t, business.ID, &profile.ID)

		uploaded, err := svc.UploadResult(ctx, anaClaim, consultation.ID, upload("parecer.pdf", "conteudo-do-parecer"))
		require.NoError(t, err)

		_, content, err := svc.DownloadResult(ctx, mariaClaim, consultation.ID, uploaded.ID)
		require.NoError(t, err)
		data, err := io.ReadAll(content)
		require.NoError(t, err)
		require.NoError(t, content.Close())
		assert.Equal(t, "conteudo-do-parecer", string(data))

		_, _, err = svc.DownloadResult(ctx, otherClaim, consultation.ID, uploaded.ID)
		assert.ErrorIs(t, err, errors.ErrForbidden)
	})

	t.Run("dono não lista nem remove arquivos de resultado", func(t *testing.T) {
		env := newTestEnv(t)
		svc := newAttachmentService(t, env, 0)

		maria, mariaClaim := env.seedUser(t, "Maria", "maria@example.com", entities.RoleOwner)
		_, profile, anaClaim := env.seedLawyer(t, "Ana", "ana@example.com")

		business := env.seedBusiness(t, "Padaria", maria.ID, nil)
		consultation := env.seedConsultation(t, business.ID, &profile.ID)

		uploaded, err := svc.UploadResult(ctx, anaClaim, consultation.ID, upload("parecer.pdf", "%PDF-1.4"))
		require.NoError(t, err)

		_, err = svc.ListResults(ctx, mariaClaim, consultation.ID)
		assert.ErrorIs(t, err, errors.ErrForbidden)

		err = svc.DeleteResult(ctx, mariaClaim, consultation.ID, uploaded.ID)
		assert.ErrorIs(t, err, errors.ErrForbidden)

		files, err := svc.ListResults(ctx, anaClaim, consultation.ID)
		require.NoError(t, err)
		assert.Len(t, files, 1)
	})
}
