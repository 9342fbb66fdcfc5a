package services

import (
	"context"
	"testing"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/rafabene/legalpro-backend/internal/domain/entities"
	"github.com/rafabene/legalpro-backend/internal/domain/ports"
	"github.com/rafabene/legalpro-backend/internal/domain/repositories"
	"github.com/rafabene/legalpro-backend/internal/domain/valueobjects"
	"github.com/rafabene/legalpro-backend/internal/infrastructure/persistence/postgres"
)

// openTestDB abre um SQLite em memória com o schema migrado.
// MaxOpenConns(1) evita que o pool abra conexões com bancos em memória
// distintos.
func openTestDB() (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		TranslateError: true,
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(1)

	if err := postgres.AutoMigrate(db); err != nil {
		return nil, err
	}
	return db, nil
}

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := openTestDB()
	if err != nil {
		t.Fatalf("falha ao abrir banco de teste: %v", err)
	}
	return db
}

// testEnv agrupa repositórios e serviços sobre um mesmo banco de teste
type testEnv struct {
	db            *gorm.DB
	users         repositories.UserRepository
	lawyers       repositories.LawyerRepository
	businesses    repositories.BusinessRepository
	consultations repositories.ConsultationRepository
	attachments   repositories.AttachmentRepository
	uow           ports.UnitOfWork
	authz         *AuthorizationService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	db := newTestDB(t)
	lawyers := postgres.NewLawyerRepository(db)
	return &testEnv{
		db:            db,
		users:         postgres.NewUserRepository(db),
		lawyers:       lawyers,
		businesses:    postgres.NewBusinessRepository(db),
		consultations: postgres.NewConsultationRepository(db),
		attachments:   postgres.NewAttachmentRepository(db),
		uow:           postgres.NewUnitOfWork(db),
		authz:         NewAuthorizationService(lawyers),
	}
}

// seedUser cria um usuário diretamente no repositório e devolve seu claim
func (e *testEnv) seedUser(t *testing.T, name, email string, role entities.Role) (*entities.User, entities.Claim) {
	t.Helper()

	emailVO, err := valueobjects.NewEmail(email)
	if err != nil {
		t.Fatalf("email de teste inválido %q: %v", email, err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("falha ao gerar hash: %v", err)
	}

	user := &entities.User{
		Name:         name,
		Email:        emailVO,
		PasswordHash: string(hash),
		Role:         role,
	}
	if err := e.users.Create(context.Background(), user); err != nil {
		t.Fatalf("falha ao criar usuário de teste: %v", err)
	}

	return user, entities.Claim{UserID: user.ID, Email: emailVO.String(), Role: role}
}

// seedLawyer cria um usuário LAWYER com seu LawyerProfile
func (e *testEnv) seedLawyer(t *testing.T, name, email string) (*entities.User, *entities.LawyerProfile, entities.Claim) {
	t.Helper()

	user, claim := e.seedUser(t, name, email, entities.RoleLawyer)

	profile := &entities.LawyerProfile{UserID: user.ID}
	if err := e.lawyers.Create(context.Background(), profile); err != nil {
		t.Fatalf("falha ao criar perfil de advogado: %v", err)
	}
	return user, profile, claim
}

// seedBusiness cria um negócio para um dono
func (e *testEnv) seedBusiness(t *testing.T, name string, ownerID uint, lawyerID *uint) *entities.Business {
	t.Helper()

	business := &entities.Business{
		Name:     name,
		OwnerID:  ownerID,
		LawyerID: lawyerID,
	}
	if err := e.businesses.Create(context.Background(), business); err != nil {
		t.Fatalf("falha ao criar negócio de teste: %v", err)
	}
	return business
}

// seedConsultation cria uma consulta pendente para um negócio
func (e *testEnv) seedConsultation(t *testing.T, businessID uint, lawyerID *uint) *entities.Consultation {
	t.Helper()

	consultation := &entities.Consultation{
		BusinessID: businessID,
		Notes:      "preciso de orientação sobre licenciamento",
		Status:     entities.StatusPending,
		LawyerID:   lawyerID,
	}
	if err := e.consultations.Create(context.Background(), consultation); err != nil {
		t.Fatalf("falha ao criar consulta de teste: %v", err)
	}
	return consultation
}

// noopLogger descarta tudo; os testes de serviço não inspecionam logs
type noopLogger struct{}

func (noopLogger) Info(string, ...any)        {}
func (noopLogger) Error(string, ...any)       {}
func (noopLogger) Debug(string, ...any)       {}
func (noopLogger) Warn(string, ...any)        {}
func (l noopLogger) With(...any) ports.Logger { return l }
