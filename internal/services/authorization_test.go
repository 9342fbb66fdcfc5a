package services

import (
	"context"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"golang.org/x/crypto/bcrypt"

	"github.com/rafabene/legalpro-backend/internal/domain/entities"
	"github.com/rafabene/legalpro-backend/internal/domain/errors"
	"github.com/rafabene/legalpro-backend/internal/domain/repositories"
	"github.com/rafabene/legalpro-backend/internal/domain/valueobjects"
	"github.com/rafabene/legalpro-backend/internal/infrastructure/persistence/postgres"
)

var _ = Describe("AuthorizationService", func() {
	var (
		ctx     context.Context
		users   repositories.UserRepository
		lawyers repositories.LawyerRepository
		authz   *AuthorizationService
	)

	mustUser := func(name, email string, role entities.Role) (*entities.User, entities.Claim) {
		emailVO, err := valueobjects.NewEmail(email)
		Expect(err).NotTo(HaveOccurred())

		hash, err := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.MinCost)
		Expect(err).NotTo(HaveOccurred())

		user := &entities.User{Name: name, Email: emailVO, PasswordHash: string(hash), Role: role}
		Expect(users.Create(ctx, user)).To(Succeed())

		return user, entities.Claim{UserID: user.ID, Email: emailVO.String(), Role: role}
	}

	mustProfile := func(userID uint) *entities.LawyerProfile {
		profile := &entities.LawyerProfile{UserID: userID}
		Expect(lawyers.Create(ctx, profile)).To(Succeed())
		return profile
	}

	BeforeEach(func() {
		ctx = context.Background()

		db, err := openTestDB()
		Expect(err).NotTo(HaveOccurred())

		users = postgres.NewUserRepository(db)
		lawyers = postgres.NewLawyerRepository(db)
		authz = NewAuthorizationService(lawyers)
	})

	Describe("RequireRole", func() {
		It("rejeita claim vazio como não autenticado", func() {
			err := authz.RequireRole(entities.Claim{}, entities.RoleAdmin)
			Expect(err).To(MatchError(errors.ErrNoCredential))
		})

		It("rejeita role fora do conjunto permitido", func() {
			_, claim := mustUser("Maria", "maria@example.com", entities.RoleOwner)
			err := authz.RequireRole(claim, entities.RoleAdmin)
			Expect(err).To(MatchError(errors.ErrForbidden))
		})

		It("aceita qualquer role do conjunto permitido", func() {
			_, claim := mustUser("Maria", "maria@example.com", entities.RoleOwner)
			err := authz.RequireRole(claim, entities.RoleOwner, entities.RoleAdmin)
			Expect(err).NotTo(HaveOccurred())
		})
	})

	Describe("RequirePureOwner", func() {
		It("rejeita ADMIN com erro próprio", func() {
			_, claim := mustUser("Root", "root@example.com", entities.RoleAdmin)
			err := authz.RequirePureOwner(ctx, claim)
			Expect(err).To(MatchError(errors.ErrAdminForbidden))
		})

		It("rejeita quem possui LawyerProfile mesmo com role OWNER no claim", func() {
			// role desatualizado no token: o perfil é a fonte de verdade
			user, _ := mustUser("Ana", "ana@example.com", entities.RoleLawyer)
			mustProfile(user.ID)

			staleClaim := entities.Claim{UserID: user.ID, Email: "ana@example.com", Role: entities.RoleOwner}
			err := authz.RequirePureOwner(ctx, staleClaim)
			Expect(err).To(MatchError(errors.ErrLawyerForbidden))
		})

		It("aceita dono sem perfil de advogado", func() {
			_, claim := mustUser("Maria", "maria@example.com", entities.RoleOwner)
			err := authz.RequirePureOwner(ctx, claim)
			Expect(err).NotTo(HaveOccurred())
		})
	})

	Describe("RequireLawyer", func() {
		It("rejeita ADMIN com erro próprio", func() {
			_, claim := mustUser("Root", "root@example.com", entities.RoleAdmin)
			_, err := authz.RequireLawyer(ctx, claim)
			Expect(err).To(MatchError(errors.ErrAdminForbidden))
		})

		It("rejeita role LAWYER sem registro de perfil", func() {
			// role LAWYER no token não basta: sem perfil não há capacidade
			_, claim := mustUser("Ana", "ana@example.com", entities.RoleLawyer)
			_, err := authz.RequireLawyer(ctx, claim)
			Expect(err).To(MatchError(errors.ErrNotALawyer))
		})

		It("devolve o perfil do advogado autenticado", func() {
			user, claim := mustUser("Ana", "ana@example.com", entities.RoleLawyer)
			profile := mustProfile(user.ID)

			got, err := authz.RequireLawyer(ctx, claim)
			Expect(err).NotTo(HaveOccurred())
			Expect(got.ID).To(Equal(profile.ID))
		})
	})

	Describe("CanAccessBusiness", func() {
		It("permite ADMIN em qualquer negócio", func() {
			_, admin := mustUser("Root", "root@example.com", entities.RoleAdmin)
			business := &entities.Business{ID: 7, OwnerID: 99}
			Expect(authz.CanAccessBusiness(admin, business)).To(Succeed())
		})

		It("permite o dono do negócio", func() {
			owner, claim := mustUser("Maria", "maria@example.com", entities.RoleOwner)
			business := &entities.Business{ID: 7, OwnerID: owner.ID}
			Expect(authz.CanAccessBusiness(claim, business)).To(Succeed())
		})

		It("rejeita quem não é dono", func() {
			_, claim := mustUser("Maria", "maria@example.com", entities.RoleOwner)
			business := &entities.Business{ID: 7, OwnerID: claim.UserID + 1}
			err := authz.CanAccessBusiness(claim, business)
			Expect(err).To(MatchError(errors.ErrForbidden))
		})
	})

	Describe("CanWriteConsultation", func() {
		It("permite ADMIN em qualquer consulta", func() {
			_, admin := mustUser("Root", "root@example.com", entities.RoleAdmin)
			consultation := &entities.Consultation{ID: 3}
			Expect(authz.CanWriteConsultation(ctx, admin, consultation)).To(Succeed())
		})

		It("permite o advogado atribuído", func() {
			user, claim := mustUser("Ana", "ana@example.com", entities.RoleLawyer)
			profile := mustProfile(user.ID)

			consultation := &entities.Consultation{ID: 3, LawyerID: &profile.ID}
			Expect(authz.CanWriteConsultation(ctx, claim, consultation)).To(Succeed())
		})

		It("rejeita advogado não atribuído", func() {
			user, claim := mustUser("Ana", "ana@example.com", entities.RoleLawyer)
			mustProfile(user.ID)

			other, _ := mustUser("Beto", "beto@example.com", entities.RoleLawyer)
			otherProfile := mustProfile(other.ID)

			consultation := &entities.Consultation{ID: 3, LawyerID: &otherProfile.ID}
			err := authz.CanWriteConsultation(ctx, claim, consultation)
			Expect(err).To(MatchError(errors.ErrForbidden))
		})

		It("rejeita advogado quando a consulta não tem atribuição", func() {
			user, claim := mustUser("Ana", "ana@example.com", entities.RoleLawyer)
			mustProfile(user.ID)

			consultation := &entities.Consultation{ID: 3}
			err := authz.CanWriteConsultation(ctx, claim, consultation)
			Expect(err).To(MatchError(errors.ErrForbidden))
		})
	})

	Describe("ResolveLawyerID", func() {
		It("resolve um id de perfil diretamente", func() {
			user, _ := mustUser("Ana", "ana@example.com", entities.RoleLawyer)
			profile := mustProfile(user.ID)

			resolved, err := authz.ResolveLawyerID(ctx, profile.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(resolved).To(Equal(profile.ID))
		})

		It("resolve um id de usuário para o perfil correspondente", func() {
			// dois usuários antes do advogado deslocam os ids: o id do
			// usuário advogado não coincide com nenhum id de perfil
			mustUser("Maria", "maria@example.com", entities.RoleOwner)
			mustUser("Beto", "beto@example.com", entities.RoleOwner)

			user, _ := mustUser("Ana", "ana@example.com", entities.RoleLawyer)
			profile := mustProfile(user.ID)
			Expect(user.ID).NotTo(Equal(profile.ID))

			resolved, err := authz.ResolveLawyerID(ctx, user.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(resolved).To(Equal(profile.ID))
		})

		It("rejeita um id que não corresponde a nenhum advogado", func() {
			_, err := authz.ResolveLawyerID(ctx, 9999)
			Expect(err).To(MatchError(errors.ErrLawyerUnresolved))
		})
	})

	Describe("IsAssignedLawyer", func() {
		It("reconhece o advogado atribuído ao negócio", func() {
			user, claim := mustUser("Ana", "ana@example.com", entities.RoleLawyer)
			profile := mustProfile(user.ID)

			business := &entities.Business{ID: 7, OwnerID: 99, LawyerID: &profile.ID}
			assigned, err := authz.IsAssignedLawyer(ctx, claim, business)
			Expect(err).NotTo(HaveOccurred())
			Expect(assigned).To(BeTrue())
		})

		It("nega para negócio sem advogado ou com outro advogado", func() {
			user, claim := mustUser("Ana", "ana@example.com", entities.RoleLawyer)
			mustProfile(user.ID)

			unassigned := &entities.Business{ID: 7, OwnerID: 99}
			assigned, err := authz.IsAssignedLawyer(ctx, claim, unassigned)
			Expect(err).NotTo(HaveOccurred())
			Expect(assigned).To(BeFalse())
		})
	})
})
