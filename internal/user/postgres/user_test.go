package postgres_test

import (
	"context"
	"testing"
	"time"

	userDatamodel "github.com/Crashito0982/PruebaTecnica/internal/core/datamodel/user"
	"github.com/Crashito0982/PruebaTecnica/internal/user"
	"github.com/Crashito0982/PruebaTecnica/internal/user/postgres"
	"github.com/google/uuid"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func TestUserRepository(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "User Repository Suite")
}

func openTestDB() *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	Expect(err).NotTo(HaveOccurred())

	// a single connection keeps every query on the same in-memory database
	sqlDB, err := db.DB()
	Expect(err).NotTo(HaveOccurred())
	sqlDB.SetMaxOpenConns(1)

	Expect(db.AutoMigrate(&userDatamodel.User{})).To(Succeed())
	return db
}

var _ = Describe("User Repository", func() {
	var (
		db   *gorm.DB
		repo user.RepositoryAPI
		ctx  context.Context
	)

	seed := func(email string, mutate func(*userDatamodel.User)) *userDatamodel.User {
		now := time.Now().UTC()
		u := &userDatamodel.User{
			ID:                 uuid.New(),
			Nombre:             "Usuario Demo",
			Email:              email,
			FechaCreacion:      now,
			FechaActualizacion: now,
		}
		if mutate != nil {
			mutate(u)
		}
		Expect(db.Create(u).Error).NotTo(HaveOccurred())
		return u
	}

	BeforeEach(func() {
		db = openTestDB()
		repo = postgres.NewUserRepository(db)
		ctx = context.Background()
	})

	Describe("GetByID", func() {
		It("returns nil without error for an unknown id", func() {
			row, err := repo.GetByID(ctx, uuid.New())
			Expect(err).NotTo(HaveOccurred())
			Expect(row).To(BeNil())
		})

		It("returns the stored row", func() {
			u := seed("demo1@example.com", nil)

			row, err := repo.GetByID(ctx, u.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(row.Nombre).To(Equal("Usuario Demo"))
			Expect(row.Email).To(Equal("demo1@example.com"))
		})

		It("treats a soft-deleted user as absent", func() {
			deletedAt := time.Now().UTC()
			u := seed("demo1@example.com", func(u *userDatamodel.User) {
				u.IsDeleted = true
				u.DeletedAt = &deletedAt
			})

			row, err := repo.GetByID(ctx, u.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(row).To(BeNil())
		})
	})

	Describe("Update", func() {
		It("persists the overwritten fields", func() {
			u := seed("demo1@example.com", nil)
			u.Nombre = "Demo Renombrado"
			u.Email = "nuevo@example.com"
			u.FechaActualizacion = time.Now().UTC()
			Expect(repo.Update(ctx, u)).To(Succeed())

			row, err := repo.GetByID(ctx, u.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(row.Nombre).To(Equal("Demo Renombrado"))
			Expect(row.Email).To(Equal("nuevo@example.com"))
		})

		It("translates a unique-index violation into the email conflict", func() {
			seed("demo1@example.com", nil)
			other := seed("demo2@example.com", nil)

			other.Email = "demo1@example.com"
			Expect(repo.Update(ctx, other)).To(MatchError(user.ErrDuplicateEmail))
		})
	})
})
