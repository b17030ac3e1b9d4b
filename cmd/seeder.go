package cmd

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/Crashito0982/PruebaTecnica/pkg/textfold"
	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/spf13/cobra"
)

// Demo identities, stable so they can be pasted into the X-User-Id header.
var (
	demoUser1 = uuid.MustParse("11111111-1111-1111-1111-111111111111")
	demoUser2 = uuid.MustParse("22222222-2222-2222-2222-222222222222")
)

type seedUser struct {
	ID                 uuid.UUID `db:"id"`
	Nombre             string    `db:"nombre"`
	Email              string    `db:"email"`
	FechaCreacion      time.Time `db:"fecha_creacion"`
	FechaActualizacion time.Time `db:"fecha_actualizacion"`
}

type seedCategory struct {
	ID            uuid.UUID `db:"id"`
	Nombre        string    `db:"nombre"`
	Descripcion   string    `db:"descripcion"`
	UsuarioID     uuid.UUID `db:"usuario_id"`
	FechaCreacion time.Time `db:"fecha_creacion"`
}

type seedExpense struct {
	ID              uuid.UUID `db:"id"`
	Monto           float64   `db:"monto"`
	Fecha           time.Time `db:"fecha"`
	Descripcion     string    `db:"descripcion"`
	DescripcionNorm string    `db:"descripcion_norm"`
	CategoriaID     uuid.UUID `db:"categoria_id"`
	UsuarioID       uuid.UUID `db:"usuario_id"`
	FechaCreacion   time.Time `db:"fecha_creacion"`
}

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed the database with demo data",
	Long:  `Seed the database with two demo users, their categories and a batch of expenses.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadConfig(".")
		if err != nil {
			log.Fatalf("failed to load config: %v", err)
		}

		db, err := sqlx.Connect("pgx", cfg.Database.GetDSN())
		if err != nil {
			log.Fatalf("failed to connect db: %v", err)
		}
		defer db.Close()

		if clearData {
			for _, table := range []string{"expenses", "categories", "users"} {
				if _, err := db.Exec("DELETE FROM " + table); err != nil {
					log.Fatalf("failed to clear %s: %v", table, err)
				}
			}
			fmt.Println("Cleared existing data")
		}

		var userCount int
		if err := db.Get(&userCount, "SELECT COUNT(*) FROM users"); err != nil {
			log.Fatalf("failed to count users: %v", err)
		}
		if userCount > 0 {
			fmt.Println("Users already present; skipping seed")
			return
		}

		now := time.Now().UTC()

		users := []seedUser{
			{ID: demoUser1, Nombre: "Usuario Demo 1", Email: "demo1@example.com", FechaCreacion: now, FechaActualizacion: now},
			{ID: demoUser2, Nombre: "Usuario Demo 2", Email: "demo2@example.com", FechaCreacion: now, FechaActualizacion: now},
		}
		if _, err := db.NamedExec(`
			INSERT INTO users (id, nombre, email, fecha_creacion, fecha_actualizacion, is_deleted, is_blocked)
			VALUES (:id, :nombre, :email, :fecha_creacion, :fecha_actualizacion, false, false)`, users); err != nil {
			log.Fatalf("failed to seed users: %v", err)
		}
		fmt.Println("Seeded demo users:", demoUser1, demoUser2)

		categories := []seedCategory{
			{ID: uuid.New(), Nombre: "Comida", Descripcion: "Gastos de comida", UsuarioID: demoUser1, FechaCreacion: now},
			{ID: uuid.New(), Nombre: "Transporte", Descripcion: "Movilidad", UsuarioID: demoUser1, FechaCreacion: now},
			{ID: uuid.New(), Nombre: "Servicios", Descripcion: "Luz/agua/internet", UsuarioID: demoUser1, FechaCreacion: now},
			{ID: uuid.New(), Nombre: "Comida", Descripcion: "Gastos de comida", UsuarioID: demoUser2, FechaCreacion: now},
			{ID: uuid.New(), Nombre: "Ocio", Descripcion: "Salidas", UsuarioID: demoUser2, FechaCreacion: now},
		}
		if _, err := db.NamedExec(`
			INSERT INTO categories (id, nombre, descripcion, usuario_id, fecha_creacion)
			VALUES (:id, :nombre, :descripcion, :usuario_id, :fecha_creacion)`, categories); err != nil {
			log.Fatalf("failed to seed categories: %v", err)
		}
		fmt.Printf("Seeded %d categories\n", len(categories))

		var user1Categories []uuid.UUID
		for _, c := range categories {
			if c.UsuarioID == demoUser1 {
				user1Categories = append(user1Categories, c.ID)
			}
		}

		// deterministic data set, 30 expenses over distinct descending dates
		rng := rand.New(rand.NewSource(12345))
		expenses := make([]seedExpense, 0, 30)
		for i := 0; i < 30; i++ {
			descripcion := fmt.Sprintf("Gasto demo #%d", i+1)
			if i%7 == 0 {
				descripcion = "Café Martinez"
			}

			expenses = append(expenses, seedExpense{
				ID:              uuid.New(),
				Monto:           float64(1000 + rng.Intn(49000)),
				Fecha:           now.AddDate(0, 0, -i).Truncate(24 * time.Hour),
				Descripcion:     descripcion,
				DescripcionNorm: textfold.Fold(descripcion),
				CategoriaID:     user1Categories[rng.Intn(len(user1Categories))],
				UsuarioID:       demoUser1,
				FechaCreacion:   now,
			})
		}
		if _, err := db.NamedExec(`
			INSERT INTO expenses (id, monto, fecha, descripcion, descripcion_norm, categoria_id, usuario_id, fecha_creacion)
			VALUES (:id, :monto, :fecha, :descripcion, :descripcion_norm, :categoria_id, :usuario_id, :fecha_creacion)`, expenses); err != nil {
			log.Fatalf("failed to seed expenses: %v", err)
		}
		fmt.Printf("Seeded %d expenses for %s\n", len(expenses), demoUser1)
	},
}
