package cmd

import (
	"fmt"
	"log"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	gormPostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed the database with sample data",
	Long:  `Seed the database with sample data for development and testing purposes.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadConfig(".")
		if err != nil {
			log.Fatalf("failed to load config: %v", err)
		}

		sqlxDB, err := initDB(cfg.Database)
		if err != nil {
			log.Fatalf("failed to init db: %v", err)
		}

		db, err := gorm.Open(gormPostgres.New(gormPostgres.Config{Conn: sqlxDB.DB}), &gorm.Config{})
		if err != nil {
			log.Fatalf("failed to init gorm: %v", err)
		}

		// Credentials are stored as-is; the login check compares them directly.
		users := []struct {
			Username string
			Password string
		}{
			{"prakash", "password123"},
			{"admin", "admin123"},
		}

		for _, u := range users {
			var exists int
			row := db.Raw("SELECT 1 FROM users WHERE username = ?", u.Username).Row()
			if err := row.Scan(&exists); err == nil {
				fmt.Printf("user %s already exists, skipping\n", u.Username)
				continue
			}

			if err := db.Exec("INSERT INTO users (id, username, password, created_at, updated_at) VALUES (?, ?, ?, now(), now())", uuid.NewString(), u.Username, u.Password).Error; err != nil {
				log.Fatalf("failed to insert user %s: %v", u.Username, err)
			}
			fmt.Println("Seeded user:", u.Username)
		}

		employees := []struct {
			Name     string
			Position string
			Salary   float64
		}{
			{"John Doe", "Developer", 90000},
			{"Jane Smith", "Designer", 85000},
		}

		for _, e := range employees {
			var exists int
			row := db.Raw("SELECT 1 FROM employees WHERE name = ? AND position = ?", e.Name, e.Position).Row()
			if err := row.Scan(&exists); err == nil {
				fmt.Printf("employee %s already exists, skipping\n", e.Name)
				continue
			}

			if err := db.Exec("INSERT INTO employees (id, name, position, salary, created_at, updated_at) VALUES (?, ?, ?, ?, now(), now())", uuid.NewString(), e.Name, e.Position, e.Salary).Error; err != nil {
				log.Fatalf("failed to insert employee %s: %v", e.Name, err)
			}
			fmt.Println("Seeded employee:", e.Name)
		}

		fmt.Println("Seeding completed successfully")
	},
}
