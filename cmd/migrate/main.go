package main

import (
	"log"

	"garage-backend/internal/app/ds"
	"garage-backend/internal/app/dsn"
	"garage-backend/internal/app/repository"
	"garage-backend/internal/app/role"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

// Стартовые учётные записи сотрудников, пароль совпадает с логином
var seedUsers = []ds.User{
	{Username: "admin", FullName: "Idris Delawar", Role: role.Admin},
	{Username: "cashier", FullName: "Justin Bieber", Role: role.Cashier},
	{Username: "back", FullName: "Madona", Role: role.Backoffice},
	{Username: "mechanic", FullName: "Emma Watson", Role: role.Mechanic},
	{Username: "administrative", FullName: "Shane Watson", Role: role.Administrative},
}

func main() {
	_ = godotenv.Load()

	dsnStr := dsn.FromEnv()
	if dsnStr == "" {
		log.Fatal("DSN string is empty. Check your .env file")
	}

	// repository.New прогоняет AutoMigrate по всем моделям
	repo, err := repository.New(dsnStr)
	if err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	log.Println("Database migration completed successfully")

	// Идемпотентный засев учётных записей
	for _, seed := range seedUsers {
		exists, err := repo.UserExistsByUsername(seed.Username)
		if err != nil {
			log.Fatalf("Failed to check user %s: %v", seed.Username, err)
		}
		if exists {
			continue
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(seed.Username), bcrypt.DefaultCost)
		if err != nil {
			log.Fatalf("Failed to hash password for %s: %v", seed.Username, err)
		}
		seed.Password = string(hash)

		if err := repo.CreateUser(&seed); err != nil {
			log.Fatalf("Failed to seed user %s: %v", seed.Username, err)
		}
		log.Printf("Seeded user %s (%s)", seed.Username, seed.Role)
	}

	log.Println("Database seeding completed successfully")
}
