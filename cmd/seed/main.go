package main

import (
	"log"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"

	"github.com/modelmonitor/model-monitor/internal/config"
	dbpkg "github.com/modelmonitor/model-monitor/internal/db"
	"github.com/modelmonitor/model-monitor/internal/models"
)

// There is no self-registration endpoint; accounts exist only through
// this seeding step.
var seedUsers = []struct {
	email    string
	password string
}{
	{"user1@example.com", "password123"},
	{"admin@example.com", "admin123"},
}

func main() {

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading from environment")
	}

	cfg := config.Load()
	db := dbpkg.NewDB(cfg)

	var count int64
	if err := db.Model(&models.User{}).Count(&count).Error; err != nil {
		log.Fatalf("failed to count users: %v", err)
	}
	if count > 0 {
		log.Println("Users already exist, nothing to seed")
		return
	}

	for _, su := range seedUsers {
		hashed, err := bcrypt.GenerateFromPassword([]byte(su.password), bcrypt.DefaultCost)
		if err != nil {
			log.Fatalf("failed to hash password: %v", err)
		}

		user := models.User{
			Email:        su.email,
			PasswordHash: string(hashed),
		}
		if err := db.Create(&user).Error; err != nil {
			log.Fatalf("failed to create user %s: %v", su.email, err)
		}

		log.Printf("Seeded user %s", su.email)
	}
}
