// Command seed creates the one operator account an operator needs to
// start driving the HTTP admin surface.
package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"

	"github.com/cutsea110/payroll-core/internal/authn"

	"github.com/cutsea110/payroll-core/db"
)

func main() {
	if err := godotenv.Load("../../.env"); err != nil {
		log.Println("No .env file found, relying on environment variables.")
	}

	gormDB := db.InitDB()

	log.Println("Clearing existing operator accounts...")
	gormDB.Exec("DELETE FROM logs")
	gormDB.Exec("DELETE FROM users")

	adminPassword := os.Getenv("ADMIN_PASSWORD")
	if adminPassword == "" {
		adminPassword = "adminpassword"
		log.Printf("ADMIN_PASSWORD not set, using default: %s", adminPassword)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("Failed to hash admin password: %v", err)
	}

	admin := &authn.User{
		Username: "admin",
		Password: string(hashed),
		Role:     authn.RoleOperator,
	}
	if err := gormDB.Create(admin).Error; err != nil {
		log.Fatalf("Failed to seed operator account: %v", err)
	}

	log.Println("Operator account seeded.")
}
