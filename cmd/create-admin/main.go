package main

import (
	"flag"
	"log"

	"food-ordering-platform/internal/config"
	"food-ordering-platform/internal/database"
	"food-ordering-platform/internal/models"
	"food-ordering-platform/internal/repositories"
	"food-ordering-platform/internal/utils"
)

func main() {
	email := flag.String("email", "", "admin email address")
	password := flag.String("password", "", "admin password")
	name := flag.String("name", "Administrator", "admin display name")
	flag.Parse()

	if *email == "" || *password == "" {
		log.Fatal("Usage: create-admin -email admin@example.com -password secret123 [-name Name]")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	db, err := database.NewConnection(database.Config{
		URL:      cfg.Database.URL,
		Host:     cfg.Database.Host,
		Port:     cfg.Database.Port,
		User:     cfg.Database.User,
		Password: cfg.Database.Password,
		DBName:   cfg.Database.DBName,
		SSLMode:  cfg.Database.SSLMode,
	})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	defer db.Close()

	req := &models.UserCreateRequest{
		Email:    *email,
		Password: *password,
		Name:     *name,
		Role:     models.RoleAdmin,
	}
	if err := req.Validate(); err != nil {
		log.Fatal("Invalid admin details: ", err)
	}

	hashed, err := utils.HashPassword(*password)
	if err != nil {
		log.Fatal("Failed to hash password:", err)
	}
	req.Password = hashed

	userRepo := repositories.NewUserRepository(db.DB)
	user, err := userRepo.Create(req)
	if err != nil {
		log.Fatal("Failed to create admin:", err)
	}

	log.Printf("Created admin %s (%s)", user.Email, user.ID)
}
