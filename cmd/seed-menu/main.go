package main

import (
	"errors"
	"log"

	"food-ordering-platform/internal/config"
	"food-ordering-platform/internal/database"
	"food-ordering-platform/internal/models"
	"food-ordering-platform/internal/repositories"
)

// A small starter menu for development environments.
var seedCategories = []models.CategoryCreateRequest{
	{Name: "Mains", Description: "Hearty plates"},
	{Name: "Sides", Description: "Something to go with it"},
	{Name: "Drinks", Description: "Cold and hot drinks"},
}

var seedFoods = []struct {
	models.FoodCreateRequest
	Category string
}{
	{models.FoodCreateRequest{Name: "Nyama Choma", Description: "Charcoal-grilled beef served with kachumbari", Price: 1200}, "Mains"},
	{models.FoodCreateRequest{Name: "Chicken Biryani", Description: "Spiced rice with slow-cooked chicken", Price: 950}, "Mains"},
	{models.FoodCreateRequest{Name: "Ugali", Description: "Classic maize meal", Price: 150}, "Sides"},
	{models.FoodCreateRequest{Name: "Chapati", Description: "Soft layered flatbread", Price: 100}, "Sides"},
	{models.FoodCreateRequest{Name: "Fresh Passion Juice", Description: "Squeezed to order", Price: 300}, "Drinks"},
	{models.FoodCreateRequest{Name: "Masala Chai", Description: "Spiced milk tea", Price: 200}, "Drinks"},
}

func main() {
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

	categoryRepo := repositories.NewCategoryRepository(db.DB)
	foodRepo := repositories.NewFoodRepository(db.DB)

	categoryIDs := make(map[string]string)
	for i := range seedCategories {
		category, err := categoryRepo.Create(&seedCategories[i])
		if err != nil {
			if errors.Is(err, models.ErrDuplicateEntry) {
				log.Printf("category %q already exists, skipping", seedCategories[i].Name)
				continue
			}
			log.Fatal("Failed to seed category:", err)
		}
		categoryIDs[category.Name] = category.ID
		log.Printf("seeded category %q", category.Name)
	}

	for _, seed := range seedFoods {
		req := seed.FoodCreateRequest
		req.CategoryID = categoryIDs[seed.Category]

		food, err := foodRepo.Create(&req)
		if err != nil {
			if errors.Is(err, models.ErrDuplicateEntry) {
				log.Printf("food %q already exists, skipping", req.Name)
				continue
			}
			log.Fatal("Failed to seed food:", err)
		}
		log.Printf("seeded %q at %d cents", food.Name, food.Price)
	}

	log.Println("Menu seeding complete")
}
