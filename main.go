package main

import (
	"UnityPlate-Backend/cmd/config"
	migration "UnityPlate-Backend/cmd/database/migrate"
	"UnityPlate-Backend/internal/utils"
	"log"
)

func main() {
	utils.LoadConfig()

	db, err := config.ConnectDB()
	if err != nil {
		log.Fatalf("Database connection failed: %v", err)
	}

	if err := migration.Migrate(db); err != nil {
		log.Fatalf("Database migration failed: %v", err)
	}

	app, err := config.NewApp(db)
	if err != nil {
		log.Fatalf("App setup failed: %v", err)
	}

	port := utils.GetConfig("PORT")
	if port == "" {
		port = "4000"
	}
	log.Printf("Unity Plate Server is running on port %s", port)
	log.Fatal(app.Listen(":" + port))
}
