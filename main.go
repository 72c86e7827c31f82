package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"

	"eduno_backend/bootstrap"
	"eduno_backend/configs"
	"eduno_backend/database"
	"eduno_backend/internal/media"
	"eduno_backend/internal/middleware"
	"eduno_backend/internal/routes"
)

func init() {
	if err := godotenv.Overload(".env"); err != nil {
		log.Println("No .env file found, using system environment variables")
	}
}

func main() {
	cfg := configs.Load()

	client := database.ConnectMongo(cfg.MongoURI)
	defer database.DisconnectMongo(client)
	db := client.Database(cfg.DBName)

	if err := bootstrap.EnsureIndexes(db); err != nil {
		log.Fatalf("ensure indexes failed: %v", err)
	}
	if err := media.EnsureTempDir(); err != nil {
		log.Fatalf("create temp dir failed: %v", err)
	}

	mc := media.New(cfg.ImageKitPublicKey, cfg.ImageKitPrivateKey, cfg.ImageKitURLEndpoint)

	app := fiber.New(fiber.Config{
		BodyLimit: 105 << 20, // uploads are capped at 100MB plus form overhead
	})

	app.Use(recover.New())
	app.Use(fiberlogger.New())
	app.Use(cors.New())
	app.Use(middleware.JWTOptional(cfg.JWTSecret))

	routes.Register(app, routes.Deps{
		Client: client,
		DB:     db,
		Media:  mc,
		Config: cfg,
	})

	log.Printf("listening at http://localhost:%s", cfg.Port)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
