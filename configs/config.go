package configs

import (
	"log"
	"os"
)

type Config struct {
	Port      string
	MongoURI  string
	DBName    string
	JWTSecret string
	AppEnv    string

	ImageKitPublicKey   string
	ImageKitPrivateKey  string
	ImageKitURLEndpoint string
}

// Load reads the process environment once at startup. Required keys fail
// fast; the rest fall back to defaults.
func Load() Config {
	cfg := Config{
		Port:      getenv("PORT", "4000"),
		MongoURI:  os.Getenv("MONGO_URI"),
		DBName:    getenv("DB_NAME", "eduno"),
		JWTSecret: os.Getenv("JWT_SECRET"),
		AppEnv:    getenv("APP_ENV", "production"),

		ImageKitPublicKey:   os.Getenv("IMAGEKIT_PUBLIC_KEY"),
		ImageKitPrivateKey:  os.Getenv("IMAGEKIT_PRIVATE_KEY"),
		ImageKitURLEndpoint: os.Getenv("IMAGEKIT_URL_ENDPOINT"),
	}

	if cfg.MongoURI == "" {
		log.Fatal("MONGO_URI not set in environment")
	}
	if cfg.JWTSecret == "" {
		log.Fatal("JWT_SECRET not set in environment")
	}
	return cfg
}

func (c Config) IsDevelopment() bool {
	return c.AppEnv == "development"
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
