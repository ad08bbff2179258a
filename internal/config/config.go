package config

import "os"

// Storage backends for the cart/order slots.
const (
	StorageMemory = "memory"
	StorageFile   = "file"
	StorageRedis  = "redis"
)

type Config struct {
	Addr           string
	DatabaseURL    string
	JWTSecret      string
	StorageBackend string
	DataDir        string
	RedisAddr      string
}

func Load() Config {
	addr := os.Getenv("STOREFRONT_ADDR")
	if addr == "" {
		addr = ":8080"
	}

	backend := os.Getenv("STORAGE_BACKEND")
	if backend == "" {
		backend = StorageFile
	}

	dataDir := os.Getenv("DATA_DIR")
	if dataDir == "" {
		dataDir = "./data"
	}

	return Config{
		Addr:           addr,
		DatabaseURL:    os.Getenv("DATABASE_URL"),
		JWTSecret:      os.Getenv("JWT_SECRET"),
		StorageBackend: backend,
		DataDir:        dataDir,
		RedisAddr:      os.Getenv("REDIS_ADDR"),
	}
}
