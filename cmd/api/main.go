package main

import (
	"database/sql"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	jwtware "github.com/gofiber/jwt/v2"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/restosuite/storefront-backend/internal/address"
	"github.com/restosuite/storefront-backend/internal/cart"
	"github.com/restosuite/storefront-backend/internal/checkout"
	"github.com/restosuite/storefront-backend/internal/config"
	"github.com/restosuite/storefront-backend/internal/menu"
	"github.com/restosuite/storefront-backend/internal/order"
	"github.com/restosuite/storefront-backend/internal/reports"
	"github.com/restosuite/storefront-backend/internal/session"
	"github.com/restosuite/storefront-backend/internal/storage"
	"github.com/restosuite/storefront-backend/internal/user"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	app := fiber.New()
	setupCORS(app)
	app.Use(requestLog)

	db := mustOpenDB(cfg.DatabaseURL)
	defer db.Close()
	ensureSchema(db)

	userService := user.NewService(user.NewPostgresRepository(db))
	seedAdmin(userService)

	menuService := menu.NewService(menu.NewPostgresRepository(db))
	seedMenu(db)

	slots := newSlotStore(cfg)
	carts := cart.NewManager(slots)
	archive := order.NewPostgresArchive(db)
	orders := order.NewManager(slots, carts, archive)
	checkoutService := checkout.NewService(carts)

	userHandler := user.NewHandler(userService)
	menuHandler := menu.NewHandler(menuService)
	cartHandler := cart.NewHandler(carts)
	orderHandler := order.NewHandler(orders, archive)
	checkoutHandler := checkout.NewHandler(checkoutService)
	addressHandler := address.NewHandler(address.NewService(address.NewPostgresRepository(db)))
	reportsHandler := reports.NewHandler(reports.NewPostgresRepository(db))

	userHandler.RegisterPublicRoutes(app)
	menuHandler.RegisterPublicRoutes(app)

	// attach claims when a token is present, but keep every route reachable
	// for guests. Handlers that need an identity enforce it themselves.
	app.Use(jwtware.New(jwtware.Config{
		SigningKey: []byte(cfg.JWTSecret),
		Filter: func(c *fiber.Ctx) bool {
			return c.Get("Authorization") == ""
		},
	}))

	cartHandler.RegisterRoutes(app)
	orderHandler.RegisterRoutes(app)
	checkoutHandler.RegisterRoutes(app)
	userHandler.RegisterProtectedRoutes(app)
	addressHandler.RegisterProtectedRoutes(app)

	orderHandler.RegisterAdminRoutes(app)
	userHandler.RegisterAdminRoutes(app)
	reportsHandler.RegisterAdminRoutes(app)

	log.Fatal(app.Listen(cfg.Addr))
}

func setupCORS(app *fiber.App) {
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,HEAD,PUT,DELETE,PATCH",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization, X-Session-Id",
	}))
}

func requestLog(c *fiber.Ctx) error {
	start := time.Now()
	err := c.Next()
	log.Printf("%s %s -> %d (%v)", c.Method(), c.OriginalURL(), c.Response().StatusCode(), time.Since(start))
	return err
}

func mustOpenDB(dbURL string) *sql.DB {
	if dbURL == "" {
		panic("DATABASE_URL is not set")
	}

	db, err := sql.Open("pgx", dbURL)
	if err != nil {
		panic(err)
	}

	if err := db.Ping(); err != nil {
		panic(err)
	}

	return db
}

func newSlotStore(cfg config.Config) storage.Store {
	switch cfg.StorageBackend {
	case config.StorageMemory:
		return storage.NewMemoryStore()
	case config.StorageRedis:
		client := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		return storage.NewRedisStore(client)
	default:
		return storage.NewFileStore(cfg.DataDir)
	}
}

func ensureSchema(db *sql.DB) {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS menu_items (
            menu_item_id SERIAL PRIMARY KEY,
            name TEXT NOT NULL,
            price BIGINT NOT NULL,
            category TEXT NOT NULL DEFAULT '',
            available BOOLEAN NOT NULL DEFAULT TRUE
        )`,
		`CREATE TABLE IF NOT EXISTS users (
            user_id SERIAL PRIMARY KEY,
            email TEXT NOT NULL UNIQUE,
            password TEXT NOT NULL,
            name TEXT NOT NULL DEFAULT '',
            phone TEXT NOT NULL DEFAULT '',
            role TEXT NOT NULL DEFAULT 'Customer',
            avatar_pic TEXT,
            created_at TEXT NOT NULL DEFAULT '',
            updated_at TEXT NOT NULL DEFAULT ''
        )`,
		`CREATE TABLE IF NOT EXISTS addresses (
            address_id SERIAL PRIMARY KEY,
            user_id INT NOT NULL,
            label TEXT NOT NULL DEFAULT '',
            details TEXT NOT NULL,
            phone TEXT NOT NULL DEFAULT '',
            created_at TEXT NOT NULL DEFAULT '',
            updated_at TEXT NOT NULL DEFAULT ''
        )`,
		`CREATE TABLE IF NOT EXISTS order_archive (
            order_id TEXT PRIMARY KEY,
            user_id TEXT NOT NULL DEFAULT '',
            items JSONB NOT NULL DEFAULT '[]',
            total BIGINT NOT NULL DEFAULT 0,
            type TEXT NOT NULL DEFAULT '',
            status TEXT NOT NULL DEFAULT '',
            created_at TEXT NOT NULL DEFAULT ''
        )`,
	}
	for _, stmt := range stmts {
		if _, err := db.Exec(stmt); err != nil {
			panic(err)
		}
	}
}

// seedMenu fills an empty catalog so a fresh install has something to sell.
func seedMenu(db *sql.DB) {
	var count int
	if err := db.QueryRow(`SELECT COUNT(*) FROM menu_items`).Scan(&count); err != nil || count > 0 {
		return
	}

	seed := []struct {
		name     string
		price    int64
		category string
	}{
		{"Chicken Adobo", 14900, "Mains"},
		{"Sinigang na Baboy", 17500, "Mains"},
		{"Kare-Kare", 19900, "Mains"},
		{"Pancit Canton", 12900, "Noodles"},
		{"Lumpiang Shanghai", 9900, "Starters"},
		{"Garlic Rice", 4500, "Sides"},
		{"Halo-Halo", 9900, "Desserts"},
		{"Leche Flan", 7900, "Desserts"},
		{"Calamansi Juice", 5500, "Drinks"},
		{"Sago't Gulaman", 4900, "Drinks"},
	}
	for _, s := range seed {
		if _, err := db.Exec(
			`INSERT INTO menu_items (name, price, category) VALUES ($1, $2, $3)`,
			s.name, s.price, s.category,
		); err != nil {
			log.Printf("menu seed failed for %q: %v", s.name, err)
		}
	}
}

// seedAdmin creates the initial back-office account when no users exist.
func seedAdmin(svc *user.Service) {
	if len(svc.List()) > 0 {
		return
	}

	email := os.Getenv("ADMIN_EMAIL")
	if email == "" {
		email = "admin@storefront.local"
	}
	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		password = "changeme"
	}

	now := time.Now().UTC().Format(time.RFC3339)
	if _, err := svc.Create(user.User{
		Email:     email,
		Password:  password,
		Name:      "Administrator",
		Role:      session.RoleAdmin,
		CreatedAt: now,
		UpdatedAt: now,
	}); err != nil {
		fmt.Printf("warning: admin seed failed: %v\n", err)
	}
}
