// Package server concentra o bootstrap comum dos três serviços: app Fiber
// com codec sonic, pilha de middlewares e shutdown gracioso.
package server

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/etag"
	"gorm.io/gorm"

	"escolaku_backend/internals/middlewares"
)

func New() *fiber.App {
	app := fiber.New(fiber.Config{
		JSONEncoder:           sonic.Marshal,
		JSONDecoder:           sonic.Unmarshal,
		DisableStartupMessage: true,
		ProxyHeader:           fiber.HeaderXForwardedFor,
	})

	app.Use(compress.New(compress.Config{Level: compress.LevelDefault}))
	app.Use(etag.New())
	middlewares.SetupMiddlewares(app)

	// anti-cold start
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})

	return app
}

// Run sobe o servidor e bloqueia até SIGINT/SIGTERM; no desligamento drena as
// conexões e fecha o pool do DB.
func Run(app *fiber.App, db *gorm.DB, port string) {
	app.Server().ReadTimeout = 15 * time.Second
	app.Server().WriteTimeout = 30 * time.Second
	app.Server().IdleTimeout = 90 * time.Second

	go func() {
		log.Printf("✅ Escutando em :%s", port)
		if err := app.Listen("0.0.0.0:" + port); err != nil {
			log.Fatalf("erro no servidor: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = app.ShutdownWithContext(ctx)

	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}
