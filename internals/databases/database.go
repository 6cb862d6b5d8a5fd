package database

import (
	"fmt"
	"log"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"escolaku_backend/internals/configs"
)

// Connect abre a conexão PostgreSQL do serviço. O handle é injetado nos
// controllers; nada de estado global de pacote.
func Connect(appName string) (*gorm.DB, error) {
	log.Printf("🔌 Conectando ao PostgreSQL (%s)...", appName)

	// statement_timeout acompanha o timeout HTTP por request.
	sslmode := configs.GetEnv("DB_SSLMODE", "require")
	dsn := fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&application_name=%s&options=-c statement_timeout=3000",
		configs.GetEnv("DB_USER"),
		configs.GetEnv("DB_PASSWORD"),
		configs.GetEnv("DB_HOST"),
		configs.GetEnv("DB_PORT"),
		configs.GetEnv("DB_NAME"),
		sslmode,
		appName,
	)

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  dsn,
		PreferSimpleProtocol: true, // 👍 compatível com PgBouncer (transaction pooling)
	}), &gorm.Config{})
	if err != nil {
		return nil, err
	}
	log.Println("✅ DB conectado.")
	return db, nil
}

func MustConnect(appName string) *gorm.DB {
	db, err := Connect(appName)
	if err != nil {
		log.Fatalf("❌ Falha ao conectar no DB: %v", err)
	}
	return db
}

func TunePool(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		log.Printf("pool tune err: %v", err)
		return
	}
	sqlDB.SetMaxOpenConns(20)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxIdleTime(60 * time.Second)
	sqlDB.SetConnMaxLifetime(10 * time.Minute)
}

// WarmUp faz um ping tardio para encher o pool depois que o servidor sobe.
func WarmUp(db *gorm.DB) {
	go func() {
		time.Sleep(500 * time.Millisecond)
		sqlDB, err := db.DB()
		if err != nil {
			log.Printf("warm-up err: %v", err)
			return
		}
		if err := sqlDB.Ping(); err != nil {
			log.Printf("warm-up ping err: %v", err)
		}
	}()
}
