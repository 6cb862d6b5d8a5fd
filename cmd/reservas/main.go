package main

import (
	"log"

	"escolaku_backend/internals/configs"
	database "escolaku_backend/internals/databases"
	"escolaku_backend/internals/features/reservas/model"
	"escolaku_backend/internals/features/reservas/route"
	"escolaku_backend/internals/server"
)

func main() {
	configs.LoadEnv()

	db := database.MustConnect("reservas")
	database.TunePool(db)
	database.WarmUp(db)

	if err := db.AutoMigrate(&model.ReservaModel{}); err != nil {
		log.Fatalf("❌ Falha na migração: %v", err)
	}

	app := server.New()
	route.ReservasRoutes(app, db)

	server.Run(app, db, configs.GetEnv("PORT", "5001"))
}
