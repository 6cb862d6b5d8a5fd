package main

import (
	"log"

	"escolaku_backend/internals/configs"
	database "escolaku_backend/internals/databases"
	"escolaku_backend/internals/features/atividades/model"
	"escolaku_backend/internals/features/atividades/route"
	"escolaku_backend/internals/server"
)

func main() {
	configs.LoadEnv()

	db := database.MustConnect("atividades")
	database.TunePool(db)
	database.WarmUp(db)

	if err := db.AutoMigrate(
		&model.AtividadeModel{},
		&model.NotaModel{},
	); err != nil {
		log.Fatalf("❌ Falha na migração: %v", err)
	}

	app := server.New()
	route.AtividadesRoutes(app, db)

	server.Run(app, db, configs.GetEnv("PORT", "5002"))
}
