package main

import (
	"log"

	"escolaku_backend/internals/configs"
	database "escolaku_backend/internals/databases"
	"escolaku_backend/internals/features/gerenciamento/model"
	"escolaku_backend/internals/features/gerenciamento/route"
	"escolaku_backend/internals/server"
)

func main() {
	configs.LoadEnv()

	db := database.MustConnect("gerenciamento")
	database.TunePool(db)
	database.WarmUp(db)

	if err := db.AutoMigrate(
		&model.ProfessorModel{},
		&model.TurmaModel{},
		&model.AlunoModel{},
	); err != nil {
		log.Fatalf("❌ Falha na migração: %v", err)
	}

	app := server.New()
	route.GerenciamentoRoutes(app, db)

	server.Run(app, db, configs.GetEnv("PORT", "5000"))
}
