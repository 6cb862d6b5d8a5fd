package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"escolaku_backend/internals/configs"
	"escolaku_backend/internals/existence"
	atividadesController "escolaku_backend/internals/features/atividades/controller"
)

// AtividadesRoutes monta o CRUD de atividades e notas (serviço original na
// porta 5002). O mesmo Client de existência atende os dois controllers.
func AtividadesRoutes(r fiber.Router, db *gorm.DB) {
	checker := existence.NewClient(configs.ValidationTimeout())

	atividadeCtl := atividadesController.NewAtividadeController(
		db, checker, configs.ListaProfessorURL(), configs.ListaTurmasURL())
	r.Get("/listar_atividade", atividadeCtl.Listar)              // GET    /listar_atividade
	r.Post("/criar_atividade", atividadeCtl.Criar)               // POST   /criar_atividade
	r.Put("/atualizar_atividade/:id", atividadeCtl.Atualizar)    // PUT    /atualizar_atividade/:id
	r.Delete("/deletar_atividade/:id", atividadeCtl.Deletar)     // DELETE /deletar_atividade/:id

	notaCtl := atividadesController.NewNotaController(db, checker, configs.ListaAlunoURL())
	r.Get("/listar_notas", notaCtl.Listar)           // GET    /listar_notas
	r.Post("/criar_notas", notaCtl.Criar)            // POST   /criar_notas
	r.Put("/atualizar_nota/:id", notaCtl.Atualizar)  // PUT    /atualizar_nota/:id
	r.Delete("/deletar_nota/:id", notaCtl.Deletar)   // DELETE /deletar_nota/:id
}
