package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	gerenciamentoController "escolaku_backend/internals/features/gerenciamento/controller"
)

// GerenciamentoRoutes monta o CRUD de alunos, professores e turmas.
// Os paths são os do serviço original (gerenciamento, porta 5000).
func GerenciamentoRoutes(r fiber.Router, db *gorm.DB) {
	alunoCtl := gerenciamentoController.NewAlunoController(db)
	r.Get("/lista_aluno", alunoCtl.Listar)            // GET    /lista_aluno
	r.Post("/criar_aluno", alunoCtl.Criar)            // POST   /criar_aluno
	r.Put("/atualiza_aluno/:id", alunoCtl.Atualizar)  // PUT    /atualiza_aluno/:id
	r.Delete("/deleta_aluno/:id", alunoCtl.Deletar)   // DELETE /deleta_aluno/:id

	professorCtl := gerenciamentoController.NewProfessorController(db)
	r.Get("/lista_professor", professorCtl.Listar)           // GET    /lista_professor
	r.Post("/adiciona_professor", professorCtl.Criar)        // POST   /adiciona_professor
	r.Put("/atualiza_professor/:id", professorCtl.Atualizar) // PUT    /atualiza_professor/:id
	r.Delete("/deleta_professor/:id", professorCtl.Deletar)  // DELETE /deleta_professor/:id

	turmaCtl := gerenciamentoController.NewTurmaController(db)
	r.Get("/lista_turmas", turmaCtl.Listar)           // GET    /lista_turmas
	r.Post("/cria_turmas", turmaCtl.Criar)            // POST   /cria_turmas
	r.Put("/atualiza_turmas/:id", turmaCtl.Atualizar) // PUT    /atualiza_turmas/:id
	r.Delete("/deleta_turmas/:id", turmaCtl.Deletar)  // DELETE /deleta_turmas/:id
}
