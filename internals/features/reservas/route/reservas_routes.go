package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"escolaku_backend/internals/configs"
	"escolaku_backend/internals/existence"
	reservasController "escolaku_backend/internals/features/reservas/controller"
)

// ReservasRoutes monta o CRUD de reservas (serviço original na porta 5001).
func ReservasRoutes(r fiber.Router, db *gorm.DB) {
	checker := existence.NewClient(configs.ValidationTimeout())

	reservaCtl := reservasController.NewReservaController(db, checker, configs.ListaTurmasURL())
	r.Get("/lista_reserva", reservaCtl.Listar)            // GET    /lista_reserva
	r.Post("/criar_reserva", reservaCtl.Criar)            // POST   /criar_reserva
	r.Put("/atualiza_reserva/:id", reservaCtl.Atualizar)  // PUT    /atualiza_reserva/:id
	r.Delete("/deletar_reserva/:id", reservaCtl.Deletar)  // DELETE /deletar_reserva/:id
}
