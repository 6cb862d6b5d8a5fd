package controller

import (
	"errors"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"escolaku_backend/internals/existence"
	"escolaku_backend/internals/features/reservas/dto"
	"escolaku_backend/internals/features/reservas/model"
	helper "escolaku_backend/internals/helpers"
)

var validate = validator.New()

// ReservaController valida a turma contra o serviço de gerenciamento.
// A existência da própria reserva (update/delete) é decidida por lookup
// local — sem a auto-consulta HTTP das versões antigas.
type ReservaController struct {
	DB             *gorm.DB
	Checker        *existence.Client
	ListaTurmasURL string
}

func NewReservaController(db *gorm.DB, checker *existence.Client, turmasURL string) *ReservaController {
	return &ReservaController{DB: db, Checker: checker, ListaTurmasURL: turmasURL}
}

func (ctrl *ReservaController) Listar(c *fiber.Ctx) error {
	reservas := make([]model.ReservaModel, 0)
	if err := ctrl.DB.Find(&reservas).Error; err != nil {
		return helper.StoreFailure(c, err)
	}
	return c.JSON(reservas)
}

func (ctrl *ReservaController) Criar(c *fiber.Ctx) error {
	var req dto.CreateReservaRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.ValidationError(c, err)
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	if ok, resp := ctrl.checkTurma(c, *req.IDTurma); !ok {
		return resp
	}

	reserva := req.ToModel()
	if err := ctrl.DB.Create(&reserva).Error; err != nil {
		return helper.StoreFailure(c, err)
	}
	return helper.JSONMessage(c, fiber.StatusCreated, "Reserva adicionada com sucesso!", reserva)
}

func (ctrl *ReservaController) Atualizar(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return helper.JSONError(c, fiber.StatusNotFound, "Reserva não encontrada.")
	}

	var reserva model.ReservaModel
	if err := ctrl.DB.First(&reserva, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JSONErrorf(c, fiber.StatusNotFound, "A reserva com ID %d não existe.", id)
		}
		return helper.StoreFailure(c, err)
	}

	var req dto.UpdateReservaRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	if req.IDTurma != nil {
		if ok, resp := ctrl.checkTurma(c, *req.IDTurma); !ok {
			return resp
		}
	}

	req.Apply(&reserva)
	if err := ctrl.DB.Save(&reserva).Error; err != nil {
		return helper.StoreFailure(c, err)
	}
	return helper.JSONMessage(c, fiber.StatusOK, "Reserva atualizada com sucesso!", reserva)
}

func (ctrl *ReservaController) Deletar(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return helper.JSONError(c, fiber.StatusNotFound, "Reserva não encontrada.")
	}

	var reserva model.ReservaModel
	if err := ctrl.DB.First(&reserva, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JSONErrorf(c, fiber.StatusNotFound, "A reserva com ID %d não existe.", id)
		}
		return helper.StoreFailure(c, err)
	}
	if err := ctrl.DB.Delete(&reserva).Error; err != nil {
		return helper.StoreFailure(c, err)
	}
	return helper.JSONMessage(c, fiber.StatusOK, "Reserva deletada com sucesso!", nil)
}

func (ctrl *ReservaController) checkTurma(c *fiber.Ctx, id uint) (bool, error) {
	found, err := ctrl.Checker.Exists(c.UserContext(), ctrl.ListaTurmasURL, strconv.FormatUint(uint64(id), 10))
	if err != nil {
		return false, helper.UpstreamFailure(c, "turmas", err)
	}
	if !found {
		return false, helper.JSONErrorf(c, fiber.StatusNotFound, "A turma com ID %d não existe.", id)
	}
	return true, nil
}
