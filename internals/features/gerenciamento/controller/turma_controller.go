package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"escolaku_backend/internals/features/gerenciamento/dto"
	"escolaku_backend/internals/features/gerenciamento/model"
	helper "escolaku_backend/internals/helpers"
)

type TurmaController struct {
	DB *gorm.DB
}

func NewTurmaController(db *gorm.DB) *TurmaController {
	return &TurmaController{DB: db}
}

func (ctrl *TurmaController) Listar(c *fiber.Ctx) error {
	turmas := make([]model.TurmaModel, 0)
	if err := ctrl.DB.Find(&turmas).Error; err != nil {
		return helper.StoreFailure(c, err)
	}
	return c.JSON(turmas)
}

func (ctrl *TurmaController) Criar(c *fiber.Ctx) error {
	var req dto.CreateTurmaRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.ValidationError(c, err)
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	// professor mora neste serviço: lookup local, nada de HTTP
	var professor model.ProfessorModel
	if err := ctrl.DB.First(&professor, *req.ProfessorID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JSONErrorf(c, fiber.StatusNotFound, "O professor com ID %d não existe.", *req.ProfessorID)
		}
		return helper.StoreFailure(c, err)
	}

	turma := req.ToModel()
	if err := ctrl.DB.Create(&turma).Error; err != nil {
		return helper.StoreFailure(c, err)
	}
	return helper.JSONMessage(c, fiber.StatusCreated, "Turma criada com sucesso!", turma)
}

func (ctrl *TurmaController) Atualizar(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return helper.JSONError(c, fiber.StatusNotFound, "Turma não encontrada.")
	}

	var turma model.TurmaModel
	if err := ctrl.DB.First(&turma, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JSONErrorf(c, fiber.StatusNotFound, "A turma com ID %d não existe.", id)
		}
		return helper.StoreFailure(c, err)
	}

	var req dto.UpdateTurmaRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.ValidationError(c, err)
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	if req.ProfessorID != nil {
		var professor model.ProfessorModel
		if err := ctrl.DB.First(&professor, *req.ProfessorID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return helper.JSONErrorf(c, fiber.StatusNotFound, "O professor com ID %d não existe.", *req.ProfessorID)
			}
			return helper.StoreFailure(c, err)
		}
	}

	req.Apply(&turma)
	if err := ctrl.DB.Save(&turma).Error; err != nil {
		return helper.StoreFailure(c, err)
	}
	return helper.JSONMessage(c, fiber.StatusOK, "Turma atualizada com sucesso!", turma)
}

func (ctrl *TurmaController) Deletar(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return helper.JSONError(c, fiber.StatusNotFound, "Turma não encontrada.")
	}

	var turma model.TurmaModel
	if err := ctrl.DB.First(&turma, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JSONErrorf(c, fiber.StatusNotFound, "A turma com ID %d não existe.", id)
		}
		return helper.StoreFailure(c, err)
	}
	if err := ctrl.DB.Delete(&turma).Error; err != nil {
		return helper.StoreFailure(c, err)
	}
	return helper.JSONMessage(c, fiber.StatusOK, "Turma deletada com sucesso!", nil)
}
