package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"escolaku_backend/internals/features/gerenciamento/dto"
	"escolaku_backend/internals/features/gerenciamento/model"
	helper "escolaku_backend/internals/helpers"
)

type ProfessorController struct {
	DB *gorm.DB
}

func NewProfessorController(db *gorm.DB) *ProfessorController {
	return &ProfessorController{DB: db}
}

func (ctrl *ProfessorController) Listar(c *fiber.Ctx) error {
	professores := make([]model.ProfessorModel, 0)
	if err := ctrl.DB.Find(&professores).Error; err != nil {
		return helper.StoreFailure(c, err)
	}
	return c.JSON(professores)
}

func (ctrl *ProfessorController) Criar(c *fiber.Ctx) error {
	var req dto.CreateProfessorRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.ValidationError(c, err)
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	professor := req.ToModel()
	if err := ctrl.DB.Create(&professor).Error; err != nil {
		return helper.StoreFailure(c, err)
	}
	return helper.JSONMessage(c, fiber.StatusCreated, "Professor criado com sucesso!", professor)
}

func (ctrl *ProfessorController) Atualizar(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return helper.JSONError(c, fiber.StatusNotFound, "Professor não encontrado.")
	}

	var professor model.ProfessorModel
	if err := ctrl.DB.First(&professor, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JSONErrorf(c, fiber.StatusNotFound, "O professor com ID %d não existe.", id)
		}
		return helper.StoreFailure(c, err)
	}

	var req dto.UpdateProfessorRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.ValidationError(c, err)
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	req.Apply(&professor)
	if err := ctrl.DB.Save(&professor).Error; err != nil {
		return helper.StoreFailure(c, err)
	}
	return helper.JSONMessage(c, fiber.StatusOK, "Professor atualizado com sucesso!", professor)
}

func (ctrl *ProfessorController) Deletar(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return helper.JSONError(c, fiber.StatusNotFound, "Professor não encontrado.")
	}

	var professor model.ProfessorModel
	if err := ctrl.DB.First(&professor, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JSONErrorf(c, fiber.StatusNotFound, "O professor com ID %d não existe.", id)
		}
		return helper.StoreFailure(c, err)
	}
	if err := ctrl.DB.Delete(&professor).Error; err != nil {
		return helper.StoreFailure(c, err)
	}
	return helper.JSONMessage(c, fiber.StatusOK, "Professor deletado com sucesso!", nil)
}
