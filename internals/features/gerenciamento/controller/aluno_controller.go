package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"escolaku_backend/internals/features/gerenciamento/dto"
	"escolaku_backend/internals/features/gerenciamento/model"
	helper "escolaku_backend/internals/helpers"
)

var validate = validator.New()

type AlunoController struct {
	DB *gorm.DB
}

func NewAlunoController(db *gorm.DB) *AlunoController {
	return &AlunoController{DB: db}
}

// Listar: array puro, sempre 200 (vazio inclusive).
func (ctrl *AlunoController) Listar(c *fiber.Ctx) error {
	alunos := make([]model.AlunoModel, 0)
	if err := ctrl.DB.Find(&alunos).Error; err != nil {
		return helper.StoreFailure(c, err)
	}
	return c.JSON(alunos)
}

func (ctrl *AlunoController) Criar(c *fiber.Ctx) error {
	var req dto.CreateAlunoRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.ValidationError(c, err)
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	// turma é referência local: a checagem é um lookup no próprio banco
	var turma model.TurmaModel
	if err := ctrl.DB.First(&turma, *req.TurmaID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JSONErrorf(c, fiber.StatusNotFound, "A turma com ID %d não existe.", *req.TurmaID)
		}
		return helper.StoreFailure(c, err)
	}

	aluno := req.ToModel()
	if err := ctrl.DB.Create(&aluno).Error; err != nil {
		return helper.StoreFailure(c, err)
	}
	return helper.JSONMessage(c, fiber.StatusCreated, "Aluno adicionado com sucesso!", aluno)
}

func (ctrl *AlunoController) Atualizar(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return helper.JSONError(c, fiber.StatusNotFound, "Aluno não encontrado.")
	}

	var aluno model.AlunoModel
	if err := ctrl.DB.First(&aluno, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JSONErrorf(c, fiber.StatusNotFound, "O aluno com ID %d não existe.", id)
		}
		return helper.StoreFailure(c, err)
	}

	var req dto.UpdateAlunoRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.ValidationError(c, err)
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	// revalida a turma só se o patch trouxer turma_id
	if req.TurmaID != nil {
		var turma model.TurmaModel
		if err := ctrl.DB.First(&turma, *req.TurmaID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return helper.JSONErrorf(c, fiber.StatusNotFound, "A turma com ID %d não existe.", *req.TurmaID)
			}
			return helper.StoreFailure(c, err)
		}
	}

	req.Apply(&aluno)
	if err := ctrl.DB.Save(&aluno).Error; err != nil {
		return helper.StoreFailure(c, err)
	}
	return helper.JSONMessage(c, fiber.StatusOK, "Aluno atualizado com sucesso!", aluno)
}

func (ctrl *AlunoController) Deletar(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return helper.JSONError(c, fiber.StatusNotFound, "Aluno não encontrado.")
	}

	var aluno model.AlunoModel
	if err := ctrl.DB.First(&aluno, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JSONErrorf(c, fiber.StatusNotFound, "O aluno com ID %d não existe.", id)
		}
		return helper.StoreFailure(c, err)
	}
	if err := ctrl.DB.Delete(&aluno).Error; err != nil {
		return helper.StoreFailure(c, err)
	}
	return helper.JSONMessage(c, fiber.StatusOK, "Aluno removido com sucesso!", nil)
}
