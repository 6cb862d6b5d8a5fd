package controller

import (
	"errors"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"escolaku_backend/internals/existence"
	"escolaku_backend/internals/features/atividades/dto"
	"escolaku_backend/internals/features/atividades/model"
	helper "escolaku_backend/internals/helpers"
)

var validate = validator.New()

// AtividadeController valida professor e turma contra o serviço de
// gerenciamento antes de gravar. As URLs chegam por injeção para os testes
// poderem apontar para stubs.
type AtividadeController struct {
	DB                *gorm.DB
	Checker           *existence.Client
	ListaProfessorURL string
	ListaTurmasURL    string
}

func NewAtividadeController(db *gorm.DB, checker *existence.Client, professorURL, turmasURL string) *AtividadeController {
	return &AtividadeController{DB: db, Checker: checker, ListaProfessorURL: professorURL, ListaTurmasURL: turmasURL}
}

func (ctrl *AtividadeController) Listar(c *fiber.Ctx) error {
	atividades := make([]model.AtividadeModel, 0)
	if err := ctrl.DB.Find(&atividades).Error; err != nil {
		return helper.StoreFailure(c, err)
	}
	return c.JSON(atividades)
}

func (ctrl *AtividadeController) Criar(c *fiber.Ctx) error {
	var req dto.CreateAtividadeRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.ValidationError(c, err)
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	if ok, resp := ctrl.checkProfessor(c, *req.IDProfessor); !ok {
		return resp
	}
	if ok, resp := ctrl.checkTurma(c, *req.IDTurma); !ok {
		return resp
	}

	atividade := req.ToModel()
	if err := ctrl.DB.Create(&atividade).Error; err != nil {
		return helper.StoreFailure(c, err)
	}
	return helper.JSONMessage(c, fiber.StatusCreated, "Atividade adicionada com sucesso!", atividade)
}

func (ctrl *AtividadeController) Atualizar(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return helper.JSONError(c, fiber.StatusNotFound, "Atividade não encontrada.")
	}

	var atividade model.AtividadeModel
	if err := ctrl.DB.First(&atividade, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JSONErrorf(c, fiber.StatusNotFound, "A atividade com ID %d não existe.", id)
		}
		return helper.StoreFailure(c, err)
	}

	var req dto.UpdateAtividadeRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	// referência só é revalidada quando o patch a traz
	if req.IDProfessor != nil {
		if ok, resp := ctrl.checkProfessor(c, *req.IDProfessor); !ok {
			return resp
		}
	}
	if req.IDTurma != nil {
		if ok, resp := ctrl.checkTurma(c, *req.IDTurma); !ok {
			return resp
		}
	}

	req.Apply(&atividade)
	if err := ctrl.DB.Save(&atividade).Error; err != nil {
		return helper.StoreFailure(c, err)
	}
	return helper.JSONMessage(c, fiber.StatusOK, "Atividade atualizada com sucesso!", atividade)
}

func (ctrl *AtividadeController) Deletar(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return helper.JSONError(c, fiber.StatusNotFound, "Atividade não encontrada.")
	}

	var atividade model.AtividadeModel
	if err := ctrl.DB.First(&atividade, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JSONErrorf(c, fiber.StatusNotFound, "A atividade com ID %d não existe.", id)
		}
		return helper.StoreFailure(c, err)
	}
	if err := ctrl.DB.Delete(&atividade).Error; err != nil {
		return helper.StoreFailure(c, err)
	}
	return helper.JSONMessage(c, fiber.StatusOK, "Atividade deletada com sucesso!", nil)
}

// checkProfessor / checkTurma: ok=true quando a referência existe. Quando
// ok=false a resposta já foi escrita (404 de negócio ou 500 de upstream) e o
// handler só repassa resp.

func (ctrl *AtividadeController) checkProfessor(c *fiber.Ctx, id uint) (bool, error) {
	found, err := ctrl.Checker.Exists(c.UserContext(), ctrl.ListaProfessorURL, strconv.FormatUint(uint64(id), 10))
	if err != nil {
		return false, helper.UpstreamFailure(c, "professores", err)
	}
	if !found {
		return false, helper.JSONErrorf(c, fiber.StatusNotFound, "O professor com ID %d não existe.", id)
	}
	return true, nil
}

func (ctrl *AtividadeController) checkTurma(c *fiber.Ctx, id uint) (bool, error) {
	found, err := ctrl.Checker.Exists(c.UserContext(), ctrl.ListaTurmasURL, strconv.FormatUint(uint64(id), 10))
	if err != nil {
		return false, helper.UpstreamFailure(c, "turmas", err)
	}
	if !found {
		return false, helper.JSONErrorf(c, fiber.StatusNotFound, "A turma com ID %d não existe.", id)
	}
	return true, nil
}
