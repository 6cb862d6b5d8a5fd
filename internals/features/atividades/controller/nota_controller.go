package controller

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"escolaku_backend/internals/existence"
	"escolaku_backend/internals/features/atividades/dto"
	"escolaku_backend/internals/features/atividades/model"
	helper "escolaku_backend/internals/helpers"
)

// NotaController valida o aluno contra o serviço de gerenciamento; a
// atividade é referência local e é checada no próprio banco.
type NotaController struct {
	DB            *gorm.DB
	Checker       *existence.Client
	ListaAlunoURL string
}

func NewNotaController(db *gorm.DB, checker *existence.Client, alunoURL string) *NotaController {
	return &NotaController{DB: db, Checker: checker, ListaAlunoURL: alunoURL}
}

func (ctrl *NotaController) Listar(c *fiber.Ctx) error {
	notas := make([]model.NotaModel, 0)
	if err := ctrl.DB.Find(&notas).Error; err != nil {
		return helper.StoreFailure(c, err)
	}
	return c.JSON(notas)
}

func (ctrl *NotaController) Criar(c *fiber.Ctx) error {
	var req dto.CreateNotaRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.ValidationError(c, err)
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	if ok, resp := ctrl.checkAluno(c, *req.IDAluno); !ok {
		return resp
	}
	if ok, resp := ctrl.checkAtividade(c, *req.IDAtividade); !ok {
		return resp
	}

	nota := req.ToModel()
	if err := ctrl.DB.Create(&nota).Error; err != nil {
		return helper.StoreFailure(c, err)
	}
	return helper.JSONMessage(c, fiber.StatusCreated, "Nota adicionada com sucesso!", nota)
}

func (ctrl *NotaController) Atualizar(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return helper.JSONError(c, fiber.StatusNotFound, "Nota não encontrada.")
	}

	var nota model.NotaModel
	if err := ctrl.DB.First(&nota, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JSONErrorf(c, fiber.StatusNotFound, "A nota com ID %d não existe.", id)
		}
		return helper.StoreFailure(c, err)
	}

	var req dto.UpdateNotaRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	// sem id_aluno no patch não há chamada ao serviço de alunos
	if req.IDAluno != nil {
		if ok, resp := ctrl.checkAluno(c, *req.IDAluno); !ok {
			return resp
		}
	}
	if req.IDAtividade != nil {
		if ok, resp := ctrl.checkAtividade(c, *req.IDAtividade); !ok {
			return resp
		}
	}

	req.Apply(&nota)
	if err := ctrl.DB.Save(&nota).Error; err != nil {
		return helper.StoreFailure(c, err)
	}
	return helper.JSONMessage(c, fiber.StatusOK, "Nota atualizada com sucesso!", nota)
}

func (ctrl *NotaController) Deletar(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return helper.JSONError(c, fiber.StatusNotFound, "Nota não encontrada.")
	}

	var nota model.NotaModel
	if err := ctrl.DB.First(&nota, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JSONErrorf(c, fiber.StatusNotFound, "A nota com ID %d não existe.", id)
		}
		return helper.StoreFailure(c, err)
	}
	if err := ctrl.DB.Delete(&nota).Error; err != nil {
		return helper.StoreFailure(c, err)
	}
	return helper.JSONMessage(c, fiber.StatusOK, "Nota deletada com sucesso!", nil)
}

func (ctrl *NotaController) checkAluno(c *fiber.Ctx, id uint) (bool, error) {
	found, err := ctrl.Checker.Exists(c.UserContext(), ctrl.ListaAlunoURL, strconv.FormatUint(uint64(id), 10))
	if err != nil {
		return false, helper.UpstreamFailure(c, "alunos", err)
	}
	if !found {
		return false, helper.JSONErrorf(c, fiber.StatusNotFound, "O aluno com ID %d não existe.", id)
	}
	return true, nil
}

func (ctrl *NotaController) checkAtividade(c *fiber.Ctx, id uint) (bool, error) {
	var atividade model.AtividadeModel
	if err := ctrl.DB.First(&atividade, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, helper.JSONErrorf(c, fiber.StatusNotFound, "A atividade com ID %d não existe.", id)
		}
		return false, helper.StoreFailure(c, err)
	}
	return true, nil
}
