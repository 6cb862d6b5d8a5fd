package dto

import "escolaku_backend/internals/features/gerenciamento/model"

type CreateTurmaRequest struct {
	Descricao   *string `json:"descricao" validate:"required,max=100"`
	ProfessorID *uint   `json:"professor_id" validate:"required"`
	Ativo       *bool   `json:"ativo"`
}

func (r CreateTurmaRequest) ToModel() model.TurmaModel {
	// ativo omitido → turma nasce ativa
	ativo := true
	if r.Ativo != nil {
		ativo = *r.Ativo
	}
	return model.TurmaModel{
		Descricao:   *r.Descricao,
		ProfessorID: *r.ProfessorID,
		Ativo:       ativo,
	}
}

type UpdateTurmaRequest struct {
	Descricao   *string `json:"descricao" validate:"omitempty,max=100"`
	ProfessorID *uint   `json:"professor_id"`
	Ativo       *bool   `json:"ativo"`
}

func (r UpdateTurmaRequest) Apply(m *model.TurmaModel) {
	if r.Descricao != nil {
		m.Descricao = *r.Descricao
	}
	if r.ProfessorID != nil {
		m.ProfessorID = *r.ProfessorID
	}
	if r.Ativo != nil {
		m.Ativo = *r.Ativo
	}
}
