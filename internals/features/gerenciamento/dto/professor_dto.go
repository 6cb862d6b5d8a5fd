package dto

import "escolaku_backend/internals/features/gerenciamento/model"

type CreateProfessorRequest struct {
	Nome        *string `json:"nome" validate:"required,max=100"`
	Idade       *int    `json:"idade" validate:"required"`
	Materia     *string `json:"materia" validate:"required,max=100"`
	Observacoes *string `json:"observacoes"`
}

func (r CreateProfessorRequest) ToModel() model.ProfessorModel {
	return model.ProfessorModel{
		Nome:        *r.Nome,
		Idade:       *r.Idade,
		Materia:     *r.Materia,
		Observacoes: r.Observacoes,
	}
}

type UpdateProfessorRequest struct {
	Nome        *string `json:"nome" validate:"omitempty,max=100"`
	Idade       *int    `json:"idade"`
	Materia     *string `json:"materia" validate:"omitempty,max=100"`
	Observacoes *string `json:"observacoes"`
}

func (r UpdateProfessorRequest) Apply(m *model.ProfessorModel) {
	if r.Nome != nil {
		m.Nome = *r.Nome
	}
	if r.Idade != nil {
		m.Idade = *r.Idade
	}
	if r.Materia != nil {
		m.Materia = *r.Materia
	}
	if r.Observacoes != nil {
		m.Observacoes = r.Observacoes
	}
}
