package dto

import (
	"escolaku_backend/internals/features/gerenciamento/model"
	"escolaku_backend/internals/helpers/dbtime"
)

/* =========================================================
   REQUEST DTO — criação (campos obrigatórios como ponteiro,
   para distinguir ausente de zero)
========================================================= */

type CreateAlunoRequest struct {
	Nome                 *string          `json:"nome" validate:"required,max=100"`
	Idade                *int             `json:"idade" validate:"required"`
	TurmaID              *uint            `json:"turma_id" validate:"required"`
	DataNascimento       *dbtime.DateOnly `json:"data_nascimento" validate:"required"`
	NotaPrimeiroSemestre *float64         `json:"nota_primeiro_semestre"`
	NotaSegundoSemestre  *float64         `json:"nota_segundo_semestre"`
	MediaFinal           *float64         `json:"media_final"`
}

func (r CreateAlunoRequest) ToModel() model.AlunoModel {
	return model.AlunoModel{
		Nome:                 *r.Nome,
		Idade:                *r.Idade,
		TurmaID:              *r.TurmaID,
		DataNascimento:       *r.DataNascimento,
		NotaPrimeiroSemestre: r.NotaPrimeiroSemestre,
		NotaSegundoSemestre:  r.NotaSegundoSemestre,
		MediaFinal:           r.MediaFinal,
	}
}

/* =========================================================
   REQUEST DTO — atualização parcial: nil = não mexe
========================================================= */

type UpdateAlunoRequest struct {
	Nome                 *string          `json:"nome" validate:"omitempty,max=100"`
	Idade                *int             `json:"idade"`
	TurmaID              *uint            `json:"turma_id"`
	DataNascimento       *dbtime.DateOnly `json:"data_nascimento"`
	NotaPrimeiroSemestre *float64         `json:"nota_primeiro_semestre"`
	NotaSegundoSemestre  *float64         `json:"nota_segundo_semestre"`
	MediaFinal           *float64         `json:"media_final"`
}

func (r UpdateAlunoRequest) Apply(m *model.AlunoModel) {
	if r.Nome != nil {
		m.Nome = *r.Nome
	}
	if r.Idade != nil {
		m.Idade = *r.Idade
	}
	if r.TurmaID != nil {
		m.TurmaID = *r.TurmaID
	}
	if r.DataNascimento != nil {
		m.DataNascimento = *r.DataNascimento
	}
	if r.NotaPrimeiroSemestre != nil {
		m.NotaPrimeiroSemestre = r.NotaPrimeiroSemestre
	}
	if r.NotaSegundoSemestre != nil {
		m.NotaSegundoSemestre = r.NotaSegundoSemestre
	}
	if r.MediaFinal != nil {
		m.MediaFinal = r.MediaFinal
	}
}
