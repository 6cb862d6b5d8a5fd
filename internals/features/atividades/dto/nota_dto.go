package dto

import "escolaku_backend/internals/features/atividades/model"

type CreateNotaRequest struct {
	Nota        *float64 `json:"nota" validate:"required"`
	IDAluno     *uint    `json:"id_aluno" validate:"required"`
	IDAtividade *uint    `json:"id_atividade" validate:"required"`
}

func (r CreateNotaRequest) ToModel() model.NotaModel {
	return model.NotaModel{
		Nota:        *r.Nota,
		IDAluno:     *r.IDAluno,
		IDAtividade: *r.IDAtividade,
	}
}

type UpdateNotaRequest struct {
	Nota        *float64 `json:"nota"`
	IDAluno     *uint    `json:"id_aluno"`
	IDAtividade *uint    `json:"id_atividade"`
}

func (r UpdateNotaRequest) Apply(m *model.NotaModel) {
	if r.Nota != nil {
		m.Nota = *r.Nota
	}
	if r.IDAluno != nil {
		m.IDAluno = *r.IDAluno
	}
	if r.IDAtividade != nil {
		m.IDAtividade = *r.IDAtividade
	}
}
