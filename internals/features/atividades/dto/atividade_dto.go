package dto

import (
	"escolaku_backend/internals/features/atividades/model"
	"escolaku_backend/internals/helpers/dbtime"
)

type CreateAtividadeRequest struct {
	NomeAtividade *string          `json:"nome_atividade" validate:"required"`
	Descricao     *string          `json:"descricao" validate:"required"`
	PesoPorcento  *int             `json:"peso_porcento" validate:"required"`
	DataEntrega   *dbtime.DateOnly `json:"data_entrega" validate:"required"`
	IDTurma       *uint            `json:"id_turma" validate:"required"`
	IDProfessor   *uint            `json:"id_professor" validate:"required"`
}

func (r CreateAtividadeRequest) ToModel() model.AtividadeModel {
	return model.AtividadeModel{
		NomeAtividade: *r.NomeAtividade,
		Descricao:     *r.Descricao,
		PesoPorcento:  *r.PesoPorcento,
		DataEntrega:   *r.DataEntrega,
		IDTurma:       *r.IDTurma,
		IDProfessor:   *r.IDProfessor,
	}
}

type UpdateAtividadeRequest struct {
	NomeAtividade *string          `json:"nome_atividade"`
	Descricao     *string          `json:"descricao"`
	PesoPorcento  *int             `json:"peso_porcento"`
	DataEntrega   *dbtime.DateOnly `json:"data_entrega"`
	IDTurma       *uint            `json:"id_turma"`
	IDProfessor   *uint            `json:"id_professor"`
}

func (r UpdateAtividadeRequest) Apply(m *model.AtividadeModel) {
	if r.NomeAtividade != nil {
		m.NomeAtividade = *r.NomeAtividade
	}
	if r.Descricao != nil {
		m.Descricao = *r.Descricao
	}
	if r.PesoPorcento != nil {
		m.PesoPorcento = *r.PesoPorcento
	}
	if r.DataEntrega != nil {
		m.DataEntrega = *r.DataEntrega
	}
	if r.IDTurma != nil {
		m.IDTurma = *r.IDTurma
	}
	if r.IDProfessor != nil {
		m.IDProfessor = *r.IDProfessor
	}
}
