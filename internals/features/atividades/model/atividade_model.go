package model

import "escolaku_backend/internals/helpers/dbtime"

type AtividadeModel struct {
	AtividadeID   uint            `json:"id" gorm:"column:id;primaryKey"`
	NomeAtividade string          `json:"nome_atividade" gorm:"column:nome_atividade;not null"`
	Descricao     string          `json:"descricao" gorm:"column:descricao;not null"`
	PesoPorcento  int             `json:"peso_porcento" gorm:"column:peso_porcento;not null"`
	DataEntrega   dbtime.DateOnly `json:"data_entrega" gorm:"column:data_entrega;not null"`
	IDTurma       uint            `json:"id_turma" gorm:"column:id_turma;not null"`
	IDProfessor   uint            `json:"id_professor" gorm:"column:id_professor;not null"`
}

func (AtividadeModel) TableName() string {
	return "atividades"
}
