package model

import "escolaku_backend/internals/helpers/dbtime"

type AlunoModel struct {
	AlunoID              uint            `json:"id" gorm:"column:id;primaryKey"`
	Nome                 string          `json:"nome" gorm:"column:nome;size:100;not null"`
	Idade                int             `json:"idade" gorm:"column:idade;not null"`
	TurmaID              uint            `json:"turma_id" gorm:"column:turma_id;not null"`
	DataNascimento       dbtime.DateOnly `json:"data_nascimento" gorm:"column:data_nascimento;not null"`
	NotaPrimeiroSemestre *float64        `json:"nota_primeiro_semestre" gorm:"column:nota_primeiro_semestre"`
	NotaSegundoSemestre  *float64        `json:"nota_segundo_semestre" gorm:"column:nota_segundo_semestre"`
	MediaFinal           *float64        `json:"media_final" gorm:"column:media_final"`
}

func (AlunoModel) TableName() string {
	return "alunos"
}
