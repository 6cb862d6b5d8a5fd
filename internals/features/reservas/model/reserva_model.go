package model

import "escolaku_backend/internals/helpers/dbtime"

type ReservaModel struct {
	ReservaID uint            `json:"id" gorm:"column:id;primaryKey"`
	NumSala   int             `json:"num_sala" gorm:"column:num_sala;not null"`
	Lab       bool            `json:"lab" gorm:"column:lab;not null"`
	Data      dbtime.DateOnly `json:"data" gorm:"column:data;not null"`
	IDTurma   uint            `json:"id_turma" gorm:"column:id_turma;not null"`
}

func (ReservaModel) TableName() string {
	return "reserva"
}
