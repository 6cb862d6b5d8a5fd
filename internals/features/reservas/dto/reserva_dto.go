package dto

import (
	"escolaku_backend/internals/features/reservas/model"
	"escolaku_backend/internals/helpers/dbtime"
)

type CreateReservaRequest struct {
	NumSala *int             `json:"num_sala" validate:"required"`
	Lab     *bool            `json:"lab" validate:"required"`
	Data    *dbtime.DateOnly `json:"data" validate:"required"`
	IDTurma *uint            `json:"id_turma" validate:"required"`
}

func (r CreateReservaRequest) ToModel() model.ReservaModel {
	return model.ReservaModel{
		NumSala: *r.NumSala,
		Lab:     *r.Lab,
		Data:    *r.Data,
		IDTurma: *r.IDTurma,
	}
}

type UpdateReservaRequest struct {
	NumSala *int             `json:"num_sala"`
	Lab     *bool            `json:"lab"`
	Data    *dbtime.DateOnly `json:"data"`
	IDTurma *uint            `json:"id_turma"`
}

func (r UpdateReservaRequest) Apply(m *model.ReservaModel) {
	if r.NumSala != nil {
		m.NumSala = *r.NumSala
	}
	if r.Lab != nil {
		m.Lab = *r.Lab
	}
	if r.Data != nil {
		m.Data = *r.Data
	}
	if r.IDTurma != nil {
		m.IDTurma = *r.IDTurma
	}
}
