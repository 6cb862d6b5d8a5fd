package model

type TurmaModel struct {
	TurmaID     uint   `json:"id" gorm:"column:id;primaryKey"`
	Descricao   string `json:"descricao" gorm:"column:descricao;size:100;not null"`
	ProfessorID uint   `json:"professor_id" gorm:"column:professor_id;not null"`
	// default de "ativo" é aplicado no DTO de criação; tag default no GORM
	// engoliria um false explícito do cliente
	Ativo bool `json:"ativo" gorm:"column:ativo;not null"`
}

func (TurmaModel) TableName() string {
	return "turma"
}
