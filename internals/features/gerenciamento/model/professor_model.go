package model

type ProfessorModel struct {
	ProfessorID uint    `json:"id" gorm:"column:id;primaryKey"`
	Nome        string  `json:"nome" gorm:"column:nome;size:100;not null"`
	Idade       int     `json:"idade" gorm:"column:idade;not null"`
	Materia     string  `json:"materia" gorm:"column:materia;size:100;not null"`
	Observacoes *string `json:"observacoes" gorm:"column:observacoes;type:text"`
}

func (ProfessorModel) TableName() string {
	return "professor"
}
