package model

type NotaModel struct {
	NotaID      uint    `json:"id" gorm:"column:id;primaryKey"`
	Nota        float64 `json:"nota" gorm:"column:nota;not null"`
	IDAluno     uint    `json:"id_aluno" gorm:"column:id_aluno;not null"`
	IDAtividade uint    `json:"id_atividade" gorm:"column:id_atividade;not null"`
}

func (NotaModel) TableName() string {
	return "notas"
}
