package model

type Category struct {
	ID   uint   `gorm:"primarykey" json:"id"`
	Type string `json:"type" gorm:"not null;uniqueIndex"`
	// Questions is only used to declare the foreign key for migrations.
	Questions []Question `json:"-" gorm:"foreignKey:Category;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;"`
}
