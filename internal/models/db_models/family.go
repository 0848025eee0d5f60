package db_models

type Family struct {
	BaseModel
	FamilyName string `gorm:"not null" json:"family_name"`
	Address    string `json:"address,omitempty"`
	HomePhone  string `json:"home_phone,omitempty"`

	Members []Member `gorm:"foreignKey:FamilyID;constraint:OnDelete:CASCADE" json:"-"`
}
