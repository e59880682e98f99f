package model

// Subject is a teachable discipline with its own AI tutor persona.
type Subject struct {
	UUIDBase
	Name             string `gorm:"size:100;unique;not null" json:"name"`
	Description      string `gorm:"type:text" json:"description"`
	Icon             string `gorm:"size:50" json:"icon"`
	Color            string `gorm:"size:30" json:"color"`
	AgentDescription string `gorm:"type:text" json:"agentDescription"`
}

func (Subject) TableName() string {
	return "subjects"
}
