package model

import "encoding/json"

// DiagnosticRecord stores one completed (or skipped) diagnostic assessment.
// Results, LearningStyle and KnowledgeLevel are the computed value objects
// serialized as JSON; they are never recomputed after completion.
type DiagnosticRecord struct {
	UUIDBase
	UserID           uint            `gorm:"index;not null" json:"userId"`
	User             *User           `gorm:"foreignKey:UserID" json:"user,omitempty"`
	SubjectID        string          `gorm:"index;type:varchar(36);not null" json:"subjectId"`
	Subject          *Subject        `gorm:"foreignKey:SubjectID" json:"subject,omitempty"`
	Skipped          bool            `gorm:"default:false" json:"skipped"`
	Results          json.RawMessage `gorm:"type:json" json:"results"`
	LearningStyle    json.RawMessage `gorm:"type:json" json:"learningStyle"`
	KnowledgeLevel   json.RawMessage `gorm:"type:json" json:"knowledgeLevel"`
	RecommendedLevel string          `gorm:"size:20" json:"recommendedLevel"`
}

func (DiagnosticRecord) TableName() string {
	return "diagnostic_records"
}
