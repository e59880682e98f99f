package model

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
)

// Conversation is one chat thread between a student and a subject tutor.
type Conversation struct {
	UUIDBase
	UserID    uint      `gorm:"index;not null" json:"userId"`
	User      *User     `gorm:"foreignKey:UserID" json:"user,omitempty"`
	SubjectID string    `gorm:"index;type:varchar(36);not null" json:"subjectId"`
	Subject   *Subject  `gorm:"foreignKey:SubjectID" json:"subject,omitempty"`
	Title     string    `gorm:"size:255" json:"title"`
	Messages  []Message `gorm:"foreignKey:ConversationID" json:"messages,omitempty"`
}

func (Conversation) TableName() string {
	return "conversations"
}

// StringList stores a string slice as a JSON column.
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	b, err := json.Marshal(l)
	return string(b), err
}

func (l *StringList) Scan(src interface{}) error {
	switch v := src.(type) {
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	case nil:
		*l = nil
		return nil
	}
	return errors.New("unsupported type for StringList")
}

type Message struct {
	UUIDBase
	ConversationID string     `gorm:"index;type:varchar(36);not null" json:"conversationId"`
	Content        string     `gorm:"type:text;not null" json:"content"`
	IsAI           bool       `gorm:"default:false" json:"isAi"`
	SourceBook     string     `gorm:"size:255" json:"sourceBook,omitempty"`
	SourceChapter  string     `gorm:"size:255" json:"sourceChapter,omitempty"`
	YouTubeLinks   StringList `gorm:"type:json" json:"youtubeLinks,omitempty"`
	GifURL         string     `gorm:"size:512" json:"gifUrl,omitempty"`
}

func (Message) TableName() string {
	return "messages"
}
