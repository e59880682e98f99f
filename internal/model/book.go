package model

const (
	BookStatusPublished = "published"
	BookStatusReview    = "review"
)

// Book is a bibliography entry; the uploaded file lives in object storage
// under FilePath.
type Book struct {
	UUIDBase
	Title     string   `gorm:"size:255;not null" json:"title"`
	Author    string   `gorm:"size:255" json:"author"`
	SubjectID string   `gorm:"index;type:varchar(36);not null" json:"subjectId"`
	Subject   *Subject `gorm:"foreignKey:SubjectID" json:"subject,omitempty"`
	FilePath  string   `gorm:"size:512" json:"filePath"`
	Status    string   `gorm:"size:20;default:'published'" json:"status"`
	Downloads int      `gorm:"default:0" json:"downloads"`
}

func (Book) TableName() string {
	return "books"
}
