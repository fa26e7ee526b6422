package model

// swagger:model Question
type Question struct {
	ID           uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	BaseCourse   string `gorm:"size:512;index" json:"baseCourse"`
	Name         string `gorm:"size:512;index;not null" json:"name"` // div id
	Chapter      string `gorm:"size:512" json:"chapter"`
	Subchapter   string `gorm:"size:512" json:"subchapter"`
	QuestionType string `gorm:"size:50" json:"questionType"`
	HTMLSrc      string `gorm:"column:htmlsrc;type:text" json:"htmlsrc"`
}

func (Question) TableName() string {
	return "questions"
}

func (q *Question) DivID() string {
	return q.Name
}
