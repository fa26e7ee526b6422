package model

import "time"

const (
	AnswerCorrect   = "T"
	AnswerIncorrect = "F"
)

// MChoiceAnswer 选择题答题记录，由答题子系统写入，这里只读
// swagger:model MChoiceAnswer
type MChoiceAnswer struct {
	ID         uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Timestamp  time.Time `json:"timestamp"`
	Sid        string    `gorm:"size:512;index" json:"sid"`
	DivID      string    `gorm:"column:div_id;size:512;index" json:"divId"`
	CourseName string    `gorm:"size:512;index" json:"courseName"`
	Answer     *string   `gorm:"size:50" json:"answer"`
	Correct    string    `gorm:"size:1" json:"correct"`
}

func (MChoiceAnswer) TableName() string {
	return "mchoice_answers"
}

// AnswerRow 聚合后的一行：某学生第 Attempt 次作答
type AnswerRow struct {
	ID      uint   `json:"id"`
	Sid     string `json:"sid"`
	Answer  int    `json:"answer"`
	Correct string `json:"correct"`
	Attempt int    `json:"attempt"`
}

func (r AnswerRow) IsCorrect() bool {
	return r.Correct == AnswerCorrect
}

func (r AnswerRow) IsIncorrect() bool {
	return r.Correct == AnswerIncorrect
}

// UnknownLetter 超出 A-Z 范围的选项序号
const UnknownLetter = "?"

// Letter 选项序号转字母，0 -> A
func (r AnswerRow) Letter() string {
	if r.Answer < 0 || r.Answer > 'Z'-'A' {
		return UnknownLetter
	}
	return string(rune('A' + r.Answer))
}
