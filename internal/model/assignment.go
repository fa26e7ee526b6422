package model

import "time"

// swagger:model Assignment
type Assignment struct {
	ID           uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	CourseName   string    `gorm:"size:512;index" json:"courseName"`
	Name         string    `gorm:"size:512;not null" json:"name"`
	Description  string    `gorm:"type:text" json:"description"`
	DueDate      time.Time `gorm:"column:duedate" json:"dueDate"`
	IsPeer       bool      `gorm:"default:false" json:"isPeer"`
	CurrentIndex int       `gorm:"default:0" json:"currentIndex"` // 当前展示题目的下标，仅由“下一题”推进
}

func (Assignment) TableName() string {
	return "assignments"
}

// swagger:model AssignmentQuestion
type AssignmentQuestion struct {
	ID              uint `gorm:"primaryKey;autoIncrement" json:"id"`
	AssignmentID    uint `gorm:"index;not null" json:"assignmentId"`
	QuestionID      uint `gorm:"index;not null" json:"questionId"`
	SortingPriority int  `gorm:"default:0" json:"sortingPriority"`
}

func (AssignmentQuestion) TableName() string {
	return "assignment_questions"
}

// PeerModels 互评功能读写的表
func PeerModels() []interface{} {
	return []interface{}{
		&Assignment{},
		&AssignmentQuestion{},
		&Question{},
	}
}
