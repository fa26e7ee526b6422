package repository

import (
	"context"
	"fmt"
	"peer_edu_backend/internal/model"
	"peer_edu_backend/internal/util"
	"strings"

	"github.com/spf13/cast"
	"gorm.io/gorm"
)

type AnswerRepository struct {
	DB *gorm.DB
}

func NewAnswerRepository(db *gorm.DB) *AnswerRepository {
	return &AnswerRepository{DB: db}
}

const firstAnswersSQL = `
WITH first_answer AS (
	SELECT
		id, sid, answer, correct,
		ROW_NUMBER() OVER (PARTITION BY sid ORDER BY id) AS rn
	FROM mchoice_answers
	WHERE div_id = ? AND course_name = ?
)
SELECT id, sid, answer, correct, rn
FROM first_answer
WHERE rn <= ?
ORDER BY sid, rn
LIMIT ?`

type firstAnswerRow struct {
	ID      uint    `gorm:"column:id"`
	Sid     string  `gorm:"column:sid"`
	Answer  *string `gorm:"column:answer"`
	Correct string  `gorm:"column:correct"`
	Rn      int     `gorm:"column:rn"`
}

// FirstNAnswers 每个学生对该题的前 attemptNumber 次作答，按学生、作答顺序排列。
// 空答案在截断之后丢弃
func (r *AnswerRepository) FirstNAnswers(ctx context.Context, attemptNumber int, divID, courseName string) ([]model.AnswerRow, error) {
	if attemptNumber < 1 {
		return nil, util.ErrInvalidAttemptNumber
	}

	var raw []firstAnswerRow
	err := r.DB.WithContext(ctx).
		Raw(firstAnswersSQL, divID, courseName, attemptNumber, util.MaxAnswerRows).
		Scan(&raw).Error
	if err != nil {
		return nil, fmt.Errorf("query answers for %s: %w", divID, err)
	}

	rows := make([]model.AnswerRow, 0, len(raw))
	for _, a := range raw {
		if a.Answer == nil || strings.TrimSpace(*a.Answer) == "" {
			continue
		}
		v, err := cast.ToIntE(strings.TrimSpace(*a.Answer))
		if err != nil {
			return nil, fmt.Errorf("answer %d for %s is not an option index: %w", a.ID, a.Sid, err)
		}
		rows = append(rows, model.AnswerRow{
			ID:      a.ID,
			Sid:     a.Sid,
			Answer:  v,
			Correct: a.Correct,
			Attempt: a.Rn,
		})
	}
	return rows, nil
}
