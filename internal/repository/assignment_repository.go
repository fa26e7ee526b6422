package repository

import (
	"context"
	"errors"
	"fmt"
	"peer_edu_backend/internal/model"
	"peer_edu_backend/internal/util"

	"gorm.io/gorm"
)

type AssignmentRepository struct {
	DB *gorm.DB
}

func NewAssignmentRepository(db *gorm.DB) *AssignmentRepository {
	return &AssignmentRepository{DB: db}
}

// ListPeerAssignments 课程下的互评作业，按截止时间倒序
func (r *AssignmentRepository) ListPeerAssignments(ctx context.Context, courseName string) ([]model.Assignment, error) {
	var assignments []model.Assignment
	err := r.DB.WithContext(ctx).
		Where("is_peer = ? AND course_name = ?", true, courseName).
		Order("duedate desc").
		Find(&assignments).Error
	return assignments, err
}

func (r *AssignmentRepository) FindByID(ctx context.Context, id uint) (*model.Assignment, error) {
	var a model.Assignment
	err := r.DB.WithContext(ctx).First(&a, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("assignment %d: %w", id, util.ErrAssignmentNotFound)
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// ListQuestions 作业题目按 sorting_priority 排序
func (r *AssignmentRepository) ListQuestions(ctx context.Context, assignmentID uint) ([]model.AssignmentQuestion, error) {
	var qs []model.AssignmentQuestion
	err := r.DB.WithContext(ctx).
		Where("assignment_id = ?", assignmentID).
		Order("sorting_priority asc, id asc").
		Find(&qs).Error
	return qs, err
}

func (r *AssignmentRepository) FindQuestionByID(ctx context.Context, id uint) (*model.Question, error) {
	var q model.Question
	err := r.DB.WithContext(ctx).First(&q, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("question %d: %w", id, util.ErrQuestionNotFound)
	}
	if err != nil {
		return nil, err
	}
	return &q, nil
}

func (r *AssignmentRepository) UpdateCurrentIndex(ctx context.Context, assignmentID uint, idx int) error {
	return r.DB.WithContext(ctx).
		Model(&model.Assignment{}).
		Where("id = ?", assignmentID).
		Update("current_index", idx).Error
}
