package repository

import (
	"context"
	"testing"
	"time"

	"peer_edu_backend/internal/model"
	"peer_edu_backend/internal/testutil"
	"peer_edu_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListPeerAssignmentsByDueDateDesc(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := NewAssignmentRepository(db)
	now := time.Now()

	older := testutil.CreateAssignment(t, db, "cs101", now.Add(-48*time.Hour), "q1")
	newer := testutil.CreateAssignment(t, db, "cs101", now, "q2")
	testutil.CreateAssignment(t, db, "cs102", now, "q3")
	require.NoError(t, db.Create(&model.Assignment{CourseName: "cs101", Name: "hw", DueDate: now}).Error)

	list, err := repo.ListPeerAssignments(context.Background(), "cs101")
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, newer.ID, list[0].ID)
	assert.Equal(t, older.ID, list[1].ID)
}

func TestListQuestionsBySortingPriority(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := NewAssignmentRepository(db)

	a := &model.Assignment{CourseName: "cs101", Name: "peer", IsPeer: true}
	require.NoError(t, db.Create(a).Error)
	require.NoError(t, db.Create(&model.AssignmentQuestion{AssignmentID: a.ID, QuestionID: 30, SortingPriority: 3}).Error)
	require.NoError(t, db.Create(&model.AssignmentQuestion{AssignmentID: a.ID, QuestionID: 10, SortingPriority: 1}).Error)
	require.NoError(t, db.Create(&model.AssignmentQuestion{AssignmentID: a.ID, QuestionID: 20, SortingPriority: 2}).Error)

	qs, err := repo.ListQuestions(context.Background(), a.ID)
	require.NoError(t, err)
	require.Len(t, qs, 3)
	assert.Equal(t, []uint{10, 20, 30}, []uint{qs[0].QuestionID, qs[1].QuestionID, qs[2].QuestionID})
}

func TestAssignmentRepositoryNotFound(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := NewAssignmentRepository(db)

	_, err := repo.FindByID(context.Background(), 999)
	assert.ErrorIs(t, err, util.ErrAssignmentNotFound)

	_, err = repo.FindQuestionByID(context.Background(), 999)
	assert.ErrorIs(t, err, util.ErrQuestionNotFound)
}

func TestUpdateCurrentIndex(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := NewAssignmentRepository(db)
	a := testutil.CreateAssignment(t, db, "cs101", time.Now(), "q1", "q2")

	require.NoError(t, repo.UpdateCurrentIndex(context.Background(), a.ID, 1))

	got, err := repo.FindByID(context.Background(), a.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, got.CurrentIndex)
}
