package repository

import (
	"context"
	"fmt"
	"testing"
	"time"

	"peer_edu_backend/internal/model"
	"peer_edu_backend/internal/testutil"
	"peer_edu_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFirstNAnswersOrdersByStudentThenAttempt(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := NewAnswerRepository(db)

	testutil.AddAnswer(t, db, "cs101", "q1", "bob", testutil.Str("1"), false)
	testutil.AddAnswer(t, db, "cs101", "q1", "alice", testutil.Str("0"), true)
	testutil.AddAnswer(t, db, "cs101", "q1", "bob", testutil.Str("0"), true)
	testutil.AddAnswer(t, db, "cs101", "q1", "alice", testutil.Str("2"), false)
	testutil.AddAnswer(t, db, "cs101", "q1", "bob", testutil.Str("3"), false)

	rows, err := repo.FirstNAnswers(context.Background(), 2, "q1", "cs101")
	require.NoError(t, err)
	require.Len(t, rows, 4)

	assert.Equal(t, "alice", rows[0].Sid)
	assert.Equal(t, 1, rows[0].Attempt)
	assert.Equal(t, 0, rows[0].Answer)
	assert.True(t, rows[0].IsCorrect())

	assert.Equal(t, "alice", rows[1].Sid)
	assert.Equal(t, 2, rows[1].Attempt)
	assert.Equal(t, 2, rows[1].Answer)

	assert.Equal(t, "bob", rows[2].Sid)
	assert.Equal(t, 1, rows[2].Attempt)
	assert.Equal(t, 1, rows[2].Answer)
	assert.True(t, rows[2].IsIncorrect())

	assert.Equal(t, "bob", rows[3].Sid)
	assert.Equal(t, 2, rows[3].Attempt)
}

func TestFirstNAnswersFirstAttemptOnly(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := NewAnswerRepository(db)

	testutil.AddAnswer(t, db, "cs101", "q1", "carol", testutil.Str("1"), false)
	testutil.AddAnswer(t, db, "cs101", "q1", "carol", testutil.Str("2"), true)

	rows, err := repo.FirstNAnswers(context.Background(), 1, "q1", "cs101")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, 1, rows[0].Answer)
	assert.False(t, rows[0].IsCorrect())
}

func TestFirstNAnswersFiltersCourseAndQuestion(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := NewAnswerRepository(db)

	testutil.AddAnswer(t, db, "cs101", "q1", "alice", testutil.Str("0"), true)
	testutil.AddAnswer(t, db, "cs102", "q1", "bob", testutil.Str("0"), true)
	testutil.AddAnswer(t, db, "cs101", "q2", "carol", testutil.Str("0"), true)

	rows, err := repo.FirstNAnswers(context.Background(), 1, "q1", "cs101")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "alice", rows[0].Sid)
}

func TestFirstNAnswersDropsNullAnswers(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := NewAnswerRepository(db)

	// 第一次作答为空仍占用一个序号
	testutil.AddAnswer(t, db, "cs101", "q1", "dave", nil, false)
	testutil.AddAnswer(t, db, "cs101", "q1", "dave", testutil.Str("1"), true)
	testutil.AddAnswer(t, db, "cs101", "q1", "erin", testutil.Str(""), false)

	rows, err := repo.FirstNAnswers(context.Background(), 1, "q1", "cs101")
	require.NoError(t, err)
	assert.Empty(t, rows)

	rows, err = repo.FirstNAnswers(context.Background(), 2, "q1", "cs101")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "dave", rows[0].Sid)
	assert.Equal(t, 2, rows[0].Attempt)
}

func TestFirstNAnswersRejectsNonIntegerAnswer(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := NewAnswerRepository(db)

	testutil.AddAnswer(t, db, "cs101", "q1", "frank", testutil.Str("0,2"), false)

	_, err := repo.FirstNAnswers(context.Background(), 1, "q1", "cs101")
	assert.Error(t, err)
}

func TestFirstNAnswersRejectsZeroAttempts(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := NewAnswerRepository(db)

	_, err := repo.FirstNAnswers(context.Background(), 0, "q1", "cs101")
	assert.ErrorIs(t, err, util.ErrInvalidAttemptNumber)
}

func TestFirstNAnswersCapsRows(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := NewAnswerRepository(db)

	const students = 2100
	now := time.Now()
	records := make([]model.MChoiceAnswer, 0, students*3)
	for attempt := 0; attempt < 3; attempt++ {
		for i := 0; i < students; i++ {
			v := fmt.Sprint(attempt)
			records = append(records, model.MChoiceAnswer{
				Timestamp:  now,
				Sid:        fmt.Sprintf("s%04d", i),
				DivID:      "q1",
				CourseName: "cs101",
				Answer:     &v,
				Correct:    model.AnswerIncorrect,
			})
		}
	}
	require.NoError(t, db.CreateInBatches(records, 500).Error)

	rows, err := repo.FirstNAnswers(context.Background(), 2, "q1", "cs101")
	require.NoError(t, err)
	assert.Len(t, rows, util.MaxAnswerRows)
	assert.Equal(t, "s0000", rows[0].Sid)
	assert.Equal(t, 1, rows[0].Attempt)
	assert.Equal(t, 2, rows[1].Attempt)

	rows, err = repo.FirstNAnswers(context.Background(), 1, "q1", "cs101")
	require.NoError(t, err)
	require.Len(t, rows, students)
	seen := make(map[string]bool, students)
	for _, r := range rows {
		assert.Equal(t, 1, r.Attempt)
		assert.Equal(t, 0, r.Answer)
		seen[r.Sid] = true
	}
	assert.Len(t, seen, students)
}
