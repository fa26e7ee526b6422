package testutil

import (
	"testing"
	"time"

	"peer_edu_backend/internal/model"
	"peer_edu_backend/internal/util"

	"github.com/alicebob/miniredis/v2"
	"github.com/glebarez/sqlite"
	"github.com/go-redis/redis/v8"
	"github.com/golang-jwt/jwt/v5"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// SetupTestDB 内存 SQLite，迁移互评表和答题表
func SetupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("Failed to get sql.DB: %v", err)
	}
	// 每个连接都是独立的内存库，只保留一个
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	models := append(model.PeerModels(), &model.MChoiceAnswer{})
	if err := db.AutoMigrate(models...); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}
	return db
}

// SetupTestRedis 基于 miniredis 的 Redis 客户端
func SetupTestRedis(t *testing.T) (*redis.Client, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })
	return rdb, mr
}

// CreateAssignment 创建带题目的互评作业，题目 div id 依次为 divIDs
func CreateAssignment(t *testing.T, db *gorm.DB, course string, due time.Time, divIDs ...string) *model.Assignment {
	t.Helper()

	a := &model.Assignment{
		CourseName: course,
		Name:       "peer " + due.Format(util.DateFormat),
		DueDate:    due,
		IsPeer:     true,
	}
	if err := db.Create(a).Error; err != nil {
		t.Fatalf("Failed to create assignment: %v", err)
	}

	for i, div := range divIDs {
		q := &model.Question{BaseCourse: course, Name: div, QuestionType: "mchoice"}
		if err := db.Create(q).Error; err != nil {
			t.Fatalf("Failed to create question: %v", err)
		}
		aq := &model.AssignmentQuestion{AssignmentID: a.ID, QuestionID: q.ID, SortingPriority: i + 1}
		if err := db.Create(aq).Error; err != nil {
			t.Fatalf("Failed to link question: %v", err)
		}
	}
	return a
}

// AddAnswer 写入一条答题记录；answer 为 nil 表示未作答
func AddAnswer(t *testing.T, db *gorm.DB, course, divID, sid string, answer *string, correct bool) {
	t.Helper()

	flag := model.AnswerIncorrect
	if correct {
		flag = model.AnswerCorrect
	}
	rec := &model.MChoiceAnswer{
		Timestamp:  time.Now(),
		Sid:        sid,
		DivID:      divID,
		CourseName: course,
		Answer:     answer,
		Correct:    flag,
	}
	if err := db.Create(rec).Error; err != nil {
		t.Fatalf("Failed to create answer: %v", err)
	}
}

func Str(s string) *string {
	return &s
}

// Token 用 HS256 签发测试令牌；ttl 为负时得到已过期的令牌
func Token(t *testing.T, claims util.Claims, secret string, ttl time.Duration) string {
	t.Helper()

	claims.ExpiresAt = jwt.NewNumericDate(time.Now().Add(ttl))
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, &claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("Failed to sign token: %v", err)
	}
	return tok
}
