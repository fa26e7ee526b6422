package service

import (
	"context"
	"fmt"
	"peer_edu_backend/internal/config"
	"peer_edu_backend/internal/model"
	"peer_edu_backend/internal/repository"
	"peer_edu_backend/internal/util"
	"peer_edu_backend/pkg/logger"
	"peer_edu_backend/pkg/monitoring"
	"peer_edu_backend/pkg/tracing"
	"sort"
	"sync"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.uber.org/zap"
)

type PeerService struct {
	AssignmentRepo *repository.AssignmentRepository
	AnswerRepo     *repository.AnswerRepository
	PartnerRepo    *repository.PartnerRepository

	mu     sync.RWMutex
	policy config.PeerConfig
}

func NewPeerService(
	assignmentRepo *repository.AssignmentRepository,
	answerRepo *repository.AnswerRepository,
	partnerRepo *repository.PartnerRepository,
	policy config.PeerConfig,
) *PeerService {
	return &PeerService{
		AssignmentRepo: assignmentRepo,
		AnswerRepo:     answerRepo,
		PartnerRepo:    partnerRepo,
		policy:         policy,
	}
}

// SetPolicy 配置热更新时调用
func (s *PeerService) SetPolicy(policy config.PeerConfig) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.policy = policy
}

func (s *PeerService) requireCorrectAnswer() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.policy.RequireCorrectAnswer
}

func (s *PeerService) ListAssignments(ctx context.Context, courseName string) ([]model.Assignment, error) {
	return s.AssignmentRepo.ListPeerAssignments(ctx, courseName)
}

type CurrentQuestion struct {
	AssignmentID uint            `json:"assignmentId"`
	Index        int             `json:"index"`
	Total        int             `json:"total"`
	Question     *model.Question `json:"question"`
}

// CurrentQuestion 返回作业当前题目。next 为 true 时推进并保存游标；
// 否则总是返回第一题且不改动游标
func (s *PeerService) CurrentQuestion(ctx context.Context, assignmentID uint, next bool) (*CurrentQuestion, error) {
	assignment, err := s.AssignmentRepo.FindByID(ctx, assignmentID)
	if err != nil {
		return nil, err
	}

	aqs, err := s.AssignmentRepo.ListQuestions(ctx, assignmentID)
	if err != nil {
		return nil, fmt.Errorf("list questions of assignment %d: %w", assignmentID, err)
	}

	idx, err := ResolveQuestionIndex(assignment.CurrentIndex, len(aqs), next)
	if err != nil {
		return nil, fmt.Errorf("assignment %d: %w", assignmentID, err)
	}
	question, err := s.AssignmentRepo.FindQuestionByID(ctx, aqs[idx].QuestionID)
	if err != nil {
		return nil, err
	}
	logger.Log.Debug("resolved current question",
		zap.Uint("assignment_id", assignmentID),
		zap.Int("idx", idx),
		zap.Int("count", len(aqs)),
		zap.String("div_id", question.DivID()),
	)

	if next && idx != assignment.CurrentIndex {
		if err := s.AssignmentRepo.UpdateCurrentIndex(ctx, assignmentID, idx); err != nil {
			return nil, fmt.Errorf("advance assignment %d: %w", assignmentID, err)
		}
	}

	return &CurrentQuestion{
		AssignmentID: assignmentID,
		Index:        idx,
		Total:        len(aqs),
		Question:     question,
	}, nil
}

type PairingResult struct {
	RunID    string             `json:"runId"`
	Round    model.PairingRound `json:"round"`
	Pairs    []model.Pair       `json:"pairs"`
	Unpaired []string           `json:"unpaired"`
}

// MakePairs 按首次作答为一道题配对并写入配对表。
// 中途失败时已写入的配对保留
func (s *PeerService) MakePairs(ctx context.Context, round model.PairingRound, courseName string) (result *PairingResult, err error) {
	ctx, span := tracing.Tracer.Start(ctx, "PeerService.MakePairs")
	defer span.End()
	span.SetAttributes(
		attribute.String("peer.div_id", round.DivID),
		attribute.Int64("peer.assignment_id", int64(round.AssignmentID)),
	)

	runID := uuid.New().String()
	log := logger.Log.With(
		zap.String("run_id", runID),
		zap.String("div_id", round.DivID),
		zap.Uint("assignment_id", round.AssignmentID),
		zap.String("course", courseName),
	)

	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			monitoring.ObservePairing(err, 0, 0)
			log.Warn("pairing failed", zap.Error(err))
			return
		}
		monitoring.ObservePairing(nil, len(result.Pairs), len(result.Unpaired))
	}()

	rows, err := s.AnswerRepo.FirstNAnswers(ctx, 1, round.DivID, courseName)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%s: %w", round.DivID, util.ErrNoAnswers)
	}

	correct, incorrect := SplitByCorrectness(rows)
	log.Debug("split answers", zap.Strings("correct", correct), zap.Strings("incorrect", incorrect))

	if len(correct) == 0 && s.requireCorrectAnswer() {
		return nil, fmt.Errorf("%s: %w", round.DivID, util.ErrNoCorrectAnswer)
	}

	pairs, unpaired := BuildPairs(correct, incorrect)
	for _, p := range pairs {
		if err := s.PartnerRepo.SetPair(ctx, round, p.First, p.Second); err != nil {
			return nil, err
		}
	}

	log.Info("pairing completed",
		zap.Int("pairs", len(pairs)),
		zap.Strings("unpaired", unpaired),
	)

	return &PairingResult{
		RunID:    runID,
		Round:    round,
		Pairs:    pairs,
		Unpaired: unpaired,
	}, nil
}

// ClearPairs 清除一轮配对；round 为 nil 时清除全部
func (s *PeerService) ClearPairs(ctx context.Context, round *model.PairingRound) error {
	if round == nil {
		logger.Log.Info("clearing all partner rounds")
		return s.PartnerRepo.ClearAll(ctx)
	}
	logger.Log.Info("clearing partner round",
		zap.Uint("assignment_id", round.AssignmentID),
		zap.String("div_id", round.DivID),
	)
	return s.PartnerRepo.ClearRound(ctx, *round)
}

func (s *PeerService) GetPartner(ctx context.Context, round model.PairingRound, sid string) (string, error) {
	return s.PartnerRepo.GetPartner(ctx, round, sid)
}

func (s *PeerService) RoundPartners(ctx context.Context, round model.PairingRound) (map[string]string, error) {
	return s.PartnerRepo.Partners(ctx, round)
}

type OptionCount struct {
	Letter string `json:"letter"`
	Count  int    `json:"count"`
}

type AnswerDistribution struct {
	DivID         string        `json:"divId"`
	Students      int           `json:"students"`
	FirstAttempt  []OptionCount `json:"firstAttempt"`
	SecondAttempt []OptionCount `json:"secondAttempt"`
}

// AnswerDistribution 第一次与第二次作答各选项的人数
func (s *PeerService) AnswerDistribution(ctx context.Context, divID, courseName string) (*AnswerDistribution, error) {
	rows, err := s.AnswerRepo.FirstNAnswers(ctx, 2, divID, courseName)
	if err != nil {
		return nil, err
	}

	first := map[string]int{}
	second := map[string]int{}
	students := map[string]struct{}{}
	for _, r := range rows {
		students[r.Sid] = struct{}{}
		switch r.Attempt {
		case 1:
			first[r.Letter()]++
		case 2:
			second[r.Letter()]++
		}
	}

	return &AnswerDistribution{
		DivID:         divID,
		Students:      len(students),
		FirstAttempt:  sortedCounts(first),
		SecondAttempt: sortedCounts(second),
	}, nil
}

func sortedCounts(m map[string]int) []OptionCount {
	out := make([]OptionCount, 0, len(m))
	for letter, n := range m {
		out = append(out, OptionCount{Letter: letter, Count: n})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Letter < out[j].Letter })
	return out
}
