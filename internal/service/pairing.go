package service

import "peer_edu_backend/internal/model"

// BuildPairs 先让答错与答对的学生两两配对（各自从队尾取），
// 剩下的同答案学生再从队尾两两配对；人数为奇数时最后一人落单。
// 不修改入参。
func BuildPairs(correct, incorrect []string) ([]model.Pair, []string) {
	c := append([]string(nil), correct...)
	w := append([]string(nil), incorrect...)

	pairs := make([]model.Pair, 0, (len(c)+len(w))/2)

	for len(c) > 0 && len(w) > 0 {
		p1 := w[len(w)-1]
		w = w[:len(w)-1]
		p2 := c[len(c)-1]
		c = c[:len(c)-1]
		pairs = append(pairs, model.Pair{First: p1, Second: p2})
	}

	remaining := c
	if len(remaining) == 0 {
		remaining = w
	}
	for len(remaining) >= 2 {
		p1 := remaining[len(remaining)-1]
		p2 := remaining[len(remaining)-2]
		remaining = remaining[:len(remaining)-2]
		pairs = append(pairs, model.Pair{First: p1, Second: p2})
	}

	return pairs, remaining
}

// SplitByCorrectness 按首次作答正误分组，保持聚合结果的顺序
func SplitByCorrectness(rows []model.AnswerRow) (correct, incorrect []string) {
	for _, r := range rows {
		switch {
		case r.IsCorrect():
			correct = append(correct, r.Sid)
		case r.IsIncorrect():
			incorrect = append(incorrect, r.Sid)
		}
	}
	return correct, incorrect
}
