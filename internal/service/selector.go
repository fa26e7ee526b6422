package service

import "peer_edu_backend/internal/util"

// ResolveQuestionIndex 计算当前题目下标：next 时前进一题，否则回到第一题；越界时停在最后一题
func ResolveQuestionIndex(current, count int, next bool) (int, error) {
	if count == 0 {
		return 0, util.ErrEmptyAssignment
	}

	idx := 0
	if next {
		idx = current + 1
	}
	if idx > count-1 {
		idx = count - 1
	}
	if idx < 0 {
		idx = 0
	}
	return idx, nil
}
