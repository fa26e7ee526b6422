package model

import "fmt"

// PairingRound 一轮配对：某个作业下的某道题
type PairingRound struct {
	AssignmentID uint   `json:"assignmentId"`
	DivID        string `json:"divId"`
}

// Key 配对表在 Redis 中的 hash 键。未指定作业时退回全局表 prefix
func (r PairingRound) Key(prefix string) string {
	if r.IsGlobal() {
		return prefix
	}
	return fmt.Sprintf("%s:%d:%s", prefix, r.AssignmentID, r.DivID)
}

func (r PairingRound) IsGlobal() bool {
	return r.AssignmentID == 0
}

type Pair struct {
	First  string `json:"first"`
	Second string `json:"second"`
}
