package util

const DateFormat = "2006-01-02"

const (
	// MaxAnswerRows 单次聚合查询的最大行数
	MaxAnswerRows = 4000
	// NextParamValue 仪表盘“下一题”按钮提交的值
	NextParamValue = "Next"
)
