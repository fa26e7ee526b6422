package controller

import (
	"peer_edu_backend/internal/model"
	"peer_edu_backend/internal/service"
	"peer_edu_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type PeerController struct {
	Service *service.PeerService
}

func NewPeerController(svc *service.PeerService) *PeerController {
	return &PeerController{Service: svc}
}

func parseAssignmentID(raw string) (uint, bool) {
	id := util.MustParseUint(raw)
	return id, id != 0
}

// parseRound 读取 div_id 与可选的 assignment_id；未给出作业时使用全局配对表
func parseRound(ctx *gin.Context) (model.PairingRound, bool) {
	divID := ctx.Query("div_id")
	if divID == "" {
		util.BadRequest(ctx, "div_id is required")
		return model.PairingRound{}, false
	}

	round := model.PairingRound{DivID: divID}
	if raw := ctx.Query("assignment_id"); raw != "" {
		id, ok := parseAssignmentID(raw)
		if !ok {
			util.BadRequest(ctx, "invalid assignment_id")
			return model.PairingRound{}, false
		}
		round.AssignmentID = id
	}
	return round, true
}

// @Summary 互评作业列表
// @Description 当前课程的互评作业，按截止时间倒序
// @Tags 互评
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response
// @Router /instructor/peer/assignments [get]
// @Router /student/peer/assignments [get]
func (c *PeerController) ListAssignments(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	assignments, err := c.Service.ListAssignments(ctx.Request.Context(), user.CourseName)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{
		"courseName":  user.CourseName,
		"assignments": assignments,
	})
}

// @Summary 教师仪表盘当前题目
// @Description next=Next 时推进到下一题，否则返回第一题
// @Tags 互评
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "作业ID"
// @Param next query string false "Next 表示下一题"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Failure 422 {object} util.Response
// @Router /instructor/peer/assignments/{id}/current [get]
func (c *PeerController) Dashboard(ctx *gin.Context) {
	c.currentQuestion(ctx, ctx.Query("next") == util.NextParamValue)
}

// @Summary 学生当前题目
// @Tags 互评
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "作业ID"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /student/peer/assignments/{id}/current [get]
func (c *PeerController) PeerQuestion(ctx *gin.Context) {
	c.currentQuestion(ctx, false)
}

func (c *PeerController) currentQuestion(ctx *gin.Context, next bool) {
	id, ok := parseAssignmentID(ctx.Param("id"))
	if !ok {
		util.BadRequest(ctx, "invalid assignment id")
		return
	}

	cq, err := c.Service.CurrentQuestion(ctx.Request.Context(), id, next)
	if err != nil {
		util.HandleServiceError(ctx, err)
		return
	}

	util.Success(ctx, cq)
}

// @Summary 为一道题生成互评配对
// @Description 按首次作答把答对与答错的学生两两配对
// @Tags 互评
// @Produce json
// @Security ApiKeyAuth
// @Param div_id query string true "题目 div id"
// @Param assignment_id query int false "作业ID，省略时写入全局配对表"
// @Success 200 {string} string "success"
// @Failure 422 {object} util.Response
// @Router /instructor/peer/pairs [post]
func (c *PeerController) MakePairs(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	round, ok := parseRound(ctx)
	if !ok {
		return
	}

	if _, err := c.Service.MakePairs(ctx.Request.Context(), round, user.CourseName); err != nil {
		util.HandleServiceError(ctx, err)
		return
	}

	util.SuccessString(ctx)
}

// @Summary 清除互评配对
// @Description 同时给出 div_id 与 assignment_id 时只清除该轮，都不给时清除全部，只给一个返回 400
// @Tags 互评
// @Produce json
// @Security ApiKeyAuth
// @Param div_id query string false "题目 div id"
// @Param assignment_id query int false "作业ID"
// @Success 200 {string} string "success"
// @Failure 400 {object} util.Response
// @Router /instructor/peer/pairs [delete]
func (c *PeerController) ClearPairs(ctx *gin.Context) {
	hasDiv := ctx.Query("div_id") != ""
	hasAssignment := ctx.Query("assignment_id") != ""
	if hasDiv != hasAssignment {
		util.BadRequest(ctx, "div_id and assignment_id must be given together")
		return
	}

	var round *model.PairingRound
	if hasDiv {
		r, ok := parseRound(ctx)
		if !ok {
			return
		}
		round = &r
	}

	if err := c.Service.ClearPairs(ctx.Request.Context(), round); err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.SuccessString(ctx)
}

// @Summary 查看一轮配对
// @Tags 互评
// @Produce json
// @Security ApiKeyAuth
// @Param div_id query string true "题目 div id"
// @Param assignment_id query int false "作业ID"
// @Success 200 {object} util.Response
// @Router /instructor/peer/pairs [get]
func (c *PeerController) RoundPartners(ctx *gin.Context) {
	round, ok := parseRound(ctx)
	if !ok {
		return
	}

	partners, err := c.Service.RoundPartners(ctx.Request.Context(), round)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"round": round, "partners": partners})
}

// @Summary 作答分布
// @Description 第一次与第二次作答各选项人数
// @Tags 互评
// @Produce json
// @Security ApiKeyAuth
// @Param div_id query string true "题目 div id"
// @Success 200 {object} util.Response
// @Router /instructor/peer/chartdata [get]
func (c *PeerController) ChartData(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	divID := ctx.Query("div_id")
	if divID == "" {
		util.BadRequest(ctx, "div_id is required")
		return
	}

	dist, err := c.Service.AnswerDistribution(ctx.Request.Context(), divID, user.CourseName)
	if err != nil {
		util.HandleServiceError(ctx, err)
		return
	}

	util.Success(ctx, dist)
}

// @Summary 我的搭档
// @Tags 互评
// @Produce json
// @Security ApiKeyAuth
// @Param div_id query string true "题目 div id"
// @Param assignment_id query int false "作业ID"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /student/peer/partner [get]
func (c *PeerController) MyPartner(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	round, ok := parseRound(ctx)
	if !ok {
		return
	}

	partner, err := c.Service.GetPartner(ctx.Request.Context(), round, user.Sid)
	if err != nil {
		util.HandleServiceError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"sid": user.Sid, "partner": partner})
}
