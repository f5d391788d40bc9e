package handler

import (
	"Kiosque/internal/pkg/consts"
	"Kiosque/internal/pkg/response"
	"Kiosque/internal/service"
	"strconv"

	"github.com/gin-gonic/gin"
)

type StatsHandler struct {
	statsSvc service.StatsService
}

func NewStatsHandler(statsSvc service.StatsService) *StatsHandler {
	return &StatsHandler{statsSvc: statsSvc}
}

// Overview 管理端总量指标
func (s *StatsHandler) Overview(c *gin.Context) {
	overview, err := s.statsSvc.GetOverview(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, overview)
}

// DailySeries 指定指标最近 N 天的逐日序列
func (s *StatsHandler) DailySeries(c *gin.Context) {
	statType := c.Query("type")
	switch statType {
	case consts.EventTypeView, consts.EventTypeRegistration, consts.EventTypeComment, consts.EventTypeLike:
	default:
		response.Error(c, service.ErrParamInvalid)
		return
	}
	days, _ := strconv.Atoi(c.Query("days"))

	series, err := s.statsSvc.GetDailySeries(c.Request.Context(), statType, days)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, series)
}

// RecentEvents 最近行为明细
func (s *StatsHandler) RecentEvents(c *gin.Context) {
	eventType := c.Query("type")
	limit, _ := strconv.ParseInt(c.Query("limit"), 10, 64)

	events, err := s.statsSvc.GetRecentEvents(c.Request.Context(), eventType, limit)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, events)
}
