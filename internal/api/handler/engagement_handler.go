package handler

import (
	"Kiosque/internal/api/dto"
	"Kiosque/internal/pkg/response"
	"Kiosque/internal/pkg/util"
	"Kiosque/internal/service"
	"strconv"

	"github.com/gin-gonic/gin"
)

type EngagementHandler struct {
	engagementSvc service.EngagementService
}

func NewEngagementHandler(engagementSvc service.EngagementService) *EngagementHandler {
	return &EngagementHandler{engagementSvc: engagementSvc}
}

// Vote 点赞/点踩，重复同向操作为撤销
func (s *EngagementHandler) Vote(c *gin.Context) {
	articleID, err := strconv.ParseUint(c.Param("article_id"), 10, 64)
	if err != nil || articleID == 0 {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	var voteDTO dto.VoteDTO
	if err := c.ShouldBindJSON(&voteDTO); err != nil {
		response.Error(c, err)
		return
	}
	if err := util.ValidateDTO(&voteDTO); err != nil {
		response.Error(c, err)
		return
	}

	userID := c.GetUint64("user_id")
	state, err := s.engagementSvc.ApplyVote(c.Request.Context(), userID, articleID, voteDTO.Action)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, state)
}

// Favorite 收藏/取消收藏
func (s *EngagementHandler) Favorite(c *gin.Context) {
	articleID, err := strconv.ParseUint(c.Param("article_id"), 10, 64)
	if err != nil || articleID == 0 {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	userID := c.GetUint64("user_id")
	state, err := s.engagementSvc.ToggleFavorite(c.Request.Context(), userID, articleID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, state)
}

// GetState 当前用户对文章的投票与收藏状态
func (s *EngagementHandler) GetState(c *gin.Context) {
	articleID, err := strconv.ParseUint(c.Param("article_id"), 10, 64)
	if err != nil || articleID == 0 {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	userID := c.GetUint64("user_id")
	state, err := s.engagementSvc.GetEngagementState(c.Request.Context(), userID, articleID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, state)
}

// ListFavorites 当前用户收藏的文章
func (s *EngagementHandler) ListFavorites(c *gin.Context) {
	userID := c.GetUint64("user_id")
	articles, err := s.engagementSvc.ListFavorites(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, articles)
}
