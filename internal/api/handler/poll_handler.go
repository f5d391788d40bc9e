package handler

import (
	"Kiosque/internal/api/dto"
	"Kiosque/internal/pkg/response"
	"Kiosque/internal/pkg/util"
	"Kiosque/internal/service"
	"strconv"

	"github.com/gin-gonic/gin"
)

type PollHandler struct {
	pollSvc service.PollService
}

func NewPollHandler(pollSvc service.PollService) *PollHandler {
	return &PollHandler{pollSvc: pollSvc}
}

func (s *PollHandler) Create(c *gin.Context) {
	var createDTO dto.CreatePollDTO
	if err := c.ShouldBindJSON(&createDTO); err != nil {
		response.Error(c, err)
		return
	}
	if err := util.ValidateDTO(&createDTO); err != nil {
		response.Error(c, err)
		return
	}
	userID := c.GetUint64("user_id")
	poll, err := s.pollSvc.CreatePoll(c.Request.Context(), userID, &createDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, poll)
}

func (s *PollHandler) Get(c *gin.Context) {
	pollID, err := strconv.ParseUint(c.Param("poll_id"), 10, 64)
	if err != nil || pollID == 0 {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	poll, err := s.pollSvc.GetPoll(c.Request.Context(), pollID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, poll)
}

func (s *PollHandler) List(c *gin.Context) {
	limit, _ := strconv.Atoi(c.Query("limit"))
	polls, err := s.pollSvc.ListPolls(c.Request.Context(), limit)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, polls)
}

func (s *PollHandler) Vote(c *gin.Context) {
	pollID, err := strconv.ParseUint(c.Param("poll_id"), 10, 64)
	if err != nil || pollID == 0 {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	var voteDTO dto.PollVoteDTO
	if err := c.ShouldBindJSON(&voteDTO); err != nil {
		response.Error(c, err)
		return
	}
	if err := util.ValidateDTO(&voteDTO); err != nil {
		response.Error(c, err)
		return
	}

	poll, err := s.pollSvc.Vote(c.Request.Context(), pollID, voteDTO.OptionID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, poll)
}

func (s *PollHandler) Delete(c *gin.Context) {
	pollID, err := strconv.ParseUint(c.Param("poll_id"), 10, 64)
	if err != nil || pollID == 0 {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	if err := s.pollSvc.DeletePoll(c.Request.Context(), pollID); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}
