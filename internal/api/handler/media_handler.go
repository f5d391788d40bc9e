package handler

import (
	"Kiosque/internal/pkg/response"
	"Kiosque/internal/service"

	"github.com/gin-gonic/gin"
)

type MediaHandler struct {
	mediaSvc service.MediaService
}

func NewMediaHandler(mediaSvc service.MediaService) *MediaHandler {
	return &MediaHandler{mediaSvc: mediaSvc}
}

// Upload 接收图片/视频，图片会附带缩略图地址
func (s *MediaHandler) Upload(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	reader, err := file.Open()
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	defer func() { _ = reader.Close() }()

	result, err := s.mediaSvc.Upload(c.Request.Context(), file.Filename, file.Size, reader)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}
