package handler

import (
	"Kiosque/internal/api/dto"
	"Kiosque/internal/pkg/response"
	"Kiosque/internal/pkg/util"
	"Kiosque/internal/service"
	"strconv"

	"github.com/gin-gonic/gin"
)

type CategoryHandler struct {
	categorySvc service.CategoryService
}

func NewCategoryHandler(categorySvc service.CategoryService) *CategoryHandler {
	return &CategoryHandler{categorySvc: categorySvc}
}

func (s *CategoryHandler) Create(c *gin.Context) {
	var createDTO dto.CreateCategoryDTO
	if err := c.ShouldBindJSON(&createDTO); err != nil {
		response.Error(c, err)
		return
	}
	if err := util.ValidateDTO(&createDTO); err != nil {
		response.Error(c, err)
		return
	}
	category, err := s.categorySvc.CreateCategory(c.Request.Context(), &createDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, category)
}

func (s *CategoryHandler) List(c *gin.Context) {
	categories, err := s.categorySvc.ListCategories(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, categories)
}

func (s *CategoryHandler) Delete(c *gin.Context) {
	categoryID, err := strconv.ParseUint(c.Param("category_id"), 10, 64)
	if err != nil || categoryID == 0 {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	if err := s.categorySvc.DeleteCategory(c.Request.Context(), categoryID); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}
