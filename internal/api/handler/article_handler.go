package handler

import (
	"Kiosque/internal/api/dto"
	"Kiosque/internal/pkg/response"
	"Kiosque/internal/pkg/util"
	"Kiosque/internal/service"
	"strconv"

	"github.com/gin-gonic/gin"
)

type ArticleHandler struct {
	articleSvc service.ArticleService
	importSvc  service.ImportService
}

func NewArticleHandler(articleSvc service.ArticleService, importSvc service.ImportService) *ArticleHandler {
	return &ArticleHandler{
		articleSvc: articleSvc,
		importSvc:  importSvc,
	}
}

func (s *ArticleHandler) Create(c *gin.Context) {
	var createDTO dto.CreateArticleDTO
	if err := c.ShouldBindJSON(&createDTO); err != nil {
		response.Error(c, err)
		return
	}
	if err := util.ValidateDTO(&createDTO); err != nil {
		response.Error(c, err)
		return
	}
	userID := c.GetUint64("user_id")
	article, err := s.articleSvc.CreateArticle(c.Request.Context(), userID, &createDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, article)
}

func (s *ArticleHandler) Get(c *gin.Context) {
	articleID, err := strconv.ParseUint(c.Param("article_id"), 10, 64)
	if err != nil || articleID == 0 {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	userID := c.GetUint64("user_id")
	article, err := s.articleSvc.GetArticle(c.Request.Context(), userID, articleID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, article)
}

func (s *ArticleHandler) List(c *gin.Context) {
	categoryID, _ := strconv.ParseUint(c.Query("category_id"), 10, 64)
	limit, _ := strconv.Atoi(c.Query("limit"))
	scope := c.Query("scope")

	articles, err := s.articleSvc.ListArticles(c.Request.Context(), categoryID, scope, limit)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, articles)
}

func (s *ArticleHandler) Delete(c *gin.Context) {
	articleID, err := strconv.ParseUint(c.Param("article_id"), 10, 64)
	if err != nil || articleID == 0 {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	if err := s.articleSvc.DeleteArticle(c.Request.Context(), articleID); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (s *ArticleHandler) Search(c *gin.Context) {
	queryText := c.Query("q")
	from, _ := strconv.Atoi(c.Query("from"))
	size, _ := strconv.Atoi(c.Query("size"))

	articles, err := s.articleSvc.SearchArticles(c.Request.Context(), queryText, from, size)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, articles)
}

// Import 从外部链接导入文章
func (s *ArticleHandler) Import(c *gin.Context) {
	var importDTO dto.ImportArticleDTO
	if err := c.ShouldBindJSON(&importDTO); err != nil {
		response.Error(c, err)
		return
	}
	if err := util.ValidateDTO(&importDTO); err != nil {
		response.Error(c, err)
		return
	}
	userID := c.GetUint64("user_id")
	article, err := s.importSvc.ImportFromURL(c.Request.Context(), userID, &importDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, article)
}
