package handler

import (
	"Kiosque/internal/api/dto"
	"Kiosque/internal/pkg/consts"
	"Kiosque/internal/pkg/redis"
	"Kiosque/internal/pkg/response"
	"Kiosque/internal/pkg/util"
	"Kiosque/internal/service"
	"context"
	log "log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

type CommentHandler struct {
	commentSvc service.CommentService
}

func NewCommentHandler(commentSvc service.CommentService) *CommentHandler {
	return &CommentHandler{commentSvc: commentSvc}
}

func (s *CommentHandler) Create(c *gin.Context) {
	articleID, err := strconv.ParseUint(c.Param("article_id"), 10, 64)
	if err != nil || articleID == 0 {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	var createDTO dto.CreateCommentDTO
	if err := c.ShouldBindJSON(&createDTO); err != nil {
		response.Error(c, err)
		return
	}
	if err := util.ValidateDTO(&createDTO); err != nil {
		response.Error(c, err)
		return
	}

	userID := c.GetUint64("user_id")
	comment, err := s.commentSvc.CreateComment(c.Request.Context(), userID, articleID, &createDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, comment)
}

func (s *CommentHandler) List(c *gin.Context) {
	articleID, err := strconv.ParseUint(c.Param("article_id"), 10, 64)
	if err != nil || articleID == 0 {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	limit, _ := strconv.Atoi(c.Query("limit"))

	comments, err := s.commentSvc.ListComments(c.Request.Context(), articleID, limit)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, comments)
}

// Subscribe 订阅文章的实时评论流
func (s *CommentHandler) Subscribe(c *gin.Context) {
	articleID, err := strconv.ParseUint(c.Param("article_id"), 10, 64)
	if err != nil || articleID == 0 {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Error("WS 协议升级失败", "err", err)
		return
	}
	defer func() {
		_ = conn.Close()
	}()

	channel := consts.CommentChannelKey + strconv.FormatUint(articleID, 10)
	pubsub := redis.Subscribe(context.Background(), channel)
	defer func() {
		_ = pubsub.Close()
	}()

	log.Info("评论 WS 连接已建立", "articleID", articleID)

	stopChan := make(chan struct{})

	// 读循环：监听客户端主动断开
	go func() {
		for {
			_, _, err := conn.ReadMessage()
			if err != nil {
				close(stopChan)
				return
			}
		}
	}()

	// 写循环：监听 Redis 并推送至客户端
	redisCh := pubsub.Channel()
	for {
		select {
		case msg := <-redisCh:
			_ = conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
			if err := conn.WriteMessage(websocket.TextMessage, []byte(msg.Payload)); err != nil {
				log.Error("WS 推送失败", "articleID", articleID, "err", err)
				return
			}
		case <-stopChan:
			log.Info("评论 WS 连接已断开", "articleID", articleID)
			return
		}
	}
}
