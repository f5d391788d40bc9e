package api

import (
	"Kiosque/internal/api/middleware"
	"Kiosque/internal/pkg/consts"
	"Kiosque/internal/pkg/logger"
	"net/http"

	"github.com/gin-gonic/gin"
)

func SetupRouter(group *HandlersGroup) *gin.Engine {
	r := gin.New()
	_ = r.SetTrustedProxies([]string{"localhost"})

	// TraceId & Logger & CORS
	r.Use(middleware.TraceMiddleware())
	r.Use(middleware.AuditMiddleware())
	r.Use(middleware.CORSMiddleware())
	logger.SetupGin(r)

	apiGroup := r.Group("/api")
	{
		apiGroup.GET("/ping", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"Code":    200,
				"Message": "pong",
				"Data":    nil,
			})
		})

		userGroup := apiGroup.Group("/user")
		{
			userGroup.POST("/register", group.UserHandler.Register)
			userGroup.POST("/login", group.UserHandler.Login)

			authGroup := userGroup.Group("")
			authGroup.Use(middleware.AuthMiddleware())
			{
				authGroup.POST("/logout", group.UserHandler.Logout)
				authGroup.GET("/info", group.UserHandler.GetUserInfo)
			}
		}

		categoryGroup := apiGroup.Group("/category")
		{
			categoryGroup.GET("", group.CategoryHandler.List)

			adminGroup := categoryGroup.Group("")
			adminGroup.Use(middleware.AuthMiddleware(), middleware.CheckRoles(consts.RoleAdmin))
			{
				adminGroup.POST("", group.CategoryHandler.Create)
				adminGroup.DELETE("/:category_id", group.CategoryHandler.Delete)
			}
		}

		articleGroup := apiGroup.Group("/article")
		{
			// 匿名可读，登录用户的浏览带上用户身份
			optGroup := articleGroup.Group("")
			optGroup.Use(middleware.AuthOptionalMiddleware())
			{
				optGroup.GET("", group.ArticleHandler.List)
				optGroup.GET("/search", group.ArticleHandler.Search)
				optGroup.GET("/:article_id", group.ArticleHandler.Get)
				optGroup.GET("/:article_id/comments", group.CommentHandler.List)
				optGroup.GET("/:article_id/comments/subscribe", group.CommentHandler.Subscribe)
			}

			authGroup := articleGroup.Group("")
			authGroup.Use(middleware.AuthMiddleware())
			{
				authGroup.POST("/:article_id/vote", group.EngagementHandler.Vote)
				authGroup.POST("/:article_id/favorite", group.EngagementHandler.Favorite)
				authGroup.GET("/:article_id/engagement", group.EngagementHandler.GetState)
				authGroup.POST("/:article_id/comments", group.CommentHandler.Create)
				authGroup.GET("/favorites", group.EngagementHandler.ListFavorites)
			}

			adminGroup := authGroup.Group("")
			adminGroup.Use(middleware.CheckRoles(consts.RoleAdmin))
			{
				adminGroup.POST("", group.ArticleHandler.Create)
				adminGroup.POST("/import", group.ArticleHandler.Import)
				adminGroup.DELETE("/:article_id", group.ArticleHandler.Delete)
			}
		}

		listingGroup := apiGroup.Group("/listing")
		{
			listingGroup.GET("", group.ListingHandler.List)
			listingGroup.GET("/:listing_id", group.ListingHandler.Get)

			authGroup := listingGroup.Group("")
			authGroup.Use(middleware.AuthMiddleware())
			{
				authGroup.POST("", group.ListingHandler.Create)
				authGroup.DELETE("/:listing_id", group.ListingHandler.Delete)
			}
		}

		pollGroup := apiGroup.Group("/poll")
		{
			pollGroup.GET("", group.PollHandler.List)
			pollGroup.GET("/:poll_id", group.PollHandler.Get)
			pollGroup.POST("/:poll_id/vote", group.PollHandler.Vote)

			adminGroup := pollGroup.Group("")
			adminGroup.Use(middleware.AuthMiddleware(), middleware.CheckRoles(consts.RoleAdmin))
			{
				adminGroup.POST("", group.PollHandler.Create)
				adminGroup.DELETE("/:poll_id", group.PollHandler.Delete)
			}
		}

		mediaGroup := apiGroup.Group("/media")
		mediaGroup.Use(middleware.AuthMiddleware())
		{
			mediaGroup.POST("/upload", group.MediaHandler.Upload)
		}

		statsGroup := apiGroup.Group("/stats")
		statsGroup.Use(middleware.AuthMiddleware(), middleware.CheckRoles(consts.RoleAdmin))
		{
			statsGroup.GET("/overview", group.StatsHandler.Overview)
			statsGroup.GET("/daily", group.StatsHandler.DailySeries)
			statsGroup.GET("/events", group.StatsHandler.RecentEvents)
		}
	}

	return r
}
