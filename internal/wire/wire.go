package wire

import (
	"Kiosque/internal/api"
	"Kiosque/internal/api/config"
	"Kiosque/internal/api/handler"
	"Kiosque/internal/job"
	"Kiosque/internal/pkg/cron"
	"Kiosque/internal/pkg/es"
	"Kiosque/internal/pkg/fetch"
	"Kiosque/internal/pkg/kafka"
	pkgmongo "Kiosque/internal/pkg/mongo"
	"Kiosque/internal/repository"
	"Kiosque/internal/service"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
	"gorm.io/gorm"
)

// ApplicationContainer 封装了应用运行所需的所有顶级组件
type ApplicationContainer struct {
	Router       *gin.Engine
	DB           *gorm.DB
	KafkaManager *kafka.ConsumerManager
	CronMgr      *cron.Manager
	Producer     kafka.EventProducer
}

func BuildApplication(db *gorm.DB, mongoDB *mongo.Database, cfg *config.Config) (*ApplicationContainer, error) {
	userRepo := repository.NewUserRepo(db)
	categoryRepo := repository.NewCategoryRepo(db)
	articleRepo := repository.NewArticleRepo(db)
	reactionRepo := repository.NewReactionRepo(db)
	commentRepo := repository.NewCommentRepo(db)
	listingRepo := repository.NewListingRepo(db)
	pollRepo := repository.NewPollRepo(db)
	statsRepo := repository.NewStatsRepo(db)

	eventRepo := pkgmongo.NewEventRepo(mongoDB)
	articleESRepo := es.NewArticleRepo(es.Client)
	fetcher := fetch.NewFetcher(cfg.Importer)

	producer, err := kafka.NewEventProducer(cfg)
	if err != nil {
		return nil, err
	}

	userService := service.NewUserService(userRepo, producer)
	categoryService := service.NewCategoryService(categoryRepo)
	articleService := service.NewArticleService(articleRepo, categoryRepo, articleESRepo, producer)
	engagementService := service.NewEngagementService(reactionRepo, articleRepo, producer)
	commentService := service.NewCommentService(commentRepo, articleRepo, userRepo, producer)
	listingService := service.NewListingService(listingRepo, categoryRepo)
	pollService := service.NewPollService(pollRepo)
	statsService := service.NewStatsService(userRepo, articleRepo, listingRepo, pollRepo, statsRepo, eventRepo)
	mediaService := service.NewMediaService()
	importService := service.NewImportService(fetcher, categoryRepo, articleService)

	handlers := &api.HandlersGroup{
		UserHandler:       handler.NewUserHandler(userService),
		CategoryHandler:   handler.NewCategoryHandler(categoryService),
		ArticleHandler:    handler.NewArticleHandler(articleService, importService),
		EngagementHandler: handler.NewEngagementHandler(engagementService),
		CommentHandler:    handler.NewCommentHandler(commentService),
		ListingHandler:    handler.NewListingHandler(listingService),
		PollHandler:       handler.NewPollHandler(pollService),
		StatsHandler:      handler.NewStatsHandler(statsService),
		MediaHandler:      handler.NewMediaHandler(mediaService),
	}

	router := api.SetupRouter(handlers)

	kafkaMgr, err := kafka.NewConsumerManager(cfg, eventRepo)
	if err != nil {
		return nil, err
	}

	cronMgr := cron.NewCronManager(
		job.NewCounterSyncJob(articleRepo),
		job.NewDailyStatsJob(statsRepo, eventRepo),
	)

	return &ApplicationContainer{
		Router:       router,
		DB:           db,
		KafkaManager: kafkaMgr,
		CronMgr:      cronMgr,
		Producer:     producer,
	}, nil
}
