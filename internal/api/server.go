package api

import (
	"context"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	swaggerfiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/vietanh2810/demo-night-api/docs"
	v1 "github.com/vietanh2810/demo-night-api/internal/api/handler/v1"
	"github.com/vietanh2810/demo-night-api/internal/api/middleware"
	"github.com/vietanh2810/demo-night-api/internal/config"
	"github.com/vietanh2810/demo-night-api/internal/domain"
	"github.com/vietanh2810/demo-night-api/internal/repository"
	"github.com/vietanh2810/demo-night-api/internal/repository/dao"
	"github.com/vietanh2810/demo-night-api/internal/service"
	gosync "github.com/vietanh2810/demo-night-api/internal/sync"
)

type Server struct {
	Config *config.AppConfig
	Router *gin.Engine

	// Poller is the server-side presentation consumer. The caller owns
	// its lifecycle via Run.
	Poller *gosync.Poller
}

func NewServer(conf *config.AppConfig, db *gorm.DB, redisClient *redis.Client) *Server {
	gin.SetMode(conf.Gin.Mode)
	engine := gin.New()

	s := &Server{
		Config: conf,
		Router: engine,
	}

	s.MountMiddlewares()

	eventSvc := s.initEventService(db, redisClient)
	s.Poller = s.initPresentationPoller(eventSvc)

	authHandler := s.initAuthHandler(db)
	eventHandler := v1.NewEventHandler(eventSvc)
	voteHandler := s.initVoteHandler(db)
	feedbackHandler := s.initFeedbackHandler(db)
	attendeeSvc := s.initAttendeeService(db)
	presentationHandler := v1.NewPresentationHandler(s.Poller)

	s.MountHandlers(authHandler, eventHandler, voteHandler, feedbackHandler, presentationHandler, attendeeSvc)

	return s
}

func (s *Server) initEventService(db *gorm.DB, redisClient *redis.Client) *service.EventService {
	store := repository.NewEventStateStore(redisClient)
	eventDAO := dao.NewEventDAO(db)
	repo := repository.NewEventRepository(eventDAO)
	svc := service.NewEventService(store, repo)

	return svc
}

func (s *Server) initAttendeeService(db *gorm.DB) *service.AttendeeService {
	attendeeDAO := dao.NewAttendeeDAO(db)
	repo := repository.NewAttendeeRepository(attendeeDAO)
	svc := service.NewAttendeeService(repo)

	return svc
}

func (s *Server) initAuthHandler(db *gorm.DB) *v1.AuthHandler {
	attendeeDAO := dao.NewAttendeeDAO(db)
	repo := repository.NewAttendeeRepository(attendeeDAO)
	svc := service.NewAuthService(repo)
	handler := v1.NewAuthHandler(s.Config.API, svc)

	return handler
}

func (s *Server) initVoteHandler(db *gorm.DB) *v1.VoteHandler {
	voteDAO := dao.NewVoteDAO(db)
	repo := repository.NewVoteRepository(voteDAO)
	svc := service.NewVoteService(repo)
	handler := v1.NewVoteHandler(svc, s.initAttendeeService(db))

	return handler
}

func (s *Server) initFeedbackHandler(db *gorm.DB) *v1.FeedbackHandler {
	feedbackDAO := dao.NewFeedbackDAO(db)
	repo := repository.NewFeedbackRepository(feedbackDAO)
	svc := service.NewFeedbackService(repo)
	handler := v1.NewFeedbackHandler(svc, s.initAttendeeService(db))

	return handler
}

func (s *Server) initPresentationPoller(eventSvc *service.EventService) *gosync.Poller {
	interval := s.Config.Sync.IntervalFor(s.Config.API.Environment)

	source := gosync.EventSourceFunc(eventSvc.Current)
	secondary := func(ctx context.Context, event *domain.CurrentEvent) error {
		if event == nil {
			return nil
		}

		// Phase-scoped data for the display: the full projection with
		// demos and awards.
		_, err := eventSvc.GetEvent(ctx, event.ID)

		return err
	}

	return gosync.NewPoller("presentation", interval, source, secondary, zap.L())
}

func (s *Server) MountMiddlewares() {
	// Logger and Recovery are needed unless we use gin.Default().
	s.Router.Use(gin.Logger())
	s.Router.Use(gin.Recovery())
	s.Router.Use(requestid.New())
	s.Router.Use(middleware.ConfigCORS(s.Config.API.AllowedCORSDomains))
}

func (s *Server) MountHandlers(
	authHandler *v1.AuthHandler,
	eventHandler *v1.EventHandler,
	voteHandler *v1.VoteHandler,
	feedbackHandler *v1.FeedbackHandler,
	presentationHandler *v1.PresentationHandler,
	attendeeSvc *service.AttendeeService,
) {
	const basePath = "/api/v1"

	authenticator := middleware.NewAuthenticator(s.Config.API.JWTSigningKey)

	public := s.Router.Group(basePath)
	{
		public.POST("/auth/signup", authHandler.HandleSignup)
		public.POST("/auth/login", authHandler.HandleLogin)

		public.GET("/event/current", eventHandler.HandleGetCurrentEvent)
		public.GET("/presentation/state", presentationHandler.HandleGetPresentationState)

		public.POST("/demos", eventHandler.HandleSubmitDemo)
	}

	attendees := s.Router.Group(basePath, authenticator.VerifyJWT())
	{
		attendees.GET("/events/:eventID", eventHandler.HandleGetEvent)

		attendees.GET("/events/:eventID/votes", voteHandler.HandleGetVotes)
		attendees.PUT("/votes/:voteID", voteHandler.HandleUpsertVote)
		attendees.DELETE("/votes/:voteID", voteHandler.HandleDeleteVote)

		attendees.POST("/feedback", feedbackHandler.HandleBeginFeedback)
		attendees.PATCH("/feedback/:feedbackID", feedbackHandler.HandleUpdateFeedback)
		attendees.DELETE("/feedback/:feedbackID", feedbackHandler.HandleDeleteFeedback)
		attendees.GET("/events/:eventID/feedback", feedbackHandler.HandleGetEventFeedback)
		attendees.PUT("/events/:eventID/feedback", feedbackHandler.HandleUpsertEventFeedback)
	}

	admins := s.Router.Group(basePath, authenticator.VerifyJWT(), authenticator.RequireAdmin())
	{
		admins.POST("/events", eventHandler.HandleCreateEvent)
		admins.PUT("/event/current", eventHandler.HandleSetCurrentEvent)
		admins.PATCH("/event/current/state", eventHandler.HandleUpdateEventState)

		admins.GET("/demos/:demoID/feedback", feedbackHandler.HandleGetDemoFeedback)
		admins.GET("/events/:eventID/feedback/admin", feedbackHandler.HandleGetEventFeedbackAdmin)

		admins.POST("/presentation/refresh", presentationHandler.HandleRefreshPresentation)
	}

	s.Router.GET("/", v1.HandleHealthcheck)
	s.Router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Setup Swagger UI.
	docs.SwaggerInfo.Host = s.Config.API.BaseURL
	docs.SwaggerInfo.BasePath = basePath
	docs.SwaggerInfo.Title = "Demo Night API"
	docs.SwaggerInfo.Description = "Live event coordination: shared event state, votes and feedback."
	docs.SwaggerInfo.Version = "1.0"
	s.Router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerfiles.Handler))
}
