package api

import (
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"

	v1 "github.com/GraemeWada/signoutapp/internal/api/handler/v1"
	"github.com/GraemeWada/signoutapp/internal/api/middleware"
	"github.com/GraemeWada/signoutapp/internal/config"
	"github.com/GraemeWada/signoutapp/internal/repository"
	"github.com/GraemeWada/signoutapp/internal/repository/memstore"
	"github.com/GraemeWada/signoutapp/internal/service"
)

type Server struct {
	Config *config.AppConfig
	Router *gin.Engine
}

func NewServer(conf *config.AppConfig, store *memstore.Store) (*Server, error) {
	gin.SetMode(conf.Gin.Mode)
	engine := gin.New()

	s := &Server{
		Config: conf,
		Router: engine,
	}

	s.MountMiddlewares()

	authHandler, err := s.initAuthHandler()
	if err != nil {
		return nil, err
	}
	inventoryHandler := s.initInventoryHandler(store)
	signOutHandler := s.initSignOutHandler(store)
	s.MountHandlers(authHandler, inventoryHandler, signOutHandler)

	return s, nil
}

func (s *Server) initAuthHandler() (*v1.AuthHandler, error) {
	svc, err := service.NewAuthService(s.Config.Admin)
	if err != nil {
		return nil, err
	}

	return v1.NewAuthHandler(s.Config.API, svc), nil
}

func (s *Server) initInventoryHandler(store *memstore.Store) *v1.InventoryHandler {
	repo := repository.NewInventoryRepository(store)
	svc := service.NewInventoryService(repo)

	return v1.NewInventoryHandler(svc)
}

func (s *Server) initSignOutHandler(store *memstore.Store) *v1.SignOutHandler {
	repo := repository.NewSignOutRepository(store)
	svc := service.NewSignOutService(repo)

	return v1.NewSignOutHandler(svc)
}

func (s *Server) MountMiddlewares() {
	// Logger and Recovery are needed unless we use gin.Default().
	s.Router.Use(gin.Logger())
	s.Router.Use(gin.Recovery())
	s.Router.Use(requestid.New())
	s.Router.Use(middleware.ConfigCORS(s.Config.API.AllowedCORSDomains))
}

func (s *Server) MountHandlers(authHandler *v1.AuthHandler, inventoryHandler *v1.InventoryHandler, signOutHandler *v1.SignOutHandler) {
	const basePath = "/api/v1"

	// The requester side has no login: listing parts and submitting a
	// sign-out request mirror the original's public form.
	public := s.Router.Group(basePath)
	{
		public.POST("/auth/login", authHandler.HandleLogin)
		public.GET("/parts", inventoryHandler.HandleListParts)
		public.POST("/requests", signOutHandler.HandleSubmitRequest)
	}

	admin := s.Router.Group(basePath, middleware.NewAuthenticator(s.Config.API.JWTSigningKey).VerifyJWT())
	{
		admin.GET("/requests", signOutHandler.HandleListRequests)
		admin.POST("/requests/:requestID/approve", signOutHandler.HandleApproveRequest)
		admin.DELETE("/requests/:requestID", signOutHandler.HandleDeleteRequest)
		admin.GET("/requests/:requestID/csv", signOutHandler.HandleExportRequestCSV)

		admin.POST("/parts", inventoryHandler.HandleAddPart)
		admin.PUT("/parts/:sku/stock", inventoryHandler.HandleEditStock)
		admin.DELETE("/parts/:sku", inventoryHandler.HandleRemovePart)
		admin.GET("/parts/csv", inventoryHandler.HandleExportStockCSV)

		admin.GET("/teams", signOutHandler.HandleListTeamLedgers)
		admin.GET("/teams/:teamNumber/csv", signOutHandler.HandleExportTeamCSV)

		admin.GET("/settings/teams", signOutHandler.HandleGetTeamCount)
		admin.PUT("/settings/teams", signOutHandler.HandleUpdateTeamCount)
	}

	s.Router.GET("/", v1.HandleHealthcheck)
}
