package setup

import (
	"context"

	"github.com/itchan-dev/forum/backend/internal/handler"
	"github.com/itchan-dev/forum/backend/internal/service"
	"github.com/itchan-dev/forum/backend/internal/service/utils"
	"github.com/itchan-dev/forum/backend/internal/storage/pg"
	"github.com/itchan-dev/forum/shared/config"
	"github.com/itchan-dev/forum/shared/jwt"
	"github.com/itchan-dev/forum/shared/logger"
	mw "github.com/itchan-dev/forum/shared/middleware"
)

// Dependencies struct to hold all initialized dependencies.
type Dependencies struct {
	Storage        *pg.Storage
	Handler        *handler.Handler
	AuthMiddleware *mw.Auth
	Config         *config.Config
}

// SetupDependencies connects to the database and wires every service.
func SetupDependencies(ctx context.Context, cfg *config.Config) (*Dependencies, error) {
	storage, err := pg.New(ctx, cfg)
	if err != nil {
		return nil, err
	}
	if cfg.Public.RunMigrations {
		logger.Log.Info("applying migrations")
		if err := storage.Migrate(ctx); err != nil {
			storage.Cleanup()
			return nil, err
		}
	}

	return &Dependencies{
		Storage:        storage,
		Handler:        NewHandler(cfg, storage),
		AuthMiddleware: mw.NewAuth(jwt.New(cfg.JwtKey(), cfg.JwtTTL())),
		Config:         cfg,
	}, nil
}

// Repositories is everything the services persist through.
type Repositories interface {
	service.ThreadRepository
	service.CommentRepository
	service.ReplyRepository
	service.LikeRepository
	handler.HealthChecker
}

// NewHandler builds the services over repos and the handler over them.
func NewHandler(cfg *config.Config, repos Repositories) *handler.Handler {
	sanitizer := utils.NewTextSanitizer()

	thread := service.NewThread(repos, repos, repos, repos, sanitizer, cfg.Public.RedactionMarkers(), cfg.Public.LikeCountConcurrency)
	comment := service.NewComment(repos, repos, sanitizer)
	reply := service.NewReply(repos, repos, repos, sanitizer)
	like := service.NewLike(repos, repos, repos)

	return handler.New(thread, comment, reply, like, handler.NewTranslator(cfg.Public.Locale), repos)
}
