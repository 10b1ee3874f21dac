package setup

import (
	"github.com/komachi-dev/komachi/internal/config"
	"github.com/komachi-dev/komachi/internal/handler"
	"github.com/komachi-dev/komachi/internal/jwt"
	"github.com/komachi-dev/komachi/internal/markdown"
	"github.com/komachi-dev/komachi/internal/service"
	"github.com/komachi-dev/komachi/internal/storage/pg"
	"github.com/komachi-dev/komachi/internal/utils"
)

// Dependencies holds all initialized dependencies.
type Dependencies struct {
	Config  *config.Config
	Storage *pg.Storage
	Handler *handler.Handler
	Jwt     jwt.JwtService
}

// SetupDependencies initializes all dependencies required for the application.
func SetupDependencies(cfg *config.Config) (*Dependencies, error) {
	storage, err := pg.New(cfg)
	if err != nil {
		return nil, err
	}

	jwtService := jwt.New(cfg.JwtKey(), cfg.AdminTokenTTL())

	board := service.NewBoard(storage, &utils.BoardKeyValidator{})
	thread := service.NewThread(storage, storage, &utils.ThreadTitleValidator{}, &utils.PostValidator{}, cfg.Public.PreviewReplies, cfg.Public.MaxThreadsPerPage)
	post := service.NewPost(storage, &utils.PostValidator{})

	h := handler.New(board, thread, post, markdown.New(), cfg)

	return &Dependencies{
		Config:  cfg,
		Storage: storage,
		Handler: h,
		Jwt:     jwtService,
	}, nil
}
