package rest

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/rocketscienceinc/portfolio-site/internal/entity"
	"github.com/rocketscienceinc/portfolio-site/internal/portfolio"
)

const shutdownTimeout = 5 * time.Second

//go:embed templates/*.html
var templatesFS embed.FS

type gameUseCase interface {
	GetGame(ctx context.Context, sessionID string) (entity.Game, error)
	ChooseCell(ctx context.Context, sessionID string, cell int) (entity.Game, error)
	NewGame(ctx context.Context, sessionID string) (entity.Game, error)
	ResetScores(ctx context.Context, sessionID string) (entity.Game, error)
}

type contactUseCase interface {
	Submit(ctx context.Context, msg *entity.ContactMessage) error
}

type Server struct {
	logger  *slog.Logger
	game    gameUseCase
	contact contactUseCase
	content *portfolio.Content

	router *gin.Engine
}

func New(logger *slog.Logger, game gameUseCase, contact contactUseCase, content *portfolio.Content) *Server {
	server := &Server{
		logger:  logger.With("component", "http"),
		game:    game,
		contact: contact,
		content: content,
	}

	server.router = server.newRouter()

	return server
}

// Handler - the routes of the site, for http.Server and tests.
func (that *Server) Handler() http.Handler {
	return that.router
}

// Start - serves HTTP on port until ctx is canceled, then shuts down gracefully.
func (that *Server) Start(ctx context.Context, port string) error {
	srv := &http.Server{
		Addr:         ":" + port,
		Handler:      that.router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  30 * time.Second,
	}

	shutdownDone := make(chan struct{})
	go func() {
		defer close(shutdownDone)

		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			that.logger.Error("failed to shut down HTTP server", "error", err)
		}
	}()

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to start server: %w", err)
	}

	// in-flight requests are drained before Start returns
	<-shutdownDone

	return nil
}

func (that *Server) newRouter() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), requestLogger(that.logger), sessionMiddleware())

	router.SetHTMLTemplate(template.Must(template.New("").Funcs(templateFuncs).ParseFS(templatesFS, "templates/*.html")))

	router.GET("/", that.index)
	router.GET("/ping", that.ping)

	api := router.Group("/api")
	{
		api.GET("/portfolio", that.getPortfolio)
		api.GET("/projects", that.getProjects)
		api.GET("/projects/:id", that.getProject)

		api.GET("/game", that.getGame)
		api.POST("/game/cells/:cell", that.chooseCell)
		api.POST("/game/new", that.newGame)
		api.POST("/game/scores/reset", that.resetScores)

		api.POST("/contact", that.submitContact)
	}

	return router
}

var templateFuncs = template.FuncMap{
	"cells": func() []int {
		cells := make([]int, entity.BoardSize)
		for i := range cells {
			cells[i] = i
		}
		return cells
	},
}
