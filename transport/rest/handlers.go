package rest

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/rocketscienceinc/portfolio-site/internal/apperror"
	"github.com/rocketscienceinc/portfolio-site/internal/entity"
	"github.com/rocketscienceinc/portfolio-site/internal/portfolio"
)

type errorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields,omitempty"`
}

func (that *Server) index(ctx *gin.Context) {
	log := that.logger.With("method", "index")

	game, err := that.game.GetGame(ctx.Request.Context(), sessionID(ctx))
	if err != nil {
		log.Error("failed to get game", "error", err)
		game = entity.NewGame(sessionID(ctx))
	}

	ctx.HTML(http.StatusOK, "index.html", gin.H{
		"content":  that.content,
		"featured": that.content.FeaturedProjects(),
		"game":     game,
	})
}

func (that *Server) getPortfolio(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, that.content)
}

func (that *Server) getProjects(ctx *gin.Context) {
	if ctx.Query("featured") == "true" {
		ctx.JSON(http.StatusOK, that.content.FeaturedProjects())
		return
	}

	ctx.JSON(http.StatusOK, that.content.Projects)
}

func (that *Server) getProject(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse{Error: "invalid project id"})
		return
	}

	project, err := that.content.ProjectByID(id)
	if errors.Is(err, portfolio.ErrProjectNotFound) {
		ctx.JSON(http.StatusNotFound, errorResponse{Error: err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, project)
}

func (that *Server) getGame(ctx *gin.Context) {
	game, err := that.game.GetGame(ctx.Request.Context(), sessionID(ctx))
	that.respondGame(ctx, "getGame", game, err)
}

func (that *Server) chooseCell(ctx *gin.Context) {
	cell, err := strconv.Atoi(ctx.Param("cell"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse{Error: apperror.ErrInvalidCell.Error()})
		return
	}

	game, err := that.game.ChooseCell(ctx.Request.Context(), sessionID(ctx), cell)
	that.respondGame(ctx, "chooseCell", game, err)
}

func (that *Server) newGame(ctx *gin.Context) {
	game, err := that.game.NewGame(ctx.Request.Context(), sessionID(ctx))
	that.respondGame(ctx, "newGame", game, err)
}

func (that *Server) resetScores(ctx *gin.Context) {
	game, err := that.game.ResetScores(ctx.Request.Context(), sessionID(ctx))
	that.respondGame(ctx, "resetScores", game, err)
}

func (that *Server) respondGame(ctx *gin.Context, method string, game entity.Game, err error) {
	switch {
	case err == nil:
		ctx.JSON(http.StatusOK, game)
	case errors.Is(err, apperror.ErrInvalidCell):
		ctx.JSON(http.StatusBadRequest, errorResponse{Error: apperror.ErrInvalidCell.Error()})
	default:
		that.logger.Error("game request failed", "method", method, "error", err)
		_ = ctx.Error(err)
		ctx.JSON(http.StatusInternalServerError, errorResponse{Error: "Internal Server Error"})
	}
}

func (that *Server) submitContact(ctx *gin.Context) {
	log := that.logger.With("method", "submitContact")

	var msg entity.ContactMessage
	if err := ctx.ShouldBind(&msg); err != nil {
		ctx.JSON(http.StatusBadRequest, bindingError(err))
		return
	}

	msg.SessionID = sessionID(ctx)

	if err := that.contact.Submit(ctx.Request.Context(), &msg); err != nil {
		log.Error("failed to submit contact message", "error", err)
		_ = ctx.Error(err)
		ctx.JSON(http.StatusInternalServerError, errorResponse{Error: "Internal Server Error"})
		return
	}

	ctx.JSON(http.StatusAccepted, gin.H{"status": "received"})
}

// bindingError - turns validator errors into a field → rule map the form can show.
func bindingError(err error) errorResponse {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return errorResponse{Error: "invalid request body"}
	}

	fields := make(map[string]string, len(validationErrors))
	for _, fieldErr := range validationErrors {
		fields[fieldErr.Field()] = fieldErr.Tag()
	}

	return errorResponse{Error: "validation failed", Fields: fields}
}
