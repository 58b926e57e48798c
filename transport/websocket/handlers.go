package websocket

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/rocketscienceinc/portfolio-site/internal/apperror"
	"github.com/rocketscienceinc/portfolio-site/internal/entity"
)

func (that *Server) handleGameState(ctx context.Context, client *connection, msg *Message) error {
	game, err := that.game.GetGame(ctx, client.sessionID)
	return that.respond(client, msg.Action, game, err)
}

func (that *Server) handleChooseCell(ctx context.Context, client *connection, msg *Message) error {
	var payloadReq ChoosePayload
	if err := json.Unmarshal(msg.Payload, &payloadReq); err != nil || payloadReq.Cell == nil {
		return that.sendErrorResponse(client, msg.Action, "cell is required")
	}

	game, err := that.game.ChooseCell(ctx, client.sessionID, *payloadReq.Cell)
	return that.respond(client, msg.Action, game, err)
}

func (that *Server) handleNewGame(ctx context.Context, client *connection, msg *Message) error {
	game, err := that.game.NewGame(ctx, client.sessionID)
	return that.respond(client, msg.Action, game, err)
}

func (that *Server) handleResetScores(ctx context.Context, client *connection, msg *Message) error {
	game, err := that.game.ResetScores(ctx, client.sessionID)
	return that.respond(client, msg.Action, game, err)
}

// respond - replies to the requesting connection. Other tabs learn about changes through PublishGame.
func (that *Server) respond(client *connection, action string, game entity.Game, err error) error {
	switch {
	case errors.Is(err, apperror.ErrInvalidCell):
		return that.sendErrorResponse(client, action, apperror.ErrInvalidCell.Error())
	case err != nil:
		that.logger.Error("game action failed", "action", action, "session", client.sessionID, "error", err)
		return that.sendErrorResponse(client, action, "internal error")
	}

	return client.send(action, ResponsePayload{Game: &game})
}

func (that *Server) sendErrorResponse(client *connection, action, errorMsg string) error {
	return client.send(action, ResponsePayload{Error: errorMsg})
}
