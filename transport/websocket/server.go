package websocket

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/rocketscienceinc/portfolio-site/internal/entity"
	"github.com/rocketscienceinc/portfolio-site/internal/pkg"
)

const (
	SessionCookieName = "user_session"

	sessionCookieAge = 24 * time.Hour
	shutdownTimeout  = 5 * time.Second
	writeTimeout     = 10 * time.Second
	maxMessageSize   = 4096
)

type gameUseCase interface {
	GetGame(ctx context.Context, sessionID string) (entity.Game, error)
	ChooseCell(ctx context.Context, sessionID string, cell int) (entity.Game, error)
	NewGame(ctx context.Context, sessionID string) (entity.Game, error)
	ResetScores(ctx context.Context, sessionID string) (entity.Game, error)
}

// originKey marks the connection a use case call was made for.
type originKey struct{}

type handlerFunc func(ctx context.Context, client *connection, msg *Message) error

type Server struct {
	logger   *slog.Logger
	game     gameUseCase
	upgrader websocket.Upgrader

	handlers map[string]handlerFunc

	// open connections per session, so every tab of a session sees the same board
	clientsMutex sync.Mutex
	clients      map[string]map[*connection]struct{}

	// handlers still running, hijacked connections are invisible to http.Server.Shutdown
	active sync.WaitGroup
}

func New(logger *slog.Logger, game gameUseCase) *Server {
	server := &Server{
		logger: logger.With("component", "websocket"),
		game:   game,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     sameHostOrigin,
		},

		handlers: make(map[string]handlerFunc),
		clients:  make(map[string]map[*connection]struct{}),
	}

	server.handlers[actionGameState] = server.handleGameState
	server.handlers[actionGameChoose] = server.handleChooseCell
	server.handlers[actionGameNew] = server.handleNewGame
	server.handlers[actionScoresReset] = server.handleResetScores

	return server
}

// Handler - the /ws endpoint, for http.Server and tests.
func (that *Server) Handler(ctx context.Context) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", func(w http.ResponseWriter, r *http.Request) {
		that.upgradeToWebSocket(ctx, w, r)
	})

	return mux
}

// Start - starts WebSocket server and stops it when ctx is canceled.
func (that *Server) Start(ctx context.Context, port string) error {
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           that.Handler(ctx),
		ReadHeaderTimeout: 10 * time.Second,
	}

	shutdownDone := make(chan struct{})
	go func() {
		defer close(shutdownDone)

		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			that.logger.Error("failed to shut down WebSocket server", "error", err)
		}

		that.closeAll()
		that.active.Wait()
	}()

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to start server: %w", err)
	}

	// in-flight requests are drained before Start returns
	<-shutdownDone

	return nil
}

// upgradeToWebSocket - upgrades the connection to WebSocket.
func (that *Server) upgradeToWebSocket(ctx context.Context, writer http.ResponseWriter, req *http.Request) {
	that.active.Add(1)
	defer that.active.Done()

	log := that.logger.With("method", "upgradeConnection")

	sessionID, header := that.sessionFromRequest(req)

	wsConn, err := that.upgrader.Upgrade(writer, req, header)
	if err != nil {
		log.Error("failed to upgrade connection", "error", err)
		return
	}

	client := newConnection(wsConn, sessionID)
	that.register(client)

	defer func() {
		that.unregister(client)
		_ = wsConn.Close()
	}()

	// registered after closeAll ran
	if ctx.Err() != nil {
		return
	}

	log.Debug("WebSocket connection established", "session", sessionID)

	if err = that.handleMessages(ctx, client); err != nil {
		log.Debug("connection closed", "session", sessionID, "error", err)
	}
}

// handleMessages - processes messages from the client until the connection drops.
func (that *Server) handleMessages(ctx context.Context, client *connection) error {
	log := that.logger.With("method", "handleMessages")

	client.conn.SetReadLimit(maxMessageSize)

	for {
		_, data, err := client.conn.ReadMessage()
		if err != nil {
			return err
		}

		var message Message
		if err = json.Unmarshal(data, &message); err != nil {
			log.Warn("failed to unmarshal message", "error", err)
			if err = client.send(actionUnknown, ResponsePayload{Error: "malformed message"}); err != nil {
				return err
			}
			continue
		}

		handler, ok := that.handlers[message.Action]
		if !ok {
			log.Warn("unknown action", "action", message.Action)
			if err = client.send(message.Action, ResponsePayload{Error: "unknown action"}); err != nil {
				return err
			}
			continue
		}

		if err = handler(context.WithValue(ctx, originKey{}, client), client, &message); err != nil {
			log.Error("error processing message", "action", message.Action, "error", err)
			return err
		}
	}
}

// sessionFromRequest - reads the session cookie, or issues a new one in the upgrade response.
func (that *Server) sessionFromRequest(req *http.Request) (string, http.Header) {
	cookie, err := req.Cookie(SessionCookieName)
	if err == nil && pkg.IsSessionID(cookie.Value) {
		return cookie.Value, nil
	}

	sessionID := pkg.GenerateNewSessionID()
	newCookie := &http.Cookie{
		Name:     SessionCookieName,
		Value:    sessionID,
		Path:     "/",
		Expires:  time.Now().Add(sessionCookieAge),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}

	header := http.Header{}
	header.Add("Set-Cookie", newCookie.String())

	return sessionID, header
}

func (that *Server) register(c *connection) {
	that.clientsMutex.Lock()
	defer that.clientsMutex.Unlock()

	if that.clients[c.sessionID] == nil {
		that.clients[c.sessionID] = make(map[*connection]struct{})
	}
	that.clients[c.sessionID][c] = struct{}{}
}

func (that *Server) unregister(c *connection) {
	that.clientsMutex.Lock()
	defer that.clientsMutex.Unlock()

	delete(that.clients[c.sessionID], c)
	if len(that.clients[c.sessionID]) == 0 {
		delete(that.clients, c.sessionID)
	}
}

// PublishGame sends a changed game to every open tab of its session, except the connection
// that asked for the change and already got it as a reply.
func (that *Server) PublishGame(ctx context.Context, game entity.Game) {
	origin, _ := ctx.Value(originKey{}).(*connection)

	that.clientsMutex.Lock()
	peers := make([]*connection, 0, len(that.clients[game.ID]))
	for peer := range that.clients[game.ID] {
		if peer != origin {
			peers = append(peers, peer)
		}
	}
	that.clientsMutex.Unlock()

	for _, peer := range peers {
		if err := peer.send(actionGameState, ResponsePayload{Game: &game}); err != nil {
			that.logger.Warn("failed to sync session tab", "session", game.ID, "error", err)
		}
	}
}

func (that *Server) closeAll() {
	that.clientsMutex.Lock()
	defer that.clientsMutex.Unlock()

	for _, sessionClients := range that.clients {
		for c := range sessionClients {
			_ = c.conn.Close()
		}
	}
}

// sameHostOrigin - the page and the socket share a host but live on different ports.
func sameHostOrigin(req *http.Request) bool {
	origin := req.Header.Get("Origin")
	if origin == "" {
		return true
	}

	originURL, err := url.Parse(origin)
	if err != nil {
		return false
	}

	host := req.Host
	if h, _, splitErr := net.SplitHostPort(req.Host); splitErr == nil {
		host = h
	}

	return strings.EqualFold(originURL.Hostname(), host)
}

type connection struct {
	conn      *websocket.Conn
	sessionID string

	writeMutex sync.Mutex
}

func newConnection(conn *websocket.Conn, sessionID string) *connection {
	return &connection{conn: conn, sessionID: sessionID}
}

func (that *connection) send(action string, payload ResponsePayload) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal payload: %w", err)
	}

	that.writeMutex.Lock()
	defer that.writeMutex.Unlock()

	if err = that.conn.SetWriteDeadline(time.Now().Add(writeTimeout)); err != nil {
		return fmt.Errorf("failed to set write deadline: %w", err)
	}

	if err = that.conn.WriteJSON(Message{Action: action, Payload: data}); err != nil {
		return fmt.Errorf("failed to send message: %w", err)
	}

	return nil
}
