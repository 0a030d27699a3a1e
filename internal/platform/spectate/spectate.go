// Package spectate streams the snapshots of a running game to websocket
// viewers, and reads such a stream back for the watch command.
package spectate

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gorilla/websocket"
)

// Event types sent over the socket.
const (
	EventInfo  = "game_info"
	EventFrame = "frame"
)

const (
	writeWait  = 5 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = pongWait * 9 / 10
	frameBuf   = 16
)

// Source is what a spectator server observes. Every registry.Game is one.
type Source interface {
	ID() string
	Title() string
	Snapshot() any
	Watch(buf int) (<-chan any, func())
}

// Event is the envelope of every message on the socket.
type Event struct {
	Type string          `json:"type"`
	Game string          `json:"game"`
	Seq  uint64          `json:"seq"`
	Data json.RawMessage `json:"data"`
}

type gameInfo struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

// Server upgrades HTTP requests on "/" to snapshot streams.
type Server struct {
	src      Source
	logger   *log.Logger
	upgrader websocket.Upgrader
}

// NewServer creates a server for src. Any origin may connect.
func NewServer(src Source, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.Default()
	}
	return &Server{
		src:    src,
		logger: logger,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 4096,
			CheckOrigin:     func(*http.Request) bool { return true },
		},
	}
}

// ServeHTTP sends a game_info event, the current snapshot, then every
// committed snapshot until the viewer disconnects. Slow viewers miss
// intermediate frames rather than slowing the game.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Warn("spectator upgrade failed", "remote", r.RemoteAddr, "error", err)
		return
	}
	defer conn.Close()

	frames, cancel := s.src.Watch(frameBuf)
	defer cancel()

	s.logger.Info("spectator connected", "remote", r.RemoteAddr, "game", s.src.ID())
	defer s.logger.Info("spectator left", "remote", r.RemoteAddr)

	// The read pump only handles control frames and notices the close.
	closed := make(chan struct{})
	conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})
	go func() {
		defer close(closed)
		for {
			if _, _, err := conn.NextReader(); err != nil {
				return
			}
		}
	}()

	var seq uint64
	send := func(typ string, v any) error {
		data, err := json.Marshal(v)
		if err != nil {
			return fmt.Errorf("spectate: cannot encode %s: %w", typ, err)
		}
		seq++
		conn.SetWriteDeadline(time.Now().Add(writeWait))
		return conn.WriteJSON(Event{Type: typ, Game: s.src.ID(), Seq: seq, Data: data})
	}

	if err := send(EventInfo, gameInfo{ID: s.src.ID(), Title: s.src.Title()}); err != nil {
		return
	}
	if err := send(EventFrame, s.src.Snapshot()); err != nil {
		return
	}

	ping := time.NewTicker(pingPeriod)
	defer ping.Stop()

	for {
		select {
		case snap, ok := <-frames:
			if !ok {
				conn.WriteControl(websocket.CloseMessage,
					websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""), time.Now().Add(writeWait))
				return
			}
			if err := send(EventFrame, snap); err != nil {
				s.logger.Debug("spectator write failed", "error", err)
				return
			}
		case <-ping.C:
			if err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait)); err != nil {
				return
			}
		case <-closed:
			return
		case <-r.Context().Done():
			return
		}
	}
}

// ListenAndServe serves spectators on addr until ctx is cancelled.
// ready, when not nil, receives the bound address once listening.
func ListenAndServe(ctx context.Context, addr string, s *Server, ready func(net.Addr)) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("spectate: cannot listen on %s: %w", addr, err)
	}
	if ready != nil {
		ready(ln.Addr())
	}

	srv := &http.Server{Handler: s, ReadHeaderTimeout: 10 * time.Second}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		srv.Shutdown(shutdownCtx)
	}()

	if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("spectate: %w", err)
	}
	return nil
}

// Watch dials url and calls handle for every event until the stream ends,
// ctx is cancelled or handle returns an error. A normal close is not an
// error.
func Watch(ctx context.Context, url string, handle func(Event) error) error {
	dialer := websocket.Dialer{HandshakeTimeout: 10 * time.Second}

	conn, _, err := dialer.DialContext(ctx, url, nil)
	if err != nil {
		return fmt.Errorf("spectate: cannot connect to %s: %w", url, err)
	}
	defer conn.Close()

	stop := context.AfterFunc(ctx, func() {
		conn.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""), time.Now().Add(writeWait))
		conn.Close()
	})
	defer stop()

	for {
		var ev Event
		if err := conn.ReadJSON(&ev); err != nil {
			if ctx.Err() != nil || websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				return nil
			}
			return fmt.Errorf("spectate: read: %w", err)
		}
		if err := handle(ev); err != nil {
			return err
		}
	}
}
