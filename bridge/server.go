package bridge

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/kataras/golog"

	"github.com/lixenwraith/touchport/parameter"
	"github.com/lixenwraith/touchport/platform"
)

var logger = golog.Child("[bridge]")

// Sink receives decoded raw events; platform.Queue satisfies it
type Sink interface {
	Push(platform.RawEvent)
}

// Stats is a point-in-time view of bridge activity
type Stats struct {
	Connections int64  `json:"connections"`
	Received    uint64 `json:"received"`
	Rejected    uint64 `json:"rejected"`
}

// Server accepts remote touch clients and forwards their raw events into a Sink
type Server struct {
	sink     Sink
	path     string
	router   *gin.Engine
	upgrader websocket.Upgrader

	connections atomic.Int64
	received    atomic.Uint64
	rejected    atomic.Uint64

	// Keepalive; pingPeriod must be shorter than pongWait
	pongWait   time.Duration
	pingPeriod time.Duration

	mu      sync.Mutex
	conns   map[*websocket.Conn]struct{}
	closing bool
	wg      sync.WaitGroup
}

// NewServer builds a bridge serving websocket clients on path
func NewServer(path string, sink Sink) *Server {
	gin.SetMode(gin.ReleaseMode)

	s := &Server{
		sink:       sink,
		path:       path,
		conns:      make(map[*websocket.Conn]struct{}),
		pongWait:   parameter.BridgePongWait,
		pingPeriod: parameter.BridgePingPeriod,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// Touch clients run on other devices
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}

	r := gin.New()
	r.Use(gin.Recovery(), requestLogger())
	r.GET(path, s.handleInput)
	r.GET("/healthz", func(c *gin.Context) { c.String(http.StatusOK, "ok") })
	r.GET("/stats", func(c *gin.Context) { c.JSON(http.StatusOK, s.Stats()) })
	s.router = r
	return s
}

// Handler exposes the router for embedding and tests
func (s *Server) Handler() http.Handler {
	return s.router
}

// Stats returns current counters
func (s *Server) Stats() Stats {
	return Stats{
		Connections: s.connections.Load(),
		Received:    s.received.Load(),
		Rejected:    s.rejected.Load(),
	}
}

// ListenAndServe serves until ctx is cancelled, then shuts down and waits for connections
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Infof("listening on %s%s", addr, s.path)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	err := srv.Shutdown(shutdownCtx)

	s.closeAll()
	s.wg.Wait()
	return err
}

// closeAll refuses further upgrades and closes every tracked connection
// Hijacked websocket connections are not closed by http.Server.Shutdown
func (s *Server) closeAll() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closing = true
	for conn := range s.conns {
		conn.Close()
	}
}

// track registers conn unless shutdown has started
// Registration and wg.Add share the lock with closeAll so Wait never races an Add
func (s *Server) track(conn *websocket.Conn) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closing {
		return false
	}
	s.conns[conn] = struct{}{}
	s.wg.Add(1)
	s.connections.Add(1)
	return true
}

func (s *Server) handleInput(c *gin.Context) {
	conn, err := s.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		logger.Warnf("upgrade failed from %s: %v", c.ClientIP(), err)
		return
	}

	if !s.track(conn) {
		msg := websocket.FormatCloseMessage(websocket.CloseGoingAway, "shutting down")
		conn.WriteControl(websocket.CloseMessage, msg, time.Now().Add(parameter.BridgeWriteWait))
		conn.Close()
		return
	}
	remote := conn.RemoteAddr().String()
	logger.Infof("client connected %s", remote)

	defer func() {
		s.mu.Lock()
		delete(s.conns, conn)
		s.mu.Unlock()
		conn.Close()
		s.connections.Add(-1)
		s.wg.Done()
		logger.Infof("client disconnected %s", remote)
	}()

	s.readLoop(conn)
}

// readLoop decodes frames until the client goes away
// Bad frames are counted and skipped; the connection stays open
func (s *Server) readLoop(conn *websocket.Conn) {
	conn.SetReadLimit(parameter.BridgeReadLimit)
	conn.SetReadDeadline(time.Now().Add(s.pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(s.pongWait))
	})

	done := make(chan struct{})
	defer close(done)
	go pingLoop(conn, s.pingPeriod, done)

	for {
		msgType, data, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				logger.Debugf("read: %v", err)
			}
			return
		}
		if msgType != websocket.TextMessage {
			s.rejected.Add(1)
			continue
		}

		ev, err := Decode(data)
		if err != nil {
			s.rejected.Add(1)
			logger.Debugf("dropped frame: %v", err)
			continue
		}
		s.received.Add(1)
		s.sink.Push(ev)
	}
}

func pingLoop(conn *websocket.Conn, period time.Duration, done <-chan struct{}) {
	ticker := time.NewTicker(period)
	defer ticker.Stop()
	for {
		select {
		case <-done:
			return
		case <-ticker.C:
			deadline := time.Now().Add(parameter.BridgeWriteWait)
			if err := conn.WriteControl(websocket.PingMessage, nil, deadline); err != nil {
				return
			}
		}
	}
}

func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logger.Debugf("%s %s %d %v", c.Request.Method, c.Request.URL.Path, c.Writer.Status(), time.Since(start))
	}
}
