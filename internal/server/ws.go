package server

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/gorilla/websocket"

	"map-creator/internal/live"
)

const (
	// Time allowed to write a frame to the peer.
	writeWait = 5 * time.Second

	// Time allowed to read the next pong message from the peer.
	pongWait = 60 * time.Second

	// Send pings to peer with this period. Must be less than pongWait.
	pingPeriod = (pongWait * 8) / 10

	// Viewers only send control frames.
	maxMessageSize = 512

	// Longest close reason a control frame can carry.
	maxCloseReason = 123

	maxViewerSize = 1000
)

var upgrader = websocket.Upgrader{
	CheckOrigin:      func(r *http.Request) bool { return true },
	HandshakeTimeout: time.Second,
	ReadBufferSize:   maxMessageSize,
	WriteBufferSize:  4096,
}

// WSServer streams live terrain over websockets, one text message per frame.
type WSServer struct {
	addr          string
	fps           float64
	width, height int
	newAnim       AnimationFactory
}

// NewWSServer serves /live on addr. width and height are the map area used
// when a viewer does not ask for one.
func NewWSServer(addr string, fps float64, width, height int, f AnimationFactory) *WSServer {
	return &WSServer{addr: addr, fps: fps, width: width, height: height, newAnim: f}
}

// Handler returns the HTTP routes of the server.
func (s *WSServer) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/live", s.serveLive)
	return mux
}

// Start begins listening for websocket viewers.
func (s *WSServer) Start() error {
	log.Printf("Websocket server listening on %s", s.addr)
	return http.ListenAndServe(s.addr, s.Handler())
}

func (s *WSServer) serveLive(w http.ResponseWriter, r *http.Request) {
	width, err := queryDim(r, "width", s.width)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	height, err := queryDim(r, "height", s.height)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	anim, err := s.newAnim(width, height)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Println("upgrade error:", err)
		return
	}
	defer conn.Close()
	log.Printf("Viewer connected: %s (%dx%d)", r.RemoteAddr, width, height)
	defer log.Printf("Viewer disconnected: %s", r.RemoteAddr)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	out := &frameWriter{conn: conn}
	go readPump(conn, cancel)
	go out.pingPump(ctx)

	pacer := live.NewTickerPacer(s.fps)
	defer pacer.Stop()

	code, reason := websocket.CloseNormalClosure, ""
	if err := live.Run(ctx, anim, pacer, out); err != nil {
		log.Printf("Viewer %s: %v", r.RemoteAddr, err)
		code, reason = websocket.CloseInternalServerErr, truncateUTF8(err.Error(), maxCloseReason)
	}
	out.close(code, reason)
}

// truncateUTF8 cuts s to at most n bytes without splitting a rune.
func truncateUTF8(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n]
}

func queryDim(r *http.Request, key string, def int) (int, error) {
	v := r.URL.Query().Get(key)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 1 || n > maxViewerSize {
		return 0, fmt.Errorf("invalid %s %q", key, v)
	}
	return n, nil
}

// readPump discards client messages and cancels the stream once the
// connection goes away.
func readPump(conn *websocket.Conn, cancel context.CancelFunc) {
	defer cancel()
	conn.SetReadLimit(maxMessageSize)
	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		_ = conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})
	for {
		if _, _, err := conn.NextReader(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Println("close error:", err)
			}
			return
		}
	}
}

// frameWriter sends every Write as one text message. gorilla connections
// allow a single concurrent writer, hence the mutex.
type frameWriter struct {
	mu   sync.Mutex
	conn *websocket.Conn
}

func (f *frameWriter) Write(p []byte) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	_ = f.conn.SetWriteDeadline(time.Now().Add(writeWait))
	if err := f.conn.WriteMessage(websocket.TextMessage, p); err != nil {
		return 0, err
	}
	return len(p), nil
}

func (f *frameWriter) pingPump(ctx context.Context) {
	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			f.mu.Lock()
			_ = f.conn.SetWriteDeadline(time.Now().Add(writeWait))
			err := f.conn.WriteMessage(websocket.PingMessage, nil)
			f.mu.Unlock()
			if err != nil {
				return
			}
		}
	}
}

func (f *frameWriter) close(code int, reason string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	_ = f.conn.WriteControl(websocket.CloseMessage, websocket.FormatCloseMessage(code, reason), time.Now().Add(writeWait))
}
