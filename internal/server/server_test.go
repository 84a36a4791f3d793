package server

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/gorilla/websocket"

	"map-creator/internal/config"
	"map-creator/internal/live"
)

func factory(t *testing.T) AnimationFactory {
	return func(width, height int) (live.Animation, error) {
		s := config.Defaults()
		s.Width, s.Height = width, height
		return s.Animation()
	}
}

func TestQuitRequested(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"q", true},
		{"Q", true},
		{"\x03", true},
		{"abc", false},
		{"\x1b[A", false},
		{"héq", true},
		{"", false},
	}
	for _, tt := range tests {
		if got := quitRequested([]byte(tt.in)); got != tt.want {
			t.Errorf("quitRequested(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestTruncateUTF8(t *testing.T) {
	tests := []struct {
		in   string
		n    int
		want string
	}{
		{"short", 10, "short"},
		{"abcdef", 3, "abc"},
		{"aé", 2, "a"},
		{"aé", 3, "aé"},
		{"日本", 4, "日"},
		{"日本", 2, ""},
	}
	for _, tt := range tests {
		got := truncateUTF8(tt.in, tt.n)
		if got != tt.want {
			t.Errorf("truncateUTF8(%q, %d) = %q, want %q", tt.in, tt.n, got, tt.want)
		}
		if !utf8.ValidString(got) {
			t.Errorf("truncateUTF8(%q, %d) split a rune: %q", tt.in, tt.n, got)
		}
	}

	long := strings.Repeat("é", maxCloseReason)
	if got := truncateUTF8(long, maxCloseReason); len(got) > maxCloseReason || !utf8.ValidString(got) {
		t.Errorf("close reason of %d bytes, valid %v", len(got), utf8.ValidString(got))
	}
}

func TestMapArea(t *testing.T) {
	if w, h := MapArea(80, 24); w != 80 || h != 21 {
		t.Errorf("MapArea(80, 24) = %d, %d, want 80, 21", w, h)
	}
}

func TestStreamRestartsOnResize(t *testing.T) {
	var sizes [][2]int
	srv := NewSSHServer(":0", "", 1000, func(w, h int) (live.Animation, error) {
		sizes = append(sizes, [2]int{w, h})
		return factory(t)(w, h)
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	resized := make(chan struct{}, 1)
	cols, rows := 20, 10

	frames := 0
	out := writerFunc(func(p []byte) {
		switch {
		case bytes.Contains(p, []byte("WIDTH: 20 |")):
			frames++
			if frames == 3 {
				cols, rows = 30, 12
				resized <- struct{}{}
			}
		case bytes.Contains(p, []byte("WIDTH: 30 |")):
			cancel()
		}
	})

	if err := srv.stream(ctx, out, resized, func() (int, int) { return MapArea(cols, rows) }); err != nil {
		t.Fatal(err)
	}
	if len(sizes) != 2 || sizes[0] != [2]int{20, 7} || sizes[1] != [2]int{30, 9} {
		t.Errorf("animations built for %v, want [[20 7] [30 9]]", sizes)
	}
}

type writerFunc func(p []byte)

func (f writerFunc) Write(p []byte) (int, error) {
	f(p)
	return len(p), nil
}

func TestStreamReportsFactoryError(t *testing.T) {
	srv := NewSSHServer(":0", "", 1000, func(int, int) (live.Animation, error) {
		return nil, errors.New("too small")
	})
	err := srv.stream(context.Background(), &bytes.Buffer{}, nil, func() (int, int) { return 1, 1 })
	if err == nil || err.Error() != "too small" {
		t.Errorf("stream err = %v", err)
	}
}

func wsURL(ts *httptest.Server, query string) string {
	return "ws" + strings.TrimPrefix(ts.URL, "http") + "/live" + query
}

func TestWebsocketFrames(t *testing.T) {
	ts := httptest.NewServer(NewWSServer("", 1000, 40, 10, factory(t)).Handler())
	defer ts.Close()

	conn, _, err := websocket.DefaultDialer.Dial(wsURL(ts, "?width=24&height=6"), nil)
	if err != nil {
		t.Fatal(err)
	}
	defer conn.Close()
	_ = conn.SetReadDeadline(time.Now().Add(5 * time.Second))

	for i := 0; i < 3; i++ {
		mt, msg, err := conn.ReadMessage()
		if err != nil {
			t.Fatalf("frame %d: %v", i, err)
		}
		if mt != websocket.TextMessage {
			t.Errorf("frame %d type = %d, want text", i, mt)
		}
		frame := string(msg)
		if !strings.Contains(frame, "WIDTH: 24 | HEIGHT: 6") {
			t.Errorf("frame %d missing info table: %q", i, frame)
		}
		if !strings.HasSuffix(frame, strings.Repeat("=", 24)) {
			t.Errorf("frame %d does not end with the floor", i)
		}
	}
}

func TestWebsocketRejectsBadSize(t *testing.T) {
	ts := httptest.NewServer(NewWSServer("", 1000, 40, 10, factory(t)).Handler())
	defer ts.Close()

	for _, q := range []string{"?width=abc", "?height=0", "?width=5000"} {
		_, resp, err := websocket.DefaultDialer.Dial(wsURL(ts, q), nil)
		if err == nil {
			t.Errorf("%s: dial succeeded", q)
			continue
		}
		if resp == nil || resp.StatusCode != http.StatusBadRequest {
			t.Errorf("%s: response %v, want 400", q, resp)
		}
	}
}
