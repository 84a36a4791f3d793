package server

import (
	"context"
	"fmt"
	"io"
	"log"
	"sync"
	"unicode/utf8"

	"github.com/gliderlabs/ssh"

	"map-creator/internal/live"
	"map-creator/internal/render"
)

// AnimationFactory builds a fresh animation for a viewer whose map area is
// width x height cells.
type AnimationFactory func(width, height int) (live.Animation, error)

// MapArea is the part of a terminal left for the map once the info table
// and floor are drawn.
func MapArea(cols, rows int) (int, int) {
	return cols, rows - render.InfoRows
}

// SSHServer streams live terrain to every SSH session with a PTY.
type SSHServer struct {
	addr    string
	hostKey string
	fps     float64
	newAnim AnimationFactory
}

// NewSSHServer creates a new SSH server bound to the given address.
func NewSSHServer(addr, hostKey string, fps float64, f AnimationFactory) *SSHServer {
	return &SSHServer{
		addr:    addr,
		hostKey: hostKey,
		fps:     fps,
		newAnim: f,
	}
}

// Start begins listening for SSH connections.
func (s *SSHServer) Start() error {
	server := &ssh.Server{
		Addr: s.addr,
		Handler: func(sess ssh.Session) {
			s.handleSession(sess)
		},
	}

	if err := server.SetOption(ssh.HostKeyFile(s.hostKey)); err != nil {
		return fmt.Errorf("set host key: %w", err)
	}

	log.Printf("SSH server listening on %s", s.addr)
	return server.ListenAndServe()
}

func (s *SSHServer) handleSession(sess ssh.Session) {
	ptyReq, winCh, ok := sess.Pty()
	if !ok {
		fmt.Fprintln(sess, "Error: PTY required. Use: ssh -t ...")
		return
	}

	viewer := sess.User()
	if viewer == "" {
		viewer = "Anonymous"
	}
	log.Printf("Viewer connected: %s (%dx%d)", viewer, ptyReq.Window.Width, ptyReq.Window.Height)
	defer log.Printf("Viewer disconnected: %s", viewer)

	ctx, cancel := context.WithCancel(sess.Context())
	defer cancel()

	termW, termH := ptyReq.Window.Width, ptyReq.Window.Height
	var termMu sync.Mutex
	resized := make(chan struct{}, 1)

	// Goroutine: read input
	go func() {
		buf := make([]byte, 64)
		for {
			n, err := sess.Read(buf)
			if err != nil || quitRequested(buf[:n]) {
				cancel()
				return
			}
		}
	}()

	// Goroutine: handle window resizes
	go func() {
		for win := range winCh {
			termMu.Lock()
			termW, termH = win.Width, win.Height
			termMu.Unlock()
			select {
			case resized <- struct{}{}:
			default:
			}
		}
	}()

	io.WriteString(sess, render.Enter())
	err := s.stream(ctx, sess, resized, func() (int, int) {
		termMu.Lock()
		defer termMu.Unlock()
		return MapArea(termW, termH)
	})
	io.WriteString(sess, render.Leave())

	if err != nil {
		log.Printf("Session %s: %v", viewer, err)
		fmt.Fprintf(sess, "Error: %v\r\n", err)
	}
}

// stream runs animations until ctx is done, starting over at the new size
// whenever the terminal is resized.
func (s *SSHServer) stream(ctx context.Context, out io.Writer, resized <-chan struct{}, size func() (int, int)) error {
	pacer := live.NewTickerPacer(s.fps)
	defer pacer.Stop()

	for {
		w, h := size()
		anim, err := s.newAnim(w, h)
		if err != nil {
			return err
		}

		runCtx, stop := context.WithCancel(ctx)
		go func() {
			select {
			case <-resized:
				stop()
			case <-runCtx.Done():
			}
		}()
		err = live.Run(runCtx, anim, pacer, out)
		stop()

		if err != nil || ctx.Err() != nil {
			return err
		}
		io.WriteString(out, render.ClearScreen())
	}
}

// quitRequested reports whether the input holds q, Q or Ctrl-C.
func quitRequested(data []byte) bool {
	for i := 0; i < len(data); {
		r, size := utf8.DecodeRune(data[i:])
		switch r {
		case 'q', 'Q', 3:
			return true
		}
		i += size
	}
	return false
}
