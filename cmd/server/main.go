package main

import (
	"crypto/ed25519"
	"crypto/rand"
	"crypto/x509"
	"encoding/pem"
	"flag"
	"log"
	"os"

	"map-creator/internal/config"
	"map-creator/internal/live"
	"map-creator/internal/server"
)

const (
	defaultAddr   = ":2222"
	defaultWSAddr = ":8080"
	hostKeyPath   = "host_key"
)

func main() {
	log.SetFlags(log.Ltime | log.Lshortfile)

	s := config.Defaults()
	s.RegisterNoise(flag.CommandLine)
	addr := flag.String("addr", defaultAddr, "SSH listen address")
	wsAddr := flag.String("ws", defaultWSAddr, "websocket listen address (empty disables)")
	hostKey := flag.String("host-key", hostKeyPath, "SSH host key file, generated if missing")
	size := flag.String("size", "80x21", "websocket map area as WxH when the viewer sends none")
	flag.Parse()

	if err := s.Validate(); err != nil {
		log.Fatalf("Config error: %v", err)
	}
	wsW, wsH, err := config.ParseSize(*size)
	if err != nil {
		log.Fatalf("Config error: %v", err)
	}
	seed := s.EffectiveSeed()
	log.Printf("Streaming %dD %s noise (seed %d) at %g fps", s.Dimension, s.Backend, seed, s.Speed)

	// Every viewer gets its own animation over the shared settings.
	factory := func(width, height int) (live.Animation, error) {
		v := s
		v.Width, v.Height = width, height
		return v.Animation()
	}

	if err := ensureHostKey(*hostKey); err != nil {
		log.Fatalf("Host key error: %v", err)
	}

	if *wsAddr != "" {
		ws := server.NewWSServer(*wsAddr, s.Speed, wsW, wsH, factory)
		go func() {
			if err := ws.Start(); err != nil {
				log.Fatalf("Websocket server error: %v", err)
			}
		}()
	}

	listenAddr := *addr
	if port := os.Getenv("PORT"); port != "" {
		listenAddr = ":" + port
	}
	sshServer := server.NewSSHServer(listenAddr, *hostKey, s.Speed, factory)
	log.Printf("Starting map creator - connect with: ssh -t -p %s localhost", listenAddr[1:])
	if err := sshServer.Start(); err != nil {
		log.Fatalf("SSH server error: %v", err)
	}
}

func ensureHostKey(path string) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	}

	log.Println("Generating new host key...")
	_, priv, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return err
	}

	keyBytes, err := x509.MarshalPKCS8PrivateKey(priv)
	if err != nil {
		return err
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return err
	}
	defer f.Close()

	return pem.Encode(f, &pem.Block{Type: "PRIVATE KEY", Bytes: keyBytes})
}
