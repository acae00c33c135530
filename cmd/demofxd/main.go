// Command demofxd serves the effect show over SSH: every connecting
// client gets its own runner and an ANSI stream sized to its PTY.
//
//	demofxd -addr :2222
//	ssh -p 2222 localhost
//
// The host key is generated on first start if the file does not exist.
package main

import (
	"context"
	"crypto/ed25519"
	"crypto/rand"
	"crypto/x509"
	"encoding/pem"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"unicode/utf8"

	"github.com/gliderlabs/ssh"

	"github.com/patriksporre/demofx"
	"github.com/patriksporre/demofx/effect"
	"github.com/patriksporre/demofx/surface/ansi"
)

func main() {
	var (
		addr    = flag.String("addr", ":2222", "listen address")
		hostKey = flag.String("hostkey", "demofxd_host_key", "host key file, generated if missing")
		fps     = flag.Float64("fps", 30, "per-session frame rate")
		verbose = flag.Bool("v", false, "verbose logging to stderr")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	demofx.SetLogger(logger)

	if err := ensureHostKey(*hostKey); err != nil {
		logger.Error("host key", "err", err)
		os.Exit(1)
	}

	server := &ssh.Server{
		Addr: *addr,
		Handler: func(sess ssh.Session) {
			handleSession(sess, *fps)
		},
	}
	if err := server.SetOption(ssh.HostKeyFile(*hostKey)); err != nil {
		logger.Error("set host key", "err", err)
		os.Exit(1)
	}

	logger.Info("listening", "addr", *addr)
	if err := server.ListenAndServe(); err != nil {
		logger.Error("serve", "err", err)
		os.Exit(1)
	}
}

// handleSession runs one client's show until it quits or disconnects.
func handleSession(sess ssh.Session, fps float64) {
	logger := demofx.Logger().With("user", sess.User(), "remote", sess.RemoteAddr())

	ptyReq, _, ok := sess.Pty()
	if !ok {
		fmt.Fprintln(sess, "PTY required. Connect with: ssh -t ...")
		return
	}
	cols, rows := ptyReq.Window.Width, ptyReq.Window.Height
	if cols <= 0 || rows <= 0 {
		cols, rows = 80, 24
	}

	logger.Info("session started", "cols", cols, "rows", rows)
	defer logger.Info("session ended")

	s := ansi.New(sess, cols, rows, ansi.WithAltScreen())
	defer s.Close()

	ctx, cancel := context.WithCancel(sess.Context())
	defer cancel()

	keys := make(chan rune, 8)
	go readKeys(sess, keys, cancel)

	r := demofx.NewRunner(s, demofx.WithFPS(fps), demofx.WithInput(keys))
	registerEffects(r)

	if err := r.Run(ctx); err != nil {
		logger.Error("run", "err", err)
	}
}

// registerEffects adds every effect in show order.
func registerEffects(r *demofx.Runner) {
	r.Add("plasma", effect.NewPlasma())
	r.Add("fire", effect.NewFire())
	r.Add("starfield", effect.NewStarfield(256))
	r.Add("bump", effect.NewBump())
	r.Add("zoom", effect.NewZoom())
	r.Add("rotozoom", effect.NewRotozoom())
	r.Add("twirl", effect.NewTwirl())
	r.Add("water", effect.NewWater())
	r.Add("metaballs", effect.NewMetaballs(5))
	r.Add("twister", effect.NewTwister())
}

// readKeys feeds session input into the runner's key channel, mapping
// Escape and Ctrl-C to the quit key. A read error ends the session.
func readKeys(r io.Reader, keys chan<- rune, cancel context.CancelFunc) {
	buf := make([]byte, 64)
	for {
		n, err := r.Read(buf)
		if err != nil {
			cancel()
			return
		}
		data := buf[:n]
		for len(data) > 0 {
			ru, size := utf8.DecodeRune(data)
			data = data[size:]
			if ru == 0x1b || ru == 3 {
				ru = 'q'
			}
			select {
			case keys <- ru:
			default:
			}
		}
	}
}

// ensureHostKey generates an ed25519 host key at path if none exists.
func ensureHostKey(path string) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	}

	_, priv, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return err
	}
	keyBytes, err := x509.MarshalPKCS8PrivateKey(priv)
	if err != nil {
		return err
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return err
	}
	defer f.Close()
	return pem.Encode(f, &pem.Block{Type: "PRIVATE KEY", Bytes: keyBytes})
}
