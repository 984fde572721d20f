package osc

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"os/exec"
	"sync/atomic"
	"time"

	goosc "github.com/hypebeast/go-osc/osc"
	"golang.org/x/sync/errgroup"
)

// Addresses the audio application reports its progress on.
const (
	AddrOpened = "/max_opened"
	AddrLoaded = "/max_loaded"
)

// AudioLink tracks the lifecycle of the external audio application:
// it optionally launches it and listens for its "opened" and "loaded" reports.
type AudioLink struct {
	opened  atomic.Bool
	loaded  atomic.Bool
	started time.Time
	timeout time.Duration

	conn   net.PacketConn
	cancel context.CancelFunc
	group  *errgroup.Group
}

// NewDisabledLink returns a link that is immediately ready.
func NewDisabledLink() *AudioLink {
	l := &AudioLink{started: time.Now()}
	l.opened.Store(true)
	l.loaded.Store(true)
	return l
}

// StartAudioLink binds the listener on host:inPort and, when appPath is set,
// launches the audio application.
func StartAudioLink(host string, inPort int, appPath string, timeout time.Duration) (*AudioLink, error) {
	conn, err := net.ListenPacket("udp", net.JoinHostPort(host, fmt.Sprint(inPort)))
	if err != nil {
		return nil, fmt.Errorf("audio link listen: %w", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	g, ctx := errgroup.WithContext(ctx)
	l := &AudioLink{
		started: time.Now(),
		timeout: timeout,
		conn:    conn,
		cancel:  cancel,
		group:   g,
	}

	g.Go(func() error { return l.listen(ctx) })
	if appPath != "" {
		g.Go(func() error {
			cmd := exec.CommandContext(ctx, appPath)
			if err := cmd.Start(); err != nil {
				log.Printf("WARNING: Failed to launch audio application %s: %v", appPath, err)
				return nil
			}
			log.Printf("Launched audio application %s (pid %d)", appPath, cmd.Process.Pid)
			cmd.Wait()
			return nil
		})
	}
	return l, nil
}

func (l *AudioLink) listen(ctx context.Context) error {
	go func() {
		<-ctx.Done()
		l.conn.Close()
	}()

	d := goosc.NewStandardDispatcher()
	if err := d.AddMsgHandler(AddrOpened, l.onOpened); err != nil {
		return fmt.Errorf("audio link handler: %w", err)
	}
	if err := d.AddMsgHandler(AddrLoaded, l.onLoaded); err != nil {
		return fmt.Errorf("audio link handler: %w", err)
	}
	server := &goosc.Server{Dispatcher: d}
	err := server.Serve(l.conn)
	if ctx.Err() != nil || errors.Is(err, net.ErrClosed) {
		return nil
	}
	return fmt.Errorf("audio link read: %w", err)
}

func (l *AudioLink) onOpened(*goosc.Message) {
	if !l.opened.Swap(true) {
		log.Println("Audio application opened")
	}
}

func (l *AudioLink) onLoaded(*goosc.Message) {
	l.opened.Store(true)
	if !l.loaded.Swap(true) {
		log.Printf("Audio application loaded after %s", time.Since(l.started).Round(time.Millisecond))
	}
}

// Opened reports whether the audio application has started.
func (l *AudioLink) Opened() bool { return l.opened.Load() }

// Ready reports whether the audio application finished loading.
func (l *AudioLink) Ready() bool { return l.loaded.Load() }

// TimedOut reports whether the wait for readiness exceeded the timeout.
func (l *AudioLink) TimedOut() bool {
	return !l.Ready() && l.timeout > 0 && time.Since(l.started) > l.timeout
}

// Close stops the listener and the launched application.
func (l *AudioLink) Close() error {
	if l.cancel == nil {
		return nil
	}
	l.cancel()
	return l.group.Wait()
}
