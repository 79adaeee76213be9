package mirror

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"

	"github.com/stridewalk/stride/phase"
)

// Command is a session command received from a companion device. It is
// routed into the host program loop so that remote and local commands
// share the engine's single mutation path.
type Command string

const (
	CmdPause  Command = "pause"
	CmdResume Command = "resume"
	CmdSkip   Command = "skip"
	CmdEnd    Command = "end"
)

// wsMessage is the envelope for every frame in either direction.
type wsMessage struct {
	Type     string          `json:"type"`
	Snapshot *phase.Snapshot `json:"snapshot,omitempty"`
	Command  Command         `json:"command,omitempty"`
}

const (
	msgSnapshot = "snapshot"
	msgCommand  = "command"
)

type client struct {
	conn *websocket.Conn
	send chan []byte
}

func newClient(conn *websocket.Conn) *client {
	c := &client{
		conn: conn,
		send: make(chan []byte, 64),
	}

	go c.writePump()

	return c
}

func (c *client) writePump() {
	defer c.conn.Close()

	for msg := range c.send {
		if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
			return
		}
	}
}

func (c *client) close() {
	close(c.send)
}

// Broadcaster pushes session snapshots to every connected companion and
// replays the latest snapshot to a client when it (re)connects. Delivery
// is best effort: a client that cannot keep up is disconnected and must
// resync.
type Broadcaster struct {
	mu       sync.RWMutex
	clients  map[*client]bool
	last     *phase.Snapshot
	commands chan Command
}

func NewBroadcaster() *Broadcaster {
	return &Broadcaster{
		clients:  make(map[*client]bool),
		commands: make(chan Command, 16),
	}
}

// Commands exposes the inbound companion commands for the host program
// loop to drain.
func (b *Broadcaster) Commands() <-chan Command {
	return b.commands
}

// Push implements phase.Mirror.
func (b *Broadcaster) Push(snap phase.Snapshot) {
	b.mu.Lock()
	b.last = &snap
	b.mu.Unlock()

	b.broadcast(wsMessage{Type: msgSnapshot, Snapshot: &snap})
}

// Resync implements phase.Mirror by re-broadcasting the given snapshot
// unconditionally. Pushing the same snapshot twice is harmless for
// clients: the payload is self-describing.
func (b *Broadcaster) Resync(snap phase.Snapshot) {
	b.Push(snap)
}

func (b *Broadcaster) addClient(conn *websocket.Conn) *client {
	c := newClient(conn)

	b.mu.Lock()
	b.clients[c] = true

	// Catch the client up with the authoritative state immediately.
	if b.last != nil {
		data, _ := json.Marshal(wsMessage{Type: msgSnapshot, Snapshot: b.last})
		select {
		case c.send <- data:
		default:
		}
	}

	b.mu.Unlock()

	return c
}

func (b *Broadcaster) removeClient(c *client) {
	b.mu.Lock()
	if _, ok := b.clients[c]; ok {
		delete(b.clients, c)
		c.close()
	}
	b.mu.Unlock()
}

func (b *Broadcaster) broadcast(msg wsMessage) {
	data, err := json.Marshal(msg)
	if err != nil {
		slog.Error("broadcast marshal error", slog.Any("error", err))
		return
	}

	// Sends must stay under the read lock: removeClient closes the send
	// channel only under the write lock, so a locked send can never race
	// a close.
	var slow []*client

	b.mu.RLock()
	for c := range b.clients {
		select {
		case c.send <- data:
		default:
			slow = append(slow, c)
		}
	}
	b.mu.RUnlock()

	for _, c := range slow {
		// Client can't keep up; it will resync on reconnect.
		slog.Warn("companion client too slow, disconnecting")
		b.removeClient(c)
	}
}

// ClientCount reports the number of connected companions.
func (b *Broadcaster) ClientCount() int {
	b.mu.RLock()
	defer b.mu.RUnlock()

	return len(b.clients)
}

// HandleWS upgrades an HTTP request to a companion connection and reads
// inbound commands until the peer disconnects.
func (b *Broadcaster) HandleWS(w http.ResponseWriter, r *http.Request) {
	upgrader := websocket.Upgrader{}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		slog.Error("ws upgrade error", slog.Any("error", err))
		return
	}

	slog.Info("companion connected", slog.String("addr", r.RemoteAddr))

	c := b.addClient(conn)

	go func() {
		defer func() {
			b.removeClient(c)
			slog.Info(
				"companion disconnected",
				slog.String("addr", r.RemoteAddr),
			)
		}()

		for {
			_, data, err := conn.ReadMessage()
			if err != nil {
				return
			}

			var msg wsMessage

			if err := json.Unmarshal(data, &msg); err != nil || msg.Type != msgCommand {
				continue
			}

			switch msg.Command {
			case CmdPause, CmdResume, CmdSkip, CmdEnd:
				select {
				case b.commands <- msg.Command:
				default:
					// The host loop is saturated; drop rather than block.
				}
			}
		}
	}()
}

// Serve exposes the broadcaster on addr until the server fails. It is
// intended to run in its own goroutine for the lifetime of the process.
func (b *Broadcaster) Serve(addr string) {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", b.HandleWS)

	err := http.ListenAndServe(addr, mux)
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		slog.Error("companion mirror server failed", slog.Any("error", err))
	}
}
