package mirror

import (
	"encoding/json"
	"errors"
	"io/fs"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/gorilla/websocket"

	"github.com/stridewalk/stride/phase"
)

func sampleSnapshot() phase.Snapshot {
	now := time.Date(2024, time.March, 4, 7, 0, 0, 0, time.UTC)

	return phase.Snapshot{
		Phase:          phase.Brisk,
		PhaseEndTime:   now.Add(3 * time.Minute),
		StartTime:      now,
		IntervalIndex:  1,
		TotalIntervals: 5,
	}
}

func TestStatusFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "status.json")
	f := NewStatusFile(path)

	want := sampleSnapshot()
	f.Push(want)

	got, err := ReadStatus(path)
	if err != nil {
		t.Fatal(err)
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("status mismatch:\n%s", diff)
	}
}

func TestStatusFileRemovedWhenSettled(t *testing.T) {
	path := filepath.Join(t.TempDir(), "status.json")
	f := NewStatusFile(path)

	f.Push(sampleSnapshot())

	settled := sampleSnapshot()
	settled.Phase = phase.Completed
	settled.PhaseEndTime = time.Time{}

	f.Push(settled)

	if _, err := ReadStatus(path); !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("want fs.ErrNotExist after completion, got %v", err)
	}
}

func newTestConn(t *testing.T, b *Broadcaster) *websocket.Conn {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(b.HandleWS))
	t.Cleanup(srv.Close)

	url := "ws" + strings.TrimPrefix(srv.URL, "http")

	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatal(err)
	}

	t.Cleanup(func() {
		_ = conn.Close()
	})

	return conn
}

func readSnapshot(t *testing.T, conn *websocket.Conn) phase.Snapshot {
	t.Helper()

	_ = conn.SetReadDeadline(time.Now().Add(2 * time.Second))

	_, data, err := conn.ReadMessage()
	if err != nil {
		t.Fatal(err)
	}

	var msg wsMessage

	if err := json.Unmarshal(data, &msg); err != nil {
		t.Fatal(err)
	}

	if msg.Type != msgSnapshot || msg.Snapshot == nil {
		t.Fatalf("want a snapshot message, got %q", msg.Type)
	}

	return *msg.Snapshot
}

func TestBroadcasterResyncsOnConnect(t *testing.T) {
	b := NewBroadcaster()

	// State changed before any companion connected.
	want := sampleSnapshot()
	b.Push(want)

	conn := newTestConn(t, b)

	if diff := cmp.Diff(want, readSnapshot(t, conn)); diff != "" {
		t.Errorf("resync snapshot mismatch:\n%s", diff)
	}
}

// waitForClient blocks until the broadcaster has registered a companion.
func waitForClient(t *testing.T, b *Broadcaster) {
	t.Helper()

	deadline := time.Now().Add(2 * time.Second)

	for b.ClientCount() == 0 {
		if time.Now().After(deadline) {
			t.Fatal("companion never registered")
		}

		time.Sleep(5 * time.Millisecond)
	}
}

func TestBroadcasterPushesTransitions(t *testing.T) {
	b := NewBroadcaster()
	conn := newTestConn(t, b)

	waitForClient(t, b)

	first := sampleSnapshot()
	b.Push(first)

	second := first
	second.Phase = phase.Easy
	second.CompletedBrisk = 1
	b.Push(second)

	if diff := cmp.Diff(first, readSnapshot(t, conn)); diff != "" {
		t.Errorf("first push mismatch:\n%s", diff)
	}

	if diff := cmp.Diff(second, readSnapshot(t, conn)); diff != "" {
		t.Errorf("second push mismatch:\n%s", diff)
	}
}

func TestBroadcasterForwardsCommands(t *testing.T) {
	b := NewBroadcaster()
	conn := newTestConn(t, b)

	payload, err := json.Marshal(wsMessage{Type: msgCommand, Command: CmdPause})
	if err != nil {
		t.Fatal(err)
	}

	if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
		t.Fatal(err)
	}

	select {
	case cmd := <-b.Commands():
		if cmd != CmdPause {
			t.Errorf("want %q, got %q", CmdPause, cmd)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("command never reached the host loop")
	}
}

// Pushes must survive companions disconnecting mid-broadcast: a send on
// a closed channel would unwind through the scheduler and kill the
// session.
func TestBroadcasterSurvivesDisconnectDuringPush(t *testing.T) {
	b := NewBroadcaster()

	srv := httptest.NewServer(http.HandlerFunc(b.HandleWS))
	t.Cleanup(srv.Close)

	url := "ws" + strings.TrimPrefix(srv.URL, "http")

	done := make(chan struct{})
	panics := make(chan any, 8)

	var wg sync.WaitGroup

	for range 4 {
		wg.Add(1)

		go func() {
			defer wg.Done()
			defer func() {
				if r := recover(); r != nil {
					panics <- r
				}
			}()

			snap := sampleSnapshot()

			for {
				select {
				case <-done:
					return
				default:
					b.Push(snap)
				}
			}
		}()
	}

	for range 4 {
		wg.Add(1)

		go func() {
			defer wg.Done()

			for {
				select {
				case <-done:
					return
				default:
				}

				conn, _, err := websocket.DefaultDialer.Dial(url, nil)
				if err != nil {
					continue
				}

				_ = conn.Close()
			}
		}()
	}

	time.Sleep(500 * time.Millisecond)
	close(done)
	wg.Wait()

	select {
	case r := <-panics:
		t.Fatalf("push panicked: %v", r)
	default:
	}
}

func TestBroadcasterIgnoresMalformedFrames(t *testing.T) {
	b := NewBroadcaster()
	conn := newTestConn(t, b)

	frames := [][]byte{
		[]byte("not json"),
		[]byte(`{"type":"command","command":"reboot"}`),
		[]byte(`{"type":"snapshot"}`),
	}

	for _, frame := range frames {
		if err := conn.WriteMessage(websocket.TextMessage, frame); err != nil {
			t.Fatal(err)
		}
	}

	select {
	case cmd := <-b.Commands():
		t.Errorf("malformed frame produced command %q", cmd)
	case <-time.After(200 * time.Millisecond):
	}
}
