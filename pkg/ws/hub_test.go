package ws

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

// echoSession 要求の種別をそのまま返す
type echoSession struct{}

func (echoSession) Handle(req Request) Message {
	return Message{Type: "echo", Data: req.Type}
}

type reply struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data"`
}

func startHub(t *testing.T, welcome func() Message) (*Hub, string, context.CancelFunc) {
	t.Helper()

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	hub := NewHub(zap.NewNop())
	hub.SetWelcome(welcome)
	go hub.Run(ctx)

	upgrader := websocket.Upgrader{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		client := NewClient(hub, conn, echoSession{})
		client.Register()
		go client.ReadPump()
		go client.WritePump()
	}))
	t.Cleanup(server.Close)

	return hub, "ws" + strings.TrimPrefix(server.URL, "http"), cancel
}

func dial(t *testing.T, url string) *websocket.Conn {
	t.Helper()
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	t.Cleanup(func() { conn.Close() })
	return conn
}

func read(t *testing.T, conn *websocket.Conn) reply {
	t.Helper()
	_ = conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	var r reply
	if err := conn.ReadJSON(&r); err != nil {
		t.Fatalf("read: %v", err)
	}
	return r
}

func waitFor(t *testing.T, what string, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for !cond() {
		if time.Now().After(deadline) {
			t.Fatalf("timed out waiting for %s", what)
		}
		time.Sleep(5 * time.Millisecond)
	}
}

func TestHubBroadcast(t *testing.T) {
	hub, url, _ := startHub(t, nil)
	conns := []*websocket.Conn{dial(t, url), dial(t, url)}
	waitFor(t, "two clients", func() bool { return hub.ClientCount() == 2 })

	hub.BroadcastMessage(MsgTypeReferenceYear, 2026)

	for i, conn := range conns {
		r := read(t, conn)
		if r.Type != MsgTypeReferenceYear || string(r.Data) != "2026" {
			t.Errorf("client %d: got %s %s", i, r.Type, r.Data)
		}
	}
}

func TestClientRequests(t *testing.T) {
	_, url, _ := startHub(t, nil)
	conn := dial(t, url)

	if err := conn.WriteJSON(Request{Type: "ping"}); err != nil {
		t.Fatal(err)
	}
	if r := read(t, conn); r.Type != "echo" || string(r.Data) != `"ping"` {
		t.Errorf("reply = %s %s", r.Type, r.Data)
	}

	if err := conn.WriteMessage(websocket.TextMessage, []byte("{")); err != nil {
		t.Fatal(err)
	}
	if r := read(t, conn); r.Type != MsgTypeError {
		t.Errorf("malformed request reply = %s", r.Type)
	}

	// エラー後も同じ接続で続けられる
	if err := conn.WriteJSON(Request{Type: "again"}); err != nil {
		t.Fatal(err)
	}
	if r := read(t, conn); r.Type != "echo" {
		t.Errorf("reply after error = %s", r.Type)
	}
}

func TestHubWelcome(t *testing.T) {
	_, url, _ := startHub(t, func() Message { return Message{Type: MsgTypeInit, Data: "hello"} })

	conn := dial(t, url)
	if r := read(t, conn); r.Type != MsgTypeInit || string(r.Data) != `"hello"` {
		t.Errorf("welcome = %s %s", r.Type, r.Data)
	}
}

func TestHubShutdown(t *testing.T) {
	hub, url, cancel := startHub(t, nil)
	conns := []*websocket.Conn{dial(t, url), dial(t, url)}
	waitFor(t, "two clients", func() bool { return hub.ClientCount() == 2 })

	cancel()

	for i, conn := range conns {
		_ = conn.SetReadDeadline(time.Now().Add(2 * time.Second))
		if _, _, err := conn.ReadMessage(); err == nil {
			t.Errorf("client %d: connection still open", i)
		} else if ne, ok := err.(interface{ Timeout() bool }); ok && ne.Timeout() {
			t.Errorf("client %d: not closed on shutdown", i)
		}
	}

	// 停止後のブロードキャストはブロックしない
	sent := make(chan struct{})
	go func() {
		hub.BroadcastMessage(MsgTypeReferenceYear, 2027)
		close(sent)
	}()
	select {
	case <-sent:
	case <-time.After(2 * time.Second):
		t.Fatal("BroadcastMessage blocked after shutdown")
	}
}

func TestHubDropsForSlowClient(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	hub := NewHub(zap.NewNop())
	go hub.Run(ctx)

	slow := &Client{hub: hub, send: make(chan []byte, 1)}
	slow.Register()

	hub.BroadcastMessage(MsgTypeReferenceYear, 2025)
	waitFor(t, "first broadcast", func() bool { return len(slow.send) == 1 })

	hub.BroadcastMessage(MsgTypeReferenceYear, 2026)
	hub.BroadcastMessage(MsgTypeReferenceYear, 2027)
	waitFor(t, "broadcast queue", func() bool { return len(hub.broadcast) == 0 })

	// 満杯のクライアントがいても Hub は止まらない
	slow.Unregister()

	first, ok := <-slow.send
	if !ok {
		t.Fatal("send closed before first message")
	}
	var msg reply
	if err := json.Unmarshal(first, &msg); err != nil {
		t.Fatal(err)
	}
	if string(msg.Data) != "2025" {
		t.Errorf("first message = %s", first)
	}
	if extra, ok := <-slow.send; ok {
		t.Errorf("unexpected queued message %s", extra)
	}
	if hub.ClientCount() != 0 {
		t.Errorf("clients = %d, want 0", hub.ClientCount())
	}
}
