package ws

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

// メッセージ種別
const (
	MsgTypeInit          = "init"           // 接続直後（メーカー一覧・基準年）
	MsgTypeReferenceYear = "reference_year" // 基準年の更新
	MsgTypeError         = "error"          // エラー
)

const (
	// sendBuffer クライアントごとの送信バッファ
	sendBuffer = 64
	// maxMessageSize 受信メッセージの上限（バイト）
	maxMessageSize = 4096
)

// Message サーバーから送るメッセージ
type Message struct {
	Type string `json:"type"`
	Data any    `json:"data,omitempty"`
}

// Request クライアントから届く要求
type Request struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data,omitempty"`
}

// Session 接続ごとの要求処理
type Session interface {
	Handle(req Request) Message
}

// ErrorMessage エラー応答
func ErrorMessage(msg string) Message {
	return Message{Type: MsgTypeError, Data: map[string]string{"error": msg}}
}

// Client WebSocket クライアント
type Client struct {
	hub     *Hub
	conn    *websocket.Conn
	session Session
	send    chan []byte
}

// Hub WebSocket 接続の管理
type Hub struct {
	logger     *zap.Logger
	clients    map[*Client]bool
	broadcast  chan []byte
	register   chan *Client
	unregister chan *Client
	done       chan struct{}
	mu         sync.RWMutex

	// 接続直後に送るメッセージ
	welcome func() Message
}

// NewHub Hub を作成
func NewHub(logger *zap.Logger) *Hub {
	return &Hub{
		logger:     logger,
		clients:    make(map[*Client]bool),
		broadcast:  make(chan []byte, 16),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		done:       make(chan struct{}),
	}
}

// SetWelcome 接続直後のメッセージを設定
func (h *Hub) SetWelcome(welcome func() Message) {
	h.welcome = welcome
}

// Run ctx が終わるまで接続を管理する
func (h *Hub) Run(ctx context.Context) {
	defer close(h.done)

	for {
		select {
		case <-ctx.Done():
			h.mu.Lock()
			for client := range h.clients {
				client.conn.Close()
				delete(h.clients, client)
			}
			h.mu.Unlock()
			return

		case client := <-h.register:
			h.mu.Lock()
			h.clients[client] = true
			total := len(h.clients)
			h.mu.Unlock()
			h.logger.Info("WebSocket client connected", zap.Int("total_clients", total))

			if h.welcome != nil {
				client.queue(h.welcome())
			}

		case client := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)
			}
			total := len(h.clients)
			h.mu.Unlock()
			h.logger.Info("WebSocket client disconnected", zap.Int("total_clients", total))

		case message := <-h.broadcast:
			h.mu.RLock()
			for client := range h.clients {
				select {
				case client.send <- message:
				default:
					// 受信が追いつかないクライアントには送らない
					h.logger.Warn("Dropped broadcast, client buffer full")
				}
			}
			h.mu.RUnlock()
		}
	}
}

// BroadcastMessage 全クライアントに送信
func (h *Hub) BroadcastMessage(msgType string, data any) {
	payload, err := json.Marshal(Message{Type: msgType, Data: data})
	if err != nil {
		h.logger.Error("Failed to marshal broadcast message", zap.Error(err))
		return
	}

	select {
	case h.broadcast <- payload:
	case <-h.done:
	}
}

// ClientCount 接続中のクライアント数
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// NewClient クライアントを作成
func NewClient(hub *Hub, conn *websocket.Conn, session Session) *Client {
	return &Client{
		hub:     hub,
		conn:    conn,
		session: session,
		send:    make(chan []byte, sendBuffer),
	}
}

// Register Hub に登録
func (c *Client) Register() {
	select {
	case c.hub.register <- c:
	case <-c.hub.done:
		c.conn.Close()
	}
}

// Unregister Hub から外す
func (c *Client) Unregister() {
	select {
	case c.hub.unregister <- c:
	case <-c.hub.done:
	}
}

// queue 送信キューに積む（満杯なら捨てる）
func (c *Client) queue(msg Message) {
	payload, err := json.Marshal(msg)
	if err != nil {
		c.hub.logger.Error("Failed to marshal message", zap.Error(err))
		return
	}
	select {
	case c.send <- payload:
	default:
		c.hub.logger.Warn("Dropped message, client buffer full", zap.String("type", msg.Type))
	}
}

// ReadPump 要求を読み、Session の応答を返す
func (c *Client) ReadPump() {
	defer func() {
		c.Unregister()
		c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	for {
		_, data, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				c.hub.logger.Debug("WebSocket read failed", zap.Error(err))
			}
			return
		}

		var req Request
		if err := json.Unmarshal(data, &req); err != nil {
			c.queue(ErrorMessage("invalid message"))
			continue
		}
		c.queue(c.session.Handle(req))
	}
}

// WritePump 送信キューを書き出す
func (c *Client) WritePump() {
	defer c.conn.Close()

	for {
		select {
		case message, ok := <-c.send:
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}
		case <-c.hub.done:
			return
		}
	}
}
