package realtime

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/shenikar/crisis_map_sync/internal/models"
	"github.com/sirupsen/logrus"
)

// ErrClosed - соединение закрыто
var ErrClosed = errors.New("realtime: connection closed")

// Message - входящее сообщение подписки
type Message struct {
	Topic string
	Body  []byte
}

// Conn - живое STOMP соединение
type Conn interface {
	Subscribe(topic string) error
	Send(destination string, body []byte) error
	// Receive блокируется до следующего сообщения; ошибка означает потерю соединения
	Receive() (Message, error)
	Close() error
}

// Transport открывает соединения
type Transport interface {
	Dial(ctx context.Context, session models.Session) (Conn, error)
}

// WebSocketTransport - STOMP поверх gorilla/websocket
type WebSocketTransport struct {
	url       string
	heartbeat time.Duration
	logger    *logrus.Logger
	dialer    *websocket.Dialer
}

// NewWebSocketTransport создает транспорт. heartbeat - желаемый интервал
// в обе стороны, 0 отключает heart-beat.
func NewWebSocketTransport(wsURL string, heartbeat time.Duration, logger *logrus.Logger) *WebSocketTransport {
	return &WebSocketTransport{
		url:       wsURL,
		heartbeat: heartbeat,
		logger:    logger,
		dialer: &websocket.Dialer{
			HandshakeTimeout: 10 * time.Second,
			Subprotocols:     []string{"v12.stomp", "v11.stomp"},
		},
	}
}

// Dial открывает websocket и выполняет рукопожатие CONNECT/CONNECTED
func (t *WebSocketTransport) Dial(ctx context.Context, session models.Session) (Conn, error) {
	target, err := url.Parse(t.url)
	if err != nil {
		return nil, fmt.Errorf("realtime: invalid websocket url: %w", err)
	}
	if session.UserID != "" {
		q := target.Query()
		q.Set("userId", session.UserID)
		target.RawQuery = q.Encode()
	}

	ws, resp, err := t.dialer.DialContext(ctx, target.String(), nil)
	if err != nil {
		if resp != nil {
			return nil, fmt.Errorf("realtime: websocket dial failed (status %d): %w", resp.StatusCode, err)
		}
		return nil, fmt.Errorf("realtime: websocket dial failed: %w", err)
	}
	if resp != nil && resp.Body != nil {
		_ = resp.Body.Close()
	}

	c := &stompConn{
		ws:     ws,
		logger: t.logger,
		topics: make(map[string]string),
		done:   make(chan struct{}),
	}

	hb := strconv.FormatInt(t.heartbeat.Milliseconds(), 10)
	connect := NewFrame(cmdConnect,
		"accept-version", "1.2,1.1",
		"host", target.Hostname(),
		"heart-beat", hb+","+hb,
	)
	if session.AuthToken != "" {
		connect.Add("Authorization", "Bearer "+session.AuthToken)
	}

	if deadline, ok := ctx.Deadline(); ok {
		_ = ws.SetReadDeadline(deadline)
	} else {
		_ = ws.SetReadDeadline(time.Now().Add(10 * time.Second))
	}

	if err := c.write(connect); err != nil {
		_ = ws.Close()
		return nil, err
	}

	reply, err := c.readFrame()
	if err != nil {
		_ = ws.Close()
		return nil, fmt.Errorf("realtime: waiting for CONNECTED: %w", err)
	}
	if reply.Command != cmdConnected {
		_ = ws.Close()
		return nil, fmt.Errorf("realtime: broker rejected connection: %s %s", reply.Header("message"), string(reply.Body))
	}

	out, in := negotiateHeartbeat(t.heartbeat, reply.Header("heart-beat"))
	c.readTimeout = 0
	if in > 0 {
		// запас на задержки сети, как делают брокеры
		c.readTimeout = in * 2
	}
	_ = ws.SetReadDeadline(c.deadline())

	if out > 0 {
		c.wg.Add(1)
		go c.heartbeatLoop(out)
	}

	t.logger.WithFields(logrus.Fields{
		"component":     "realtime",
		"url":           t.url,
		"heartbeat_out": out,
		"heartbeat_in":  in,
	}).Info("STOMP session established")
	return c, nil
}

// negotiateHeartbeat возвращает интервалы отправки и ожидания по правилам STOMP:
// берётся максимум из желаемого клиентом и предложенного сервером, 0 с любой стороны отключает.
func negotiateHeartbeat(want time.Duration, header string) (out, in time.Duration) {
	sx, sy, ok := strings.Cut(header, ",")
	if !ok || want <= 0 {
		return 0, 0
	}
	serverX, errX := strconv.ParseInt(strings.TrimSpace(sx), 10, 64)
	serverY, errY := strconv.ParseInt(strings.TrimSpace(sy), 10, 64)
	if errX != nil || errY != nil {
		return 0, 0
	}
	wantMs := want.Milliseconds()
	if serverY > 0 {
		out = time.Duration(max(wantMs, serverY)) * time.Millisecond
	}
	if serverX > 0 {
		in = time.Duration(max(wantMs, serverX)) * time.Millisecond
	}
	return out, in
}

type stompConn struct {
	ws          *websocket.Conn
	logger      *logrus.Logger
	readTimeout time.Duration

	writeMu sync.Mutex

	subMu  sync.Mutex
	nextID int
	topics map[string]string // id подписки -> topic

	closeOnce sync.Once
	done      chan struct{}
	wg        sync.WaitGroup
}

func (c *stompConn) deadline() time.Time {
	if c.readTimeout <= 0 {
		return time.Time{}
	}
	return time.Now().Add(c.readTimeout)
}

func (c *stompConn) write(f *Frame) error {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()
	if err := c.ws.WriteMessage(websocket.TextMessage, f.Encode()); err != nil {
		return fmt.Errorf("realtime: write %s: %w", f.Command, err)
	}
	return nil
}

func (c *stompConn) readFrame() (*Frame, error) {
	for {
		_, data, err := c.ws.ReadMessage()
		if err != nil {
			return nil, err
		}
		_ = c.ws.SetReadDeadline(c.deadline())
		f, err := ParseFrame(data)
		if errors.Is(err, errHeartbeat) {
			continue
		}
		return f, err
	}
}

func (c *stompConn) Subscribe(topic string) error {
	c.subMu.Lock()
	id := "sub-" + strconv.Itoa(c.nextID)
	c.nextID++
	c.topics[id] = topic
	c.subMu.Unlock()

	return c.write(NewFrame(cmdSubscribe, "id", id, "destination", topic, "ack", "auto"))
}

func (c *stompConn) Send(destination string, body []byte) error {
	f := NewFrame(cmdSend, "destination", destination, "content-type", "application/json")
	f.Body = body
	return c.write(f)
}

func (c *stompConn) Receive() (Message, error) {
	for {
		f, err := c.readFrame()
		if err != nil {
			select {
			case <-c.done:
				return Message{}, ErrClosed
			default:
			}
			return Message{}, fmt.Errorf("realtime: read: %w", err)
		}

		switch f.Command {
		case cmdMessage:
			c.subMu.Lock()
			topic, ok := c.topics[f.Header("subscription")]
			c.subMu.Unlock()
			if !ok {
				topic = f.Header("destination")
			}
			return Message{Topic: topic, Body: f.Body}, nil
		case cmdError:
			return Message{}, fmt.Errorf("realtime: broker error: %s", f.Header("message"))
		case cmdReceipt:
			continue
		default:
			c.logger.WithField("command", f.Command).Debug("Unexpected STOMP frame ignored")
		}
	}
}

func (c *stompConn) heartbeatLoop(interval time.Duration) {
	defer c.wg.Done()
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-c.done:
			return
		case <-ticker.C:
			c.writeMu.Lock()
			err := c.ws.WriteMessage(websocket.TextMessage, []byte("\n"))
			c.writeMu.Unlock()
			if err != nil {
				c.logger.WithError(err).Debug("Heart-beat failed")
				return
			}
		}
	}
}

// Close отправляет DISCONNECT и закрывает websocket; повторный вызов безопасен
func (c *stompConn) Close() error {
	var err error
	c.closeOnce.Do(func() {
		close(c.done)
		_ = c.write(NewFrame(cmdDisconnect, "receipt", uuid.NewString()))

		c.writeMu.Lock()
		_ = c.ws.WriteControl(
			websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
			time.Now().Add(time.Second),
		)
		c.writeMu.Unlock()

		err = c.ws.Close()
		c.wg.Wait()
	})
	return err
}
