package bridge

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/lixenwraith/touchport/parameter"
	"github.com/lixenwraith/touchport/platform"
)

// ErrClientClosed is returned by Send after Close
var ErrClientClosed = errors.New("bridge client closed")

// Client sends raw events to a bridge server
// Safe for concurrent Send
type Client struct {
	mu   sync.Mutex
	conn *websocket.Conn

	// done is closed once the connection is gone; err holds the cause
	done chan struct{}
	once sync.Once
	err  error
}

// Dial connects to a bridge endpoint such as ws://host:8765/input
func Dial(ctx context.Context, url string) (*Client, error) {
	conn, _, err := websocket.DefaultDialer.DialContext(ctx, url, nil)
	if err != nil {
		return nil, fmt.Errorf("bridge dial %s: %w", url, err)
	}
	c := &Client{conn: conn, done: make(chan struct{})}
	go c.readLoop()
	return c, nil
}

// readLoop keeps a read in progress so control frames are processed:
// the default ping handler answers server pings, and a server close is noticed
func (c *Client) readLoop() {
	for {
		if _, _, err := c.conn.NextReader(); err != nil {
			c.markClosed(fmt.Errorf("bridge connection lost: %w", err))
			return
		}
	}
}

func (c *Client) markClosed(err error) {
	c.once.Do(func() {
		c.err = err
		close(c.done)
	})
}

// closed returns the close cause once the connection is gone
func (c *Client) closed() error {
	select {
	case <-c.done:
		return c.err
	default:
		return nil
	}
}

// Send writes one raw event as a text frame
func (c *Client) Send(ev platform.RawEvent) error {
	data, err := Encode(ev)
	if err != nil {
		return err
	}
	return c.SendRaw(data)
}

// SendRaw writes a pre-encoded frame, used to forward client payloads untouched
func (c *Client) SendRaw(data []byte) error {
	if err := c.closed(); err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.conn.SetWriteDeadline(time.Now().Add(parameter.BridgeWriteWait))
	if err := c.conn.WriteMessage(websocket.TextMessage, data); err != nil {
		err = fmt.Errorf("bridge send: %w", err)
		c.markClosed(err)
		return err
	}
	return nil
}

// Close sends a close frame and closes the connection
// Closing a connection the server already dropped only reports the socket close error
func (c *Client) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	var writeErr error
	if c.closed() == nil {
		msg := websocket.FormatCloseMessage(websocket.CloseNormalClosure, "")
		if err := c.conn.WriteControl(websocket.CloseMessage, msg, time.Now().Add(parameter.BridgeWriteWait)); err != nil {
			writeErr = fmt.Errorf("bridge close frame: %w", err)
		}
	}
	c.markClosed(ErrClientClosed)

	closeErr := c.conn.Close()
	return errors.Join(writeErr, closeErr)
}
