// internal/realtime/client.go
package realtime

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Arpan-Patel-source/Freelance-Project-sub000/internal/constants"
)

var (
	ErrNotConnected   = errors.New("recipient has no live connection")
	ErrSendBufferFull = errors.New("send buffer full")
	ErrClientClosed   = errors.New("client closed")
)

// Client is one registered connection handle: a user identity plus the
// transport it writes through.
type Client struct {
	UserID uuid.UUID

	transport Transport
	send      chan []byte
	done      chan struct{}
	closeOnce sync.Once
}

func NewClient(userID uuid.UUID, transport Transport) *Client {
	return &Client{
		UserID:    userID,
		transport: transport,
		send:      make(chan []byte, constants.WSSendBufferSize),
		done:      make(chan struct{}),
	}
}

// Send queues a payload without blocking. A full buffer or a closed client
// is an error for the caller to swallow; a slow consumer must never stall
// the sender.
func (c *Client) Send(data []byte) error {
	select {
	case <-c.done:
		return ErrClientClosed
	default:
	}
	select {
	case c.send <- data:
		return nil
	default:
		return ErrSendBufferFull
	}
}

func (c *Client) Close() {
	c.closeOnce.Do(func() {
		close(c.done)
		_ = c.transport.Close()
	})
}

// WritePump drains the send queue onto the transport and keeps the
// connection alive with periodic pings. Runs in its own goroutine for the
// lifetime of the connection.
func (c *Client) WritePump() {
	ticker := time.NewTicker(constants.WSPingInterval)
	defer func() {
		ticker.Stop()
		c.Close()
	}()
	for {
		select {
		case <-c.done:
			return
		case data := <-c.send:
			if err := c.transport.WriteMessage(data); err != nil {
				return
			}
		case <-ticker.C:
			if err := c.transport.Ping(); err != nil {
				return
			}
		}
	}
}
