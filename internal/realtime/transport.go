// internal/realtime/transport.go
package realtime

import (
	"time"

	"github.com/gofiber/websocket/v2"

	"github.com/Arpan-Patel-source/Freelance-Project-sub000/internal/constants"
)

// Transport is one live bidirectional connection as seen by the registry.
// Keeping the fanout behind this seam means nothing above the gateway
// depends on websockets.
type Transport interface {
	WriteMessage(data []byte) error
	Ping() error
	Close() error
}

type wsTransport struct {
	conn *websocket.Conn
}

func NewWSTransport(conn *websocket.Conn) Transport {
	return &wsTransport{conn: conn}
}

func (t *wsTransport) WriteMessage(data []byte) error {
	_ = t.conn.SetWriteDeadline(time.Now().Add(constants.WSWriteDeadline))
	return t.conn.WriteMessage(websocket.TextMessage, data)
}

func (t *wsTransport) Ping() error {
	_ = t.conn.SetWriteDeadline(time.Now().Add(5 * time.Second))
	return t.conn.WriteControl(websocket.PingMessage, []byte("ping"), time.Now().Add(time.Second))
}

func (t *wsTransport) Close() error {
	return t.conn.Close()
}
