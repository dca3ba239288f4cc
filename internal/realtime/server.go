// internal/realtime/server.go
package realtime

import (
	"crypto/rsa"
	"encoding/json"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/Arpan-Patel-source/Freelance-Project-sub000/internal/constants"
	"github.com/Arpan-Patel-source/Freelance-Project-sub000/internal/utils"
)

// Server is the websocket gateway feeding the connection registry. It runs
// on its own listener next to the REST API, in the same process as the
// notification fanout.
type Server struct {
	hub *Hub
	pub *rsa.PublicKey
	app *fiber.App
}

func NewServer(hub *Hub, pub *rsa.PublicKey) *Server {
	s := &Server{
		hub: hub,
		pub: pub,
		app: fiber.New(fiber.Config{DisableStartupMessage: true}),
	}

	s.app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	})
	s.app.Get("/ws", websocket.New(s.handleWS))
	return s
}

func (s *Server) Hub() *Hub { return s.hub }

func (s *Server) Listen(addr string) error {
	return s.app.Listen(addr)
}

func (s *Server) Shutdown() error {
	return s.app.Shutdown()
}

// inboundMessage is the client->server frame. The only type the gateway
// acts on is "register"; the user identity always comes from the validated
// token, never from the frame body.
type inboundMessage struct {
	Type string `json:"type"`
}

func (s *Server) handleWS(conn *websocket.Conn) {
	token := conn.Query("token")
	if token == "" {
		_ = conn.Close()
		return
	}
	userID, err := s.parseUserID(token)
	if err != nil {
		_ = conn.Close()
		return
	}

	client := NewClient(userID, NewWSTransport(conn))
	go client.WritePump()
	defer s.hub.Unregister(client)

	conn.SetReadLimit(constants.WSReadLimitBytes)
	_ = conn.SetReadDeadline(time.Now().Add(constants.WSReadDeadline))
	conn.SetPongHandler(func(string) error {
		_ = conn.SetReadDeadline(time.Now().Add(constants.WSReadDeadline))
		return nil
	})

	for {
		_, data, readErr := conn.ReadMessage()
		if readErr != nil {
			return
		}
		_ = conn.SetReadDeadline(time.Now().Add(constants.WSReadDeadline))

		var msg inboundMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			continue
		}
		if msg.Type == "register" {
			s.hub.Register(client)
			utils.Logger.Debugf("Registered live connection for user %s", userID)
		}
	}
}

func (s *Server) parseUserID(tokenStr string) (uuid.UUID, error) {
	tok, err := jwt.Parse(tokenStr, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodRSA); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return s.pub, nil
	})
	if err != nil || !tok.Valid {
		return uuid.Nil, errors.New("invalid token")
	}
	claims, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return uuid.Nil, errors.New("invalid claims")
	}
	sub, ok := claims["sub"].(string)
	if !ok {
		return uuid.Nil, errors.New("missing subject")
	}
	return uuid.Parse(sub)
}
