package services

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/nanao-dev/bingo-party-backend/utils/logger"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = 54 * time.Second
)

// Client is one websocket connection. ref is the transport identifier that
// the service records as connectionRef / hostConnectionRef.
type Client struct {
	ref     string
	conn    *websocket.Conn
	gateway *Gateway
	send    chan []byte
	roomID  string
	once    sync.Once
}

func (c *Client) Close() {
	c.once.Do(func() {
		close(c.send)
		c.conn.Close()
	})
}

// enqueue marshals v onto the client's send channel.
func (c *Client) enqueue(v any) {
	data, err := json.Marshal(v)
	if err != nil {
		logger.Errorf("response marshal failed: %v", err)
		return
	}
	select {
	case c.send <- data:
	default:
		logger.Warnf("dropping message to connection %s, buffer full", c.ref)
	}
}

func (c *Client) readPump() {
	defer func() {
		c.gateway.hub.leave(c)
		c.Close()
	}()

	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, message, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				logger.Infof("connection %s closed", c.ref)
			} else {
				logger.Debugf("connection %s read error: %v", c.ref, err)
			}
			return
		}
		c.gateway.dispatch(c, message)
	}
}

func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
				logger.Debugf("connection %s write error: %v", c.ref, err)
				return
			}
		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
