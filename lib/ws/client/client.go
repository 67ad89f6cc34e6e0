package wsclient

import (
	"fmt"

	"github.com/gofiber/contrib/websocket"
	log "github.com/sirupsen/logrus"
)

func NewClient(sessionID string, c *websocket.Conn) *WsClient {
	return &WsClient{
		conn:      c,
		sessionID: sessionID,
	}
}

type WsClient struct {
	conn      *websocket.Conn
	sessionID string
}

var closeCodes []int

func init() {
	for i := websocket.CloseNormalClosure; i <= websocket.CloseTLSHandshake; i++ {
		closeCodes = append(closeCodes, i)
	}
}

// Dispatch читает входящие сообщения до закрытия соединения, клиент доски только слушает
func (c *WsClient) Dispatch() {
	logger := log.WithField("ws_session_id", c.sessionID)
	for {
		if c.conn == nil {
			return
		}
		_, data, err := c.conn.ReadMessage()
		if err != nil {
			if !websocket.IsCloseError(err, closeCodes...) {
				logger.WithError(err).Error("ошибка получения сообщения")
			}
			break
		}
		logger.WithField("ws_message", fmt.Sprintf("%s", data)).Debug("ws-msg")
	}
}
