package connectionhub

import (
	wsmodels "hr-pipeline/models/ws"
	"sync"

	"github.com/gofiber/contrib/websocket"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

// Provider - подключённые клиенты доски подбора, события рассылаются всем
type Provider interface {
	AddClient(conn *websocket.Conn) (sessionID string)
	// DeleteClient останавливает отправку клиенту и закрывает соединение
	DeleteClient(sessionID string)
	SendMessage(msg wsmodels.ServerMessage)
	Count() int
}

func NewHub() Provider {
	return &impl{
		clients: map[string]clientSession{},
	}
}

type impl struct {
	mu      sync.RWMutex
	clients map[string]clientSession //map[sessionID]
}

func (i *impl) DeleteClient(sessionID string) {
	i.mu.Lock()
	sess, ok := i.clients[sessionID]
	if ok {
		delete(i.clients, sessionID)
	}
	i.mu.Unlock()
	if !ok {
		return
	}
	sess.stop()
	log.
		WithField("ws_session_id", sessionID).
		WithField("clients", i.Count()).
		Info("клиент отключен")
}

func (i *impl) AddClient(conn *websocket.Conn) string {
	sessionID := uuid.NewString()
	i.mu.Lock()
	i.clients[sessionID] = newSession(conn)
	i.mu.Unlock()
	log.
		WithField("ws_session_id", sessionID).
		WithField("clients", i.Count()).
		Info("клиент подключен")
	return sessionID
}

func (i *impl) SendMessage(msg wsmodels.ServerMessage) {
	i.mu.RLock()
	defer i.mu.RUnlock()
	for sessionID, sess := range i.clients {
		if !sess.push(msg) {
			log.
				WithField("ws_session_id", sessionID).
				WithField("code", msg.Code).
				Warn("очередь отправки переполнена, событие пропущено")
		}
	}
}

func (i *impl) Count() int {
	i.mu.RLock()
	defer i.mu.RUnlock()
	return len(i.clients)
}
