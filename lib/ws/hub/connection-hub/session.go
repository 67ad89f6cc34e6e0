package connectionhub

import (
	"context"
	"time"

	"github.com/gofiber/contrib/websocket"
	log "github.com/sirupsen/logrus"
)

const (
	sendQueueSize = 16
	writeTimeout  = 5 * time.Second
)

type clientSession struct {
	conn *websocket.Conn

	// исходящие события, буферизованы
	sendCh chan any
	ctx    context.Context
	cancel func()
	// закрывается, когда горутина отправки завершилась
	done chan struct{}
}

func newSession(conn *websocket.Conn) clientSession {
	ctx, cancelFn := context.WithCancel(context.Background())
	sess := clientSession{
		cancel: cancelFn,
		ctx:    ctx,
		conn:   conn,
		sendCh: make(chan any, sendQueueSize),
		done:   make(chan struct{}),
	}
	go sess.startSend(ctx)
	return sess
}

// push не блокирует рассылку: медленный клиент теряет события
func (s clientSession) push(msg any) bool {
	select {
	case <-s.ctx.Done():
		return true
	case s.sendCh <- msg:
		return true
	default:
		return false
	}
}

func (s clientSession) startSend(ctx context.Context) {
	defer close(s.done)
	for {
		select {
		case <-ctx.Done():
			return
		case msg := <-s.sendCh:
			_, err := s.send(s.conn, msg)
			if err != nil {
				log.WithError(err).Error("ошибка отправки сообщения")
			}
		}
	}
}

func (s clientSession) send(conn *websocket.Conn, msg interface{}) (bool, error) {
	if conn == nil || conn.Conn == nil {
		return false, nil
	}
	if err := conn.SetWriteDeadline(time.Now().Add(writeTimeout)); err != nil {
		return false, err
	}
	err := conn.WriteJSON(msg)
	if err != nil {
		return false, err
	}
	log.Debugf("отправлено сообщение: %+v", msg)
	return true, nil
}

// stop останавливает отправку и ждёт её завершения, затем пишет close-фрейм.
// Вызывается до выхода из обработчика соединения, пока conn ещё принадлежит ему
func (s clientSession) stop() {
	s.cancel()
	<-s.done
	if s.conn == nil || s.conn.Conn == nil {
		return
	}
	err := s.conn.WriteControl(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""), time.Now().Add(time.Second))
	if err != nil {
		log.WithError(err).Debug("close-фрейм не отправлен")
	}
}
