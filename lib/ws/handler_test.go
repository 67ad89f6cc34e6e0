package ws

import (
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	pipelinehandler "hr-pipeline/lib/pipeline"
	connectionhub "hr-pipeline/lib/ws/hub/connection-hub"
	wsmodels "hr-pipeline/models/ws"

	fastws "github.com/fasthttp/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
)

type sessionMock struct {
	authenticated bool
	role          string
}

func (s sessionMock) IsAuthenticated() bool {
	return s.authenticated
}

func (s sessionMock) HasAccess(requiredRoles ...string) bool {
	for _, role := range requiredRoles {
		if s.role != "" && strings.EqualFold(role, s.role) {
			return true
		}
	}
	return false
}

func newApp(hub connectionhub.Provider, session sessionMock) *fiber.App {
	app := fiber.New(fiber.Config{DisableStartupMessage: true})
	InitWs(app.Group("/ws"), hub, session)
	return app
}

func upgradeRequest() *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/ws", nil)
	req.Header.Set("Connection", "Upgrade")
	req.Header.Set("Upgrade", "websocket")
	req.Header.Set("Sec-WebSocket-Version", "13")
	req.Header.Set("Sec-WebSocket-Key", "dGhlIHNhbXBsZSBub25jZQ==")
	return req
}

func TestWsAccess(t *testing.T) {
	tests := []struct {
		name    string
		session sessionMock
		status  int
	}{
		{name: "anonymous", session: sessionMock{}, status: http.StatusUnauthorized},
		{name: "candidate role", session: sessionMock{authenticated: true, role: "candidate"}, status: http.StatusForbidden},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hub := connectionhub.NewHub()
			resp, err := newApp(hub, tt.session).Test(upgradeRequest(), -1)
			require.NoError(t, err)
			require.Equal(t, tt.status, resp.StatusCode)
			require.Zero(t, hub.Count())
		})
	}
	t.Run(`plain request`, func(t *testing.T) {
		app := newApp(connectionhub.NewHub(), sessionMock{authenticated: true, role: "hr"})
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/ws", nil), -1)
		require.NoError(t, err)
		require.Equal(t, http.StatusUpgradeRequired, resp.StatusCode)
	})
}

func TestWsDelivery(t *testing.T) {
	hub := connectionhub.NewHub()
	pipeline := pipelinehandler.NewSeededHandler(pipelinehandler.WithPublisher(hub))
	app := newApp(hub, sessionMock{authenticated: true, role: "manager"})

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	go func() {
		_ = app.Listener(ln)
	}()
	defer func() {
		_ = app.Shutdown()
	}()

	conn, _, err := fastws.DefaultDialer.Dial("ws://"+ln.Addr().String()+"/ws", nil)
	require.NoError(t, err)
	require.Eventually(t, func() bool {
		return hub.Count() == 1
	}, time.Second, 10*time.Millisecond)

	t.Run(`shortlist event reaches client`, func(t *testing.T) {
		_, applied := pipeline.ShortlistCandidate(1)
		require.True(t, applied)

		require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
		var msg wsmodels.ServerMessage
		require.NoError(t, conn.ReadJSON(&msg))
		require.Equal(t, wsmodels.CandidateShortlistedCode, msg.Code)
		require.Equal(t, 1, msg.CandidateID)
		require.NotEmpty(t, msg.Msg)
	})
	t.Run(`client removed after close`, func(t *testing.T) {
		require.NoError(t, conn.Close())
		require.Eventually(t, func() bool {
			return hub.Count() == 0
		}, 2*time.Second, 10*time.Millisecond)
	})
}
