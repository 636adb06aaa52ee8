package feed

import (
	"context"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/petuhovskiy/lootkit/internal/log"
)

func dial(t *testing.T, srv *httptest.Server) *websocket.Conn {
	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	// wait for registration
	var ack Message
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(5*time.Second)))
	require.NoError(t, conn.ReadJSON(&ack))
	require.Equal(t, MessageTypeAck, ack.Type)
	return conn
}

func TestHub_Broadcast(t *testing.T) {
	_ = log.DefaultGlobals()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	hub := NewHub()
	go hub.Run(ctx)

	srv := httptest.NewServer(hub)
	defer srv.Close()

	a := dial(t, srv)
	b := dial(t, srv)

	assert.True(t, hub.Publish(MessageTypeDraw, map[string]string{"item": "sword"}))

	for _, conn := range []*websocket.Conn{a, b} {
		var msg struct {
			Type string
			Data map[string]string
		}
		require.NoError(t, conn.ReadJSON(&msg))
		assert.Equal(t, MessageTypeDraw, msg.Type)
		assert.Equal(t, "sword", msg.Data["item"])
	}
}

func TestHub_CloseOnShutdown(t *testing.T) {
	_ = log.DefaultGlobals()

	ctx, cancel := context.WithCancel(context.Background())
	hub := NewHub()
	stopped := make(chan struct{})
	go func() {
		hub.Run(ctx)
		close(stopped)
	}()

	srv := httptest.NewServer(hub)
	defer srv.Close()

	conn := dial(t, srv)
	cancel()
	<-stopped

	_, _, err := conn.ReadMessage()
	assert.Error(t, err)
}
