package stream

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"shiptrack/internal/domain/entity"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHub(t *testing.T, origins ...string) (*Hub, *httptest.Server) {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))
	hub := NewHub(logger, origins)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = hub.Serve(w, r, &entity.Operator{Email: "ops@jpeglogistics.cc"})
	}))
	t.Cleanup(func() {
		hub.Close()
		server.Close()
	})

	return hub, server
}

func dial(t *testing.T, server *httptest.Server, header http.Header) *websocket.Conn {
	t.Helper()

	url := "ws" + strings.TrimPrefix(server.URL, "http")
	conn, resp, err := websocket.DefaultDialer.Dial(url, header)
	require.NoError(t, err)
	if resp != nil && resp.Body != nil {
		_ = resp.Body.Close()
	}
	t.Cleanup(func() { _ = conn.Close() })

	return conn
}

func readMessage(t *testing.T, conn *websocket.Conn) Message {
	t.Helper()

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	var msg Message
	require.NoError(t, conn.ReadJSON(&msg))

	return msg
}

func TestHub_BroadcastsSnapshotsAndNotices(t *testing.T) {
	hub, server := newTestHub(t)
	first := dial(t, server, nil)
	second := dial(t, server, nil)
	require.Eventually(t, func() bool { return hub.Clients() == 2 }, time.Second, 5*time.Millisecond)

	hub.CollectionChanged(3, 7)
	hub.Notify(entity.Notice{Kind: entity.NoticeSuccess, Message: "Shipment created successfully!"})

	for _, conn := range []*websocket.Conn{first, second} {
		assert.Equal(t, Message{Type: TypeSnapshot, Revision: 3, Total: 7}, readMessage(t, conn))
		assert.Equal(t, Message{
			Type:    TypeNotice,
			Kind:    entity.NoticeSuccess,
			Message: "Shipment created successfully!",
		}, readMessage(t, conn))
	}
}

func TestHub_LateJoinerGetsLastSnapshot(t *testing.T) {
	hub, server := newTestHub(t)
	hub.CollectionChanged(1, 2)
	hub.CollectionChanged(2, 0)

	conn := dial(t, server, nil)

	assert.Equal(t, Message{Type: TypeSnapshot, Revision: 2, Total: 0}, readMessage(t, conn))
}

func TestHub_IgnoresOutOfOrderSnapshots(t *testing.T) {
	hub, server := newTestHub(t)
	hub.CollectionChanged(5, 3)
	hub.CollectionChanged(4, 1)

	conn := dial(t, server, nil)
	assert.Equal(t, Message{Type: TypeSnapshot, Revision: 5, Total: 3}, readMessage(t, conn))
	require.Eventually(t, func() bool { return hub.Clients() == 1 }, time.Second, 5*time.Millisecond)

	hub.CollectionChanged(5, 9)
	hub.CollectionChanged(6, 2)
	assert.Equal(t, Message{Type: TypeSnapshot, Revision: 6, Total: 2}, readMessage(t, conn))
}

func TestHub_CloseDisconnectsClients(t *testing.T) {
	hub, server := newTestHub(t)
	conn := dial(t, server, nil)
	require.Eventually(t, func() bool { return hub.Clients() == 1 }, time.Second, 5*time.Millisecond)

	hub.Close()

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, _, err := conn.ReadMessage()
	require.Error(t, err)
	assert.Equal(t, 0, hub.Clients())
}

func TestHub_RejectsUnknownOrigin(t *testing.T) {
	_, server := newTestHub(t, "https://dashboard.jpeglogistics.cc")

	url := "ws" + strings.TrimPrefix(server.URL, "http")
	_, resp, err := websocket.DefaultDialer.Dial(url, http.Header{"Origin": []string{"https://evil.example"}})

	require.Error(t, err)
	require.NotNil(t, resp)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	conn := dial(t, server, http.Header{"Origin": []string{"https://dashboard.jpeglogistics.cc"}})
	assert.NotNil(t, conn)
}
