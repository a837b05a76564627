package feed

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/fasthttp/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"triarb/pkg/parse"
)

func TestUnwrapEnvelopeStripsDataWrapper(t *testing.T) {
	wrapped := []byte(`{"stream":"btcusdt@bookTicker","data":{"s":"BTCUSDT"}}`)
	got := unwrapEnvelope(wrapped)
	assert.JSONEq(t, `{"s":"BTCUSDT"}`, string(got))
}

func TestUnwrapEnvelopePassesThroughBareFrame(t *testing.T) {
	bare := []byte(`{"s":"BTCUSDT"}`)
	got := unwrapEnvelope(bare)
	assert.JSONEq(t, `{"s":"BTCUSDT"}`, string(got))
}

func TestReadLoopDeliversParsedUpdates(t *testing.T) {
	upgrader := websocket.Upgrader{}
	frame := `{"stream":"btcusdt@bookTicker","data":{"u":1,"s":"BTCUSDT","b":"30000.0","B":"1.0","a":"30001.0","A":"2.0"}}`

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		require.NoError(t, err)
		defer conn.Close()
		_ = conn.WriteMessage(websocket.TextMessage, []byte(frame))
		time.Sleep(50 * time.Millisecond)
	}))
	defer srv.Close()

	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http")

	parser, err := parse.New("json")
	require.NoError(t, err)

	var (
		mu       sync.Mutex
		received []parse.Update
	)

	ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()

	conn, _, err := websocket.DefaultDialer.DialContext(ctx, wsURL, nil)
	require.NoError(t, err)

	done := make(chan struct{})
	go func() {
		defer close(done)
		readLoop(ctx, conn, parser, func(u parse.Update) {
			mu.Lock()
			received = append(received, u)
			mu.Unlock()
		}, nil)
	}()

	<-done
	conn.Close()

	mu.Lock()
	defer mu.Unlock()
	require.Len(t, received, 1)
	assert.Equal(t, "BTCUSDT", received[0].Symbol)
	assert.Equal(t, 30001.0, received[0].BestAskPrice)
}
