// Package feed ingests the exchange's bookTicker stream and hands each raw
// message to the configured parser, adapted from bn.WsKline's
// dial-reconnect-read loop.
package feed

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/fasthttp/websocket"
	"github.com/tidwall/gjson"

	"triarb/pkg/parse"
)

// reconnectDelay is the pause between a dropped connection and the next
// dial attempt.
const reconnectDelay = time.Second

// Handler receives one successfully parsed update. A parse error for a
// single frame is logged and the frame is dropped; it never tears down the
// connection.
type Handler func(parse.Update)

// Run dials the combined bookTicker stream for symbols and feeds every
// message through parser, invoking handler for each successful parse. It
// reconnects on read error until ctx is cancelled.
func Run(ctx context.Context, symbols []string, parser parse.BookTickerParser, handler Handler, logger *slog.Logger) error {
	if logger == nil {
		logger = slog.Default()
	}
	url := streamURL(symbols)

	for {
		if ctx.Err() != nil {
			return ctx.Err()
		}

		conn, _, err := websocket.DefaultDialer.DialContext(ctx, url, nil)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			logger.Error("feed: dial failed", "err", err)
			if !sleepOrDone(ctx, reconnectDelay) {
				return ctx.Err()
			}
			continue
		}

		readLoop(ctx, conn, parser, handler, logger)
		conn.Close()

		if ctx.Err() != nil {
			return ctx.Err()
		}
		logger.Info("feed: disconnected, reconnecting", "delay", reconnectDelay)
		if !sleepOrDone(ctx, reconnectDelay) {
			return ctx.Err()
		}
	}
}

func readLoop(ctx context.Context, conn *websocket.Conn, parser parse.BookTickerParser, handler Handler, logger *slog.Logger) {
	if logger == nil {
		logger = slog.Default()
	}
	done := make(chan struct{})
	go func() {
		<-ctx.Done()
		conn.Close()
		close(done)
	}()
	defer func() { <-done }()

	for {
		_, message, err := conn.ReadMessage()
		if err != nil {
			if ctx.Err() == nil {
				logger.Error("feed: websocket read error", "err", err)
			}
			return
		}

		payload := unwrapEnvelope(message)
		update, err := parser.Parse(payload)
		if err != nil {
			logger.Warn("feed: dropping unparseable frame", "err", err)
			continue
		}
		handler(update)
	}
}

func sleepOrDone(ctx context.Context, d time.Duration) bool {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}

// unwrapEnvelope strips the combined-stream {"stream":...,"data":{...}}
// wrapper, if present, using gjson only to locate the "data" object — the
// parser contract itself never sees this wrapper, keeping the JSON-vs-scan
// differential test boundary at the raw bookTicker payload.
func unwrapEnvelope(message []byte) []byte {
	data := gjson.GetBytes(message, "data")
	if !data.Exists() {
		return message
	}
	return []byte(data.Raw)
}

func streamURL(symbols []string) string {
	streams := make([]string, len(symbols))
	for i, s := range symbols {
		streams[i] = strings.ToLower(s) + "@bookTicker"
	}
	return fmt.Sprintf("wss://fstream.binance.com/stream?streams=%s", strings.Join(streams, "/"))
}
