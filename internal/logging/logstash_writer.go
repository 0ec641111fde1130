package logging

import (
	"errors"
	"io"
	"net"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/njprem/StarWars_API_BackEnd/internal/metrics"
)

var (
	errEmptyAddr     = errors.New("logstash: empty address")
	errRetryCooldown = errors.New("logstash: retry cooldown in effect")
)

// LogstashWriter ships newline-delimited JSON records to a Logstash TCP
// input. It never reports network failures to the logger: a record that
// cannot be delivered is counted and discarded, and no reconnect is tried
// until the retry interval has elapsed.
type LogstashWriter struct {
	addr          string
	dialTimeout   time.Duration
	writeTimeout  time.Duration
	retryInterval time.Duration
	dial          func(network, addr string, timeout time.Duration) (net.Conn, error)

	dropped atomic.Uint64

	mu        sync.Mutex
	conn      net.Conn
	nextRetry time.Time
	closed    bool
}

type Option func(*LogstashWriter)

// WithDialTimeout bounds each connection attempt. Zero or negative keeps
// the default.
func WithDialTimeout(d time.Duration) Option {
	return func(w *LogstashWriter) {
		if d > 0 {
			w.dialTimeout = d
		}
	}
}

// WithWriteTimeout sets the per-record write deadline. Zero disables it.
func WithWriteTimeout(d time.Duration) Option {
	return func(w *LogstashWriter) { w.writeTimeout = d }
}

// WithRetryInterval sets the pause after a failed dial or write.
func WithRetryInterval(d time.Duration) Option {
	return func(w *LogstashWriter) { w.retryInterval = d }
}

func NewLogstashWriter(addr string, opts ...Option) (*LogstashWriter, error) {
	addr = strings.TrimSpace(addr)
	if addr == "" {
		return nil, errEmptyAddr
	}
	w := &LogstashWriter{
		addr:          addr,
		dialTimeout:   2 * time.Second,
		writeTimeout:  time.Second,
		retryInterval: 5 * time.Second,
		dial:          net.DialTimeout,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w, nil
}

// Dropped reports how many records were discarded since the writer was
// created.
func (w *LogstashWriter) Dropped() uint64 {
	return w.dropped.Load()
}

func (w *LogstashWriter) Write(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return 0, io.ErrClosedPipe
	}
	if err := w.ensureConn(); err != nil {
		w.discard(err)
		return len(p), nil
	}

	if w.writeTimeout > 0 {
		_ = w.conn.SetWriteDeadline(time.Now().Add(w.writeTimeout))
	}
	if _, err := w.conn.Write(terminated(p)); err != nil {
		_ = w.resetConn()
		w.nextRetry = time.Now().Add(w.retryInterval)
		w.discard(err)
	}
	return len(p), nil
}

func (w *LogstashWriter) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return nil
	}
	w.closed = true
	return w.resetConn()
}

func (w *LogstashWriter) ensureConn() error {
	if w.conn != nil {
		return nil
	}
	if time.Now().Before(w.nextRetry) {
		return errRetryCooldown
	}
	conn, err := w.dial("tcp", w.addr, w.dialTimeout)
	if err != nil {
		w.nextRetry = time.Now().Add(w.retryInterval)
		return err
	}
	w.conn = conn
	w.nextRetry = time.Time{}
	return nil
}

func (w *LogstashWriter) resetConn() error {
	if w.conn == nil {
		return nil
	}
	err := w.conn.Close()
	w.conn = nil
	return err
}

func (w *LogstashWriter) discard(cause error) {
	w.dropped.Add(1)
	reason := "network"
	if errors.Is(cause, errRetryCooldown) {
		reason = "cooldown"
	}
	metrics.LogstashRecordsDropped.WithLabelValues(reason).Inc()
}

// terminated returns p ending in a newline, copying only when one has to be
// added.
func terminated(p []byte) []byte {
	if p[len(p)-1] == '\n' {
		return p
	}
	out := make([]byte, len(p)+1)
	copy(out, p)
	out[len(p)] = '\n'
	return out
}
