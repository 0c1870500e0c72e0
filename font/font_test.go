package font

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"sync/atomic"
	"testing"
	"unicode/utf8"

	"github.com/gogpu/fontmetrics"
	"github.com/gogpu/fontmetrics/text"
)

// fakeService measures every rune as runeWidth wide and every string as
// boundHeight tall, and records how contexts are used.
type fakeService struct {
	runeWidth   float64
	boundHeight float64
	lineHeight  float64
	openErr     error
	boundsErr   error

	mu     sync.Mutex
	opened []text.Descriptor
	closed atomic.Int32
}

func newFakeService() *fakeService {
	return &fakeService{runeWidth: 7.5, boundHeight: 16.6, lineHeight: 17.9}
}

func (s *fakeService) Open(d text.Descriptor) (text.MeasureContext, error) {
	if s.openErr != nil {
		return nil, s.openErr
	}
	s.mu.Lock()
	s.opened = append(s.opened, d)
	s.mu.Unlock()
	return &fakeContext{svc: s}, nil
}

func (s *fakeService) openCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.opened)
}

func (s *fakeService) lastDescriptor() text.Descriptor {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.opened[len(s.opened)-1]
}

type fakeContext struct {
	svc *fakeService
}

func (c *fakeContext) Bounds(str string) (text.Rect, error) {
	if c.svc.boundsErr != nil {
		return text.Rect{}, c.svc.boundsErr
	}
	w := c.svc.runeWidth * float64(utf8.RuneCountInString(str))
	return text.Rect{MinX: 0, MinY: -c.svc.boundHeight, MaxX: w, MaxY: 0}, nil
}

func (c *fakeContext) LineHeight() (float64, error) {
	return c.svc.lineHeight, nil
}

func (c *fakeContext) Close() error {
	c.svc.closed.Add(1)
	return nil
}

// recordHandler counts log records at or above Warn.
type recordHandler struct {
	mu      sync.Mutex
	records []slog.Record
}

func (h *recordHandler) Enabled(context.Context, slog.Level) bool { return true }
func (h *recordHandler) Handle(_ context.Context, r slog.Record) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if r.Level >= slog.LevelWarn {
		h.records = append(h.records, r)
	}
	return nil
}
func (h *recordHandler) WithAttrs([]slog.Attr) slog.Handler { return h }
func (h *recordHandler) WithGroup(string) slog.Handler      { return h }

func (h *recordHandler) warnings() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.records)
}

// captureWarnings installs a recording logger for the duration of the test.
func captureWarnings(t *testing.T) *recordHandler {
	t.Helper()
	orig := fontmetrics.Logger()
	t.Cleanup(func() { fontmetrics.SetLogger(orig) })
	h := &recordHandler{}
	fontmetrics.SetLogger(slog.New(h))
	return h
}

func testData(base int) *Data {
	return NewData(Metrics{
		LineHeight:         base + 4,
		BaseHeight:         base,
		UnderlineOffset:    base / 8,
		UnderlineThickness: 1,
	}, map[rune]Character{
		'a': {Width: 6, Height: 8, XAdvance: 7},
		'b': {Width: 6, Height: 11, XAdvance: 7},
	})
}

func newTestAdapter(t *testing.T, id Identifier, svc Service) *Adapter {
	t.Helper()
	a, err := New(id, svc, testData(12))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return a
}

func TestNewErrors(t *testing.T) {
	if _, err := New("engine:default", nil, testData(1)); !errors.Is(err, ErrNilService) {
		t.Errorf("nil service: got %v, want ErrNilService", err)
	}
	if _, err := New("engine:default", newFakeService(), nil); !errors.Is(err, ErrNilData) {
		t.Errorf("nil data: got %v, want ErrNilData", err)
	}
}
