package numerator

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
)

// Mock objects
type mockRow struct {
	val int64
	err error
}

func (m *mockRow) Scan(dest ...any) error {
	if m.err != nil {
		return m.err
	}
	if len(dest) > 0 {
		if ptr, ok := dest[0].(*int64); ok {
			*ptr = m.val
		}
	}
	return nil
}

type mockQuerier struct {
	mu           sync.Mutex
	currentValue int64 // Simulates DB sequence value
	calls        int
}

func (m *mockQuerier) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++

	// Strict passes (key); cached passes (key, increment).
	var increment int64 = 1
	if len(args) == 2 {
		if val, ok := args[1].(int64); ok {
			increment = val
		}
	}

	m.currentValue += increment
	return &mockRow{val: m.currentValue}
}

var testPeriod = time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)

func TestNextFolio_Strict(t *testing.T) {
	q := &mockQuerier{}
	svc := New(q)
	ctx := context.Background()
	cfg := DefaultConfig("V")

	folio, err := svc.NextFolio(ctx, cfg, nil, testPeriod)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if folio != "V-2026-00001" {
		t.Errorf("expected V-2026-00001, got %s", folio)
	}

	folio, err = svc.NextFolio(ctx, cfg, nil, testPeriod)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if folio != "V-2026-00002" {
		t.Errorf("expected V-2026-00002, got %s", folio)
	}
}

func TestNextFolio_Cached(t *testing.T) {
	q := &mockQuerier{}
	svc := New(q)
	ctx := context.Background()
	cfg := DefaultConfig("C")

	opts := &Options{
		Strategy:  StrategyCached,
		RangeSize: 10,
	}

	// First call allocates range 1..10 from DB.
	folio, err := svc.NextFolio(ctx, cfg, opts, testPeriod)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if folio != "C-2026-00001" {
		t.Errorf("expected C-2026-00001, got %s", folio)
	}
	if q.currentValue != 10 {
		t.Errorf("expected DB value to be 10, got %d", q.currentValue)
	}

	// Second call is served from memory, DB untouched.
	folio, err = svc.NextFolio(ctx, cfg, opts, testPeriod)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if folio != "C-2026-00002" {
		t.Errorf("expected C-2026-00002, got %s", folio)
	}
	if q.currentValue != 10 {
		t.Errorf("expected DB value to stay 10, got %d", q.currentValue)
	}

	// Exhaust the range; next call allocates 11..20.
	for i := 0; i < 8; i++ {
		_, _ = svc.NextFolio(ctx, cfg, opts, testPeriod)
	}

	folio, err = svc.NextFolio(ctx, cfg, opts, testPeriod)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if folio != "C-2026-00011" {
		t.Errorf("expected C-2026-00011, got %s", folio)
	}
	if q.currentValue != 20 {
		t.Errorf("expected DB value to be 20, got %d", q.currentValue)
	}
}

func TestBuildKey_ResetPeriods(t *testing.T) {
	svc := New(&mockQuerier{})

	tests := []struct {
		reset string
		scope string
		want  string
	}{
		{"year", "", "V_2026"},
		{"month", "", "V_2026_03"},
		{"never", "", "V"},
		{"year", "CAJA01", "V_CAJA01_2026"},
	}

	for _, tt := range tests {
		cfg := Config{Prefix: "V", Scope: tt.scope, ResetPeriod: tt.reset}
		if got := svc.buildKey(cfg, testPeriod); got != tt.want {
			t.Errorf("reset %q scope %q: expected %s, got %s", tt.reset, tt.scope, tt.want, got)
		}
	}
}

func TestParseFolio(t *testing.T) {
	tests := []struct {
		in   string
		want int64
	}{
		{"V-2026-00042", 42},
		{"C-00007", 7},
		{"garbage", -1},
		{"V-2026-", -1},
		{"00042", -1},
	}

	for _, tt := range tests {
		if got := ParseFolio(tt.in); got != tt.want {
			t.Errorf("ParseFolio(%q): expected %d, got %d", tt.in, tt.want, got)
		}
	}
}
