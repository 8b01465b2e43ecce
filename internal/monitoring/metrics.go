package monitoring

import (
	"context"
	"database/sql"
	"fmt"
	"runtime"
	"strings"
	"time"
)

// Counter reports the number of rows in one collection.
type Counter interface {
	Name() string
	Count(ctx context.Context) (int64, error)
}

// Service holds runtime context for monitoring and reporting.
type Service struct {
	startedAt time.Time
	db        *sql.DB
	counters  []Counter
}

type Snapshot struct {
	TimestampUTC       string           `json:"timestamp_utc"`
	UptimeSeconds      int64            `json:"uptime_seconds"`
	DBState            string           `json:"db_state"`
	HTTPActiveRequests int64            `json:"http_active_requests"`
	HTTPTotalRequests  uint64           `json:"http_total_requests"`
	HTTPServerErrors   uint64           `json:"http_server_errors"`
	DBOpenConnections  int              `json:"db_open_connections"`
	DBInUseConnections int              `json:"db_in_use_connections"`
	DBWaitCount        int64            `json:"db_wait_count"`
	Goroutines         int              `json:"goroutines"`
	GoMemoryAllocBytes uint64           `json:"go_memory_alloc_bytes"`
	GoMemorySysBytes   uint64           `json:"go_memory_sys_bytes"`
	GoHeapInUseBytes   uint64           `json:"go_heap_in_use_bytes"`
	GoGCCount          uint32           `json:"go_gc_count"`
	RowsTotal          map[string]int64 `json:"rows_total"`
}

func NewService(startedAt time.Time, db *sql.DB, counters ...Counter) *Service {
	return &Service{startedAt: startedAt, db: db, counters: counters}
}

func (s *Service) dbState(ctx context.Context) string {
	if err := s.db.PingContext(ctx); err != nil {
		return "error: " + err.Error()
	}
	return "ok"
}

func (s *Service) StatusText(ctx context.Context) string {
	snap := s.Snapshot(ctx)

	lines := []string{
		"Tienda API Status",
		fmt.Sprintf("Uptime: %s", time.Duration(snap.UptimeSeconds)*time.Second),
		fmt.Sprintf("DB: %s", snap.DBState),
		fmt.Sprintf("HTTP active requests: %d", snap.HTTPActiveRequests),
		fmt.Sprintf("HTTP total requests: %d", snap.HTTPTotalRequests),
		fmt.Sprintf("HTTP 5xx responses: %d", snap.HTTPServerErrors),
		fmt.Sprintf("DB open connections: %d", snap.DBOpenConnections),
		fmt.Sprintf("Go goroutines: %d", snap.Goroutines),
		fmt.Sprintf("Memory alloc: %s", formatBytes(int64(snap.GoMemoryAllocBytes))),
	}
	for _, counter := range s.counters {
		lines = append(lines, fmt.Sprintf("%s total: %d", counter.Name(), snap.RowsTotal[counter.Name()]))
	}

	return strings.Join(lines, "\n")
}

// Snapshot collects runtime, pool and row-count figures. Count failures are
// reported as -1 rather than failing the whole snapshot.
func (s *Service) Snapshot(ctx context.Context) Snapshot {
	stats := s.db.Stats()
	activeHTTP, totalHTTP := getHTTPStats()

	var memory runtime.MemStats
	runtime.ReadMemStats(&memory)

	snap := Snapshot{
		TimestampUTC:       time.Now().UTC().Format(time.RFC3339),
		UptimeSeconds:      int64(time.Since(s.startedAt).Seconds()),
		DBState:            s.dbState(ctx),
		HTTPActiveRequests: activeHTTP,
		HTTPTotalRequests:  totalHTTP,
		HTTPServerErrors:   getServerErrors(),
		DBOpenConnections:  stats.OpenConnections,
		DBInUseConnections: stats.InUse,
		DBWaitCount:        stats.WaitCount,
		Goroutines:         runtime.NumGoroutine(),
		GoMemoryAllocBytes: memory.Alloc,
		GoMemorySysBytes:   memory.Sys,
		GoHeapInUseBytes:   memory.HeapInuse,
		GoGCCount:          memory.NumGC,
		RowsTotal:          make(map[string]int64, len(s.counters)),
	}

	for _, counter := range s.counters {
		total, err := counter.Count(ctx)
		if err != nil {
			total = -1
		}
		snap.RowsTotal[counter.Name()] = total
	}

	return snap
}

func formatBytes(value int64) string {
	units := []string{"B", "KB", "MB", "GB", "TB"}
	size := float64(value)
	unit := 0

	for size >= 1024 && unit < len(units)-1 {
		size /= 1024
		unit++
	}

	if unit == 0 {
		return fmt.Sprintf("%d %s", value, units[unit])
	}
	return fmt.Sprintf("%.2f %s", size, units[unit])
}
