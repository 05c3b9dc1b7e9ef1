package metric

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTP метрики - количество запросов
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Общее количество HTTP запросов",
		},
		[]string{"method", "endpoint", "status"},
	)

	// HTTP метрики - время обработки запросов
	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Время обработки HTTP запросов в секундах",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint", "status"},
	)

	// Игровые метрики
	tilesClaimedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "tiles_claimed_total",
			Help: "Сколько клеток доски было занято",
		},
	)

	gamesFinishedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "games_finished_total",
			Help: "Сколько партий завершилось, по типу исхода",
		},
		[]string{"win_type"},
	)

	claimConflictsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "claim_conflicts_total",
			Help: "Транзиентные конфликты per-room секции клейма",
		},
	)

	// WS метрики - количество активных соединений
	wsActiveConnections = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "ws_active_connections",
			Help: "Количество активных WebSocket соединений",
		},
	)
)

// RecordHTTPMetrics записывает метрики HTTP запроса
func RecordHTTPMetrics(method, endpoint string, status int, duration time.Duration) {
	strStatus := strconv.Itoa(status)

	httpRequestsTotal.WithLabelValues(method, endpoint, strStatus).Inc()
	httpRequestDuration.WithLabelValues(method, endpoint, strStatus).Observe(duration.Seconds())
}

func IncrementTilesClaimed() {
	tilesClaimedTotal.Inc()
}

func IncrementGamesFinished(winType string) {
	gamesFinishedTotal.WithLabelValues(winType).Inc()
}

func IncrementClaimConflicts() {
	claimConflictsTotal.Inc()
}

func IncrementWSActiveConnections() {
	wsActiveConnections.Inc()
}

func DecrementWSActiveConnections() {
	wsActiveConnections.Dec()
}
