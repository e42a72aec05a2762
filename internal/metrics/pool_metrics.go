package metrics

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
)

func registerPoolMetrics(pool *pgxpool.Pool) {
	prometheus.MustRegister(prometheus.NewGaugeFunc(
		prometheus.GaugeOpts{
			Name: metricPrefix + "db_pool_acquired_conns",
			Help: "Connections currently checked out of the pool",
		},
		func() float64 {
			return float64(pool.Stat().AcquiredConns())
		},
	))

	prometheus.MustRegister(prometheus.NewGaugeFunc(
		prometheus.GaugeOpts{
			Name: metricPrefix + "db_pool_idle_conns",
			Help: "Idle connections in the pool",
		},
		func() float64 {
			return float64(pool.Stat().IdleConns())
		},
	))

	prometheus.MustRegister(prometheus.NewGaugeFunc(
		prometheus.GaugeOpts{
			Name: metricPrefix + "db_pool_total_conns",
			Help: "Total connections owned by the pool",
		},
		func() float64 {
			return float64(pool.Stat().TotalConns())
		},
	))
}
