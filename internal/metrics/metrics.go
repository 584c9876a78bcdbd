package metrics

import (
	"context"
	"io"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"github.com/safar/go-catalog-store/internal/database"
	"github.com/safar/go-catalog-store/internal/store"
	log "github.com/sirupsen/logrus"
)

const (
	namespace     = "catalog"
	scrapeTimeout = time.Second
)

type StatsFunc func(ctx context.Context) (*store.Stats, error)

type Metrics struct {
	registry   *prometheus.Registry
	operations *prometheus.CounterVec
}

// New registers the operation counter and gauges that read stats at scrape time.
func New(stats StatsFunc) *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		operations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "operations_total",
			Help:      "Catalog operations by outcome.",
		}, []string{"operation", "result"}),
	}

	m.registry.MustRegister(
		m.operations,
		statGauge(stats, "users", "Number of users.", func(s *store.Stats) float64 {
			return float64(s.TotalUsers)
		}),
		statGauge(stats, "products", "Number of products.", func(s *store.Stats) float64 {
			return float64(s.TotalProducts)
		}),
		statGauge(stats, "pending_orders", "Orders in Pending status.", func(s *store.Stats) float64 {
			return float64(s.PendingOrders)
		}),
		statGauge(stats, "sales_total", "Sum of totals over orders that are not Pending.", func(s *store.Stats) float64 {
			f, _ := s.TotalSales.Float64()
			return f
		}),
	)

	return m
}

func statGauge(stats StatsFunc, name, help string, pick func(*store.Stats) float64) prometheus.GaugeFunc {
	return prometheus.NewGaugeFunc(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      name,
		Help:      help,
	}, func() float64 {
		ctx, cancel := context.WithTimeout(context.Background(), scrapeTimeout)
		defer cancel()

		s, err := stats(ctx)
		if err != nil {
			log.WithError(err).WithField("gauge", name).Warn("failed to read stats")
			return 0
		}
		return pick(s)
	})
}

func Result(err error) string {
	if err == nil {
		return "ok"
	}
	switch database.ClassifyError(err) {
	case database.ErrorClassValidation:
		return "validation"
	case database.ErrorClassNotFound:
		return "not_found"
	default:
		return "error"
	}
}

func (m *Metrics) ObserveOperation(operation string, err error) {
	m.operations.WithLabelValues(operation, Result(err)).Inc()
}

func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// WriteText writes every registered family in the Prometheus text format.
func (m *Metrics) WriteText(w io.Writer) error {
	families, err := m.registry.Gather()
	if err != nil {
		return err
	}

	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return err
		}
	}
	return nil
}
