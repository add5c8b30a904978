package metrics

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "assistencia"

type dataMetrics struct {
	storeOps       *prometheus.CounterVec
	storeDurations *prometheus.HistogramVec
	reloads        *prometheus.CounterVec
	reloadDuration prometheus.Observer
	cascadeFailed  *prometheus.CounterVec
}

var (
	dataMetricsOnce sync.Once
	dataMetricsInst *dataMetrics
)

func global() *dataMetrics {
	dataMetricsOnce.Do(func() {
		dataMetricsInst = newDataMetrics()
	})
	return dataMetricsInst
}

func newDataMetrics() *dataMetrics {
	return &dataMetrics{
		storeOps: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "store",
			Name:      "operations_total",
			Help:      "Document store operations, labeled by driver, collection, operation and result",
		}, []string{"driver", "collection", "op", "result"}),
		storeDurations: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "store",
			Name:      "operation_duration_seconds",
			Help:      "Duration of document store operations",
			Buckets:   prometheus.DefBuckets,
		}, []string{"driver", "collection", "op"}),
		reloads: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "aggregator",
			Name:      "reloads_total",
			Help:      "Full reloads of clients, equipment and tickets, labeled by result",
		}, []string{"result"}),
		reloadDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "aggregator",
			Name:      "reload_duration_seconds",
			Help:      "Duration of full reloads",
			Buckets:   prometheus.DefBuckets,
		}),
		cascadeFailed: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "repository",
			Name:      "cascade_child_failures_total",
			Help:      "Child documents that could not be deleted during a cascading delete",
		}, []string{"parent", "child"}),
	}
}

func result(err error) string {
	if err != nil {
		return "failure"
	}
	return "success"
}

// ObserveReload records one aggregator reload.
func ObserveReload(err error, d time.Duration) {
	m := global()
	m.reloads.WithLabelValues(result(err)).Inc()
	m.reloadDuration.Observe(d.Seconds())
}

// CascadeChildFailures counts n child deletes that failed while removing a
// parent from the parent collection.
func CascadeChildFailures(parent, child string, n int) {
	if n <= 0 {
		return
	}
	global().cascadeFailed.WithLabelValues(parent, child).Add(float64(n))
}
