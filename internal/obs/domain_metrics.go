package obs

import (
	"fmt"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	domainOnce sync.Once

	// QuotesTotal counts quote computations by mode and outcome.
	QuotesTotal *prometheus.CounterVec
	// DiscountSelectedTotal counts which discount strategy won a quote.
	DiscountSelectedTotal *prometheus.CounterVec
	// CustomizationsSkippedTotal counts customization requests dropped for an
	// unrecognized kind.
	CustomizationsSkippedTotal prometheus.Counter
	// QuoteFinalAmount records final quoted amounts in minor currency units.
	QuoteFinalAmount prometheus.Histogram
)

// MustRegisterDomainMetrics initialises and registers domain-specific Prometheus collectors.
func MustRegisterDomainMetrics(namespace string, reg prometheus.Registerer) {
	domainOnce.Do(func() {
		if reg == nil {
			reg = prometheus.DefaultRegisterer
		}
		QuotesTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "quotes_total",
			Help:      "Count of quote computations by mode and result.",
		}, []string{"mode", "result"})
		DiscountSelectedTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "discount_selected_total",
			Help:      "Count of quotes won by each discount strategy.",
		}, []string{"strategy"})
		CustomizationsSkippedTotal = prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "customizations_skipped_total",
			Help:      "Customization requests skipped for an unrecognized kind.",
		})
		QuoteFinalAmount = prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "quote_final_amount",
			Help:      "Final quoted amounts in minor currency units.",
			Buckets:   []float64{10_000, 25_000, 50_000, 100_000, 250_000, 500_000, 1_000_000},
		})

		mustRegisterCollector(reg, QuotesTotal, func(existing prometheus.Collector) {
			if v, ok := existing.(*prometheus.CounterVec); ok {
				QuotesTotal = v
			}
		})
		mustRegisterCollector(reg, DiscountSelectedTotal, func(existing prometheus.Collector) {
			if v, ok := existing.(*prometheus.CounterVec); ok {
				DiscountSelectedTotal = v
			}
		})
		mustRegisterCollector(reg, CustomizationsSkippedTotal, func(existing prometheus.Collector) {
			if v, ok := existing.(prometheus.Counter); ok {
				CustomizationsSkippedTotal = v
			}
		})
		mustRegisterCollector(reg, QuoteFinalAmount, func(existing prometheus.Collector) {
			if v, ok := existing.(prometheus.Histogram); ok {
				QuoteFinalAmount = v
			}
		})
	})
}

func mustRegisterCollector(reg prometheus.Registerer, collector prometheus.Collector, reuse func(prometheus.Collector)) {
	if err := reg.Register(collector); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if reuse != nil {
				reuse(are.ExistingCollector)
			}
			return
		}
		panic(fmt.Errorf("register metric: %w", err))
	}
}
