package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"carrier_desk/internal/domain/value"
)

// Collectors counts carrier lookups and negotiation outcomes.
type Collectors struct {
	cacheLookups  *prometheus.CounterVec
	verifications *prometheus.CounterVec
	decisions     *prometheus.CounterVec
}

func NewCollectors(reg prometheus.Registerer) *Collectors {
	factory := promauto.With(reg)

	return &Collectors{
		cacheLookups: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name:      "carrier_cache_lookups_total",
				Help:      "Carrier cache lookups partitioned by key namespace and hit or miss",
			},
			[]string{"namespace", "result"},
		),
		verifications: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name:      "carrier_verifications_total",
				Help:      "Carrier verifications partitioned by the source that answered",
			},
			[]string{"source"},
		),
		decisions: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name:      "negotiation_decisions_total",
				Help:      "Offer evaluations partitioned by decision",
			},
			[]string{"status"},
		),
	}
}

func (c *Collectors) RecordCacheLookup(ns string, hit bool) {
	result := "miss"
	if hit {
		result = "hit"
	}

	c.cacheLookups.WithLabelValues(ns, result).Inc()
}

func (c *Collectors) RecordVerification(source value.VerificationSource) {
	c.verifications.WithLabelValues(string(source)).Inc()
}

func (c *Collectors) RecordDecision(status value.DecisionStatus) {
	c.decisions.WithLabelValues(string(status)).Inc()
}
