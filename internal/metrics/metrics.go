package metrics

import "github.com/prometheus/client_golang/prometheus"

type Metrics struct {
	LoginFailures   *prometheus.CounterVec
	Lockouts        prometheus.Counter
	ReuseDetections prometheus.Counter
	Rotations       *prometheus.CounterVec
	EmailOutcomes   *prometheus.CounterVec
}

func NewMetrics(registry *prometheus.Registry) *Metrics {
	m := &Metrics{
		LoginFailures: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "auth_login_failures_total",
				Help: "Total failed login attempts.",
			},
			[]string{"reason"},
		),
		Lockouts: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "auth_account_lockouts_total",
				Help: "Total account lockout transitions.",
			},
		),
		ReuseDetections: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "auth_refresh_reuse_detections_total",
				Help: "Total revoked-refresh-token reuse detections.",
			},
		),
		Rotations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "auth_refresh_rotations_total",
				Help: "Total refresh token rotations.",
			},
			[]string{"status"},
		),
		EmailOutcomes: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "auth_emails_total",
				Help: "Total notification emails by kind and outcome.",
			},
			[]string{"kind", "outcome"},
		),
	}

	registry.MustRegister(m.LoginFailures, m.Lockouts, m.ReuseDetections, m.Rotations, m.EmailOutcomes)

	return m
}

// NewNop returns metrics bound to a throwaway registry, for tests and
// optional wiring.
func NewNop() *Metrics {
	return NewMetrics(prometheus.NewRegistry())
}
