// Package metrics holds the domain collectors exposed on /metrics.
package metrics

import "github.com/prometheus/client_golang/prometheus"

// Metrics groups the domain counters. A nil *Metrics is valid and records nothing.
type Metrics struct {
	notificationsCreated *prometheus.CounterVec
	smsAttempts          *prometheus.CounterVec
	eventsPublished      *prometheus.CounterVec
	sweepRuns            *prometheus.CounterVec
	sweepNotifications   prometheus.Counter
	sideEffectFailures   *prometheus.CounterVec
	rateLimitRejections  prometheus.Counter
}

// New creates the collectors and registers them on reg.
func New(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		notificationsCreated: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "notifications_created_total",
				Help: "Notifications stored, by type.",
			},
			[]string{"type"},
		),
		smsAttempts: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "notification_sms_attempts_total",
				Help: "SMS fan-out attempts, by outcome.",
			},
			[]string{"status"},
		),
		eventsPublished: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "notification_events_published_total",
				Help: "notification.created events published, by outcome.",
			},
			[]string{"status"},
		),
		sweepRuns: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "expiry_sweep_runs_total",
				Help: "Expiry sweep runs, by result.",
			},
			[]string{"result"},
		),
		sweepNotifications: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "expiry_sweep_notifications_total",
				Help: "Reminder notifications created by the expiry sweep.",
			},
		),
		sideEffectFailures: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "side_effect_failures_total",
				Help: "Best-effort side effects that failed, by operation and effect.",
			},
			[]string{"operation", "effect"},
		),
		rateLimitRejections: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "http_rate_limit_rejections_total",
				Help: "Requests rejected by the rate limiter.",
			},
		),
	}

	for _, c := range []prometheus.Collector{
		m.notificationsCreated,
		m.smsAttempts,
		m.eventsPublished,
		m.sweepRuns,
		m.sweepNotifications,
		m.sideEffectFailures,
		m.rateLimitRejections,
	} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

func (m *Metrics) NotificationCreated(typ string) {
	if m == nil {
		return
	}
	m.notificationsCreated.WithLabelValues(typ).Inc()
}

// SMSAttempt records one fan-out attempt; status is "sent", "failed" or "skipped".
func (m *Metrics) SMSAttempt(status string) {
	if m == nil {
		return
	}
	m.smsAttempts.WithLabelValues(status).Inc()
}

func (m *Metrics) EventPublished(ok bool) {
	if m == nil {
		return
	}
	m.eventsPublished.WithLabelValues(result(ok)).Inc()
}

func (m *Metrics) SweepRun(ok bool, created int) {
	if m == nil {
		return
	}
	m.sweepRuns.WithLabelValues(result(ok)).Inc()
	m.sweepNotifications.Add(float64(created))
}

func (m *Metrics) SideEffectFailed(operation, effect string) {
	if m == nil {
		return
	}
	m.sideEffectFailures.WithLabelValues(operation, effect).Inc()
}

func (m *Metrics) RateLimited() {
	if m == nil {
		return
	}
	m.rateLimitRejections.Inc()
}

func result(ok bool) string {
	if ok {
		return "success"
	}
	return "failure"
}
