package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Roster operation names and outcomes used as label values
const (
	OperationEnroll   = "enroll"
	OperationUnenroll = "unenroll"

	ResultSuccess         = "success"
	ResultNotFound        = "not_found"
	ResultAlreadyEnrolled = "already_enrolled"
	ResultNotEnrolled     = "not_enrolled"
)

var (
	// RosterOperations counts enroll and unenroll calls by outcome
	RosterOperations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "mergington",
			Subsystem: "catalog",
			Name:      "roster_operations_total",
			Help:      "Enroll and unenroll calls by outcome.",
		},
		[]string{"operation", "result"},
	)

	// ActivityParticipants is the current roster size per activity
	ActivityParticipants = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: "mergington",
			Subsystem: "catalog",
			Name:      "activity_participants",
			Help:      "Current roster size per activity.",
		},
		[]string{"activity"},
	)

	// ActivityCapacity is the advertised, unenforced capacity per activity
	ActivityCapacity = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: "mergington",
			Subsystem: "catalog",
			Name:      "activity_max_participants",
			Help:      "Advertised capacity per activity. Not enforced on signup.",
		},
		[]string{"activity"},
	)

	// RateLimitedRequests counts roster requests rejected with 429
	RateLimitedRequests = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "mergington",
			Subsystem: "http",
			Name:      "rate_limited_requests_total",
			Help:      "Roster requests rejected by the signup rate limiter.",
		},
	)
)

// RecordRosterOperation counts one enroll or unenroll outcome
func RecordRosterOperation(operation, result string) {
	RosterOperations.WithLabelValues(operation, result).Inc()
}

// RecordRosterSize updates the roster gauges for one activity
func RecordRosterSize(activity string, participants, capacity int) {
	ActivityParticipants.WithLabelValues(activity).Set(float64(participants))
	ActivityCapacity.WithLabelValues(activity).Set(float64(capacity))
}
