package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTPRequests counts handled HTTP requests by method, path and status.
	HTTPRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "revpilot_http_requests_total",
		Help: "Handled HTTP requests.",
	}, []string{"method", "path", "status"})

	// HTTPDuration tracks request latency by method and path.
	HTTPDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "revpilot_http_request_duration_seconds",
		Help:    "HTTP request latency.",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path"})

	// AssistantChats counts processed chat messages.
	AssistantChats = promauto.NewCounter(prometheus.CounterOpts{
		Name: "revpilot_assistant_chats_total",
		Help: "Processed assistant chat messages.",
	})

	// AssistantChatDuration tracks chat pipeline latency.
	AssistantChatDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "revpilot_assistant_chat_duration_seconds",
		Help:    "Assistant pipeline latency.",
		Buckets: prometheus.DefBuckets,
	})

	// EventSearches counts event-finder searches by outcome.
	EventSearches = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "revpilot_event_searches_total",
		Help: "Event finder searches.",
	}, []string{"outcome"})

	// BackupRuns counts backup executions by outcome.
	BackupRuns = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "revpilot_backup_runs_total",
		Help: "Backup job executions.",
	}, []string{"outcome"})
)
