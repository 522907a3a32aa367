package Metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (

	// Admissions counts gate decisions by result (admitted, rejected)
	Admissions = promauto.NewCounterVec(

		prometheus.CounterOpts{

			Name: "encore_admissions_total",
			Help: "Total number of per-guild admission decisions",

		},

		[]string{"result"},

	)

	// Retries counts backoff waits taken after rate-limited attempts
	Retries = promauto.NewCounter(

		prometheus.CounterOpts{

			Name: "encore_retries_total",
			Help: "Total number of retries after rate-limited playback calls",

		},

	)

	// Requests counts finished requests by outcome status and failure class
	Requests = promauto.NewCounterVec(

		prometheus.CounterOpts{

			Name: "encore_requests_total",
			Help: "Total number of playback requests by outcome",

		},

		[]string{"status", "class"},

	)

	// Attempts tracks how many engine calls each admitted request needed
	Attempts = promauto.NewHistogram(

		prometheus.HistogramOpts{

			Name:    "encore_request_attempts",
			Help:    "Engine calls per admitted request",
			Buckets: []float64{1, 2, 3, 4, 5, 8},

		},

	)

)
