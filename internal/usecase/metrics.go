package usecase

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	applicationsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "choukette",
		Name:      "applications_total",
		Help:      "Applications submitted to missions.",
	})

	loginsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "choukette",
		Name:      "logins_total",
		Help:      "Logins by account type and outcome.",
	}, []string{"type", "outcome"})

	blogViewsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "choukette",
		Name:      "blog_views_total",
		Help:      "Blog post views recorded.",
	})
)
