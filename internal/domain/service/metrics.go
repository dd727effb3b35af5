package service

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	snapshotWrites = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "choukette",
		Name:      "snapshot_writes_total",
		Help:      "Snapshots written, by key.",
	}, []string{"key"})

	snapshotCorrupt = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "choukette",
		Name:      "snapshot_corrupt_total",
		Help:      "Snapshots discarded because they could not be decoded, by key.",
	}, []string{"key"})
)
