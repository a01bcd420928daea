package game

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	phaseDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "gridsnake",
			Subsystem: "game",
			Name:      "phase_seconds",
			Help:      "Time spent per tick phase.",
		},
		[]string{"phase"},
	)
	ticksTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "gridsnake",
		Subsystem: "game",
		Name:      "ticks_total",
		Help:      "Ticks applied to the board.",
	})
	resetsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "gridsnake",
		Subsystem: "game",
		Name:      "resets_total",
		Help:      "Self collisions that reset the snake.",
	})
	foodEatenTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "gridsnake",
		Subsystem: "game",
		Name:      "food_eaten_total",
		Help:      "Food items eaten.",
	})
	snakeLength = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "gridsnake",
		Subsystem: "snake",
		Name:      "length",
		Help:      "Current target length of the snake.",
	})
	bestLength = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "gridsnake",
		Subsystem: "snake",
		Name:      "best_length",
		Help:      "Longest target length reached this session.",
	})
)

func instrument(phase string) func() {
	t := prometheus.NewTimer(phaseDuration.WithLabelValues(phase))
	return func() { t.ObserveDuration() }
}

func init() {
	prometheus.MustRegister(phaseDuration, ticksTotal, resetsTotal, foodEatenTotal, snakeLength, bestLength)
}
