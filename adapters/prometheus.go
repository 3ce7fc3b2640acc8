// File: adapters/prometheus.go
// Package adapters
//
// Prometheus collector exposing queue accounting counters.

package adapters

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/evpump/evpump/queue"
)

// QueueCollector implements prometheus.Collector over a queue's Stats
// snapshot. Register it on any prometheus registry; metrics are read
// on scrape, no background goroutine is involved.
type QueueCollector struct {
	q *queue.Queue

	depth     *prometheus.Desc
	peakDepth *prometheus.Desc
	pushed    *prometheus.Desc
	polled    *prometheus.Desc
	filtered  *prometheus.Desc
	dropped   *prometheus.Desc
	flushed   *prometheus.Desc
}

// NewQueueCollector builds a collector for q. The optional namespace
// prefixes every metric name.
func NewQueueCollector(q *queue.Queue, namespace string) *QueueCollector {
	name := func(s string) string {
		if namespace == "" {
			return "evpump_queue_" + s
		}
		return namespace + "_evpump_queue_" + s
	}
	return &QueueCollector{
		q:         q,
		depth:     prometheus.NewDesc(name("depth"), "Current number of queued event records.", nil, nil),
		peakDepth: prometheus.NewDesc(name("peak_depth"), "Highest queue fill level observed.", nil, nil),
		pushed:    prometheus.NewDesc(name("pushed_total"), "Event records accepted into the queue.", nil, nil),
		polled:    prometheus.NewDesc(name("polled_total"), "Event records removed by poll, wait, or bulk get.", nil, nil),
		filtered:  prometheus.NewDesc(name("filtered_total"), "Event records rejected by the installed filter.", nil, nil),
		dropped:   prometheus.NewDesc(name("dropped_total"), "Event records dropped because their type was disabled.", nil, nil),
		flushed:   prometheus.NewDesc(name("flushed_total"), "Event records discarded by flush or disable.", nil, nil),
	}
}

// Compile-time interface check.
var _ prometheus.Collector = (*QueueCollector)(nil)

// Describe implements prometheus.Collector.
func (c *QueueCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.depth
	ch <- c.peakDepth
	ch <- c.pushed
	ch <- c.polled
	ch <- c.filtered
	ch <- c.dropped
	ch <- c.flushed
}

// Collect implements prometheus.Collector.
func (c *QueueCollector) Collect(ch chan<- prometheus.Metric) {
	s := c.q.Stats()
	ch <- prometheus.MustNewConstMetric(c.depth, prometheus.GaugeValue, float64(s.Depth))
	ch <- prometheus.MustNewConstMetric(c.peakDepth, prometheus.GaugeValue, float64(s.PeakDepth))
	ch <- prometheus.MustNewConstMetric(c.pushed, prometheus.CounterValue, float64(s.Pushed))
	ch <- prometheus.MustNewConstMetric(c.polled, prometheus.CounterValue, float64(s.Polled))
	ch <- prometheus.MustNewConstMetric(c.filtered, prometheus.CounterValue, float64(s.Filtered))
	ch <- prometheus.MustNewConstMetric(c.dropped, prometheus.CounterValue, float64(s.Dropped))
	ch <- prometheus.MustNewConstMetric(c.flushed, prometheus.CounterValue, float64(s.Flushed))
}
