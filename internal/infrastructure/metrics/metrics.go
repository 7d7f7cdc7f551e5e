// Package metrics expone los contadores del servicio en un registro prometheus propio.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Resultados de una operación del Record Store.
const (
	ResultOK      = "ok"
	ResultMissing = "missing"
	ResultError   = "error"
)

// Metrics agrupa los collectors del servicio. Un *Metrics nil es válido y no registra nada.
type Metrics struct {
	registry    *prometheus.Registry
	storeOps    *prometheus.CounterVec
	broadcasts  *prometheus.CounterVec
	dropped     *prometheus.CounterVec
	subscribers prometheus.Gauge
}

// New crea un registro nuevo con los collectors del runtime de Go y del proceso.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	m := &Metrics{
		registry: reg,
		storeOps: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "catalog",
			Name:      "store_operations_total",
			Help:      "Lecturas y escrituras del Record Store por recurso y resultado.",
		}, []string{"op", "resource", "result"}),
		broadcasts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "catalog",
			Name:      "broadcasts_total",
			Help:      "Eventos difundidos a los suscriptores realtime.",
		}, []string{"event"}),
		dropped: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "catalog",
			Name:      "broadcast_dropped_total",
			Help:      "Mensajes descartados porque la cola del suscriptor estaba llena.",
		}, []string{"event"}),
		subscribers: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "catalog",
			Name:      "realtime_subscribers",
			Help:      "Suscriptores realtime conectados.",
		}),
	}
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.storeOps, m.broadcasts, m.dropped, m.subscribers,
	)
	return m
}

// StoreOp cuenta una operación (read/write) sobre un recurso.
func (m *Metrics) StoreOp(op, resource, result string) {
	if m == nil {
		return
	}
	m.storeOps.WithLabelValues(op, resource, result).Inc()
}

// Broadcast cuenta un evento difundido.
func (m *Metrics) Broadcast(event string) {
	if m == nil {
		return
	}
	m.broadcasts.WithLabelValues(event).Inc()
}

// Dropped cuenta un mensaje descartado para un suscriptor lento.
func (m *Metrics) Dropped(event string) {
	if m == nil {
		return
	}
	m.dropped.WithLabelValues(event).Inc()
}

// Subscribers publica la cantidad actual de suscriptores.
func (m *Metrics) Subscribers(n int) {
	if m == nil {
		return
	}
	m.subscribers.Set(float64(n))
}

// Handler devuelve el handler HTTP de exposición.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
