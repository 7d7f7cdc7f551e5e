// Package realtime implementa la difusión de eventos a los clientes conectados.
//
// Cada suscriptor tiene una cola acotada. Broadcast codifica el mensaje una vez y hace un envío
// no bloqueante por suscriptor: si la cola está llena el mensaje se descarta para ese suscriptor,
// de modo que un cliente lento o caído nunca frena la petición que muta el catálogo.
package realtime

import (
	"encoding/json"
	"sync"

	"github.com/google/uuid"

	"github.com/jhoicas/Catalogo-api/internal/application/ports"
	"github.com/jhoicas/Catalogo-api/internal/infrastructure/metrics"
	"github.com/jhoicas/Catalogo-api/pkg/logger"
)

var _ ports.Broadcaster = (*Hub)(nil)

// Message sobre enviado por el canal realtime.
type Message struct {
	Event   string `json:"event"`
	Payload any    `json:"payload"`
}

// Subscriber un cliente conectado.
type Subscriber struct {
	id string
	ch chan []byte
}

// ID identificador del suscriptor (solo para logs).
func (s *Subscriber) ID() string { return s.id }

// C canal de mensajes codificados. Se cierra al desuscribir.
func (s *Subscriber) C() <-chan []byte { return s.ch }

// Hub registro de suscriptores y fan-out.
type Hub struct {
	mu      sync.RWMutex
	subs    map[*Subscriber]struct{}
	buffer  int
	log     *logger.Logger
	metrics *metrics.Metrics
}

// NewHub crea un hub con colas de tamaño buffer por suscriptor.
func NewHub(buffer int, log *logger.Logger, m *metrics.Metrics) *Hub {
	if buffer <= 0 {
		buffer = 16
	}
	if log == nil {
		log = logger.Nop()
	}
	return &Hub{subs: make(map[*Subscriber]struct{}), buffer: buffer, log: log, metrics: m}
}

// Subscribe registra un suscriptor nuevo.
func (h *Hub) Subscribe() *Subscriber {
	s := &Subscriber{id: uuid.NewString(), ch: make(chan []byte, h.buffer)}
	h.mu.Lock()
	h.subs[s] = struct{}{}
	n := len(h.subs)
	h.mu.Unlock()

	h.metrics.Subscribers(n)
	h.log.Info().Str("subscriber", s.id).Int("subscribers", n).Msg("usuario conectado")
	return s
}

// Unsubscribe quita al suscriptor y cierra su canal. Es idempotente.
func (h *Hub) Unsubscribe(s *Subscriber) {
	h.mu.Lock()
	if _, ok := h.subs[s]; !ok {
		h.mu.Unlock()
		return
	}
	delete(h.subs, s)
	close(s.ch)
	n := len(h.subs)
	h.mu.Unlock()

	h.metrics.Subscribers(n)
	h.log.Info().Str("subscriber", s.id).Int("subscribers", n).Msg("usuario desconectado")
}

// Broadcast envía event con payload a todos los suscriptores actuales sin bloquear.
func (h *Hub) Broadcast(event string, payload any) {
	msg, err := json.Marshal(Message{Event: event, Payload: payload})
	if err != nil {
		h.log.Error().Err(err).Str("event", event).Msg("codificar evento realtime")
		return
	}
	h.metrics.Broadcast(event)

	h.mu.RLock()
	defer h.mu.RUnlock()
	for s := range h.subs {
		select {
		case s.ch <- msg:
		default:
			h.metrics.Dropped(event)
			h.log.Warn().Str("subscriber", s.id).Str("event", event).Msg("cola llena, evento descartado")
		}
	}
}

// Count cantidad de suscriptores conectados.
func (h *Hub) Count() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subs)
}

// Close desuscribe a todos (apagado del servidor).
func (h *Hub) Close() {
	h.mu.RLock()
	subs := make([]*Subscriber, 0, len(h.subs))
	for s := range h.subs {
		subs = append(subs, s)
	}
	h.mu.RUnlock()
	for _, s := range subs {
		h.Unsubscribe(s)
	}
}
