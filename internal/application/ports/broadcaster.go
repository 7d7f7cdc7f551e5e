package ports

// EventUpdateProducts evento emitido con la lista completa de productos tras cada mutación.
const EventUpdateProducts = "updateProducts"

// Broadcaster difunde un evento a todos los suscriptores conectados.
// Es fire-and-forget: no bloquea al llamador ni garantiza la entrega.
type Broadcaster interface {
	Broadcast(event string, payload any)
}

// NopBroadcaster descarta los eventos (herramientas de línea de comandos).
type NopBroadcaster struct{}

// Broadcast no hace nada.
func (NopBroadcaster) Broadcast(string, any) {}
