package http

import (
	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Catalogo-api/internal/application/dto"
	"github.com/jhoicas/Catalogo-api/internal/infrastructure/realtime"
)

// RealtimeHandler puente entre el Hub y las conexiones websocket.
type RealtimeHandler struct {
	hub *realtime.Hub
}

// NewRealtimeHandler construye el handler.
func NewRealtimeHandler(hub *realtime.Hub) *RealtimeHandler {
	return &RealtimeHandler{hub: hub}
}

// RequireUpgrade rechaza con 426 las peticiones a /ws que no piden upgrade.
func (h *RealtimeHandler) RequireUpgrade(c *fiber.Ctx) error {
	if websocket.IsWebSocketUpgrade(c) {
		return c.Next()
	}
	return c.Status(fiber.StatusUpgradeRequired).JSON(dto.ErrorResponse{
		Code:    "UPGRADE_REQUIRED",
		Message: "este endpoint solo acepta conexiones websocket",
	})
}

// Serve registra la conexión en el hub y le reenvía cada evento hasta que el cliente se desconecta.
// El cliente no envía comandos; los mensajes entrantes solo se leen para detectar el cierre.
func (h *RealtimeHandler) Serve(conn *websocket.Conn) {
	sub := h.hub.Subscribe()
	defer h.hub.Unsubscribe(sub)

	gone := make(chan struct{})
	go func() {
		defer close(gone)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	for {
		select {
		case msg, ok := <-sub.C():
			if !ok {
				_ = conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseGoingAway, ""))
				return
			}
			if err := conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				return
			}
		case <-gone:
			return
		}
	}
}
