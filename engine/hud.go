package engine

import "fmt"

// Status and feedback strings shown to the player
const (
	MsgWelcome  = "Mueve con WASD o flechas y Shift para turbo. Lleva los ingredientes a la parrilla."
	MsgRestart  = "Empieza a cocinar el mejor kebap de la ciudad."
	MsgPickup   = "¡Ingrediente recogido! Llévalo a la parrilla."
	msgDelivery = "Entrega perfecta: +%d puntos."
	msgTimeUp   = "¡Tiempo! Resultado final: %d. Pulsa R para reiniciar."

	OverlayTitle   = "Fin de partida"
	overlayScore   = "Puntuación: %d"
	OverlayRestart = "Pulsa R para volver a jugar"
)

// HUD holds the three status texts refreshed every frame
type HUD struct {
	Score string
	Timer string
	Carry string
}

// FormatHUD renders counters into status texts, time is floored at 0
func FormatHUD(c Counters) HUD {
	t := c.TimeLeft
	if t < 0 {
		t = 0
	}
	return HUD{
		Score: fmt.Sprintf("Puntos: %d", c.Score),
		Timer: fmt.Sprintf("Tiempo: %d", t),
		Carry: fmt.Sprintf("Cargando: %d/%d", c.Carry, c.MaxCarry),
	}
}

// DeliveryMessage confirms a delivery bonus
func DeliveryMessage(bonus int) string {
	return fmt.Sprintf(msgDelivery, bonus)
}

// TimeUpMessage summarizes the round on timeout
func TimeUpMessage(score int) string {
	return fmt.Sprintf(msgTimeUp, score)
}

// OverlayScore is the final score line of the game over overlay
func OverlayScore(score int) string {
	return fmt.Sprintf(overlayScore, score)
}
