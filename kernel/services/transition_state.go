package services

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/sisoputnfrba/tp-simulador/kernel/models"
)

// TransitionProcessState se encarga de cambiar un proceso de estado.
// Actualiza sus métricas (ME, MT) con el tiempo de simulación now y rechaza
// cualquier transición que no sea parte del ciclo de vida del PCB.
func TransitionProcessState(pcb *models.PCB, newState models.Estado, now time.Duration) error {
	pcb.Mutex.Lock()
	defer pcb.Mutex.Unlock()

	oldState := pcb.EstadoActual
	if !models.CanTransition(oldState, newState) {
		return fmt.Errorf("%w: PID %d de %s a %s", models.ErrInvalidTransition, pcb.PID, oldState, newState)
	}

	pcb.MT[oldState] += now - pcb.UltimoCambio
	pcb.EstadoActual = newState
	pcb.UltimoCambio = now
	pcb.ME[newState]++

	slog.Debug(fmt.Sprintf("## (%d) Pasa del estado %s al estado %s", pcb.PID, oldState, newState))
	return nil
}
