package services

import (
	"fmt"
	"log/slog"

	"github.com/sisoputnfrba/tp-simulador/kernel/models"
)

// CheckForInterrupts encola una interrupción por cada ráfaga de I/O vencida y después
// vacía la cola completa: cada proceso desbloqueado pasa a READY y va al final de la cola READY.
func (s *Simulator) CheckForInterrupts() {
	now := s.timer.Elapsed()

	for _, request := range s.devices.Completed(now) {
		pcb, found := s.table.Get(request.PID)
		if !found {
			slog.Error(fmt.Sprintf("## (%d) - Interrupción de un proceso inexistente", request.PID))
			continue
		}
		s.queues.Interrupts.Add(models.Interrupt{PCB: pcb, Request: request})
	}

	for _, interrupt := range s.queues.Interrupts.DrainAll() {
		s.actions.Recordf("Process %d, %s end", interrupt.PCB.PID, interrupt.Request.Label())

		if err := TransitionProcessState(interrupt.PCB, models.EstadoReady, now); err != nil {
			slog.Error(err.Error())
			continue
		}
		s.queues.Ready.Add(interrupt.PCB)
	}
}

// PreemptingProcess devuelve, solo en SRTF-P, el proceso READY con tiempo restante
// estrictamente menor al del que está corriendo.
func (s *Simulator) PreemptingProcess(running *models.PCB) (*models.PCB, bool) {
	if s.config.CpuSchedulingCode != models.CodeSRTFP {
		return nil, false
	}

	candidate := shortest(s.queues.Ready.GetAll(), func(pcb *models.PCB) int64 { return int64(pcb.RemainingTime) })
	if candidate == nil || candidate.RemainingTime >= running.RemainingTime {
		return nil, false
	}
	return candidate, true
}
