package services

import (
	"fmt"
	"log/slog"

	"github.com/sisoputnfrba/tp-simulador/kernel/models"
)

// finishProcess pasa el proceso a EXIT y libera todos sus segmentos, tanto si terminó
// normalmente como por segmentation fault.
func (s *Simulator) finishProcess(pcb *models.PCB) error {
	if err := TransitionProcessState(pcb, models.EstadoExit, s.timer.Elapsed()); err != nil {
		return err
	}

	released := s.mmu.ReleaseAll(pcb.PID)
	s.actions.Recordf("OS: Process %d set in Exit state", pcb.PID)

	slog.Info(fmt.Sprintf("## (%d) - Finaliza el proceso", pcb.PID),
		slog.Int("segmentos_liberados", released))
	slog.Debug(fmt.Sprintf("## (%d) - Métricas de estado: NEW (%d, %v), READY (%d, %v), RUNNING (%d, %v), BLOCKED (%d, %v)",
		pcb.PID,
		pcb.ME[models.EstadoNew], pcb.MT[models.EstadoNew],
		pcb.ME[models.EstadoReady], pcb.MT[models.EstadoReady],
		pcb.ME[models.EstadoRunning], pcb.MT[models.EstadoRunning],
		pcb.ME[models.EstadoBlocked], pcb.MT[models.EstadoBlocked]))
	return nil
}
