package services

import (
	"time"

	ioModels "github.com/sisoputnfrba/tp-simulador/io/models"
	"github.com/sisoputnfrba/tp-simulador/kernel/models"
)

// StartIO lanza la ráfaga de I/O en segundo plano. Su interrupción se entrega en el
// primer CheckForInterrupts posterior a que transcurra la duración completa.
func (s *Simulator) StartIO(pcb *models.PCB, op models.Operation) {
	direction := ioModels.Input
	if op.Kind == models.Output {
		direction = ioModels.Output
	}

	s.devices.Start(ioModels.IORequest{
		PID:       pcb.PID,
		Device:    op.Device,
		Direction: direction,
		Duration:  s.config.IoCycle() * time.Duration(op.Value),
	}, s.timer.Elapsed())
}
