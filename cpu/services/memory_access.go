package services

import (
	"fmt"
	"log/slog"

	kernelModels "github.com/sisoputnfrba/tp-simulador/kernel/models"
	"github.com/sisoputnfrba/tp-simulador/memoria/helpers"
)

// memoryOperation decodifica la dirección del opcode M y la resuelve contra la MMU.
// Loguea la terna pedida antes de la llamada y el resultado después.
func (e *Executor) memoryOperation(pcb *kernelModels.PCB, op kernelModels.Operation) error {
	action := "Access"
	if op.Kind == kernelModels.Allocate {
		action = "Allocation"
	}

	sid, base, offset, err := helpers.DecodeAddress(op.Value)
	if err != nil {
		slog.Warn(fmt.Sprintf("## (%d) - Dirección inválida %d: %v", pcb.PID, op.Value, err))
		e.actions.Recordf("Process %d, MMU %s: Failed", pcb.PID, action)
		return err
	}

	e.actions.Recordf("Process %d, MMU %s: %d/%d/%d", pcb.PID, action, sid, base, offset)

	if op.Kind == kernelModels.Allocate {
		err = e.mmu.Allocate(pcb.PID, sid, base, offset)
	} else {
		err = e.mmu.Access(pcb.PID, sid, base, offset)
	}

	if err != nil {
		slog.Debug(fmt.Sprintf("## (%d) - MMU %s rechazada: %v", pcb.PID, action, err))
		e.actions.Recordf("Process %d, MMU %s: Failed", pcb.PID, action)
		return err
	}

	e.actions.Recordf("Process %d, MMU %s: Successful", pcb.PID, action)
	return nil
}
