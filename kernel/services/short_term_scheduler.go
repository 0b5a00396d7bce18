package services

import (
	"fmt"
	"log/slog"
	"time"

	cpuModels "github.com/sisoputnfrba/tp-simulador/cpu/models"
	"github.com/sisoputnfrba/tp-simulador/kernel/models"
)

// runNonPreemptive despacha un proceso por vez y lo corre hasta el final.
func (s *Simulator) runNonPreemptive(next selector) error {
	for pcb := next(); pcb != nil; pcb = next() {
		if err := s.dispatch(pcb, pcb.TotalTime); err != nil {
			return err
		}

		outcome := s.executor.RunToCompletion(pcb)
		slog.Debug(fmt.Sprintf("## (%d) - Fin de ráfaga: %s", pcb.PID, outcome))

		if err := s.finishProcess(pcb); err != nil {
			return err
		}
	}
	return nil
}

// runPreemptive planifica hasta que toda la tabla esté en EXIT. Si no hay nadie en READY
// pero quedan ráfagas de I/O en curso, la CPU queda ociosa hasta la próxima interrupción.
func (s *Simulator) runPreemptive(next selector) error {
	for !s.table.AllExit() {
		s.CheckForInterrupts()

		pcb := next()
		if pcb == nil {
			if err := s.waitForInterrupt(); err != nil {
				return err
			}
			continue
		}
		s.idle = false

		if err := s.dispatch(pcb, pcb.RemainingTime); err != nil {
			return err
		}
		pcb.RemainingQuantum = s.config.QuantumCycles

		outcome := s.executor.RunPreemptive(pcb, s)
		slog.Debug(fmt.Sprintf("## (%d) - Fin de ráfaga: %s", pcb.PID, outcome))

		if err := s.handleOutcome(pcb, outcome); err != nil {
			return err
		}
	}
	return nil
}

// waitForInterrupt deja correr el reloj hasta el vencimiento de la próxima ráfaga de I/O.
func (s *Simulator) waitForInterrupt() error {
	due, pending := s.devices.NextCompletion()
	if !pending {
		return fmt.Errorf("no hay procesos en READY ni ráfagas de I/O pendientes con procesos sin terminar")
	}

	if !s.idle {
		s.actions.Record("OS: CPU idle, all active processes blocked")
		s.idle = true
	}
	s.timer.AdvanceTo(due)
	return nil
}

func (s *Simulator) dispatch(pcb *models.PCB, shownTime time.Duration) error {
	s.actions.Recordf("OS: %s Strategy selects Process %d with time: %d mSec", s.config.CpuSchedulingCode, pcb.PID, shownTime.Milliseconds())

	if err := TransitionProcessState(pcb, models.EstadoRunning, s.timer.Elapsed()); err != nil {
		return err
	}
	s.actions.Recordf("OS: Process %d set in Running state", pcb.PID)
	return nil
}

func (s *Simulator) handleOutcome(pcb *models.PCB, outcome cpuModels.Outcome) error {
	switch outcome {
	case cpuModels.OutcomeFinished, cpuModels.OutcomeFault:
		return s.finishProcess(pcb)

	case cpuModels.OutcomeBlocked:
		if err := TransitionProcessState(pcb, models.EstadoBlocked, s.timer.Elapsed()); err != nil {
			return err
		}
		s.actions.Recordf("OS: Process %d set in Blocked state", pcb.PID)

	case cpuModels.OutcomeQuantumExpired, cpuModels.OutcomePreempted:
		if err := TransitionProcessState(pcb, models.EstadoReady, s.timer.Elapsed()); err != nil {
			return err
		}
		s.actions.Recordf("OS: Process %d set in Ready state", pcb.PID)
		s.queues.Ready.Add(pcb)
	}
	return nil
}
