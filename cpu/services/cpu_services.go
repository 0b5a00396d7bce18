package services

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/sisoputnfrba/tp-simulador/cpu/models"
	kernelModels "github.com/sisoputnfrba/tp-simulador/kernel/models"
	memoriaServices "github.com/sisoputnfrba/tp-simulador/memoria/services"
	"github.com/sisoputnfrba/tp-simulador/utils/log"
	"github.com/sisoputnfrba/tp-simulador/utils/timer"
)

// InterruptHandler es lo que el ejecutor expropiativo necesita del kernel.
type InterruptHandler interface {
	// CheckForInterrupts vacía la cola de interrupciones, devolviendo a READY a cada proceso desbloqueado.
	CheckForInterrupts()
	// PreemptingProcess devuelve el proceso READY que debe desalojar a running, si lo hay.
	PreemptingProcess(running *kernelModels.PCB) (*kernelModels.PCB, bool)
	// StartIO lanza en segundo plano la ráfaga de I/O de op.
	StartIO(pcb *kernelModels.PCB, op kernelModels.Operation)
}

// Executor recorre las operaciones de un PCB contra el reloj de la simulación y la MMU.
type Executor struct {
	config  *kernelModels.Config
	timer   *timer.Timer
	actions *log.ActionLog
	mmu     *memoriaServices.MMU
}

func NewExecutor(config *kernelModels.Config, timer *timer.Timer, actions *log.ActionLog, mmu *memoriaServices.MMU) *Executor {
	return &Executor{
		config:  config,
		timer:   timer,
		actions: actions,
		mmu:     mmu,
	}
}

// RunToCompletion ejecuta el proceso sin desalojo hasta A(end) o hasta una falla de memoria.
// Las ráfagas de I/O se esperan en el lugar.
func (e *Executor) RunToCompletion(pcb *kernelModels.PCB) models.Outcome {
	for !pcb.Finished() {
		op, _ := pcb.CurrentOperation()

		switch op.Kind {
		case kernelModels.AppEnd:
			pcb.Advance()
			return models.OutcomeFinished

		case kernelModels.Run:
			e.actions.Recordf("Process %d, run operation start", pcb.PID)
			e.burn(pcb, e.config.CpuCycle()*time.Duration(op.Value))
			e.actions.Recordf("Process %d, run operation end", pcb.PID)

		case kernelModels.Input, kernelModels.Output:
			label := ioLabel(op)
			e.actions.Recordf("Process %d, %s start", pcb.PID, label)
			e.burn(pcb, e.config.IoCycle()*time.Duration(op.Value))
			e.actions.Recordf("Process %d, %s end", pcb.PID, label)

		case kernelModels.Allocate, kernelModels.Access:
			if err := e.memoryOperation(pcb, op); err != nil {
				e.segmentationFault(pcb)
				return models.OutcomeFault
			}
		}

		pcb.Advance()
	}

	return models.OutcomeFinished
}

// RunPreemptive ejecuta el proceso ciclo a ciclo. Devuelve el control cuando el proceso
// termina, falla, se bloquea por I/O, agota el quantum o es desalojado.
func (e *Executor) RunPreemptive(pcb *kernelModels.PCB, handler InterruptHandler) models.Outcome {
	for !pcb.Finished() {
		op, _ := pcb.CurrentOperation()

		if op.Kind == kernelModels.AppEnd {
			pcb.Advance()
			return models.OutcomeFinished
		}
		if op.Kind == kernelModels.AppStart {
			pcb.Advance()
			continue
		}

		if outcome, yield := e.shouldYield(pcb, handler); yield {
			return outcome
		}

		switch op.Kind {
		case kernelModels.Run:
			if outcome, yield := e.runCycles(pcb, op, handler); yield {
				return outcome
			}

		case kernelModels.Input, kernelModels.Output:
			e.actions.Recordf("Process %d, %s start", pcb.PID, ioLabel(op))
			pcb.RemainingTime -= e.config.IoCycle() * time.Duration(op.Value)
			handler.StartIO(pcb, op)
			pcb.Advance()
			return models.OutcomeBlocked

		case kernelModels.Allocate, kernelModels.Access:
			if err := e.memoryOperation(pcb, op); err != nil {
				e.segmentationFault(pcb)
				return models.OutcomeFault
			}
			handler.CheckForInterrupts()
		}

		pcb.Advance()
	}

	return models.OutcomeFinished
}

// runCycles avanza la operación de CPU de a un ciclo. Si el proceso debe ceder la CPU
// antes de terminarla, la operación queda a medias en el PCB para el próximo despacho.
func (e *Executor) runCycles(pcb *kernelModels.PCB, op kernelModels.Operation, handler InterruptHandler) (models.Outcome, bool) {
	if !pcb.InProgress {
		pcb.InProgress = true
		pcb.RemainingCycles = op.Value
		e.actions.Recordf("Process %d, run operation start", pcb.PID)
	}

	for pcb.RemainingCycles > 0 {
		e.burn(pcb, e.config.CpuCycle())
		pcb.RemainingCycles--
		if e.config.QuantumEnabled() {
			pcb.RemainingQuantum--
		}

		handler.CheckForInterrupts()

		if pcb.RemainingCycles == 0 {
			break
		}
		if outcome, yield := e.shouldYield(pcb, handler); yield {
			return outcome, true
		}
	}

	e.actions.Recordf("Process %d, run operation end", pcb.PID)
	return 0, false
}

// shouldYield decide si el proceso cede la CPU: primero por quantum, después por desalojo.
func (e *Executor) shouldYield(pcb *kernelModels.PCB, handler InterruptHandler) (models.Outcome, bool) {
	if e.config.QuantumEnabled() && pcb.RemainingQuantum <= 0 {
		e.actions.Recordf("OS: Process %d quantum time out", pcb.PID)
		return models.OutcomeQuantumExpired, true
	}

	if other, ok := handler.PreemptingProcess(pcb); ok {
		e.actions.Recordf("OS: Process %d preempted by Process %d", pcb.PID, other.PID)
		return models.OutcomePreempted, true
	}

	return 0, false
}

// burn deja pasar d en el reloj y lo descuenta del tiempo restante del proceso.
func (e *Executor) burn(pcb *kernelModels.PCB, d time.Duration) {
	e.timer.Advance(d)
	pcb.RemainingTime -= d
}

func (e *Executor) segmentationFault(pcb *kernelModels.PCB) {
	slog.Debug(fmt.Sprintf("## (%d) - Segmentation fault en la operación %d", pcb.PID, pcb.Cursor))
	e.actions.Recordf("OS: Process %d, Segmentation Fault - Process ended", pcb.PID)
}

func ioLabel(op kernelModels.Operation) string {
	if op.Kind == kernelModels.Output {
		return op.Device + " output"
	}
	return op.Device + " input"
}
