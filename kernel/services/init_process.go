package services

import (
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/sisoputnfrba/tp-simulador/kernel/models"
)

// pidGenerator entrega PIDs consecutivos desde 0 para una corrida.
type pidGenerator struct {
	pidMutex sync.Mutex
	nextPID  uint
}

func (g *pidGenerator) generatePID() uint {
	g.pidMutex.Lock()
	defer g.pidMutex.Unlock()

	pid := g.nextPID
	g.nextPID++
	return pid
}

// BuildProcessTable arma un PCB por cada A(start) de la secuencia, en orden de aparición.
// La secuencia debe empezar con S(start), terminar con S(end), y cada A(start) debe
// cerrarse con su A(end) antes del siguiente A(start).
func BuildProcessTable(operations []models.Operation, config *models.Config) (*models.ProcessTable, error) {
	if len(operations) == 0 || operations[0].Kind != models.SystemStart {
		return nil, fmt.Errorf("%w: la secuencia no empieza con S(start)", models.ErrMalformedSequence)
	}
	last := len(operations) - 1
	if last == 0 || operations[last].Kind != models.SystemEnd {
		return nil, fmt.Errorf("%w: la secuencia no termina con S(end)", models.ErrMalformedSequence)
	}

	table := models.NewProcessTable()
	pids := &pidGenerator{}
	var current *models.PCB

	for i, op := range operations[1:last] {
		position := i + 1

		switch op.Kind {
		case models.SystemStart, models.SystemEnd:
			return nil, fmt.Errorf("%w: %s en la posición %d", models.ErrMalformedSequence, op, position)

		case models.AppStart:
			if current != nil {
				return nil, fmt.Errorf("%w: el proceso %d no tiene A(end) antes de la posición %d", models.ErrMalformedSequence, current.PID, position)
			}
			current = models.NewPCB(pids.generatePID())

		case models.AppEnd:
			if current == nil {
				return nil, fmt.Errorf("%w: A(end) sin A(start) en la posición %d", models.ErrMalformedSequence, position)
			}
			current.Operations = append(current.Operations, op)
			current.TotalTime = processTime(current.Operations, config)
			current.RemainingTime = current.TotalTime
			table.Add(current)
			slog.Debug(fmt.Sprintf("## (%d) Se crea el proceso - Estado : NEW - Tiempo total: %v", current.PID, current.TotalTime))
			current = nil

		default:
			if current == nil {
				return nil, fmt.Errorf("%w: %s fuera de un proceso en la posición %d", models.ErrMalformedSequence, op, position)
			}
			current.Operations = append(current.Operations, op)
		}
	}

	if current != nil {
		return nil, fmt.Errorf("%w: el proceso %d no tiene A(end)", models.ErrMalformedSequence, current.PID)
	}

	return table, nil
}

// processTime suma ciclo de CPU por ciclos de cada P y ciclo de I/O por ciclos de cada I/O. Memoria no suma.
func processTime(operations []models.Operation, config *models.Config) time.Duration {
	var total time.Duration
	for _, op := range operations {
		switch op.Component() {
		case models.ComponentCPU:
			total += config.CpuCycle() * time.Duration(op.Value)
		case models.ComponentIO:
			total += config.IoCycle() * time.Duration(op.Value)
		}
	}
	return total
}
