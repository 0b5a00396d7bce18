package services

import (
	"fmt"
	"io"
	"log/slog"

	cpuServices "github.com/sisoputnfrba/tp-simulador/cpu/services"
	ioServices "github.com/sisoputnfrba/tp-simulador/io/services"
	"github.com/sisoputnfrba/tp-simulador/kernel/models"
	memoriaServices "github.com/sisoputnfrba/tp-simulador/memoria/services"
	"github.com/sisoputnfrba/tp-simulador/utils/log"
	"github.com/sisoputnfrba/tp-simulador/utils/timer"
)

// Simulator es el kernel de una corrida: dueño de la tabla de procesos, las colas,
// la MMU, los dispositivos de I/O y el único reloj que ordena el log de acciones.
type Simulator struct {
	config   *models.Config
	timer    *timer.Timer
	actions  *log.ActionLog
	mmu      *memoriaServices.MMU
	devices  *ioServices.DeviceManager
	executor *cpuServices.Executor
	table    *models.ProcessTable
	queues   *models.Queues
	idle     bool
}

// NewSimulator arma una corrida sobre clock. Cada entrada del log de acciones se escribe en out al producirse.
func NewSimulator(config *models.Config, clock timer.Clock, out io.Writer) *Simulator {
	simTimer := timer.NewTimer(clock)
	actions := log.NewActionLog(simTimer, out)
	mmu := memoriaServices.NewMMU(config.MemoryAvailable)

	return &Simulator{
		config:   config,
		timer:    simTimer,
		actions:  actions,
		mmu:      mmu,
		devices:  ioServices.NewDeviceManager(),
		executor: cpuServices.NewExecutor(config, simTimer, actions, mmu),
		table:    models.NewProcessTable(),
		queues:   models.NewQueues(),
	}
}

// Run crea los procesos a partir de la secuencia de operaciones y planifica hasta que todos terminen.
// Una secuencia mal formada se devuelve antes de planificar.
func (s *Simulator) Run(operations []models.Operation) error {
	s.actions.Start("System Start")
	s.actions.Record("OS: Begin PCB Creation")

	table, err := BuildProcessTable(operations, s.config)
	if err != nil {
		slog.Error(fmt.Sprintf("No se pudo crear la tabla de procesos: %v", err))
		return err
	}
	s.table = table
	s.actions.Record("OS: All processes initialized in New state")

	for _, pcb := range s.table.All() {
		if err := TransitionProcessState(pcb, models.EstadoReady, s.timer.Elapsed()); err != nil {
			return err
		}
		s.queues.Ready.Add(pcb)
	}
	s.actions.Record("OS: All processes now set in Ready state")

	err = s.runScheduler()
	s.actions.End("System End")

	if err == nil {
		slog.Info(fmt.Sprintf("Simulación finalizada: %d procesos en %s seg", s.table.Size(), s.timer.Lap()))
	}
	return err
}

// runScheduler elige el ciclo de planificación según el algoritmo configurado.
func (s *Simulator) runScheduler() error {
	slog.Debug(fmt.Sprintf("Algoritmo de planificación: %s", s.config.CpuSchedulingCode))

	switch s.config.CpuSchedulingCode {
	case models.CodeFCFSN:
		return s.runNonPreemptive(s.selectFirstCome)
	case models.CodeSJFN:
		return s.runNonPreemptive(s.selectShortestJob)
	case models.CodeSRTFP:
		return s.runPreemptive(s.selectShortestRemaining)
	case models.CodeFCFSP, models.CodeRRP:
		return s.runPreemptive(s.selectFirstCome)
	default:
		slog.Warn("Algoritmo no reconocido", "codigo", s.config.CpuSchedulingCode)
		s.actions.Recordf("OS: %s Strategy is not yet implemented", s.config.CpuSchedulingCode)
		return fmt.Errorf("%w: %s", models.ErrUnimplementedPolicy, s.config.CpuSchedulingCode)
	}
}

// Entries devuelve el log de acciones de la corrida.
func (s *Simulator) Entries() []log.Entry {
	return s.actions.Entries()
}

// Processes devuelve los PCB de la corrida en orden de creación.
func (s *Simulator) Processes() []*models.PCB {
	return s.table.All()
}

func (s *Simulator) MMU() *memoriaServices.MMU {
	return s.mmu
}
