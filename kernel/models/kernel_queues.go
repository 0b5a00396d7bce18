package models

import (
	ioModels "github.com/sisoputnfrba/tp-simulador/io/models"
	"github.com/sisoputnfrba/tp-simulador/utils/list"
)

// Interrupt avisa que terminó la ráfaga de I/O de un proceso bloqueado.
// PCB apunta al proceso dentro de la tabla, que sigue siendo su dueña.
type Interrupt struct {
	PCB     *PCB
	Request ioModels.IORequest
}

/* ---------- Colas de estados ----------> */

type Queues struct {
	Ready      *list.ArrayList[*PCB]
	Interrupts *list.ArrayList[Interrupt]
}

func NewQueues() *Queues {
	return &Queues{
		Ready:      list.NewArrayList[*PCB](),
		Interrupts: list.NewArrayList[Interrupt](),
	}
}

// ProcessTable es la dueña de todos los PCB de la corrida, en orden de creación.
type ProcessTable struct {
	processes *list.ArrayList[*PCB]
}

func NewProcessTable() *ProcessTable {
	return &ProcessTable{processes: list.NewArrayList[*PCB]()}
}

func (t *ProcessTable) Add(pcb *PCB) {
	t.processes.Add(pcb)
}

func (t *ProcessTable) Get(pid uint) (*PCB, bool) {
	pcb, _, found := t.processes.Find(func(p *PCB) bool { return p.PID == pid })
	return pcb, found
}

func (t *ProcessTable) All() []*PCB {
	return t.processes.GetAll()
}

func (t *ProcessTable) Size() int {
	return t.processes.Size()
}

// AllExit indica si todos los procesos llegaron a EXIT. Una tabla vacía cuenta como terminada.
func (t *ProcessTable) AllExit() bool {
	_, _, pending := t.processes.Find(func(p *PCB) bool { return p.EstadoActual != EstadoExit })
	return !pending
}
