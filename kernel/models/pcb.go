package models

import (
	"sync"
	"time"
)

type Estado string

const (
	EstadoNew     Estado = "NEW"
	EstadoReady   Estado = "READY"
	EstadoRunning Estado = "RUNNING"
	EstadoBlocked Estado = "BLOCKED"
	EstadoExit    Estado = "EXIT"
)

// transicionesValidas lista, para cada estado, a qué estados puede pasar un PCB.
var transicionesValidas = map[Estado][]Estado{
	EstadoNew:     {EstadoReady},
	EstadoReady:   {EstadoRunning},
	EstadoRunning: {EstadoBlocked, EstadoReady, EstadoExit},
	EstadoBlocked: {EstadoReady},
}

func CanTransition(from, to Estado) bool {
	for _, allowed := range transicionesValidas[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

type PCB struct {
	Mutex        sync.Mutex
	PID          uint
	EstadoActual Estado

	// TotalTime es la suma de los tiempos de CPU e I/O de todas sus operaciones; RemainingTime lo que falta.
	TotalTime     time.Duration
	RemainingTime time.Duration

	// Operations va desde la operación siguiente a A(start) hasta A(end) inclusive.
	Operations []Operation
	Cursor     int

	// InProgress y RemainingCycles describen una operación de CPU desalojada a mitad de camino.
	InProgress       bool
	RemainingCycles  int
	RemainingQuantum int

	// Métricas: ME cantidad de veces en cada estado, MT tiempo de simulación en cada estado.
	ME           map[Estado]int
	MT           map[Estado]time.Duration
	UltimoCambio time.Duration
}

func NewPCB(pid uint) *PCB {
	return &PCB{
		PID:          pid,
		EstadoActual: EstadoNew,
		ME:           map[Estado]int{EstadoNew: 1},
		MT:           make(map[Estado]time.Duration),
	}
}

// CurrentOperation devuelve la operación bajo el cursor.
func (pcb *PCB) CurrentOperation() (Operation, bool) {
	if pcb.Finished() {
		return Operation{}, false
	}
	return pcb.Operations[pcb.Cursor], true
}

func (pcb *PCB) Advance() {
	pcb.Cursor++
	pcb.InProgress = false
	pcb.RemainingCycles = 0
}

func (pcb *PCB) Finished() bool {
	return pcb.Cursor >= len(pcb.Operations)
}
