package models

// Outcome es el motivo por el que el ejecutor devuelve la CPU al planificador.
type Outcome int

const (
	// OutcomeFinished: se consumió A(end), el proceso terminó normalmente.
	OutcomeFinished Outcome = iota
	// OutcomeFault: una operación de memoria falló, el proceso termina por segmentation fault.
	OutcomeFault
	// OutcomeBlocked: arrancó una ráfaga de I/O y el proceso espera su interrupción.
	OutcomeBlocked
	// OutcomeQuantumExpired: se agotó el quantum (solo RR-P).
	OutcomeQuantumExpired
	// OutcomePreempted: otro proceso READY tiene menos tiempo restante (solo SRTF-P).
	OutcomePreempted
)

func (o Outcome) String() string {
	switch o {
	case OutcomeFinished:
		return "FINISHED"
	case OutcomeFault:
		return "FAULT"
	case OutcomeBlocked:
		return "BLOCKED"
	case OutcomeQuantumExpired:
		return "QUANTUM_EXPIRED"
	case OutcomePreempted:
		return "PREEMPTED"
	default:
		return "UNKNOWN"
	}
}

// Exits indica si el proceso debe pasar a EXIT.
func (o Outcome) Exits() bool {
	return o == OutcomeFinished || o == OutcomeFault
}
