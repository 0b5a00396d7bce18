package models

import "fmt"

type OpKind int

const (
	SystemStart OpKind = iota
	SystemEnd
	AppStart
	AppEnd
	Run
	Input
	Output
	Allocate
	Access
)

type Component int

const (
	ComponentSystem Component = iota
	ComponentApplication
	ComponentCPU
	ComponentIO
	ComponentMemory
)

func (c Component) String() string {
	switch c {
	case ComponentSystem:
		return "System"
	case ComponentApplication:
		return "Application"
	case ComponentCPU:
		return "CPU"
	case ComponentIO:
		return "IO"
	default:
		return "Memory"
	}
}

// Operation es un opcode ya validado de la metadata. Device solo aplica a Input y Output.
type Operation struct {
	Kind   OpKind
	Value  int
	Device string
}

func (op Operation) Component() Component {
	switch op.Kind {
	case SystemStart, SystemEnd:
		return ComponentSystem
	case AppStart, AppEnd:
		return ComponentApplication
	case Run:
		return ComponentCPU
	case Input, Output:
		return ComponentIO
	default:
		return ComponentMemory
	}
}

// Command es la letra con la que se escribe el opcode en la metadata.
func (op Operation) Command() byte {
	switch op.Kind {
	case SystemStart, SystemEnd:
		return 'S'
	case AppStart, AppEnd:
		return 'A'
	case Run:
		return 'P'
	case Input:
		return 'I'
	case Output:
		return 'O'
	default:
		return 'M'
	}
}

func (op Operation) Name() string {
	switch op.Kind {
	case SystemStart, AppStart:
		return "start"
	case SystemEnd, AppEnd:
		return "end"
	case Run:
		return "run"
	case Input, Output:
		return op.Device
	case Allocate:
		return "allocate"
	default:
		return "access"
	}
}

// String devuelve el opcode tal como se escribe en la metadata, por ejemplo "P(run)11".
func (op Operation) String() string {
	if op.Component() == ComponentMemory {
		return fmt.Sprintf("%c(%s)%08d", op.Command(), op.Name(), op.Value)
	}
	return fmt.Sprintf("%c(%s)%d", op.Command(), op.Name(), op.Value)
}
