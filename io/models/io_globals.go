package models

import (
	"fmt"
	"time"
)

// Dispositivos reconocidos en la metadata.
const (
	DeviceHardDrive = "hard drive"
	DeviceKeyboard  = "keyboard"
	DevicePrinter   = "printer"
	DeviceMonitor   = "monitor"
)

type Direction int

const (
	Input Direction = iota
	Output
)

func (d Direction) String() string {
	if d == Output {
		return "output"
	}
	return "input"
}

// IORequest es una ráfaga de I/O en curso. Due es el instante (tiempo de simulación)
// en que termina; Seq desempata ráfagas que vencen en el mismo instante por orden de inicio.
type IORequest struct {
	PID       uint
	Device    string
	Direction Direction
	Duration  time.Duration
	Due       time.Duration
	Seq       uint64
}

// Label es el texto con el que se loguea la ráfaga: "<dispositivo> <input|output>".
func (r IORequest) Label() string {
	return fmt.Sprintf("%s %s", r.Device, r.Direction)
}
