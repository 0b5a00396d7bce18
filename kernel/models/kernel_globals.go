package models

import (
	"errors"
	"fmt"
	"time"

	"github.com/sisoputnfrba/tp-simulador/utils/log"
	"github.com/sisoputnfrba/tp-simulador/utils/timer"
)

// Códigos de planificación de CPU.
const (
	CodeFCFSN = "FCFS-N"
	CodeSJFN  = "SJF-N"
	CodeSRTFP = "SRTF-P"
	CodeFCFSP = "FCFS-P"
	CodeRRP   = "RR-P"
	CodeNone  = "NONE"
)

var (
	ErrInvalidConfig       = errors.New("configuración inválida")
	ErrInvalidMetadata     = errors.New("metadata inválida")
	ErrMalformedSequence   = errors.New("secuencia de operaciones mal formada")
	ErrUnimplementedPolicy = errors.New("algoritmo de planificación no implementado")
	ErrInvalidTransition   = errors.New("transición de estado inválida")
)

type Config struct {
	Version            int    `json:"version"`
	MetadataFilePath   string `json:"metadata_file_path"`
	CpuSchedulingCode  string `json:"cpu_scheduling_code"`
	QuantumCycles      int    `json:"quantum_cycles"`
	MemoryAvailable    int    `json:"memory_available"`
	ProcessorCycleTime int    `json:"processor_cycle_time"`
	IoCycleTime        int    `json:"io_cycle_time"`
	LogTo              string `json:"log_to"`
	LogFilePath        string `json:"log_file_path"`
	LogLevel           string `json:"log_level"`
	ClockMode          string `json:"clock_mode"`
}

type fieldRange struct {
	name     string
	value    int
	min, max int
}

// Validate controla los rangos de cada campo y normaliza el código NONE a FCFS-N.
// Todos los errores envuelven ErrInvalidConfig.
func (c *Config) Validate() error {
	ranges := []fieldRange{
		{"version", c.Version, 0, 10},
		{"quantum_cycles", c.QuantumCycles, 0, 100},
		{"memory_available", c.MemoryAvailable, 0, 1_048_576},
		{"processor_cycle_time", c.ProcessorCycleTime, 1, 1_000},
		{"io_cycle_time", c.IoCycleTime, 1, 10_000},
	}
	for _, r := range ranges {
		if r.value < r.min || r.value > r.max {
			return fmt.Errorf("%w: %s=%d fuera de rango [%d, %d]", ErrInvalidConfig, r.name, r.value, r.min, r.max)
		}
	}

	switch c.CpuSchedulingCode {
	case CodeNone:
		c.CpuSchedulingCode = CodeFCFSN
	case CodeFCFSN, CodeSJFN, CodeSRTFP, CodeFCFSP, CodeRRP:
	default:
		return fmt.Errorf("%w: cpu_scheduling_code %q desconocido", ErrInvalidConfig, c.CpuSchedulingCode)
	}

	if c.CpuSchedulingCode == CodeRRP && c.QuantumCycles < 1 {
		return fmt.Errorf("%w: %s necesita quantum_cycles >= 1", ErrInvalidConfig, CodeRRP)
	}

	switch c.LogTo {
	case log.SinkMonitor:
	case log.SinkFile, log.SinkBoth:
		if c.LogFilePath == "" {
			return fmt.Errorf("%w: log_to %s necesita log_file_path", ErrInvalidConfig, c.LogTo)
		}
	default:
		return fmt.Errorf("%w: log_to %q desconocido", ErrInvalidConfig, c.LogTo)
	}

	switch c.ClockMode {
	case "", timer.ModeReal, timer.ModeSimulated:
	default:
		return fmt.Errorf("%w: clock_mode %q desconocido", ErrInvalidConfig, c.ClockMode)
	}

	if c.MetadataFilePath == "" {
		return fmt.Errorf("%w: falta metadata_file_path", ErrInvalidConfig)
	}

	return nil
}

func (c *Config) CpuCycle() time.Duration {
	return time.Duration(c.ProcessorCycleTime) * time.Millisecond
}

func (c *Config) IoCycle() time.Duration {
	return time.Duration(c.IoCycleTime) * time.Millisecond
}

// Preemptive indica si el algoritmo corre con el ejecutor expropiativo.
func (c *Config) Preemptive() bool {
	switch c.CpuSchedulingCode {
	case CodeSRTFP, CodeFCFSP, CodeRRP:
		return true
	}
	return false
}

// QuantumEnabled es verdadero solo para RR-P; SRTF-P y FCFS-P no se desalojan por quantum.
func (c *Config) QuantumEnabled() bool {
	return c.CpuSchedulingCode == CodeRRP
}
