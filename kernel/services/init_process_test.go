package services

import (
	"errors"
	"testing"
	"time"

	"github.com/sisoputnfrba/tp-simulador/kernel/models"
)

func testConfig() *models.Config {
	return &models.Config{ProcessorCycleTime: 10, IoCycleTime: 20, MemoryAvailable: 1000}
}

func TestBuildProcessTable(t *testing.T) {
	ops := mustParse(t, "S(start)0; "+
		"A(start)0; P(run)3; I(keyboard)2; M(allocate)00000010; A(end)0; "+
		"A(start)0; O(monitor)1; A(end)0; S(end)0.")

	table, err := BuildProcessTable(ops, testConfig())
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	processes := table.All()
	if len(processes) != 2 {
		t.Fatalf("Expected 2 processes, got %d", len(processes))
	}

	first := processes[0]
	if first.PID != 0 || first.EstadoActual != models.EstadoNew {
		t.Errorf("Expected pid 0 in NEW, got %d in %s", first.PID, first.EstadoActual)
	}
	if len(first.Operations) != 4 || first.Operations[0].Kind != models.Run || first.Operations[3].Kind != models.AppEnd {
		t.Errorf("Expected operations after A(start) up to A(end), got %v", first.Operations)
	}
	if first.TotalTime != 70*time.Millisecond || first.RemainingTime != first.TotalTime {
		t.Errorf("Expected 70ms total (memory adds nothing), got %v", first.TotalTime)
	}

	second, found := table.Get(1)
	if !found || second.TotalTime != 20*time.Millisecond {
		t.Errorf("Expected pid 1 with 20ms, got %v", second)
	}
}

func TestBuildProcessTable_Malformed(t *testing.T) {
	cases := map[string][]models.Operation{
		"vacía": {},
		"sin S(start)": {
			{Kind: models.AppStart}, {Kind: models.AppEnd}, {Kind: models.SystemEnd},
		},
		"sin S(end)": {
			{Kind: models.SystemStart}, {Kind: models.AppStart}, {Kind: models.AppEnd},
		},
		"solo S(start)": {
			{Kind: models.SystemStart},
		},
		"A(start) sin cerrar": {
			{Kind: models.SystemStart}, {Kind: models.AppStart}, {Kind: models.Run, Value: 1},
			{Kind: models.AppStart}, {Kind: models.AppEnd}, {Kind: models.SystemEnd},
		},
		"A(end) sin abrir": {
			{Kind: models.SystemStart}, {Kind: models.AppEnd}, {Kind: models.SystemEnd},
		},
		"operación fuera de proceso": {
			{Kind: models.SystemStart}, {Kind: models.Run, Value: 1}, {Kind: models.SystemEnd},
		},
		"S(start) anidado": {
			{Kind: models.SystemStart}, {Kind: models.SystemStart}, {Kind: models.SystemEnd},
		},
		"último proceso sin cerrar": {
			{Kind: models.SystemStart}, {Kind: models.AppStart}, {Kind: models.SystemEnd},
		},
	}

	for name, ops := range cases {
		if _, err := BuildProcessTable(ops, testConfig()); !errors.Is(err, models.ErrMalformedSequence) {
			t.Errorf("%s: expected ErrMalformedSequence, got %v", name, err)
		}
	}
}

func TestTransitionProcessState(t *testing.T) {
	pcb := models.NewPCB(0)

	if err := TransitionProcessState(pcb, models.EstadoReady, 0); err != nil {
		t.Fatalf("Expected NEW -> READY, got %v", err)
	}
	if err := TransitionProcessState(pcb, models.EstadoRunning, 10*time.Millisecond); err != nil {
		t.Fatalf("Expected READY -> RUNNING, got %v", err)
	}
	if err := TransitionProcessState(pcb, models.EstadoExit, 40*time.Millisecond); err != nil {
		t.Fatalf("Expected RUNNING -> EXIT, got %v", err)
	}

	if pcb.MT[models.EstadoReady] != 10*time.Millisecond || pcb.MT[models.EstadoRunning] != 30*time.Millisecond {
		t.Errorf("Unexpected time per state %v", pcb.MT)
	}
	if pcb.ME[models.EstadoRunning] != 1 || pcb.ME[models.EstadoExit] != 1 {
		t.Errorf("Unexpected entries per state %v", pcb.ME)
	}

	err := TransitionProcessState(pcb, models.EstadoReady, 50*time.Millisecond)
	if !errors.Is(err, models.ErrInvalidTransition) {
		t.Errorf("Expected EXIT to be terminal, got %v", err)
	}
	if pcb.EstadoActual != models.EstadoExit {
		t.Errorf("Expected state to stay EXIT, got %s", pcb.EstadoActual)
	}
}
