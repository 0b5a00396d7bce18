package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sisoputnfrba/tp-simulador/utils/config"
)

func TestParseUpdates(t *testing.T) {
	updates, err := parseUpdates([]string{"quantum_cycles", "7", "cpu_scheduling_code", "SRTF-P"})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if updates["quantum_cycles"] != float64(7) {
		t.Errorf("Expected quantum_cycles to be parsed as a number, got %v", updates["quantum_cycles"])
	}
	if updates["cpu_scheduling_code"] != "SRTF-P" {
		t.Errorf("Expected the code to stay a string, got %v", updates["cpu_scheduling_code"])
	}

	if _, err := parseUpdates([]string{"solo_clave"}); err == nil {
		t.Error("Expected error for an odd number of arguments")
	}
}

func TestApplyUpdates(t *testing.T) {
	path := filepath.Join(t.TempDir(), "kernel.json")
	if err := os.WriteFile(path, []byte(`{"quantum_cycles": 3, "log_to": "Both"}`), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	modified, err := applyUpdates(path, map[string]interface{}{"quantum_cycles": float64(9), "no_existe": "x"})
	if err != nil || !modified {
		t.Fatalf("Expected the file to be modified, got %v (%v)", modified, err)
	}

	var data map[string]interface{}
	if err := config.LoadConfig(path, &data); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if data["quantum_cycles"] != float64(9) || data["log_to"] != "Both" {
		t.Errorf("Unexpected content %v", data)
	}
	if _, ok := data["no_existe"]; ok {
		t.Error("Expected unknown keys not to be added")
	}

	modified, err = applyUpdates(path, map[string]interface{}{"no_existe": "x"})
	if err != nil || modified {
		t.Errorf("Expected no modification, got %v (%v)", modified, err)
	}
}
