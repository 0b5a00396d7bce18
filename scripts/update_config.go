package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/sisoputnfrba/tp-simulador/utils/config"
)

// Para su uso se debe posicionar en la carpeta scripts
// > go run update_config.go cpu_scheduling_code RR-P quantum_cycles 3
// > go run update_config.go clock_mode SIMULATED log_to Monitor

// configDirs son las carpetas con configuraciones JSON que se actualizan.
var configDirs = []string{filepath.Join("..", "kernel", "configs")}

func main() {
	updates, err := parseUpdates(os.Args[1:])
	if err != nil {
		fmt.Println(err)
		fmt.Println("Uso: update_config <clave_1> <valor_1> [<clave_2> <valor_2> ...]")
		fmt.Println("Ejemplo: update_config cpu_scheduling_code SRTF-P processor_cycle_time 5")
		return
	}

	fmt.Println("Valores a actualizar:")
	for k, v := range updates {
		fmt.Printf("  %s: %v\n", k, v)
	}

	for _, dir := range configDirs {
		fmt.Printf("\nProcesando carpeta: %s\n", dir)

		err := filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
			if err != nil {
				fmt.Printf("  Error al acceder %s: %v\n", path, err)
				return nil
			}
			if info.IsDir() || filepath.Ext(path) != ".json" {
				return nil
			}

			modified, err := applyUpdates(path, updates)
			switch {
			case err != nil:
				fmt.Printf("  Error en el archivo %s: %v\n", path, err)
			case modified:
				fmt.Printf("  El archivo %s ha sido actualizado correctamente.\n", path)
			default:
				fmt.Printf("  No se encontraron claves a actualizar en %s.\n", path)
			}
			return nil
		})

		if err != nil {
			fmt.Printf("Error al buscar archivos en la carpeta %s: %v\n", dir, err)
		}
	}

	fmt.Println("\nProceso de actualización de configuraciones finalizado.")
}

// parseUpdates convierte "clave valor clave valor ..." en un mapa. Cada valor se interpreta
// como JSON (números, booleanos) y, si no lo es, se usa como string.
func parseUpdates(args []string) (map[string]interface{}, error) {
	if len(args) < 2 || len(args)%2 != 0 {
		return nil, fmt.Errorf("los argumentos deben venir de a pares clave valor")
	}

	updates := make(map[string]interface{})
	for i := 0; i < len(args); i += 2 {
		var parsedValue interface{}
		if err := json.Unmarshal([]byte(args[i+1]), &parsedValue); err != nil {
			parsedValue = args[i+1]
		}
		updates[args[i]] = parsedValue
	}
	return updates, nil
}

// applyUpdates reemplaza en el archivo solo las claves que ya existen. Devuelve si hubo cambios.
func applyUpdates(path string, updates map[string]interface{}) (bool, error) {
	var data map[string]interface{}
	if err := config.LoadConfig(path, &data); err != nil {
		return false, err
	}

	modified := false
	for updateKey, updateValue := range updates {
		if _, ok := data[updateKey]; ok {
			data[updateKey] = updateValue
			fmt.Printf("    Modificada '%s' en %s a '%v'\n", updateKey, path, updateValue)
			modified = true
		}
	}

	if !modified {
		return false, nil
	}
	return true, config.SaveConfig(path, data)
}
