package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// InitConfig lee el archivo de configuración y retorna sus valores en la variable config. En caso de error finaliza con panic.
//
// Parámetros:
//   - filePath: ubicacion donde se encuentra el archivo de configuracion
//   - config: puntero a cualquier tipo de estructura
//
// Ejemplo:
//
//	type TestConfig struct {
//		Name  string `json:"name"`
//		Value int    `json:"value"`
//	}
//	func main() {
//		var testConfig TestConfig
//		config.InitConfig("./test.json", &testConfig)
//	}
func InitConfig(filePath string, config interface{}) {
	if err := LoadConfig(filePath, config); err != nil {
		panic(err)
	}
}

// LoadConfig es la variante de InitConfig que devuelve el error en lugar de finalizar.
// Los campos desconocidos en el archivo se rechazan, así un typo en una clave no pasa desapercibido.
func LoadConfig(filePath string, config interface{}) error {
	if err := setupConfig(filePath, config); err != nil {
		return fmt.Errorf("error al configurar el archivo %s: %w", filePath, err)
	}
	return nil
}

func setupConfig(filePath string, config interface{}) error {
	configFile, err := os.Open(filePath)

	if err != nil {
		return err
	}

	defer configFile.Close()

	jsonParser := json.NewDecoder(configFile)
	jsonParser.DisallowUnknownFields()

	if err := jsonParser.Decode(config); err != nil {
		return err
	}

	return nil
}

// SaveConfig escribe la estructura en formato JSON indentado, reemplazando el contenido del archivo.
func SaveConfig(filePath string, config interface{}) error {
	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filePath, append(data, '\n'), 0644)
}
