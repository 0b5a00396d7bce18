package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/sisoputnfrba/tp-simulador/kernel/models"
	"github.com/sisoputnfrba/tp-simulador/kernel/services"
	"github.com/sisoputnfrba/tp-simulador/utils/config"
	"github.com/sisoputnfrba/tp-simulador/utils/log"
	"github.com/sisoputnfrba/tp-simulador/utils/timer"
)

const (
	LogPath = "./logs/kernel.log"
)

// > go run ./kernel kernel/configs/kernel.json
func main() {
	if len(os.Args) < 2 {
		slog.Error("Falta el parametro necesario [archivo_configuracion]")
		os.Exit(1)
	}

	if err := run(os.Args[1], LogPath); err != nil {
		slog.Error(fmt.Sprintf("La simulación terminó con error: %v", err))
		os.Exit(1)
	}
}

func run(configPath string, logPath string) error {
	var kernelConfig models.Config
	if err := config.LoadConfig(configPath, &kernelConfig); err != nil {
		return errors.Join(models.ErrInvalidConfig, err)
	}
	if err := kernelConfig.Validate(); err != nil {
		return err
	}

	log.InitLogger(logPath, kernelConfig.LogLevel)
	slog.Debug(fmt.Sprintf("Configuración cargada: %+v", kernelConfig))

	operations, err := services.LoadMetadata(kernelConfig.MetadataFilePath)
	if err != nil {
		return err
	}

	out, closeSink, err := log.OpenActionSink(kernelConfig.LogTo, kernelConfig.LogFilePath)
	if err != nil {
		return err
	}
	defer func() {
		if err := closeSink(); err != nil {
			slog.Warn(fmt.Sprintf("No se pudo cerrar el log de acciones: %v", err))
		}
	}()

	clock, err := timer.NewClock(kernelConfig.ClockMode)
	if err != nil {
		return err
	}

	simulator := services.NewSimulator(&kernelConfig, clock, out)
	return simulator.Run(operations)
}
