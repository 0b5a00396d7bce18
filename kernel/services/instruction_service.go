package services

import (
	"fmt"
	"io"
	"os"
	"regexp"
	"strconv"
	"strings"

	ioModels "github.com/sisoputnfrba/tp-simulador/io/models"
	"github.com/sisoputnfrba/tp-simulador/kernel/models"
)

const (
	metadataHeader = "Start Program Meta-Data Code:"
	metadataFooter = "End Program Meta-Data Code."
	memoryDigits   = 8
)

// opcodePattern reconoce C(operación)valor, por ejemplo "I(hard drive)18".
var opcodePattern = regexp.MustCompile(`^([SAPIOM])\(([a-z ]+)\)([0-9]+)$`)

// LoadMetadata abre y parsea el archivo de metadata.
func LoadMetadata(path string) ([]models.Operation, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: no se pudo abrir %s: %v", models.ErrInvalidMetadata, path, err)
	}
	defer file.Close()

	return ParseMetadata(file)
}

// ParseMetadata lee el formato:
//
//	Start Program Meta-Data Code:
//	S(start)0; A(start)0; P(run)11; ...; S(end)0.
//	End Program Meta-Data Code.
//
// Los opcodes se separan con ';' y el último termina con '.'.
func ParseMetadata(r io.Reader) ([]models.Operation, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrInvalidMetadata, err)
	}

	text := strings.TrimSpace(string(data))
	if !strings.HasPrefix(text, metadataHeader) {
		return nil, fmt.Errorf("%w: falta la línea %q", models.ErrInvalidMetadata, metadataHeader)
	}
	if !strings.HasSuffix(text, metadataFooter) {
		return nil, fmt.Errorf("%w: falta la línea %q", models.ErrInvalidMetadata, metadataFooter)
	}

	body := strings.TrimSpace(strings.TrimSuffix(strings.TrimPrefix(text, metadataHeader), metadataFooter))
	if !strings.HasSuffix(body, ".") {
		return nil, fmt.Errorf("%w: la última operación debe terminar con '.'", models.ErrInvalidMetadata)
	}
	body = strings.TrimSuffix(body, ".")

	var operations []models.Operation
	for i, token := range strings.Split(body, ";") {
		op, err := parseOpcode(strings.TrimSpace(token))
		if err != nil {
			return nil, fmt.Errorf("%w (opcode %d)", err, i+1)
		}
		operations = append(operations, op)
	}

	return operations, nil
}

func parseOpcode(token string) (models.Operation, error) {
	match := opcodePattern.FindStringSubmatch(token)
	if match == nil {
		return models.Operation{}, fmt.Errorf("%w: opcode %q mal escrito", models.ErrInvalidMetadata, token)
	}

	command, name, digits := match[1], match[2], match[3]
	value, err := strconv.Atoi(digits)
	if err != nil {
		return models.Operation{}, fmt.Errorf("%w: valor %q: %v", models.ErrInvalidMetadata, digits, err)
	}

	op := models.Operation{Value: value}
	switch command {
	case "S", "A":
		startKind, endKind := models.SystemStart, models.SystemEnd
		if command == "A" {
			startKind, endKind = models.AppStart, models.AppEnd
		}
		switch name {
		case "start":
			op.Kind = startKind
		case "end":
			op.Kind = endKind
		default:
			return models.Operation{}, invalidName(command, name)
		}

	case "P":
		if name != "run" {
			return models.Operation{}, invalidName(command, name)
		}
		op.Kind = models.Run

	case "I":
		if name != ioModels.DeviceHardDrive && name != ioModels.DeviceKeyboard {
			return models.Operation{}, invalidName(command, name)
		}
		op.Kind, op.Device = models.Input, name

	case "O":
		if name != ioModels.DeviceHardDrive && name != ioModels.DevicePrinter && name != ioModels.DeviceMonitor {
			return models.Operation{}, invalidName(command, name)
		}
		op.Kind, op.Device = models.Output, name

	case "M":
		switch name {
		case "allocate":
			op.Kind = models.Allocate
		case "access":
			op.Kind = models.Access
		default:
			return models.Operation{}, invalidName(command, name)
		}
		if len(digits) != memoryDigits {
			return models.Operation{}, fmt.Errorf("%w: %s necesita %d dígitos, tiene %q", models.ErrInvalidMetadata, token, memoryDigits, digits)
		}
	}

	return op, nil
}

func invalidName(command, name string) error {
	return fmt.Errorf("%w: operación %q no válida para el comando %s", models.ErrInvalidMetadata, name, command)
}
