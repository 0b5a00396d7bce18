package helpers

import (
	"fmt"

	"github.com/sisoputnfrba/tp-simulador/memoria/models"
)

const (
	// MaxAddress es el mayor valor representable con 8 dígitos.
	MaxAddress = 99_999_999

	segmentFactor = 1_000_000
	baseFactor    = 1_000
)

// DecodeAddress separa un valor de 8 dígitos en segmento (2), base (3) y desplazamiento (3).
// Un valor más corto se interpreta completado con ceros a la izquierda: 34056 es 00|034|056.
//
// Ejemplo:
//
//	sid, base, offset, _ := helpers.DecodeAddress(12034056) // 12, 34, 56
func DecodeAddress(value int) (sid int, base int, offset int, err error) {
	if value < 0 || value > MaxAddress {
		return 0, 0, 0, fmt.Errorf("%w: %d", models.ErrInvalidAddress, value)
	}

	sid = value / segmentFactor
	base = (value / baseFactor) % baseFactor
	offset = value % baseFactor
	return sid, base, offset, nil
}

// EncodeAddress es la inversa de DecodeAddress.
func EncodeAddress(sid, base, offset int) int {
	return sid*segmentFactor + base*baseFactor + offset
}
