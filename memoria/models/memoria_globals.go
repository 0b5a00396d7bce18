package models

import (
	"errors"
	"fmt"
)

// ErrSegmentationFault es la falla base de toda operación de memoria rechazada.
var ErrSegmentationFault = errors.New("segmentation fault")

var (
	ErrOutOfBounds     = fmt.Errorf("%w: segmento fuera de los límites de memoria", ErrSegmentationFault)
	ErrSegmentInUse    = fmt.Errorf("%w: el id de segmento ya está asignado", ErrSegmentationFault)
	ErrSegmentOverlap  = fmt.Errorf("%w: el rango se superpone con otro segmento", ErrSegmentationFault)
	ErrSegmentNotFound = fmt.Errorf("%w: no existe el segmento para el proceso", ErrSegmentationFault)
	ErrAccessViolation = fmt.Errorf("%w: el acceso excede el segmento", ErrSegmentationFault)
	ErrInvalidAddress  = fmt.Errorf("%w: dirección inválida", ErrSegmentationFault)
)

// Segment es una asignación activa de memoria: [Base, Base+Length) a nombre de (PID, SID).
type Segment struct {
	PID    uint
	SID    int
	Base   int
	Length int
}

func (s Segment) End() int {
	return s.Base + s.Length
}

// Overlaps indica si [base, base+length) comparte alguna posición con el segmento.
func (s Segment) Overlaps(base, length int) bool {
	return base < s.End() && s.Base < base+length
}

// Contains indica si [base, base+length) queda completamente dentro del segmento.
func (s Segment) Contains(base, length int) bool {
	return base >= s.Base && base+length <= s.End()
}

func (s Segment) String() string {
	return fmt.Sprintf("%d/%d/%d", s.SID, s.Base, s.Length)
}
