package services

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/sisoputnfrba/tp-simulador/memoria/models"
	"github.com/sisoputnfrba/tp-simulador/utils/list"
)

// MMU administra el conjunto de segmentos activos sobre una memoria de tamaño fijo.
// Todas las operaciones se serializan con memoryLock, así el chequeo de superposición
// y la inserción ocurren sin que otra operación modifique el conjunto en el medio.
type MMU struct {
	memoryLock  sync.Mutex
	totalMemory int
	segments    *list.ArrayList[models.Segment]
}

func NewMMU(totalMemory int) *MMU {
	return &MMU{
		totalMemory: totalMemory,
		segments:    list.NewArrayList[models.Segment](),
	}
}

func (mmu *MMU) TotalMemory() int {
	return mmu.totalMemory
}

// Allocate reserva [base, base+length) como segmento sid del proceso pid.
// Falla si el rango sale de la memoria, si el sid ya está en uso (por cualquier proceso)
// o si el rango se superpone con otro segmento activo.
func (mmu *MMU) Allocate(pid uint, sid, base, length int) error {
	mmu.memoryLock.Lock()
	defer mmu.memoryLock.Unlock()

	if base < 0 || length < 0 || base+length > mmu.totalMemory {
		return fmt.Errorf("%w: PID %d pide %d/%d/%d con memoria total %d", models.ErrOutOfBounds, pid, sid, base, length, mmu.totalMemory)
	}

	if owner, _, found := mmu.segments.Find(func(s models.Segment) bool { return s.SID == sid }); found {
		return fmt.Errorf("%w: segmento %d pertenece al PID %d", models.ErrSegmentInUse, sid, owner.PID)
	}

	if other, _, found := mmu.segments.Find(func(s models.Segment) bool { return s.Overlaps(base, length) }); found {
		return fmt.Errorf("%w: %d/%d/%d choca con %s del PID %d", models.ErrSegmentOverlap, sid, base, length, other, other.PID)
	}

	mmu.segments.Add(models.Segment{PID: pid, SID: sid, Base: base, Length: length})
	slog.Debug("Segmento asignado", "pid", pid, "sid", sid, "base", base, "length", length)
	return nil
}

// Access valida que [base, base+length) quede dentro del segmento sid del proceso pid.
func (mmu *MMU) Access(pid uint, sid, base, length int) error {
	mmu.memoryLock.Lock()
	defer mmu.memoryLock.Unlock()

	segment, _, found := mmu.segments.Find(func(s models.Segment) bool {
		return s.PID == pid && s.SID == sid
	})
	if !found {
		return fmt.Errorf("%w: PID %d segmento %d", models.ErrSegmentNotFound, pid, sid)
	}

	if !segment.Contains(base, length) {
		return fmt.Errorf("%w: %d/%d/%d fuera de %s", models.ErrAccessViolation, sid, base, length, segment)
	}

	return nil
}

// Segments devuelve una copia de los segmentos activos en orden de asignación.
func (mmu *MMU) Segments() []models.Segment {
	mmu.memoryLock.Lock()
	defer mmu.memoryLock.Unlock()
	return mmu.segments.GetAll()
}

func (mmu *MMU) Count() int {
	mmu.memoryLock.Lock()
	defer mmu.memoryLock.Unlock()
	return mmu.segments.Size()
}
