package services

import (
	"fmt"
	"log/slog"

	"github.com/sisoputnfrba/tp-simulador/memoria/models"
)

// ReleaseAll elimina todos los segmentos del proceso y devuelve cuántos había.
// Se llama una única vez, cuando el proceso pasa a EXIT.
func (mmu *MMU) ReleaseAll(pid uint) int {
	mmu.memoryLock.Lock()
	defer mmu.memoryLock.Unlock()

	released := mmu.segments.RemoveAll(func(s models.Segment) bool {
		return s.PID == pid
	})

	slog.Debug(fmt.Sprintf("## PID: %d - Segmentos liberados: %d", pid, released))
	return released
}
