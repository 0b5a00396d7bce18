package services

import (
	"container/heap"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/sisoputnfrba/tp-simulador/io/models"
)

// requestHeap ordena las ráfagas pendientes por vencimiento y, a igual vencimiento, por orden de inicio.
type requestHeap []models.IORequest

func (h requestHeap) Len() int { return len(h) }

func (h requestHeap) Less(i, j int) bool {
	if h[i].Due != h[j].Due {
		return h[i].Due < h[j].Due
	}
	return h[i].Seq < h[j].Seq
}

func (h requestHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *requestHeap) Push(x any) { *h = append(*h, x.(models.IORequest)) }

func (h *requestHeap) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

// DeviceManager lleva las ráfagas de I/O que están corriendo en segundo plano.
// Una ráfaga iniciada siempre termina y se entrega exactamente una vez por Completed.
type DeviceManager struct {
	mx      sync.Mutex
	pending requestHeap
	nextSeq uint64
}

func NewDeviceManager() *DeviceManager {
	return &DeviceManager{}
}

// Start registra la ráfaga con vencimiento now + Duration y la devuelve con Due y Seq completos.
func (dm *DeviceManager) Start(request models.IORequest, now time.Duration) models.IORequest {
	dm.mx.Lock()
	defer dm.mx.Unlock()

	request.Due = now + request.Duration
	request.Seq = dm.nextSeq
	dm.nextSeq++
	heap.Push(&dm.pending, request)

	slog.Debug(fmt.Sprintf("## (%d) - Inicio de IO %s, vence en %v", request.PID, request.Label(), request.Due))
	return request
}

// Completed saca y devuelve, en orden de vencimiento, todas las ráfagas vencidas a now.
func (dm *DeviceManager) Completed(now time.Duration) []models.IORequest {
	dm.mx.Lock()
	defer dm.mx.Unlock()

	var done []models.IORequest
	for dm.pending.Len() > 0 && dm.pending[0].Due <= now {
		request := heap.Pop(&dm.pending).(models.IORequest)
		slog.Debug(fmt.Sprintf("## (%d) - Fin de IO %s", request.PID, request.Label()))
		done = append(done, request)
	}
	return done
}

// NextCompletion informa el vencimiento más próximo, si hay ráfagas pendientes.
func (dm *DeviceManager) NextCompletion() (time.Duration, bool) {
	dm.mx.Lock()
	defer dm.mx.Unlock()

	if dm.pending.Len() == 0 {
		return 0, false
	}
	return dm.pending[0].Due, true
}

func (dm *DeviceManager) Pending() int {
	dm.mx.Lock()
	defer dm.mx.Unlock()
	return dm.pending.Len()
}
