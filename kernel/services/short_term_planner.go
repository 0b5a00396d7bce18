package services

import (
	"github.com/sisoputnfrba/tp-simulador/kernel/models"
)

// selector saca de la cola READY el próximo proceso a ejecutar, o nil si está vacía.
type selector func() *models.PCB

// selectFirstCome toma la cabeza de la cola READY (FCFS-N, FCFS-P y RR-P).
func (s *Simulator) selectFirstCome() *models.PCB {
	pcb, err := s.queues.Ready.Dequeue()
	if err != nil {
		return nil
	}
	return pcb
}

// selectShortestJob toma el de menor tiempo total; ante empate gana el primero de la cola.
func (s *Simulator) selectShortestJob() *models.PCB {
	return s.removeMin(func(pcb *models.PCB) int64 { return int64(pcb.TotalTime) })
}

// selectShortestRemaining toma el de menor tiempo restante; ante empate gana el primero de la cola.
func (s *Simulator) selectShortestRemaining() *models.PCB {
	return s.removeMin(func(pcb *models.PCB) int64 { return int64(pcb.RemainingTime) })
}

func (s *Simulator) removeMin(key func(*models.PCB) int64) *models.PCB {
	candidate := shortest(s.queues.Ready.GetAll(), key)
	if candidate == nil {
		return nil
	}
	s.queues.Ready.RemoveWhere(func(pcb *models.PCB) bool { return pcb == candidate })
	return candidate
}

// shortest recorre en orden y se queda con el primer valor estrictamente menor.
func shortest(processes []*models.PCB, key func(*models.PCB) int64) *models.PCB {
	var selected *models.PCB
	for _, pcb := range processes {
		if selected == nil || key(pcb) < key(selected) {
			selected = pcb
		}
	}
	return selected
}
