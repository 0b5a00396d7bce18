package services

import (
	"errors"
	"testing"

	"github.com/sisoputnfrba/tp-simulador/memoria/models"
)

func TestAllocate_Overlap(t *testing.T) {
	mmu := NewMMU(1000)

	if err := mmu.Allocate(0, 1, 0, 100); err != nil {
		t.Fatalf("Expected first allocation to succeed, got %v", err)
	}

	err := mmu.Allocate(0, 2, 50, 10)
	if !errors.Is(err, models.ErrSegmentOverlap) {
		t.Errorf("Expected ErrSegmentOverlap, got %v", err)
	}
	if !errors.Is(err, models.ErrSegmentationFault) {
		t.Errorf("Expected a segmentation fault, got %v", err)
	}

	if err := mmu.Allocate(0, 2, 100, 10); err != nil {
		t.Errorf("Expected adjacent allocation to succeed, got %v", err)
	}

	if mmu.Count() != 2 {
		t.Errorf("Expected 2 segments, got %d", mmu.Count())
	}
}

func TestAllocate_OverlapAcrossProcesses(t *testing.T) {
	mmu := NewMMU(1000)
	_ = mmu.Allocate(0, 1, 0, 100)

	if err := mmu.Allocate(1, 3, 99, 5); !errors.Is(err, models.ErrSegmentOverlap) {
		t.Errorf("Expected ErrSegmentOverlap, got %v", err)
	}
}

func TestAllocate_Bounds(t *testing.T) {
	mmu := NewMMU(1000)

	if err := mmu.Allocate(0, 1, 950, 100); !errors.Is(err, models.ErrOutOfBounds) {
		t.Errorf("Expected ErrOutOfBounds, got %v", err)
	}
	if err := mmu.Allocate(0, 1, -1, 10); !errors.Is(err, models.ErrOutOfBounds) {
		t.Errorf("Expected ErrOutOfBounds for negative base, got %v", err)
	}
	if err := mmu.Allocate(0, 1, 950, 50); err != nil {
		t.Errorf("Expected allocation up to the end of memory to succeed, got %v", err)
	}
}

func TestAllocate_SegmentIDInUse(t *testing.T) {
	mmu := NewMMU(1000)
	_ = mmu.Allocate(0, 7, 0, 10)

	if err := mmu.Allocate(0, 7, 500, 10); !errors.Is(err, models.ErrSegmentInUse) {
		t.Errorf("Expected ErrSegmentInUse for the same pid, got %v", err)
	}
	if err := mmu.Allocate(1, 7, 500, 10); !errors.Is(err, models.ErrSegmentInUse) {
		t.Errorf("Expected ErrSegmentInUse for another pid, got %v", err)
	}
}

func TestAccess_Containment(t *testing.T) {
	mmu := NewMMU(1000)
	_ = mmu.Allocate(0, 5, 100, 50)

	if err := mmu.Access(0, 5, 110, 20); err != nil {
		t.Errorf("Expected access inside the segment to succeed, got %v", err)
	}
	if err := mmu.Access(0, 5, 140, 20); !errors.Is(err, models.ErrAccessViolation) {
		t.Errorf("Expected ErrAccessViolation, got %v", err)
	}
	if err := mmu.Access(0, 5, 90, 5); !errors.Is(err, models.ErrAccessViolation) {
		t.Errorf("Expected ErrAccessViolation below base, got %v", err)
	}
	if err := mmu.Access(1, 5, 110, 20); !errors.Is(err, models.ErrSegmentNotFound) {
		t.Errorf("Expected ErrSegmentNotFound for another pid, got %v", err)
	}
}

func TestReleaseAll(t *testing.T) {
	mmu := NewMMU(1000)
	_ = mmu.Allocate(0, 1, 0, 100)
	_ = mmu.Allocate(1, 2, 100, 100)
	_ = mmu.Allocate(0, 3, 200, 100)

	if released := mmu.ReleaseAll(0); released != 2 {
		t.Errorf("Expected 2 segments released, got %d", released)
	}

	segments := mmu.Segments()
	if len(segments) != 1 || segments[0].PID != 1 || segments[0].SID != 2 {
		t.Errorf("Expected only pid 1 segment 2 to remain, got %v", segments)
	}

	if err := mmu.Access(0, 1, 0, 10); !errors.Is(err, models.ErrSegmentNotFound) {
		t.Errorf("Expected ErrSegmentNotFound after release, got %v", err)
	}

	// el sid liberado se puede volver a usar
	if err := mmu.Allocate(2, 1, 0, 100); err != nil {
		t.Errorf("Expected released range to be reusable, got %v", err)
	}

	if released := mmu.ReleaseAll(9); released != 0 {
		t.Errorf("Expected 0 segments released for unknown pid, got %d", released)
	}
}
