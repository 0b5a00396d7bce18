package list

import (
	"testing"
)

type job struct {
	pid       uint
	remaining int
}

var jobs ArrayList[*job]

func TestArrayList(t *testing.T) {
	setupJobs()

	if jobs.Size() != 3 {
		t.Errorf("Expected size 3, got %d", jobs.Size())
	}

	value, err := jobs.Dequeue()
	if err != nil || value.pid != 0 {
		t.Errorf("Expected pid 0 at index 0, got %d", value.pid)
	}

	size := jobs.Size()
	if size != 2 {
		t.Errorf("Expected size 2, got %d", size)
	}

	value, err = jobs.Get(0)
	if err != nil || value.pid != 1 {
		t.Errorf("Expected pid 1 at index 0, got %d", value.pid)
	}
}

func TestArrayList_PointerItemsAreShared(t *testing.T) {
	setupJobs()

	target, _, found := jobs.Find(func(j *job) bool {
		return j.pid == 2
	})
	if !found {
		t.Fatalf("Expected to find pid 2")
	}

	target.remaining = 0

	removed, ok := jobs.RemoveWhere(func(j *job) bool {
		return j.remaining == 0
	})
	if !ok || removed.pid != 2 {
		t.Errorf("Expected to remove pid 2, got %v", removed)
	}
}

func setupJobs() {
	jobs = ArrayList[*job]{}
	for i := 0; i < 3; i++ {
		jobs.Add(&job{
			pid:       uint(i),
			remaining: (i + 1) * 10,
		})
	}
}
