package timer

import (
	"errors"
	"fmt"
	"sync"
	"time"
)

const (
	ModeSimulated = "SIMULATED"
	ModeReal      = "REAL"
)

var ErrUnknownClockMode = errors.New("modo de reloj desconocido")

// Clock es la fuente de tiempo del Timer. Sleep es la única forma de hacer avanzar un reloj simulado.
type Clock interface {
	Now() time.Duration
	Sleep(d time.Duration)
}

// SimulatedClock avanza instantáneamente: dormir d suma d al tiempo actual sin bloquear.
type SimulatedClock struct {
	mu  sync.Mutex
	now time.Duration
}

func (c *SimulatedClock) Now() time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *SimulatedClock) Sleep(d time.Duration) {
	if d <= 0 {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now += d
}

// RealClock mide tiempo de pared y bloquea al dormir.
type RealClock struct {
	origin time.Time
}

func NewRealClock() *RealClock {
	return &RealClock{origin: time.Now()}
}

func (c *RealClock) Now() time.Duration {
	return time.Since(c.origin)
}

func (c *RealClock) Sleep(d time.Duration) {
	if d > 0 {
		time.Sleep(d)
	}
}

// NewClock devuelve el reloj que corresponde al clock_mode de la configuración. Vacío equivale a REAL.
func NewClock(mode string) (Clock, error) {
	switch mode {
	case ModeSimulated:
		return &SimulatedClock{}, nil
	case ModeReal, "":
		return NewRealClock(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownClockMode, mode)
	}
}

// Timer es el único reloj de la simulación: estampa cada entrada del log de acciones
// y es el que se hace avanzar al simular ráfagas de CPU y de I/O.
type Timer struct {
	mu        sync.Mutex
	clock     Clock
	start     time.Duration
	stopped   bool
	stoppedAt time.Duration
}

func NewTimer(clock Clock) *Timer {
	t := &Timer{clock: clock}
	t.start = clock.Now()
	return t
}

// Reset vuelve el tiempo transcurrido a cero y rearma un timer detenido.
func (t *Timer) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.start = t.clock.Now()
	t.stopped = false
}

// Lap devuelve el tiempo transcurrido desde Reset formateado, sin reiniciar.
func (t *Timer) Lap() string {
	return Format(t.Elapsed())
}

// Stop congela el timer y devuelve el tiempo final.
func (t *Timer) Stop() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	if !t.stopped {
		t.stoppedAt = t.clock.Now()
		t.stopped = true
	}
	return Format(t.stoppedAt - t.start)
}

// Elapsed devuelve el tiempo transcurrido desde Reset (o hasta Stop).
func (t *Timer) Elapsed() time.Duration {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.stopped {
		return t.stoppedAt - t.start
	}
	return t.clock.Now() - t.start
}

// Advance deja pasar d de tiempo simulado.
func (t *Timer) Advance(d time.Duration) {
	t.clock.Sleep(d)
}

// AdvanceTo deja pasar el tiempo hasta que Elapsed alcance at. Si at ya pasó no hace nada.
func (t *Timer) AdvanceTo(at time.Duration) {
	if wait := at - t.Elapsed(); wait > 0 {
		t.clock.Sleep(wait)
	}
}

// Format representa d como segundos y microsegundos: "<seg>.<usec con 6 dígitos>".
func Format(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	usec := d.Microseconds()
	return fmt.Sprintf("%d.%06d", usec/1_000_000, usec%1_000_000)
}
