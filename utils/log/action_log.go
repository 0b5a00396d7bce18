package log

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync"
)

// Destinos posibles del log de acciones (clave log_to de la configuración).
const (
	SinkMonitor = "Monitor"
	SinkFile    = "File"
	SinkBoth    = "Both"
)

var ErrUnknownSink = errors.New("destino de log desconocido")

// Stopwatch es el reloj que estampa cada entrada.
type Stopwatch interface {
	Reset()
	Lap() string
	Stop() string
}

// Entry es una línea del log de acciones. No se modifica una vez creada.
type Entry struct {
	Timestamp string
	Text      string
}

func (e Entry) String() string {
	return fmt.Sprintf("Time: %s, %s", e.Timestamp, e.Text)
}

// ActionLog es la secuencia ordenada de acciones de la simulación.
// Cada entrada se escribe en el destino en el mismo momento en que se produce.
type ActionLog struct {
	mu      sync.Mutex
	clock   Stopwatch
	out     io.Writer
	entries []Entry
}

func NewActionLog(clock Stopwatch, out io.Writer) *ActionLog {
	if out == nil {
		out = io.Discard
	}
	return &ActionLog{clock: clock, out: out}
}

// Start reinicia el reloj y registra la primera entrada.
func (l *ActionLog) Start(text string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.clock.Reset()
	l.append(l.clock.Lap(), text)
}

// End detiene el reloj y registra la última entrada con el tiempo final.
func (l *ActionLog) End(text string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.append(l.clock.Stop(), text)
}

func (l *ActionLog) Record(text string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.append(l.clock.Lap(), text)
}

func (l *ActionLog) Recordf(format string, args ...any) {
	l.Record(fmt.Sprintf(format, args...))
}

func (l *ActionLog) append(timestamp, text string) {
	entry := Entry{Timestamp: timestamp, Text: text}
	l.entries = append(l.entries, entry)
	if _, err := fmt.Fprintln(l.out, entry.String()); err != nil {
		slog.Warn("No se pudo escribir la entrada del log de acciones", "error", err)
	}
}

// Entries devuelve una copia de las entradas en orden cronológico.
func (l *ActionLog) Entries() []Entry {
	l.mu.Lock()
	defer l.mu.Unlock()
	entries := make([]Entry, len(l.entries))
	copy(entries, l.entries)
	return entries
}

func (l *ActionLog) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.entries)
}

// OpenActionSink arma el destino del log de acciones según log_to.
// El archivo se trunca al abrirse; la función devuelta lo cierra.
func OpenActionSink(logTo string, filePath string) (io.Writer, func() error, error) {
	noop := func() error { return nil }

	switch logTo {
	case SinkMonitor:
		return os.Stdout, noop, nil
	case SinkFile, SinkBoth:
		file, err := os.Create(filePath)
		if err != nil {
			return nil, noop, fmt.Errorf("no se pudo abrir el archivo de log %s: %w", filePath, err)
		}
		if logTo == SinkFile {
			return file, file.Close, nil
		}
		return io.MultiWriter(os.Stdout, file), file.Close, nil
	default:
		return nil, noop, fmt.Errorf("%w: %q", ErrUnknownSink, logTo)
	}
}
