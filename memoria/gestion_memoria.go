package memoria

import (
	"fmt"
	"log/slog"

	"github.com/sisoputnfrba/simulador-so-Los-magiOS/models"
)

// pageAccess es una entrada del historial de accesos de un proceso.
type pageAccess struct {
	Page int
	Time int
}

// Manager administra los marcos físicos simulados: residencia de páginas por
// proceso, historial de accesos y reemplazo según el algoritmo configurado.
// Toda la expulsión es local al proceso: nunca se desaloja una página de
// otro PID.
type Manager struct {
	frameLimit int
	algorithm  string

	// Reloj lógico global: un tick por acceso, no por ronda de
	// planificación. Alimenta las decisiones de LRU.
	clock int

	resident  map[int]map[int]bool // pid -> conjunto de páginas residentes
	insertion map[int][]int        // pid -> páginas residentes en orden de llegada
	history   map[int][]pageAccess // pid -> historial de accesos (append-only)

	// lookahead expone el sufijo de referencias aún no ejecutado de un
	// proceso. Es la única ruptura del diseño causal y solo la consume el
	// algoritmo OPT.
	lookahead func(pid int) []int

	faults   int
	accesses int
}

// NewManager construye el administrador de memoria. El límite de marcos y el
// algoritmo quedan fijos para toda la corrida.
func NewManager(frameLimit int, algorithm string) (*Manager, error) {
	if frameLimit <= 0 {
		return nil, fmt.Errorf("%w: frame_limit debe ser mayor a 0, se recibió %d",
			models.ErrInvalidConfiguration, frameLimit)
	}

	switch algorithm {
	case models.AlgoritmoFIFO, models.AlgoritmoLRU, models.AlgoritmoOPT, models.AlgoritmoLFR:
	default:
		return nil, fmt.Errorf("%w: algoritmo de reemplazo desconocido %q",
			models.ErrInvalidConfiguration, algorithm)
	}

	return &Manager{
		frameLimit: frameLimit,
		algorithm:  algorithm,
		resident:   make(map[int]map[int]bool),
		insertion:  make(map[int][]int),
		history:    make(map[int][]pageAccess),
	}, nil
}

// SetLookahead registra la función que devuelve, para un PID, las páginas
// que el proceso todavía no referenció. Requerida únicamente por OPT.
func (m *Manager) SetLookahead(fn func(pid int) []int) {
	m.lookahead = fn
}

// AllocateInitial pre-carga pageCount páginas residentes para el proceso,
// con números de página secuenciales a partir del total residente actual.
// Devuelve false si la asignación excedería el límite de marcos del sistema;
// en ese caso el proceso arranca en frío, sin páginas residentes. No es una
// condición fatal.
func (m *Manager) AllocateInitial(pid int, pageCount int) bool {
	if m.TotalResident()+pageCount > m.frameLimit {
		slog.Warn("No hay marcos suficientes para la asignación inicial",
			"pid", pid, "solicitadas", pageCount, "libres", m.frameLimit-m.TotalResident())
		return false
	}

	m.ensureProcess(pid)

	start := m.TotalResident()
	for i := 0; i < pageCount; i++ {
		m.insert(pid, start+i)
	}

	slog.Debug("Asignación inicial de páginas", "pid", pid, "cantidad", pageCount)
	return true
}

// Access resuelve un acceso a página y devuelve true si hubo fallo. Nunca
// falla: hit y fault son flujo de control normal.
//
// El desalojo, cuando hace falta, expulsa exactamente una página residente
// del mismo proceso, elegida por el algoritmo configurado.
func (m *Manager) Access(pid int, page int, perProcessLimit int) bool {
	m.clock++
	m.accesses++
	m.ensureProcess(pid)

	if m.resident[pid][page] {
		// Hit: solo se registra el acceso, sin efecto sobre la residencia.
		m.record(pid, page)
		return false
	}

	m.faults++

	// Con límite por proceso 0 el proceso no puede retener páginas: cada
	// acceso es fallo puro y la página no queda residente.
	if perProcessLimit <= 0 {
		m.record(pid, page)
		return true
	}

	hasHeadroom := len(m.resident[pid]) < perProcessLimit && m.TotalResident() < m.frameLimit
	if !hasHeadroom {
		if len(m.resident[pid]) > 0 {
			victim := m.SelectVictim(pid)
			m.evict(pid, victim)
			slog.Debug("Página desalojada", "pid", pid, "victima", victim,
				"algoritmo", m.algorithm, "entrante", page)
		} else {
			// Sin víctima propia y sin marcos libres en el sistema: la
			// página no puede quedar residente. El total residente nunca
			// supera frameLimit.
			m.record(pid, page)
			return true
		}
	}

	m.insert(pid, page)
	m.record(pid, page)
	return true
}

// Deallocate libera todas las páginas residentes y el historial del proceso.
// Se invoca una única vez, cuando el proceso termina.
func (m *Manager) Deallocate(pid int) {
	released := len(m.resident[pid])

	delete(m.resident, pid)
	delete(m.insertion, pid)
	delete(m.history, pid)

	slog.Debug("Memoria del proceso liberada", "pid", pid, "paginas_liberadas", released)
}

// TotalResident devuelve la cantidad de páginas residentes en todo el
// sistema. Invariante: nunca supera frameLimit.
func (m *Manager) TotalResident() int {
	total := 0
	for _, pages := range m.resident {
		total += len(pages)
	}
	return total
}

// ResidentPages devuelve las páginas residentes del proceso en orden de
// llegada a memoria. Es una copia: el llamador no puede mutar la residencia.
func (m *Manager) ResidentPages(pid int) []int {
	pages := make([]int, len(m.insertion[pid]))
	copy(pages, m.insertion[pid])
	return pages
}

// Stats arma las métricas derivadas del estado actual de la memoria.
func (m *Manager) Stats() models.MemoryStats {
	allocatedByProcess := make(map[int][]int)
	for pid := range m.resident {
		if len(m.resident[pid]) > 0 {
			allocatedByProcess[pid] = m.ResidentPages(pid)
		}
	}

	totalAllocated := m.TotalResident()
	utilization := 0.0
	if m.frameLimit > 0 {
		utilization = float64(totalAllocated) / float64(m.frameLimit)
	}

	return models.MemoryStats{
		TotalCapacity:      m.frameLimit,
		TotalAllocated:     totalAllocated,
		FreeFrames:         m.frameLimit - totalAllocated,
		UtilizationRate:    utilization,
		AllocatedByProcess: allocatedByProcess,
	}
}

// Faults devuelve el total de fallos de página registrados en la corrida.
func (m *Manager) Faults() int {
	return m.faults
}

// Accesses devuelve el total de accesos a página de la corrida.
func (m *Manager) Accesses() int {
	return m.accesses
}

func (m *Manager) ensureProcess(pid int) {
	if m.resident[pid] == nil {
		m.resident[pid] = make(map[int]bool)
	}
	if m.history[pid] == nil {
		m.history[pid] = make([]pageAccess, 0)
	}
}

func (m *Manager) insert(pid int, page int) {
	m.resident[pid][page] = true
	m.insertion[pid] = append(m.insertion[pid], page)
}

func (m *Manager) evict(pid int, page int) {
	delete(m.resident[pid], page)
	for i, candidate := range m.insertion[pid] {
		if candidate == page {
			m.insertion[pid] = append(m.insertion[pid][:i], m.insertion[pid][i+1:]...)
			break
		}
	}
}

func (m *Manager) record(pid int, page int) {
	m.history[pid] = append(m.history[pid], pageAccess{Page: page, Time: m.clock})
}
