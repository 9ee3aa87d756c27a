package memoria

import (
	"log/slog"

	"github.com/sisoputnfrba/simulador-so-Los-magiOS/models"
)

// SelectVictim elige la página residente del proceso que será desalojada
// según el algoritmo configurado. Precondición: el proceso tiene al menos
// una página residente.
//
// Todas las políticas desempatan por orden de llegada a memoria: el
// recorrido se hace sobre insertion[pid] con comparación estricta, de modo
// que ante empate gana la página insertada primero.
func (m *Manager) SelectVictim(pid int) int {
	switch m.algorithm {
	case models.AlgoritmoLRU:
		return m.victimLRU(pid)
	case models.AlgoritmoOPT:
		return m.victimOPT(pid)
	case models.AlgoritmoLFR:
		return m.victimLFR(pid)
	default: // FIFO
		return m.victimFIFO(pid)
	}
}

// victimFIFO desaloja la página que entró a memoria primero. Los accesos
// posteriores no refrescan el orden de llegada.
func (m *Manager) victimFIFO(pid int) int {
	return m.insertion[pid][0]
}

// victimLRU desaloja la página con el menor tiempo lógico de último acceso.
// Las páginas pre-cargadas que nunca se accedieron tienen tiempo 0 y salen
// primero.
func (m *Manager) victimLRU(pid int) int {
	lastAccess := make(map[int]int)
	for _, access := range m.history[pid] {
		lastAccess[access.Page] = access.Time
	}

	victim := m.insertion[pid][0]
	victimTime := lastAccess[victim]
	for _, page := range m.insertion[pid][1:] {
		if lastAccess[page] < victimTime {
			victim = page
			victimTime = lastAccess[page]
		}
	}
	return victim
}

// victimOPT desaloja la página que tardará más en volver a referenciarse (o
// que no se referencia nunca más). Es la única política que mira hacia
// adelante: lee el sufijo de referencias aún no ejecutado vía lookahead.
func (m *Manager) victimOPT(pid int) int {
	var future []int
	if m.lookahead != nil {
		future = m.lookahead(pid)
	} else {
		slog.Warn("OPT sin lookahead configurado, degrada a FIFO", "pid", pid)
		return m.victimFIFO(pid)
	}

	nextUse := make(map[int]int)
	for i, page := range future {
		if _, seen := nextUse[page]; !seen {
			nextUse[page] = i
		}
	}

	victim := m.insertion[pid][0]
	victimDistance := distanceOrNever(nextUse, victim)
	for _, page := range m.insertion[pid][1:] {
		if distanceOrNever(nextUse, page) > victimDistance {
			victim = page
			victimDistance = distanceOrNever(nextUse, page)
		}
	}
	return victim
}

// victimLFR desaloja la página con menos accesos registrados en el
// historial del proceso.
func (m *Manager) victimLFR(pid int) int {
	frequency := make(map[int]int)
	for _, access := range m.history[pid] {
		frequency[access.Page]++
	}

	victim := m.insertion[pid][0]
	victimCount := frequency[victim]
	for _, page := range m.insertion[pid][1:] {
		if frequency[page] < victimCount {
			victim = page
			victimCount = frequency[page]
		}
	}
	return victim
}

// distanceOrNever devuelve la distancia al próximo uso de la página, o un
// valor mayor a cualquier distancia real si no se usa nunca más.
func distanceOrNever(nextUse map[int]int, page int) int {
	if distance, ok := nextUse[page]; ok {
		return distance
	}
	return int(^uint(0) >> 1) // max int
}
