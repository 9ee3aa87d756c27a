package memoria

import (
	"testing"

	"github.com/sisoputnfrba/simulador-so-Los-magiOS/models"
)

func contains(pages []int, page int) bool {
	for _, p := range pages {
		if p == page {
			return true
		}
	}
	return false
}

func TestFIFO_EvictsEarliestInserted(t *testing.T) {
	m, _ := NewManager(8, models.AlgoritmoFIFO)

	m.Access(0, 1, 3) // A
	m.Access(0, 2, 3) // B
	m.Access(0, 3, 3) // C

	m.Access(0, 4, 3) // fuerza desalojo

	pages := m.ResidentPages(0)
	if contains(pages, 1) {
		t.Errorf("Expected page 1 evicted under FIFO, resident set is %v", pages)
	}
	if !contains(pages, 2) || !contains(pages, 3) || !contains(pages, 4) {
		t.Errorf("Expected pages [2 3 4] resident, got %v", pages)
	}
}

func TestFIFO_AccessDoesNotResetInsertionOrder(t *testing.T) {
	m, _ := NewManager(8, models.AlgoritmoFIFO)

	m.Access(0, 1, 3)
	m.Access(0, 2, 3)
	m.Access(0, 3, 3)
	m.Access(0, 1, 3) // hit sobre la más vieja: FIFO la desaloja igual

	m.Access(0, 4, 3)

	if contains(m.ResidentPages(0), 1) {
		t.Errorf("Expected page 1 evicted despite recent access, resident set is %v", m.ResidentPages(0))
	}
}

func TestLRU_EvictsLeastRecentlyUsed(t *testing.T) {
	m, _ := NewManager(8, models.AlgoritmoLRU)

	m.Access(0, 1, 2) // A
	m.Access(0, 2, 2) // B
	m.Access(0, 1, 2) // refresca A

	m.Access(0, 3, 2) // debe desalojar B, no A

	pages := m.ResidentPages(0)
	if contains(pages, 2) {
		t.Errorf("Expected page 2 evicted under LRU, resident set is %v", pages)
	}
	if !contains(pages, 1) || !contains(pages, 3) {
		t.Errorf("Expected pages 1 and 3 resident, got %v", pages)
	}
}

func TestLRU_NeverAccessedSeededPagesGoFirst(t *testing.T) {
	m, _ := NewManager(8, models.AlgoritmoLRU)

	// Páginas pre-cargadas sin accesos: tiempo lógico 0
	m.AllocateInitial(0, 2) // páginas 0 y 1

	m.Access(0, 9, 2) // sin headroom: desaloja la sembrada más vieja

	pages := m.ResidentPages(0)
	if contains(pages, 0) {
		t.Errorf("Expected seeded page 0 evicted first, resident set is %v", pages)
	}
	if !contains(pages, 1) || !contains(pages, 9) {
		t.Errorf("Expected pages 1 and 9 resident, got %v", pages)
	}
}

func TestOPT_EvictsFurthestFutureUse(t *testing.T) {
	m, _ := NewManager(8, models.AlgoritmoOPT)

	m.Access(0, 1, 2)
	m.Access(0, 2, 2)

	// La página 1 se usa pronto; la 2 recién mucho después
	m.SetLookahead(func(pid int) []int {
		return []int{1, 1, 1, 2}
	})

	m.Access(0, 3, 2)

	pages := m.ResidentPages(0)
	if contains(pages, 2) {
		t.Errorf("Expected page 2 evicted under OPT, resident set is %v", pages)
	}
	if !contains(pages, 1) || !contains(pages, 3) {
		t.Errorf("Expected pages 1 and 3 resident, got %v", pages)
	}
}

func TestOPT_NeverReferencedAgainWins(t *testing.T) {
	m, _ := NewManager(8, models.AlgoritmoOPT)

	m.Access(0, 1, 2)
	m.Access(0, 2, 2)

	// La página 2 no vuelve a aparecer: es la víctima aunque la 1 tarde
	m.SetLookahead(func(pid int) []int {
		return []int{5, 6, 7, 1}
	})

	m.Access(0, 3, 2)

	if contains(m.ResidentPages(0), 2) {
		t.Errorf("Expected never-referenced page 2 evicted, resident set is %v", m.ResidentPages(0))
	}
}

func TestLFR_EvictsLeastFrequentlyReferenced(t *testing.T) {
	m, _ := NewManager(8, models.AlgoritmoLFR)

	m.Access(0, 1, 2) // A: 1 acceso
	m.Access(0, 1, 2) // A: 2 accesos
	m.Access(0, 2, 2) // B: 1 acceso

	m.Access(0, 3, 2) // desaloja B

	pages := m.ResidentPages(0)
	if contains(pages, 2) {
		t.Errorf("Expected page 2 evicted under LFR, resident set is %v", pages)
	}
	if !contains(pages, 1) || !contains(pages, 3) {
		t.Errorf("Expected pages 1 and 3 resident, got %v", pages)
	}
}

func TestLFR_TiesBrokenByInsertionOrder(t *testing.T) {
	m, _ := NewManager(8, models.AlgoritmoLFR)

	m.Access(0, 1, 2) // 1 acceso
	m.Access(0, 2, 2) // 1 acceso

	m.Access(0, 3, 2) // empate de frecuencia: gana la insertada primero

	if contains(m.ResidentPages(0), 1) {
		t.Errorf("Expected page 1 evicted on frequency tie, resident set is %v", m.ResidentPages(0))
	}
}
