package kernel

import (
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"github.com/sisoputnfrba/simulador-so-Los-magiOS/cpu"
	"github.com/sisoputnfrba/simulador-so-Los-magiOS/memoria"
	"github.com/sisoputnfrba/simulador-so-Los-magiOS/models"
	"github.com/sisoputnfrba/simulador-so-Los-magiOS/utils/list"
)

// Simulation es el motor de la simulación: es dueño del ciclo de vida de los
// PCB, del anillo de procesos listos y del log de ejecución, y avanza el
// tiempo de a un time slice por llamada.
//
// Todo el estado vive en esta estructura; el motor no usa variables
// globales. Es mono-hilo y cooperativo: RunTimeSlice corre completo y
// devuelve el control, no debe invocarse desde varios hilos a la vez.
type Simulation struct {
	timeQuantum             int
	instructionsPerTimeUnit int
	pageSize                int
	totalInstructions       int
	initialPages            int

	memory *memoria.Manager
	rng    *rand.Rand

	// ready es el anillo circular: contiene exactamente los PCB no
	// terminados, en orden de admisión. ringIndex es el puntero de
	// recorrido round-robin sobre ese anillo.
	ready     *list.ArrayList[*models.PCB]
	ringIndex int

	// admitted conserva todos los PCB en orden de admisión, incluidos los
	// terminados, para las métricas por proceso.
	admitted *list.ArrayList[*models.PCB]

	executionLog *list.ArrayList[models.ExecutionLogEntry]

	nextPID   int
	slice     int // contador global de time slices
	completed int
}

// NewSimulation valida la configuración y construye una simulación vacía.
// Ante parámetros inválidos devuelve ErrInvalidConfiguration sin crear
// estado parcial.
func NewSimulation(cfg models.Config) (*Simulation, error) {
	if cfg.TimeQuantum <= 0 {
		return nil, fmt.Errorf("%w: time_quantum debe ser mayor a 0, se recibió %d",
			models.ErrInvalidConfiguration, cfg.TimeQuantum)
	}
	if cfg.InstructionsPerTimeUnit <= 0 {
		return nil, fmt.Errorf("%w: instructions_per_time_unit debe ser mayor a 0, se recibió %d",
			models.ErrInvalidConfiguration, cfg.InstructionsPerTimeUnit)
	}
	if cfg.PageSize <= 0 {
		return nil, fmt.Errorf("%w: page_size debe ser mayor a 0, se recibió %d",
			models.ErrInvalidConfiguration, cfg.PageSize)
	}
	if cfg.TotalInstructions <= 0 {
		return nil, fmt.Errorf("%w: total_instructions debe ser mayor a 0, se recibió %d",
			models.ErrInvalidConfiguration, cfg.TotalInstructions)
	}
	if cfg.InitialPages < 0 {
		return nil, fmt.Errorf("%w: initial_pages no puede ser negativo, se recibió %d",
			models.ErrInvalidConfiguration, cfg.InitialPages)
	}

	memory, err := memoria.NewManager(cfg.FrameLimit, cfg.ReplacementAlgorithm)
	if err != nil {
		return nil, err
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	s := &Simulation{
		timeQuantum:             cfg.TimeQuantum,
		instructionsPerTimeUnit: cfg.InstructionsPerTimeUnit,
		pageSize:                cfg.PageSize,
		totalInstructions:       cfg.TotalInstructions,
		initialPages:            cfg.InitialPages,
		memory:                  memory,
		rng:                     rand.New(rand.NewSource(seed)),
		ready:                   &list.ArrayList[*models.PCB]{},
		admitted:                &list.ArrayList[*models.PCB]{},
		executionLog:            &list.ArrayList[models.ExecutionLogEntry]{},
	}

	// OPT es la única política con mirada hacia adelante: se le expone el
	// sufijo de páginas que el proceso todavía no referenció.
	memory.SetLookahead(s.remainingPages)

	slog.Debug("Simulación creada", "algoritmo", cfg.ReplacementAlgorithm,
		"marcos", cfg.FrameLimit, "quantum", cfg.TimeQuantum, "seed", seed)

	return s, nil
}

// AddProcess admite un proceso nuevo: genera su secuencia de instrucciones,
// intenta la asignación inicial de páginas y lo suma al final del anillo de
// listos. Devuelve el PID asignado.
//
// Los procesos admitidos después de comenzada la corrida entran al anillo en
// la próxima vuelta del puntero.
func (s *Simulation) AddProcess(name string, requiredTime int, frameLimit int) (int, error) {
	if requiredTime <= 0 {
		return 0, fmt.Errorf("%w: required_time debe ser mayor a 0, se recibió %d",
			models.ErrInvalidConfiguration, requiredTime)
	}
	// El límite 0 es válido: degenera en fallo puro en cada acceso.
	if frameLimit < 0 {
		return 0, fmt.Errorf("%w: el límite de marcos del proceso no puede ser negativo, se recibió %d",
			models.ErrInvalidConfiguration, frameLimit)
	}
	if frameLimit > s.memory.Stats().TotalCapacity {
		return 0, fmt.Errorf("%w: el límite de marcos del proceso (%d) supera los marcos del sistema (%d)",
			models.ErrInvalidConfiguration, frameLimit, s.memory.Stats().TotalCapacity)
	}
	if _, _, exists := s.admitted.Find(func(p *models.PCB) bool { return p.Name == name }); exists {
		return 0, fmt.Errorf("%w: ya existe un proceso con nombre %q",
			models.ErrInvalidConfiguration, name)
	}

	pcb := &models.PCB{
		PID:                 s.nextPID,
		Name:                name,
		Estado:              models.EstadoReady,
		RequiredTime:        requiredTime,
		InstructionSequence: cpu.GenerateInstructions(s.nextPID, s.totalInstructions, s.rng),
		FrameLimit:          frameLimit,
	}
	s.nextPID++

	// La asignación inicial puede denegarse: el proceso arranca en frío y
	// la corrida sigue igual.
	if !s.memory.AllocateInitial(pcb.PID, min(frameLimit, s.initialPages)) {
		pcb.InitialAllocationDenied = true
	}

	s.admitted.Add(pcb)
	s.ready.Add(pcb)

	slog.Info(fmt.Sprintf("## (%d) Se crea el proceso %s - Estado: %s", pcb.PID, pcb.Name, pcb.Estado))

	return pcb.PID, nil
}

// remainingPages devuelve las páginas de las instrucciones que el proceso
// todavía no ejecutó, excluida la que está ejecutando en este momento.
func (s *Simulation) remainingPages(pid int) []int {
	pcb, _, found := s.admitted.Find(func(p *models.PCB) bool { return p.PID == pid })
	if !found {
		return nil
	}

	next := pcb.PC + 1
	if next >= len(pcb.InstructionSequence) {
		return nil
	}
	return cpu.AddressesToPages(pcb.InstructionSequence[next:], s.pageSize)
}
