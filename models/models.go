package models

import "errors"

// Estado representa el estado de planificación de un proceso simulado.
type Estado string

const (
	EstadoReady Estado = "READY"
	EstadoExec  Estado = "EXEC"
	EstadoExit  Estado = "EXIT"
)

// Algoritmos de reemplazo de páginas soportados.
const (
	AlgoritmoFIFO = "FIFO"
	AlgoritmoLRU  = "LRU"
	AlgoritmoOPT  = "OPT"
	AlgoritmoLFR  = "LFR"
)

var (
	// ErrInvalidConfiguration indica parámetros inválidos al construir la
	// simulación o al admitir un proceso. No se crea estado parcial.
	ErrInvalidConfiguration = errors.New("configuración inválida")

	// ErrNoReadyProcess no es una falla: señala que la simulación ya no
	// tiene procesos en READY para planificar.
	ErrNoReadyProcess = errors.New("no hay procesos en estado READY")
)

// Config reúne los parámetros de una corrida de simulación.
type Config struct {
	FrameLimit              int             `json:"frame_limit"`
	ProcessFrameLimit       int             `json:"process_frame_limit"`
	TimeQuantum             int             `json:"time_quantum"`
	InstructionsPerTimeUnit int             `json:"instructions_per_time_unit"`
	PageSize                int             `json:"page_size"`
	TotalInstructions       int             `json:"total_instructions"`
	InitialPages            int             `json:"initial_pages"`
	ReplacementAlgorithm    string          `json:"replacement_algorithm"`
	Seed                    int64           `json:"seed"`
	LogLevel                string          `json:"log_level"`
	Processes               []ProcessConfig `json:"processes"`
}

type ProcessConfig struct {
	Name         string `json:"name"`
	RequiredTime int    `json:"required_time"`
}

// PCB es el bloque de control de un proceso simulado. El planificador es el
// único dueño de su ciclo de vida; la memoria solo lee el PID y el límite de
// marcos.
type PCB struct {
	PID    int
	Name   string
	Estado Estado

	// Planificación
	RequiredTime int
	ExecutedTime int

	// Instrucciones
	InstructionSequence []int
	PC                  int

	// Memoria
	FrameLimit              int
	FaultCount              int
	InitialAllocationDenied bool
}

// ExecutionLogEntry registra el resultado de un time slice. Es inmutable una
// vez agregado al log y es la única superficie de lectura para reportes.
type ExecutionLogEntry struct {
	Slice                int
	PID                  int
	Name                 string
	ExecutedInstructions int
	PageFaults           int
	AccessedPages        []int
	ResidentPages        []int
	ExecutedTime         int
	RequiredTime         int
	Estado               Estado
}

// ProcessStats son métricas derivadas por proceso.
type ProcessStats struct {
	PID                     int
	RequiredTime            int
	ExecutedTime            int
	TotalInstructions       int
	ExecutedInstructions    int
	PageFaults              int
	Estado                  Estado
	CompletionRate          float64
	InitialAllocationDenied bool
}

// MemoryStats son métricas derivadas del estado actual de la memoria.
type MemoryStats struct {
	TotalCapacity      int
	TotalAllocated     int
	FreeFrames         int
	UtilizationRate    float64
	AllocatedByProcess map[int][]int
}

// SimulationStats son métricas globales de la corrida.
type SimulationStats struct {
	TotalSlices        int
	TotalInstructions  int
	TotalFaults        int
	FaultRate          float64
	ProcessesCompleted int
	Throughput         float64
}
