package kernel

import (
	"github.com/sisoputnfrba/simulador-so-Los-magiOS/models"
)

// GetProcessStatistics deriva las métricas por proceso, indexadas por
// nombre. Seguro de leer entre slices.
func (s *Simulation) GetProcessStatistics() map[string]models.ProcessStats {
	stats := make(map[string]models.ProcessStats)

	s.admitted.ForEach(func(pcb *models.PCB) {
		completionRate := 0.0
		if pcb.RequiredTime > 0 {
			completionRate = float64(pcb.ExecutedTime) / float64(pcb.RequiredTime)
		}

		stats[pcb.Name] = models.ProcessStats{
			PID:                     pcb.PID,
			RequiredTime:            pcb.RequiredTime,
			ExecutedTime:            pcb.ExecutedTime,
			TotalInstructions:       len(pcb.InstructionSequence),
			ExecutedInstructions:    pcb.PC,
			PageFaults:              pcb.FaultCount,
			Estado:                  pcb.Estado,
			CompletionRate:          completionRate,
			InitialAllocationDenied: pcb.InitialAllocationDenied,
		}
	})

	return stats
}

// GetMemoryStatistics deriva las métricas del estado actual de la memoria.
func (s *Simulation) GetMemoryStatistics() models.MemoryStats {
	return s.memory.Stats()
}

// GetSimulationStatistics deriva las métricas globales de la corrida. El
// tiempo transcurrido se mide en time slices, como en el log de ejecución.
func (s *Simulation) GetSimulationStatistics() models.SimulationStats {
	totalInstructions := s.memory.Accesses()
	totalFaults := s.memory.Faults()

	faultRate := 0.0
	if totalInstructions > 0 {
		faultRate = float64(totalFaults) / float64(totalInstructions)
	}

	throughput := 0.0
	if s.slice > 0 {
		throughput = float64(s.completed) / float64(s.slice)
	}

	return models.SimulationStats{
		TotalSlices:        s.slice,
		TotalInstructions:  totalInstructions,
		TotalFaults:        totalFaults,
		FaultRate:          faultRate,
		ProcessesCompleted: s.completed,
		Throughput:         throughput,
	}
}

// GetExecutionLog devuelve una copia del log de ejecución, en orden estable
// de agregado.
func (s *Simulation) GetExecutionLog() []models.ExecutionLogEntry {
	return s.executionLog.GetAll()
}
