package kernel

import (
	"fmt"
	"log/slog"

	"github.com/sisoputnfrba/simulador-so-Los-magiOS/cpu"
	"github.com/sisoputnfrba/simulador-so-Los-magiOS/models"
)

// RunTimeSlice ejecuta un time slice completo de round robin:
//
//  1. recorre el anillo desde el puntero buscando el primer PCB en READY
//  2. lo pasa a EXEC
//  3. ejecuta hasta timeQuantum unidades de tiempo, de
//     instructionsPerTimeUnit instrucciones cada una, resolviendo cada
//     acceso a página contra la memoria
//  4. corta el slice apenas se cumple una condición de terminación
//  5. decide el estado final (EXIT libera la memoria en el acto, READY
//     vuelve al anillo)
//  6. agrega la entrada al log de ejecución
//  7. avanza el puntero del anillo, haya terminado o no el proceso
//
// Devuelve ErrNoReadyProcess cuando no queda nada para planificar; esa es la
// señal terminal normal de la corrida, no una falla.
func (s *Simulation) RunTimeSlice() (models.ExecutionLogEntry, error) {
	pcb, index, found := s.nextReady()
	if !found {
		return models.ExecutionLogEntry{}, models.ErrNoReadyProcess
	}

	s.transition(pcb, models.EstadoExec)

	executedInstructions := 0
	faults := 0
	accessedPages := make([]int, 0, s.timeQuantum*s.instructionsPerTimeUnit)

	for unit := 0; unit < s.timeQuantum; unit++ {
		for i := 0; i < s.instructionsPerTimeUnit; i++ {
			if pcb.PC >= len(pcb.InstructionSequence) {
				break
			}

			address := pcb.InstructionSequence[pcb.PC]
			page := cpu.AddressToPage(address, s.pageSize)

			if s.memory.Access(pcb.PID, page, pcb.FrameLimit) {
				faults++
				pcb.FaultCount++
			}

			pcb.PC++
			executedInstructions++
			accessedPages = append(accessedPages, page)
		}

		pcb.ExecutedTime++

		// Terminación por OR: basta que se agote el tiempo requerido o la
		// secuencia de instrucciones, lo que ocurra primero.
		if s.isFinished(pcb) {
			break
		}
	}

	finished := s.isFinished(pcb)
	if finished {
		s.memory.Deallocate(pcb.PID)
		s.transition(pcb, models.EstadoExit)
		s.completed++

		// El proceso sale del anillo exactamente una vez, al terminar. Al
		// removerlo, el puntero ya queda apuntando al siguiente.
		s.ready.Remove(index)
		if s.ready.Size() > 0 {
			s.ringIndex = index % s.ready.Size()
		} else {
			s.ringIndex = 0
		}
	} else {
		s.transition(pcb, models.EstadoReady)
		s.ringIndex = (index + 1) % s.ready.Size()
	}

	entry := models.ExecutionLogEntry{
		Slice:                s.slice,
		PID:                  pcb.PID,
		Name:                 pcb.Name,
		ExecutedInstructions: executedInstructions,
		PageFaults:           faults,
		AccessedPages:        accessedPages,
		ResidentPages:        s.memory.ResidentPages(pcb.PID),
		ExecutedTime:         pcb.ExecutedTime,
		RequiredTime:         pcb.RequiredTime,
		Estado:               pcb.Estado,
	}
	s.executionLog.Add(entry)
	s.slice++

	slog.Debug("Time slice ejecutado", "slice", entry.Slice, "pid", pcb.PID,
		"instrucciones", executedInstructions, "fallos", faults, "estado", pcb.Estado)

	return entry, nil
}

// RunToCompletion ejecuta time slices hasta agotar los procesos listos y
// devuelve el log completo de la corrida. Termina siempre: cada slice
// incrementa estrictamente el tiempo ejecutado o el contador de programa del
// proceso elegido.
func (s *Simulation) RunToCompletion() []models.ExecutionLogEntry {
	for {
		if _, err := s.RunTimeSlice(); err != nil {
			break
		}
	}
	return s.GetExecutionLog()
}

// nextReady recorre el anillo desde el puntero y devuelve el primer PCB en
// READY junto con su índice.
func (s *Simulation) nextReady() (*models.PCB, int, bool) {
	size := s.ready.Size()
	for offset := 0; offset < size; offset++ {
		index := (s.ringIndex + offset) % size
		pcb, err := s.ready.Get(index)
		if err != nil {
			continue
		}
		if pcb.Estado == models.EstadoReady {
			return pcb, index, true
		}
	}
	return nil, 0, false
}

// isFinished evalúa las dos condiciones de terminación. Se mantiene el OR
// del modelo original: puede terminar con instrucciones sin ejecutar (se
// agotó el tiempo) o con tiempo sin consumir (se agotó la secuencia).
func (s *Simulation) isFinished(pcb *models.PCB) bool {
	return pcb.ExecutedTime >= pcb.RequiredTime || pcb.PC >= len(pcb.InstructionSequence)
}

// transition cambia el estado de un PCB dejando el rastro en el log.
func (s *Simulation) transition(pcb *models.PCB, newState models.Estado) {
	oldState := pcb.Estado
	pcb.Estado = newState
	slog.Info(fmt.Sprintf("## (%d) Pasa del estado %s al estado %s", pcb.PID, oldState, newState))
}
