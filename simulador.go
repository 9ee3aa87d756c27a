package main

import (
	"fmt"
	"log/slog"

	"github.com/sisoputnfrba/simulador-so-Los-magiOS/kernel"
	"github.com/sisoputnfrba/simulador-so-Los-magiOS/models"
	"github.com/sisoputnfrba/simulador-so-Los-magiOS/utils/config"
	"github.com/sisoputnfrba/simulador-so-Los-magiOS/utils/log"
)

const (
	ConfigPath = "configs/simulador.json"
	LogPath    = "./simulador.log"
)

func main() {
	var cfg models.Config
	config.InitConfig(ConfigPath, &cfg)
	log.InitLogger(LogPath, cfg.LogLevel)

	sim, err := kernel.NewSimulation(cfg)
	if err != nil {
		slog.Error(fmt.Sprintf("No se pudo crear la simulación: %v", err))
		panic(err)
	}

	processes := cfg.Processes
	if len(processes) == 0 {
		// Escenario de demostración por defecto
		processes = []models.ProcessConfig{
			{Name: "Q1", RequiredTime: 6},
			{Name: "Q2", RequiredTime: 4},
			{Name: "Q3", RequiredTime: 8},
			{Name: "Q4", RequiredTime: 3},
			{Name: "Q5", RequiredTime: 5},
		}
	}

	for _, p := range processes {
		if _, err := sim.AddProcess(p.Name, p.RequiredTime, cfg.ProcessFrameLimit); err != nil {
			slog.Error(fmt.Sprintf("No se pudo admitir el proceso %s: %v", p.Name, err))
			panic(err)
		}
	}

	slog.Info("Comienza la simulación de planificación y memoria",
		"procesos", len(processes), "algoritmo", cfg.ReplacementAlgorithm)

	executionLog := sim.RunToCompletion()

	slog.Info("=== Log de ejecución ===")
	for _, entry := range executionLog {
		slog.Info(fmt.Sprintf("Slice %d: proceso %s ejecutó %d instrucciones, %d fallos de página, estado: %s",
			entry.Slice, entry.Name, entry.ExecutedInstructions, entry.PageFaults, entry.Estado))
	}

	slog.Info("=== Estadísticas por proceso ===")
	for name, stats := range sim.GetProcessStatistics() {
		slog.Info(fmt.Sprintf("%s: completitud %.2f%%, %d fallos de página, estado %s",
			name, stats.CompletionRate*100, stats.PageFaults, stats.Estado))
	}

	memoryStats := sim.GetMemoryStatistics()
	simStats := sim.GetSimulationStatistics()

	slog.Info("=== Estadísticas globales ===")
	slog.Info(fmt.Sprintf("Utilización de memoria: %.2f%% (%d/%d marcos, %d libres)",
		memoryStats.UtilizationRate*100, memoryStats.TotalAllocated,
		memoryStats.TotalCapacity, memoryStats.FreeFrames))
	slog.Info(fmt.Sprintf("Tasa de fallos de página: %.4f (%d fallos sobre %d accesos)",
		simStats.FaultRate, simStats.TotalFaults, simStats.TotalInstructions))
	slog.Info(fmt.Sprintf("Throughput: %.4f procesos por slice (%d procesos en %d slices)",
		simStats.Throughput, simStats.ProcessesCompleted, simStats.TotalSlices))
}
