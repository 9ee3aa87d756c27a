package cpu

import (
	"math/rand"
)

// GenerateInstructions construye la secuencia de direcciones de instrucción
// de un proceso con sesgo de localidad (modelo clásico 80% cerca / 20%
// lejos). Cada proceso es dueño de una ventana de direcciones disjunta
// [base, base+total-1] con base = pid*total, aproximando el aislamiento de
// memoria entre procesos.
//
// La caminata tiene cuatro fases que se repiten hasta completar total
// direcciones:
//  1. punto de partida m aleatorio dentro de la ventana
//  2. ejecución secuencial m+1 (si entra en la ventana)
//  3. salto local hacia atrás en [base, m+1] y su sucesor
//  4. salto hacia adelante en [m1+2, max], que rompe la localidad; se
//     omite cuando el rango es vacío
//
// La estructura de cuatro fases es un contrato: de ella dependen las tasas
// de fallos de página que se comparan entre algoritmos.
//
// La secuencia es determinística dado un rng sembrado, se genera una única
// vez al crear el proceso y nunca se regenera.
func GenerateInstructions(pid int, totalInstructions int, rng *rand.Rand) []int {
	instructions := make([]int, 0, totalInstructions)

	base := pid * totalInstructions
	max := base + totalInstructions - 1

	for len(instructions) < totalInstructions {
		// Punto de partida aleatorio dentro de la ventana del proceso
		m := randBetween(rng, base, max)
		instructions = append(instructions, m)
		if len(instructions) >= totalInstructions {
			break
		}

		// Ejecución secuencial de la instrucción siguiente
		if m+1 <= max {
			instructions = append(instructions, m+1)
			if len(instructions) >= totalInstructions {
				break
			}
		}

		// Salto local hacia atrás en [base, m+1]
		m1 := randBetween(rng, base, min(m+1, max))
		instructions = append(instructions, m1)
		if len(instructions) >= totalInstructions {
			break
		}

		if m1+1 <= max {
			instructions = append(instructions, m1+1)
			if len(instructions) >= totalInstructions {
				break
			}
		}

		// Salto hacia adelante en [m1+2, max]; puede no existir rango
		if m1+2 <= max {
			m2 := randBetween(rng, m1+2, max)
			instructions = append(instructions, m2)
		}
	}

	return instructions[:totalInstructions]
}

// randBetween devuelve un entero aleatorio en [low, high], ambos inclusive.
func randBetween(rng *rand.Rand, low int, high int) int {
	return low + rng.Intn(high-low+1)
}
