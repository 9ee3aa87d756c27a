package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// InitConfig lee el archivo de configuración de la simulación y deja sus
// valores en config. En caso de error finaliza con panic: sin configuración
// no hay corrida posible.
//
// Parámetros:
//   - filePath: ubicación donde se encuentra el archivo de configuración
//   - config: acepta cualquier tipo de estructura
//
// Ejemplo:
//
//	func main() {
//		var cfg models.Config
//		config.InitConfig("configs/simulador.json", &cfg)
//	}
func InitConfig(filePath string, config interface{}) {
	err := setupConfig(filePath, &config)
	if err != nil {
		_ = fmt.Errorf("error al configurar el archivo %v", err)
		panic(err)
	}
}

func setupConfig(filePath string, config interface{}) error {
	configFile, err := os.Open(filePath)

	if err != nil {
		return err
	}

	defer configFile.Close()

	jsonParser := json.NewDecoder(configFile)

	if err := jsonParser.Decode(&config); err != nil {
		return err
	}

	return nil
}
