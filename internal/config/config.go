package config

import (
	"os"

	"github.com/stock-ahora/api-dwh/internal/utils"
)

// LoadFromEnv arma la configuración desde variables de entorno para correr
// local, sin Secrets Manager.
func LoadFromEnv() *SecretApp {
	port, err := utils.ConverToint(getEnv("DB_PORT", "5432"))
	if err != nil {
		port = 5432
	}
	mqPort, err := utils.ConverToint(getEnv("MQ_PORT", "5671"))
	if err != nil {
		mqPort = 5671
	}

	return &SecretApp{
		Host:        getEnv("DB_HOST", "localhost"),
		Port:        port,
		User:        getEnv("DB_USER", "postgres"),
		Pass:        getEnv("DB_PASSWORD", ""),
		Name:        getEnv("DB_NAME", "dwh"),
		SSL:         getEnv("DB_SSLMODE", "disable"),
		S3Bucket:    getEnv("S3_BUCKET", ""),
		S3Region:    getEnv("AWS_REGION", ""),
		MQ_HOST:     getEnv("MQ_HOST", ""),
		MQ_PASSWORD: getEnv("MQ_PASSWORD", ""),
		MQ_PORT:     mqPort,
		MQ_USER:     getEnv("MQ_USER", ""),
		MQ_VHOST:    getEnv("MQ_VHOST", ""),
	}
}

func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
