package config

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/joho/godotenv"
	"github.com/stock-ahora/api-dwh/internal/config_lib"
)

func LoadSecretManager(ctx context.Context) (*SecretApp, error) {

	secretID := getEnv("APP_SECRET_ID", "")
	if secretID == "" {
		// sin secreto configurado se cae a variables de entorno (local)
		log.Println("APP_SECRET_ID no definido, usando variables de entorno")
		return LoadFromEnv(), nil
	}

	//todo: cambiar la region por la variable de entorno
	region := "us-east-2"

	sm, err := config_lib.New(ctx, region)
	if err != nil {
		return nil, fmt.Errorf("crear secrets manager: %w", err)
	}

	raw, err := sm.GetSecretString(ctx, secretID, "AWSCURRENT")
	if err != nil {
		return nil, fmt.Errorf("obtener secreto: %w", err)
	}

	var cfg SecretApp
	if err := json.Unmarshal([]byte(raw), &cfg); err != nil {
		return nil, fmt.Errorf("parsear secreto JSON: %w", err)
	}
	return &cfg, nil
}

func init() {
	if err := godotenv.Load(); err != nil {
		log.Printf("No se encontró archivo .env: %v", err)
	}
}
