package main

import (
	"context"
	"log"
	"net/http"

	"github.com/stock-ahora/api-dwh/internal/config"
	httpserver "github.com/stock-ahora/api-dwh/internal/http"
	"github.com/stock-ahora/api-dwh/internal/repository"
	"github.com/stock-ahora/api-dwh/internal/service/consumer"
	"github.com/stock-ahora/api-dwh/internal/service/eventservice"
	"github.com/stock-ahora/api-dwh/internal/service/export"
	"github.com/stock-ahora/api-dwh/internal/service/pipeline"
)

func main() {

	ctx := context.Background()

	cfg, err := config.LoadSecretManager(ctx)
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	db, err := config.NewPostgresDB(cfg.ToDBConfig())
	if err != nil {
		log.Fatalf("DB error: %v", err)
	}
	log.Println("DB Connection Established")

	config.RunMigrations(cfg.ToDBConfig())

	extractRepo := repository.NewExtractRepo(db)
	warehouseRepo := repository.NewWarehouseRepo(db)

	var events eventservice.EventPublisher = eventservice.NoopPublisher{}
	mqCfg := cfg.ToMQConfig()
	if mqCfg.Host != "" {
		mqConn, _, err := config.RabbitConn(mqCfg)
		if err != nil {
			log.Fatalf("RabbitMQ error: %v", err)
		}
		publisher, err := eventservice.NewMQPublisher(mqConn)
		if err != nil {
			log.Fatalf("publisher error: %v", err)
		}
		events = publisher
	}

	var exporter pipeline.SnapshotExporter
	s3Cfg := cfg.ToS3Config()
	if s3Cfg.Bucket != "" {
		uploadSvc := config.S3ConfigService(s3Cfg)
		exporter = export.NewSnapshotService(export.S3config{UploadService: *uploadSvc})
	}

	pipelineSvc := pipeline.NewPipelineService(extractRepo, warehouseRepo, events, exporter)

	if mqCfg.Host != "" {
		conn, ch := config.NewRabbitMq(mqCfg)
		listener := consumer.NewListener(conn, ch, "dwh.extract.loaded", pipelineSvc)
		if err := listener.SetupListener([]string{eventservice.ExtractLoadedTopic}); err != nil {
			log.Fatalf("listener setup error: %v", err)
		}
		if err := listener.StartListening(); err != nil {
			log.Fatalf("listener error: %v", err)
		}
		log.Println("Escuchando extract.loaded")
	}

	r := httpserver.NewRouter(db, pipelineSvc)

	addr := ":8083"
	log.Printf("API listening on %s", addr)
	if err := http.ListenAndServe(addr, r); err != nil {
		log.Fatal(err)
	}
}
