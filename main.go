package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"food-explorer/config"
	httpapi "food-explorer/internal/api/http"
	"food-explorer/internal/service"
	"food-explorer/internal/storage"
)

const voteEventsTopic = "dish-votes"

func main() {
	db := config.MustInitPostgres()
	defer db.Close()

	rdb := config.MustInitRedis()
	defer rdb.Close()

	writer := config.NewKafkaWriter(voteEventsTopic)
	defer writer.Close()

	reader := config.NewKafkaReader(voteEventsTopic, "live-refresh")
	defer reader.Close()

	repo := storage.NewPostgresRepository(db)
	if err := repo.EnsureSchema(); err != nil {
		log.Fatal("Failed to ensure schema:", err)
	}

	cache := storage.NewRedisCache(rdb)
	publisher := storage.NewKafkaPublisher(writer)

	importCfg := config.LoadImportConfig()
	var importer service.ImporterInterface
	if importCfg.DatasetURL != "" {
		client := &service.HTTPDatasetClient{
			BaseURL: importCfg.DatasetURL,
			Client:  &http.Client{Timeout: 10 * time.Second},
		}
		seeder := service.NewSeeder(importCfg.SeedMode, importCfg.SeedMaxUp, importCfg.SeedMaxDown)
		importer = service.NewImportService(repo, client, seeder)
	} else {
		log.Println("DATASET_API_URL not set, external import disabled")
	}

	searchSvc := service.NewSearchService(repo, importer, cache)
	voteSvc := service.NewVoteService(repo, publisher)
	entrySvc := service.NewEntryService(repo)
	restSvc := service.NewRestaurantService(repo)

	hub := service.NewHub()
	consumer := service.NewConsumer(reader, cache, hub)
	go consumer.Start(context.Background())

	handler := httpapi.NewHandler(searchSvc, voteSvc, entrySvc, restSvc,
		service.DefaultQRGenerator{BaseURL: config.BaseURL()}, hub)

	httpapi.StartServer(":8080", httpapi.NewRouter(handler))
}
