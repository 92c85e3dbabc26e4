package main

import (
	"context"
	"log"
	"math/rand"
	"os"
	"strconv"
	"time"

	httpadapter "resume-builder/internal/adapter/http"
	repo "resume-builder/internal/adapter/repository"
	"resume-builder/internal/infrastructure/migration"
	"resume-builder/internal/render"
	"resume-builder/internal/storage"
	"resume-builder/internal/suggest"
	"resume-builder/internal/usecase"
	infra "resume-builder/pkg/infrastructure"

	"github.com/gofiber/fiber/v2"
	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	ctx := context.Background()

	// storage backend: redis when configured, files otherwise
	var store storage.Store
	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		rs, err := storage.NewRedisStore(addr, os.Getenv("REDIS_PASSWORD"))
		if err != nil {
			log.Printf("warning: redis not available, falling back to file store: %v", err)
		} else {
			store = rs
		}
	}
	if store == nil {
		dataDir := os.Getenv("DATA_DIR")
		if dataDir == "" {
			dataDir = "resume-data"
		}
		fs, err := storage.NewFileStore(dataDir)
		if err != nil {
			log.Fatalf("file store init failed: %v", err)
		}
		store = fs
	}

	// export history is optional; the repo no-ops without a pool
	exportsPool, err := infra.NewExportsPool(ctx)
	if err != nil {
		log.Printf("warning: exports DB not available: %v", err)
	} else if err := migration.RunMigrations(ctx, exportsPool); err != nil {
		log.Printf("warning: exports migrations failed: %v", err)
	}
	exportsRepo := repo.NewExportsRepo(exportsPool)

	engine, err := render.NewEngine()
	if err != nil {
		log.Fatalf("template engine init failed: %v", err)
	}

	builder := usecase.NewBuilder(store)
	if err := builder.Load(ctx); err != nil {
		log.Fatalf("failed to load resume: %v", err)
	}

	outDir := os.Getenv("EXPORT_DIR")
	if outDir == "" {
		outDir = "resume-data/exports"
	}
	renderer := infra.NewChromedpRenderer()
	exporter := usecase.NewExporter(engine, renderer, exportsRepo, outDir)

	delayMS := 1500
	if v := os.Getenv("SUGGEST_DELAY_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			delayMS = n
		}
	}
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	suggester := suggest.NewGenerator(rng, time.Duration(delayMS)*time.Millisecond)

	app := fiber.New()

	h := httpadapter.NewHandler(builder, exporter, engine, suggester, exportsRepo)
	h.Register(app)

	port := os.Getenv("PORT")
	if port == "" {
		port = "3000"
	}

	if err := app.Listen(":" + port); err != nil {
		log.Fatalf("server failed: %v", err)
	}
}
