package main

import (
	"context"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	httpadapter "warebot/internal/adapter/http"
	staticlayout "warebot/internal/adapter/layout/staticfile"
	metricsinmem "warebot/internal/adapter/metrics/inmemory"
	gormrepo "warebot/internal/adapter/repo/gorm"
	memrepo "warebot/internal/adapter/repo/memory"
	"warebot/internal/app/layout"
	"warebot/internal/app/plan"
	"warebot/internal/app/ports"
	"warebot/internal/domain/picking"

	"github.com/cloudwego/hertz/pkg/app/server"
)

func main() {
	layoutRepo, executionRepo, txManager := mustBuildRepos()
	kpiRecorder := metricsinmem.NewRecorder()

	layoutUC := layout.UseCase{TxManager: txManager, Layouts: layoutRepo}
	seedLayoutsFromDir(layoutUC)

	h := httpadapter.Handler{
		PlanUC: plan.UseCase{
			TxManager:  txManager,
			Layouts:    layoutRepo,
			Executions: executionRepo,
			Metrics:    kpiRecorder,
			Tuning:     tuningFromEnv(),
			Now:        time.Now,
		},
		LayoutUC:   layoutUC,
		Executions: executionRepo,
		KPI:        kpiRecorder,
	}

	addr := strings.TrimSpace(os.Getenv("WAREBOT_LISTEN_ADDR"))
	if addr == "" {
		addr = ":8080"
	}
	s := server.Default(server.WithHostPorts(addr))
	h.RegisterRoutes(s)

	log.Printf("warebot server listening on %s", addr)
	s.Spin()
}

func mustBuildRepos() (ports.LayoutRepository, ports.PlanExecutionRepository, ports.TxManager) {
	dsn := strings.TrimSpace(os.Getenv("WAREBOT_DB_DSN"))
	if dsn == "" {
		log.Println("WAREBOT_DB_DSN not set, using in-memory store")
		store := memrepo.NewStore()
		return memrepo.NewLayoutRepo(store), memrepo.NewPlanExecutionRepo(store), memrepo.NewTxManager(store)
	}

	db, err := gormrepo.OpenPostgres(dsn)
	if err != nil {
		log.Fatalf("open postgres: %v", err)
	}
	if err := gormrepo.Migrate(db); err != nil {
		log.Fatalf("migrate: %v", err)
	}
	return gormrepo.NewLayoutRepo(db), gormrepo.NewPlanExecutionRepo(db), gormrepo.NewTxManager(db)
}

func seedLayoutsFromDir(uc layout.UseCase) {
	dir := strings.TrimSpace(os.Getenv("WAREBOT_LAYOUT_DIR"))
	if dir == "" {
		return
	}
	records, err := staticlayout.Loader{Root: dir}.LoadAll()
	if err != nil {
		log.Fatalf("load layouts from %s: %v", dir, err)
	}
	for _, record := range records {
		created, err := uc.Create(context.Background(), layout.CreateRequest{
			ID:              record.ID,
			Name:            record.Name,
			GridSize:        record.GridSize,
			CollectionPoint: record.CollectionPoint,
			Shelves:         record.Shelves,
			Obstacles:       record.Obstacles,
		})
		if err != nil {
			log.Fatalf("seed layout %s: %v", record.ID, err)
		}
		log.Printf("seeded layout %s (%d shelves)", created.ID, len(created.Shelves))
	}
}

func tuningFromEnv() picking.Tuning {
	t := picking.DefaultTuning()
	t.ItemPenalty = intEnv("PLANNER_ITEM_PENALTY", t.ItemPenalty)
	t.MaxIterations = intEnv("PLANNER_MAX_ITERATIONS", t.MaxIterations)
	return t
}

func intEnv(key string, fallback int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}
