// This package is used to initialize the application. It has dependencies on most
// other packages. Other packages can depend on it as a quick way to get access to
// all the dependencies.
package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/petuhovskiy/lootkit/internal/bgjobs"
	"github.com/petuhovskiy/lootkit/internal/conf"
	"github.com/petuhovskiy/lootkit/internal/feed"
	"github.com/petuhovskiy/lootkit/internal/log"
	"github.com/petuhovskiy/lootkit/internal/models"
	"github.com/petuhovskiy/lootkit/internal/repos"
	"github.com/petuhovskiy/lootkit/internal/wrand"
)

type App struct {
	Config       *conf.App
	DB           *gorm.DB
	Repo         *Repos
	Register     *bgjobs.Register
	Feed         *feed.Hub
	Rng          *wrand.LockedSource
	TableFilters []repos.Filter
}

func NewAppFromEnv() (*App, error) {
	cfg, err := conf.ParseEnv()
	if err != nil {
		return nil, fmt.Errorf("failed to parse config from env: %w", err)
	}

	var tableFilters []repos.Filter
	if cfg.TableFilter != "" {
		tableFilters = append(tableFilters, repos.RawFilter(cfg.TableFilter))
	}
	log.Info(context.Background(), "using table filters", zap.Any("filters", tableFilters))

	db, err := connectDB(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to postgres: %w", err)
	}

	repo, err := createRepos(db, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create repos: %w", err)
	}

	return &App{
		Config:       cfg,
		DB:           db,
		Repo:         repo,
		Register:     bgjobs.NewRegister(),
		Feed:         feed.NewHub(),
		Rng:          wrand.NewSource(cfg.RngSeed),
		TableFilters: tableFilters,
	}, nil
}

var (
	PicksTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "lootkit_picks_total",
		Help: "Number of picks from weighted tables",
	}, []string{"table", "result"})

	DrawSaveErrors = promauto.NewCounter(prometheus.CounterOpts{
		Name: "lootkit_draw_save_errors_total",
		Help: "Number of draws that failed to persist",
	})
)

func (a *App) StartPrometheus() {
	go func() {
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.Handler())
		err := http.ListenAndServe(a.Config.PrometheusBind, mux)
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal(context.TODO(), "prometheus server error", zap.Error(err))
		}
	}()
}

func connectDB(cfg *conf.App) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.PostgresDSN), &gorm.Config{})
	if err != nil {
		return nil, err
	}
	return db, nil
}

type Repos struct {
	Table *repos.TableRepo
	Draw  *repos.DrawRepo
}

func createRepos(db *gorm.DB, cfg *conf.App) (*Repos, error) {
	err := db.AutoMigrate(
		&models.WeightTable{},
		&models.Draw{},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to migrate: %w", err)
	}

	if cfg.DebugDB {
		db = db.Debug()
	}

	return &Repos{
		Table: repos.NewTableRepo(db),
		Draw:  repos.NewDrawRepo(db),
	}, nil
}
