package tables

import (
	"context"
	"fmt"
	"reflect"
	"sort"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/petuhovskiy/lootkit/internal/app"
	"github.com/petuhovskiy/lootkit/internal/bgjobs"
	"github.com/petuhovskiy/lootkit/internal/feed"
	"github.com/petuhovskiy/lootkit/internal/log"
	"github.com/petuhovskiy/lootkit/internal/models"
	"github.com/petuhovskiy/lootkit/internal/rdesc"
	"github.com/petuhovskiy/lootkit/internal/repos"
	"github.com/petuhovskiy/lootkit/internal/wrand"
)

const DefaultUpdateInterval = time.Second * 5

var ErrUnknownTable = fmt.Errorf("unknown table")

type tableLoader interface {
	AllEnabled(filters []repos.Filter) ([]models.WeightTable, error)
}

type drawSaver interface {
	Save(draw *models.Draw) error
}

type publisher interface {
	Publish(typ string, data any) bool
}

// Service picks items from weighted tables stored in the database.
type Service struct {
	loader         tableLoader
	saver          drawSaver
	feed           publisher
	register       *bgjobs.Register
	rng            wrand.Source
	node           string
	filters        []repos.Filter
	updateInterval time.Duration
	picks          *prometheus.CounterVec
	saveErrors     prometheus.Counter

	mu         sync.Mutex
	lastUpdate time.Time
	dbTables   []models.WeightTable
	loaded     map[string]loadedTable
}

type loadedTable struct {
	id   uint
	desc *rdesc.Table
}

func NewService(a *app.App) *Service {
	updateInterval := a.Config.TableUpdateInterval
	if updateInterval <= 0 {
		updateInterval = DefaultUpdateInterval
	}

	return &Service{
		loader:         a.Repo.Table,
		saver:          a.Repo.Draw,
		feed:           a.Feed,
		register:       a.Register,
		rng:            a.Rng,
		node:           a.Config.Node,
		filters:        a.TableFilters,
		updateInterval: updateInterval,
		picks:          app.PicksTotal,
		saveErrors:     app.DrawSaveErrors,
	}
}

func (s *Service) fetchTables(ctx context.Context) (map[string]loadedTable, error) {
	ctx = log.Into(ctx, "fetchTables")

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.loaded != nil && time.Since(s.lastUpdate) < s.updateInterval {
		return s.loaded, nil
	}

	dbTables, err := s.loader.AllEnabled(s.filters)
	if err != nil {
		return nil, err
	}
	ts := time.Now()

	if s.loaded != nil && reflect.DeepEqual(s.dbTables, dbTables) {
		s.lastUpdate = ts
		return s.loaded, nil
	}

	log.Info(ctx, "tables updated, loading", zap.Int("count", len(dbTables)))
	loaded := make(map[string]loadedTable, len(dbTables))
	for _, dbTable := range dbTables {
		desc, err := rdesc.ParseTable(dbTable.Desc)
		if err != nil {
			log.Error(ctx, "failed to load table", zap.String("name", dbTable.Name), zap.Error(err))
			continue
		}
		if desc.Name != dbTable.Name {
			log.Warn(ctx, "table name mismatch, using row name",
				zap.String("row", dbTable.Name), zap.String("desc", desc.Name))
			desc.Name = dbTable.Name
		}

		// lower priority loaded first wins
		if _, ok := loaded[desc.Name]; ok {
			continue
		}
		loaded[desc.Name] = loadedTable{id: dbTable.ID, desc: desc}
	}

	s.dbTables = dbTables
	s.loaded = loaded
	s.lastUpdate = ts
	return loaded, nil
}

// Names returns sorted names of all loaded tables.
func (s *Service) Names(ctx context.Context) ([]string, error) {
	tables, err := s.fetchTables(ctx)
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(tables))
	for name := range tables {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

// Pick draws an item from the named table. Every draw is persisted and published,
// including the failed ones.
func (s *Service) Pick(ctx context.Context, name string) (*models.Draw, error) {
	ctx = log.With(ctx, zap.String("table", name))

	tables, err := s.fetchTables(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch tables: %w", err)
	}

	table, ok := tables[name]
	if !ok {
		return nil, fmt.Errorf("%q: %w", name, ErrUnknownTable)
	}

	rec := &rollRecorder{src: s.rng}
	idx, pickErr := table.desc.Items.PickIndex(rec)

	draw := &models.Draw{
		TableID:   table.id,
		TableName: name,
		Index:     idx,
		Roll:      rec.roll,
		Node:      s.node,
	}
	if pickErr != nil {
		draw.Error = pickErr.Error()
		s.picks.WithLabelValues(name, "error").Inc()
	} else {
		draw.Item = table.desc.Items[idx].Item
		s.picks.WithLabelValues(name, "ok").Inc()
	}

	s.saveDraw(ctx, *draw)
	if s.feed != nil && !s.feed.Publish(feed.MessageTypeDraw, *draw) {
		log.Warn(ctx, "feed is full, draw not published")
	}

	if pickErr != nil {
		return nil, pickErr
	}
	log.Debug(ctx, "picked", zap.String("item", draw.Item), zap.Float64("roll", draw.Roll))
	return draw, nil
}

func (s *Service) saveDraw(ctx context.Context, draw models.Draw) {
	s.register.Go(func() {
		err := s.saver.Save(&draw)
		if err != nil {
			s.saveErrors.Inc()
			log.Error(ctx, "failed to persist draw", zap.Error(err))
		}
	})
}

// rollRecorder remembers the last draw of the underlying source.
type rollRecorder struct {
	src  wrand.Source
	roll float64
}

func (r *rollRecorder) Float64() float64 {
	r.roll = r.src.Float64()
	return r.roll
}
