package conf

import (
	"time"

	"github.com/caarlos0/env/v6"
)

type App struct {
	PrometheusBind string `env:"PROMETHEUS_BIND" envDefault:":2112"`

	// HTTPBind is an address for the pick API and the live feed.
	HTTPBind string `env:"HTTP_BIND" envDefault:":8080"`

	// PostgresDSN is a DSN for the postgres.
	PostgresDSN string `env:"POSTGRES_DSN,required"`

	// Node is a name of the current instance, stored with every draw.
	Node string `env:"NODE" envDefault:"local-laptop"`

	// RngSeed seeds the shared random source. Zero means time-seeded.
	RngSeed int64 `env:"RNG_SEED" envDefault:"0"`

	// TableUpdateInterval is how often enabled tables are reloaded from the database.
	TableUpdateInterval time.Duration `env:"TABLE_UPDATE_INTERVAL" envDefault:"5s"`

	// TableFilter is a raw SQL condition applied when loading tables.
	TableFilter string `env:"TABLE_FILTER"`

	DebugDB bool `env:"DEBUG_DB" envDefault:"false"`
}

func ParseEnv() (*App, error) {
	cfg := App{}
	err := env.Parse(&cfg)
	if err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Scriptgen configures the script generator CLI.
type Scriptgen struct {
	Author        string `env:"SCRIPTGEN_AUTHOR" envDefault:"unknown"`
	Email         string `env:"SCRIPTGEN_EMAIL"`
	Namespace     string `env:"SCRIPTGEN_NAMESPACE" envDefault:"Game"`
	EngineVersion string `env:"SCRIPTGEN_ENGINE_VERSION" envDefault:"2020.3.22f1"`

	// TemplateDir overrides embedded templates when set.
	TemplateDir string `env:"SCRIPTGEN_TEMPLATE_DIR"`
}

func ParseScriptgenEnv() (*Scriptgen, error) {
	cfg := Scriptgen{}
	err := env.Parse(&cfg)
	if err != nil {
		return nil, err
	}
	return &cfg, nil
}
