package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"

	"github.com/petuhovskiy/lootkit/internal/conf"
	"github.com/petuhovskiy/lootkit/internal/log"
	"github.com/petuhovskiy/lootkit/internal/scriptgen"
)

var self = log.Name("scriptgen")

func main() {
	defer log.DefaultGlobals()()
	ctx := context.Background()

	kinds := make([]string, 0, 3)
	for _, k := range scriptgen.Kinds() {
		kinds = append(kinds, string(k))
	}

	kind := flag.String("kind", string(scriptgen.KindBehaviour), fmt.Sprintf("script kind (%s)", strings.Join(kinds, ", ")))
	name := flag.String("name", "", "script name, template default if empty")
	dir := flag.String("dir", ".", "directory to create the script in")
	stamp := flag.String("stamp", "", "add the header to an existing script instead of creating one")
	flag.Parse()

	cfg, err := conf.ParseScriptgenEnv()
	if err != nil {
		log.Fatal(ctx, "failed to parse config from env", zap.Error(err))
	}

	gen, err := scriptgen.NewGenerator(cfg)
	if err != nil {
		log.Fatal(ctx, "failed to init generator", zap.Error(err))
	}

	if *stamp != "" {
		err = gen.Stamp(ctx, *stamp)
		if err != nil {
			log.LogError(ctx, self, err)
			os.Exit(1)
		}
		log.LogSuccess(ctx, self, "stamped", *stamp)
		return
	}

	path, err := gen.Generate(ctx, scriptgen.Kind(*kind), *dir, *name)
	if err != nil {
		log.LogError(ctx, self, err, "Something went wrong. Perhaps check the template path?")
		os.Exit(1)
	}
	log.LogSuccess(ctx, self, "created", path)
}
