package scriptgen

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/petuhovskiy/lootkit/internal/conf"
	"github.com/petuhovskiy/lootkit/internal/log"
)

const scriptExt = ".cs"

const creationTimeLayout = "Monday, January 02 2006"

const header = `/*
#SCRIPTNAME#.cs

Description: To be filled in.
Author: #AUTHORNAME#
Created: #CREATIONTIME#
Unity Version: #UNITYVERSION#
Contact: #AUTHOREMAIL#
*/
`

var ErrExists = fmt.Errorf("file already exists")

// Generator creates scripts from templates and stamps them with a header.
type Generator struct {
	cfg  *conf.Scriptgen
	fsys fs.FS
	now  func() time.Time
}

func NewGenerator(cfg *conf.Scriptgen) (*Generator, error) {
	var fsys fs.FS
	if cfg.TemplateDir != "" {
		fsys = os.DirFS(cfg.TemplateDir)
	} else {
		sub, err := fs.Sub(embedded, "templates")
		if err != nil {
			return nil, err
		}
		fsys = sub
	}

	return &Generator{
		cfg:  cfg,
		fsys: fsys,
		now:  time.Now,
	}, nil
}

// Generate creates a new script of the given kind in dir. Empty name means the
// template default. Existing files are never overwritten.
func (g *Generator) Generate(ctx context.Context, kind Kind, dir string, name string) (string, error) {
	tmpl, err := Lookup(kind)
	if err != nil {
		return "", err
	}

	if name == "" {
		name = tmpl.DefaultName
	}
	if filepath.Ext(name) != scriptExt {
		name += scriptExt
	}
	path := filepath.Join(dir, name)
	ctx = log.With(ctx, zap.String("path", path), zap.String("kind", string(kind)))

	content, err := fs.ReadFile(g.fsys, tmpl.Path)
	if err != nil {
		return "", fmt.Errorf("failed to read template %s: %w", tmpl.Path, err)
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if errors.Is(err, fs.ErrExist) {
		return "", fmt.Errorf("%s: %w", path, ErrExists)
	}
	if err != nil {
		return "", err
	}

	_, err = f.WriteString(g.render(scriptName(path), string(content)))
	if closeErr := f.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		return "", fmt.Errorf("failed to write script: %w", err)
	}

	log.Debug(ctx, "script generated")
	return path, nil
}

// Stamp prepends the header to an existing script and substitutes its placeholders.
// A `.meta` path refers to its script. Files other than scripts are left untouched.
func (g *Generator) Stamp(ctx context.Context, path string) error {
	path = strings.TrimSuffix(path, ".meta")
	if filepath.Ext(path) != scriptExt {
		return nil
	}

	info, err := os.Stat(path)
	if err != nil {
		return err
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read script: %w", err)
	}

	err = os.WriteFile(path, []byte(g.render(scriptName(path), string(content))), info.Mode().Perm())
	if err != nil {
		return fmt.Errorf("failed to write script: %w", err)
	}

	log.Debug(ctx, "script stamped", zap.String("path", path))
	return nil
}

func (g *Generator) render(name string, content string) string {
	body := strings.NewReplacer(
		"#NAMESPACE#", g.cfg.Namespace,
		"#SCRIPTNAME#", name,
	).Replace(content)

	head := strings.NewReplacer(
		"#SCRIPTNAME#", name,
		"#AUTHORNAME#", g.cfg.Author,
		"#CREATIONTIME#", g.now().Format(creationTimeLayout),
		"#UNITYVERSION#", g.cfg.EngineVersion,
		"#AUTHOREMAIL#", g.cfg.Email,
	).Replace(header)

	return head + body
}

func scriptName(path string) string {
	return strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
}
