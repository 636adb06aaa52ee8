package scriptgen

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/petuhovskiy/lootkit/internal/conf"
	"github.com/petuhovskiy/lootkit/internal/log"
)

func testGenerator(t *testing.T) *Generator {
	_ = log.DefaultGlobals()

	g, err := NewGenerator(&conf.Scriptgen{
		Author:        "Ann Smith",
		Email:         "ann@example.com",
		Namespace:     "Dungeon",
		EngineVersion: "2021.3.1f1",
	})
	require.NoError(t, err)

	g.now = func() time.Time {
		return time.Date(2021, time.November, 22, 10, 0, 0, 0, time.UTC)
	}
	return g
}

const wantHeader = `/*
Player.cs

Description: To be filled in.
Author: Ann Smith
Created: Monday, November 22 2021
Unity Version: 2021.3.1f1
Contact: ann@example.com
*/
`

func TestGenerate(t *testing.T) {
	g := testGenerator(t)
	dir := t.TempDir()

	path, err := g.Generate(context.Background(), KindBehaviour, dir, "Player")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "Player.cs"), path)

	content, err := os.ReadFile(path)
	require.NoError(t, err)

	assert.Contains(t, string(content), wantHeader)
	assert.Contains(t, string(content), "namespace Dungeon")
	assert.Contains(t, string(content), "public class Player : MonoBehaviour")
	assert.NotContains(t, string(content), "#")
}

func TestGenerate_DefaultName(t *testing.T) {
	g := testGenerator(t)
	dir := t.TempDir()

	for _, kind := range Kinds() {
		tmpl, err := Lookup(kind)
		require.NoError(t, err)

		path, err := g.Generate(context.Background(), kind, dir, "")
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(dir, tmpl.DefaultName), path)
	}
}

func TestGenerate_Errors(t *testing.T) {
	g := testGenerator(t)
	dir := t.TempDir()
	ctx := context.Background()

	_, err := g.Generate(ctx, "shader", dir, "")
	assert.ErrorIs(t, err, ErrUnknownKind)

	_, err = g.Generate(ctx, KindPlain, dir, "Loot.cs")
	require.NoError(t, err)
	_, err = g.Generate(ctx, KindPlain, dir, "Loot.cs")
	assert.ErrorIs(t, err, ErrExists)

	g.fsys = fstest.MapFS{}
	_, err = g.Generate(ctx, KindPlain, dir, "Other")
	assert.ErrorContains(t, err, "failed to read template")
	assert.NoFileExists(t, filepath.Join(dir, "Other.cs"))
}

func TestGenerate_TemplateDir(t *testing.T) {
	_ = log.DefaultGlobals()
	tmplDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(tmplDir, "plain.cs.txt"), []byte("// #SCRIPTNAME# in #NAMESPACE#\n"), 0o644))

	g, err := NewGenerator(&conf.Scriptgen{Namespace: "Custom", TemplateDir: tmplDir})
	require.NoError(t, err)

	path, err := g.Generate(context.Background(), KindPlain, t.TempDir(), "Chest")
	require.NoError(t, err)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), "// Chest in Custom\n")
}

func TestStamp(t *testing.T) {
	g := testGenerator(t)
	dir := t.TempDir()
	ctx := context.Background()

	path := filepath.Join(dir, "Player.cs")
	require.NoError(t, os.WriteFile(path, []byte("namespace #NAMESPACE# { class #SCRIPTNAME# {} }\n"), 0o644))

	require.NoError(t, g.Stamp(ctx, path+".meta"))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, wantHeader+"namespace Dungeon { class Player {} }\n", string(content))

	other := filepath.Join(dir, "notes.txt")
	require.NoError(t, os.WriteFile(other, []byte("#SCRIPTNAME#"), 0o644))
	require.NoError(t, g.Stamp(ctx, other))
	content, err = os.ReadFile(other)
	require.NoError(t, err)
	assert.Equal(t, "#SCRIPTNAME#", string(content))

	assert.Error(t, g.Stamp(ctx, filepath.Join(dir, "Missing.cs")))
}
