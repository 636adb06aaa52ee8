package scriptgen

import (
	"embed"
	"fmt"
	"sort"

	"github.com/petuhovskiy/lootkit/internal/singleton"
)

//go:embed templates/*.txt
var embedded embed.FS

type Kind string

const (
	KindPlain      Kind = "plain"
	KindBehaviour  Kind = "behaviour"
	KindScriptable Kind = "scriptable"
)

var ErrUnknownKind = fmt.Errorf("unknown script kind")

// Template describes one of the script templates.
type Template struct {
	Kind        Kind
	DefaultName string
	// Path inside the template directory.
	Path string
}

var registry = singleton.New(func() map[Kind]Template {
	return map[Kind]Template{
		KindPlain: {
			Kind:        KindPlain,
			DefaultName: "NewScript.cs",
			Path:        "plain.cs.txt",
		},
		KindBehaviour: {
			Kind:        KindBehaviour,
			DefaultName: "NewBehaviour.cs",
			Path:        "behaviour.cs.txt",
		},
		KindScriptable: {
			Kind:        KindScriptable,
			DefaultName: "NewScriptableObject.cs",
			Path:        "scriptable.cs.txt",
		},
	}
})

func Lookup(kind Kind) (Template, error) {
	tmpl, ok := registry.Instance()[kind]
	if !ok {
		return Template{}, fmt.Errorf("%q: %w", kind, ErrUnknownKind)
	}
	return tmpl, nil
}

// Kinds returns all known kinds, sorted.
func Kinds() []Kind {
	var kinds []Kind
	for kind := range registry.Instance() {
		kinds = append(kinds, kind)
	}
	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })
	return kinds
}
