package log

import (
	"context"
	"fmt"
	"strings"
)

// Named is anything that can be shown as the source of a tagged log line.
type Named interface {
	Name() string
}

// Name is a plain string source.
type Name string

func (n Name) Name() string {
	return string(n)
}

const nullObject = "NullObject"

// ANSI colors used in tagged lines.
const (
	colorRed       = "31"
	colorGreen     = "32"
	colorYellow    = "33"
	colorLightBlue = "94"
)

var (
	prefixError   = colorize("<!>", colorRed)
	prefixWarning = colorize("<?>", colorYellow)
	prefixSuccess = colorize("<O>", colorGreen)
)

func colorize(s string, color string) string {
	return "\x1b[" + color + "m" + s + "\x1b[0m"
}

// Format builds a tagged line: `<prefix>[<name>]: m1; m2`.
func Format(prefix string, obj Named, msg ...any) string {
	name := nullObject
	if obj != nil {
		name = obj.Name()
	}

	parts := make([]string, 0, len(msg))
	for _, m := range msg {
		parts = append(parts, fmt.Sprint(m))
	}

	return fmt.Sprintf("%s[%s]: %s", prefix, colorize(name, colorLightBlue), strings.Join(parts, "; "))
}

// Log writes an untagged info line on behalf of obj.
func Log(ctx context.Context, obj Named, msg ...any) {
	FromContext(ctx).Info(Format("", obj, msg...))
}

// LogError writes a red `<!>` line at error level.
func LogError(ctx context.Context, obj Named, msg ...any) {
	FromContext(ctx).Error(Format(prefixError, obj, msg...))
}

// LogWarning writes a yellow `<?>` line at warn level.
func LogWarning(ctx context.Context, obj Named, msg ...any) {
	FromContext(ctx).Warn(Format(prefixWarning, obj, msg...))
}

// LogSuccess is Log with a green `<O>` marker.
func LogSuccess(ctx context.Context, obj Named, msg ...any) {
	FromContext(ctx).Info(Format(prefixSuccess, obj, msg...))
}
