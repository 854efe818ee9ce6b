package engine

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/atomicstack/tiledeck/internal/logging/events"
	"github.com/atomicstack/tiledeck/internal/tiles"
)

// View routes handed to the navigation collaborator.
const (
	RouteNewTile    = "tiles/new"
	RouteCategories = "categories"
	RouteSettings   = "settings"
)

// RouteEditTile returns the editor route for the tile at index i of the
// named category.
func RouteEditTile(category string, i int) string {
	return fmt.Sprintf("tiles/edit/%s/%d", category, i)
}

// internalOps is the closed set of operations reachable from tile
// commands. The historical "editCategoires" spelling is kept because
// persisted decks may still carry it.
var internalOps = map[string]func(*Engine){
	"addTile":        (*Engine).addTile,
	"editCategoires": (*Engine).editCategories,
	"editCategories": (*Engine).editCategories,
	"settings":       (*Engine).settings,
	"exit":           (*Engine).exit,
}

// internalOp extracts the operation identifier from an internal command.
// "about:tiledeck/add-tile" yields ("addTile", true); commands outside the
// about:<app>/ shape are not internal.
func internalOp(command string) (string, bool) {
	if !strings.HasPrefix(command, tiles.CommandScheme) {
		return "", false
	}
	rest := strings.TrimPrefix(command, tiles.CommandScheme)
	slash := strings.IndexByte(rest, '/')
	if slash < 0 {
		return "", false
	}
	return camelize(rest[slash+1:]), true
}

// camelize converts a hyphenated path segment to its operation identifier:
// "add-tile" becomes "addTile".
func camelize(segment string) string {
	parts := strings.Split(segment, "-")
	var b strings.Builder
	first := true
	for _, part := range parts {
		if part == "" {
			continue
		}
		if first {
			b.WriteString(part)
			first = false
			continue
		}
		runes := []rune(part)
		b.WriteRune(unicode.ToUpper(runes[0]))
		b.WriteString(string(runes[1:]))
	}
	return b.String()
}

// dispatchInternal routes an operation identifier to its engine method.
// Unknown identifiers are ignored so unrecognized system tiles never break
// navigation.
func (e *Engine) dispatchInternal(op string) {
	handler, ok := internalOps[op]
	if !ok {
		events.Action.UnknownInternal(op)
		return
	}
	events.Action.Internal(op)
	handler(e)
}

func (e *Engine) addTile() {
	e.navigateTo(RouteNewTile)
}

func (e *Engine) editCategories() {
	e.navigateTo(RouteCategories)
}

func (e *Engine) settings() {
	e.navigateTo(RouteSettings)
}

func (e *Engine) exit() {
	if e.deps.Quit != nil {
		e.deps.Quit.Quit()
	}
}
