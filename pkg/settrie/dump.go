package settrie

import (
	"fmt"
	"io"
	"strings"

	"github.com/khalid-nowaf/settrie/pkg/trie"
)

// ##################################################
//  useful during development, debugging and testing
// ##################################################

// rootLabel is printed for the root, which holds no element.
const rootLabel = "{}"

// DumpOptions controls the rotated tree printed by WriteTree.
type DumpOptions struct {
	Tab   string // indentation unit, a space by default
	Width int    // indentation units per level, 2 by default
	// Decorate, if set, wraps the marker of terminal nodes, e.g. to colorize it.
	Decorate func(marker string) string
}

func (o DumpOptions) withDefaults() DumpOptions {
	if o.Tab == "" {
		o.Tab = " "
	}
	if o.Width <= 0 {
		o.Width = 2
	}
	return o
}

// dumpTree prints one line per node in pre-order: the element indented by its depth,
// followed by marker(slot) when a stored set ends there.
func dumpTree[E, S any](w io.Writer, t *trie.Trie[E, S], opts DumpOptions, marker func(S) string) error {
	opts = opts.withDefaults()

	var err error
	t.WalkNodes(func(n *trie.Node[E, S], depth int) bool {
		line := rootLabel
		if depth > 0 {
			line = strings.Repeat(opts.Tab, depth*opts.Width) + fmt.Sprint(n.Element)
		}
		if n.Terminal {
			m := marker(n.Slot)
			if opts.Decorate != nil {
				m = opts.Decorate(m)
			}
			line += m
		}
		_, err = fmt.Fprintln(w, line)
		return err == nil
	})
	return err
}

func setMarker(struct{}) string { return "#" }

func valueMarker[V any](v V) string { return fmt.Sprintf(": %v", v) }
