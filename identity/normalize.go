package identity

import (
	"strings"

	"github.com/katalvlaran/roadtrip/records"
)

// normalize folds a free-text name for lookup: parenthetical aliases
// removed, lower case, inner whitespace collapsed.
func normalize(name string) string {
	return strings.Join(strings.Fields(strings.ToLower(records.StripAlias(name))), " ")
}
