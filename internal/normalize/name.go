package normalize

import (
	"strings"

	"golang.org/x/text/cases"
)

// Name folds case and collapses whitespace so lookups ignore how a name
// was typed.
func Name(name string) string {
	return cases.Fold().String(strings.Join(strings.Fields(name), " "))
}
