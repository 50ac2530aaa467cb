// Package render substitutes ${key} placeholders in text templates. It's meant to be used
// by resource handlers producing their bodies.
package render

import (
	"strings"
)

// Template replaces every ${key} with its value from the context. Placeholders missing from
// the context are left as is. Values are never re-scanned for placeholders.
func Template(template string, context map[string]string) string {
	if len(context) == 0 {
		return template
	}

	oldnew := make([]string, 0, len(context)*2)
	for key, value := range context {
		oldnew = append(oldnew, "${"+key+"}", value)
	}

	return strings.NewReplacer(oldnew...).Replace(template)
}
