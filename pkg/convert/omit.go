package convert

import (
	"strings"

	"github.com/cmmoran/kpoet/pkg/km"
)

// shouldOmitProperty determines whether a property is left out of a
// converted class based on the configured exclusions.
func shouldOmitProperty(p km.Property, opts *Options) bool {
	if opts.ExcludeSynthesized && p.Flags.IsSynthesized() {
		return true
	}
	for _, n := range opts.ExcludeProperties {
		if strings.EqualFold(n, p.Name) {
			return true
		}
	}
	return false
}
