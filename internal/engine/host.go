package engine

import (
	"sort"
	"strings"
)

// HostCPUName reports the engine's name for the running CPU, at the
// granularity the backends distinguish (micro-architecture level, not
// marketing name).
func HostCPUName() string {
	return hostCPUName()
}

// HostCPUFeatures reports the host's feature set in the engine's wire
// format: comma-joined (+|-)name tokens, sorted by name. Both present and
// absent features are listed, matching how backends report host capability.
func HostCPUFeatures() string {
	features := hostCPUFeatures()
	names := make([]string, 0, len(features))
	for name := range features {
		names = append(names, name)
	}
	sort.Strings(names)
	var b strings.Builder
	for i, name := range names {
		if i > 0 {
			b.WriteByte(',')
		}
		if features[name] {
			b.WriteByte('+')
		} else {
			b.WriteByte('-')
		}
		b.WriteString(name)
	}
	return b.String()
}
