package log

import (
	"sort"
	"sync/atomic"

	"emperror.dev/errors"
	"github.com/gobwas/glob"
)

type levelOverride struct {
	pattern string
	matcher glob.Glob
	level   Level
}

// levelFilter gives the minimum level of a reporting category.
type levelFilter struct {
	defaultLevel Level
	// Sorted by descending pattern length, the longest match wins.
	overrides []*levelOverride
}

func newLevelFilter(defaultLevel Level) *levelFilter {
	return &levelFilter{defaultLevel: defaultLevel}
}

func buildLevelFilter(level string, overrides map[string]string) (*levelFilter, error) {
	lvl, err := ParseLevel(level)
	if err != nil {
		return nil, err
	}

	f := newLevelFilter(lvl)

	for pattern, ovLevel := range overrides {
		l, err := ParseLevel(ovLevel)
		if err != nil {
			return nil, errors.WithMessagef(err, "override %s", pattern)
		}

		g, err := glob.Compile(pattern)
		if err != nil {
			return nil, errors.Wrapf(err, "override %s", pattern)
		}

		f.overrides = append(f.overrides, &levelOverride{pattern: pattern, matcher: g, level: l})
	}

	sort.Slice(f.overrides, func(i, j int) bool {
		a, b := f.overrides[i], f.overrides[j]
		if len(a.pattern) != len(b.pattern) {
			return len(a.pattern) > len(b.pattern)
		}

		return a.pattern < b.pattern
	})

	return f, nil
}

func (f *levelFilter) minimum(reporting string) Level {
	if reporting != "" {
		for _, ov := range f.overrides {
			if ov.matcher.Match(reporting) {
				return ov.level
			}
		}
	}

	return f.defaultLevel
}

func (f *levelFilter) isEnabled(reporting string, level Level) bool {
	return level >= f.minimum(reporting)
}

// filterHolder is shared between a logger and all its field loggers so that a
// reload is seen by all of them.
type filterHolder struct {
	v atomic.Value
}

func (h *filterHolder) Load() *levelFilter {
	f, _ := h.v.Load().(*levelFilter)
	if f == nil {
		return newLevelFilter(InformationLevel)
	}

	return f
}

func (h *filterHolder) Store(f *levelFilter) {
	h.v.Store(f)
}
