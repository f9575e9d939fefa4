package writes

import (
	"time"

	gowrites "github.com/reoring/gowrites"
	"github.com/reoring/gowrites/docvalue"
)

// TimeMillis returns the default time writer: milliseconds since the Unix
// epoch as an exact Number.
func TimeMillis() gowrites.Writer[time.Time] {
	return gowrites.WriterFunc[time.Time](func(t time.Time) docvalue.Value {
		return docvalue.NumberOf(t.UnixMilli())
	})
}

// TimeFormat returns a time writer rendering values as strings via the given
// Go reference layout (e.g. "2006-01-02"). Layouts are plain reference
// strings, so construction cannot fail; an unusual layout renders
// deterministically rather than erroring. The layout is captured immutably
// for the writer's lifetime.
func TimeFormat(layout string) gowrites.Writer[time.Time] {
	return gowrites.WriterFunc[time.Time](func(t time.Time) docvalue.Value {
		return docvalue.Str(t.Format(layout))
	})
}
