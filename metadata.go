package zipkit

import (
	"fmt"
	"io/fs"
	"time"

	"github.com/meigma/zipkit/internal/platform"
)

// entryMeta holds the metadata captured for one filesystem entry immediately
// before the corresponding archive entry is opened.
type entryMeta struct {
	modTime time.Time
	mode    fs.FileMode
	hasMode bool
}

// extractMetadata normalizes info into per-entry metadata. The modification
// time is converted to UTC and truncated to whole seconds; the container
// stores nothing finer. A pre-epoch timestamp either fails the entry or
// falls back to the epoch, depending on policy. The permission bitmask is
// taken verbatim where the platform exposes one and left absent otherwise.
func extractMetadata(info fs.FileInfo, policy ModTimePolicy) (entryMeta, error) {
	mt := info.ModTime().UTC().Truncate(time.Second)
	if mt.Before(time.Unix(0, 0)) {
		if policy == ModTimeStrict {
			return entryMeta{}, fmt.Errorf("%s: %w", info.Name(), ErrModTimeBeforeEpoch)
		}
		mt = time.Unix(0, 0).UTC()
	}

	meta := entryMeta{modTime: mt}
	if mode, ok := platform.Mode(info); ok {
		meta.mode = mode
		meta.hasMode = true
	}
	return meta, nil
}
