package tablestream

import (
	"github.com/mdtables/tablestream/internal/options"
)

type config struct {
	lenientBounds         bool
	withoutSchemaCache    bool
	reservedFieldWarnings bool
}

func defaultConfig() *config {
	return &config{}
}

// OpenOption configures Open and OpenFromStreams.
type OpenOption = options.Option[*config]

// WithLenientBounds makes Open tolerate a table whose declared bounds
// exceed the buffer by dropping that table (and every table after it in
// ascending order, since ranges are computed cumulatively) from Iter
// instead of failing with ErrTruncated. The tables before the overflowing
// one stay available through Table and Iter.
func WithLenientBounds() OpenOption {
	return options.NoError(func(c *config) { c.lenientBounds = true })
}

// WithoutSchemaCache disables the package-level schema cache for this
// Open call, forcing schema resolution to run from scratch. Correctness
// is identical either way; this only affects allocation and CPU cost.
func WithoutSchemaCache() OpenOption {
	return options.NoError(func(c *config) { c.withoutSchemaCache = true })
}

// WithReservedFieldWarnings downgrades a reserved-field mismatch
// (Reserved0 != 0 or Reserved1 != 1) from a fatal ErrReservedFieldMismatch
// to an entry collected in Reader.Warnings(), for compatibility with
// producers that violate the reserved-field convention.
func WithReservedFieldWarnings() OpenOption {
	return options.NoError(func(c *config) { c.reservedFieldWarnings = true })
}
