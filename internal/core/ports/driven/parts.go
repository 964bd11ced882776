package driven

import "context"

// PartNames lists the fixed part set produced by the engine's export
// and expected by the runtime load path, in import order.
var PartNames = []string{"manifest", "docs-1", "docs-2", "docs-3"}

// PartWriter persists serialised index parts. The offline builder
// writes one file per part under a fixed output directory.
type PartWriter interface {
	// WritePart stores one part. The part name maps to the file name.
	WritePart(ctx context.Context, part IndexPart) error
}

// PartSource loads serialised index parts for the runtime service.
// Implementations must fail with domain.ErrPartInvalid when a part is
// missing, malformed, or served with a non-JSON content type, so the
// service can abandon the precomputed-load path as a whole.
type PartSource interface {
	// ReadPart fetches one part by its fixed name.
	ReadPart(ctx context.Context, name string) (IndexPart, error)
}
