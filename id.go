package svgdom

import (
	"github.com/google/uuid"
)

// idPrefix tags every generated id.
const idPrefix = "id_"

// GenerateID returns a fresh identifier for use on SVG elements: the fixed
// prefix "id_" followed by a short random component. Uniqueness is
// probabilistic and depends on the quality of the underlying randomness
// source; no collision check is performed.
func GenerateID() string {
	return idPrefix + uuid.NewString()[:8]
}
