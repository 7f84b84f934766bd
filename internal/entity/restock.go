package entity

import (
	"time"

	"github.com/google/uuid"
)

// RestockLog is one append-only stock addition. The engine only reads these;
// it never writes stock back.
type RestockLog struct {
	ID        uuid.UUID  `json:"id"`
	ProductID uuid.UUID  `json:"product_id"`
	VariantID *uuid.UUID `json:"variant_id,omitempty"`
	Quantity  int        `json:"quantity"`
	Timestamp time.Time  `json:"timestamp"`
	Actor     string     `json:"actor,omitempty"`
}
