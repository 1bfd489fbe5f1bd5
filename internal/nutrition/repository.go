package nutrition

import (
	"context"
	"errors"

	"github.com/abduljamac/kcalpall/internal/llm"
)

// ErrProductNotFound is returned by GetProduct when the id does not
// exist. Connectivity failures are returned as-is.
var ErrProductNotFound = errors.New("product not found")

// Repository defines all database operations for stored labels.
type Repository interface {

	// Insert one products row, returning the generated id.
	InsertProduct(ctx context.Context, name string) (int, error)

	// Insert one nutritional_info row for a product. Each row is
	// attempted independently; the caller decides what a failure means.
	InsertServing(
		ctx context.Context,
		productID int,
		servingLabel string,
		values llm.NutritionValues,
	) error

	// Look up one product by id.
	GetProduct(ctx context.Context, productID int) (Product, error)

	// All serving rows for a product, in insertion order.
	ListServings(ctx context.Context, productID int) ([]Info, error)
}
