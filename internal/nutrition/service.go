package nutrition

import (
	"context"
	"errors"
	"log"

	"github.com/abduljamac/kcalpall/internal/llm"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// --------------------------------------------------
// SAVE RECORD (PRODUCT FIRST, LENIENT SERVING ROWS)
// --------------------------------------------------

// Save decomposes one extracted record into a products row plus one
// nutritional_info row per serving. The product insert is fatal on
// failure. Serving inserts are attempted independently, in record
// order; failures are collected into the result instead of aborting.
// No dedup: saving the same record twice creates two products.
func (s *Service) Save(
	ctx context.Context,
	record llm.NutritionRecord,
) (StoreResult, error) {

	productID, err := s.repo.InsertProduct(ctx, record.Name)
	if err != nil {
		return StoreResult{}, &StoreError{
			Reason: insertFailureReason(err),
			Detail: err.Error(),
		}
	}

	var failed []ServingFailure

	for i, entry := range record.NutritionalInfo {
		err := s.repo.InsertServing(ctx, productID, entry.Per, entry.Values)
		if err != nil {
			log.Printf(
				"serving insert failed product=%d index=%d label=%q: %v",
				productID, i, entry.Per, err,
			)
			failed = append(failed, ServingFailure{
				Index:        i,
				ServingLabel: entry.Per,
				Error:        err.Error(),
			})
		}
	}

	return StoreResult{
		Success:        true,
		ProductID:      productID,
		FailedServings: failed,
	}, nil
}

// --------------------------------------------------
// FETCH PRODUCT + SERVINGS
// --------------------------------------------------

// Fetch returns the product and all of its serving rows, or a typed
// error. Never a partial result.
func (s *Service) Fetch(
	ctx context.Context,
	productID int,
) (Product, []Info, error) {

	product, err := s.repo.GetProduct(ctx, productID)
	if err != nil {
		if errors.Is(err, ErrProductNotFound) {
			return Product{}, nil, &StoreError{Reason: ReasonNotFound}
		}
		return Product{}, nil, &StoreError{
			Reason: ReasonUnreachable,
			Detail: err.Error(),
		}
	}

	servings, err := s.repo.ListServings(ctx, productID)
	if err != nil {
		return Product{}, nil, &StoreError{
			Reason: ReasonUnreachable,
			Detail: err.Error(),
		}
	}

	return product, servings, nil
}
