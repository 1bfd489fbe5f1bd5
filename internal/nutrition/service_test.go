package nutrition

import (
	"context"
	"errors"
	"testing"

	"github.com/abduljamac/kcalpall/internal/llm"
)

func oatBarRecord() llm.NutritionRecord {
	return llm.NutritionRecord{
		Name: "Oat Bar",
		NutritionalInfo: []llm.ServingEntry{
			{
				Per: "per 100g",
				Values: llm.NutritionValues{
					Energy:       llm.EnergyValues{Kj: 1622, Kcal: 387},
					Fat:          llm.FatValues{Total: 12.1, Saturates: 2.3},
					Carbohydrate: llm.CarbValues{Total: 58.4, Sugars: 18.9},
					Fibre:        6.2,
					Protein:      8.1,
					Salt:         0.42,
				},
			},
			{
				Per: "per bar",
				Values: llm.NutritionValues{
					Energy:       llm.EnergyValues{Kj: 567, Kcal: 135},
					Fat:          llm.FatValues{Total: 4.2, Saturates: 0.8},
					Carbohydrate: llm.CarbValues{Total: 20.4, Sugars: 6.6},
					Fibre:        2.2,
					Protein:      2.8,
					Salt:         0.15,
				},
			},
		},
	}
}

func TestSave_ProductAndServingsInOrder(t *testing.T) {
	repo := NewInMemoryRepository()
	service := NewService(repo)

	result, err := service.Save(context.Background(), oatBarRecord())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !result.Success {
		t.Fatal("expected success")
	}
	if len(result.FailedServings) != 0 {
		t.Fatalf("expected no failed servings, got %d", len(result.FailedServings))
	}

	product, err := repo.GetProduct(context.Background(), result.ProductID)
	if err != nil {
		t.Fatal(err)
	}
	if product.Name != "Oat Bar" {
		t.Fatalf("expected product name Oat Bar, got %q", product.Name)
	}

	servings, _ := repo.ListServings(context.Background(), result.ProductID)
	if len(servings) != 2 {
		t.Fatalf("expected 2 serving rows, got %d", len(servings))
	}
	if servings[0].ServingLabel != "per 100g" || servings[1].ServingLabel != "per bar" {
		t.Fatalf("serving order not preserved: %q, %q",
			servings[0].ServingLabel, servings[1].ServingLabel)
	}
	for _, s := range servings {
		if s.ProductID != result.ProductID {
			t.Fatalf("serving row references product %d, want %d",
				s.ProductID, result.ProductID)
		}
	}
	if servings[1].EnergyKcal != 135 {
		t.Fatalf("expected per-bar kcal 135, got %v", servings[1].EnergyKcal)
	}
}

func TestSave_PartialServingFailure(t *testing.T) {
	repo := NewInMemoryRepository()
	repo.servingErrs["per bar"] = errors.New("connection reset")
	service := NewService(repo)

	result, err := service.Save(context.Background(), oatBarRecord())
	if err != nil {
		t.Fatalf("expected overall success, got error: %v", err)
	}

	if !result.Success {
		t.Fatal("expected success despite one failed serving")
	}
	if len(result.FailedServings) != 1 {
		t.Fatalf("expected 1 failed serving, got %d", len(result.FailedServings))
	}

	failure := result.FailedServings[0]
	if failure.Index != 1 || failure.ServingLabel != "per bar" {
		t.Fatalf("wrong failure reported: %+v", failure)
	}
	if failure.Error == "" {
		t.Fatal("expected failure detail")
	}

	// The first row must still be stored.
	servings, _ := repo.ListServings(context.Background(), result.ProductID)
	if len(servings) != 1 || servings[0].ServingLabel != "per 100g" {
		t.Fatalf("expected the per 100g row to remain, got %+v", servings)
	}
}

func TestSave_ProductInsertFailed(t *testing.T) {
	repo := NewInMemoryRepository()
	repo.productErr = errors.New("permission denied")
	service := NewService(repo)

	_, err := service.Save(context.Background(), oatBarRecord())
	if err == nil {
		t.Fatal("expected an error")
	}

	var storeErr *StoreError
	if !errors.As(err, &storeErr) {
		t.Fatalf("expected StoreError, got %T", err)
	}
	if storeErr.Reason != ReasonProductInsertFailed {
		t.Fatalf("expected reason %q, got %q", ReasonProductInsertFailed, storeErr.Reason)
	}

	// No serving rows may be attempted after a product failure.
	if len(repo.servings) != 0 {
		t.Fatal("serving rows were written despite product failure")
	}
}

func TestSave_ConnectivityFailureIsUnreachable(t *testing.T) {
	repo := NewInMemoryRepository()
	repo.productErr = context.DeadlineExceeded
	service := NewService(repo)

	_, err := service.Save(context.Background(), oatBarRecord())
	if err == nil {
		t.Fatal("expected an error")
	}

	var storeErr *StoreError
	if !errors.As(err, &storeErr) {
		t.Fatalf("expected StoreError, got %T", err)
	}
	if storeErr.Reason != ReasonUnreachable {
		t.Fatalf("expected reason %q, got %q", ReasonUnreachable, storeErr.Reason)
	}
}

func TestSave_DuplicateCreatesTwoProducts(t *testing.T) {
	repo := NewInMemoryRepository()
	service := NewService(repo)

	first, err := service.Save(context.Background(), oatBarRecord())
	if err != nil {
		t.Fatal(err)
	}
	second, err := service.Save(context.Background(), oatBarRecord())
	if err != nil {
		t.Fatal(err)
	}

	if first.ProductID == second.ProductID {
		t.Fatalf("duplicate save reused product id %d", first.ProductID)
	}

	firstServings, _ := repo.ListServings(context.Background(), first.ProductID)
	secondServings, _ := repo.ListServings(context.Background(), second.ProductID)
	if len(firstServings) != 2 || len(secondServings) != 2 {
		t.Fatalf("expected 2 rows per product, got %d and %d",
			len(firstServings), len(secondServings))
	}
}

func TestSave_EmptyServingsStillStoresProduct(t *testing.T) {
	repo := NewInMemoryRepository()
	service := NewService(repo)

	record := llm.NutritionRecord{Name: "Mystery Snack"}

	result, err := service.Save(context.Background(), record)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.Success {
		t.Fatal("expected success")
	}

	if _, err := repo.GetProduct(context.Background(), result.ProductID); err != nil {
		t.Fatalf("product row missing: %v", err)
	}
}

func TestFetch_NotFound(t *testing.T) {
	service := NewService(NewInMemoryRepository())

	_, _, err := service.Fetch(context.Background(), 42)
	if err == nil {
		t.Fatal("expected an error")
	}

	var storeErr *StoreError
	if !errors.As(err, &storeErr) {
		t.Fatalf("expected StoreError, got %T", err)
	}
	if storeErr.Reason != ReasonNotFound {
		t.Fatalf("expected reason %q, got %q", ReasonNotFound, storeErr.Reason)
	}
}

func TestFetch_ReturnsProductWithServings(t *testing.T) {
	repo := NewInMemoryRepository()
	service := NewService(repo)

	saved, err := service.Save(context.Background(), oatBarRecord())
	if err != nil {
		t.Fatal(err)
	}

	product, servings, err := service.Fetch(context.Background(), saved.ProductID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if product.Name != "Oat Bar" {
		t.Fatalf("expected Oat Bar, got %q", product.Name)
	}
	if len(servings) != 2 {
		t.Fatalf("expected 2 servings, got %d", len(servings))
	}
}
