package nutrition

import (
	"context"
	"sync"

	"github.com/abduljamac/kcalpall/internal/llm"
)

/*
InMemoryRepository backs the service in tests. Failures are injected
through productErr / servingErrs to simulate store behavior without a
database.
*/
type InMemoryRepository struct {
	mu       sync.Mutex
	nextID   int
	products map[int]Product
	servings map[int][]Info

	productErr  error
	servingErrs map[string]error // keyed by serving label
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{
		nextID:      1,
		products:    make(map[int]Product),
		servings:    make(map[int][]Info),
		servingErrs: make(map[string]error),
	}
}

func (r *InMemoryRepository) InsertProduct(
	ctx context.Context,
	name string,
) (int, error) {

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.productErr != nil {
		return 0, r.productErr
	}

	id := r.nextID
	r.nextID++
	r.products[id] = Product{ID: id, Name: name}

	return id, nil
}

func (r *InMemoryRepository) InsertServing(
	ctx context.Context,
	productID int,
	servingLabel string,
	values llm.NutritionValues,
) error {

	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.servingErrs[servingLabel]; err != nil {
		return err
	}

	row := Info{
		ID:                 r.nextID,
		ProductID:          productID,
		ServingLabel:       servingLabel,
		EnergyKj:           values.Energy.Kj,
		EnergyKcal:         values.Energy.Kcal,
		FatTotal:           values.Fat.Total,
		FatSaturates:       values.Fat.Saturates,
		CarbohydrateTotal:  values.Carbohydrate.Total,
		CarbohydrateSugars: values.Carbohydrate.Sugars,
		Fibre:              values.Fibre,
		Protein:            values.Protein,
		Salt:               values.Salt,
	}
	r.nextID++
	r.servings[productID] = append(r.servings[productID], row)

	return nil
}

func (r *InMemoryRepository) GetProduct(
	ctx context.Context,
	productID int,
) (Product, error) {

	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.products[productID]
	if !ok {
		return Product{}, ErrProductNotFound
	}

	return p, nil
}

func (r *InMemoryRepository) ListServings(
	ctx context.Context,
	productID int,
) ([]Info, error) {

	r.mu.Lock()
	defer r.mu.Unlock()

	return append([]Info(nil), r.servings[productID]...), nil
}
