package nutrition

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/abduljamac/kcalpall/internal/llm"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// --------------------------------------------------
// INSERT PRODUCT
// --------------------------------------------------
func (r *PostgresRepository) InsertProduct(
	ctx context.Context,
	name string,
) (int, error) {

	var productID int

	err := r.db.QueryRow(ctx, `
		INSERT INTO products (name)
		VALUES ($1)
		RETURNING id
	`, name).Scan(&productID)

	return productID, err
}

// --------------------------------------------------
// INSERT SERVING ROW
// --------------------------------------------------
func (r *PostgresRepository) InsertServing(
	ctx context.Context,
	productID int,
	servingLabel string,
	values llm.NutritionValues,
) error {

	_, err := r.db.Exec(ctx, `
		INSERT INTO nutritional_info (
			product_id,
			serving_label,
			energy_kj,
			energy_kcal,
			fat_total,
			fat_saturates,
			carbohydrate_total,
			carbohydrate_sugars,
			fibre,
			protein,
			salt
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`,
		productID,
		servingLabel,
		values.Energy.Kj,
		values.Energy.Kcal,
		values.Fat.Total,
		values.Fat.Saturates,
		values.Carbohydrate.Total,
		values.Carbohydrate.Sugars,
		values.Fibre,
		values.Protein,
		values.Salt,
	)

	return err
}

// --------------------------------------------------
// GET PRODUCT
// --------------------------------------------------
func (r *PostgresRepository) GetProduct(
	ctx context.Context,
	productID int,
) (Product, error) {

	var p Product

	err := r.db.QueryRow(ctx, `
		SELECT id, name
		FROM products
		WHERE id = $1
	`, productID).Scan(&p.ID, &p.Name)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Product{}, ErrProductNotFound
		}
		return Product{}, err
	}

	return p, nil
}

// --------------------------------------------------
// LIST SERVING ROWS
// --------------------------------------------------
func (r *PostgresRepository) ListServings(
	ctx context.Context,
	productID int,
) ([]Info, error) {

	rows, err := r.db.Query(ctx, `
		SELECT
			id,
			product_id,
			serving_label,
			energy_kj,
			energy_kcal,
			fat_total,
			fat_saturates,
			carbohydrate_total,
			carbohydrate_sugars,
			fibre,
			protein,
			salt
		FROM nutritional_info
		WHERE product_id = $1
		ORDER BY id ASC
	`, productID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var servings []Info

	for rows.Next() {
		var s Info
		if err := rows.Scan(
			&s.ID,
			&s.ProductID,
			&s.ServingLabel,
			&s.EnergyKj,
			&s.EnergyKcal,
			&s.FatTotal,
			&s.FatSaturates,
			&s.CarbohydrateTotal,
			&s.CarbohydrateSugars,
			&s.Fibre,
			&s.Protein,
			&s.Salt,
		); err != nil {
			return nil, err
		}

		servings = append(servings, s)
	}

	return servings, rows.Err()
}
