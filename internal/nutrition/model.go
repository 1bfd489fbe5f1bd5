package nutrition

// Product is one products row: a label extraction the user accepted
// for storage. Ids are generated by the database.
type Product struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Info is one nutritional_info row, one per "Per X" column of the
// stored label, foreign-keyed to its product.
type Info struct {
	ID                 int     `json:"id"`
	ProductID          int     `json:"product_id"`
	ServingLabel       string  `json:"serving_label"`
	EnergyKj           float64 `json:"energy_kj"`
	EnergyKcal         float64 `json:"energy_kcal"`
	FatTotal           float64 `json:"fat_total"`
	FatSaturates       float64 `json:"fat_saturates"`
	CarbohydrateTotal  float64 `json:"carbohydrate_total"`
	CarbohydrateSugars float64 `json:"carbohydrate_sugars"`
	Fibre              float64 `json:"fibre"`
	Protein            float64 `json:"protein"`
	Salt               float64 `json:"salt"`
}

// ServingFailure reports one serving row that could not be inserted
// during a save. Index is the position of the serving in the record,
// preserved so the report stays deterministic.
type ServingFailure struct {
	Index        int    `json:"index"`
	ServingLabel string `json:"serving_label"`
	Error        string `json:"error"`
}

// StoreResult is the outcome of saving one record. Success means the
// product row landed; individual serving rows may still have failed
// and are reported in FailedServings.
type StoreResult struct {
	Success        bool             `json:"success"`
	ProductID      int              `json:"product_id"`
	FailedServings []ServingFailure `json:"failed_servings,omitempty"`
}
