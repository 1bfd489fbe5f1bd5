package llm

// NutritionRecord is the parsed result of one label extraction.
// The JSON shape doubles as the schema the model is prompted to
// produce, so it must stay stable.
type NutritionRecord struct {
	Name            string         `json:"name"`
	NutritionalInfo []ServingEntry `json:"nutritionalInfo"`
	Error           string         `json:"error,omitempty"`
}

// ServingEntry is one "Per X" column of the source nutrition table.
type ServingEntry struct {
	Per    string          `json:"per"`
	Values NutritionValues `json:"values"`
}

type NutritionValues struct {
	Energy       EnergyValues `json:"energy"`
	Fat          FatValues    `json:"fat"`
	Carbohydrate CarbValues   `json:"carbohydrate"`
	Fibre        float64      `json:"fibre"`
	Protein      float64      `json:"protein"`
	Salt         float64      `json:"salt"`
}

type EnergyValues struct {
	Kj   float64 `json:"kj"`
	Kcal float64 `json:"kcal"`
}

type FatValues struct {
	Total     float64 `json:"total"`
	Saturates float64 `json:"saturates"`
}

type CarbValues struct {
	Total  float64 `json:"total"`
	Sugars float64 `json:"sugars"`
}
