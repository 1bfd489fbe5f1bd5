package llm

func BuildLabelPrompt() string {
	return `Convert this nutritional information table into JSON using the following format. Create a new nutritionalInfo array entry for EACH 'Per X' column in the table:
{
  "name": "Product Name",
  "nutritionalInfo": [
    {
      "per": "per value as written",
      "values": {
        "energy": {
          "kj": number,
          "kcal": number
        },
        "fat": {
          "total": number,
          "saturates": number
        },
        "carbohydrate": {
          "total": number,
          "sugars": number
        },
        "fibre": number,
        "protein": number,
        "salt": number
      }
    }
  ]
}

Important instructions:
1. Include ALL columns from the nutrition table, creating a new array entry for each 'Per X' column
2. Remove any % values and only use the numerical values
3. Preserve the original units and precision of numbers as shown in the table
4. Ensure all columns are processed in the order they appear in the table`
}
