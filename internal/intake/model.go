package intake

import "time"

// DateLayout is the dd/MM/yyyy form entries are recorded with.
const DateLayout = "02/01/2006"

// FoodEntry is one logged consumption record.
type FoodEntry struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Calories  int       `json:"calories"`
	Quantity  int       `json:"quantity"`
	Date      string    `json:"date"`
	CreatedAt time.Time `json:"created_at"`
}

// FoodRecord is a food row exactly as the store holds it.
// Calories and quantity are text columns and are only
// trusted after ParseRecord.
type FoodRecord struct {
	ID        string
	Name      string
	Calories  string
	Quantity  string
	Date      string
	CreatedAt time.Time
}

// DailySummary is derived per query, never persisted.
type DailySummary struct {
	Date             string `json:"date"`
	ConsumedCalories int    `json:"consumed_calories"`
	EntryCount       int    `json:"entry_count"`
}
