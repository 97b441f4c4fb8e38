package models

import (
	"sort"
	"time"

	"github.com/google/uuid"
)

// DietMeal is one meal of the day view: its rows plus their aggregate.
type DietMeal struct {
	Name  string        `json:"name"`
	Order int           `json:"order"`
	Rows  []DietFoodRow `json:"rows"`
	Nutrition
}

// DietDay is the aggregate of everything logged on one date, grouped into
// ordered meals.
type DietDay struct {
	UserID   uuid.UUID  `json:"user_id"`
	Username string     `json:"username"`
	Date     time.Time  `json:"date"`
	Meals    []DietMeal `json:"meals"`
	Nutrition
}

// DietDayResponse pairs the day aggregate with the latest applicable target
// and the remaining vector. Target and remaining are nil when the user has
// never set a target on or before the date.
type DietDayResponse struct {
	Day       DietDay         `json:"day"`
	Target    *DietTargetView `json:"target"`
	Remaining *Nutrition      `json:"remaining"`
}

// BuildDietDay groups quantity-scaled rows into meals and aggregates both
// each meal and the whole day. Rows from other dates do not belong here;
// callers fetch per date.
func BuildDietDay(userID uuid.UUID, username string, date time.Time, rows []DietFoodRow) DietDay {
	day := DietDay{UserID: userID, Username: username, Date: DateOnly(date)}

	grouped := map[string]*DietMeal{}
	for _, row := range rows {
		meal, ok := grouped[row.MealOfDay]
		if !ok {
			meal = &DietMeal{Name: row.MealOfDay, Order: row.MealOrder}
			grouped[row.MealOfDay] = meal
		}
		meal.Rows = append(meal.Rows, row)
		meal.Nutrition.Add(row.Nutrition)
		day.Nutrition.Add(row.Nutrition)
	}

	meals := make([]DietMeal, 0, len(grouped))
	for _, meal := range grouped {
		meal.CalculatePercentages()
		meals = append(meals, *meal)
	}
	sort.Slice(meals, func(i, j int) bool {
		if meals[i].Order != meals[j].Order {
			return meals[i].Order < meals[j].Order
		}
		return meals[i].Name < meals[j].Name
	})

	day.Meals = meals
	day.CalculatePercentages()
	return day
}

// DaySummary converts the day aggregate into a summary row using the given
// body weight for per-kg figures (zero weight leaves them zero).
func (d DietDay) DaySummary(weightKG float64) DaySummary {
	summary := DaySummary{
		UserID:       d.UserID,
		Username:     d.Username,
		Date:         d.Date,
		Weight:       weightKG,
		Energy:       d.Energy,
		Fat:          d.Fat,
		Saturates:    d.Saturates,
		Carbohydrate: d.Carbohydrate,
		Sugars:       d.Sugars,
		Fibre:        d.Fibre,
		Protein:      d.Protein,
		Salt:         d.Salt,
		Actual:       true,
	}
	summary.Derive()
	return summary
}
