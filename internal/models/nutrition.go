package models

// Energy densities in kcal per gram, used for macro energy-share percentages.
const (
	KcalPerGramProtein      = 4.0
	KcalPerGramCarbohydrate = 4.0
	KcalPerGramFat          = 9.0
)

// Nutrition is the engine's nutrient vector: absolute amounts plus the three
// derived macro energy-share percentages. Amounts are grams except Energy
// (kcal).
type Nutrition struct {
	Energy       float64 `json:"energy"`
	Fat          float64 `json:"fat"`
	Saturates    float64 `json:"saturates"`
	Carbohydrate float64 `json:"carbohydrate"`
	Sugars       float64 `json:"sugars"`
	Fibre        float64 `json:"fibre"`
	Protein      float64 `json:"protein"`
	Salt         float64 `json:"salt"`

	ProteinPct      float64 `json:"protein_pct"`
	CarbohydratePct float64 `json:"carbohydrate_pct"`
	FatPct          float64 `json:"fat_pct"`
}

// Add accumulates the absolute amounts of other. Percentages are not summed;
// recompute them with CalculatePercentages once accumulation is done.
func (n *Nutrition) Add(other Nutrition) {
	n.Energy += other.Energy
	n.Fat += other.Fat
	n.Saturates += other.Saturates
	n.Carbohydrate += other.Carbohydrate
	n.Sugars += other.Sugars
	n.Fibre += other.Fibre
	n.Protein += other.Protein
	n.Salt += other.Salt
}

// CalculatePercentages derives the macro percentages from each macro's energy
// contribution. When the derived total energy is zero all three stay zero,
// never NaN.
func (n *Nutrition) CalculatePercentages() {
	proteinEnergy := n.Protein * KcalPerGramProtein
	carbohydrateEnergy := n.Carbohydrate * KcalPerGramCarbohydrate
	fatEnergy := n.Fat * KcalPerGramFat
	total := proteinEnergy + carbohydrateEnergy + fatEnergy

	if total <= 0 {
		n.ProteinPct = 0
		n.CarbohydratePct = 0
		n.FatPct = 0
		return
	}
	n.ProteinPct = proteinEnergy / total * 100
	n.CarbohydratePct = carbohydrateEnergy / total * 100
	n.FatPct = fatEnergy / total * 100
}

// AggregateNutrition sums already-quantity-scaled rows into one vector and
// derives its percentages. It works the same for one food row, a day of logs
// or a pre-summed period bucket.
func AggregateNutrition(rows []Nutrition) Nutrition {
	var total Nutrition
	for _, row := range rows {
		total.Add(row)
	}
	total.CalculatePercentages()
	return total
}

// Remaining is target minus consumed for every field. Negative values are a
// valid over-target state, not an error.
func Remaining(target, consumed Nutrition) Nutrition {
	remaining := Nutrition{
		Energy:       target.Energy - consumed.Energy,
		Fat:          target.Fat - consumed.Fat,
		Saturates:    target.Saturates - consumed.Saturates,
		Carbohydrate: target.Carbohydrate - consumed.Carbohydrate,
		Sugars:       target.Sugars - consumed.Sugars,
		Fibre:        target.Fibre - consumed.Fibre,
		Protein:      target.Protein - consumed.Protein,
		Salt:         target.Salt - consumed.Salt,
	}
	remaining.CalculatePercentages()
	return remaining
}

// PerKG divides a metric by body weight, zero when no usable weight exists.
func PerKG(metric, weightKG float64) float64 {
	if weightKG <= 0 {
		return 0
	}
	return metric / weightKG
}
