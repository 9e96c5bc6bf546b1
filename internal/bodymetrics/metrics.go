// Package bodymetrics holds the pure body-metric formulas: BMI, BMR (Harris-Benedict),
// TDEE and the daily calorie, water and training-time targets derived from them.
package bodymetrics

var (
	activityMultipliers = []float64{1.2, 1.375, 1.55, 1.725, 1.9}
	waterBonusMl        = []int{0, 250, 500, 750, 1000}
	trainingBonusMin    = []int{0, 5, 10, 15, 20}
)

// BMI is weight (kg) over height (m) squared. Height is given in centimeters.
func BMI(weightKg float64, heightCm int) float64 {
	heightM := float64(heightCm) / 100
	return weightKg / (heightM * heightM)
}

// BMR uses the revised Harris-Benedict equation; any non-male gender gets the female variant.
func BMR(weightKg float64, heightCm, age int, gender Gender) float64 {
	h := float64(heightCm)
	a := float64(age)
	if gender == GenderMale {
		return 88.362 + 13.397*weightKg + 4.799*h - 5.677*a
	}
	return 447.593 + 9.247*weightKg + 3.098*h - 4.330*a
}

// TDEE scales the BMR by the activity multiplier. Unknown levels count as sedentary.
func TDEE(bmr float64, activity ActivityLevel) float64 {
	tier := activity.tier()
	if tier < 0 {
		tier = 0
	}
	return bmr * activityMultipliers[tier]
}

// CalorieGoal adjusts the TDEE for the goal and truncates the result.
func CalorieGoal(tdee float64, goal Goal) int {
	switch goal {
	case GoalMuscleGain:
		return int(tdee * 1.15)
	case GoalWeightLoss:
		return int(tdee * 0.85)
	case GoalDefinition:
		return int(tdee * 0.90)
	default:
		return int(tdee)
	}
}

// WaterGoal returns the daily water target in ml.
func WaterGoal(weightKg float64, activity ActivityLevel) int {
	bonus := 0
	if tier := activity.tier(); tier >= 0 {
		bonus = waterBonusMl[tier]
	}
	return int(weightKg*35) + bonus
}

// MinTrainingTime returns the suggested minimum daily training time in minutes.
func MinTrainingTime(goal Goal, activity ActivityLevel) int {
	base := 30
	switch goal {
	case GoalMuscleGain:
		base = 45
	case GoalWeightLoss:
		base = 40
	case GoalDefinition:
		base = 50
	}
	if tier := activity.tier(); tier >= 0 {
		base += trainingBonusMin[tier]
	}
	return base
}

type BMIClass int

const (
	BMIUnderweight BMIClass = iota
	BMINormal
	BMIOverweight
	BMIObese
)

var bmiLabels = map[BMIClass]string{
	BMIUnderweight: "Abaixo do peso",
	BMINormal:      "Peso normal",
	BMIOverweight:  "Sobrepeso",
	BMIObese:       "Obesidade",
}

// ClassifyBMI uses half-open intervals: [0,18.5) [18.5,25) [25,30) [30,inf).
func ClassifyBMI(bmi float64) BMIClass {
	switch {
	case bmi < 18.5:
		return BMIUnderweight
	case bmi < 25:
		return BMINormal
	case bmi < 30:
		return BMIOverweight
	default:
		return BMIObese
	}
}

func (c BMIClass) Label() string {
	return bmiLabels[c]
}

func (c BMIClass) String() string {
	return c.Label()
}

func (c BMIClass) MarshalText() ([]byte, error) {
	return []byte(c.Label()), nil
}
