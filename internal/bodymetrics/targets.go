package bodymetrics

// Body is the subset of a profile the targets are computed from.
type Body struct {
	Age      int
	Gender   Gender
	HeightCm int
	WeightKg float64
	Goal     Goal
	Activity ActivityLevel
}

type Targets struct {
	BMI             float64  `json:"bmi"`
	BMIClass        BMIClass `json:"bmiClass"`
	BMR             float64  `json:"bmr"`
	TDEE            float64  `json:"tdee"`
	CalorieGoal     int      `json:"calorieGoal"`
	WaterGoalMl     int      `json:"waterGoalMl"`
	MinTrainingTime int      `json:"minTrainingMinutes"`
}

func ComputeTargets(b Body) Targets {
	bmi := BMI(b.WeightKg, b.HeightCm)
	bmr := BMR(b.WeightKg, b.HeightCm, b.Age, b.Gender)
	tdee := TDEE(bmr, b.Activity)
	return Targets{
		BMI:             bmi,
		BMIClass:        ClassifyBMI(bmi),
		BMR:             bmr,
		TDEE:            tdee,
		CalorieGoal:     CalorieGoal(tdee, b.Goal),
		WaterGoalMl:     WaterGoal(b.WeightKg, b.Activity),
		MinTrainingTime: MinTrainingTime(b.Goal, b.Activity),
	}
}
