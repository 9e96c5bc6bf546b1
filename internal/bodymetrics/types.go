package bodymetrics

type Gender string

const (
	GenderMale   Gender = "Masculino"
	GenderFemale Gender = "Feminino"
	GenderOther  Gender = "Outro"
)

var Genders = []Gender{GenderMale, GenderFemale, GenderOther}

func (g Gender) IsValid() bool {
	for _, v := range Genders {
		if g == v {
			return true
		}
	}
	return false
}

type Goal string

const (
	GoalWeightLoss Goal = "Perda de peso"
	GoalMuscleGain Goal = "Ganho de massa"
	GoalMaintain   Goal = "Manutenção"
	GoalDefinition Goal = "Definição muscular"
)

var Goals = []Goal{GoalWeightLoss, GoalMuscleGain, GoalMaintain, GoalDefinition}

func (g Goal) IsValid() bool {
	for _, v := range Goals {
		if g == v {
			return true
		}
	}
	return false
}

type ActivityLevel string

const (
	ActivitySedentary  ActivityLevel = "Sedentário"
	ActivityLight      ActivityLevel = "Levemente ativo"
	ActivityModerate   ActivityLevel = "Moderadamente ativo"
	ActivityVeryActive ActivityLevel = "Muito ativo"
	ActivityExtreme    ActivityLevel = "Extremamente ativo"
)

// ActivityLevels are ordered from the least to the most active
var ActivityLevels = []ActivityLevel{
	ActivitySedentary,
	ActivityLight,
	ActivityModerate,
	ActivityVeryActive,
	ActivityExtreme,
}

func (a ActivityLevel) IsValid() bool {
	return a.tier() >= 0
}

// tier is the position of the level in ActivityLevels, -1 when unknown
func (a ActivityLevel) tier() int {
	for i, v := range ActivityLevels {
		if a == v {
			return i
		}
	}
	return -1
}
