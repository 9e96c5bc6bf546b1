package workout

type MuscleGroup string

const (
	GroupChest     MuscleGroup = "Peito"
	GroupBack      MuscleGroup = "Costas"
	GroupLegs      MuscleGroup = "Pernas"
	GroupShoulders MuscleGroup = "Ombros"
	GroupArms      MuscleGroup = "Braços"
	GroupAbs       MuscleGroup = "Abdômen"
)

var MuscleGroups = []MuscleGroup{GroupChest, GroupBack, GroupLegs, GroupShoulders, GroupArms, GroupAbs}

// ExerciseCatalog lists the exercises selectable per muscle group.
var ExerciseCatalog = map[MuscleGroup][]string{
	GroupChest:     {"Supino reto", "Supino inclinado", "Crucifixo", "Flexão", "Crossover"},
	GroupBack:      {"Puxada frontal", "Remada curvada", "Pull-down", "Barra fixa", "Pulley"},
	GroupLegs:      {"Agachamento", "Leg press", "Cadeira extensora", "Stiff", "Afundo", "Cadeira flexora"},
	GroupShoulders: {"Desenvolvimento", "Elevação lateral", "Remada alta", "Face pull", "Elevação frontal"},
	GroupArms:      {"Rosca direta", "Tríceps testa", "Rosca martelo", "Tríceps pulley", "Rosca scott"},
	GroupAbs:       {"Abdominal crunch", "Prancha", "Elevação de pernas", "Russian twist", "Abdominal bicicleta"},
}

func (g MuscleGroup) IsValid() bool {
	_, ok := ExerciseCatalog[g]
	return ok
}

func (g MuscleGroup) HasExercise(name string) bool {
	for _, e := range ExerciseCatalog[g] {
		if e == name {
			return true
		}
	}
	return false
}

type Weekday string

const (
	Monday    Weekday = "Segunda"
	Tuesday   Weekday = "Terça"
	Wednesday Weekday = "Quarta"
	Thursday  Weekday = "Quinta"
	Friday    Weekday = "Sexta"
	Saturday  Weekday = "Sábado"
	Sunday    Weekday = "Domingo"
)

var Weekdays = []Weekday{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}

func (d Weekday) IsValid() bool {
	for _, w := range Weekdays {
		if d == w {
			return true
		}
	}
	return false
}

type CatalogGroup struct {
	Group     MuscleGroup `json:"group"`
	Exercises []string    `json:"exercises"`
}

// Catalog returns the exercise catalog in a stable group order.
func Catalog() []CatalogGroup {
	groups := make([]CatalogGroup, 0, len(MuscleGroups))
	for _, g := range MuscleGroups {
		groups = append(groups, CatalogGroup{Group: g, Exercises: ExerciseCatalog[g]})
	}
	return groups
}
