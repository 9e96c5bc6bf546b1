package nutrition

type Category string

const (
	CategoryProteins      Category = "Proteínas"
	CategoryCarbohydrates Category = "Carboidratos"
	CategoryFats          Category = "Gorduras"
	CategoryVegetables    Category = "Vegetais"
)

var Categories = []Category{CategoryProteins, CategoryCarbohydrates, CategoryFats, CategoryVegetables}

// Food holds the nutrition values of a catalog item per its reference quantity,
// which is part of the name (e.g. "Aveia (100g)").
type Food struct {
	Name     string   `json:"name"`
	Category Category `json:"category"`
	Macros
}

var foods = []Food{
	{"Peito de Frango (100g)", CategoryProteins, Macros{165, 31, 0, 3.6}},
	{"Ovo (1 unidade)", CategoryProteins, Macros{78, 6, 0.6, 5}},
	{"Salmão (100g)", CategoryProteins, Macros{208, 20, 0, 13}},
	{"Carne Bovina (100g)", CategoryProteins, Macros{250, 26, 0, 15}},
	{"Whey Protein (30g)", CategoryProteins, Macros{120, 24, 3, 1}},
	{"Iogurte Grego (100g)", CategoryProteins, Macros{59, 10, 3.6, 0.4}},
	{"Queijo Cottage (100g)", CategoryProteins, Macros{98, 11, 3.4, 4.3}},

	{"Arroz Integral (100g cozido)", CategoryCarbohydrates, Macros{112, 2.6, 23, 0.9}},
	{"Batata Doce (100g)", CategoryCarbohydrates, Macros{86, 1.6, 20, 0.1}},
	{"Aveia (100g)", CategoryCarbohydrates, Macros{389, 16.9, 66, 6.9}},
	{"Pão Integral (1 fatia)", CategoryCarbohydrates, Macros{69, 3.5, 11, 0.9}},
	{"Massa Integral (100g cozido)", CategoryCarbohydrates, Macros{124, 5, 25, 1}},
	{"Quinoa (100g cozido)", CategoryCarbohydrates, Macros{120, 4.4, 21, 1.9}},
	{"Banana (1 unidade)", CategoryCarbohydrates, Macros{105, 1.3, 27, 0.4}},

	{"Abacate (100g)", CategoryFats, Macros{160, 2, 9, 15}},
	{"Azeite de Oliva (1 colher)", CategoryFats, Macros{119, 0, 0, 14}},
	{"Castanhas (30g)", CategoryFats, Macros{180, 5, 6, 16}},
	{"Manteiga de Amendoim (1 colher)", CategoryFats, Macros{96, 4, 3, 8}},
	{"Semente de Chia (20g)", CategoryFats, Macros{97, 3, 8, 6}},
	{"Coco (100g)", CategoryFats, Macros{354, 3.3, 15, 33}},
	{"Azeitonas (100g)", CategoryFats, Macros{115, 0.8, 6, 11}},

	{"Brócolis (100g)", CategoryVegetables, Macros{34, 2.8, 7, 0.4}},
	{"Espinafre (100g)", CategoryVegetables, Macros{23, 2.9, 3.6, 0.4}},
	{"Cenoura (100g)", CategoryVegetables, Macros{41, 0.9, 10, 0.2}},
	{"Alface (100g)", CategoryVegetables, Macros{15, 1.4, 2.9, 0.2}},
	{"Tomate (100g)", CategoryVegetables, Macros{18, 0.9, 3.9, 0.2}},
	{"Pepino (100g)", CategoryVegetables, Macros{15, 0.7, 3.6, 0.1}},
	{"Pimentão (100g)", CategoryVegetables, Macros{31, 1, 6, 0.3}},
}

var foodsByName = func() map[string]Food {
	m := make(map[string]Food, len(foods))
	for _, f := range foods {
		m[f.Name] = f
	}
	return m
}()

func LookupFood(name string) (Food, bool) {
	f, ok := foodsByName[name]
	return f, ok
}

type CatalogCategory struct {
	Category Category `json:"category"`
	Foods    []Food   `json:"foods"`
}

// Catalog returns the food table grouped by category, in display order.
func Catalog() []CatalogCategory {
	catalog := make([]CatalogCategory, 0, len(Categories))
	for _, c := range Categories {
		cc := CatalogCategory{Category: c}
		for _, f := range foods {
			if f.Category == c {
				cc.Foods = append(cc.Foods, f)
			}
		}
		catalog = append(catalog, cc)
	}
	return catalog
}

type Unit string

const (
	UnitGrams  Unit = "g"
	UnitPieces Unit = "unidades"
	UnitSpoons Unit = "colheres"
	UnitCups   Unit = "xícaras"
)

const MinQuantity = 1.0

var Units = []Unit{UnitGrams, UnitPieces, UnitSpoons, UnitCups}

func (u Unit) IsValid() bool {
	for _, unit := range Units {
		if u == unit {
			return true
		}
	}
	return false
}

// Factor scales the per-reference values: grams count per 100, any other unit
// counts whole reference portions.
func (u Unit) Factor(quantity float64) float64 {
	if u == UnitGrams {
		return quantity / 100
	}
	return quantity
}
