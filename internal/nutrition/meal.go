package nutrition

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/2beens/fitbuddy/internal/apperr"
	"github.com/2beens/fitbuddy/pkg"

	"go.uber.org/multierr"
)

type Macros struct {
	Calories     float64 `json:"calories"`
	Protein      float64 `json:"protein"`
	Carbohydrate float64 `json:"carbohydrate"`
	Fat          float64 `json:"fat"`
}

func (m Macros) Add(o Macros) Macros {
	return Macros{
		Calories:     m.Calories + o.Calories,
		Protein:      m.Protein + o.Protein,
		Carbohydrate: m.Carbohydrate + o.Carbohydrate,
		Fat:          m.Fat + o.Fat,
	}
}

func (m Macros) Scale(f float64) Macros {
	return Macros{
		Calories:     m.Calories * f,
		Protein:      m.Protein * f,
		Carbohydrate: m.Carbohydrate * f,
		Fat:          m.Fat * f,
	}
}

// ConsumedFood is a catalog item with the amount eaten. PerReference keeps a
// snapshot of the catalog values at the time it was logged.
type ConsumedFood struct {
	Name         string   `json:"name"`
	Category     Category `json:"category"`
	Quantity     float64  `json:"quantity"`
	Unit         Unit     `json:"unit"`
	PerReference Macros   `json:"perReference"`
}

func (c ConsumedFood) Macros() Macros {
	return c.PerReference.Scale(c.Unit.Factor(c.Quantity))
}

func (c ConsumedFood) validate() error {
	var err error
	if strings.TrimSpace(c.Name) == "" {
		err = multierr.Append(err, apperr.Invalid("name", "is required"))
	}
	if c.Quantity < MinQuantity {
		err = multierr.Append(err, apperr.Invalid("quantity", "must be at least %.0f", MinQuantity))
	}
	if !c.Unit.IsValid() {
		err = multierr.Append(err, apperr.Invalid("unit", "unknown unit [%s]", c.Unit))
	}
	return err
}

func Totals(consumed []ConsumedFood) Macros {
	var total Macros
	for _, c := range consumed {
		total = total.Add(c.Macros())
	}
	return total
}

// Entry is a committed meal.
type Entry struct {
	ID     int            `json:"id"`
	Date   pkg.Date       `json:"date"`
	Foods  []ConsumedFood `json:"foods"`
	Totals Macros         `json:"totals"`
}

type Draft struct {
	Foods  []ConsumedFood `json:"foods"`
	Totals Macros         `json:"totals"`
}

func newDraft(consumed []ConsumedFood) *Draft {
	if consumed == nil {
		consumed = []ConsumedFood{}
	}
	return &Draft{
		Foods:  consumed,
		Totals: Totals(consumed),
	}
}

type DraftItemInput struct {
	Food     string  `json:"food"`
	Quantity float64 `json:"quantity"`
	Unit     Unit    `json:"unit"`
}

// toConsumed validates the input against the catalog.
func (in DraftItemInput) toConsumed() (ConsumedFood, error) {
	var err error
	food, found := LookupFood(in.Food)
	if !found {
		err = multierr.Append(err, apperr.Invalid("food", "[%s] is not in the food catalog", in.Food))
	}
	if in.Quantity < MinQuantity {
		err = multierr.Append(err, apperr.Invalid("quantity", "must be at least %.0f", MinQuantity))
	}
	if !in.Unit.IsValid() {
		err = multierr.Append(err, apperr.Invalid("unit", "unknown unit [%s]", in.Unit))
	}
	if err != nil {
		return ConsumedFood{}, err
	}

	return ConsumedFood{
		Name:         food.Name,
		Category:     food.Category,
		Quantity:     in.Quantity,
		Unit:         in.Unit,
		PerReference: food.Macros,
	}, nil
}

func encodeFoods(consumed []ConsumedFood) ([]byte, error) {
	return json.Marshal(consumed)
}

func decodeFoods(raw []byte) ([]ConsumedFood, error) {
	var consumed []ConsumedFood
	if err := pkg.DecodeJSONBytes(raw, &consumed); err != nil {
		return nil, fmt.Errorf("decode foods: %w", err)
	}
	for i, c := range consumed {
		if err := c.validate(); err != nil {
			return nil, fmt.Errorf("decode foods, item %d: %w", i, err)
		}
	}
	return consumed, nil
}

func encodeTotals(m Macros) ([]byte, error) {
	return json.Marshal(m)
}

func decodeTotals(raw []byte) (Macros, error) {
	var m Macros
	if err := pkg.DecodeJSONBytes(raw, &m); err != nil {
		return Macros{}, fmt.Errorf("decode totals: %w", err)
	}
	if m.Calories < 0 || m.Protein < 0 || m.Carbohydrate < 0 || m.Fat < 0 {
		return Macros{}, fmt.Errorf("decode totals: negative value in %+v", m)
	}
	return m, nil
}
