//go:build integration_test

package test

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/2beens/fitbuddy/internal/bodymetrics"
	"github.com/2beens/fitbuddy/internal/db"
	"github.com/2beens/fitbuddy/internal/profile"
)

func (s *IntegrationTestSuite) TestRegisterAndLogin() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	s.register(ctx, "login.flow@mail.com", "segredo1")

	status, _ := s.do(ctx, "POST", "/a/register", "", map[string]string{
		"email":           "LOGIN.flow@mail.com",
		"password":        "segredo1",
		"confirmPassword": "segredo1",
	})
	s.Equal(http.StatusConflict, status)

	status, body := s.do(ctx, "POST", "/a/register", "", map[string]string{
		"email":           "not-an-email",
		"password":        "123",
		"confirmPassword": "321",
	})
	s.Equal(http.StatusBadRequest, status)
	s.Contains(string(body), `"field":"password"`)

	wrongPassStatus, wrongPassBody := s.do(ctx, "POST", "/a/login", "", map[string]string{
		"email":    "login.flow@mail.com",
		"password": "errado",
	})
	unknownStatus, unknownBody := s.do(ctx, "POST", "/a/login", "", map[string]string{
		"email":    "nobody@mail.com",
		"password": "segredo1",
	})
	s.Equal(http.StatusUnauthorized, wrongPassStatus)
	s.Equal(http.StatusUnauthorized, unknownStatus)
	s.Equal(string(wrongPassBody), string(unknownBody))

	token := s.login(ctx, "login.flow@mail.com", "segredo1")

	status, _ = s.do(ctx, "GET", "/session", token, nil)
	s.Equal(http.StatusOK, status)

	status, _ = s.do(ctx, "POST", "/a/logout", token, nil)
	s.Equal(http.StatusOK, status)

	status, _ = s.do(ctx, "GET", "/session", token, nil)
	s.Equal(http.StatusUnauthorized, status)
}

func (s *IntegrationTestSuite) TestFullFlowAndAccountDeletion() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	accountID := s.register(ctx, "full.flow@mail.com", "segredo1")
	token := s.login(ctx, "full.flow@mail.com", "segredo1")

	status, _ := s.do(ctx, "GET", "/dashboard", token, nil)
	s.Equal(http.StatusPreconditionRequired, status)

	status, body := s.do(ctx, "PUT", "/profile", token, map[string]any{
		"name":           "Ana",
		"age":            30,
		"gender":         "Feminino",
		"heightCm":       170,
		"weightKg":       80,
		"goal":           "Perda de peso",
		"activityLevel":  "Moderadamente ativo",
		"targetWeightKg": 70,
	})
	s.Require().Equal(http.StatusOK, status, string(body))

	status, body = s.do(ctx, "POST", "/workouts/plans", token, map[string]any{
		"name":     "Treino A",
		"weekdays": []string{"Segunda", "Quarta"},
		"exercises": map[string]any{
			"Peito":  map[string]any{"exercise": "Supino reto", "sets": 4, "reps": 10, "restSeconds": 60},
			"Pernas": map[string]any{"exercise": "Agachamento", "sets": 4, "reps": 12, "restSeconds": 90},
		},
	})
	s.Require().Equal(http.StatusCreated, status, string(body))

	status, _ = s.do(ctx, "POST", "/workouts/active", token, map[string]string{"plan": "Treino A"})
	s.Require().Equal(http.StatusCreated, status)

	status, _ = s.do(ctx, "POST", "/workouts/active/complete", token, map[string]string{"group": "Peito"})
	s.Equal(http.StatusOK, status)

	// Pernas still pending
	status, _ = s.do(ctx, "POST", "/workouts/active/finish", token, nil)
	s.Equal(http.StatusConflict, status)

	status, _ = s.do(ctx, "POST", "/workouts/active/complete", token, map[string]string{"group": "Pernas"})
	s.Equal(http.StatusOK, status)
	status, body = s.do(ctx, "POST", "/workouts/active/finish", token, nil)
	s.Require().Equal(http.StatusCreated, status, string(body))

	status, _ = s.do(ctx, "POST", "/food/log", token, nil)
	s.Equal(http.StatusBadRequest, status)

	status, _ = s.do(ctx, "POST", "/food/draft", token, map[string]any{
		"food":     "Brócolis (100g)",
		"quantity": 150,
		"unit":     "g",
	})
	s.Require().Equal(http.StatusOK, status)
	status, body = s.do(ctx, "POST", "/food/log", token, nil)
	s.Require().Equal(http.StatusCreated, status, string(body))

	status, _ = s.do(ctx, "POST", "/progress", token, map[string]any{"weightKg": 79.5, "abdomenCm": 88})
	s.Equal(http.StatusCreated, status)

	status, body = s.do(ctx, "GET", "/profile", token, nil)
	s.Require().Equal(http.StatusOK, status, string(body))
	var stored struct {
		Profile profile.Profile     `json:"profile"`
		Targets bodymetrics.Targets `json:"targets"`
	}
	s.Require().NoError(json.Unmarshal(body, &stored))
	s.Equal(79.5, stored.Profile.WeightKg)
	s.InDelta(bodymetrics.BMI(79.5, 170), stored.Profile.BMI, 1e-6)
	s.InDelta(stored.Targets.TDEE, stored.Profile.TDEE, 1e-6)

	status, body = s.do(ctx, "GET", "/nutrition/dashboard", token, nil)
	s.Require().Equal(http.StatusOK, status, string(body))
	var nutritionDashboard struct {
		TDEE float64 `json:"tdee"`
	}
	s.Require().NoError(json.Unmarshal(body, &nutritionDashboard))
	s.InDelta(stored.Targets.TDEE, nutritionDashboard.TDEE, 1e-6)
	status, _ = s.do(ctx, "POST", "/water", token, map[string]any{"ml": 500})
	s.Equal(http.StatusCreated, status)
	status, _ = s.do(ctx, "POST", "/sleep", token, map[string]any{"hours": 7.5})
	s.Equal(http.StatusCreated, status)

	status, body = s.do(ctx, "GET", "/dashboard", token, nil)
	s.Require().Equal(http.StatusOK, status, string(body))
	s.Contains(string(body), `"waterTotalMl":500`)

	for _, table := range db.OwnedTables {
		s.Equal(1, s.ownedRows(table, accountID), table)
	}

	status, _ = s.do(ctx, "DELETE", "/account", token, nil)
	s.Require().Equal(http.StatusNoContent, status)

	for _, table := range db.OwnedTables {
		s.Zero(s.ownedRows(table, accountID), table)
	}
	var users int
	s.Require().NoError(s.DB.QueryRow("SELECT COUNT(*) FROM users WHERE id = $1", accountID).Scan(&users))
	s.Zero(users)

	status, _ = s.do(ctx, "GET", "/session", token, nil)
	s.Equal(http.StatusUnauthorized, status)
	status, _ = s.do(ctx, "POST", "/a/login", "", map[string]string{
		"email":    "full.flow@mail.com",
		"password": "segredo1",
	})
	s.Equal(http.StatusUnauthorized, status)
}
