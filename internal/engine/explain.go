package engine

import (
	"fmt"
	"strings"
	"time"

	"github.com/jleboube/no-hitter-analysis/internal/models"
)

// Explanation thresholds. A factor inside the neutral band contributes no
// clause.
const (
	favorableAbove     = 1.1
	unfavorableBelow   = 0.9
	pitcherStrongAbove = 1.2
)

// explain renders the human-readable reasoning behind a prediction. Each
// factor outside its neutral band contributes one clause; the clauses are
// joined with semicolons. When nothing stands out, a generic summary is
// returned instead.
func (e *Engine) explain(date time.Time, factors map[string]float64, conditions models.CurrentConditions) string {
	var clauses []string

	if factors["monthly_factor"] > favorableAbove {
		clauses = append(clauses, fmt.Sprintf("%s is historically a strong month for no-hitters", date.Month()))
	} else if factors["monthly_factor"] < unfavorableBelow && factors["monthly_factor"] > 0 {
		clauses = append(clauses, fmt.Sprintf("%s has historically seen few no-hitters", date.Month()))
	}

	if factors["date_factor"] > favorableAbove {
		clauses = append(clauses, fmt.Sprintf("%s is a date with notable no-hitter history", date.Format("January 2")))
	}

	if factors["recency_adjustment"] > favorableAbove {
		clauses = append(clauses, "the league is overdue relative to the historical pace")
	}

	if wf := factors["weather_factor"]; conditions.Weather != nil {
		if wf > favorableAbove {
			clauses = append(clauses, "favorable weather conditions: "+e.weather.Explanation(conditions.Weather))
		} else if wf < unfavorableBelow {
			clauses = append(clauses, "challenging weather conditions: "+e.weather.Explanation(conditions.Weather))
		}
	}

	if pf := factors["pitcher_factor"]; conditions.PitcherForm != nil {
		if pf > pitcherStrongAbove {
			clauses = append(clauses, "strong pitcher form: "+e.pitcher.Explanation(conditions.PitcherForm, e.pitcherPatterns))
		} else if pf < unfavorableBelow {
			clauses = append(clauses, "concerning pitcher form: "+e.pitcher.Explanation(conditions.PitcherForm, e.pitcherPatterns))
		}
	}

	if sf := factors["stadium_factor"]; conditions.Stadium != nil {
		if sf > favorableAbove {
			clauses = append(clauses, "favorable ballpark environment: "+e.stadium.Explanation(conditions.Stadium))
		} else if sf < unfavorableBelow {
			clauses = append(clauses, "challenging ballpark environment: "+e.stadium.Explanation(conditions.Stadium))
		}
	}

	if len(clauses) == 0 {
		return "Probability based on historical patterns and current conditions"
	}
	return strings.Join(clauses, "; ")
}
