package indicators

import (
	"sort"
	"strings"

	"StratParse/internal/domain/models"
	"StratParse/pkg/logger"
)

// Database is the static technical-indicator catalog with lookup, search,
// suggestion and optimization logic. Content never mutates at runtime.
type Database struct {
	all  []models.TechnicalIndicator
	byID map[string]*models.TechnicalIndicator
	log  *logger.Logger
}

// NewDatabase loads the built-in catalog.
func NewDatabase(log *logger.Logger) *Database {
	db := &Database{all: catalog(), log: log}
	db.byID = make(map[string]*models.TechnicalIndicator, len(db.all))
	for i := range db.all {
		db.byID[db.all[i].ID] = &db.all[i]
	}
	return db
}

// Get returns the indicator with the given id.
func (db *Database) Get(id string) (*models.TechnicalIndicator, bool) {
	ind, ok := db.byID[strings.ToLower(id)]
	return ind, ok
}

// All returns the full catalog.
func (db *Database) All() []models.TechnicalIndicator { return db.all }

// ByCategory filters the catalog by category.
func (db *Database) ByCategory(cat models.IndicatorCategory) []models.TechnicalIndicator {
	return db.filter(func(i *models.TechnicalIndicator) bool { return i.Category == cat })
}

// ByDifficulty filters the catalog by difficulty grade.
func (db *Database) ByDifficulty(d models.Difficulty) []models.TechnicalIndicator {
	return db.filter(func(i *models.TechnicalIndicator) bool { return i.Difficulty == d })
}

// ByTimeframe returns indicators listing tf among their best timeframes.
func (db *Database) ByTimeframe(tf string) []models.TechnicalIndicator {
	return db.filter(func(i *models.TechnicalIndicator) bool { return containsFold(i.BestTimeframes, tf) })
}

// ByMarketCondition returns indicators suited to the given condition.
func (db *Database) ByMarketCondition(mc string) []models.TechnicalIndicator {
	return db.filter(func(i *models.TechnicalIndicator) bool { return containsFold(i.MarketConditions, mc) })
}

// TopByPopularity returns the n most popular indicators.
func (db *Database) TopByPopularity(n int) []models.TechnicalIndicator {
	out := make([]models.TechnicalIndicator, len(db.all))
	copy(out, db.all)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Popularity > out[j].Popularity })
	if n > 0 && n < len(out) {
		out = out[:n]
	}
	return out
}

// SearchIndicators scores catalog entries against keywords: +1 for each
// description or use-case substring hit, +2 for a name hit. Results sorted
// by score descending; zero-score entries dropped.
func (db *Database) SearchIndicators(keywords []string) []models.TechnicalIndicator {
	type scored struct {
		ind   models.TechnicalIndicator
		score int
	}
	var hits []scored
	for _, ind := range db.all {
		score := 0
		name := strings.ToLower(ind.Name)
		desc := strings.ToLower(ind.Description)
		for _, kw := range keywords {
			k := strings.ToLower(strings.TrimSpace(kw))
			if k == "" {
				continue
			}
			if strings.Contains(name, k) || k == ind.ID {
				score += 2
			}
			if strings.Contains(desc, k) {
				score++
			}
			for _, uc := range ind.UseCases {
				if strings.Contains(strings.ToLower(uc), k) {
					score++
				}
			}
		}
		if score > 0 {
			hits = append(hits, scored{ind: ind, score: score})
		}
	}
	sort.SliceStable(hits, func(i, j int) bool { return hits[i].score > hits[j].score })
	out := make([]models.TechnicalIndicator, len(hits))
	for i, h := range hits {
		out[i] = h.ind
	}
	return out
}

func (db *Database) filter(keep func(*models.TechnicalIndicator) bool) []models.TechnicalIndicator {
	var out []models.TechnicalIndicator
	for i := range db.all {
		if keep(&db.all[i]) {
			out = append(out, db.all[i])
		}
	}
	return out
}

func containsFold(xs []string, want string) bool {
	for _, x := range xs {
		if strings.EqualFold(x, want) {
			return true
		}
	}
	return false
}
