package rumor

import (
	"context"

	"gorm.io/gorm"
)

type Repo struct {
	db *gorm.DB
}

func NewRepo(db *gorm.DB) *Repo {
	return &Repo{db: db}
}

func (r *Repo) Insert(ctx context.Context, rec *Rumor) error {
	return r.db.WithContext(ctx).Create(rec).Error
}

// DistinctCities returns the cities that have at least one rumor for the
// given name+surname, sorted ascending.
func (r *Repo) DistinctCities(ctx context.Context, name, surname string) ([]string, error) {
	var cities []string
	if err := r.db.WithContext(ctx).Model(&Rumor{}).
		Where("name = ? AND surname = ?", name, surname).
		Distinct("city").
		Order("city ASC").
		Pluck("city", &cities).Error; err != nil {
		return nil, err
	}
	return cities, nil
}

// DistinctAges returns the ages that have at least one rumor for the given
// name+surname+city, sorted ascending.
func (r *Repo) DistinctAges(ctx context.Context, name, surname, city string) ([]int, error) {
	var ages []int
	if err := r.db.WithContext(ctx).Model(&Rumor{}).
		Where("name = ? AND surname = ? AND city = ?", name, surname, city).
		Distinct("age").
		Order("age ASC").
		Pluck("age", &ages).Error; err != nil {
		return nil, err
	}
	return ages, nil
}

// Texts returns the rumor texts for a fully narrowed subject in submission
// (insert id) order. Duplicate texts are kept: distinct submissions about the
// same subject are valid.
func (r *Repo) Texts(ctx context.Context, name, surname, city string, age int) ([]string, error) {
	var texts []string
	if err := r.db.WithContext(ctx).Model(&Rumor{}).
		Where("name = ? AND surname = ? AND city = ? AND age = ?", name, surname, city, age).
		Order("id ASC").
		Pluck("text", &texts).Error; err != nil {
		return nil, err
	}
	return texts, nil
}
