package ingestion

import (
	"testing"

	"github.com/poiesic/paranuara/core"
	"github.com/stretchr/testify/assert"
)

func TestDatasetFoods(t *testing.T) {
	dataset := &Dataset{
		People: []*core.Person{
			{ID: 0, FavouriteFoods: []string{"orange", "apple", "celery"}},
			{ID: 1, FavouriteFoods: []string{"apple", "beetroot"}},
			{ID: 2},
		},
	}

	assert.Equal(t, []string{"apple", "beetroot", "celery", "orange"}, dataset.Foods())
}

func TestDatasetFoods_Empty(t *testing.T) {
	dataset := &Dataset{}

	foods := dataset.Foods()
	assert.NotNil(t, foods)
	assert.Empty(t, foods)
	assert.Zero(t, dataset.Len())
}
