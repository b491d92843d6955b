package entities_test

import (
	"slices"
	"testing"

	"github.com/SergeyBogomolovv/pedidos-service/internal/entities"
	"github.com/stretchr/testify/assert"
)

func TestCompareBagIDs(t *testing.T) {
	ids := []string{"21", "X1", "2a", "1v", "10", "1a", "abc"}
	slices.SortFunc(ids, entities.CompareBagIDs)

	assert.Equal(t, []string{"1a", "1v", "2a", "10", "21", "abc", "X1"}, ids)
}

func TestCompareBagIDs_Equal(t *testing.T) {
	assert.Equal(t, 0, entities.CompareBagIDs("5a", "5a"))
	assert.Equal(t, -1, entities.CompareBagIDs("005", "6"))
}

func TestCompareBagIDs_CaseOnlyDifference(t *testing.T) {
	assert.Equal(t, -1, entities.CompareBagIDs("1A", "1a"))
	assert.Equal(t, 1, entities.CompareBagIDs("1a", "1A"))
	assert.Equal(t, 1, entities.CompareBagIDs("5", "005"))

	for range 20 {
		ids := []string{"1a", "2", "1A", "1b", "1B"}
		slices.SortFunc(ids, entities.CompareBagIDs)
		assert.Equal(t, []string{"1A", "1a", "1B", "1b", "2"}, ids)
	}
}
