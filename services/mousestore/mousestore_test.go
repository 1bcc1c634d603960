package mousestore

import (
	"testing"

	"Asteria/models"

	"github.com/stretchr/testify/assert"
)

func TestCreateAssignsIncreasingIDs(t *testing.T) {
	s := New()

	first := s.Create(models.Mouse{Name: "Pelle", Age: 2})
	second := s.Create(models.Mouse{Name: "Mikkel", Age: 1})

	assert.Equal(t, 1, first.ID)
	assert.Equal(t, 2, second.ID)
	assert.Len(t, s.List(), 2)
}

func TestUpdate(t *testing.T) {
	s := New()
	created := s.Create(models.Mouse{Name: "Pelle", Age: 2})

	ok := s.Update(created.ID, models.Mouse{Name: "Pelle", Age: 3})

	assert.True(t, ok)
	assert.Equal(t, 3, s.List()[0].Age)
	assert.Equal(t, created.ID, s.List()[0].ID)
}

func TestUpdateMissing(t *testing.T) {
	s := New()
	assert.False(t, s.Update(42, models.Mouse{Name: "Ghost"}))
}

func TestDelete(t *testing.T) {
	s := New()
	created := s.Create(models.Mouse{Name: "Pelle"})

	assert.True(t, s.Delete(created.ID))
	assert.Empty(t, s.List())
	assert.False(t, s.Delete(created.ID))
}

func TestListReturnsCopy(t *testing.T) {
	s := New()
	s.Create(models.Mouse{Name: "Pelle"})

	listed := s.List()
	listed[0].Name = "changed"

	assert.Equal(t, "Pelle", s.List()[0].Name)
}
