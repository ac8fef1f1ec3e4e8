package person

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMemoryStoreStartsCounterAfterSeed(t *testing.T) {
	store := NewMemoryStore(Seed())

	created, err := store.Create(Fields{Name: "Carlos", Age: 40})
	require.NoError(t, err)
	assert.Equal(t, 4, created.ID)
	assert.Len(t, store.List(), 4)
}

func TestNewMemoryStoreEmpty(t *testing.T) {
	store := NewMemoryStore(nil)
	assert.Empty(t, store.List())

	created, err := store.Create(Fields{Name: "Carlos", Age: 40})
	require.NoError(t, err)
	assert.Equal(t, 1, created.ID)
}

func TestListOrderedByID(t *testing.T) {
	store := NewMemoryStore([]Person{{ID: 7, Name: "c"}, {ID: 2, Name: "a"}, {ID: 5, Name: "b"}})

	got := store.List()
	require.Len(t, got, 3)
	assert.Equal(t, []int{2, 5, 7}, []int{got[0].ID, got[1].ID, got[2].ID})
}

func TestListReturnsCopy(t *testing.T) {
	store := NewMemoryStore(Seed())

	got := store.List()
	got[0].Name = "changed"

	item, ok := store.FindByID(got[0].ID)
	require.True(t, ok)
	assert.Equal(t, "Maria Silva", item.Name)
}

func TestCreateAssignsIncreasingIDs(t *testing.T) {
	store := NewMemoryStore(Seed())

	maxID := 0
	for _, item := range store.List() {
		if item.ID > maxID {
			maxID = item.ID
		}
	}

	before := len(store.List())
	created, err := store.Create(Fields{Name: "Pedro", Gender: "Masculino", Age: 19, Condition: "Estudante", Note: "Bolsa"})
	require.NoError(t, err)

	assert.Greater(t, created.ID, maxID)
	assert.Len(t, store.List(), before+1)

	stored, ok := store.FindByID(created.ID)
	require.True(t, ok)
	assert.Equal(t, created, stored)
}

func TestCreateRejectsInvalidFields(t *testing.T) {
	cases := map[string]Fields{
		"empty name":     {Name: "", Age: 30},
		"blank name":     {Name: "   ", Age: 30},
		"zero age":       {Name: "Carlos", Age: 0},
		"negative age":   {Name: "Carlos", Age: -3},
		"nothing at all": {},
	}

	for name, fields := range cases {
		t.Run(name, func(t *testing.T) {
			store := NewMemoryStore(Seed())
			before := store.List()

			_, err := store.Create(fields)
			assert.ErrorIs(t, err, ErrInvalidPerson)
			assert.Equal(t, before, store.List())
		})
	}
}

func TestRejectedCreateDoesNotConsumeID(t *testing.T) {
	store := NewMemoryStore(Seed())

	_, err := store.Create(Fields{Name: "", Age: 10})
	require.Error(t, err)

	created, err := store.Create(Fields{Name: "Carlos", Age: 40})
	require.NoError(t, err)
	assert.Equal(t, 4, created.ID)
}

func TestUpdateOverwritesAllFields(t *testing.T) {
	store := NewMemoryStore(Seed())
	fields := Fields{Name: "Maria Silva Jr.", Gender: "F", Age: 36, Condition: "Empregada", Note: ""}

	updated, err := store.Update(1, fields)
	require.NoError(t, err)

	want := Person{ID: 1, Name: "Maria Silva Jr.", Gender: "F", Age: 36, Condition: "Empregada", Note: ""}
	assert.Equal(t, want, updated)

	stored, ok := store.FindByID(1)
	require.True(t, ok)
	assert.Equal(t, want, stored)
}

func TestUpdateDoesNotValidate(t *testing.T) {
	store := NewMemoryStore(Seed())

	updated, err := store.Update(2, Fields{})
	require.NoError(t, err)
	assert.Equal(t, Person{ID: 2}, updated)
}

func TestUpdateMissingIDLeavesStoreUnchanged(t *testing.T) {
	store := NewMemoryStore(Seed())
	before := store.List()

	_, err := store.Update(99, Fields{Name: "Ghost", Age: 1})
	assert.ErrorIs(t, err, ErrPersonNotFound)
	assert.Equal(t, before, store.List())
}

func TestDeleteRemovesOnlyTarget(t *testing.T) {
	store := NewMemoryStore(Seed())

	require.NoError(t, store.Delete(2))

	got := store.List()
	require.Len(t, got, 2)
	assert.Equal(t, 1, got[0].ID)
	assert.Equal(t, 3, got[1].ID)
	_, ok := store.FindByID(2)
	assert.False(t, ok)
}

func TestDeleteMissingIDLeavesStoreUnchanged(t *testing.T) {
	store := NewMemoryStore(Seed())
	before := store.List()

	assert.ErrorIs(t, store.Delete(42), ErrPersonNotFound)
	assert.Equal(t, before, store.List())
}

func TestIDsAreNeverReused(t *testing.T) {
	store := NewMemoryStore(nil)

	first, err := store.Create(Fields{Name: "Carlos", Age: 40})
	require.NoError(t, err)
	require.NoError(t, store.Delete(first.ID))

	second, err := store.Create(Fields{Name: "Carlos", Age: 40})
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, second.ID)
	assert.Greater(t, second.ID, first.ID)
}
