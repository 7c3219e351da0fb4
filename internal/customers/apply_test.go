package customers

import (
	"testing"

	"zuri_back_end/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyOrder_FirstOrderCreates(t *testing.T) {
	profile := models.CustomerProfile{Name: "Ada Obi", City: "Lagos", Currency: "NGN"}

	c := ApplyOrder(nil, "ada@example.com", profile, 12500)

	require.NotEmpty(t, c.ID)
	assert.Equal(t, "ada@example.com", c.Email)
	assert.Equal(t, 1, c.TotalOrders)
	assert.Equal(t, 12500.0, c.TotalSpent)
	assert.False(t, c.CreatedAt.IsZero())
}

func TestApplyOrder_SecondOrderAccumulates(t *testing.T) {
	profile := models.CustomerProfile{Name: "Ada Obi", Currency: "NGN"}

	first := ApplyOrder(nil, "ada@example.com", profile, 100.50)
	second := ApplyOrder(&first, "ada@example.com", profile, 49.50)

	// Même identité, agrégats cumulés : c'est un upsert, pas une création.
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, first.CreatedAt, second.CreatedAt)
	assert.Equal(t, 2, second.TotalOrders)
	assert.Equal(t, 150.0, second.TotalSpent)
}

func TestApplyOrder_ContactFieldsLastWriteWins(t *testing.T) {
	first := ApplyOrder(nil, "ada@example.com", models.CustomerProfile{Name: "Ada", City: "Lagos", Phone: "+234800"}, 10)
	second := ApplyOrder(&first, "ada@example.com", models.CustomerProfile{Name: "Ada Obi", City: "Abuja"}, 10)

	// Pas de politique de fusion : la dernière valeur fournie écrase tout,
	// y compris par une chaîne vide.
	assert.Equal(t, "Ada Obi", second.Name)
	assert.Equal(t, "Abuja", second.City)
	assert.Equal(t, "", second.Phone)
}
