package currency

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize_SupportedCodes(t *testing.T) {
	for _, code := range []string{"NGN", "GHS", "ZAR", "USD"} {
		assert.Equal(t, code, Normalize(code))
	}
}

func TestNormalize_FallbackToUSD(t *testing.T) {
	assert.Equal(t, "USD", Normalize("JPY"))
	assert.Equal(t, "USD", Normalize("EUR"))
	assert.Equal(t, "USD", Normalize(""))
	assert.Equal(t, "USD", Normalize("naira"))
}

func TestNormalize_CaseInsensitive(t *testing.T) {
	assert.Equal(t, "NGN", Normalize("ngn"))
	assert.Equal(t, "ZAR", Normalize(" zar "))
}

func TestToMinorUnits(t *testing.T) {
	assert.Equal(t, int64(1999), ToMinorUnits(19.99))
	assert.Equal(t, int64(0), ToMinorUnits(0))
	assert.Equal(t, int64(100), ToMinorUnits(1))
	// Politique d'arrondi figée : 100.005 en float64 vaut 100.00499…,
	// donc 10000 et pas 10001.
	assert.Equal(t, int64(10000), ToMinorUnits(100.005))
}

func TestToMinorUnits_NoDriftOnLargeAmounts(t *testing.T) {
	// Jusqu'à 10^7, la dérive flottante doit rester sous l'unité mineure.
	assert.Equal(t, int64(999999999), ToMinorUnits(9999999.99))
	assert.Equal(t, int64(1000000000), ToMinorUnits(10000000.00))
	assert.Equal(t, int64(123456789), ToMinorUnits(1234567.89))
}

func TestSymbol(t *testing.T) {
	assert.Equal(t, "₦", Symbol("NGN"))
	assert.Equal(t, "₵", Symbol("GHS"))
	assert.Equal(t, "R", Symbol("ZAR"))
	assert.Equal(t, "$", Symbol("USD"))
	// Devise inconnue : on affiche le code brut.
	assert.Equal(t, "JPY", Symbol("JPY"))
}
