package currency

import (
	"math"
	"strings"
)

// Devises acceptées par le widget de paiement. Toute autre devise est
// remplacée silencieusement par USD (le front affiche l'avertissement).
var supported = map[string]bool{
	"NGN": true,
	"GHS": true,
	"ZAR": true,
	"USD": true,
}

var symbols = map[string]string{
	"NGN": "₦",
	"GHS": "₵",
	"ZAR": "R",
	"USD": "$",
}

// Normalize retourne le code tel quel s'il est supporté par le gateway,
// sinon "USD". Jamais d'erreur.
func Normalize(code string) string {
	c := strings.ToUpper(strings.TrimSpace(code))
	if supported[c] {
		return c
	}
	return "USD"
}

// ToMinorUnits convertit un montant décimal en unités mineures du gateway
// (kobo, pesewas, cents). Arrondi au plus proche, demi vers l'extérieur.
func ToMinorUnits(amount float64) int64 {
	return int64(math.Round(amount * 100))
}

// Symbol retourne le symbole d'affichage d'une devise, ou le code brut
// si la devise n'est pas reconnue.
func Symbol(code string) string {
	c := strings.ToUpper(strings.TrimSpace(code))
	if s, ok := symbols[c]; ok {
		return s
	}
	return c
}
