package checkout

import (
	"fmt"
	"math/rand"
	"time"
)

// GenerateOrderNumber produit un numéro lisible : ORD-<timestamp ms>-<0..999>.
// C'est un libellé pour l'humain, pas une clé primaire — l'UUID généré par
// la base reste la vraie identité de la commande.
func GenerateOrderNumber() string {
	return fmt.Sprintf("ORD-%d-%d", time.Now().UnixMilli(), rand.Intn(1000))
}
