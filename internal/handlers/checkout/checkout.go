package checkout

import (
	"fmt"
	"log"
	"net/http"
	"os"

	"zuri_back_end/internal/cart"
	saga "zuri_back_end/internal/checkout"
	"zuri_back_end/internal/currency"
	"zuri_back_end/internal/customers"
	"zuri_back_end/internal/gateway"
	"zuri_back_end/internal/mailer"
	"zuri_back_end/internal/models"
	"zuri_back_end/internal/orders"

	"github.com/gin-gonic/gin"
)

// noticeCollector capture les messages de la saga pour les rendre au
// front (qui les affiche en toasts).
type noticeCollector struct {
	Notices []gin.H
}

func (n *noticeCollector) Notify(level, message string) {
	n.Notices = append(n.Notices, gin.H{"level": level, "message": message})
}

func newSaga(notices *noticeCollector) *saga.Service {
	return saga.NewService(
		customers.NewStore(),
		orders.NewStore(),
		cart.NewRedisStore(),
		mailer.NewDispatcher(),
		notices,
	)
}

// Arm prépare la configuration du widget de paiement pour le panier
// courant : référence fraîche, devise normalisée, montant en unités
// mineures. POST /api/checkout
func Arm(c *gin.Context) {
	userID := c.GetString("user_id")
	email := c.GetString("email")
	if userID == "" || email == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Utilisateur non authentifié"})
		return
	}

	var req struct {
		Currency string `json:"currency"`
	}
	// Corps optionnel : devise par défaut de la boutique sinon.
	_ = c.ShouldBindJSON(&req)
	if req.Currency == "" {
		req.Currency = os.Getenv("STORE_CURRENCY")
	}
	if req.Currency == "" {
		req.Currency = "NGN"
	}

	ctx := c.Request.Context()
	items, err := cart.Get(ctx, userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lecture panier"})
		return
	}
	if len(items) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Panier vide"})
		return
	}

	total := saga.Subtotal(items) // livraison offerte : total = sous-total
	charged := currency.Normalize(req.Currency)

	cfg := gateway.BuildWidgetConfig(email, total, req.Currency, []gateway.CustomField{
		{DisplayName: "Articles", VariableName: "items_count", Value: fmt.Sprintf("%d", len(items))},
		{DisplayName: "Total commande", VariableName: "order_total", Value: fmt.Sprintf("%.2f", total)},
		{DisplayName: "Client", VariableName: "user_id", Value: userID},
	})

	log.Printf("💳 Checkout armé: %s (%.2f %s) pour %s", cfg.Reference, total, charged, email)

	c.JSON(http.StatusOK, gin.H{
		"widget":             cfg,
		"amount":             total,
		"requested_currency": req.Currency,
		"charged_currency":   charged,
		// Le front doit prévenir l'acheteur avant d'ouvrir le widget
		// quand sa devise a été substituée.
		"currency_substituted": charged != req.Currency,
		"items_count":          len(items),
	})
}

type completeRequest struct {
	Reference string                 `json:"reference" binding:"required"`
	Email     string                 `json:"email"`
	Profile   models.CustomerProfile `json:"profile"`
	Items     []models.CartItem      `json:"items"` // invités uniquement
}

// Complete fait aboutir la saga après le callback succès du widget.
// La référence est revérifiée côté serveur avant toute écriture.
// POST /api/checkout/complete
func Complete(c *gin.Context) {
	var req completeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides", "details": err.Error()})
		return
	}

	userID := c.GetString("user_id")
	email := c.GetString("email")
	if email == "" {
		email = req.Email
	}
	if email == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email requis"})
		return
	}

	ctx := c.Request.Context()

	// On ne fait pas confiance au callback du front : vérification
	// directe auprès du gateway.
	gw := gateway.NewClient(os.Getenv("PAYSTACK_SECRET_KEY"))
	tx, err := gw.VerifyTransaction(ctx, req.Reference)
	if err != nil {
		log.Printf("❌ Vérification gateway échouée (%s): %v", req.Reference, err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Paiement non vérifiable", "reference": req.Reference})
		return
	}
	// La devise du profil n'est qu'une préférence client ; la commande est
	// toujours enregistrée dans la devise de la transaction capturée.
	if req.Profile.Currency == "" {
		req.Profile.Currency = tx.Currency
	}

	// Le panier du compte fait foi ; les invités fournissent le leur.
	items := req.Items
	if userID != "" {
		items, err = cart.Get(ctx, userID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lecture panier"})
			return
		}
	}
	if len(items) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Panier vide"})
		return
	}

	// Même défiance pour le montant : une référence valide pour un autre
	// montant ne vaut rien pour ce panier.
	if err := tx.MatchesOrder(saga.Subtotal(items)); err != nil {
		log.Printf("❌ Transaction incohérente avec le panier: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Montant payé différent du panier", "reference": req.Reference})
		return
	}

	notices := &noticeCollector{}
	svc := newSaga(notices)
	// Capture de la commande complète : la vue de confirmation des
	// invités n'a pas accès à GET /api/orders/:id.
	var placed models.Order
	svc.Hooks.OnSuccess = func(o models.Order) { placed = o }
	outcome, err := svc.Complete(ctx, saga.PaymentSuccess{Reference: tx.Reference}, saga.CheckoutRequest{
		UserID:   userID,
		Email:    email,
		Currency: tx.Currency,
		Profile:  req.Profile,
		Items:    items,
	})
	if err != nil {
		// Paiement capturé, commande perdue : le message porte la
		// référence, seule poignée de réconciliation pour le support.
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     fmt.Sprintf("Paiement débité (référence %s) mais commande non enregistrée. Contactez le support.", outcome.Reference),
			"state":     outcome.State,
			"reference": outcome.Reference,
			"notices":   notices.Notices,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"state":        outcome.State,
		"order_id":     outcome.OrderID,
		"order_number": outcome.OrderNumber,
		"reference":    outcome.Reference,
		"order":        placed,
		"redirect":     fmt.Sprintf("/order-confirmation/%s", outcome.OrderID),
		"notices":      notices.Notices,
	})
}

// Cancel acte la fermeture du widget par l'utilisateur. Aucune écriture.
// POST /api/checkout/cancel
func Cancel(c *gin.Context) {
	var req struct {
		Reference string `json:"reference"`
	}
	_ = c.ShouldBindJSON(&req)

	notices := &noticeCollector{}
	outcome, _ := newSaga(notices).Complete(c.Request.Context(), saga.PaymentCancelled{}, saga.CheckoutRequest{})

	log.Printf("ℹ️ Paiement annulé par l'utilisateur (ref %s)", req.Reference)
	c.JSON(http.StatusOK, gin.H{
		"state":   outcome.State,
		"notices": notices.Notices,
	})
}
