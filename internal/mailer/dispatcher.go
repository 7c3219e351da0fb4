package mailer

import (
	"context"
	"fmt"
	"log"
	"os"

	"zuri_back_end/internal/models"
	"zuri_back_end/internal/utils"
)

// Dispatcher : implémentation du port checkout.Dispatcher. L'échec est
// remonté à la saga qui le journalise sans jamais l'escalader.
type Dispatcher struct {
	Client *Client
}

func NewDispatcher() *Dispatcher {
	return &Dispatcher{Client: NewClient()}
}

func (d *Dispatcher) SendConfirmation(ctx context.Context, order models.Order, customerName string) error {
	frontURL := os.Getenv("FRONTEND_URL")
	if frontURL == "" {
		frontURL = "https://zuri.shop"
	}

	// QR de suivi : best-effort, l'email part sans lui en cas de pépin.
	trackingURL := fmt.Sprintf("%s/order-confirmation/%s", frontURL, order.ID)
	qrDataURI, err := utils.GenerateTrackingQR(trackingURL)
	if err != nil {
		log.Printf("⚠️ QR de suivi non généré pour %s: %v", order.OrderNumber, err)
		qrDataURI = ""
	}

	html := RenderOrderConfirmation(order, customerName, qrDataURI)
	subject := fmt.Sprintf("Your Zuri order %s is confirmed", order.OrderNumber)

	if err := d.Client.Send(ctx, order.Email, subject, html); err != nil {
		return err
	}
	log.Printf("📧 Email de confirmation envoyé à %s (%s)", order.Email, order.OrderNumber)
	return nil
}
