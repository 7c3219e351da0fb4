package mailer

import (
	"fmt"

	"zuri_back_end/internal/currency"
	"zuri_back_end/internal/models"
)

// RenderOrderConfirmation génère le HTML de l'email de confirmation.
// Boutique anglophone (NG/GH/ZA/US) : le contenu client est en anglais.
// qrDataURI optionnel : QR de suivi embarqué en data URI.
func RenderOrderConfirmation(order models.Order, customerName, qrDataURI string) string {
	symbol := currency.Symbol(order.Currency)

	itemsHTML := ""
	for _, item := range order.Items {
		label := item.Name
		if item.Variant != "" {
			label = fmt.Sprintf("%s (%s)", item.Name, item.Variant)
		}
		itemsHTML += fmt.Sprintf(`
				<tr>
					<td style="padding: 10px; border: 1px solid #eee;">%s</td>
					<td style="padding: 10px; border: 1px solid #eee; text-align: center;">%d</td>
					<td style="padding: 10px; border: 1px solid #eee; text-align: right;">%s%.2f</td>
					<td style="padding: 10px; border: 1px solid #eee; text-align: right;">%s%.2f</td>
				</tr>`, label, item.Quantity, symbol, item.Price, symbol, item.Price*float64(item.Quantity))
	}

	shippingDisplay := fmt.Sprintf("%s%.2f", symbol, order.ShippingFee)
	if order.ShippingFee == 0 {
		shippingDisplay = "FREE"
	}

	qrHTML := ""
	if qrDataURI != "" {
		qrHTML = fmt.Sprintf(`
			<div style="text-align: center; margin: 20px 0;">
				<p style="color: #777;">Track your order</p>
				<img src="%s" alt="Order QR" width="140" height="140" />
			</div>`, qrDataURI)
	}

	return fmt.Sprintf(`
<!DOCTYPE html>
<html lang="en">
<head>
	<meta charset="UTF-8">
	<meta name="viewport" content="width=device-width, initial-scale=1.0">
	<title>Order confirmation</title>
</head>
<body style="font-family: Arial, sans-serif; background-color: #faf8f5; padding: 20px;">
	<div style="max-width: 600px; margin: auto; background-color: white; padding: 24px; border-radius: 10px;">
		<h2 style="color: #1a1a1a;">Thank you for your order, %s!</h2>
		<p>Your order <strong>%s</strong> placed on %s has been confirmed.</p>
		<p style="color: #777; font-size: 13px;">Payment reference: %s</p>

		<table style="width: 100%%; border-collapse: collapse; margin: 20px 0;">
			<thead>
				<tr style="background-color: #f0ece6;">
					<th style="padding: 10px; text-align: left; border: 1px solid #eee;">Item</th>
					<th style="padding: 10px; text-align: center; border: 1px solid #eee;">Qty</th>
					<th style="padding: 10px; text-align: right; border: 1px solid #eee;">Unit price</th>
					<th style="padding: 10px; text-align: right; border: 1px solid #eee;">Total</th>
				</tr>
			</thead>
			<tbody>%s
			</tbody>
			<tfoot>
				<tr>
					<td colspan="3" style="padding: 10px; text-align: right;">Subtotal:</td>
					<td style="padding: 10px; text-align: right;">%s%.2f</td>
				</tr>
				<tr>
					<td colspan="3" style="padding: 10px; text-align: right;">Shipping:</td>
					<td style="padding: 10px; text-align: right;">%s</td>
				</tr>
				<tr>
					<td colspan="3" style="padding: 10px; text-align: right; font-weight: bold;">Total:</td>
					<td style="padding: 10px; text-align: right; font-weight: bold;">%s%.2f</td>
				</tr>
			</tfoot>
		</table>

		<h3 style="color: #1a1a1a;">Shipping address</h3>
		<p style="color: #555;">%s<br>%s %s<br>%s</p>
		%s
		<p style="margin-top: 30px; color: #555;">
			With love,<br>
			<strong>The Zuri team</strong>
		</p>
	</div>
</body>
</html>`,
		customerName,
		order.OrderNumber,
		order.CreatedAt.Format("January 2, 2006"),
		order.PaymentReference,
		itemsHTML,
		symbol, order.Subtotal,
		shippingDisplay,
		symbol, order.Total,
		order.ShippingAddress.Street,
		order.ShippingAddress.PostalCode, order.ShippingAddress.City,
		order.ShippingAddress.Country,
		qrHTML)
}
