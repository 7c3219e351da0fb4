package utils

import (
	"fmt"
	"log"
	"os"

	"github.com/wneessen/go-mail"
)

// SendMail envoie un email HTML via le relai SMTP de la boutique.
// Utilisé pour le courrier non transactionnel (bienvenue newsletter) ;
// les confirmations de commande passent par le fournisseur HTTP.
func SendMail(to, subject, htmlBody string) error {
	msg := mail.NewMsg()

	from := os.Getenv("SMTP_FROM")
	if from == "" {
		from = "hello@zuri.shop"
	}
	if err := msg.From(from); err != nil {
		return err
	}
	if err := msg.To(to); err != nil {
		return err
	}
	msg.Subject(subject)
	msg.SetBodyString(mail.TypeTextHTML, htmlBody)

	client, err := mail.NewClient(os.Getenv("SMTP_HOST"),
		mail.WithPort(587),
		mail.WithSMTPAuth(mail.SMTPAuthLogin),
		mail.WithUsername(os.Getenv("SMTP_USERNAME")),
		mail.WithPassword(os.Getenv("SMTP_PASSWORD")),
		mail.WithTLSPolicy(mail.TLSMandatory),
	)
	if err != nil {
		return err
	}

	log.Println("📤 Envoi de l'e-mail à", to)
	return client.DialAndSend(msg)
}

// NewsletterWelcomeHTML : email de bienvenue après inscription newsletter.
func NewsletterWelcomeHTML(email string) string {
	return fmt.Sprintf(`
<!DOCTYPE html>
<html lang="en">
<body style="font-family: Arial, sans-serif; background-color: #faf8f5; padding: 20px;">
	<div style="max-width: 600px; margin: auto; background-color: white; padding: 24px; border-radius: 10px;">
		<h2 style="color: #1a1a1a;">Welcome to Zuri 🧡</h2>
		<p>You're in! %s is now on the list for new drops, styling tips and subscriber-only offers.</p>
		<p style="margin-top: 30px; color: #555;">
			With love,<br>
			<strong>The Zuri team</strong>
		</p>
	</div>
</body>
</html>`, email)
}
