package utils

import (
	"bytes"
	"fmt"
	"log"
	"os"

	"tg_accessories_back_end/internal/models"

	"github.com/wneessen/go-mail"
)

func newMailClient() (*mail.Client, error) {
	return mail.NewClient(os.Getenv("SMTP_HOST"),
		mail.WithPort(587),
		mail.WithSMTPAuth(mail.SMTPAuthLogin),
		mail.WithUsername(os.Getenv("SMTP_USERNAME")),
		mail.WithPassword(os.Getenv("SMTP_PASSWORD")),
		mail.WithTLSPolicy(mail.TLSMandatory),
	)
}

func senderAddress() string {
	if from := os.Getenv("SMTP_FROM"); from != "" {
		return from
	}
	return "noreply@tgaccessories.com"
}

// SendOrderConfirmationEmail envoie la confirmation de commande, avec la
// facture PDF en pièce jointe quand elle a pu être générée.
func SendOrderConfirmationEmail(to string, order models.Order, pdfAttachment []byte) error {
	msg := mail.NewMsg()

	if err := msg.From(senderAddress()); err != nil {
		return err
	}
	if err := msg.To(to); err != nil {
		return err
	}
	msg.Subject("Confirmation de votre commande " + order.OrderID)
	msg.SetBodyString(mail.TypeTextHTML, GenerateOrderConfirmationHTML(order))

	if pdfAttachment != nil {
		msg.AttachReader("facture_"+order.OrderID+".pdf", bytes.NewReader(pdfAttachment))
	}

	client, err := newMailClient()
	if err != nil {
		return err
	}

	log.Println("📤 Envoi de la confirmation de commande à", to)
	return client.DialAndSend(msg)
}

// SendContactNotification relaie un message du formulaire de contact vers la boutique.
func SendContactNotification(contact models.Contact) error {
	msg := mail.NewMsg()

	if err := msg.From(senderAddress()); err != nil {
		return err
	}
	to := os.Getenv("CONTACT_NOTIFY_EMAIL")
	if to == "" {
		to = senderAddress()
	}
	if err := msg.To(to); err != nil {
		return err
	}
	msg.Subject("[Contact] " + contact.Subject)
	msg.SetBodyString(mail.TypeTextPlain, fmt.Sprintf(
		"De: %s <%s>\n\n%s\n", contact.Name, contact.Email, contact.Message))

	client, err := newMailClient()
	if err != nil {
		return err
	}

	log.Println("📤 Notification contact envoyée pour", contact.Email)
	return client.DialAndSend(msg)
}

// GenerateOrderConfirmationHTML génère le HTML de confirmation de commande
func GenerateOrderConfirmationHTML(order models.Order) string {
	itemsHTML := ""
	for _, item := range order.Items {
		itemsHTML += fmt.Sprintf(`
			<tr>
				<td>%s</td>
				<td>%d</td>
				<td>%.2f$</td>
				<td>%.2f$</td>
			</tr>`, item.Name, item.Quantity, item.Price, item.Price*float64(item.Quantity))
	}

	return fmt.Sprintf(`
<!DOCTYPE html>
<html lang="fr">
<head>
	<meta charset="UTF-8">
	<title>Confirmation de commande</title>
</head>
<body style="font-family: Arial, sans-serif; background-color: #f9f9f9; padding: 20px;">
	<div style="max-width: 600px; margin: auto; background-color: white; padding: 20px; border-radius: 10px;">
		<h2 style="color: #333;">Confirmation de votre commande %s</h2>
		<p>Bonjour,</p>
		<p>Votre commande a été confirmée avec succès.</p>

		<h3>Détails de la commande</h3>
		<table style="width: 100%%; border-collapse: collapse; margin: 20px 0;">
			<thead>
				<tr style="background-color: #f0f0f0;">
					<th style="padding: 10px; text-align: left; border: 1px solid #ddd;">Produit</th>
					<th style="padding: 10px; text-align: left; border: 1px solid #ddd;">Quantité</th>
					<th style="padding: 10px; text-align: left; border: 1px solid #ddd;">Prix unitaire</th>
					<th style="padding: 10px; text-align: left; border: 1px solid #ddd;">Total</th>
				</tr>
			</thead>
			<tbody>%s</tbody>
		</table>

		<p style="font-size: 18px;"><strong>Total : %.2f$</strong></p>
		<p>Merci pour votre confiance,<br>L'équipe TG Accessories</p>
	</div>
</body>
</html>`, order.OrderID, itemsHTML, order.Total)
}
