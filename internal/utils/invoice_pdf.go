package utils

import (
	"context"
	"encoding/base64"
	"fmt"
	"net/url"
	"os"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
	"github.com/skip2/go-qrcode"
)

// GenerateOrderQR génère un QR de retrait de commande en base64,
// prêt à mettre dans un <img src="...">.
func GenerateOrderQR(orderID string) (string, error) {
	content := fmt.Sprintf("%s/orders/%s", os.Getenv("SITE_URL"), orderID)

	png, err := qrcode.Encode(content, qrcode.Medium, 256)
	if err != nil {
		return "", err
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(png), nil
}

// RenderInvoicePDF charge la page facture du front côté serveur et l'imprime en PDF.
// INVOICE_URL doit ressembler à: https://tgaccessories.com/invoice
func RenderInvoicePDF(orderID, qrBase64 string) ([]byte, error) {
	frontendURL := os.Getenv("INVOICE_URL")
	if frontendURL == "" {
		return nil, fmt.Errorf("INVOICE_URL non configurée")
	}

	q := url.Values{}
	q.Set("id", orderID)
	q.Set("qr", qrBase64)
	fullURL := fmt.Sprintf("%s?%s", frontendURL, q.Encode())

	ctx, cancel := chromedp.NewContext(context.Background())
	defer cancel()

	// timeout pour éviter de bloquer
	ctx, cancel = context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	var pdfBuf []byte

	err := chromedp.Run(ctx,
		chromedp.Navigate(fullURL),
		chromedp.WaitVisible("body", chromedp.ByQuery),
		chromedp.ActionFunc(func(ctx context.Context) error {
			buf, _, err := page.PrintToPDF().WithPrintBackground(true).Do(ctx)
			if err != nil {
				return err
			}
			pdfBuf = buf
			return nil
		}),
	)
	if err != nil {
		return nil, err
	}

	return pdfBuf, nil
}
