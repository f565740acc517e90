package utils

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"time"
)

const orderIDAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// GenerateOrderID produit un identifiant de commande lisible : ORD-<timestamp ms>-<5 car. aléatoires>.
func GenerateOrderID() string {
	return fmt.Sprintf("ORD-%d-%s", time.Now().UnixMilli(), RandomToken(5))
}

// RandomToken retourne n caractères alphanumériques majuscules aléatoires.
func RandomToken(n int) string {
	token := make([]byte, n)
	for i := range token {
		idx, err := rand.Int(rand.Reader, big.NewInt(int64(len(orderIDAlphabet))))
		if err != nil {
			// rand.Reader ne doit jamais échouer en pratique
			idx = big.NewInt(int64(i % len(orderIDAlphabet)))
		}
		token[i] = orderIDAlphabet[idx.Int64()]
	}
	return string(token)
}
