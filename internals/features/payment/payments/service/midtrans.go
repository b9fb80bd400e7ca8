// file: internals/features/payment/payments/service/midtrans.go
package service

import (
	"errors"

	midtrans "github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/snap"
)

/* =========================================================
   Midtrans Client
========================================================= */

var SnapClient snap.Client

// InitMidtrans harus dipanggil saat bootstrap app.
// useProduction=true untuk Production, false untuk Sandbox.
func InitMidtrans(serverKey string, useProduction bool) {
	if useProduction {
		SnapClient.New(serverKey, midtrans.Production)
	} else {
		SnapClient.New(serverKey, midtrans.Sandbox)
	}
}

// gatewayAmount mengkonversi gross cents ke GrossAmt Midtrans (unit
// mata uang utuh). Sisa cents dibulatkan KE ATAS supaya gateway tidak
// pernah menagih kurang dari gross; nominal hasil pembulatan inilah
// yang dicatat di payments_charged_cents.
func gatewayAmount(grossCents int64) int64 {
	amt := grossCents / 100
	if grossCents%100 != 0 {
		amt++
	}
	return amt
}

/* =========================================================
   Generate Snap Token — satu item per tagihan drop-in
========================================================= */

func GenerateSnapToken(orderID, itemName string, grossCents int64) (string, string, error) {
	if grossCents <= 0 {
		return "", "", errors.New("invalid gross amount")
	}
	if orderID == "" {
		return "", "", errors.New("order id is required")
	}

	grossAmt := gatewayAmount(grossCents)

	req := &snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  orderID,
			GrossAmt: grossAmt,
		},
		CreditCard: &snap.CreditCardDetails{Secure: true},
		Items: &[]midtrans.ItemDetails{
			{
				ID:       orderID,
				Price:    grossAmt,
				Qty:      1,
				Name:     itemName,
				Category: "drop-in",
			},
		},
	}

	resp, err := SnapClient.CreateTransaction(req)
	if err != nil {
		return "", "", err
	}
	return resp.Token, resp.RedirectURL, nil
}
