package document

import (
	"fmt"
	"strings"
	"time"

	"github.com/pinklegion/stand/internal/client"
	"github.com/pinklegion/stand/internal/contract"
	"github.com/pinklegion/stand/internal/money"
	"github.com/pinklegion/stand/internal/schedule"
	"github.com/pinklegion/stand/internal/validate"
	"github.com/pinklegion/stand/internal/vehicle"
)

var monthNames = []string{
	"janeiro", "fevereiro", "março", "abril", "maio", "junho",
	"julho", "agosto", "setembro", "outubro", "novembro", "dezembro",
}

// LongDate renders a date in the long Portuguese form used in legal text,
// e.g. "15 de janeiro de 2024".
func LongDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}

	return fmt.Sprintf("%d de %s de %d", t.Day(), monthNames[t.Month()-1], t.Year())
}

func amount(cents int64) Amount {
	return Amount{
		Cents:     cents,
		Formatted: money.FormatEUR(cents),
		InWords:   money.InWords(cents),
	}
}

// BuildSaleContract assembles the compra e venda payload from the
// aggregate records.
func BuildSaleContract(seller Seller, c *contract.Contract, cl *client.Client, v *vehicle.Vehicle) SaleContract {
	return SaleContract{
		ContractNumber: c.Number,
		Seller:         seller,
		Buyer:          buyer(cl),
		Vehicle: VehicleInfo{
			Brand:        v.Brand,
			Model:        v.Model,
			LicensePlate: v.LicensePlate,
			VIN:          v.VIN,
			Engine:       v.Engine,
			Color:        v.Color,
			Year:         v.Year,
			Mileage:      v.Mileage,
		},
		TotalPrice:    amount(c.TotalPriceCents),
		DownPayment:   amount(c.DownPaymentCents),
		Financed:      amount(c.FinancedCents),
		DeliveryDate:  LongDate(c.DeliveryDate),
		DeliveryPlace: c.DeliveryPlace,
		SignedOn:      LongDate(c.ContractDate),
		Notes:         c.Notes,
	}
}

// BuildDebtConfession assembles the confissão de dívida payload, including
// the full installment plan annex. The entries are expected in
// installment-number order, as computed or as read from the store.
func BuildDebtConfession(seller Seller, c *contract.Contract, cl *client.Client, entries []*schedule.Entry) DebtConfession {
	lines := make([]InstallmentLine, len(entries))
	for i, e := range entries {
		lines[i] = InstallmentLine{
			Number:  e.Number,
			Amount:  amount(e.AmountCents),
			DueDate: e.DueDate.Format(time.DateOnly),
		}
	}

	// Installments are paid into the dealership's account, so the payment
	// IBAN on the confession is the seller's, not the buyer's.
	iban := ""
	if seller.IBAN != "" {
		iban = validate.FormatIBAN(seller.IBAN)
	}

	return DebtConfession{
		ContractNumber: c.Number,
		Seller:         seller,
		Buyer:          buyer(cl),
		Debt:           amount(c.FinancedCents),
		Installment:    amount(c.InstallmentAmountCents),
		Installments:   lines,
		PaymentIBAN:    iban,
		SignedOn:       LongDate(c.ContractDate),
	}
}

func buyer(cl *client.Client) Buyer {
	addr := cl.Address

	if cl.PostalCode != "" || cl.City != "" {
		tail := strings.TrimSpace(cl.PostalCode + " " + cl.City)
		if addr != "" {
			addr += ", " + tail
		} else {
			addr = tail
		}
	}

	iban := ""
	if cl.IBAN != "" {
		iban = validate.FormatIBAN(cl.IBAN)
	}

	return Buyer{
		FullName:    cl.FullName,
		CitizenCard: cl.CitizenCard,
		NIF:         cl.NIF,
		Address:     addr,
		IBAN:        iban,
	}
}
