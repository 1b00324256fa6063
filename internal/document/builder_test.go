package document_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pinklegion/stand/internal/client"
	"github.com/pinklegion/stand/internal/contract"
	"github.com/pinklegion/stand/internal/document"
	"github.com/pinklegion/stand/internal/schedule"
	"github.com/pinklegion/stand/internal/vehicle"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

var seller = document.Seller{
	Name:    "Stand Automóvel, Lda.",
	NIF:     "504426796",
	Address: "Rua do Comércio 1, Lisboa",
	IBAN:    "PT16123456789012345678901",
}

func testContract() *contract.Contract {
	return &contract.Contract{
		ID:                     uuid.New(),
		Number:                 "AUTO-2024-0001",
		TotalPriceCents:        1500000,
		DownPaymentCents:       300000,
		FinancedCents:          1200000,
		InstallmentCount:       12,
		InstallmentAmountCents: 100000,
		FirstDueDate:           date(2024, time.January, 15),
		ContractDate:           date(2024, time.January, 2),
		DeliveryDate:           date(2024, time.January, 10),
		DeliveryPlace:          "Lisboa",
		Status:                 contract.StatusAtivo,
	}
}

func testClient() *client.Client {
	return &client.Client{
		ID:          uuid.New(),
		FullName:    "Maria Santos",
		Address:     "Av. da Liberdade 100",
		City:        "Lisboa",
		PostalCode:  "1250-096",
		CitizenCard: "12345678 9 ZZ0",
		NIF:         "123456789",
		IBAN:        "PT50000201231234567890154",
	}
}

func TestLongDate(t *testing.T) {
	assert.Equal(t, "15 de janeiro de 2024", document.LongDate(date(2024, time.January, 15)))
	assert.Equal(t, "1 de março de 2025", document.LongDate(date(2025, time.March, 1)))
	assert.Equal(t, "31 de dezembro de 2023", document.LongDate(date(2023, time.December, 31)))
	assert.Equal(t, "", document.LongDate(time.Time{}))
}

func TestBuildSaleContract(t *testing.T) {
	c := testContract()
	cl := testClient()
	v := &vehicle.Vehicle{
		Brand:        "Renault",
		Model:        "Clio",
		Year:         2020,
		LicensePlate: "AB-12-CD",
		VIN:          "WVWZZZ1JZXW000010",
		Color:        "azul",
		Mileage:      45000,
	}

	got := document.BuildSaleContract(seller, c, cl, v)

	assert.Equal(t, "AUTO-2024-0001", got.ContractNumber)
	assert.Equal(t, seller, got.Seller)

	assert.Equal(t, "Maria Santos", got.Buyer.FullName)
	assert.Equal(t, "123456789", got.Buyer.NIF)
	assert.Equal(t, "Av. da Liberdade 100, 1250-096 Lisboa", got.Buyer.Address)

	assert.Equal(t, "AB-12-CD", got.Vehicle.LicensePlate)
	assert.Equal(t, "WVWZZZ1JZXW000010", got.Vehicle.VIN)

	assert.EqualValues(t, 1500000, got.TotalPrice.Cents)
	assert.Equal(t, "quinze mil euros", got.TotalPrice.InWords)
	assert.EqualValues(t, 1200000, got.Financed.Cents)
	assert.Equal(t, "doze mil euros", got.Financed.InWords)

	assert.Equal(t, "10 de janeiro de 2024", got.DeliveryDate)
	assert.Equal(t, "Lisboa", got.DeliveryPlace)
	assert.Equal(t, "2 de janeiro de 2024", got.SignedOn)
}

func TestBuildDebtConfession(t *testing.T) {
	c := testContract()
	cl := testClient()

	entries, err := schedule.Compute(c.Terms())
	require.NoError(t, err)

	got := document.BuildDebtConfession(seller, c, cl, entries)

	assert.Equal(t, "AUTO-2024-0001", got.ContractNumber)
	assert.EqualValues(t, 1200000, got.Debt.Cents)
	assert.Equal(t, "doze mil euros", got.Debt.InWords)
	assert.EqualValues(t, 100000, got.Installment.Cents)

	require.Len(t, got.Installments, 12)
	assert.Equal(t, 1, got.Installments[0].Number)
	assert.Equal(t, "2024-01-15", got.Installments[0].DueDate)
	assert.Equal(t, "2024-12-15", got.Installments[11].DueDate)

	// Installments are paid to the dealership, so the payment IBAN is
	// the seller's account, not the buyer's.
	assert.Equal(t, "PT16 1234 5678 9012 3456 7890 1", got.PaymentIBAN)
	assert.Equal(t, "PT50 0002 0123 1234 5678 9015 4", got.Buyer.IBAN)
}

func TestBuildDebtConfession_BuyerWithoutIBAN(t *testing.T) {
	c := testContract()
	cl := testClient()
	cl.IBAN = ""

	got := document.BuildDebtConfession(seller, c, cl, nil)

	assert.Empty(t, got.Buyer.IBAN)
	assert.Equal(t, "PT16 1234 5678 9012 3456 7890 1", got.PaymentIBAN)
	assert.Empty(t, got.Installments)
}

func TestBuildDebtConfession_SellerWithoutIBAN(t *testing.T) {
	bare := seller
	bare.IBAN = ""

	got := document.BuildDebtConfession(bare, testContract(), testClient(), nil)

	assert.Empty(t, got.PaymentIBAN)
}

func TestBuyerAddressWithoutStreet(t *testing.T) {
	cl := testClient()
	cl.Address = ""

	got := document.BuildSaleContract(seller, testContract(), cl, &vehicle.Vehicle{})

	assert.Equal(t, "1250-096 Lisboa", got.Buyer.Address)
}
