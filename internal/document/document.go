// Package document assembles the structured data for the legal documents
// generated per contract (sale contract and debt confession) and hands it
// to the external PDF renderer and blob store.
package document

import (
	"time"

	"github.com/google/uuid"
)

// Kind tags which legal document a payload describes.
type Kind string

const (
	KindSale           Kind = "sale"
	KindDebtConfession Kind = "debt_confession"
)

// Seller holds the dealership's fixed identification printed on every
// document.
type Seller struct {
	Name    string `json:"name"`
	NIF     string `json:"nif"`
	Address string `json:"address"`
	IBAN    string `json:"iban,omitempty"`
}

// Buyer is the client as identified on the document.
type Buyer struct {
	FullName    string `json:"full_name"`
	CitizenCard string `json:"citizen_card"`
	NIF         string `json:"nif"`
	Address     string `json:"address"`
	IBAN        string `json:"iban,omitempty"`
}

// VehicleInfo describes the sold vehicle clause by clause.
type VehicleInfo struct {
	Brand        string `json:"brand"`
	Model        string `json:"model"`
	LicensePlate string `json:"license_plate"`
	VIN          string `json:"vin"`
	Engine       string `json:"engine"`
	Color        string `json:"color"`
	Year         int    `json:"year"`
	Mileage      int    `json:"mileage"`
}

// Amount carries a monetary value in the three renderings the documents
// need: cents for the data, pt-PT formatted for tables, long form for the
// legal text.
type Amount struct {
	Cents     int64  `json:"cents"`
	Formatted string `json:"formatted"`
	InWords   string `json:"in_words"`
}

// InstallmentLine is one row of the payment plan annex.
type InstallmentLine struct {
	Number  int    `json:"number"`
	Amount  Amount `json:"amount"`
	DueDate string `json:"due_date"`
}

// SaleContract is the payload for the compra e venda document.
type SaleContract struct {
	ContractNumber string          `json:"contract_number"`
	Seller         Seller          `json:"seller"`
	Buyer          Buyer           `json:"buyer"`
	Vehicle        VehicleInfo     `json:"vehicle"`
	TotalPrice     Amount          `json:"total_price"`
	DownPayment    Amount          `json:"down_payment"`
	Financed       Amount          `json:"financed"`
	DeliveryDate   string          `json:"delivery_date"`
	DeliveryPlace  string          `json:"delivery_place"`
	SignedOn       string          `json:"signed_on"`
	Notes          string          `json:"notes,omitempty"`
}

// DebtConfession is the payload for the confissão de dívida document that
// accompanies financed sales.
type DebtConfession struct {
	ContractNumber string            `json:"contract_number"`
	Seller         Seller            `json:"seller"`
	Buyer          Buyer             `json:"buyer"`
	Debt           Amount            `json:"debt"`
	Installment    Amount            `json:"installment"`
	Installments   []InstallmentLine `json:"installments"`
	PaymentIBAN    string            `json:"payment_iban,omitempty"`
	SignedOn       string            `json:"signed_on"`
}

// Stored is a generated document record linked to a contract.
type Stored struct {
	ID         uuid.UUID
	ContractID uuid.UUID
	Kind       Kind
	Path       string
	CreatedAt  time.Time
}
