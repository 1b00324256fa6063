package client

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/pinklegion/stand/internal/validate"
)

// ErrNotFound is returned when a client id does not exist.
var ErrNotFound = errors.New("client not found")

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=client
type Repository interface {
	CreateClient(ctx context.Context, c *Client) error
	GetClient(ctx context.Context, id uuid.UUID) (*Client, error)
	ListClients(ctx context.Context, filter ListFilter) ([]*Client, error)
	UpdateClient(ctx context.Context, c *Client) error
	DeleteClient(ctx context.Context, id uuid.UUID) error
}

type ListFilter struct {
	Search *string
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type CreateParams struct {
	FullName    string
	Email       string
	Phone       string
	Address     string
	City        string
	PostalCode  string
	Country     string
	CitizenCard string
	NIF         string
	IBAN        string
}

func (s *Service) Create(ctx context.Context, params CreateParams) (*Client, error) {
	c := &Client{
		FullName:   params.FullName,
		Email:      params.Email,
		Phone:      params.Phone,
		Address:    params.Address,
		City:       params.City,
		PostalCode: params.PostalCode,
		Country:    params.Country,
	}

	if err := applyIdentifiers(c, params.NIF, params.IBAN, params.CitizenCard); err != nil {
		return nil, err
	}

	if err := s.repo.CreateClient(ctx, c); err != nil {
		return nil, err
	}

	return c, nil
}

type UpdateParams struct {
	FullName    *string
	Email       *string
	Phone       *string
	Address     *string
	City        *string
	PostalCode  *string
	Country     *string
	CitizenCard *string
	NIF         *string
	IBAN        *string
}

func (s *Service) Update(ctx context.Context, id uuid.UUID, params UpdateParams) (*Client, error) {
	c, err := s.repo.GetClient(ctx, id)
	if err != nil {
		return nil, err
	}

	assign(&c.FullName, params.FullName)
	assign(&c.Email, params.Email)
	assign(&c.Phone, params.Phone)
	assign(&c.Address, params.Address)
	assign(&c.City, params.City)
	assign(&c.PostalCode, params.PostalCode)
	assign(&c.Country, params.Country)

	nif, iban, cc := c.NIF, c.IBAN, c.CitizenCard
	assign(&nif, params.NIF)
	assign(&iban, params.IBAN)
	assign(&cc, params.CitizenCard)

	if err := applyIdentifiers(c, nif, iban, cc); err != nil {
		return nil, err
	}

	if err := s.repo.UpdateClient(ctx, c); err != nil {
		return nil, err
	}

	return c, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Client, error) {
	return s.repo.GetClient(ctx, id)
}

func (s *Service) List(ctx context.Context, filter ListFilter) ([]*Client, error) {
	return s.repo.ListClients(ctx, filter)
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.DeleteClient(ctx, id)
}

// applyIdentifiers validates and normalizes the fiscal/bank identifiers
// onto the client. NIF is required; IBAN and citizen card only when
// present.
func applyIdentifiers(c *Client, nif, iban, citizenCard string) error {
	res := validate.NIF(nif)
	if !res.Valid {
		return res.Err
	}

	c.NIF = res.Normalized

	c.IBAN = ""
	if iban != "" {
		res = validate.IBAN(iban)
		if !res.Valid {
			return res.Err
		}

		c.IBAN = res.Normalized
	}

	c.CitizenCard = ""
	if citizenCard != "" {
		res = validate.CitizenCard(citizenCard)
		if !res.Valid {
			return res.Err
		}

		c.CitizenCard = res.Normalized
	}

	return nil
}

func assign[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}
