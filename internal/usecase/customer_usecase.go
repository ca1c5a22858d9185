package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/finvault/corebank/internal/domain"
)

// CustomerUseCase handles customer registration and authentication.
type CustomerUseCase struct {
	customerRepo CustomerRepository
	idGen        IDGenerator
}

// NewCustomerUseCase creates a new CustomerUseCase.
func NewCustomerUseCase(customerRepo CustomerRepository, idGen IDGenerator) *CustomerUseCase {
	return &CustomerUseCase{
		customerRepo: customerRepo,
		idGen:        idGen,
	}
}

// RegisterInput represents input for registering a customer.
type RegisterInput struct {
	Email    string
	Name     string
	Password string
}

// Register creates a new customer with a bcrypt-hashed password.
func (uc *CustomerUseCase) Register(ctx context.Context, input RegisterInput) (*domain.Customer, error) {
	if err := domain.ValidateEmail(input.Email); err != nil {
		return nil, err
	}

	if err := domain.ValidatePassword(input.Password); err != nil {
		return nil, err
	}

	email := strings.TrimSpace(strings.ToLower(input.Email))

	existing, err := uc.customerRepo.GetByEmail(ctx, email)
	if err != nil && !errors.Is(err, domain.ErrOwnerNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailTaken
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()

	customer := &domain.Customer{
		ID:             uc.idGen.Generate(),
		Email:          email,
		Name:           input.Name,
		HashedPassword: string(hashed),
		Role:           domain.RoleCustomer,
		Active:         true,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := uc.customerRepo.Create(ctx, customer); err != nil {
		return nil, err
	}

	return sanitized(customer), nil
}

// sanitized returns a copy without the password hash.
func sanitized(customer *domain.Customer) *domain.Customer {
	copied := *customer
	copied.HashedPassword = ""

	return &copied
}

// AuthenticateInput represents authentication input.
type AuthenticateInput struct {
	Email    string
	Password string
}

// Authenticate verifies customer credentials.
func (uc *CustomerUseCase) Authenticate(ctx context.Context, input AuthenticateInput) (*domain.Customer, error) {
	email := strings.TrimSpace(strings.ToLower(input.Email))

	customer, err := uc.customerRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrOwnerNotFound) {
			return nil, domain.ErrInvalidCredentials
		}

		return nil, err
	}

	if !customer.Active {
		return nil, domain.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(customer.HashedPassword), []byte(input.Password)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}

	return sanitized(customer), nil
}

// GetCustomer retrieves a customer by ID.
func (uc *CustomerUseCase) GetCustomer(ctx context.Context, id string) (*domain.Customer, error) {
	return uc.customerRepo.GetByID(ctx, id)
}
