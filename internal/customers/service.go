package customers

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/fulltechhq/fulltech-backend/pkg/config"
	pkgdb "github.com/fulltechhq/fulltech-backend/pkg/db"
	"github.com/fulltechhq/fulltech-backend/pkg/db/models"
	"github.com/fulltechhq/fulltech-backend/pkg/enums"
	pkgerrors "github.com/fulltechhq/fulltech-backend/pkg/errors"
	"github.com/fulltechhq/fulltech-backend/pkg/pagination"
	"github.com/fulltechhq/fulltech-backend/pkg/security"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const referralCodeAttempts = 5

type txRunner interface {
	WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error
}

// Service defines account-level operations.
type Service interface {
	Register(ctx context.Context, input RegisterInput) (*models.Customer, error)
	Authenticate(ctx context.Context, input LoginInput) (*models.Customer, error)
	Profile(ctx context.Context, customerID uuid.UUID) (*Profile, error)
	Activities(ctx context.Context, customerID uuid.UUID, params pagination.Params) (*ActivityList, error)
}

// ServiceParams collect the dependencies for NewService.
type ServiceParams struct {
	Repo      Repository
	Referrals ReferralCreator
	Tx        txRunner
	Password  config.PasswordConfig
	Referral  config.ReferralConfig
}

type service struct {
	repo      Repository
	referrals ReferralCreator
	tx        txRunner
	password  config.PasswordConfig
	referral  config.ReferralConfig
	now       func() time.Time
}

// NewService builds a customers service with the required dependencies.
func NewService(params ServiceParams) (Service, error) {
	if params.Repo == nil {
		return nil, fmt.Errorf("customers repository required")
	}
	if params.Referrals == nil {
		return nil, fmt.Errorf("referral creator required")
	}
	if params.Tx == nil {
		return nil, fmt.Errorf("transaction runner required")
	}
	return &service{
		repo:      params.Repo,
		referrals: params.Referrals,
		tx:        params.Tx,
		password:  params.Password,
		referral:  params.Referral,
		now:       time.Now,
	}, nil
}

func (s *service) Register(ctx context.Context, input RegisterInput) (*models.Customer, error) {
	email := normalizeOptional(input.Email)
	phone := normalizeOptional(input.Phone)
	if email == nil && phone == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "email or phone required")
	}
	if strings.TrimSpace(input.Name) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "name required")
	}
	if len(input.Password) < 8 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "password must be at least 8 characters")
	}

	hash, err := security.HashPassword(input.Password, s.password)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "hash password")
	}

	provider := enums.AuthProviderEmail
	if email == nil {
		provider = enums.AuthProviderPhone
	}

	var created *models.Customer
	err = s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)

		var referrer *models.Customer
		if code := normalizeReferralCode(input.ReferralCode); code != nil {
			referrer, err = repo.FindByReferralCode(ctx, *code)
			if err != nil {
				if err == gorm.ErrRecordNotFound {
					return pkgerrors.New(pkgerrors.CodeValidation, "unknown referral code")
				}
				return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "resolve referral code")
			}
			if !referrer.IsActive {
				return pkgerrors.New(pkgerrors.CodeValidation, "referral code is no longer valid")
			}
		}

		code, err := s.freshReferralCode(ctx, repo)
		if err != nil {
			return err
		}

		customer := &models.Customer{
			Email:        email,
			Phone:        phone,
			PasswordHash: &hash,
			Name:         strings.TrimSpace(input.Name),
			Provider:     provider,
			Role:         enums.CustomerRoleCustomer,
			ReferralCode: code,
			IsActive:     true,
		}
		if referrer != nil {
			customer.ReferredBy = &referrer.ID
		}

		if _, err := repo.Create(ctx, customer); err != nil {
			if pkgdb.IsUniqueViolation(err, "ux_customers_email") {
				return pkgerrors.New(pkgerrors.CodeConflict, "email already registered")
			}
			if pkgdb.IsUniqueViolation(err, "ux_customers_phone") {
				return pkgerrors.New(pkgerrors.CodeConflict, "phone already registered")
			}
			if pkgdb.IsUniqueViolation(err, "") {
				return pkgerrors.New(pkgerrors.CodeConflict, "account already registered")
			}
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create customer")
		}

		if referrer != nil {
			if err := s.referrals.CreatePending(ctx, tx, referrer.ID, customer.ID); err != nil {
				return err
			}
		}

		created = customer
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (s *service) Authenticate(ctx context.Context, input LoginInput) (*models.Customer, error) {
	email := normalizeOptional(input.Email)
	phone := normalizeOptional(input.Phone)
	if email == nil && phone == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "email or phone required")
	}
	if input.Password == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "password required")
	}

	var customer *models.Customer
	var err error
	if email != nil {
		customer, err = s.repo.FindByEmail(ctx, *email)
	} else {
		customer, err = s.repo.FindByPhone(ctx, *phone)
	}
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "invalid credentials")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load customer")
	}

	if customer.PasswordHash == nil {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "invalid credentials")
	}
	ok, err := security.VerifyPassword(input.Password, *customer.PasswordHash)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "verify password")
	}
	if !ok {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "invalid credentials")
	}
	if !customer.IsActive {
		return nil, pkgerrors.New(pkgerrors.CodeForbidden, "account disabled")
	}

	now := s.now().UTC()
	if err := s.repo.UpdateLastLogin(ctx, customer.ID, now); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update last login")
	}
	customer.LastLoginAt = &now

	return customer, nil
}

func (s *service) Profile(ctx context.Context, customerID uuid.UUID) (*Profile, error) {
	if customerID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "customer identity missing")
	}
	customer, err := s.repo.FindByID(ctx, customerID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "customer not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load customer")
	}
	return NewProfile(customer), nil
}

func (s *service) Activities(ctx context.Context, customerID uuid.UUID, params pagination.Params) (*ActivityList, error) {
	if customerID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "customer identity missing")
	}
	list, err := s.repo.ListActivities(ctx, customerID, params)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list activities")
	}
	return list, nil
}

func (s *service) freshReferralCode(ctx context.Context, repo Repository) (string, error) {
	for attempt := 0; attempt < referralCodeAttempts; attempt++ {
		code, err := security.GenerateReferralCode(s.referral.CodeLength)
		if err != nil {
			return "", pkgerrors.Wrap(pkgerrors.CodeInternal, err, "generate referral code")
		}
		_, err = repo.FindByReferralCode(ctx, code)
		if err == gorm.ErrRecordNotFound {
			return code, nil
		}
		if err != nil {
			return "", pkgerrors.Wrap(pkgerrors.CodeDependency, err, "check referral code")
		}
	}
	return "", pkgerrors.New(pkgerrors.CodeInternal, "could not allocate a unique referral code")
}

// normalizeReferralCode uppercases to match the stored FT-XXXXXX format.
func normalizeReferralCode(value *string) *string {
	if value == nil {
		return nil
	}
	trimmed := strings.ToUpper(strings.TrimSpace(*value))
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

func normalizeOptional(value *string) *string {
	if value == nil {
		return nil
	}
	trimmed := strings.ToLower(strings.TrimSpace(*value))
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
