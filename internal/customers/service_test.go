package customers

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/fulltechhq/fulltech-backend/pkg/config"
	"github.com/fulltechhq/fulltech-backend/pkg/db/models"
	pkgerrors "github.com/fulltechhq/fulltech-backend/pkg/errors"
	"github.com/fulltechhq/fulltech-backend/pkg/pagination"
	"github.com/fulltechhq/fulltech-backend/pkg/security"
)

type stubCustomersRepo struct {
	byEmail   map[string]*models.Customer
	byPhone   map[string]*models.Customer
	byCode    map[string]*models.Customer
	byID      map[uuid.UUID]*models.Customer
	created   *models.Customer
	createErr error
	lastLogin *time.Time
}

func newStubCustomersRepo() *stubCustomersRepo {
	return &stubCustomersRepo{
		byEmail: map[string]*models.Customer{},
		byPhone: map[string]*models.Customer{},
		byCode:  map[string]*models.Customer{},
		byID:    map[uuid.UUID]*models.Customer{},
	}
}

func (s *stubCustomersRepo) WithTx(tx *gorm.DB) Repository { return s }

func (s *stubCustomersRepo) Create(ctx context.Context, customer *models.Customer) (*models.Customer, error) {
	if s.createErr != nil {
		return nil, s.createErr
	}
	customer.ID = uuid.New()
	customer.CreatedAt = time.Now().UTC()
	s.created = customer
	return customer, nil
}

func (s *stubCustomersRepo) FindByID(ctx context.Context, id uuid.UUID) (*models.Customer, error) {
	if c, ok := s.byID[id]; ok {
		return c, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *stubCustomersRepo) FindByEmail(ctx context.Context, email string) (*models.Customer, error) {
	if c, ok := s.byEmail[email]; ok {
		return c, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *stubCustomersRepo) FindByPhone(ctx context.Context, phone string) (*models.Customer, error) {
	if c, ok := s.byPhone[phone]; ok {
		return c, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *stubCustomersRepo) FindByReferralCode(ctx context.Context, code string) (*models.Customer, error) {
	if c, ok := s.byCode[code]; ok {
		return c, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *stubCustomersRepo) UpdateLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error {
	s.lastLogin = &at
	return nil
}

func (s *stubCustomersRepo) ListActivities(ctx context.Context, customerID uuid.UUID, params pagination.Params) (*ActivityList, error) {
	return &ActivityList{}, nil
}

func (s *stubCustomersRepo) DeleteActivitiesOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	return 0, nil
}

type stubReferralCreator struct {
	calls      int
	referrerID uuid.UUID
	referredID uuid.UUID
}

func (s *stubReferralCreator) CreatePending(ctx context.Context, tx *gorm.DB, referrerID, referredID uuid.UUID) error {
	s.calls++
	s.referrerID = referrerID
	s.referredID = referredID
	return nil
}

type stubTxRunner struct{}

func (stubTxRunner) WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error {
	return fn(&gorm.DB{})
}

func testPasswordConfig() config.PasswordConfig {
	return config.PasswordConfig{
		ArgonMemoryKB:    1024,
		ArgonTime:        1,
		ArgonParallelism: 1,
		ArgonSaltLen:     16,
		ArgonKeyLen:      32,
	}
}

func newCustomersTestService(t *testing.T, repo *stubCustomersRepo, referrals *stubReferralCreator) Service {
	t.Helper()
	svc, err := NewService(ServiceParams{
		Repo:      repo,
		Referrals: referrals,
		Tx:        stubTxRunner{},
		Password:  testPasswordConfig(),
		Referral:  config.ReferralConfig{RewardPercent: 5, CodeLength: 6},
	})
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}
	return svc
}

func strptr(v string) *string { return &v }

func TestRegisterRequiresIdentity(t *testing.T) {
	svc := newCustomersTestService(t, newStubCustomersRepo(), &stubReferralCreator{})

	_, err := svc.Register(context.Background(), RegisterInput{
		Name:     "Ana",
		Password: "supersecret",
	})
	if appErr := pkgerrors.As(err); appErr == nil || appErr.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestRegisterRejectsShortPassword(t *testing.T) {
	svc := newCustomersTestService(t, newStubCustomersRepo(), &stubReferralCreator{})

	_, err := svc.Register(context.Background(), RegisterInput{
		Email:    strptr("ana@example.com"),
		Name:     "Ana",
		Password: "short",
	})
	if appErr := pkgerrors.As(err); appErr == nil || appErr.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestRegisterCreatesAccountWithFreshCode(t *testing.T) {
	repo := newStubCustomersRepo()
	svc := newCustomersTestService(t, repo, &stubReferralCreator{})

	customer, err := svc.Register(context.Background(), RegisterInput{
		Email:    strptr("  Ana@Example.com "),
		Name:     " Ana ",
		Password: "supersecret",
	})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if customer.Email == nil || *customer.Email != "ana@example.com" {
		t.Fatalf("expected normalized email, got %v", customer.Email)
	}
	if customer.Name != "Ana" {
		t.Fatalf("expected trimmed name, got %q", customer.Name)
	}
	if !strings.HasPrefix(customer.ReferralCode, security.ReferralCodePrefix) {
		t.Fatalf("expected referral code with prefix, got %q", customer.ReferralCode)
	}
	if customer.ReferredBy != nil {
		t.Fatalf("expected no referrer, got %v", customer.ReferredBy)
	}
	if customer.PasswordHash == nil {
		t.Fatal("expected password hash to be set")
	}
	ok, err := security.VerifyPassword("supersecret", *customer.PasswordHash)
	if err != nil || !ok {
		t.Fatalf("expected stored hash to verify, ok=%v err=%v", ok, err)
	}
}

func TestRegisterRejectsUnknownReferralCode(t *testing.T) {
	svc := newCustomersTestService(t, newStubCustomersRepo(), &stubReferralCreator{})

	_, err := svc.Register(context.Background(), RegisterInput{
		Email:        strptr("ana@example.com"),
		Name:         "Ana",
		Password:     "supersecret",
		ReferralCode: strptr("ft-zzzzzz"),
	})
	if appErr := pkgerrors.As(err); appErr == nil || appErr.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error for unknown code, got %v", err)
	}
}

func TestRegisterRejectsDisabledReferrer(t *testing.T) {
	repo := newStubCustomersRepo()
	referrer := &models.Customer{ID: uuid.New(), ReferralCode: "FT-ABC123", IsActive: false}
	repo.byCode["FT-ABC123"] = referrer
	svc := newCustomersTestService(t, repo, &stubReferralCreator{})

	_, err := svc.Register(context.Background(), RegisterInput{
		Email:        strptr("ana@example.com"),
		Name:         "Ana",
		Password:     "supersecret",
		ReferralCode: strptr("ft-abc123"),
	})
	if appErr := pkgerrors.As(err); appErr == nil || appErr.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error for disabled referrer, got %v", err)
	}
}

func TestRegisterLinksReferrerAndCreatesPendingReferral(t *testing.T) {
	repo := newStubCustomersRepo()
	referrer := &models.Customer{ID: uuid.New(), ReferralCode: "FT-ABC123", IsActive: true}
	repo.byCode["FT-ABC123"] = referrer
	referrals := &stubReferralCreator{}
	svc := newCustomersTestService(t, repo, referrals)

	customer, err := svc.Register(context.Background(), RegisterInput{
		Email:        strptr("ana@example.com"),
		Name:         "Ana",
		Password:     "supersecret",
		ReferralCode: strptr(" ft-abc123 "),
	})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if customer.ReferredBy == nil || *customer.ReferredBy != referrer.ID {
		t.Fatalf("expected referred_by to point at referrer, got %v", customer.ReferredBy)
	}
	if referrals.calls != 1 {
		t.Fatalf("expected one pending referral, got %d", referrals.calls)
	}
	if referrals.referrerID != referrer.ID || referrals.referredID != customer.ID {
		t.Fatalf("pending referral links wrong accounts: %v -> %v", referrals.referrerID, referrals.referredID)
	}
}

func TestAuthenticateRejectsUnknownEmail(t *testing.T) {
	svc := newCustomersTestService(t, newStubCustomersRepo(), &stubReferralCreator{})

	_, err := svc.Authenticate(context.Background(), LoginInput{
		Email:    strptr("nobody@example.com"),
		Password: "supersecret",
	})
	if appErr := pkgerrors.As(err); appErr == nil || appErr.Code() != pkgerrors.CodeUnauthorized {
		t.Fatalf("expected unauthorized, got %v", err)
	}
}

func TestAuthenticateRejectsWrongPassword(t *testing.T) {
	repo := newStubCustomersRepo()
	hash, err := security.HashPassword("supersecret", testPasswordConfig())
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	repo.byEmail["ana@example.com"] = &models.Customer{
		ID:           uuid.New(),
		Email:        strptr("ana@example.com"),
		PasswordHash: &hash,
		IsActive:     true,
	}
	svc := newCustomersTestService(t, repo, &stubReferralCreator{})

	_, err = svc.Authenticate(context.Background(), LoginInput{
		Email:    strptr("ana@example.com"),
		Password: "wrongpassword",
	})
	if appErr := pkgerrors.As(err); appErr == nil || appErr.Code() != pkgerrors.CodeUnauthorized {
		t.Fatalf("expected unauthorized, got %v", err)
	}
}

func TestAuthenticateRejectsDisabledAccount(t *testing.T) {
	repo := newStubCustomersRepo()
	hash, err := security.HashPassword("supersecret", testPasswordConfig())
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	repo.byEmail["ana@example.com"] = &models.Customer{
		ID:           uuid.New(),
		Email:        strptr("ana@example.com"),
		PasswordHash: &hash,
		IsActive:     false,
	}
	svc := newCustomersTestService(t, repo, &stubReferralCreator{})

	_, err = svc.Authenticate(context.Background(), LoginInput{
		Email:    strptr("ana@example.com"),
		Password: "supersecret",
	})
	if appErr := pkgerrors.As(err); appErr == nil || appErr.Code() != pkgerrors.CodeForbidden {
		t.Fatalf("expected forbidden, got %v", err)
	}
}

func TestAuthenticateStampsLastLogin(t *testing.T) {
	repo := newStubCustomersRepo()
	hash, err := security.HashPassword("supersecret", testPasswordConfig())
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	repo.byEmail["ana@example.com"] = &models.Customer{
		ID:           uuid.New(),
		Email:        strptr("ana@example.com"),
		PasswordHash: &hash,
		IsActive:     true,
	}
	svc := newCustomersTestService(t, repo, &stubReferralCreator{})

	customer, err := svc.Authenticate(context.Background(), LoginInput{
		Email:    strptr(" ANA@example.com "),
		Password: "supersecret",
	})
	if err != nil {
		t.Fatalf("Authenticate: %v", err)
	}
	if customer.LastLoginAt == nil {
		t.Fatal("expected last login to be stamped")
	}
	if repo.lastLogin == nil {
		t.Fatal("expected repo to record the login time")
	}
}

func TestProfileHidesMissingCustomer(t *testing.T) {
	svc := newCustomersTestService(t, newStubCustomersRepo(), &stubReferralCreator{})

	_, err := svc.Profile(context.Background(), uuid.New())
	if appErr := pkgerrors.As(err); appErr == nil || appErr.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestProfileRequiresIdentity(t *testing.T) {
	svc := newCustomersTestService(t, newStubCustomersRepo(), &stubReferralCreator{})

	_, err := svc.Profile(context.Background(), uuid.Nil)
	if appErr := pkgerrors.As(err); appErr == nil || appErr.Code() != pkgerrors.CodeUnauthorized {
		t.Fatalf("expected unauthorized, got %v", err)
	}
}
