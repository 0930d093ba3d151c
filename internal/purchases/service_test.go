package purchases

import (
	"context"
	"testing"
	"time"

	"github.com/fulltechhq/fulltech-backend/internal/referrals"
	"github.com/fulltechhq/fulltech-backend/pkg/db/models"
	"github.com/fulltechhq/fulltech-backend/pkg/enums"
	pkgerrors "github.com/fulltechhq/fulltech-backend/pkg/errors"
	"github.com/fulltechhq/fulltech-backend/pkg/pagination"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type stubPurchasesRepo struct {
	product *models.Product
	created *models.CustomerPurchase
}

func (s *stubPurchasesRepo) WithTx(tx *gorm.DB) Repository { return s }

func (s *stubPurchasesRepo) Create(ctx context.Context, purchase *models.CustomerPurchase) (*models.CustomerPurchase, error) {
	purchase.ID = uuid.New()
	s.created = purchase
	return purchase, nil
}

func (s *stubPurchasesRepo) FindProduct(ctx context.Context, productID uuid.UUID) (*models.Product, error) {
	if s.product == nil || s.product.ID != productID {
		return nil, gorm.ErrRecordNotFound
	}
	return s.product, nil
}

func (s *stubPurchasesRepo) ListByCustomer(ctx context.Context, customerID uuid.UUID, params pagination.Params) (*PurchaseList, error) {
	return &PurchaseList{}, nil
}

type stubQualifier struct {
	outcome *referrals.QualificationOutcome
	calls   int
	lastAt  time.Time
}

func (s *stubQualifier) Qualify(ctx context.Context, tx *gorm.DB, customerID uuid.UUID, now time.Time) (*referrals.QualificationOutcome, error) {
	s.calls++
	s.lastAt = now
	if s.outcome == nil {
		return &referrals.QualificationOutcome{}, nil
	}
	out := s.outcome
	s.outcome = nil
	return out, nil
}

type stubGranter struct {
	grant  bool
	calls  int
	lastID uuid.UUID
}

func (s *stubGranter) GrantEntry(ctx context.Context, tx *gorm.DB, customerID uuid.UUID, now time.Time) (bool, error) {
	s.calls++
	s.lastID = customerID
	return s.grant, nil
}

type recordedActivity struct {
	customerID   uuid.UUID
	activityType enums.ActivityType
}

type stubActivityRecorder struct {
	recorded []recordedActivity
}

func (s *stubActivityRecorder) Record(ctx context.Context, tx *gorm.DB, customerID uuid.UUID, activityType enums.ActivityType, detail map[string]any) error {
	s.recorded = append(s.recorded, recordedActivity{customerID: customerID, activityType: activityType})
	return nil
}

type stubTxRunner struct{}

func (stubTxRunner) WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error {
	return fn(&gorm.DB{})
}

type testDeps struct {
	repo      *stubPurchasesRepo
	qualifier *stubQualifier
	granter   *stubGranter
	recorder  *stubActivityRecorder
}

func newTestService(t *testing.T, deps testDeps) Service {
	t.Helper()
	if deps.repo == nil {
		deps.repo = &stubPurchasesRepo{}
	}
	if deps.qualifier == nil {
		deps.qualifier = &stubQualifier{}
	}
	if deps.granter == nil {
		deps.granter = &stubGranter{}
	}
	if deps.recorder == nil {
		deps.recorder = &stubActivityRecorder{}
	}
	svc, err := NewService(ServiceParams{
		Repo:       deps.repo,
		Referrals:  deps.qualifier,
		Raffles:    deps.granter,
		Activities: deps.recorder,
		Tx:         stubTxRunner{},
	})
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}
	return svc
}

func activeProduct() *models.Product {
	return &models.Product{ID: uuid.New(), SKU: "FT-SSD-1TB", Title: "1TB NVMe SSD", PriceCents: 8999, IsActive: true}
}

func TestRecordRejectsZeroQuantity(t *testing.T) {
	svc := newTestService(t, testDeps{})

	_, err := svc.Record(context.Background(), RecordInput{
		CustomerID:      uuid.New(),
		ProductID:       uuid.New(),
		Quantity:        0,
		TotalPriceCents: 1000,
	})
	if appErr := pkgerrors.As(err); appErr == nil || appErr.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestRecordRejectsInactiveProduct(t *testing.T) {
	product := activeProduct()
	product.IsActive = false
	svc := newTestService(t, testDeps{repo: &stubPurchasesRepo{product: product}})

	_, err := svc.Record(context.Background(), RecordInput{
		CustomerID:      uuid.New(),
		ProductID:       product.ID,
		Quantity:        1,
		TotalPriceCents: 8999,
	})
	if appErr := pkgerrors.As(err); appErr == nil || appErr.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestRecordMissingProduct(t *testing.T) {
	svc := newTestService(t, testDeps{})

	_, err := svc.Record(context.Background(), RecordInput{
		CustomerID:      uuid.New(),
		ProductID:       uuid.New(),
		Quantity:        1,
		TotalPriceCents: 8999,
	})
	if appErr := pkgerrors.As(err); appErr == nil || appErr.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestRecordDerivesUnitPrice(t *testing.T) {
	product := activeProduct()
	repo := &stubPurchasesRepo{product: product}
	svc := newTestService(t, testDeps{repo: repo})

	result, err := svc.Record(context.Background(), RecordInput{
		CustomerID:      uuid.New(),
		ProductID:       product.ID,
		Quantity:        3,
		TotalPriceCents: 1000,
	})
	if err != nil {
		t.Fatalf("Record: %v", err)
	}
	// 1000 / 3 rounds half up to 333
	if result.Purchase.UnitPriceCents != 333 {
		t.Fatalf("expected unit price 333, got %d", result.Purchase.UnitPriceCents)
	}
	if repo.created.TotalPriceCents != 1000 {
		t.Fatalf("total mutated: %d", repo.created.TotalPriceCents)
	}
	if repo.created.Status != enums.PurchaseStatusCompleted {
		t.Fatalf("expected completed status, got %q", repo.created.Status)
	}
}

func TestRecordWithoutReferralSkipsRewardPipeline(t *testing.T) {
	product := activeProduct()
	qualifier := &stubQualifier{}
	granter := &stubGranter{}
	recorder := &stubActivityRecorder{}
	svc := newTestService(t, testDeps{
		repo:      &stubPurchasesRepo{product: product},
		qualifier: qualifier,
		granter:   granter,
		recorder:  recorder,
	})

	result, err := svc.Record(context.Background(), RecordInput{
		CustomerID:      uuid.New(),
		ProductID:       product.ID,
		Quantity:        1,
		TotalPriceCents: 8999,
	})
	if err != nil {
		t.Fatalf("Record: %v", err)
	}
	if result.ReferralQualified || result.RaffleEntry {
		t.Fatalf("expected no reward side effects, got %+v", result)
	}
	if qualifier.calls != 1 {
		t.Fatalf("expected qualifier probe, got %d calls", qualifier.calls)
	}
	if granter.calls != 0 {
		t.Fatalf("expected no raffle grant, got %d calls", granter.calls)
	}
	if len(recorder.recorded) != 1 || recorder.recorded[0].activityType != enums.ActivityTypePurchase {
		t.Fatalf("expected a single purchase activity, got %+v", recorder.recorded)
	}
}

func TestRecordQualifiesReferralAndGrantsEntryToReferrer(t *testing.T) {
	product := activeProduct()
	referrerID := uuid.New()
	customerID := uuid.New()
	qualifier := &stubQualifier{outcome: &referrals.QualificationOutcome{
		Qualified:  true,
		ReferralID: uuid.New(),
		ReferrerID: referrerID,
	}}
	granter := &stubGranter{grant: true}
	svc := newTestService(t, testDeps{
		repo:      &stubPurchasesRepo{product: product},
		qualifier: qualifier,
		granter:   granter,
	})

	result, err := svc.Record(context.Background(), RecordInput{
		CustomerID:      customerID,
		ProductID:       product.ID,
		Quantity:        1,
		TotalPriceCents: 8999,
	})
	if err != nil {
		t.Fatalf("Record: %v", err)
	}
	if !result.ReferralQualified {
		t.Fatal("expected referral qualification")
	}
	if !result.RaffleEntry {
		t.Fatal("expected raffle entry grant")
	}
	if granter.lastID != referrerID {
		t.Fatalf("entry granted to %s, want the referrer", granter.lastID)
	}
}

func TestRecordQualificationTimeNotBeforePurchase(t *testing.T) {
	product := activeProduct()
	repo := &stubPurchasesRepo{product: product}
	qualifier := &stubQualifier{outcome: &referrals.QualificationOutcome{
		Qualified:  true,
		ReferralID: uuid.New(),
		ReferrerID: uuid.New(),
	}}
	svc := newTestService(t, testDeps{
		repo:      repo,
		qualifier: qualifier,
		granter:   &stubGranter{grant: true},
	})

	result, err := svc.Record(context.Background(), RecordInput{
		CustomerID:      uuid.New(),
		ProductID:       product.ID,
		Quantity:        1,
		TotalPriceCents: 8999,
	})
	if err != nil {
		t.Fatalf("Record: %v", err)
	}
	if !result.ReferralQualified {
		t.Fatal("expected referral qualification")
	}
	if repo.created.CreatedAt.IsZero() {
		t.Fatal("expected the service to stamp the purchase timestamp")
	}
	if qualifier.lastAt.Before(repo.created.CreatedAt) {
		t.Fatalf("qualification time %s precedes purchase time %s", qualifier.lastAt, repo.created.CreatedAt)
	}
	if result.Purchase.CreatedAt != repo.created.CreatedAt {
		t.Fatalf("result echoes %s, row has %s", result.Purchase.CreatedAt, repo.created.CreatedAt)
	}
}

func TestRecordSecondPurchaseIsNoOpForRewards(t *testing.T) {
	product := activeProduct()
	customerID := uuid.New()
	qualifier := &stubQualifier{outcome: &referrals.QualificationOutcome{
		Qualified:  true,
		ReferralID: uuid.New(),
		ReferrerID: uuid.New(),
	}}
	granter := &stubGranter{grant: true}
	svc := newTestService(t, testDeps{
		repo:      &stubPurchasesRepo{product: product},
		qualifier: qualifier,
		granter:   granter,
	})

	input := RecordInput{
		CustomerID:      customerID,
		ProductID:       product.ID,
		Quantity:        1,
		TotalPriceCents: 8999,
	}
	first, err := svc.Record(context.Background(), input)
	if err != nil {
		t.Fatalf("first Record: %v", err)
	}
	if !first.ReferralQualified {
		t.Fatal("expected first purchase to qualify")
	}

	second, err := svc.Record(context.Background(), input)
	if err != nil {
		t.Fatalf("second Record: %v", err)
	}
	if second.ReferralQualified || second.RaffleEntry {
		t.Fatalf("expected no side effects on repeat purchase, got %+v", second)
	}
	if granter.calls != 1 {
		t.Fatalf("expected exactly one raffle grant, got %d", granter.calls)
	}
}

func TestRecordQualifiesEvenWithoutActiveRaffle(t *testing.T) {
	product := activeProduct()
	qualifier := &stubQualifier{outcome: &referrals.QualificationOutcome{
		Qualified:  true,
		ReferralID: uuid.New(),
		ReferrerID: uuid.New(),
	}}
	granter := &stubGranter{grant: false}
	svc := newTestService(t, testDeps{
		repo:      &stubPurchasesRepo{product: product},
		qualifier: qualifier,
		granter:   granter,
	})

	result, err := svc.Record(context.Background(), RecordInput{
		CustomerID:      uuid.New(),
		ProductID:       product.ID,
		Quantity:        2,
		TotalPriceCents: 17998,
	})
	if err != nil {
		t.Fatalf("Record: %v", err)
	}
	if !result.ReferralQualified {
		t.Fatal("expected qualification to survive a missing raffle")
	}
	if result.RaffleEntry {
		t.Fatal("expected no raffle entry without an active raffle")
	}
}

func TestUnitPriceCentsRounding(t *testing.T) {
	cases := []struct {
		total    int64
		quantity int
		want     int64
	}{
		{1000, 1, 1000},
		{1000, 3, 333},
		{1001, 2, 501},
		{999, 2, 500},
		{0, 5, 0},
	}
	for _, tc := range cases {
		if got := unitPriceCents(tc.total, tc.quantity); got != tc.want {
			t.Fatalf("unitPriceCents(%d, %d) = %d, want %d", tc.total, tc.quantity, got, tc.want)
		}
	}
}
