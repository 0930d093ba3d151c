package raffles

import (
	"context"
	"testing"
	"time"

	"github.com/fulltechhq/fulltech-backend/pkg/db/models"
	"github.com/fulltechhq/fulltech-backend/pkg/enums"
	pkgerrors "github.com/fulltechhq/fulltech-backend/pkg/errors"
	"github.com/fulltechhq/fulltech-backend/pkg/pagination"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type stubRafflesRepo struct {
	active        *models.MonthlyRaffle
	byID          map[uuid.UUID]*models.MonthlyRaffle
	createdEntry  *models.RaffleEntry
	deactivated   bool
	sumTotal      int64
	sumByCustomer int64
}

func (s *stubRafflesRepo) WithTx(tx *gorm.DB) Repository { return s }

func (s *stubRafflesRepo) Create(ctx context.Context, raffle *models.MonthlyRaffle) (*models.MonthlyRaffle, error) {
	raffle.ID = uuid.New()
	return raffle, nil
}

func (s *stubRafflesRepo) FindByID(ctx context.Context, id uuid.UUID) (*models.MonthlyRaffle, error) {
	if raffle, ok := s.byID[id]; ok {
		return raffle, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *stubRafflesRepo) FindActiveByPeriod(ctx context.Context, month, year int) (*models.MonthlyRaffle, error) {
	if s.active == nil || s.active.Month != month || s.active.Year != year {
		return nil, gorm.ErrRecordNotFound
	}
	return s.active, nil
}

func (s *stubRafflesRepo) Deactivate(ctx context.Context, id uuid.UUID) (bool, error) {
	if raffle, ok := s.byID[id]; ok && raffle.IsActive {
		raffle.IsActive = false
		s.deactivated = true
		return true, nil
	}
	return false, nil
}

func (s *stubRafflesRepo) DeactivateEndedBefore(ctx context.Context, month, year int) (int64, error) {
	return 0, nil
}

func (s *stubRafflesRepo) CreateEntry(ctx context.Context, entry *models.RaffleEntry) error {
	entry.ID = uuid.New()
	s.createdEntry = entry
	return nil
}

func (s *stubRafflesRepo) SumEntries(ctx context.Context, raffleID uuid.UUID) (int64, error) {
	return s.sumTotal, nil
}

func (s *stubRafflesRepo) SumEntriesForCustomer(ctx context.Context, raffleID, customerID uuid.UUID) (int64, error) {
	return s.sumByCustomer, nil
}

func (s *stubRafflesRepo) ListEntries(ctx context.Context, raffleID uuid.UUID, params pagination.Params) (*EntryList, error) {
	return &EntryList{}, nil
}

type recordedActivity struct {
	customerID   uuid.UUID
	activityType enums.ActivityType
	detail       map[string]any
}

type stubActivityRecorder struct {
	recorded []recordedActivity
}

func (s *stubActivityRecorder) Record(ctx context.Context, tx *gorm.DB, customerID uuid.UUID, activityType enums.ActivityType, detail map[string]any) error {
	s.recorded = append(s.recorded, recordedActivity{customerID: customerID, activityType: activityType, detail: detail})
	return nil
}

func newTestService(t *testing.T, repo *stubRafflesRepo, recorder *stubActivityRecorder) Service {
	t.Helper()
	svc, err := NewService(ServiceParams{Repo: repo, Activities: recorder})
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}
	return svc
}

func TestCurrentReturnsNilWhenNoActiveRaffle(t *testing.T) {
	svc := newTestService(t, &stubRafflesRepo{}, &stubActivityRecorder{})

	summary, err := svc.Current(context.Background(), time.Date(2025, time.June, 10, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("Current: %v", err)
	}
	if summary != nil {
		t.Fatalf("expected nil summary, got %+v", summary)
	}
}

func TestCurrentSummarizesActiveRaffle(t *testing.T) {
	raffle := &models.MonthlyRaffle{
		ID:       uuid.New(),
		Month:    6,
		Year:     2025,
		Prize:    "Mechanical keyboard",
		IsActive: true,
	}
	repo := &stubRafflesRepo{active: raffle, sumTotal: 42}
	svc := newTestService(t, repo, &stubActivityRecorder{})

	summary, err := svc.Current(context.Background(), time.Date(2025, time.June, 10, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("Current: %v", err)
	}
	if summary == nil {
		t.Fatal("expected summary")
	}
	if summary.Raffle.ID != raffle.ID {
		t.Fatalf("raffle id mismatch: %s", summary.Raffle.ID)
	}
	if summary.TotalEntries != 42 {
		t.Fatalf("expected 42 entries, got %d", summary.TotalEntries)
	}
}

func TestGrantEntrySkipsWithoutActiveRaffle(t *testing.T) {
	repo := &stubRafflesRepo{}
	recorder := &stubActivityRecorder{}
	svc := newTestService(t, repo, recorder)

	granted, err := svc.GrantEntry(context.Background(), &gorm.DB{}, uuid.New(), time.Date(2025, time.June, 10, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("GrantEntry: %v", err)
	}
	if granted {
		t.Fatal("expected no grant without an active raffle")
	}
	if repo.createdEntry != nil {
		t.Fatal("expected no entry row")
	}
	if len(recorder.recorded) != 0 {
		t.Fatalf("expected no activity, got %d", len(recorder.recorded))
	}
}

func TestGrantEntryInsertsSingleUnitEntry(t *testing.T) {
	raffle := &models.MonthlyRaffle{ID: uuid.New(), Month: 6, Year: 2025, IsActive: true}
	repo := &stubRafflesRepo{active: raffle}
	recorder := &stubActivityRecorder{}
	svc := newTestService(t, repo, recorder)

	customerID := uuid.New()
	granted, err := svc.GrantEntry(context.Background(), &gorm.DB{}, customerID, time.Date(2025, time.June, 10, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("GrantEntry: %v", err)
	}
	if !granted {
		t.Fatal("expected grant")
	}
	if repo.createdEntry == nil {
		t.Fatal("expected entry row")
	}
	if repo.createdEntry.Entries != 1 {
		t.Fatalf("expected 1 entry unit, got %d", repo.createdEntry.Entries)
	}
	if repo.createdEntry.CustomerID != customerID {
		t.Fatalf("entry customer mismatch: %s", repo.createdEntry.CustomerID)
	}
	if repo.createdEntry.RaffleID != raffle.ID {
		t.Fatalf("entry raffle mismatch: %s", repo.createdEntry.RaffleID)
	}
	if len(recorder.recorded) != 1 {
		t.Fatalf("expected 1 activity, got %d", len(recorder.recorded))
	}
	if recorder.recorded[0].activityType != enums.ActivityTypeRaffleEntry {
		t.Fatalf("unexpected activity type %q", recorder.recorded[0].activityType)
	}
	if recorder.recorded[0].customerID != customerID {
		t.Fatalf("activity customer mismatch: %s", recorder.recorded[0].customerID)
	}
}

func TestCustomerEntriesWithoutRaffle(t *testing.T) {
	svc := newTestService(t, &stubRafflesRepo{}, &stubActivityRecorder{})

	summary, err := svc.CustomerEntries(context.Background(), uuid.New(), time.Now())
	if err != nil {
		t.Fatalf("CustomerEntries: %v", err)
	}
	if summary.RaffleID != nil {
		t.Fatal("expected nil raffle id")
	}
	if summary.Entries != 0 {
		t.Fatalf("expected 0 entries, got %d", summary.Entries)
	}
}

func TestOpenRejectsInvalidMonth(t *testing.T) {
	svc := newTestService(t, &stubRafflesRepo{}, &stubActivityRecorder{})

	_, err := svc.Open(context.Background(), OpenRaffleInput{Month: 13, Year: 2025, Prize: "Headphones"})
	if appErr := pkgerrors.As(err); appErr == nil || appErr.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestCloseAlreadyClosedRaffle(t *testing.T) {
	raffle := &models.MonthlyRaffle{ID: uuid.New(), Month: 5, Year: 2025, IsActive: false}
	repo := &stubRafflesRepo{byID: map[uuid.UUID]*models.MonthlyRaffle{raffle.ID: raffle}}
	svc := newTestService(t, repo, &stubActivityRecorder{})

	err := svc.Close(context.Background(), raffle.ID)
	if appErr := pkgerrors.As(err); appErr == nil || appErr.Code() != pkgerrors.CodeStateConflict {
		t.Fatalf("expected state conflict, got %v", err)
	}
}

func TestCloseMissingRaffle(t *testing.T) {
	svc := newTestService(t, &stubRafflesRepo{byID: map[uuid.UUID]*models.MonthlyRaffle{}}, &stubActivityRecorder{})

	err := svc.Close(context.Background(), uuid.New())
	if appErr := pkgerrors.As(err); appErr == nil || appErr.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected not found, got %v", err)
	}
}
