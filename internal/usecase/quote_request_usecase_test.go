package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"b2b_sourcing/internal/adapter/persistence/repository"
	"b2b_sourcing/internal/domain/entities"
	"b2b_sourcing/internal/domain/quotegen"
	"b2b_sourcing/internal/domain/ranking"
	"b2b_sourcing/internal/infrastructure/vendors"
	mock_interfaces "b2b_sourcing/internal/usecase/interfaces/mocks"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

var t0 = time.Date(2026, 5, 1, 9, 0, 0, 0, time.UTC)

var (
	buyer  = entities.Actor{Role: entities.RoleBuyer, ID: "b-1"}
	admin  = entities.Actor{Role: entities.RoleAdmin, ID: "adm-1"}
	vendA  = entities.Actor{Role: entities.RoleVendor, ID: "v-a"}
	vendB  = entities.Actor{Role: entities.RoleVendor, ID: "v-b"}
	vendC  = entities.Actor{Role: entities.RoleVendor, ID: "v-c"}
	testVs = []entities.VendorProfile{
		{ID: "v-a", Name: "A", Rating: 4.9, Premium: true, Verified: true, MinDeliveryDays: 2, MaxDeliveryDays: 4},
		{ID: "v-b", Name: "B", Rating: 4.0, IsPreferredPartner: true, Verified: true},
		{ID: "v-c", Name: "C", Rating: 4.5, Verified: true},
		{ID: "v-x", Name: "X", Rating: 3.0},
	}
)

type fixture struct {
	repo *repository.QuoteRequestMemoryRepository
	uc   *QuoteRequestUseCase
	now  time.Time
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	dir, err := vendors.New(testVs)
	if err != nil {
		t.Fatalf("vendors: %v", err)
	}
	f := &fixture{repo: repository.NewQuoteRequestMemoryRepository(), now: t0}
	f.uc = NewQuoteRequestUseCase(f.repo, dir, quotegen.New(7), time.Hour, nil).
		WithClock(func() time.Time { return f.now })
	return f
}

func (f *fixture) create(t *testing.T) entities.QuoteRequest {
	t.Helper()
	r, err := f.uc.CreateRequest(context.Background(), buyer, CreateRequestInput{
		LineItems: []entities.LineItem{{ProductID: "p-1", Name: "bolt", Quantity: 2, UnitPrice: decimal.NewFromInt(1000)}},
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	return r
}

func (f *fixture) submit(t *testing.T, requestID string, vendor entities.Actor, price int64) entities.VendorQuote {
	t.Helper()
	q, err := f.uc.SubmitQuote(context.Background(), vendor, requestID, SubmitQuoteInput{
		Price:                 decimal.NewFromInt(price),
		EstimatedDeliveryDays: 3,
	})
	if err != nil {
		t.Fatalf("submit %s: %v", vendor.ID, err)
	}
	f.now = f.now.Add(time.Second)
	return q
}

func TestQuoteRequestUseCase_CreateRequest(t *testing.T) {
	lines := []entities.LineItem{{ProductID: "p-1", Quantity: 1, UnitPrice: decimal.NewFromInt(10)}}

	t.Run("validations", func(t *testing.T) {
		uc := NewQuoteRequestUseCase(nil, nil, nil, 0, nil)
		cases := []struct {
			name  string
			actor entities.Actor
			in    CreateRequestInput
			want  error
		}{
			{"vendor cannot create", vendA, CreateRequestInput{LineItems: lines}, entities.ErrForbidden},
			{"buyer id required", entities.Actor{Role: entities.RoleBuyer, ID: " "}, CreateRequestInput{LineItems: lines}, ErrInvalidBuyerID},
			{"no line items", buyer, CreateRequestInput{}, ErrInvalidLineItems},
			{"zero quantity", buyer, CreateRequestInput{LineItems: []entities.LineItem{{ProductID: "p", Quantity: 0}}}, ErrInvalidLineItems},
			{"negative price", buyer, CreateRequestInput{LineItems: []entities.LineItem{{ProductID: "p", Quantity: 1, UnitPrice: decimal.NewFromInt(-1)}}}, ErrInvalidLineItems},
			{"negative window", buyer, CreateRequestInput{LineItems: lines, ExpiryWindow: -time.Minute}, ErrInvalidExpiryWindow},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := uc.CreateRequest(context.Background(), tc.actor, tc.in)
				if !errors.Is(err, tc.want) {
					t.Fatalf("expected %v, got %v", tc.want, err)
				}
			})
		}
	})

	t.Run("repo error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRequestRepository(ctrl)
		uc := NewQuoteRequestUseCase(repo, nil, nil, time.Hour, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.QuoteRequest{}, errors.New("db"))

		_, err := uc.CreateRequest(context.Background(), buyer, CreateRequestInput{LineItems: lines})
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})

	t.Run("create success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRequestRepository(ctrl)
		uc := NewQuoteRequestUseCase(repo, nil, nil, time.Hour, nil).WithClock(func() time.Time { return t0 })

		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.QuoteRequest{})).DoAndReturn(
			func(_ context.Context, r entities.QuoteRequest) (entities.QuoteRequest, error) {
				if r.ID == "" || r.BuyerID != "b-1" || r.Status != entities.RequestStatusPending || r.Version != 1 {
					t.Fatalf("unexpected request: %+v", r)
				}
				if !r.ExpiresAt.Equal(t0.Add(time.Hour)) {
					t.Fatalf("expected default window, got %s", r.ExpiresAt)
				}
				if r.LineItems[0].ProductID != "p-1" {
					t.Fatalf("unexpected line items: %+v", r.LineItems)
				}
				return r, nil
			},
		)

		in := CreateRequestInput{LineItems: []entities.LineItem{{ProductID: " p-1 ", Quantity: 1, UnitPrice: decimal.NewFromInt(10)}}}
		if _, err := uc.CreateRequest(context.Background(), buyer, in); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestQuoteRequestUseCase_GetRequest(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc := NewQuoteRequestUseCase(nil, nil, nil, 0, nil)
		_, err := uc.GetRequest(context.Background(), "  ")
		if !errors.Is(err, ErrInvalidRequestID) {
			t.Fatalf("expected ErrInvalidRequestID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRequestRepository(ctrl)
		uc := NewQuoteRequestUseCase(repo, nil, nil, 0, nil)
		repo.EXPECT().GetByID(gomock.Any(), "r-1").Return(entities.QuoteRequest{}, nil)

		_, err := uc.GetRequest(context.Background(), " r-1 ")
		if !errors.Is(err, entities.ErrRequestNotFound) || !errors.Is(err, entities.ErrNotFound) {
			t.Fatalf("expected ErrRequestNotFound, got %v", err)
		}
	})

	t.Run("expiry evaluated on read", func(t *testing.T) {
		f := newFixture(t)
		r := f.create(t)

		got, _ := f.uc.GetRequest(context.Background(), r.ID)
		if got.Status != entities.RequestStatusPending {
			t.Fatalf("expected PENDING before deadline, got %s", got.Status)
		}

		f.now = t0.Add(2 * time.Hour)
		got, err := f.uc.GetRequest(context.Background(), r.ID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Status != entities.RequestStatusExpired {
			t.Fatalf("expected EXPIRED after deadline, got %s", got.Status)
		}
		last := got.History[len(got.History)-1]
		if last.Actor.Role != entities.RoleSystem || last.From != entities.RequestStatusPending {
			t.Fatalf("unexpected history entry: %+v", last)
		}
	})
}

func TestQuoteRequestUseCase_SubmitQuote(t *testing.T) {
	t.Run("unknown vendor", func(t *testing.T) {
		f := newFixture(t)
		r := f.create(t)
		_, err := f.uc.SubmitQuote(context.Background(), entities.Actor{Role: entities.RoleVendor, ID: "v-404"}, r.ID, SubmitQuoteInput{Price: decimal.NewFromInt(1), EstimatedDeliveryDays: 1})
		if !errors.Is(err, entities.ErrVendorNotFound) {
			t.Fatalf("expected ErrVendorNotFound, got %v", err)
		}
	})

	t.Run("input validation", func(t *testing.T) {
		uc := NewQuoteRequestUseCase(nil, nil, nil, 0, nil)
		cases := []struct {
			name string
			in   SubmitQuoteInput
			want error
		}{
			{"zero price", SubmitQuoteInput{EstimatedDeliveryDays: 1}, ErrInvalidQuotePrice},
			{"negative fee", SubmitQuoteInput{Price: decimal.NewFromInt(1), Fees: entities.Fees{Tax: decimal.NewFromInt(-1)}, EstimatedDeliveryDays: 1}, ErrInvalidQuotePrice},
			{"no delivery days", SubmitQuoteInput{Price: decimal.NewFromInt(1)}, ErrInvalidDeliveryDays},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := uc.SubmitQuote(context.Background(), vendA, "r-1", tc.in)
				if !errors.Is(err, tc.want) {
					t.Fatalf("expected %v, got %v", tc.want, err)
				}
			})
		}
	})

	t.Run("vendor cannot submit for another vendor", func(t *testing.T) {
		f := newFixture(t)
		r := f.create(t)
		_, err := f.uc.SubmitQuote(context.Background(), vendA, r.ID, SubmitQuoteInput{VendorID: "v-b", Price: decimal.NewFromInt(5), EstimatedDeliveryDays: 1})
		if !errors.Is(err, entities.ErrForbidden) {
			t.Fatalf("expected ErrForbidden, got %v", err)
		}
	})

	t.Run("resubmission replaces in place", func(t *testing.T) {
		f := newFixture(t)
		r := f.create(t)
		first := f.submit(t, r.ID, vendA, 100)
		f.submit(t, r.ID, vendB, 200)
		second := f.submit(t, r.ID, vendA, 90)

		if second.ID != first.ID || second.Sequence != first.Sequence {
			t.Fatalf("expected id and sequence kept, got %+v vs %+v", second, first)
		}
		got, _ := f.uc.GetRequest(context.Background(), r.ID)
		if len(got.Quotes) != 2 {
			t.Fatalf("expected 2 quotes, got %d", len(got.Quotes))
		}
		if !got.Quotes[0].Price.Equal(decimal.NewFromInt(90)) {
			t.Fatalf("expected replaced price, got %s", got.Quotes[0].Price)
		}
	})

	t.Run("closed request", func(t *testing.T) {
		f := newFixture(t)
		r := f.create(t)
		if _, err := f.uc.ForceStatus(context.Background(), admin, r.ID, entities.RequestStatusRejected, "spam"); err != nil {
			t.Fatalf("reject: %v", err)
		}
		_, err := f.uc.SubmitQuote(context.Background(), vendA, r.ID, SubmitQuoteInput{Price: decimal.NewFromInt(5), EstimatedDeliveryDays: 1})
		if !errors.Is(err, entities.ErrRequestClosed) {
			t.Fatalf("expected ErrRequestClosed, got %v", err)
		}
	})

	t.Run("expired request persists expiry", func(t *testing.T) {
		f := newFixture(t)
		r := f.create(t)
		f.now = t0.Add(2 * time.Hour)

		_, err := f.uc.SubmitQuote(context.Background(), vendA, r.ID, SubmitQuoteInput{Price: decimal.NewFromInt(5), EstimatedDeliveryDays: 1})
		if !errors.Is(err, entities.ErrRequestClosed) {
			t.Fatalf("expected ErrRequestClosed, got %v", err)
		}
		stored, _ := f.repo.GetByID(context.Background(), r.ID)
		if stored.Status != entities.RequestStatusExpired || len(stored.Quotes) != 0 {
			t.Fatalf("expected stored EXPIRED without quotes, got %s with %d quotes", stored.Status, len(stored.Quotes))
		}
	})

	t.Run("update conflict surfaces", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRequestRepository(ctrl)
		dir, _ := vendors.New(testVs)
		uc := NewQuoteRequestUseCase(repo, dir, nil, time.Hour, nil).WithClock(func() time.Time { return t0 })

		stored := entities.QuoteRequest{ID: "r-1", BuyerID: "b-1", Status: entities.RequestStatusPending, Version: 4, ExpiresAt: t0.Add(time.Hour)}
		repo.EXPECT().GetByID(gomock.Any(), "r-1").Return(stored, nil).Times(2)
		repo.EXPECT().Update(gomock.Any(), gomock.Any(), int64(4)).Return(entities.QuoteRequest{}, entities.ErrConflict)

		_, err := uc.SubmitQuote(context.Background(), vendA, "r-1", SubmitQuoteInput{Price: decimal.NewFromInt(5), EstimatedDeliveryDays: 1})
		if !errors.Is(err, entities.ErrConflict) || errors.Is(err, entities.ErrRequestClosed) {
			t.Fatalf("expected plain ErrConflict, got %v", err)
		}
	})

	t.Run("lost race to rejection reports closed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRequestRepository(ctrl)
		dir, _ := vendors.New(testVs)
		uc := NewQuoteRequestUseCase(repo, dir, nil, time.Hour, nil).WithClock(func() time.Time { return t0 })

		stored := entities.QuoteRequest{ID: "r-1", BuyerID: "b-1", Status: entities.RequestStatusPending, Version: 4, ExpiresAt: t0.Add(time.Hour)}
		rejected := stored
		rejected.Status = entities.RequestStatusRejected
		rejected.Version = 5
		gomock.InOrder(
			repo.EXPECT().GetByID(gomock.Any(), "r-1").Return(stored, nil),
			repo.EXPECT().Update(gomock.Any(), gomock.Any(), int64(4)).Return(entities.QuoteRequest{}, entities.ErrConflict),
			repo.EXPECT().GetByID(gomock.Any(), "r-1").Return(rejected, nil),
		)

		_, err := uc.SubmitQuote(context.Background(), vendA, "r-1", SubmitQuoteInput{Price: decimal.NewFromInt(5), EstimatedDeliveryDays: 1})
		if !errors.Is(err, entities.ErrRequestClosed) {
			t.Fatalf("expected ErrRequestClosed, got %v", err)
		}
	})

	t.Run("lost race past the deadline reports closed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRequestRepository(ctrl)
		dir, _ := vendors.New(testVs)
		now := t0
		uc := NewQuoteRequestUseCase(repo, dir, nil, time.Hour, nil).WithClock(func() time.Time { return now })

		stored := entities.QuoteRequest{ID: "r-1", BuyerID: "b-1", Status: entities.RequestStatusPending, Version: 4, ExpiresAt: t0.Add(time.Minute)}
		gomock.InOrder(
			repo.EXPECT().GetByID(gomock.Any(), "r-1").Return(stored, nil),
			repo.EXPECT().Update(gomock.Any(), gomock.Any(), int64(4)).DoAndReturn(
				func(_ context.Context, _ entities.QuoteRequest, _ int64) (entities.QuoteRequest, error) {
					now = t0.Add(2 * time.Minute)
					return entities.QuoteRequest{}, entities.ErrConflict
				},
			),
			repo.EXPECT().GetByID(gomock.Any(), "r-1").Return(stored, nil),
		)

		_, err := uc.SubmitQuote(context.Background(), vendA, "r-1", SubmitQuoteInput{Price: decimal.NewFromInt(5), EstimatedDeliveryDays: 1})
		if !errors.Is(err, entities.ErrRequestClosed) {
			t.Fatalf("expected ErrRequestClosed, got %v", err)
		}
	})

	t.Run("metrics recorded after commit", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		m := mock_interfaces.NewMockIMetricsRecorder(ctrl)
		f := newFixture(t)
		f.uc.WithMetrics(m)
		r := f.create(t)

		m.EXPECT().QuoteSubmitted("SUBMITTED").Times(1)
		m.EXPECT().RequestTransition("PENDING", "APPROVED").Times(1)

		f.submit(t, r.ID, vendA, 100)
		if _, err := f.uc.SelectQuote(context.Background(), buyer, r.ID, "v-a"); err != nil {
			t.Fatalf("select: %v", err)
		}
	})
}

func TestQuoteRequestUseCase_ListQuotes(t *testing.T) {
	t.Run("preferred partner first then premium then standard", func(t *testing.T) {
		f := newFixture(t)
		r := f.create(t)
		f.submit(t, r.ID, vendA, 100)
		f.submit(t, r.ID, vendB, 300)
		f.submit(t, r.ID, vendC, 50)

		for _, mode := range []ranking.Mode{ranking.ModeDefault, ranking.ModePrice, ranking.ModeRating} {
			t.Run(string(mode), func(t *testing.T) {
				views, err := f.uc.ListQuotes(context.Background(), r.ID, mode)
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				got := []string{views[0].Quote.VendorID, views[1].Quote.VendorID, views[2].Quote.VendorID}
				want := []string{"v-b", "v-a", "v-c"}
				for i := range want {
					if got[i] != want[i] {
						t.Fatalf("expected %v, got %v", want, got)
					}
				}
				if views[0].Position != 1 || views[0].Vendor.Name != "B" {
					t.Fatalf("unexpected view: %+v", views[0])
				}
			})
		}
	})

	t.Run("drafts hidden", func(t *testing.T) {
		f := newFixture(t)
		r := f.create(t)
		f.submit(t, r.ID, vendA, 100)
		if _, err := f.uc.SubmitQuote(context.Background(), vendC, r.ID, SubmitQuoteInput{Draft: true}); err != nil {
			t.Fatalf("draft: %v", err)
		}
		views, _ := f.uc.ListQuotes(context.Background(), r.ID, "")
		if len(views) != 1 || views[0].Quote.VendorID != "v-a" {
			t.Fatalf("expected only the submitted quote, got %+v", views)
		}
	})

	t.Run("unknown vendor fails closed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRequestRepository(ctrl)
		dir, _ := vendors.New(testVs)
		uc := NewQuoteRequestUseCase(repo, dir, nil, time.Hour, nil).WithClock(func() time.Time { return t0 })
		repo.EXPECT().GetByID(gomock.Any(), "r-1").Return(entities.QuoteRequest{
			ID: "r-1", Status: entities.RequestStatusPending, ExpiresAt: t0.Add(time.Hour),
			Quotes: []entities.VendorQuote{{ID: "q-1", RequestID: "r-1", VendorID: "ghost", Status: entities.QuoteStatusSubmitted}},
		}, nil)

		_, err := uc.ListQuotes(context.Background(), "r-1", ranking.ModeDefault)
		if !errors.Is(err, entities.ErrVendorNotFound) {
			t.Fatalf("expected ErrVendorNotFound, got %v", err)
		}
	})
}

func TestQuoteRequestUseCase_SelectQuote(t *testing.T) {
	t.Run("selects and rejects siblings", func(t *testing.T) {
		f := newFixture(t)
		r := f.create(t)
		f.submit(t, r.ID, vendA, 100)
		f.submit(t, r.ID, vendB, 200)
		f.submit(t, r.ID, vendC, 300)

		got, err := f.uc.SelectQuote(context.Background(), buyer, r.ID, "v-c")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Status != entities.RequestStatusApproved || got.Version != r.Version+4 {
			t.Fatalf("unexpected request: status=%s version=%d", got.Status, got.Version)
		}
		selected := 0
		for _, q := range got.Quotes {
			switch q.Status {
			case entities.QuoteStatusSelected:
				selected++
			case entities.QuoteStatusRejected:
			default:
				t.Fatalf("sibling left in %s", q.Status)
			}
		}
		if selected != 1 {
			t.Fatalf("expected exactly one SELECTED, got %d", selected)
		}

		_, err = f.uc.SelectQuote(context.Background(), buyer, r.ID, "v-a")
		if !errors.Is(err, entities.ErrDuplicateSelection) {
			t.Fatalf("expected ErrDuplicateSelection, got %v", err)
		}
	})

	t.Run("no submitted quote", func(t *testing.T) {
		f := newFixture(t)
		r := f.create(t)
		_, err := f.uc.SelectQuote(context.Background(), buyer, r.ID, "v-a")
		if !errors.Is(err, entities.ErrQuoteNotFound) {
			t.Fatalf("expected ErrQuoteNotFound, got %v", err)
		}
	})

	t.Run("empty vendor id", func(t *testing.T) {
		uc := NewQuoteRequestUseCase(nil, nil, nil, 0, nil)
		_, err := uc.SelectQuote(context.Background(), buyer, "r-1", " ")
		if !errors.Is(err, ErrInvalidVendorID) {
			t.Fatalf("expected ErrInvalidVendorID, got %v", err)
		}
	})

	t.Run("race with admin rejection", func(t *testing.T) {
		for i := 0; i < 20; i++ {
			f := newFixture(t)
			r := f.create(t)
			f.submit(t, r.ID, vendA, 100)

			var wg sync.WaitGroup
			errs := make([]error, 2)
			wg.Add(2)
			go func() {
				defer wg.Done()
				_, errs[0] = f.uc.SelectQuote(context.Background(), buyer, r.ID, "v-a")
			}()
			go func() {
				defer wg.Done()
				_, errs[1] = f.uc.ForceStatus(context.Background(), admin, r.ID, entities.RequestStatusRejected, "fraud")
			}()
			wg.Wait()

			wins := 0
			for _, err := range errs {
				switch {
				case err == nil:
					wins++
				case errors.Is(err, entities.ErrConflict), errors.Is(err, entities.ErrRequestClosed):
				default:
					t.Fatalf("unexpected loser error: %v", err)
				}
			}
			if wins != 1 {
				t.Fatalf("expected exactly one winner, got %d (%v)", wins, errs)
			}
		}
	})
}

func TestQuoteRequestUseCase_ForceStatus(t *testing.T) {
	t.Run("invalid status", func(t *testing.T) {
		uc := NewQuoteRequestUseCase(nil, nil, nil, 0, nil)
		_, err := uc.ForceStatus(context.Background(), admin, "r-1", "ARCHIVED", "")
		if !errors.Is(err, ErrInvalidRequestStatus) {
			t.Fatalf("expected ErrInvalidRequestStatus, got %v", err)
		}
	})

	t.Run("admin only", func(t *testing.T) {
		f := newFixture(t)
		r := f.create(t)
		_, err := f.uc.ForceStatus(context.Background(), buyer, r.ID, entities.RequestStatusRejected, "")
		if !errors.Is(err, entities.ErrForbidden) {
			t.Fatalf("expected ErrForbidden, got %v", err)
		}
	})

	t.Run("reset expired request", func(t *testing.T) {
		f := newFixture(t)
		r := f.create(t)
		f.now = t0.Add(2 * time.Hour)
		if _, err := f.uc.SubmitQuote(context.Background(), vendA, r.ID, SubmitQuoteInput{Price: decimal.NewFromInt(5), EstimatedDeliveryDays: 1}); !errors.Is(err, entities.ErrRequestClosed) {
			t.Fatalf("expected ErrRequestClosed, got %v", err)
		}

		got, err := f.uc.ForceStatus(context.Background(), admin, r.ID, entities.RequestStatusPending, "extend")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Status != entities.RequestStatusPending || !got.ExpiresAt.After(f.now) {
			t.Fatalf("expected reopened request with future deadline, got %s %s", got.Status, got.ExpiresAt)
		}
	})

	t.Run("reset request that only reads as expired", func(t *testing.T) {
		f := newFixture(t)
		r := f.create(t)
		f.now = t0.Add(2 * time.Hour)
		read, err := f.uc.GetRequest(context.Background(), r.ID)
		if err != nil || read.Status != entities.RequestStatusExpired {
			t.Fatalf("expected EXPIRED on read, got %s %v", read.Status, err)
		}
		stored, _ := f.repo.GetByID(context.Background(), r.ID)
		if stored.Status != entities.RequestStatusPending {
			t.Fatalf("read must not persist expiry, stored %s", stored.Status)
		}

		got, err := f.uc.ForceStatus(context.Background(), admin, r.ID, entities.RequestStatusPending, "extend")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Status != entities.RequestStatusPending || !got.ExpiresAt.After(f.now) {
			t.Fatalf("expected reopened request with future deadline, got %s %s", got.Status, got.ExpiresAt)
		}
		n := len(got.History)
		if n < 2 || got.History[n-2].To != entities.RequestStatusExpired || got.History[n-1].To != entities.RequestStatusPending {
			t.Fatalf("expected EXPIRED then PENDING at the end of history, got %+v", got.History)
		}
	})

	t.Run("approved is not an override target", func(t *testing.T) {
		f := newFixture(t)
		r := f.create(t)
		_, err := f.uc.ForceStatus(context.Background(), admin, r.ID, entities.RequestStatusApproved, "")
		if !errors.Is(err, entities.ErrInvalidTransition) {
			t.Fatalf("expected ErrInvalidTransition, got %v", err)
		}
	})

	t.Run("terminal request", func(t *testing.T) {
		f := newFixture(t)
		r := f.create(t)
		_, _ = f.uc.ForceStatus(context.Background(), admin, r.ID, entities.RequestStatusRejected, "")
		_, err := f.uc.ForceStatus(context.Background(), admin, r.ID, entities.RequestStatusCompleted, "")
		if !errors.Is(err, entities.ErrInvalidTransition) {
			t.Fatalf("expected ErrInvalidTransition, got %v", err)
		}
	})
}

func TestQuoteRequestUseCase_Listings(t *testing.T) {
	f := newFixture(t)
	f.create(t)
	quoted := f.create(t)
	f.submit(t, quoted.ID, vendA, 100)
	f.submit(t, quoted.ID, vendB, 200)
	if _, err := f.uc.SelectQuote(context.Background(), buyer, quoted.ID, "v-a"); err != nil {
		t.Fatalf("select: %v", err)
	}

	other := entities.Actor{Role: entities.RoleBuyer, ID: "b-2"}
	if _, err := f.uc.CreateRequest(context.Background(), other, CreateRequestInput{
		LineItems: []entities.LineItem{{ProductID: "p-9", Quantity: 1, UnitPrice: decimal.NewFromInt(1)}},
	}); err != nil {
		t.Fatalf("create: %v", err)
	}

	t.Run("vendor sees open requests and its own quotes only", func(t *testing.T) {
		got, err := f.uc.ListRequestsForVendor(context.Background(), "v-b", "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 3 {
			t.Fatalf("expected 3 requests, got %d", len(got))
		}
		for _, r := range got {
			for _, q := range r.Quotes {
				if q.VendorID != "v-b" {
					t.Fatalf("leaked quote from %s", q.VendorID)
				}
			}
		}
	})

	t.Run("vendor status filter", func(t *testing.T) {
		got, _ := f.uc.ListRequestsForVendor(context.Background(), "v-c", entities.RequestStatusApproved)
		if len(got) != 0 {
			t.Fatalf("v-c never quoted on the approved request, got %d", len(got))
		}
		got, _ = f.uc.ListRequestsForVendor(context.Background(), "v-a", entities.RequestStatusApproved)
		if len(got) != 1 || got[0].ID != quoted.ID {
			t.Fatalf("expected the approved request, got %+v", got)
		}
	})

	t.Run("unknown vendor", func(t *testing.T) {
		_, err := f.uc.ListRequestsForVendor(context.Background(), "v-404", "")
		if !errors.Is(err, entities.ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("buyer scope", func(t *testing.T) {
		got, _ := f.uc.ListAllRequests(context.Background(), buyer, entities.RequestFilter{BuyerID: "b-2"})
		if len(got) != 2 {
			t.Fatalf("buyer must only see own requests, got %d", len(got))
		}
	})

	t.Run("vendor forbidden", func(t *testing.T) {
		_, err := f.uc.ListAllRequests(context.Background(), vendA, entities.RequestFilter{})
		if !errors.Is(err, entities.ErrForbidden) {
			t.Fatalf("expected ErrForbidden, got %v", err)
		}
	})

	t.Run("admin filter sees lazy expiry", func(t *testing.T) {
		f.now = t0.Add(2 * time.Hour)
		defer func() { f.now = t0 }()
		got, err := f.uc.ListAllRequests(context.Background(), admin, entities.RequestFilter{Status: entities.RequestStatusExpired})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 2 {
			t.Fatalf("expected the two unselected requests expired, got %d", len(got))
		}
		for _, r := range got {
			if r.ID == quoted.ID {
				t.Fatalf("approved request must not expire")
			}
		}
	})
}

func TestQuoteRequestUseCase_GenerateQuotes(t *testing.T) {
	t.Run("unknown vendor", func(t *testing.T) {
		f := newFixture(t)
		r := f.create(t)
		_, err := f.uc.GenerateQuote(context.Background(), r.ID, "v-404")
		if !errors.Is(err, entities.ErrVendorNotFound) {
			t.Fatalf("expected ErrVendorNotFound, got %v", err)
		}
	})

	t.Run("unknown request", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.uc.GenerateQuote(context.Background(), "r-404", "v-a")
		if !errors.Is(err, entities.ErrRequestNotFound) {
			t.Fatalf("expected ErrRequestNotFound, got %v", err)
		}
	})

	t.Run("eligible vendors only and deterministic", func(t *testing.T) {
		f := newFixture(t)
		r := f.create(t)
		first, err := f.uc.GenerateQuotes(context.Background(), r.ID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(first) != 3 {
			t.Fatalf("expected 3 verified vendors, got %d", len(first))
		}
		second, _ := f.uc.GenerateQuotes(context.Background(), r.ID)
		for i := range first {
			if first[i].VendorID == "v-x" {
				t.Fatalf("unverified vendor must not be quoted")
			}
			if !first[i].Price.Equal(second[i].Price) {
				t.Fatalf("generation not deterministic for %s", first[i].VendorID)
			}
		}
		stored, _ := f.repo.GetByID(context.Background(), r.ID)
		if len(stored.Quotes) != 0 {
			t.Fatalf("generation must not persist quotes")
		}
	})
}
