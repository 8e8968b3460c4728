package usecase

import (
	"context"
	"fmt"
	"sync"

	"gym-booking/internal/data/entity"
	"gym-booking/internal/data/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// In-memory fakes for the repository interfaces. They keep the same
// not-found convention as the pgx implementations: (nil, nil).

type fakeMemberRepo struct {
	mu      sync.Mutex
	members map[string]*entity.Member
	order   []string
}

func newFakeMemberRepo() *fakeMemberRepo {
	return &fakeMemberRepo{members: make(map[string]*entity.Member)}
}

func (f *fakeMemberRepo) Create(ctx context.Context, member *entity.Member) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.members[member.ID]; ok {
		return fmt.Errorf("duplicate member %s", member.ID)
	}
	copied := *member
	f.members[member.ID] = &copied
	f.order = append(f.order, member.ID)
	return nil
}

func (f *fakeMemberRepo) FindByID(ctx context.Context, id string) (*entity.Member, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	member, ok := f.members[id]
	if !ok {
		return nil, nil
	}
	copied := *member
	return &copied, nil
}

func (f *fakeMemberRepo) FindAll(ctx context.Context) ([]*entity.Member, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	members := make([]*entity.Member, 0, len(f.order))
	for _, id := range f.order {
		copied := *f.members[id]
		members = append(members, &copied)
	}
	return members, nil
}

func (f *fakeMemberRepo) UpdateExpiration(ctx context.Context, id string, expiresOn string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	member, ok := f.members[id]
	if !ok {
		return fmt.Errorf("member %s not found", id)
	}
	member.ExpiresOn = expiresOn
	return nil
}

type fakeClassRepo struct {
	mu      sync.Mutex
	classes map[int64]*entity.Class
	nextID  int64
}

func newFakeClassRepo() *fakeClassRepo {
	return &fakeClassRepo{classes: make(map[int64]*entity.Class), nextID: 1}
}

func (f *fakeClassRepo) Create(ctx context.Context, class *entity.Class) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	class.ID = f.nextID
	f.nextID++
	copied := *class
	f.classes[class.ID] = &copied
	return nil
}

func (f *fakeClassRepo) FindByID(ctx context.Context, id int64) (*entity.Class, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	class, ok := f.classes[id]
	if !ok {
		return nil, nil
	}
	copied := *class
	return &copied, nil
}

func (f *fakeClassRepo) FindAll(ctx context.Context) ([]*entity.Class, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	classes := make([]*entity.Class, 0, len(f.classes))
	for id := int64(1); id < f.nextID; id++ {
		if class, ok := f.classes[id]; ok {
			copied := *class
			classes = append(classes, &copied)
		}
	}
	return classes, nil
}

type fakePlanRepo struct {
	mu     sync.Mutex
	plans  map[int64]*entity.Plan
	nextID int64
}

func newFakePlanRepo() *fakePlanRepo {
	return &fakePlanRepo{plans: make(map[int64]*entity.Plan), nextID: 1}
}

func (f *fakePlanRepo) Create(ctx context.Context, plan *entity.Plan) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	plan.ID = f.nextID
	f.nextID++
	copied := *plan
	f.plans[plan.ID] = &copied
	return nil
}

func (f *fakePlanRepo) FindByID(ctx context.Context, id int64) (*entity.Plan, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	plan, ok := f.plans[id]
	if !ok {
		return nil, nil
	}
	copied := *plan
	return &copied, nil
}

func (f *fakePlanRepo) FindAll(ctx context.Context) ([]*entity.Plan, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	plans := make([]*entity.Plan, 0, len(f.plans))
	for id := int64(1); id < f.nextID; id++ {
		if plan, ok := f.plans[id]; ok {
			copied := *plan
			plans = append(plans, &copied)
		}
	}
	return plans, nil
}

func (f *fakePlanRepo) Count(ctx context.Context) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return int64(len(f.plans)), nil
}

type fakeReservationRepo struct {
	mu           sync.Mutex
	reservations map[uuid.UUID]*entity.Reservation
	order        []uuid.UUID

	// createErrs is consumed one error per Create call, for retry tests.
	createErrs []error
}

func newFakeReservationRepo() *fakeReservationRepo {
	return &fakeReservationRepo{reservations: make(map[uuid.UUID]*entity.Reservation)}
}

func (f *fakeReservationRepo) Create(ctx context.Context, reservation *entity.Reservation) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.createErrs) > 0 {
		err := f.createErrs[0]
		f.createErrs = f.createErrs[1:]
		if err != nil {
			return err
		}
	}
	copied := *reservation
	f.reservations[reservation.ID] = &copied
	f.order = append(f.order, reservation.ID)
	return nil
}

func (f *fakeReservationRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Reservation, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	reservation, ok := f.reservations[id]
	if !ok {
		return nil, nil
	}
	copied := *reservation
	return &copied, nil
}

func (f *fakeReservationRepo) FindConfirmed(ctx context.Context, memberID string, classID int64) (*entity.Reservation, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, id := range f.order {
		r := f.reservations[id]
		if r.MemberID == memberID && r.ClassID == classID && r.Status == entity.ReservationStatusConfirmed {
			copied := *r
			return &copied, nil
		}
	}
	return nil, nil
}

func (f *fakeReservationRepo) CountConfirmedByClass(ctx context.Context, classID int64) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	count := 0
	for _, r := range f.reservations {
		if r.ClassID == classID && r.Status == entity.ReservationStatusConfirmed {
			count++
		}
	}
	return count, nil
}

func (f *fakeReservationRepo) FindAllConfirmed(ctx context.Context) ([]*entity.Reservation, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var confirmed []*entity.Reservation
	for _, id := range f.order {
		r := f.reservations[id]
		if r.Status == entity.ReservationStatusConfirmed {
			copied := *r
			confirmed = append(confirmed, &copied)
		}
	}
	return confirmed, nil
}

func (f *fakeReservationRepo) FindConfirmedByClass(ctx context.Context, classID int64) ([]*entity.Reservation, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var confirmed []*entity.Reservation
	for _, id := range f.order {
		r := f.reservations[id]
		if r.ClassID == classID && r.Status == entity.ReservationStatusConfirmed {
			copied := *r
			confirmed = append(confirmed, &copied)
		}
	}
	return confirmed, nil
}

func (f *fakeReservationRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.ReservationStatus) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	reservation, ok := f.reservations[id]
	if !ok {
		return fmt.Errorf("reservation %s not found", id.String())
	}
	reservation.Status = status
	return nil
}

// fakePaymentRepo applies the renewal to the member repo under one
// lock, mimicking the storage transaction.
type fakePaymentRepo struct {
	mu       sync.Mutex
	payments []*entity.Payment
	members  *fakeMemberRepo

	failNext error
}

func newFakePaymentRepo(members *fakeMemberRepo) *fakePaymentRepo {
	return &fakePaymentRepo{members: members}
}

func (f *fakePaymentRepo) CreateWithRenewal(ctx context.Context, payment *entity.Payment) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failNext != nil {
		err := f.failNext
		f.failNext = nil
		return err
	}
	if err := f.members.UpdateExpiration(ctx, payment.MemberID, payment.ExpiresOn); err != nil {
		return err
	}
	copied := *payment
	f.payments = append(f.payments, &copied)
	return nil
}

func (f *fakePaymentRepo) FindAll(ctx context.Context) ([]*entity.Payment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	payments := make([]*entity.Payment, 0, len(f.payments))
	for _, payment := range f.payments {
		copied := *payment
		payments = append(payments, &copied)
	}
	return payments, nil
}

func (f *fakePaymentRepo) FindByMemberID(ctx context.Context, memberID string) ([]*entity.Payment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var payments []*entity.Payment
	for _, payment := range f.payments {
		if payment.MemberID == memberID {
			copied := *payment
			payments = append(payments, &copied)
		}
	}
	return payments, nil
}

type fakeCheckInRepo struct {
	mu       sync.Mutex
	checkIns []*entity.CheckIn
}

func newFakeCheckInRepo() *fakeCheckInRepo {
	return &fakeCheckInRepo{}
}

func (f *fakeCheckInRepo) Create(ctx context.Context, checkIn *entity.CheckIn) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	copied := *checkIn
	f.checkIns = append(f.checkIns, &copied)
	return nil
}

func (f *fakeCheckInRepo) FindAll(ctx context.Context) ([]*entity.CheckIn, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	checkIns := make([]*entity.CheckIn, 0, len(f.checkIns))
	for _, checkIn := range f.checkIns {
		copied := *checkIn
		checkIns = append(checkIns, &copied)
	}
	return checkIns, nil
}

type testRepos struct {
	members      *fakeMemberRepo
	classes      *fakeClassRepo
	plans        *fakePlanRepo
	reservations *fakeReservationRepo
	payments     *fakePaymentRepo
	checkIns     *fakeCheckInRepo
	repo         *repository.Repository
}

func newTestRepos() *testRepos {
	members := newFakeMemberRepo()
	classes := newFakeClassRepo()
	plans := newFakePlanRepo()
	reservations := newFakeReservationRepo()
	payments := newFakePaymentRepo(members)
	checkIns := newFakeCheckInRepo()

	return &testRepos{
		members:      members,
		classes:      classes,
		plans:        plans,
		reservations: reservations,
		payments:     payments,
		checkIns:     checkIns,
		repo: &repository.Repository{
			Member:      members,
			Class:       classes,
			Plan:        plans,
			Reservation: reservations,
			Payment:     payments,
			CheckIn:     checkIns,
		},
	}
}

func testLogger() *zap.Logger {
	return zap.NewNop()
}

// fakeSender records deliveries and can be told to fail.
type fakeSender struct {
	mu           sync.Mutex
	destinations []string
	messages     []string
	err          error
}

func (f *fakeSender) Send(ctx context.Context, destination, message string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.destinations = append(f.destinations, destination)
	f.messages = append(f.messages, message)
	return nil
}
