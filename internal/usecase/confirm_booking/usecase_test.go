package confirm_booking

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/easeteam/Ease-BookingService/internal/domain"
	reservationRepo "github.com/easeteam/Ease-BookingService/internal/infra/storage/reservation"
	userRepo "github.com/easeteam/Ease-BookingService/internal/infra/storage/user"
	"github.com/easeteam/Ease-BookingService/pkg/types"
)

type noopLogger struct{}

func (noopLogger) Info(format string, v ...interface{})  {}
func (noopLogger) Warn(format string, v ...interface{})  {}
func (noopLogger) Error(format string, v ...interface{}) {}

// fakeReservationRepo эмулирует видимость собственных вставок внутри транзакции
type fakeReservationRepo struct {
	existing  []*domain.Reservation
	nextID    int64
	createErr error
	findErr   error
}

func (f *fakeReservationRepo) FindOverlapping(ctx context.Context, start, end time.Time) (*domain.Reservation, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	for _, res := range f.existing {
		if res.Overlaps(start, end) {
			return res, nil
		}
	}
	return nil, reservationRepo.ErrReservationNotFound
}

func (f *fakeReservationRepo) Create(ctx context.Context, res *domain.Reservation) (*domain.Reservation, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.nextID++
	res.ID = f.nextID
	f.existing = append(f.existing, res)
	return res, nil
}

type fakeUserRepo struct {
	user *domain.User
	err  error
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.user, nil
}

type fakeCartStorage struct {
	items   []domain.CartItem
	cleared bool
	listErr error
}

func (f *fakeCartStorage) List(ctx context.Context, userID int64) ([]domain.CartItem, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.items, nil
}

func (f *fakeCartStorage) Clear(ctx context.Context, userID int64) error {
	f.cleared = true
	return nil
}

// fakeTxManager выполняет функцию без транзакции и отдает её ошибку как откат
type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

// retryingTxManager ведет себя как менеджер при конфликте сериализации:
// первая попытка откатывается, перед повтором успевает закоммититься
// конкурирующее бронирование winner
type retryingTxManager struct {
	repo     *fakeReservationRepo
	winner   *domain.Reservation
	attempts int
}

func (m *retryingTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	snapshot := len(m.repo.existing)

	m.attempts++
	if err := fn(ctx); err != nil {
		return err
	}

	// Откат первой попытки: её вставки исчезают, конкурент коммитится
	m.repo.existing = m.repo.existing[:snapshot]
	if m.winner != nil {
		m.repo.existing = append(m.repo.existing, m.winner)
	}

	m.attempts++
	return fn(ctx)
}

type fakeNotifier struct {
	called    int
	recipient string
	itemized  string
	total     int
}

func (f *fakeNotifier) Notify(recipient, username, itemized string, totalPrice int) {
	f.called++
	f.recipient = recipient
	f.itemized = itemized
	f.total = totalPrice
}

func cartItem(id, day, slot, menu string, price, durationMinutes int) domain.CartItem {
	return domain.CartItem{
		ID:              id,
		Date:            day,
		Time:            types.TimeString(slot),
		MenuKey:         "key",
		MenuName:        menu,
		Price:           price,
		DurationMinutes: durationMinutes,
	}
}

func date(t *testing.T, day, slot string) time.Time {
	t.Helper()
	parsed, err := time.Parse(domain.DateTimeFormat, day+" "+slot)
	require.NoError(t, err)
	return parsed
}

func newUseCase(repo *fakeReservationRepo, users *fakeUserRepo, carts *fakeCartStorage, notifier *fakeNotifier) *UseCase {
	return NewUseCase(repo, users, carts, fakeTxManager{}, notifier, noopLogger{})
}

func testUser() *domain.User {
	return &domain.User{ID: 1, Username: "anna", Email: "anna@example.com"}
}

func TestExecute_PartialSuccess(t *testing.T) {
	// Существующее бронирование 10:00-11:30
	taken := &domain.Reservation{
		ID:       100,
		MenuName: "Стрижка",
		StartAt:  date(t, "2025-06-16", "10:00"),
		EndAt:    date(t, "2025-06-16", "11:30"),
	}
	repo := &fakeReservationRepo{existing: []*domain.Reservation{taken}, nextID: 100}
	carts := &fakeCartStorage{items: []domain.CartItem{
		cartItem("a", "2025-06-16", "10:30", "Окрашивание", 8000, 150), // пересекается
		cartItem("b", "2025-06-16", "14:00", "Стрижка", 5000, 90),     // свободно
	}}
	notifier := &fakeNotifier{}

	uc := newUseCase(repo, &fakeUserRepo{user: testUser()}, carts, notifier)
	resp, err := uc.Execute(context.Background(), &Request{UserID: 1})

	require.NoError(t, err)
	require.Len(t, resp.Booked, 1)
	require.Len(t, resp.Conflicts, 1)

	assert.Equal(t, "Стрижка", resp.Booked[0].MenuName)
	assert.Equal(t, 5000, resp.Total, "total counts only booked items")
	assert.Equal(t, "Окрашивание", resp.Conflicts[0].MenuName)

	assert.True(t, carts.cleared, "cart must be cleared after a completed commit")
	assert.Equal(t, 1, notifier.called)
	assert.Equal(t, "anna@example.com", notifier.recipient)
	assert.Equal(t, 5000, notifier.total)
	assert.Contains(t, notifier.itemized, "Стрижка")
	assert.NotContains(t, notifier.itemized, "Окрашивание", "notification lists only booked items")
}

func TestExecute_BackToBackIsNotConflict(t *testing.T) {
	// Встык к существующему бронированию: 10:00-11:30 занято, 11:30 свободно
	taken := &domain.Reservation{
		ID:      100,
		StartAt: date(t, "2025-06-16", "10:00"),
		EndAt:   date(t, "2025-06-16", "11:30"),
	}
	repo := &fakeReservationRepo{existing: []*domain.Reservation{taken}, nextID: 100}
	carts := &fakeCartStorage{items: []domain.CartItem{
		cartItem("a", "2025-06-16", "11:30", "Стрижка", 5000, 90),
	}}

	uc := newUseCase(repo, &fakeUserRepo{user: testUser()}, carts, &fakeNotifier{})
	resp, err := uc.Execute(context.Background(), &Request{UserID: 1})

	require.NoError(t, err)
	assert.Len(t, resp.Booked, 1)
	assert.Empty(t, resp.Conflicts)
}

func TestExecute_ItemsOfSameCartCollide(t *testing.T) {
	// Вторая позиция той же корзины пересекается с первой: вставки одного
	// коммита видят друг друга
	repo := &fakeReservationRepo{}
	carts := &fakeCartStorage{items: []domain.CartItem{
		cartItem("a", "2025-06-16", "10:00", "Окрашивание", 8000, 150),
		cartItem("b", "2025-06-16", "11:00", "Стрижка", 5000, 90),
	}}

	uc := newUseCase(repo, &fakeUserRepo{user: testUser()}, carts, &fakeNotifier{})
	resp, err := uc.Execute(context.Background(), &Request{UserID: 1})

	require.NoError(t, err)
	require.Len(t, resp.Booked, 1)
	require.Len(t, resp.Conflicts, 1)
	assert.Equal(t, "Окрашивание", resp.Booked[0].MenuName, "items are committed in cart order")
	assert.Equal(t, "Стрижка", resp.Conflicts[0].MenuName)
}

func TestExecute_AllConflicts(t *testing.T) {
	taken := &domain.Reservation{
		ID:      100,
		StartAt: date(t, "2025-06-16", "10:00"),
		EndAt:   date(t, "2025-06-16", "13:00"),
	}
	repo := &fakeReservationRepo{existing: []*domain.Reservation{taken}, nextID: 100}
	carts := &fakeCartStorage{items: []domain.CartItem{
		cartItem("a", "2025-06-16", "10:00", "Стрижка", 5000, 90),
	}}
	notifier := &fakeNotifier{}

	uc := newUseCase(repo, &fakeUserRepo{user: testUser()}, carts, notifier)
	resp, err := uc.Execute(context.Background(), &Request{UserID: 1})

	require.NoError(t, err)
	assert.Empty(t, resp.Booked)
	assert.Len(t, resp.Conflicts, 1)
	assert.Zero(t, resp.Total)

	assert.True(t, carts.cleared, "cart is cleared even when every item conflicted")
	assert.Zero(t, notifier.called, "no notification without booked items")
}

func TestExecute_EmptyCart(t *testing.T) {
	uc := newUseCase(&fakeReservationRepo{}, &fakeUserRepo{user: testUser()}, &fakeCartStorage{}, &fakeNotifier{})

	_, err := uc.Execute(context.Background(), &Request{UserID: 1})

	assert.ErrorIs(t, err, ErrEmptyCart)
}

func TestExecute_UserNotFound(t *testing.T) {
	uc := newUseCase(&fakeReservationRepo{}, &fakeUserRepo{err: userRepo.ErrUserNotFound},
		&fakeCartStorage{}, &fakeNotifier{})

	_, err := uc.Execute(context.Background(), &Request{UserID: 42})

	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestExecute_StorageFailureRollsBack(t *testing.T) {
	repo := &fakeReservationRepo{createErr: errors.New("connection reset")}
	carts := &fakeCartStorage{items: []domain.CartItem{
		cartItem("a", "2025-06-16", "10:00", "Стрижка", 5000, 90),
	}}
	notifier := &fakeNotifier{}

	uc := newUseCase(repo, &fakeUserRepo{user: testUser()}, carts, notifier)
	_, err := uc.Execute(context.Background(), &Request{UserID: 1})

	require.ErrorIs(t, err, ErrInternal)
	assert.False(t, carts.cleared, "cart must survive a rolled back commit")
	assert.Zero(t, notifier.called)
}

func TestExecute_MalformedItemRejected(t *testing.T) {
	repo := &fakeReservationRepo{}
	carts := &fakeCartStorage{items: []domain.CartItem{
		cartItem("a", "not-a-date", "10:00", "Стрижка", 5000, 90),
		cartItem("b", "2025-06-16", "14:00", "Стрижка", 5000, 90),
	}}

	uc := newUseCase(repo, &fakeUserRepo{user: testUser()}, carts, &fakeNotifier{})
	resp, err := uc.Execute(context.Background(), &Request{UserID: 1})

	require.NoError(t, err)
	assert.Len(t, resp.Booked, 1)
	assert.Len(t, resp.Conflicts, 1)
}

func TestExecute_RetriedCommitSeesWinnerAsConflict(t *testing.T) {
	// Два коммита борются за 14:00-15:30: конкурент выигрывает, наша
	// повторенная попытка видит его запись и отдает конфликт позиции
	repo := &fakeReservationRepo{}
	txMgr := &retryingTxManager{
		repo: repo,
		winner: &domain.Reservation{
			ID:       100,
			MenuName: "Стрижка",
			StartAt:  date(t, "2025-06-16", "14:00"),
			EndAt:    date(t, "2025-06-16", "15:30"),
		},
	}
	carts := &fakeCartStorage{items: []domain.CartItem{
		cartItem("a", "2025-06-16", "14:00", "Стрижка", 5000, 90),
	}}
	notifier := &fakeNotifier{}

	uc := NewUseCase(repo, &fakeUserRepo{user: testUser()}, carts, txMgr, notifier, noopLogger{})
	resp, err := uc.Execute(context.Background(), &Request{UserID: 1})

	require.NoError(t, err)
	assert.Equal(t, 2, txMgr.attempts)
	assert.Empty(t, resp.Booked)
	require.Len(t, resp.Conflicts, 1)
	assert.Equal(t, "Стрижка", resp.Conflicts[0].MenuName)
	assert.Zero(t, resp.Total)

	assert.True(t, carts.cleared)
	assert.Zero(t, notifier.called)
}

func TestExecute_RetriedCommitDoesNotDuplicate(t *testing.T) {
	// Откатившаяся попытка не должна оставить следов: после повтора
	// каждая позиция фигурирует в ответе и письме ровно один раз
	repo := &fakeReservationRepo{}
	txMgr := &retryingTxManager{repo: repo}
	carts := &fakeCartStorage{items: []domain.CartItem{
		cartItem("a", "2025-06-16", "10:00", "Стрижка", 5000, 90),
	}}
	notifier := &fakeNotifier{}

	uc := NewUseCase(repo, &fakeUserRepo{user: testUser()}, carts, txMgr, notifier, noopLogger{})
	resp, err := uc.Execute(context.Background(), &Request{UserID: 1})

	require.NoError(t, err)
	assert.Equal(t, 2, txMgr.attempts)
	require.Len(t, resp.Booked, 1)
	assert.Empty(t, resp.Conflicts)
	assert.Equal(t, 5000, resp.Total)

	assert.Equal(t, 1, notifier.called)
	assert.Equal(t, 5000, notifier.total)
	assert.Equal(t, 1, strings.Count(notifier.itemized, "Стрижка"))
}

func TestExecute_InvalidUserID(t *testing.T) {
	uc := newUseCase(&fakeReservationRepo{}, &fakeUserRepo{user: testUser()}, &fakeCartStorage{}, &fakeNotifier{})

	_, err := uc.Execute(context.Background(), &Request{UserID: 0})

	assert.ErrorIs(t, err, ErrInvalidInput)
}
