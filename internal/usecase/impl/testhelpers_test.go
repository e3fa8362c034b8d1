package impl

import (
	"context"
	"io"
	"log/slog"
	"sort"
	"testing"
	"time"

	"phecalc/internal/domain/entity"
	"phecalc/internal/domain/repository"
	mockRepo "phecalc/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// expectTx makes txManager run the callback once against factory and return its error.
func expectTx(txManager *mockRepo.MockTransactionManager, factory repository.RepositoryFactory) {
	txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		}).
		Once()
}

// memStore is an in-memory database for sequence tests. memTxManager commits a
// transaction by swapping in the working copy and rolls back by discarding it.
type memStore struct {
	users        map[uuid.UUID]entity.User
	foodTypes    map[uuid.UUID]entity.FoodType
	foods        map[uuid.UUID]entity.Food
	consumptions map[uuid.UUID]entity.FoodConsumption
	intakes      map[intakeKey]entity.DailyIntake
	intakeWrites int
}

type intakeKey struct {
	userID uuid.UUID
	date   string
}

func newIntakeKey(userID uuid.UUID, date time.Time) intakeKey {
	return intakeKey{userID: userID, date: entity.CalendarDate(date).Format(entity.DateLayout)}
}

func newMemStore() *memStore {
	return &memStore{
		users:        map[uuid.UUID]entity.User{},
		foodTypes:    map[uuid.UUID]entity.FoodType{},
		foods:        map[uuid.UUID]entity.Food{},
		consumptions: map[uuid.UUID]entity.FoodConsumption{},
		intakes:      map[intakeKey]entity.DailyIntake{},
	}
}

func (s *memStore) clone() *memStore {
	c := newMemStore()
	for k, v := range s.users {
		c.users[k] = v
	}
	for k, v := range s.foodTypes {
		c.foodTypes[k] = v
	}
	for k, v := range s.foods {
		c.foods[k] = v
	}
	for k, v := range s.consumptions {
		c.consumptions[k] = v
	}
	for k, v := range s.intakes {
		c.intakes[k] = v
	}
	c.intakeWrites = s.intakeWrites

	return c
}

func (s *memStore) intake(userID uuid.UUID, date time.Time) (entity.DailyIntake, bool) {
	intake, ok := s.intakes[newIntakeKey(userID, date)]

	return intake, ok
}

type memTxManager struct {
	store *memStore
}

func (m *memTxManager) Execute(_ context.Context, fn func(repository.RepositoryFactory) error) error {
	work := m.store.clone()
	if err := fn(&memFactory{store: work}); err != nil {
		return err
	}
	*m.store = *work

	return nil
}

type memFactory struct {
	store *memStore
}

func (f *memFactory) NewUserRepository() repository.UserRepository { return &memUserRepo{f.store} }
func (f *memFactory) NewFoodTypeRepository() repository.FoodTypeRepository {
	return &memFoodTypeRepo{f.store}
}
func (f *memFactory) NewFoodRepository() repository.FoodRepository { return &memFoodRepo{f.store} }
func (f *memFactory) NewFoodConsumptionRepository() repository.FoodConsumptionRepository {
	return &memConsumptionRepo{f.store}
}
func (f *memFactory) NewDailyIntakeRepository() repository.DailyIntakeRepository {
	return &memDailyIntakeRepo{f.store}
}

type memUserRepo struct{ s *memStore }

func (r *memUserRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	u, ok := r.s.users[id]
	if !ok {
		return nil, repository.ErrUserNotFound
	}

	return &u, nil
}

func (r *memUserRepo) FindByUsername(_ context.Context, username string) (*entity.User, error) {
	for _, u := range r.s.users {
		if u.Username == username {
			return &u, nil
		}
	}

	return nil, repository.ErrUserNotFound
}

func (r *memUserRepo) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	_, err := r.FindByUsername(ctx, username)

	return err == nil, nil
}

func (r *memUserRepo) ExistsByEmail(_ context.Context, email string) (bool, error) {
	for _, u := range r.s.users {
		if u.Email == email {
			return true, nil
		}
	}

	return false, nil
}

func (r *memUserRepo) Create(_ context.Context, user *entity.User) error {
	user.ID = uuid.New()
	r.s.users[user.ID] = *user

	return nil
}

func (r *memUserRepo) Update(_ context.Context, user *entity.User) error {
	if _, ok := r.s.users[user.ID]; !ok {
		return repository.ErrUserNotFound
	}
	r.s.users[user.ID] = *user

	return nil
}

func (r *memUserRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.s.users, id)

	return nil
}

type memFoodTypeRepo struct{ s *memStore }

func (r *memFoodTypeRepo) Create(_ context.Context, ft *entity.FoodType) error {
	ft.ID = uuid.New()
	r.s.foodTypes[ft.ID] = *ft

	return nil
}

func (r *memFoodTypeRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.FoodType, error) {
	ft, ok := r.s.foodTypes[id]
	if !ok {
		return nil, repository.ErrFoodTypeNotFound
	}

	return &ft, nil
}

func (r *memFoodTypeRepo) FindAll(_ context.Context) ([]*entity.FoodType, error) {
	out := make([]*entity.FoodType, 0, len(r.s.foodTypes))
	for _, ft := range r.s.foodTypes {
		out = append(out, &ft)
	}

	return out, nil
}

func (r *memFoodTypeRepo) Update(_ context.Context, ft *entity.FoodType) error {
	r.s.foodTypes[ft.ID] = *ft

	return nil
}

func (r *memFoodTypeRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.s.foodTypes, id)

	return nil
}

type memFoodRepo struct{ s *memStore }

func (r *memFoodRepo) Create(_ context.Context, food *entity.Food) error {
	food.ID = uuid.New()
	r.s.foods[food.ID] = *food

	return nil
}

func (r *memFoodRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Food, error) {
	food, ok := r.s.foods[id]
	if !ok {
		return nil, repository.ErrFoodNotFound
	}

	return &food, nil
}

func (r *memFoodRepo) FindByUser(_ context.Context, userID uuid.UUID) ([]*entity.Food, error) {
	var out []*entity.Food
	for _, food := range r.s.foods {
		if food.UserID == userID {
			out = append(out, &food)
		}
	}

	return out, nil
}

func (r *memFoodRepo) Update(_ context.Context, food *entity.Food) error {
	r.s.foods[food.ID] = *food

	return nil
}

func (r *memFoodRepo) Delete(_ context.Context, id uuid.UUID) error {
	for _, c := range r.s.consumptions {
		if c.FoodID == id {
			return repository.ErrFoodInUse
		}
	}
	delete(r.s.foods, id)

	return nil
}

type memConsumptionRepo struct{ s *memStore }

func (r *memConsumptionRepo) Create(_ context.Context, c *entity.FoodConsumption) error {
	c.ID = uuid.New()
	r.s.consumptions[c.ID] = *c

	return nil
}

func (r *memConsumptionRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.FoodConsumption, error) {
	c, ok := r.s.consumptions[id]
	if !ok {
		return nil, repository.ErrFoodConsumptionNotFound
	}

	return &c, nil
}

func (r *memConsumptionRepo) FindByUserAndDate(_ context.Context, userID uuid.UUID, date time.Time) ([]*entity.FoodConsumption, error) {
	var out []*entity.FoodConsumption
	for _, c := range r.s.consumptions {
		if c.UserID == userID && c.IntakeDate.Equal(entity.CalendarDate(date)) {
			out = append(out, &c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ConsumedAt.Before(out[j].ConsumedAt) })

	return out, nil
}

func (r *memConsumptionRepo) Update(_ context.Context, c *entity.FoodConsumption) error {
	if _, ok := r.s.consumptions[c.ID]; !ok {
		return repository.ErrFoodConsumptionNotFound
	}
	r.s.consumptions[c.ID] = *c

	return nil
}

func (r *memConsumptionRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.s.consumptions[id]; !ok {
		return repository.ErrFoodConsumptionNotFound
	}
	delete(r.s.consumptions, id)

	return nil
}

type memDailyIntakeRepo struct{ s *memStore }

func (r *memDailyIntakeRepo) FindByUserAndDate(_ context.Context, userID uuid.UUID, date time.Time) (*entity.DailyIntake, error) {
	intake, ok := r.s.intake(userID, date)
	if !ok {
		return nil, repository.ErrDailyIntakeNotFound
	}

	return &intake, nil
}

func (r *memDailyIntakeRepo) FindByUserAndDateForUpdate(ctx context.Context, userID uuid.UUID, date time.Time) (*entity.DailyIntake, error) {
	return r.FindByUserAndDate(ctx, userID, date)
}

func (r *memDailyIntakeRepo) FindByUserBetween(_ context.Context, userID uuid.UUID, from, to time.Time) ([]*entity.DailyIntake, error) {
	var out []*entity.DailyIntake
	for _, intake := range r.s.intakes {
		if intake.UserID == userID && !intake.Date.Before(from) && !intake.Date.After(to) {
			out = append(out, &intake)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })

	return out, nil
}

func (r *memDailyIntakeRepo) Create(_ context.Context, intake *entity.DailyIntake) error {
	key := newIntakeKey(intake.UserID, intake.Date)
	if existing, ok := r.s.intakes[key]; ok {
		existing.TotalPhenylalanine = existing.TotalPhenylalanine.Add(intake.TotalPhenylalanine)
		if existing.TotalPhenylalanine.IsNegative() {
			return repository.ErrNegativeDailyIntake
		}
		*intake = existing
	} else {
		intake.ID = uuid.New()
	}
	r.s.intakes[key] = *intake
	r.s.intakeWrites++

	return nil
}

func (r *memDailyIntakeRepo) UpdateTotal(_ context.Context, updated *entity.DailyIntake) error {
	if updated.TotalPhenylalanine.IsNegative() {
		return repository.ErrNegativeDailyIntake
	}
	for key, intake := range r.s.intakes {
		if intake.ID == updated.ID {
			intake.TotalPhenylalanine = updated.TotalPhenylalanine
			intake.UpdatedAt = time.Now()
			updated.UpdatedAt = intake.UpdatedAt
			r.s.intakes[key] = intake
			r.s.intakeWrites++

			return nil
		}
	}

	return repository.ErrDailyIntakeNotFound
}

// seedFood stores a user and a food holding phePerBasis mg per 1000 units.
func (s *memStore) seedFood(t *testing.T, timezone string, phePerBasis string) (*entity.User, *entity.Food) {
	t.Helper()

	user := entity.User{ID: uuid.New(), Username: "user-" + uuid.NewString()[:8], Timezone: timezone, Role: entity.RoleUser}
	s.users[user.ID] = user

	foodType := entity.FoodType{ID: uuid.New(), Name: "generic", Multiplier: 50}
	s.foodTypes[foodType.ID] = foodType

	food := entity.Food{
		ID:            uuid.New(),
		UserID:        user.ID,
		FoodTypeID:    foodType.ID,
		FoodType:      &foodType,
		Name:          "test food",
		Phenylalanine: dec(phePerBasis),
	}
	s.foods[food.ID] = food

	return &user, &food
}
