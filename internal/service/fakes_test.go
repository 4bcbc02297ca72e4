package service

import (
	"context"
	"errors"
	"time"

	"crowlands-be/internal/dto"
	"crowlands-be/internal/entity"
	"crowlands-be/internal/repository/contract"
	"crowlands-be/internal/repository/specification"
	"crowlands-be/internal/repository/unitofwork"
	"crowlands-be/pkg/events"
	"crowlands-be/pkg/llm"
	"crowlands-be/pkg/store"

	"github.com/google/uuid"
)

// In-memory doubles for the repository layer. Only the methods the services
// under test actually reach are given behavior; the rest return zero values.

type fakeUserRepo struct {
	contract.UserRepository

	user                *entity.User
	byEmail             map[string]*entity.User
	created             []*entity.User
	recordedGenerations []uuid.UUID
	savedIncrements     []uuid.UUID
	subscriptionsSet    []uuid.UUID
	lastLogins          []uuid.UUID
	emailUpdates        []string
	recordErr           error
}

func (r *fakeUserRepo) Create(ctx context.Context, user *entity.User) error {
	r.created = append(r.created, user)
	if r.byEmail == nil {
		r.byEmail = map[string]*entity.User{}
	}
	r.byEmail[user.Email] = user
	return nil
}

func (r *fakeUserRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.User, error) {
	for _, s := range specs {
		switch spec := s.(type) {
		case specification.ByEmail:
			if u, ok := r.byEmail[spec.Email]; ok {
				return u, nil
			}
			return nil, nil
		case specification.ByID:
			if r.user != nil && r.user.Id == spec.ID {
				return r.user, nil
			}
			return nil, nil
		}
	}
	return r.user, nil
}

func (r *fakeUserRepo) UpdateLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error {
	r.lastLogins = append(r.lastLogins, id)
	return nil
}

func (r *fakeUserRepo) UpdateEmail(ctx context.Context, id uuid.UUID, email string) error {
	r.emailUpdates = append(r.emailUpdates, email)
	return nil
}

func (r *fakeUserRepo) RecordGeneration(ctx context.Context, id uuid.UUID) error {
	if r.recordErr != nil {
		return r.recordErr
	}
	r.recordedGenerations = append(r.recordedGenerations, id)
	return nil
}

func (r *fakeUserRepo) IncrementSavedCount(ctx context.Context, id uuid.UUID) error {
	r.savedIncrements = append(r.savedIncrements, id)
	return nil
}

func (r *fakeUserRepo) SetSubscription(ctx context.Context, id uuid.UUID, tier entity.SubscriptionTier, status entity.SubscriptionStatus, start, end *time.Time) error {
	r.subscriptionsSet = append(r.subscriptionsSet, id)
	if r.user != nil && r.user.Id == id {
		r.user.SubscriptionTier = tier
		r.user.SubscriptionStatus = status
		r.user.SubscriptionStart = start
		r.user.SubscriptionEnd = end
	}
	return nil
}

type fakeGrimoireRepo struct {
	contract.GrimoireRepository

	spells  []*entity.SavedSpell
	deleted []uuid.UUID
	findErr error
}

func (r *fakeGrimoireRepo) Create(ctx context.Context, spell *entity.SavedSpell) error {
	if spell.Id == uuid.Nil {
		spell.Id = uuid.New()
	}
	spell.CreatedAt = time.Now()
	r.spells = append(r.spells, spell)
	return nil
}

func (r *fakeGrimoireRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.SavedSpell, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	// The service always scopes by id and owner; emulate both filters.
	var wantId uuid.UUID
	var wantOwner uuid.UUID
	for _, s := range specs {
		switch spec := s.(type) {
		case specification.ByID:
			wantId = spec.ID
		case specification.UserOwnedBy:
			wantOwner = spec.UserID
		}
	}
	for _, sp := range r.spells {
		if sp.Id == wantId && (wantOwner == uuid.Nil || sp.UserId == wantOwner) {
			return sp, nil
		}
	}
	return nil, nil
}

func (r *fakeGrimoireRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.SavedSpell, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	var wantOwner uuid.UUID
	for _, s := range specs {
		if spec, ok := s.(specification.UserOwnedBy); ok {
			wantOwner = spec.UserID
		}
	}
	var out []*entity.SavedSpell
	for _, sp := range r.spells {
		if wantOwner == uuid.Nil || sp.UserId == wantOwner {
			out = append(out, sp)
		}
	}
	return out, nil
}

func (r *fakeGrimoireRepo) Delete(ctx context.Context, id uuid.UUID) error {
	r.deleted = append(r.deleted, id)
	for i, sp := range r.spells {
		if sp.Id == id {
			r.spells = append(r.spells[:i], r.spells[i+1:]...)
			return nil
		}
	}
	return nil
}

type fakeDeityRepo struct {
	contract.DeityRepository

	deities []*entity.Deity
	err     error
}

func (r *fakeDeityRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Deity, error) {
	return r.deities, r.err
}

type fakeFigureRepo struct {
	contract.FigureRepository

	figures []*entity.HistoricalFigure
	err     error
}

func (r *fakeFigureRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.HistoricalFigure, error) {
	return r.figures, r.err
}

type fakeRitualRepo struct {
	contract.RitualRepository

	rituals []*entity.Ritual
	err     error
}

func (r *fakeRitualRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Ritual, error) {
	return r.rituals, r.err
}

type fakeFavoriteRepo struct {
	contract.FavoriteRepository

	favorites []*entity.Favorite
}

func (r *fakeFavoriteRepo) Add(ctx context.Context, favorite *entity.Favorite) error {
	for _, f := range r.favorites {
		if f.UserId == favorite.UserId && f.ItemType == favorite.ItemType && f.ItemId == favorite.ItemId {
			return nil // duplicate adds are a no-op
		}
	}
	r.favorites = append(r.favorites, favorite)
	return nil
}

func (r *fakeFavoriteRepo) Remove(ctx context.Context, userId uuid.UUID, itemType, itemId string) error {
	for i, f := range r.favorites {
		if f.UserId == userId && f.ItemType == itemType && f.ItemId == itemId {
			r.favorites = append(r.favorites[:i], r.favorites[i+1:]...)
			return nil
		}
	}
	return nil
}

func (r *fakeFavoriteRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Favorite, error) {
	var wantOwner uuid.UUID
	for _, s := range specs {
		if spec, ok := s.(specification.UserOwnedBy); ok {
			wantOwner = spec.UserID
		}
	}
	var out []*entity.Favorite
	for _, f := range r.favorites {
		if wantOwner == uuid.Nil || f.UserId == wantOwner {
			out = append(out, f)
		}
	}
	return out, nil
}

type fakeOrderRepo struct {
	contract.SubscriptionOrderRepository

	order         *entity.SubscriptionOrder
	statusUpdates []entity.SubscriptionOrderStatus
}

func (r *fakeOrderRepo) Create(ctx context.Context, order *entity.SubscriptionOrder) error {
	r.order = order
	return nil
}

func (r *fakeOrderRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.SubscriptionOrder, error) {
	return r.order, nil
}

func (r *fakeOrderRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.SubscriptionOrderStatus) error {
	r.statusUpdates = append(r.statusUpdates, status)
	if r.order != nil && r.order.Id == id {
		r.order.Status = status
	}
	return nil
}

type fakeUow struct {
	userRepo     *fakeUserRepo
	grimoireRepo *fakeGrimoireRepo
	deityRepo    *fakeDeityRepo
	figureRepo   *fakeFigureRepo
	ritualRepo   *fakeRitualRepo
	orderRepo    *fakeOrderRepo
	favoriteRepo *fakeFavoriteRepo
}

func newFakeUow() *fakeUow {
	return &fakeUow{
		userRepo:     &fakeUserRepo{},
		grimoireRepo: &fakeGrimoireRepo{},
		deityRepo:    &fakeDeityRepo{},
		figureRepo:   &fakeFigureRepo{},
		ritualRepo:   &fakeRitualRepo{},
		orderRepo:    &fakeOrderRepo{},
		favoriteRepo: &fakeFavoriteRepo{},
	}
}

func (u *fakeUow) Begin(ctx context.Context) error { return nil }
func (u *fakeUow) Commit() error                   { return nil }
func (u *fakeUow) Rollback() error                 { return nil }

func (u *fakeUow) UserRepository() contract.UserRepository         { return u.userRepo }
func (u *fakeUow) GrimoireRepository() contract.GrimoireRepository { return u.grimoireRepo }
func (u *fakeUow) FavoriteRepository() contract.FavoriteRepository { return u.favoriteRepo }

func (u *fakeUow) DeityRepository() contract.DeityRepository       { return u.deityRepo }
func (u *fakeUow) FigureRepository() contract.FigureRepository     { return u.figureRepo }
func (u *fakeUow) SiteRepository() contract.SiteRepository         { return nil }
func (u *fakeUow) RitualRepository() contract.RitualRepository     { return u.ritualRepo }
func (u *fakeUow) TimelineRepository() contract.TimelineRepository { return nil }

func (u *fakeUow) GenerationEventRepository() contract.GenerationEventRepository     { return nil }
func (u *fakeUow) SubscriptionOrderRepository() contract.SubscriptionOrderRepository { return u.orderRepo }

type fakeFactory struct {
	uow *fakeUow
}

func (f *fakeFactory) NewUnitOfWork(ctx context.Context) unitofwork.UnitOfWork { return f.uow }

// LLM / image doubles.

type fakeLLM struct {
	response string
	err      error
	calls    [][]llm.Message
}

func (f *fakeLLM) Chat(ctx context.Context, messages []llm.Message, opts ...llm.Option) (string, error) {
	f.calls = append(f.calls, messages)
	if f.err != nil {
		return "", f.err
	}
	return f.response, nil
}

func (f *fakeLLM) Generate(ctx context.Context, prompt string, opts ...llm.Option) (string, error) {
	return f.Chat(ctx, []llm.Message{{Role: "user", Content: prompt}})
}

type fakeImageProvider struct {
	data  []byte
	err   error
	calls []string
}

func (f *fakeImageProvider) Generate(ctx context.Context, prompt string) ([]byte, error) {
	f.calls = append(f.calls, prompt)
	if f.err != nil {
		return nil, f.err
	}
	return f.data, nil
}

type fakeSessionStore struct {
	sessions map[string]*store.Session
}

func newFakeSessionStore() *fakeSessionStore {
	return &fakeSessionStore{sessions: map[string]*store.Session{}}
}

func (f *fakeSessionStore) Save(session *store.Session) {
	f.sessions[session.ID] = session
}

func (f *fakeSessionStore) Get(sessionID string) (*store.Session, bool) {
	s, ok := f.sessions[sessionID]
	return s, ok
}

func (f *fakeSessionStore) Delete(sessionID string) {
	delete(f.sessions, sessionID)
}

type fakeAuditPublisher struct {
	published []*dto.GenerationEventMessage
	err       error
}

func (f *fakeAuditPublisher) PublishGenerationEvent(ctx context.Context, msg *dto.GenerationEventMessage) error {
	if f.err != nil {
		return f.err
	}
	f.published = append(f.published, msg)
	return nil
}

type fakeEventPublisher struct {
	published []events.Event
	err       error
}

func (f *fakeEventPublisher) Publish(ctx context.Context, event events.Event) error {
	if f.err != nil {
		return f.err
	}
	f.published = append(f.published, event)
	return nil
}

type nopLogger struct{}

func (nopLogger) Debug(module, message string, details map[string]interface{}) {}
func (nopLogger) Info(module, message string, details map[string]interface{})  {}
func (nopLogger) Warn(module, message string, details map[string]interface{})  {}
func (nopLogger) Error(module, message string, details map[string]interface{}) {}
func (nopLogger) Sync() error                                                  { return nil }

var errUpstream = errors.New("upstream exploded")
