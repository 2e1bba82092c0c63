package repository

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	apperrors "pitchdeck/internal/common/errors"
	"pitchdeck/internal/common/logger"
	"pitchdeck/internal/common/metrics"
	"pitchdeck/internal/common/validation"
	"pitchdeck/internal/models"

	"github.com/google/uuid"
)

const DefaultKeyPrefix = "pitchdeck"

// Outcome labels for metrics.RepositoryOperations.
const (
	outcomeOK      = "ok"
	outcomeAbsent  = "absent"
	outcomeCorrupt = "corrupt"
	outcomeError   = "error"
)

// A stored collection must at least be a list of objects carrying an id;
// anything else is treated as corruption.
var decksSchema = validation.MustValidator(map[string]interface{}{
	"type": "array",
	"items": map[string]interface{}{
		"type":     "object",
		"required": []interface{}{"id"},
		"properties": map[string]interface{}{
			"id": map[string]interface{}{"type": "string", "minLength": 1},
		},
	},
})

var draftSchema = validation.MustValidator(map[string]interface{}{
	"type": "object",
})

// Repository is the deck collection plus the single draft slot. Every
// operation reads or replaces the whole collection; the mutex makes each
// read-modify-write atomic within the process. Across processes the last
// write wins.
type Repository struct {
	store  Store
	logger logger.Logger
	now    func() time.Time
	newID  func() string
	prefix string

	mu sync.Mutex
}

type Option func(*Repository)

// WithClock overrides time.Now for timestamps.
func WithClock(now func() time.Time) Option {
	return func(r *Repository) { r.now = now }
}

func WithKeyPrefix(prefix string) Option {
	return func(r *Repository) {
		if prefix != "" {
			r.prefix = prefix
		}
	}
}

// WithIDGenerator overrides uuid generation for new decks.
func WithIDGenerator(gen func() string) Option {
	return func(r *Repository) { r.newID = gen }
}

func New(store Store, log logger.Logger, opts ...Option) *Repository {
	r := &Repository{
		store:  store,
		logger: log,
		now:    time.Now,
		newID:  uuid.NewString,
		prefix: DefaultKeyPrefix,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *Repository) decksKey() string { return r.prefix + ":decks" }
func (r *Repository) draftKey() string { return r.prefix + ":draft" }

// ListDecks returns every stored deck in stored order.
func (r *Repository) ListDecks(ctx context.Context) ([]models.Deck, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.loadDecks(ctx, "list")
}

// GetDeck returns nil, nil when no deck has the id.
func (r *Repository) GetDeck(ctx context.Context, id string) (*models.Deck, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	decks, err := r.loadDecks(ctx, "get")
	if err != nil {
		return nil, err
	}
	for i := range decks {
		if decks[i].ID == id {
			deck := decks[i]
			return &deck, nil
		}
	}
	return nil, nil
}

// SaveDeck upserts by id and returns the deck as stored. An empty id gets a
// fresh one. UpdatedAt is always stamped; CreatedAt is kept from the stored
// copy on update.
func (r *Repository) SaveDeck(ctx context.Context, deck models.Deck) (models.Deck, error) {
	saved, _, err := r.UpsertDeck(ctx, deck)
	return saved, err
}

// UpsertDeck is SaveDeck that also reports whether the deck was appended
// rather than replaced, decided under the same lock as the write.
func (r *Repository) UpsertDeck(ctx context.Context, deck models.Deck) (models.Deck, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	decks, err := r.loadDecks(ctx, "save")
	if err != nil {
		return models.Deck{}, false, err
	}

	now := r.now().UTC()
	if deck.ID == "" {
		deck.ID = r.newID()
	}
	deck.UpdatedAt = now

	idx := -1
	for i := range decks {
		if decks[i].ID == deck.ID {
			idx = i
			break
		}
	}
	if idx >= 0 && !decks[idx].CreatedAt.IsZero() {
		deck.CreatedAt = decks[idx].CreatedAt
	}
	if deck.CreatedAt.IsZero() || deck.CreatedAt.After(now) {
		deck.CreatedAt = now
	}
	created := idx < 0
	if created {
		decks = append(decks, deck)
	} else {
		decks[idx] = deck
	}

	if err := r.writeJSON(ctx, "save", r.decksKey(), decks); err != nil {
		return models.Deck{}, false, err
	}
	return deck, created, nil
}

// DeleteDeck removes the deck with id. Deleting an unknown id is not an error.
func (r *Repository) DeleteDeck(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	decks, err := r.loadDecks(ctx, "delete")
	if err != nil {
		return err
	}
	kept := decks[:0]
	for _, d := range decks {
		if d.ID != id {
			kept = append(kept, d)
		}
	}
	if len(kept) == len(decks) {
		r.observe("delete", outcomeAbsent)
		return nil
	}
	return r.writeJSON(ctx, "delete", r.decksKey(), kept)
}

// SaveDraft overwrites the draft slot.
func (r *Repository) SaveDraft(ctx context.Context, draft models.Draft) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.writeJSON(ctx, "save_draft", r.draftKey(), draft)
}

// GetDraft returns nil, nil when there is no draft or it cannot be read back.
func (r *Repository) GetDraft(ctx context.Context) (*models.Draft, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.loadDraft(ctx)
}

func (r *Repository) ClearDraft(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.clearDraft(ctx)
}

// PromoteDraft turns the draft into a new deck and clears the slot.
func (r *Repository) PromoteDraft(ctx context.Context) (models.Deck, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	draft, err := r.loadDraft(ctx)
	if err != nil {
		return models.Deck{}, err
	}
	if draft == nil {
		return models.Deck{}, apperrors.NewDraftNotFoundError()
	}

	decks, err := r.loadDecks(ctx, "promote")
	if err != nil {
		return models.Deck{}, err
	}

	now := r.now().UTC()
	deck := draft.ToDeck()
	deck.ID = r.newID()
	deck.CreatedAt = now
	deck.UpdatedAt = now
	decks = append(decks, deck)

	if err := r.writeJSON(ctx, "promote", r.decksKey(), decks); err != nil {
		return models.Deck{}, err
	}
	if err := r.clearDraft(ctx); err != nil {
		return models.Deck{}, err
	}
	return deck, nil
}

func (r *Repository) clearDraft(ctx context.Context) error {
	if err := r.store.Delete(ctx, r.draftKey()); err != nil {
		r.observe("clear_draft", outcomeError)
		return apperrors.NewStorageWriteFailedError("clear_draft", err)
	}
	r.observe("clear_draft", outcomeOK)
	return nil
}

func (r *Repository) loadDecks(ctx context.Context, op string) ([]models.Deck, error) {
	raw, ok, err := r.read(ctx, op, r.decksKey(), decksSchema)
	if err != nil || !ok {
		return []models.Deck{}, err
	}
	var decks []models.Deck
	if err := json.Unmarshal(raw, &decks); err != nil {
		r.corrupt(op, r.decksKey(), err)
		return []models.Deck{}, nil
	}
	if decks == nil {
		decks = []models.Deck{}
	}
	r.observe(op, outcomeOK)
	return decks, nil
}

func (r *Repository) loadDraft(ctx context.Context) (*models.Draft, error) {
	const op = "get_draft"
	raw, ok, err := r.read(ctx, op, r.draftKey(), draftSchema)
	if err != nil || !ok {
		return nil, err
	}
	var draft models.Draft
	if err := json.Unmarshal(raw, &draft); err != nil {
		r.corrupt(op, r.draftKey(), err)
		return nil, nil
	}
	r.observe(op, outcomeOK)
	return &draft, nil
}

// read fetches and schema-checks a slot. ok is false when the slot is absent
// or corrupt, both of which the caller treats as no data.
func (r *Repository) read(ctx context.Context, op, key string, schema *validation.Validator) ([]byte, bool, error) {
	raw, err := r.store.Get(ctx, key)
	if errors.Is(err, ErrKeyNotFound) {
		r.observe(op, outcomeAbsent)
		return nil, false, nil
	}
	if err != nil {
		r.observe(op, outcomeError)
		r.logger.Error("storage read failed", map[string]interface{}{
			"operation": op,
			"key":       key,
			"error":     err,
		})
		return nil, false, apperrors.NewStorageReadFailedError(op, err)
	}

	result, err := schema.ValidateJSON(raw)
	if err != nil {
		r.corrupt(op, key, err)
		return nil, false, nil
	}
	if !result.Valid {
		r.corrupt(op, key, errors.New(result.Error()))
		return nil, false, nil
	}
	return raw, true, nil
}

func (r *Repository) writeJSON(ctx context.Context, op, key string, v interface{}) error {
	raw, err := json.Marshal(v)
	if err != nil {
		r.observe(op, outcomeError)
		return apperrors.NewInternalError(err)
	}
	if err := r.store.Set(ctx, key, raw); err != nil {
		r.observe(op, outcomeError)
		r.logger.Error("storage write failed", map[string]interface{}{
			"operation": op,
			"key":       key,
			"error":     err,
		})
		return apperrors.NewStorageWriteFailedError(op, err)
	}
	r.observe(op, outcomeOK)
	return nil
}

func (r *Repository) corrupt(op, key string, err error) {
	r.observe(op, outcomeCorrupt)
	r.logger.Warn("discarding unreadable stored payload", map[string]interface{}{
		"operation": op,
		"key":       key,
		"error":     err,
	})
}

func (r *Repository) observe(op, outcome string) {
	metrics.RepositoryOperations.WithLabelValues(op, outcome).Inc()
}
