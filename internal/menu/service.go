package menu

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/noah-isme/backend-resto/internal/events"
)

// ErrInvalidInput is returned when the provided item payload is invalid.
var ErrInvalidInput = errors.New("menu: invalid input")

// Emitter publishes menu lifecycle events.
type Emitter interface {
	Emit(ctx context.Context, topic string, aggregateID uuid.UUID, payload any) (events.Event, error)
}

// Service encapsulates menu item management with a read-through cache.
type Service struct {
	Q     Querier
	Cache *Cache
	Bus   Emitter
}

// Create validates and stores a new menu item.
func (s *Service) Create(ctx context.Context, item Item) (Item, error) {
	if s == nil || s.Q == nil {
		return Item{}, errors.New("menu service not configured")
	}
	if err := validateItem(&item); err != nil {
		return Item{}, err
	}
	created, err := s.Q.InsertItem(ctx, item)
	if err != nil {
		return Item{}, err
	}
	s.Cache.Invalidate(ctx, created)
	s.emit(ctx, events.TopicMenuItemCreated, created)
	return created, nil
}

// Get loads an item, serving from cache when possible.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (Item, error) {
	if s == nil || s.Q == nil {
		return Item{}, errors.New("menu service not configured")
	}
	if item, ok := s.Cache.GetItem(ctx, id); ok {
		return item, nil
	}
	item, err := s.Q.GetItem(ctx, id)
	if err != nil {
		return Item{}, err
	}
	s.Cache.SetItem(ctx, item)
	return item, nil
}

// List returns items filtered by kind; an empty kind lists everything.
func (s *Service) List(ctx context.Context, kind ItemKind) ([]Item, error) {
	if s == nil || s.Q == nil {
		return nil, errors.New("menu service not configured")
	}
	if kind != "" && !ValidKind(kind) {
		return nil, fmt.Errorf("unknown kind %q: %w", kind, ErrInvalidInput)
	}
	if items, ok := s.Cache.GetList(ctx, kind); ok {
		return items, nil
	}
	items, err := s.Q.ListItems(ctx, kind)
	if err != nil {
		return nil, err
	}
	s.Cache.SetList(ctx, kind, items)
	return items, nil
}

// Update mutates an existing item.
func (s *Service) Update(ctx context.Context, item Item) (Item, error) {
	if s == nil || s.Q == nil {
		return Item{}, errors.New("menu service not configured")
	}
	if item.ID == uuid.Nil {
		return Item{}, fmt.Errorf("id is required: %w", ErrInvalidInput)
	}
	if err := validateItem(&item); err != nil {
		return Item{}, err
	}
	updated, err := s.Q.UpdateItem(ctx, item)
	if err != nil {
		return Item{}, err
	}
	s.Cache.Invalidate(ctx, updated)
	s.emit(ctx, events.TopicMenuItemUpdated, updated)
	return updated, nil
}

// Delete removes an item.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	if s == nil || s.Q == nil {
		return errors.New("menu service not configured")
	}
	item, err := s.Q.GetItem(ctx, id)
	if err != nil {
		return err
	}
	if err := s.Q.DeleteItem(ctx, id); err != nil {
		return err
	}
	s.Cache.Invalidate(ctx, item)
	s.emit(ctx, events.TopicMenuItemDeleted, item)
	return nil
}

func (s *Service) emit(ctx context.Context, topic string, item Item) {
	if s.Bus == nil {
		return
	}
	// Event emission is best-effort; menu mutations stand on their own.
	_, _ = s.Bus.Emit(ctx, topic, item.ID, map[string]any{
		"name":        item.Name,
		"kind":        item.Kind,
		"listedPrice": item.ListedPrice(),
	})
}

func validateItem(item *Item) error {
	item.Name = strings.TrimSpace(item.Name)
	if item.Name == "" {
		return fmt.Errorf("name is required: %w", ErrInvalidInput)
	}
	if !ValidKind(item.Kind) {
		return fmt.Errorf("unknown kind %q: %w", item.Kind, ErrInvalidInput)
	}
	if item.BasePrice < 0 {
		return fmt.Errorf("base price must be non-negative: %w", ErrInvalidInput)
	}
	if item.Kind == KindBeverage {
		if item.Size == "" {
			item.Size = SizeRegular
		}
		if _, ok := sizeBps[item.Size]; !ok {
			return fmt.Errorf("unknown size %q: %w", item.Size, ErrInvalidInput)
		}
	}
	return nil
}
