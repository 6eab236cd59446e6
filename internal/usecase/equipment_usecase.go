package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"catalogo_equipamentos/internal/domain/entities"
	"catalogo_equipamentos/internal/domain/schema"
	"catalogo_equipamentos/internal/infrastructure/logger"
	"catalogo_equipamentos/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrEquipmentNotFound  = errors.New("equipment not found")
	ErrInvalidEquipmentID = errors.New("invalid equipment id")
	ErrEquipmentStore     = errors.New("equipment store failure")
)

// IEquipmentUseCase owns the equipment record lifecycle.
//
// Raw inputs are flat form objects (JSON decoded). Validation failures are
// returned as *schema.ValidationError and nothing is written.
type IEquipmentUseCase interface {
	Create(ctx context.Context, raw map[string]any) (entities.Equipment, error)
	Update(ctx context.Context, id string, patch map[string]any) (entities.Equipment, error)
	Delete(ctx context.Context, id string) error
}

type EquipmentUseCase struct {
	repo     interfaces.IEquipmentRepository
	schema   *schema.Schema
	notifier interfaces.IEquipmentChangeNotifier
	locks    *keyedMutex
	now      func() time.Time
	newID    func() string
}

var _ IEquipmentUseCase = (*EquipmentUseCase)(nil)

func NewEquipmentUseCase(repo interfaces.IEquipmentRepository, s *schema.Schema, notifiers ...interfaces.IEquipmentChangeNotifier) *EquipmentUseCase {
	return &EquipmentUseCase{
		repo:     repo,
		schema:   s,
		notifier: ChangeNotifiers(notifiers),
		locks:    newKeyedMutex(),
		now:      time.Now,
		newID:    uuid.NewString,
	}
}

func (u *EquipmentUseCase) Create(ctx context.Context, raw map[string]any) (entities.Equipment, error) {
	data, err := u.schema.Parse(raw)
	if err != nil {
		return entities.Equipment{}, err
	}

	now := u.now().UTC()
	e := entities.Equipment{
		ID:            u.newID(),
		EquipmentData: data,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	created, err := u.repo.Insert(ctx, e)
	if err != nil {
		logger.Error(ctx, "[equipment][usecase] create failed", logger.String("equipment_id", e.ID), logger.ErrorF(err))
		return entities.Equipment{}, fmt.Errorf("%w: %w", ErrEquipmentStore, err)
	}

	logger.Info(ctx, "[equipment][usecase] created",
		logger.String("equipment_id", created.ID),
		logger.String("type", string(created.Type)),
	)
	u.notifier.EquipmentChanged(ctx, entities.EquipmentChange{
		Kind: entities.EquipmentCreated,
		ID:   created.ID,
		Type: created.Type,
		At:   created.UpdatedAt,
	})
	return created, nil
}

func (u *EquipmentUseCase) Update(ctx context.Context, id string, patch map[string]any) (entities.Equipment, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Equipment{}, ErrInvalidEquipmentID
	}

	unlock := u.locks.Lock(id)
	defer unlock()

	current, err := u.repo.FindByID(ctx, id)
	if err != nil {
		return entities.Equipment{}, fmt.Errorf("%w: %w", ErrEquipmentStore, err)
	}
	if current.ID == "" {
		return entities.Equipment{}, ErrEquipmentNotFound
	}

	next, err := PlanEquipmentUpdate(u.schema, current, patch, u.now())
	if err != nil {
		return entities.Equipment{}, err
	}

	updated, err := u.repo.Update(ctx, next)
	if err != nil {
		logger.Error(ctx, "[equipment][usecase] update failed", logger.String("equipment_id", id), logger.ErrorF(err))
		return entities.Equipment{}, fmt.Errorf("%w: %w", ErrEquipmentStore, err)
	}
	if updated.ID == "" {
		return entities.Equipment{}, ErrEquipmentNotFound
	}

	change := entities.EquipmentChange{
		Kind: entities.EquipmentUpdated,
		ID:   updated.ID,
		Type: updated.Type,
		At:   updated.UpdatedAt,
	}
	if current.Type != updated.Type {
		change.PreviousType = current.Type
		logger.Info(ctx, "[equipment][usecase] type switched, technical fields cleared",
			logger.String("equipment_id", id),
			logger.String("from", string(current.Type)),
			logger.String("to", string(updated.Type)),
		)
	}
	logger.Info(ctx, "[equipment][usecase] updated", logger.String("equipment_id", id))
	u.notifier.EquipmentChanged(ctx, change)
	return updated, nil
}

func (u *EquipmentUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidEquipmentID
	}

	unlock := u.locks.Lock(id)
	defer unlock()

	current, err := u.repo.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrEquipmentStore, err)
	}
	if current.ID == "" {
		return ErrEquipmentNotFound
	}

	deleted, err := u.repo.Delete(ctx, id)
	if err != nil {
		logger.Error(ctx, "[equipment][usecase] delete failed", logger.String("equipment_id", id), logger.ErrorF(err))
		return fmt.Errorf("%w: %w", ErrEquipmentStore, err)
	}
	if !deleted {
		return ErrEquipmentNotFound
	}

	logger.Info(ctx, "[equipment][usecase] deleted", logger.String("equipment_id", id))
	u.notifier.EquipmentChanged(ctx, entities.EquipmentChange{
		Kind: entities.EquipmentDeleted,
		ID:   id,
		Type: current.Type,
		At:   u.now().UTC(),
	})
	return nil
}
