package calendar

import (
	"context"
	"fmt"

	"dhara/models"
)

func (s *DefaultCalendarService) ListSlots(ctx context.Context, professionalID string) ([]models.AvailabilitySlot, error) {
	slots, err := s.Slots.ListByProfessional(ctx, professionalID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch availability: %w", err)
	}
	return slots, nil
}

// CreateSlot validates and stores a new slot, then drops cached views.
func (s *DefaultCalendarService) CreateSlot(ctx context.Context, professionalID string, in models.AvailabilitySlotInput) (*models.AvailabilitySlot, error) {
	slot := in.ToSlot(professionalID)
	if bad := ValidateSlot(slot, "new slot", s.WeekStartsOn); bad != nil {
		return nil, bad
	}
	if err := s.Slots.Create(ctx, &slot); err != nil {
		return nil, fmt.Errorf("failed to create slot: %w", err)
	}
	s.invalidate(ctx, professionalID)
	return &slot, nil
}

func (s *DefaultCalendarService) UpdateSlot(ctx context.Context, professionalID, slotID string, in models.AvailabilitySlotInput) (*models.AvailabilitySlot, error) {
	existing, err := s.Slots.GetByID(ctx, professionalID, slotID)
	if err != nil {
		return nil, err
	}

	slot := in.ToSlot(professionalID)
	slot.ID = existing.ID
	slot.CreatedAt = existing.CreatedAt
	if bad := ValidateSlot(slot, slotID, s.WeekStartsOn); bad != nil {
		return nil, bad
	}
	if err := s.Slots.Update(ctx, &slot); err != nil {
		return nil, fmt.Errorf("failed to update slot: %w", err)
	}
	s.invalidate(ctx, professionalID)
	return &slot, nil
}

func (s *DefaultCalendarService) DeleteSlot(ctx context.Context, professionalID, slotID string) error {
	if err := s.Slots.Delete(ctx, professionalID, slotID); err != nil {
		return err
	}
	s.invalidate(ctx, professionalID)
	return nil
}
