// Package customer manages the preferences record and its address book.
package customer

import (
	"context"
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/cleancycle/cleancycle/internal/domain"
	"github.com/cleancycle/cleancycle/internal/repository"
	"github.com/cleancycle/cleancycle/pkg/common"
)

// validationError mirrors the booking package's recoverable input errors.
type validationError struct {
	message string
}

func (e validationError) Error() string { return e.message }

func newValidationError(msg string) error {
	return validationError{message: msg}
}

// IsValidation reports whether err is a user-input failure.
func IsValidation(err error) bool {
	var v validationError
	return errors.As(err, &v)
}

// UpdateRequest carries the editable preference fields. Addresses are
// managed through the address operations, not here.
type UpdateRequest struct {
	Name                string `json:"name"`
	PhoneNumber         string `json:"phone_number"`
	PreferredPickupTime string `json:"preferred_pickup_time"`
	SpecialInstructions string `json:"special_instructions"`
}

// Service exposes the customer-settings operations.
type Service struct {
	repo repository.CustomerRepository
}

func NewService(repo repository.CustomerRepository) *Service {
	return &Service{repo: repo}
}

// GetPreferences returns the stored record, or an empty one when nothing
// has been saved yet.
func (s *Service) GetPreferences(ctx context.Context) (*domain.CustomerProfile, error) {
	p, err := s.repo.GetProfile(ctx)
	if errors.Is(err, repository.ErrNotFound) {
		return &domain.CustomerProfile{Addresses: []domain.CustomerAddress{}}, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "get preferences")
	}
	return p, nil
}

// SavePreferences replaces the editable fields of the record, creating
// it on first save.
func (s *Service) SavePreferences(ctx context.Context, req UpdateRequest) (*domain.CustomerProfile, error) {
	p, err := s.repo.GetProfile(ctx)
	if errors.Is(err, repository.ErrNotFound) {
		p = &domain.CustomerProfile{ID: common.UUIDint64()}
	} else if err != nil {
		return nil, errors.Wrap(err, "load preferences")
	}

	p.Name = req.Name
	p.PhoneNumber = req.PhoneNumber
	p.PreferredPickupTime = req.PreferredPickupTime
	p.SpecialInstructions = req.SpecialInstructions

	if err := s.repo.SaveProfile(ctx, p); err != nil {
		return nil, errors.Wrap(err, "save preferences")
	}
	return s.GetPreferences(ctx)
}

// AddAddress appends a saved address. The first address ever added
// becomes the default.
func (s *Service) AddAddress(ctx context.Context, label, address string) (*domain.CustomerProfile, error) {
	if strings.TrimSpace(label) == "" {
		return nil, newValidationError("address label is required")
	}
	if strings.TrimSpace(address) == "" {
		return nil, newValidationError("address is required")
	}

	p, err := s.ensureProfile(ctx)
	if err != nil {
		return nil, err
	}

	addr := domain.CustomerAddress{
		ID:        common.UUIDint64(),
		ProfileID: p.ID,
		Label:     strings.TrimSpace(label),
		Address:   strings.TrimSpace(address),
		IsDefault: len(p.Addresses) == 0,
	}
	next := append(append([]domain.CustomerAddress(nil), p.Addresses...), addr)

	if err := s.repo.ReplaceAddresses(ctx, p.ID, next); err != nil {
		return nil, errors.Wrap(err, "add address")
	}
	zap.L().Info("address added", zap.Int64("id", addr.ID), zap.String("label", addr.Label), zap.Bool("default", addr.IsDefault))
	return s.GetPreferences(ctx)
}

// RemoveAddress deletes an address. Removing the default while other
// addresses remain promotes the first remaining entry so a non-empty
// book always keeps exactly one default.
func (s *Service) RemoveAddress(ctx context.Context, id int64) (*domain.CustomerProfile, error) {
	p, err := s.repo.GetProfile(ctx)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "load preferences")
	}

	removedDefault := false
	next := make([]domain.CustomerAddress, 0, len(p.Addresses))
	found := false
	for _, addr := range p.Addresses {
		if addr.ID == id {
			found = true
			removedDefault = addr.IsDefault
			continue
		}
		next = append(next, addr)
	}
	if !found {
		return nil, repository.ErrNotFound
	}
	if removedDefault && len(next) > 0 {
		next[0].IsDefault = true
	}

	if err := s.repo.ReplaceAddresses(ctx, p.ID, next); err != nil {
		return nil, errors.Wrap(err, "remove address")
	}
	zap.L().Info("address removed", zap.Int64("id", id), zap.Bool("defaultReassigned", removedDefault && len(next) > 0))
	return s.GetPreferences(ctx)
}

// SetDefaultAddress marks exactly one address as default in a single
// atomic write.
func (s *Service) SetDefaultAddress(ctx context.Context, id int64) (*domain.CustomerProfile, error) {
	p, err := s.repo.GetProfile(ctx)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "load preferences")
	}

	found := false
	next := make([]domain.CustomerAddress, 0, len(p.Addresses))
	for _, addr := range p.Addresses {
		addr.IsDefault = addr.ID == id
		if addr.IsDefault {
			found = true
		}
		next = append(next, addr)
	}
	if !found {
		return nil, repository.ErrNotFound
	}

	if err := s.repo.ReplaceAddresses(ctx, p.ID, next); err != nil {
		return nil, errors.Wrap(err, "set default address")
	}
	return s.GetPreferences(ctx)
}

// DefaultAddress returns the default entry of a profile, if any.
func DefaultAddress(p *domain.CustomerProfile) *domain.CustomerAddress {
	for i := range p.Addresses {
		if p.Addresses[i].IsDefault {
			return &p.Addresses[i]
		}
	}
	return nil
}

func (s *Service) ensureProfile(ctx context.Context) (*domain.CustomerProfile, error) {
	p, err := s.repo.GetProfile(ctx)
	if errors.Is(err, repository.ErrNotFound) {
		p = &domain.CustomerProfile{ID: common.UUIDint64()}
		if err := s.repo.SaveProfile(ctx, p); err != nil {
			return nil, errors.Wrap(err, "create preferences")
		}
		return p, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "load preferences")
	}
	return p, nil
}
