package profile

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// ErrProfileNotFound is returned when no profile matches the requested name,
// or when no profile is marked active.
var ErrProfileNotFound = errors.New("profile not found")

// Store persists profiles and their mod lists.
type Store struct {
	db *gorm.DB
}

// NewStore creates a new profile store on top of an established connection.
func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

// Migrate creates or updates the profile tables.
func (s *Store) Migrate() error {
	if err := s.db.AutoMigrate(&Profile{}, &Mod{}); err != nil {
		return fmt.Errorf("failed to migrate profile schema: %w", err)
	}
	return nil
}

// Create inserts a new profile. The first profile ever created becomes the
// active one automatically.
func (s *Store) Create(ctx context.Context, p *Profile) error {
	var count int64
	if err := s.db.WithContext(ctx).Model(&Profile{}).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		p.Active = true
	}
	return s.db.WithContext(ctx).Create(p).Error
}

// Get returns the profile with the given name, mods in insertion order.
func (s *Store) Get(ctx context.Context, name string) (*Profile, error) {
	var p Profile
	err := s.db.WithContext(ctx).
		Preload("Mods", func(db *gorm.DB) *gorm.DB { return db.Order("position") }).
		Where("name = ?", name).
		First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrProfileNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Active returns the currently active profile, mods in insertion order.
func (s *Store) Active(ctx context.Context) (*Profile, error) {
	var p Profile
	err := s.db.WithContext(ctx).
		Preload("Mods", func(db *gorm.DB) *gorm.DB { return db.Order("position") }).
		Where("active = ?", true).
		First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrProfileNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// SetActive marks the named profile active and deactivates all others.
func (s *Store) SetActive(ctx context.Context, name string) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var p Profile
		if err := tx.Where("name = ?", name).First(&p).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrProfileNotFound
			}
			return err
		}
		if err := tx.Model(&Profile{}).Where("active = ?", true).Update("active", false).Error; err != nil {
			return err
		}
		return tx.Model(&p).Update("active", true).Error
	})
}

// List returns all profiles without their mod lists.
func (s *Store) List(ctx context.Context) ([]Profile, error) {
	var profiles []Profile
	if err := s.db.WithContext(ctx).Order("name").Find(&profiles).Error; err != nil {
		return nil, err
	}
	return profiles, nil
}

// Delete removes the named profile and its mods.
func (s *Store) Delete(ctx context.Context, name string) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var p Profile
		if err := tx.Where("name = ?", name).First(&p).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrProfileNotFound
			}
			return err
		}
		if err := tx.Where("profile_id = ?", p.ID).Delete(&Mod{}).Error; err != nil {
			return err
		}
		return tx.Delete(&p).Error
	})
}

// Save persists the profile's fields and replaces its stored mod list with
// the in-memory one. Callers invoke it once after a batch of add operations.
func (s *Store) Save(ctx context.Context, p *Profile) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Mods").Save(p).Error; err != nil {
			return err
		}
		if err := tx.Where("profile_id = ?", p.ID).Delete(&Mod{}).Error; err != nil {
			return err
		}
		for i := range p.Mods {
			p.Mods[i].ID = 0
			p.Mods[i].ProfileID = p.ID
			p.Mods[i].Position = i
		}
		if len(p.Mods) == 0 {
			return nil
		}
		return tx.Create(&p.Mods).Error
	})
}
