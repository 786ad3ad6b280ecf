package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/listen/internal/common"
	"github.com/dmitrijs2005/listen/internal/logging"
	"github.com/dmitrijs2005/listen/internal/models"
)

// StatsSource yields the live stats of the entry collection.
type StatsSource interface {
	Snapshot() models.StatsSnapshot
}

// ProfileService manages the single profile record and its avatar.
//
// The stats fields of the stored profile are written on every Save so older
// readers of the record still find them, but Load always replaces them with
// live values. Nothing saves the profile just because entries changed.
type ProfileService struct {
	store  Store
	stats  StatsSource
	logger logging.Logger
	now    func() time.Time
}

func NewProfileService(store Store, stats StatsSource, logger logging.Logger, now func() time.Time) *ProfileService {
	if logger == nil {
		logger = logging.Nop{}
	}
	if now == nil {
		now = time.Now
	}
	return &ProfileService{store: store, stats: stats, logger: logger.With("module", "profile"), now: now}
}

// Create builds the onboarding profile, member since now, and saves it.
func (s *ProfileService) Create(ctx context.Context, name, email, bio string, wt models.WritingTime, reminders bool) models.UserProfile {
	return s.Save(ctx, models.NewUserProfile(name, email, bio, wt, reminders, s.now()))
}

// Load returns the stored profile with live stats. It returns an error
// matching common.ErrorNotFound when no profile exists and common.ErrDecode
// when the stored record is unreadable; callers treat both as "no profile".
func (s *ProfileService) Load(ctx context.Context) (models.UserProfile, error) {
	var p models.UserProfile
	_, err := s.store.Read(ctx, common.ProfileKey, func(b []byte) error {
		p = models.UserProfile{}
		return json.Unmarshal(b, &p)
	})
	if err != nil {
		if errors.Is(err, common.ErrDecode) {
			s.logger.Warn(ctx, "stored profile unreadable", "error", err)
		} else {
			s.logger.Debug(ctx, "profile not loaded", "error", err)
		}
		return models.UserProfile{}, fmt.Errorf("profile: %w", err)
	}
	return s.withLiveStats(p), nil
}

// Save stamps the current stats onto p and writes it to both stores. A
// writing time outside the enumerated set is stored as morning, so the
// record always decodes again. The saved value is returned.
func (s *ProfileService) Save(ctx context.Context, p models.UserProfile) models.UserProfile {
	if !p.PreferredWritingTime.Valid() {
		s.logger.Warn(ctx, "invalid writing time replaced", "value", p.PreferredWritingTime)
		p.PreferredWritingTime = models.WritingTimeMorning
	}
	p = s.withLiveStats(p)

	data, err := json.Marshal(p)
	if err != nil {
		s.logger.Error(ctx, "failed to encode profile", "error", err)
		return p
	}
	if err := s.store.Put(ctx, common.ProfileKey, data).Err(); err != nil {
		s.logger.Error(ctx, "profile not persisted", "error", err)
	}
	return p
}

// Clear removes the profile and its avatar together.
func (s *ProfileService) Clear(ctx context.Context) {
	if err := s.store.Remove(ctx, common.ProfileKey, common.AvatarKey).Err(); err != nil {
		s.logger.Error(ctx, "profile not cleared", "error", err)
		return
	}
	s.logger.Info(ctx, "profile cleared")
}

// SaveAvatar stores the encoded image as is.
func (s *ProfileService) SaveAvatar(ctx context.Context, image []byte) {
	if err := s.store.Put(ctx, common.AvatarKey, image).Err(); err != nil {
		s.logger.Error(ctx, "avatar not persisted", "error", err)
	}
}

// LoadAvatar returns the stored image bytes, or an error matching
// common.ErrorNotFound.
func (s *ProfileService) LoadAvatar(ctx context.Context) ([]byte, error) {
	var image []byte
	_, err := s.store.Read(ctx, common.AvatarKey, func(b []byte) error {
		image = bytes.Clone(b)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("avatar: %w", err)
	}
	if len(image) == 0 {
		return nil, fmt.Errorf("avatar: %w", common.ErrorNotFound)
	}
	return image, nil
}

func (s *ProfileService) ClearAvatar(ctx context.Context) {
	if err := s.store.Remove(ctx, common.AvatarKey).Err(); err != nil {
		s.logger.Error(ctx, "avatar not cleared", "error", err)
	}
}

func (s *ProfileService) withLiveStats(p models.UserProfile) models.UserProfile {
	if s.stats == nil {
		return p
	}
	return p.WithStats(s.stats.Snapshot())
}
