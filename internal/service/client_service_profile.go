// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/qr-facil/internal/logger"
	"github.com/MKhiriev/qr-facil/internal/store"
)

type profileService struct {
	repo  store.ProfileRepository
	nudge Nudger

	logger *logger.Logger
}

func NewProfileService(repo store.ProfileRepository, nudge Nudger, logger *logger.Logger) ProfileService {
	return &profileService{
		repo:   repo,
		nudge:  nudge,
		logger: logger,
	}
}

func (s *profileService) SetPremium(ctx context.Context, scope string, premium bool) error {
	if scope == "" {
		return ErrEmptyScope
	}

	if _, err := s.repo.SetPremium(ctx, scope, premium); err != nil {
		return fmt.Errorf("set premium flag: %w", err)
	}

	s.logger.Info().Str("func", "profileService.SetPremium").Bool("premium", premium).Msg("premium flag changed")
	s.nudge.Nudge()
	return nil
}

// IsPremium reports the flag of scope. Accounts without a profile are not
// premium.
func (s *profileService) IsPremium(ctx context.Context, scope string) (bool, error) {
	if scope == "" {
		return false, nil
	}

	profile, err := s.repo.Get(ctx, scope)
	if errors.Is(err, store.ErrProfileNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("get profile: %w", err)
	}
	return profile.Premium, nil
}
