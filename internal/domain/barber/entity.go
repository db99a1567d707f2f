package barber

import (
	"strings"
	"time"
	"unicode/utf8"

	"styleapp-backend/internal/pkg/errs"

	"github.com/google/uuid"
)

const MaxDisplayNameLength = 120

var ErrDisplayNameTooLong = errs.Mark(errs.New("display name exceeds maximum length"), errs.ErrValidation)

// Profile is the server-side availability record of a barber. A barber
// without a stored profile is treated as active.
type Profile struct {
	id          uuid.UUID
	displayName string
	isActive    bool
	updatedAt   time.Time
}

func NewProfile(id uuid.UUID, displayName string, isActive bool, now time.Time) (*Profile, error) {
	name := strings.TrimSpace(displayName)
	if utf8.RuneCountInString(name) > MaxDisplayNameLength {
		return nil, ErrDisplayNameTooLong
	}
	return &Profile{id: id, displayName: name, isActive: isActive, updatedAt: now}, nil
}

func ReconstructProfile(id uuid.UUID, displayName string, isActive bool, updatedAt time.Time) *Profile {
	return &Profile{id: id, displayName: displayName, isActive: isActive, updatedAt: updatedAt}
}

func (p *Profile) ID() uuid.UUID        { return p.id }
func (p *Profile) DisplayName() string  { return p.displayName }
func (p *Profile) IsActive() bool       { return p.isActive }
func (p *Profile) UpdatedAt() time.Time { return p.updatedAt }

// IsAvailable treats a missing profile as active.
func IsAvailable(p *Profile) bool {
	return p == nil || p.isActive
}
