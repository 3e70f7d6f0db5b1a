package deal

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"keydeals/internal/shared/biztime"
	"keydeals/internal/shared/id"
)

var hexColorPattern = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// Type is the immutable lookup a deal may reference: a named category with
// a display color (e.g. "Transponder Keys", "#1e88e5").
type Type struct {
	typeID    uint
	sid       string
	name      string
	color     string
	createdAt time.Time
}

// NewType creates a deal type lookup entry.
func NewType(name, color string) (*Type, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return nil, fmt.Errorf("deal type name is required")
	}
	if color != "" && !hexColorPattern.MatchString(color) {
		return nil, fmt.Errorf("color must be a #rrggbb hex value")
	}

	return &Type{
		sid:       id.MustGenerateWithPrefix(id.PrefixDealType, id.DefaultLength),
		name:      trimmed,
		color:     color,
		createdAt: biztime.NowUTC(),
	}, nil
}

// ReconstructType rebuilds a deal type from persistence.
func ReconstructType(typeID uint, sid, name, color string, createdAt time.Time) (*Type, error) {
	if typeID == 0 {
		return nil, fmt.Errorf("deal type ID cannot be zero")
	}
	return &Type{
		typeID:    typeID,
		sid:       sid,
		name:      name,
		color:     color,
		createdAt: createdAt,
	}, nil
}

func (t *Type) ID() uint {
	return t.typeID
}

func (t *Type) SID() string {
	return t.sid
}

func (t *Type) Name() string {
	return t.name
}

func (t *Type) Color() string {
	return t.color
}

func (t *Type) CreatedAt() time.Time {
	return t.createdAt
}

// SetID sets the deal type ID (only for persistence layer use)
func (t *Type) SetID(typeID uint) error {
	if t.typeID != 0 {
		return fmt.Errorf("deal type ID is already set")
	}
	if typeID == 0 {
		return fmt.Errorf("deal type ID cannot be zero")
	}
	t.typeID = typeID
	return nil
}
