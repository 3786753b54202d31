package validators

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-inbox-pilot/models"
)

// Settings-specific field name constants for field-level scoping.
const (
	// FieldTone targets the AI assistant tone slider of a settings update.
	FieldTone = "tone"

	// FieldMaxReplyLen targets the maximum generated reply length of a settings update.
	FieldMaxReplyLen = "max_reply_len"

	// FieldMembers targets the workspace member list of a settings update.
	FieldMembers = "members"

	// FieldMemberRole targets the role field of a single workspace member.
	FieldMemberRole = "member_role"

	// FieldMemberEmail targets the email field of a single workspace member.
	FieldMemberEmail = "member_email"
)

// Bounds for the AI assistant numeric preferences.
const (
	MinTone        = 0
	MaxTone        = 100
	MinReplyLength = 80
	MaxReplyLength = 800
)

// allowedMemberRoles is the exhaustive set of workspace roles accepted by
// the validator. Any role not present in this slice is considered invalid.
var allowedMemberRoles = []string{
	models.RoleOwner,
	models.RoleAdmin,
	models.RoleEditor,
}

// SettingsValidator implements the Validator interface for the settings
// domain models: SettingsUpdate and Member.
//
// A settings update is a partial document: nil fields mean "leave
// unchanged" and are skipped, so only the fields the client actually sent
// are checked. A single invalid field rejects the whole update.
type SettingsValidator struct {
}

// NewSettingsValidator constructs a new SettingsValidator
// and returns it as the Validator interface.
func NewSettingsValidator() Validator {
	return &SettingsValidator{}
}

// Validate dispatches validation to the appropriate type-specific method
// based on the dynamic type of obj. Both value and pointer forms of each
// supported model are accepted.
//
// Supported types:
//   - models.SettingsUpdate / *models.SettingsUpdate
//   - models.Member / *models.Member
//
// Returns ErrUnsupportedType if obj does not match any known model.
func (v *SettingsValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.SettingsUpdate:
		return v.validateSettingsUpdate(ctx, value, fields...)
	case *models.SettingsUpdate:
		return v.validateSettingsUpdate(ctx, *value, fields...)

	case models.Member:
		return v.validateMember(ctx, value, fields...)
	case *models.Member:
		return v.validateMember(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

// isValidMemberRole reports whether role is one of the recognized workspace
// roles defined in allowedMemberRoles.
func isValidMemberRole(role string) bool {
	for _, r := range allowedMemberRoles {
		if role == r {
			return true
		}
	}
	return false
}

// validateSettingsUpdate validates a partial settings update.
//
// Default validated fields (when none specified):
// Email, Tone, MaxReplyLen, Members.
//
// Nil fields are skipped; string preferences carry no constraints and the
// integration list accepts any shape, so neither is validated here.
//
// Returns the first encountered validation error or nil.
func (v *SettingsValidator) validateSettingsUpdate(ctx context.Context, update models.SettingsUpdate, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail, FieldTone, FieldMaxReplyLen, FieldMembers}
	}

	for _, f := range fields {
		switch f {
		case FieldEmail:
			if update.Email != nil && !isValidEmail(*update.Email) {
				return ErrInvalidEmail
			}
		case FieldTone:
			if update.Tone != nil && (*update.Tone < MinTone || *update.Tone > MaxTone) {
				return ErrToneOutOfRange
			}
		case FieldMaxReplyLen:
			if update.MaxReplyLen != nil && (*update.MaxReplyLen < MinReplyLength || *update.MaxReplyLen > MaxReplyLength) {
				return ErrReplyLengthOutOfRange
			}
		case FieldMembers:
			if update.Members == nil {
				continue
			}
			for i, member := range *update.Members {
				if err := v.validateMember(ctx, member); err != nil {
					return fmt.Errorf("validation error at index %d: %w", i, err)
				}
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateMember validates a single workspace member entry.
//
// Default validated fields: MemberRole, MemberEmail.
//
// Member IDs and display names carry no constraints. An empty role is
// rejected here: callers substitute the default role before validating.
func (v *SettingsValidator) validateMember(ctx context.Context, member models.Member, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldMemberRole, FieldMemberEmail}
	}

	for _, f := range fields {
		switch f {
		case FieldMemberRole:
			if !isValidMemberRole(member.Role) {
				return ErrInvalidMemberRole
			}
		case FieldMemberEmail:
			if !isValidEmail(member.Email) {
				return ErrInvalidMemberEmail
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
