package store

import (
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-inbox-pilot/models"
)

// userColumns is the full column list of the authuser table in scan order.
var userColumns = []string{
	"user_id",
	"email",
	"name",
	"password_hash",
	"role",
	"is_active",
	"created_at",
	"updated_at",
}

// settingsColumns is the full column list of the settings table in scan
// order. The order mirrors the field order of [models.Settings].
var settingsColumns = []string{
	"user_id",
	"name",
	"email",
	"tz",
	"notif_new",
	"notif_vip",
	"notif_ai",
	"two_fa",
	"ws_name",
	"members",
	"tone",
	"brand_voice",
	"example_replies",
	"avoid_words",
	"ai_auto_reply",
	"max_reply_len",
	"profanity_filter",
	"keywords",
	"integrations",
	"plan",
	"billing_cycle",
	"payment_method",
	"dark_mode",
	"language",
	"dt_format",
	"default_view",
	"created_at",
	"updated_at",
}

// queries builds the parameterised SQL statements used by the repositories.
// The placeholder format is fixed at construction time: dollar placeholders
// for PostgreSQL, question marks for SQLite.
type queries struct {
	builder sq.StatementBuilderType
}

// newQueries constructs a query builder bound to the given placeholder format.
func newQueries(format sq.PlaceholderFormat) queries {
	return queries{builder: sq.StatementBuilder.PlaceholderFormat(format)}
}

// buildCreateUserQuery builds the INSERT for a new user account. The query
// returns the full stored row so the caller receives the server-assigned
// user_id along with the canonical column values.
func (q queries) buildCreateUserQuery(user models.User) (string, []any, error) {
	query, args, err := q.builder.
		Insert(user.TableName()).
		Columns("email", "name", "password_hash", "role", "is_active", "created_at", "updated_at").
		Values(user.Email, user.Name, user.PasswordHash, user.Role, user.IsActive, user.CreatedAt, user.UpdatedAt).
		Suffix("RETURNING " + strings.Join(userColumns, ", ")).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// buildFindUserByEmailQuery builds the SELECT that looks an account up by
// its canonical email.
func (q queries) buildFindUserByEmailQuery(email string) (string, []any, error) {
	query, args, err := q.builder.
		Select(userColumns...).
		From(models.User{}.TableName()).
		Where(sq.Eq{"email": email}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// buildGetSettingsQuery builds the SELECT of a full settings document by
// owner id.
func (q queries) buildGetSettingsQuery(userID int64) (string, []any, error) {
	query, args, err := q.builder.
		Select(settingsColumns...).
		From(models.Settings{}.TableName()).
		Where(sq.Eq{"user_id": userID}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// buildInsertSettingsQuery builds the INSERT of a freshly materialized
// settings document. The ON CONFLICT clause turns a concurrent first access
// into a silent no-op so the earlier document always wins.
func (q queries) buildInsertSettingsQuery(settings models.Settings) (string, []any, error) {
	query, args, err := q.builder.
		Insert(settings.TableName()).
		Columns(settingsColumns...).
		Values(
			settings.UserID,
			settings.Name,
			settings.Email,
			settings.Timezone,
			settings.NotifNew,
			settings.NotifVIP,
			settings.NotifAI,
			settings.TwoFA,
			settings.WorkspaceName,
			settings.Members,
			settings.Tone,
			settings.BrandVoice,
			settings.ExampleReplies,
			settings.AvoidWords,
			settings.AIAutoReply,
			settings.MaxReplyLen,
			settings.ProfanityFilter,
			settings.Keywords,
			settings.Integrations,
			settings.Plan,
			settings.BillingCycle,
			settings.PaymentMethod,
			settings.DarkMode,
			settings.Language,
			settings.DateTimeFormat,
			settings.DefaultView,
			settings.CreatedAt,
			settings.UpdatedAt,
		).
		Suffix("ON CONFLICT (user_id) DO NOTHING").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// buildUpdateSettingsQuery builds a dynamic UPDATE applying only the non-nil
// fields of update. The updated_at column is always stamped, even for an
// empty patch, and the full updated row is returned so the caller sees the
// document exactly as stored.
func (q queries) buildUpdateSettingsQuery(userID int64, update models.SettingsUpdate, now time.Time) (string, []any, error) {
	builder := q.builder.Update(models.Settings{}.TableName())
	for _, a := range settingsAssignments(update) {
		builder = builder.Set(a.column, a.value)
	}

	query, args, err := builder.
		Set("updated_at", now).
		Where(sq.Eq{"user_id": userID}).
		Suffix("RETURNING " + strings.Join(settingsColumns, ", ")).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// assignment is one SET clause of a dynamic UPDATE.
type assignment struct {
	column string
	value  any
}

// settingsAssignments maps the non-nil fields of a partial settings update to
// their column assignments. The order is fixed (struct declaration order) so
// generated placeholders are deterministic.
func settingsAssignments(update models.SettingsUpdate) []assignment {
	out := make([]assignment, 0, len(settingsColumns))

	if update.Name != nil {
		out = append(out, assignment{"name", *update.Name})
	}
	if update.Email != nil {
		out = append(out, assignment{"email", *update.Email})
	}
	if update.Timezone != nil {
		out = append(out, assignment{"tz", *update.Timezone})
	}
	if update.NotifNew != nil {
		out = append(out, assignment{"notif_new", *update.NotifNew})
	}
	if update.NotifVIP != nil {
		out = append(out, assignment{"notif_vip", *update.NotifVIP})
	}
	if update.NotifAI != nil {
		out = append(out, assignment{"notif_ai", *update.NotifAI})
	}
	if update.TwoFA != nil {
		out = append(out, assignment{"two_fa", *update.TwoFA})
	}
	if update.WorkspaceName != nil {
		out = append(out, assignment{"ws_name", *update.WorkspaceName})
	}
	if update.Members != nil {
		out = append(out, assignment{"members", *update.Members})
	}
	if update.Tone != nil {
		out = append(out, assignment{"tone", *update.Tone})
	}
	if update.BrandVoice != nil {
		out = append(out, assignment{"brand_voice", *update.BrandVoice})
	}
	if update.ExampleReplies != nil {
		out = append(out, assignment{"example_replies", *update.ExampleReplies})
	}
	if update.AvoidWords != nil {
		out = append(out, assignment{"avoid_words", *update.AvoidWords})
	}
	if update.AIAutoReply != nil {
		out = append(out, assignment{"ai_auto_reply", *update.AIAutoReply})
	}
	if update.MaxReplyLen != nil {
		out = append(out, assignment{"max_reply_len", *update.MaxReplyLen})
	}
	if update.ProfanityFilter != nil {
		out = append(out, assignment{"profanity_filter", *update.ProfanityFilter})
	}
	if update.Keywords != nil {
		out = append(out, assignment{"keywords", *update.Keywords})
	}
	if update.Integrations != nil {
		out = append(out, assignment{"integrations", *update.Integrations})
	}
	if update.Plan != nil {
		out = append(out, assignment{"plan", *update.Plan})
	}
	if update.BillingCycle != nil {
		out = append(out, assignment{"billing_cycle", *update.BillingCycle})
	}
	if update.PaymentMethod != nil {
		out = append(out, assignment{"payment_method", *update.PaymentMethod})
	}
	if update.DarkMode != nil {
		out = append(out, assignment{"dark_mode", *update.DarkMode})
	}
	if update.Language != nil {
		out = append(out, assignment{"language", *update.Language})
	}
	if update.DateTimeFormat != nil {
		out = append(out, assignment{"dt_format", *update.DateTimeFormat})
	}
	if update.DefaultView != nil {
		out = append(out, assignment{"default_view", *update.DefaultView})
	}

	return out
}
