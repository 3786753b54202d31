package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// Workspace member roles. Role names are part of the wire contract and are
// validated against this exact set on partial updates.
const (
	RoleOwner  = "Owner"
	RoleAdmin  = "Admin"
	RoleEditor = "Editor"
)

// DefaultMemberRole is assigned when a member entry omits the role.
const DefaultMemberRole = RoleEditor

// Member is a single workspace member entry inside the settings document.
type Member struct {
	// ID is the identifier of the member, the stringified user id for the owner.
	ID string `json:"id"`
	// Name is the display name of the member.
	Name string `json:"name"`
	// Email is the contact email of the member.
	Email string `json:"email"`
	// Role is one of Owner, Admin or Editor.
	Role string `json:"role"`
}

// Integration describes the connection state of one external channel.
type Integration struct {
	// Name is the human-readable channel name, e.g. "Instagram".
	Name string `json:"name"`
	// Key is the stable machine identifier of the channel, e.g. "instagram".
	Key string `json:"key"`
	// Connected reports whether the channel is linked to the workspace.
	Connected bool `json:"connected"`
}

// Members is the workspace member list stored as a single JSON column.
type Members []Member

// Keywords is the auto-reply trigger list stored as a single JSON column.
type Keywords []string

// Integrations is the channel connection list stored as a single JSON column.
type Integrations []Integration

// Value implements [driver.Valuer]; nil slices are stored as empty JSON arrays
// so the column never holds SQL NULL.
func (m Members) Value() (driver.Value, error) {
	return jsonColumnValue(m)
}

// Scan implements [sql.Scanner].
func (m *Members) Scan(src any) error {
	return jsonColumnScan(src, m)
}

// Value implements [driver.Valuer]; nil slices are stored as empty JSON arrays.
func (k Keywords) Value() (driver.Value, error) {
	return jsonColumnValue(k)
}

// Scan implements [sql.Scanner].
func (k *Keywords) Scan(src any) error {
	return jsonColumnScan(src, k)
}

// Value implements [driver.Valuer]; nil slices are stored as empty JSON arrays.
func (i Integrations) Value() (driver.Value, error) {
	return jsonColumnValue(i)
}

// Scan implements [sql.Scanner].
func (i *Integrations) Scan(src any) error {
	return jsonColumnScan(src, i)
}

func jsonColumnValue(v any) (driver.Value, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("error serializing value for JSON column: %w", err)
	}
	// Text, not []byte: the Postgres driver sends []byte as bytea which does
	// not coerce to jsonb.
	if string(data) == "null" {
		return "[]", nil
	}
	return string(data), nil
}

func jsonColumnScan(src any, dst any) error {
	switch value := src.(type) {
	case nil:
		return nil
	case []byte:
		return json.Unmarshal(value, dst)
	case string:
		return json.Unmarshal([]byte(value), dst)
	default:
		return fmt.Errorf("unsupported source type %T for JSON column", src)
	}
}
