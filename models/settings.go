// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"strconv"
	"time"
)

// Settings is the per-user configuration document of the inbox workspace.
// Exactly one document exists per user; it is created from defaults on first
// access and updated field-by-field through partial updates.
//
// JSON field names follow the wire contract consumed by the web client and
// must not be renamed.
type Settings struct {
	// UserID is the owner of the document and its stable identity.
	UserID int64 `json:"user_id"`

	// Account

	// Name is the display name shown in the account section.
	Name string `json:"name"`
	// Email is the contact email of the account holder.
	Email string `json:"email"`
	// Timezone is an IANA zone name used for rendering timestamps.
	Timezone string `json:"tz"`
	// NotifNew toggles notifications for new incoming messages.
	NotifNew bool `json:"notifNew"`
	// NotifVIP toggles notifications for messages from VIP leads.
	NotifVIP bool `json:"notifVip"`
	// NotifAI toggles notifications for failed automatic replies.
	NotifAI bool `json:"notifAi"`
	// TwoFA reports whether two-factor authentication is requested.
	TwoFA bool `json:"twoFA"`

	// Workspace

	WorkspaceName string  `json:"wsName"`
	Members       Members `json:"members"`

	// AI assistant

	// Tone sets the reply tone on a 0..100 scale.
	Tone int `json:"tone"`
	// BrandVoice is free-form guidance for generated replies.
	BrandVoice     string `json:"brandVoice"`
	ExampleReplies string `json:"exampleReplies"`
	AvoidWords     string `json:"avoidWords"`
	AIAutoReply    bool   `json:"aiAutoReply"`
	// MaxReplyLen caps generated replies, 80..800 characters.
	MaxReplyLen     int      `json:"maxReplyLen"`
	ProfanityFilter bool     `json:"profanity"`
	Keywords        Keywords `json:"keywords"`

	// Integrations

	Integrations Integrations `json:"integrations"`

	// Billing

	Plan          string `json:"plan"`
	BillingCycle  string `json:"cycle"`
	PaymentMethod string `json:"paymentMethod"`

	// Application preferences

	DarkMode       bool   `json:"darkMode"`
	Language       string `json:"language"`
	DateTimeFormat string `json:"dtFormat"`
	DefaultView    string `json:"defaultView"`

	// CreatedAt is the timestamp when the document was first materialized.
	CreatedAt time.Time `json:"created_at"`
	// UpdatedAt is the timestamp of the last partial update.
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the Settings model.
func (s Settings) TableName() string {
	return "settings"
}

// DefaultSettings builds the initial settings document for a user.
// The owner becomes the sole workspace member; the display name falls back
// to the local part of the email when the account has no explicit name.
func DefaultSettings(user User, now time.Time) Settings {
	display := user.Name
	if display == "" {
		display = user.LocalPart()
	}

	return Settings{
		UserID:   user.UserID,
		Name:     user.Name,
		Email:    user.Email,
		Timezone: "UTC",
		NotifNew: true,
		NotifVIP: true,
		NotifAI:  false,
		TwoFA:    false,

		WorkspaceName: "Default Workspace",
		Members: Members{
			{
				ID:    strconv.FormatInt(user.UserID, 10),
				Name:  display,
				Email: user.Email,
				Role:  RoleOwner,
			},
		},

		Tone:            50,
		BrandVoice:      "Friendly, concise, helpful. Avoid jargon.",
		ExampleReplies:  "Thanks for reaching out! Here’s a quick answer…",
		AvoidWords:      "guarantee, promise, 100%",
		AIAutoReply:     true,
		MaxReplyLen:     280,
		ProfanityFilter: true,
		Keywords:        Keywords{"DEMO", "GUIDE", "PRICING"},

		Integrations: Integrations{
			{Name: "Instagram", Key: "instagram", Connected: true},
			{Name: "TikTok", Key: "tiktok", Connected: false},
			{Name: "Facebook", Key: "facebook", Connected: false},
			{Name: "Shopify", Key: "shopify", Connected: false},
		},

		Plan:          "Pro",
		BillingCycle:  "Monthly",
		PaymentMethod: "Visa •••• 4242",

		DarkMode:       true,
		Language:       "English",
		DateTimeFormat: "YYYY-MM-DD, 24h",
		DefaultView:    "Unified Inbox",

		CreatedAt: now,
		UpdatedAt: now,
	}
}
