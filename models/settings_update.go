package models

// SettingsUpdate is a partial update of the settings document.
// A nil field means "leave unchanged"; only non-nil fields are written.
// JSON field names mirror [Settings] so the client can send back any subset
// of the document it previously received.
type SettingsUpdate struct {
	// Account
	Name     *string `json:"name"`
	Email    *string `json:"email"`
	Timezone *string `json:"tz"`
	NotifNew *bool   `json:"notifNew"`
	NotifVIP *bool   `json:"notifVip"`
	NotifAI  *bool   `json:"notifAi"`
	TwoFA    *bool   `json:"twoFA"`

	// Workspace
	WorkspaceName *string  `json:"wsName"`
	Members       *Members `json:"members"`

	// AI assistant
	Tone            *int      `json:"tone"`
	BrandVoice      *string   `json:"brandVoice"`
	ExampleReplies  *string   `json:"exampleReplies"`
	AvoidWords      *string   `json:"avoidWords"`
	AIAutoReply     *bool     `json:"aiAutoReply"`
	MaxReplyLen     *int      `json:"maxReplyLen"`
	ProfanityFilter *bool     `json:"profanity"`
	Keywords        *Keywords `json:"keywords"`

	// Integrations
	Integrations *Integrations `json:"integrations"`

	// Billing
	Plan          *string `json:"plan"`
	BillingCycle  *string `json:"cycle"`
	PaymentMethod *string `json:"paymentMethod"`

	// Application preferences
	DarkMode       *bool   `json:"darkMode"`
	Language       *string `json:"language"`
	DateTimeFormat *string `json:"dtFormat"`
	DefaultView    *string `json:"defaultView"`
}
