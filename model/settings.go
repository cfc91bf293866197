package model

import "fmt"

// Settings holds the per-user dashboard preferences
type Settings struct {
	Profile       ProfileSettings      `json:"profile"`
	Notifications NotificationSettings `json:"notifications"`
	Preferences   PreferenceSettings   `json:"preferences"`
	Security      SecuritySettings     `json:"security"`
}

type ProfileSettings struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Company    string `json:"company"`
	Role       string `json:"role"`
	Department string `json:"department"`
}

type NotificationSettings struct {
	EmailNotifications bool `json:"emailNotifications"`
	ContractExpiry     bool `json:"contractExpiry"`
	RiskAlerts         bool `json:"riskAlerts"`
	WeeklyReports      bool `json:"weeklyReports"`
	RenewalReminders   bool `json:"renewalReminders"`
}

type PreferenceSettings struct {
	Theme      string `json:"theme"`      // light, dark, auto
	Language   string `json:"language"`   // en, es, fr, de
	Timezone   string `json:"timezone"`   // UTC, EST, PST, GMT
	DateFormat string `json:"dateFormat"` // MM/DD/YYYY, DD/MM/YYYY, YYYY-MM-DD
}

type SecuritySettings struct {
	TwoFactorAuth  bool `json:"twoFactorAuth"`
	SessionTimeout int  `json:"sessionTimeout"` // minutes
	PasswordExpiry int  `json:"passwordExpiry"` // days
}

// DefaultSettings returns the settings a user starts with
func DefaultSettings(username string) Settings {
	return Settings{
		Profile: ProfileSettings{
			Name: username,
			Role: "Contract Manager",
		},
		Notifications: NotificationSettings{
			EmailNotifications: true,
			ContractExpiry:     true,
			RiskAlerts:         true,
			WeeklyReports:      false,
			RenewalReminders:   true,
		},
		Preferences: PreferenceSettings{
			Theme:      "light",
			Language:   "en",
			Timezone:   "UTC",
			DateFormat: "MM/DD/YYYY",
		},
		Security: SecuritySettings{
			SessionTimeout: 30,
			PasswordExpiry: 90,
		},
	}
}

var (
	validThemes      = []string{"light", "dark", "auto"}
	validLanguages   = []string{"en", "es", "fr", "de"}
	validTimezones   = []string{"UTC", "EST", "PST", "GMT"}
	validDateFormats = []string{"MM/DD/YYYY", "DD/MM/YYYY", "YYYY-MM-DD"}
)

// Validate checks enumerated preference values and numeric ranges
func (s *Settings) Validate() error {
	if !oneOf(s.Preferences.Theme, validThemes) {
		return fmt.Errorf("invalid theme %q", s.Preferences.Theme)
	}
	if !oneOf(s.Preferences.Language, validLanguages) {
		return fmt.Errorf("invalid language %q", s.Preferences.Language)
	}
	if !oneOf(s.Preferences.Timezone, validTimezones) {
		return fmt.Errorf("invalid timezone %q", s.Preferences.Timezone)
	}
	if !oneOf(s.Preferences.DateFormat, validDateFormats) {
		return fmt.Errorf("invalid date format %q", s.Preferences.DateFormat)
	}
	if s.Security.SessionTimeout < 5 || s.Security.SessionTimeout > 480 {
		return fmt.Errorf("session timeout must be between 5 and 480 minutes")
	}
	if s.Security.PasswordExpiry < 0 {
		return fmt.Errorf("password expiry must not be negative")
	}
	return nil
}

func oneOf(v string, allowed []string) bool {
	for _, a := range allowed {
		if a == v {
			return true
		}
	}
	return false
}
