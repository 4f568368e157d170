package nav

// Settings holds the global navigation flags. A single Settings value is
// passed to New and shared by every container the Navigator creates.
type Settings struct {
	// ForceNavigation keeps navigation visuals shown while the pointer is in
	// control.
	ForceNavigation bool
	// IgnoreDisabled lets disabled elements receive navigation.
	IgnoreDisabled bool
	// StopNextPreviousPropagation stops Next/Previous at the first container
	// whose hook handles it.
	StopNextPreviousPropagation bool
	// RemoveWidgetOnReturn makes an unhandled Back return to the parent.
	RemoveWidgetOnReturn bool
}

// DefaultSettings returns the settings used when none are configured.
func DefaultSettings() Settings {
	return Settings{
		ForceNavigation:      true,
		RemoveWidgetOnReturn: true,
	}
}
