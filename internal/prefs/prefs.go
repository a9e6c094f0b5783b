// Package prefs holds the per-visitor display preferences: interface
// language, high-contrast mode, and font size. These are the only values the
// portal persists itself; everything else belongs to the remote booking
// service.
package prefs

// Supported interface languages. Polish is the default.
const (
	LanguagePolish  = "pl"
	LanguageEnglish = "en"
)

// Font size bounds and step, in pixels.
const (
	MinFontSize     = 20
	MaxFontSize     = 60
	FontSizeStep    = 5
	DefaultFontSize = 20
)

// Preferences is one visitor's display configuration.
type Preferences struct {
	Language     string
	HighContrast bool
	FontSize     int
}

// Default returns the configuration used before a visitor changes anything.
func Default() Preferences {
	return Preferences{Language: LanguagePolish, FontSize: DefaultFontSize}
}

// Normalized clamps the preferences into their valid ranges. Unknown
// languages fall back to Polish and out-of-range font sizes are clamped,
// never rejected.
func (p Preferences) Normalized() Preferences {
	if p.Language != LanguagePolish && p.Language != LanguageEnglish {
		p.Language = LanguagePolish
	}
	if p.FontSize < MinFontSize {
		p.FontSize = MinFontSize
	}
	if p.FontSize > MaxFontSize {
		p.FontSize = MaxFontSize
	}
	return p
}

// Larger returns the preferences with the font size one step up.
func (p Preferences) Larger() Preferences {
	p.FontSize += FontSizeStep
	return p.Normalized()
}

// Smaller returns the preferences with the font size one step down.
func (p Preferences) Smaller() Preferences {
	p.FontSize -= FontSizeStep
	return p.Normalized()
}
