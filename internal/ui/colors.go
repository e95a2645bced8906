package ui

// Color accessors return the escape for the active theme, or "" when colors
// are off, so callers can interpolate them unconditionally.

func ColorReset() string  { return GetCurrentTheme().Reset }
func ColorRed() string    { return GetCurrentTheme().Error }
func ColorGreen() string  { return GetCurrentTheme().Success }
func ColorYellow() string { return GetCurrentTheme().Warning }
func ColorBlue() string   { return GetCurrentTheme().Primary }
func ColorCyan() string   { return GetCurrentTheme().Info }
func ColorGrey() string   { return GetCurrentTheme().Secondary }
