package prefs

import (
	"context"

	"github.com/matzehuels/wristscale/pkg/render/styles"
)

// KeyTheme is the preference key for the display theme.
const KeyTheme = "theme"

// Theme returns the stored theme name, or the default theme when none is
// stored or the stored value is not a known theme.
func Theme(ctx context.Context, s Store) (string, error) {
	v, ok, err := s.Get(ctx, KeyTheme)
	if err != nil {
		return styles.Default, err
	}
	if !ok {
		return styles.Default, nil
	}
	t, err := styles.Lookup(v)
	if err != nil {
		return styles.Default, nil
	}
	return t.Name, nil
}

// SetTheme validates and stores a theme name.
func SetTheme(ctx context.Context, s Store, name string) (string, error) {
	t, err := styles.Lookup(name)
	if err != nil {
		return "", err
	}
	return t.Name, s.Set(ctx, KeyTheme, t.Name)
}

// ToggleTheme flips the stored theme between dark and light and returns
// the new value.
func ToggleTheme(ctx context.Context, s Store) (string, error) {
	cur, err := Theme(ctx, s)
	if err != nil {
		return "", err
	}
	return SetTheme(ctx, s, styles.Toggle(cur))
}
