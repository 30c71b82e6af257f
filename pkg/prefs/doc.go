// Package prefs persists small string preferences across sessions.
//
// The only preference the application stores today is the display theme,
// read once at startup and written when the user toggles it. Three
// [Store] backends are provided:
//
//   - [FileStore]: a JSON file under ~/.config/wristscale/ (the default)
//   - [RedisStore]: keys in a Redis database, for shared server deployments
//   - [MemoryStore]: process-local, for tests and ephemeral servers
//
// Use [Open] to build a store from configuration, and [Theme],
// [SetTheme] and [ToggleTheme] for the theme preference.
package prefs
