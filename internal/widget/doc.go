// Package widget derives what a home-screen widget shows from the state the
// host app shares with it.
//
// Allowed here:
// - the three-field state snapshot and its store contract
// - message pools, locale resolution, palettes, visibility rules, Render
//
// Not allowed here:
// - concrete platform stores (database, prefs), scheduling, or drawing
package widget
