// Package ui provides the terminal drink gallery for barcart.
//
// # Architecture Overview
//
// The UI is a Bubble Tea program. Model holds all state and is updated by
// value; helpers with pointer receivers mutate the local copy inside Update
// before it is returned. Rendering is done with Lip Gloss using the active
// Theme.
//
// # Package Structure
//
//   - app.go: Model, Update/View, key and mouse routing, toasts, Run
//   - gallery.go: filtering, selection, scrolling and card rendering
//   - header.go: status line and filter bar
//   - search.go: live search input
//   - detail.go: recipe overlay with a scrollable viewport
//   - help.go: key binding reference overlay
//   - keys.go, layout.go, theme.go: bindings, sizes and color themes
//
// # Data Flow
//
//  1. The loader merges shards into the shared catalog.Catalog
//  2. Each merge is delivered to the program as a ShardLoadedMsg
//  3. The model requeries the catalog with the current filter
//  4. Favorites are read from favorites.Store at render time, so toggling
//     a heart does not requery unless favorites-only is active
//
// # Key Bindings
//
//   - tab / shift+tab or 1-7: change category
//   - /: search by name, ingredient or tag (enter keeps, esc clears)
//   - f: favorites only
//   - enter: open recipe, esc or a click outside closes it
//   - s or space: toggle favorite
//   - c: copy recipe to the clipboard
//   - T: cycle theme
//   - h or ?: help
//   - q or ctrl+c: quit
package ui
