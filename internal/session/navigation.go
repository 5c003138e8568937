// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package session holds the in-memory state of one browsing session: where
// the user is in the category/entry/operation hierarchy, the values typed
// into the current operation form and the lifecycle of the last submission.
//
// Every type is a value and every transition returns a new value, so the
// package can be driven from the single bubbletea Update loop and tested
// without rendering anything.
package session

import "github.com/MKhiriev/go-crypto-catalog/models"

// NavigationState is the single source of truth for the user's position.
// The zero value is the home screen.
type NavigationState struct {
	// Category is the selected category, 0 when none.
	Category models.Category

	// EntryIndex indexes the category listing. Only meaningful when HasEntry
	// is set and the listing is loaded.
	EntryIndex int
	HasEntry   bool

	// Operation is the selected operation, "" when none.
	Operation models.Operation

	// Previous is the one-slot memory used by GoBack.
	Previous models.Operation

	// Generation changes on every transition that moves the user. Submission
	// tickets carry it to recognise stale responses.
	Generation uint64
}

// SelectCategory selects c and clears entry, operation and previous
// operation. Selecting an unknown category returns to home.
func (n NavigationState) SelectCategory(c models.Category) NavigationState {
	if !c.Valid() {
		return n.Reset()
	}

	return NavigationState{
		Category:   c,
		Generation: n.Generation + 1,
	}
}

// SelectEntry selects the i-th entry of the current category and clears
// operation and previous operation. Without a category or with a negative
// index the state is returned unchanged.
func (n NavigationState) SelectEntry(i int) NavigationState {
	if n.Category == 0 || i < 0 {
		return n
	}

	return NavigationState{
		Category:   n.Category,
		EntryIndex: i,
		HasEntry:   true,
		Generation: n.Generation + 1,
	}
}

// SelectOperation moves the current operation into the previous slot and
// makes op current. Reselecting the current operation changes nothing.
func (n NavigationState) SelectOperation(op models.Operation) NavigationState {
	if !n.HasEntry || op == "" || op == n.Operation {
		return n
	}

	n.Previous = n.Operation
	n.Operation = op
	n.Generation++
	return n
}

// GoBack restores the previous operation and empties the slot, so a second
// GoBack does nothing. Back navigation is single-level.
func (n NavigationState) GoBack() NavigationState {
	if n.Previous == "" {
		return n
	}

	n.Operation = n.Previous
	n.Previous = ""
	n.Generation++
	return n
}

// Reset returns to the empty home state. Generation keeps increasing.
func (n NavigationState) Reset() NavigationState {
	return NavigationState{Generation: n.Generation + 1}
}

// CanGoBack reports whether GoBack would change the state.
func (n NavigationState) CanGoBack() bool {
	return n.Previous != ""
}

// CurrentEntry resolves the selected entry against a category listing. ok is
// false when no entry is selected, the listing is not loaded or the index is
// out of range.
func (n NavigationState) CurrentEntry(catalog models.CatalogState) (models.Entry, bool) {
	if !n.HasEntry {
		return models.Entry{}, false
	}
	return catalog.Entry(n.EntryIndex)
}
