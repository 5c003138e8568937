// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package session

import "github.com/MKhiriev/go-crypto-catalog/models"

// Session combines navigation, form values and the submission lifecycle.
// Every navigation transition clears the form values and the request state
// in the same call, before anything can render them.
type Session struct {
	nav     NavigationState
	values  models.FormValues
	request RequestState
}

// New returns an empty session positioned at home.
func New() Session {
	return Session{values: models.FormValues{}}
}

// Navigation returns the current position.
func (s Session) Navigation() NavigationState {
	return s.nav
}

// Request returns the current submission state.
func (s Session) Request() RequestState {
	return s.request
}

// FormValues returns the raw values typed so far.
func (s Session) FormValues() models.FormValues {
	return s.values
}

// SelectCategory moves to category c.
func (s Session) SelectCategory(c models.Category) Session {
	return s.moveTo(s.nav.SelectCategory(c))
}

// SelectEntry moves to the i-th entry of the current category.
func (s Session) SelectEntry(i int) Session {
	return s.moveTo(s.nav.SelectEntry(i))
}

// SelectOperation moves to op on the current entry.
func (s Session) SelectOperation(op models.Operation) Session {
	return s.moveTo(s.nav.SelectOperation(op))
}

// GoBack restores the previous operation.
func (s Session) GoBack() Session {
	return s.moveTo(s.nav.GoBack())
}

// Reset returns home.
func (s Session) Reset() Session {
	return s.moveTo(s.nav.Reset())
}

func (s Session) moveTo(next NavigationState) Session {
	if next == s.nav {
		return s
	}

	return Session{
		nav:    next,
		values: models.FormValues{},
	}
}

// SetValue records value for field name. Values can be edited while a
// submission is pending; the pending request keeps its own snapshot.
func (s Session) SetValue(name, value string) Session {
	s.values = s.values.With(name, value)
	return s
}

// Values returns the snapshot submitted for fields: every declared field
// present, missing ones as "".
func (s Session) Values(fields []models.FieldSchema) models.FormValues {
	return s.values.ForFields(fields)
}

// BeginSubmit moves the request to Pending under a new ticket. ok is false,
// and the session unchanged, while another submission is pending or when no
// operation is selected.
func (s Session) BeginSubmit(requestID string) (Session, Ticket, bool) {
	if s.request.IsLoading() || s.nav.Operation == "" {
		return s, Ticket{}, false
	}

	t := Ticket{Generation: s.nav.Generation, RequestID: requestID}
	s.request = s.request.begin(t)
	return s, t, true
}

// CompleteSubmit records the outcome of the submission identified by t.
// Outcomes of superseded submissions are discarded and reported with
// ok == false. Form values are kept in both cases.
func (s Session) CompleteSubmit(t Ticket, result models.OperationResult, err error) (Session, bool) {
	if t.Generation != s.nav.Generation {
		return s, false
	}

	req, ok := s.request.complete(t, result, err)
	if !ok {
		return s, false
	}

	s.request = req
	return s, true
}
