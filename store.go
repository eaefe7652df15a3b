package main

import (
	"errors"
	"fmt"
	"sync"
)

var (
	// ErrNotFound is returned when no date has the requested id
	ErrNotFound = errors.New("date not found")
	// ErrForbidden is returned when deleting a built-in date
	ErrForbidden = errors.New("cannot delete default dates")
)

// MissingFieldError is returned when a required key is absent from the input
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("missing required field %q", e.Field)
}

const firstCustomID = 8

// builtinDates are seeded at startup and can be edited but never deleted.
var builtinDates = []DateRecord{
	{ID: 1, Name: "First Talk Anniversary", Month: 9, Day: 22, Year: 2023},
	{ID: 2, Name: "Prachi's Birthday", Month: 1, Day: 6, Year: 2004},
	{ID: 3, Name: "Deep's Birthday", Month: 9, Day: 29, Year: 2004},
	{ID: 4, Name: "Expressed Feelings Anniversary", Month: 11, Day: 8, Year: 2023},
	{ID: 5, Name: "Proposal Day Anniversary", Month: 11, Day: 24, Year: 2023},
	{ID: 6, Name: "First Met Anniversary", Month: 11, Day: 15, Year: 2023},
	{ID: 7, Name: "First Kiss Anniversary", Month: 5, Day: 5, Year: 2024},
}

// dateStore keeps the special dates in memory, in insertion order.
// Ids come from a counter that only ever goes up.
type dateStore struct {
	mu     sync.RWMutex
	dates  []DateRecord
	nextID int
}

func newDateStore() *dateStore {
	dates := make([]DateRecord, len(builtinDates))
	copy(dates, builtinDates)
	return &dateStore{
		dates:  dates,
		nextID: firstCustomID,
	}
}

// validate checks that every required field is present
func (in DateInput) validate() error {
	switch {
	case in.Name == nil:
		return &MissingFieldError{Field: "name"}
	case in.Month == nil:
		return &MissingFieldError{Field: "month"}
	case in.Day == nil:
		return &MissingFieldError{Field: "day"}
	case in.Year == nil:
		return &MissingFieldError{Field: "year"}
	}
	return nil
}

// List returns a snapshot of all dates, built-ins first
func (s *dateStore) List() []DateRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]DateRecord, len(s.dates))
	copy(out, s.dates)
	return out
}

// Add creates a custom date with the next id
func (s *dateStore) Add(in DateInput) (DateRecord, error) {
	if err := in.validate(); err != nil {
		return DateRecord{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	d := DateRecord{
		ID:       s.nextID,
		Name:     *in.Name,
		Month:    *in.Month,
		Day:      *in.Day,
		Year:     *in.Year,
		IsCustom: true,
	}
	s.dates = append(s.dates, d)
	s.nextID++

	return d, nil
}

// Update overwrites name, month, day and year of an existing date
func (s *dateStore) Update(id int, in DateInput) (DateRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return DateRecord{}, ErrNotFound
	}
	if err := in.validate(); err != nil {
		return DateRecord{}, err
	}

	d := &s.dates[i]
	d.Name = *in.Name
	d.Month = *in.Month
	d.Day = *in.Day
	d.Year = *in.Year

	return *d, nil
}

// Delete removes a custom date. Built-ins are refused with ErrForbidden.
func (s *dateStore) Delete(id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return ErrNotFound
	}
	if !s.dates[i].IsCustom {
		return ErrForbidden
	}

	s.dates = append(s.dates[:i], s.dates[i+1:]...)
	return nil
}

// indexOf must be called with mu held
func (s *dateStore) indexOf(id int) int {
	for i := range s.dates {
		if s.dates[i].ID == id {
			return i
		}
	}
	return -1
}
