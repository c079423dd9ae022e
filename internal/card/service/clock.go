package service

import "time"

// expiryLayout renders two-digit month and year.
const expiryLayout = "01/06"

// cardValidityYears is how long a newly issued card stays valid.
const cardValidityYears = 4

// Clock abstracts the current time.
type Clock interface {
	Now() time.Time
}

// ClockFunc adapts a function to Clock.
type ClockFunc func() time.Time

// Now returns f().
func (f ClockFunc) Now() time.Time { return f() }

// SystemClock returns the wall clock in UTC.
func SystemClock() Clock {
	return ClockFunc(func() time.Time { return time.Now().UTC() })
}

// ExpiryDate returns the MM/YY expiry of a card issued at issuedAt.
func ExpiryDate(issuedAt time.Time) string {
	return issuedAt.AddDate(cardValidityYears, 0, 0).Format(expiryLayout)
}
