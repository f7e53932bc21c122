package repository

import "coachboard/entities"

type CheckInRepository interface {
	Create(ci *entities.DailyCheckIn) error
	// ListRange returns the customer's check-ins with date in [from, to]
	// inclusive, ordered by date. Dates are 2006-01-02 strings.
	ListRange(customerID, from, to string) ([]entities.DailyCheckIn, error)
}
