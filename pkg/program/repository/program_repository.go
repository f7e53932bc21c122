package repository

import "coachboard/entities"

type ProgramRepository interface {
	// ActiveForClient returns the client's active assignment, or nil when the
	// client has none.
	ActiveForClient(clientID string) (*entities.ProgramAssignment, error)
	Save(p *entities.ProgramAssignment) error
}
