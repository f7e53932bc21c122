package service

import (
	"errors"

	"coachboard/entities"
	"coachboard/pkg/diff"
)

var ErrNoActiveProgram = errors.New("no active program assignment")

type ProgramService interface {
	Active(clientID string) (*entities.ProgramAssignment, error)
	// Update applies a partial field patch to the client's active assignment
	// and returns the updated row together with the reconstructed change list.
	Update(clientID string, fields map[string]any, templateNames map[string]string) (*entities.ProgramAssignment, []diff.Change, error)
}
