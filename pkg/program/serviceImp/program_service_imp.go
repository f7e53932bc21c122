package serviceImp

import (
	"encoding/json"
	"fmt"

	"coachboard/entities"
	"coachboard/pkg/diff"
	repo "coachboard/pkg/program/repository"
	"coachboard/pkg/program/service"
)

type programSvc struct{ r repo.ProgramRepository }

func New(r repo.ProgramRepository) service.ProgramService { return &programSvc{r} }

// Fields the patch may not touch.
var protectedFields = map[string]struct{}{
	"id": {}, "clientId": {}, "createdAt": {}, "updatedAt": {},
}

func (s *programSvc) Active(clientID string) (*entities.ProgramAssignment, error) {
	return s.r.ActiveForClient(clientID)
}

func (s *programSvc) Update(clientID string, fields map[string]any, templateNames map[string]string) (*entities.ProgramAssignment, []diff.Change, error) {
	p, err := s.r.ActiveForClient(clientID)
	if err != nil {
		return nil, nil, err
	}
	if p == nil {
		return nil, nil, service.ErrNoActiveProgram
	}

	before := snapshot(p)
	merged := make(map[string]any, len(before)+len(fields))
	for k, v := range before {
		merged[k] = v
	}
	for k, v := range fields {
		if _, skip := protectedFields[k]; skip {
			continue
		}
		merged[k] = v
	}

	updated, err := fromSnapshot(merged)
	if err != nil {
		return nil, nil, fmt.Errorf("apply patch: %w", err)
	}
	updated.ID = p.ID
	updated.ClientID = p.ClientID
	updated.CreatedAt = p.CreatedAt
	if err := s.r.Save(updated); err != nil {
		return nil, nil, err
	}

	changes := diff.Diff(before, snapshot(updated), templateNames)
	return updated, changes, nil
}

func snapshot(p *entities.ProgramAssignment) map[string]any {
	b, err := json.Marshal(p)
	if err != nil {
		return map[string]any{}
	}
	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil {
		return map[string]any{}
	}
	return m
}

func fromSnapshot(m map[string]any) (*entities.ProgramAssignment, error) {
	b, err := json.Marshal(m)
	if err != nil {
		return nil, err
	}
	var p entities.ProgramAssignment
	if err := json.Unmarshal(b, &p); err != nil {
		return nil, err
	}
	return &p, nil
}
