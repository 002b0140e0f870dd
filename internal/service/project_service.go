package service

import (
	"encoding/json"
	"time"

	"terravolt-cms/internal/domain"
	"terravolt-cms/pkg/utils"
)

type ProjectInput struct {
	Name       string   `json:"name"`
	Summary    string   `json:"summary"`
	Date       string   `json:"date"`
	Images     []string `json:"images"`
	Details    string   `json:"details"`
	Challenges []string `json:"challenges"`
}

// ProjectPatch lists the fields an update may touch; anything else in
// the request body is dropped, not stored.
type ProjectPatch struct {
	Name       *string   `json:"name"`
	Summary    *string   `json:"summary"`
	Date       *string   `json:"date"`
	Images     *[]string `json:"images"`
	Details    *string   `json:"details"`
	Challenges *[]string `json:"challenges"`
}

type ProjectService struct {
	projects domain.ProjectRepository
}

func NewProjectService(projects domain.ProjectRepository) *ProjectService {
	return &ProjectService{projects: projects}
}

func (s *ProjectService) Create(in ProjectInput, actorID string) (*domain.Project, error) {
	var missing []string
	if in.Name == "" {
		missing = append(missing, "name")
	}
	if len(in.Images) == 0 {
		missing = append(missing, "images")
	}
	if len(missing) > 0 {
		return nil, domain.NewValidationError(missing...)
	}
	if in.Challenges == nil {
		in.Challenges = []string{}
	}
	now := time.Now()
	p := &domain.Project{
		ID:         utils.NewID(),
		Name:       in.Name,
		Summary:    in.Summary,
		Date:       in.Date,
		Images:     in.Images,
		Details:    in.Details,
		Challenges: in.Challenges,
		CreatedAt:  now,
		UpdatedAt:  now,
		AuthorID:   actorID,
	}
	if err := s.projects.Create(p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *ProjectService) List() ([]domain.Project, error) { return s.projects.List() }

// Detail derives the public view: prev/next are the immediate
// neighbors in created_at desc order, related is up to two other
// entries. Computed per read, never stored.
func (s *ProjectService) Detail(id string) (*domain.ProjectView, error) {
	current, err := s.projects.FindByID(id)
	if err != nil {
		return nil, err
	}
	all, err := s.projects.List()
	if err != nil {
		return nil, err
	}
	view := &domain.ProjectView{Project: *current, Related: []domain.Project{}}
	for i := range all {
		if all[i].ID != id {
			continue
		}
		if i > 0 {
			view.Prev = &all[i-1]
		}
		if i < len(all)-1 {
			view.Next = &all[i+1]
		}
		break
	}
	for i := range all {
		if all[i].ID == id {
			continue
		}
		view.Related = append(view.Related, all[i])
		if len(view.Related) == 2 {
			break
		}
	}
	return view, nil
}

func (s *ProjectService) Update(id string, patch ProjectPatch) (*domain.Project, error) {
	fields := map[string]any{}
	if patch.Name != nil {
		fields["name"] = *patch.Name
	}
	if patch.Summary != nil {
		fields["summary"] = *patch.Summary
	}
	if patch.Date != nil {
		fields["date"] = *patch.Date
	}
	if patch.Images != nil {
		b, _ := json.Marshal(*patch.Images)
		fields["images"] = string(b)
	}
	if patch.Details != nil {
		fields["details"] = *patch.Details
	}
	if patch.Challenges != nil {
		b, _ := json.Marshal(*patch.Challenges)
		fields["challenges"] = string(b)
	}
	return s.projects.Update(id, fields)
}

func (s *ProjectService) Delete(id string) error { return s.projects.Delete(id) }
