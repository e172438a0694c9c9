package entity

import (
	"time"

	domainerrors "lifeos/internal/domain/errors"

	"github.com/google/uuid"
)

// ChallengeStatus is the free-form lifecycle state of a challenge.
type ChallengeStatus string

const (
	ChallengeStatusActive    ChallengeStatus = "active"
	ChallengeStatusCompleted ChallengeStatus = "completed"
	ChallengeStatusPaused    ChallengeStatus = "paused"
)

// SubjectStatus is the free-form progress state of a challenge subject.
type SubjectStatus string

const (
	SubjectStatusNotStarted SubjectStatus = "not_started"
	SubjectStatusInProgress SubjectStatus = "in_progress"
	SubjectStatusCompleted  SubjectStatus = "completed"
)

// ResourceType classifies a learning resource attached to a subject.
type ResourceType string

const (
	ResourceTypeVideo    ResourceType = "video"
	ResourceTypeArticle  ResourceType = "article"
	ResourceTypeDocument ResourceType = "document"
	ResourceTypeOther    ResourceType = "other"
)

const (
	maxChallengeNameLen = 120
	maxDescriptionLen   = 1000
)

// Resource is a link attached to a challenge subject.
type Resource struct {
	Title string       `json:"title"`
	URL   string       `json:"url"`
	Type  ResourceType `json:"type"`
}

// Challenge is a soft-deletable aggregate of ordered sections, each holding subjects.
type Challenge struct {
	Aggregate
	Name        string               `json:"name"`
	Description string               `json:"description"`
	Status      ChallengeStatus      `json:"status"`
	StartDate   *time.Time           `json:"startDate,omitempty"`
	EndDate     *time.Time           `json:"endDate,omitempty"`
	IsDeleted   bool                 `json:"isDeleted"`
	Sections    Collection[*Section] `json:"sections"`
}

// Section is an ordered part of a challenge. Its progress is stored as given,
// it is not derived from its subjects.
type Section struct {
	ID          uuid.UUID                     `json:"id"`
	Name        string                        `json:"name"`
	Description string                        `json:"description"`
	Order       int                           `json:"order"`
	Progress    int                           `json:"progress"`
	Subjects    Collection[*ChallengeSubject] `json:"subjects"`
}

func (s *Section) EntryID() uuid.UUID      { return s.ID }
func (s *Section) SetEntryID(id uuid.UUID) { s.ID = id }
func (*Section) EntryKind() string         { return "section" }
func (s *Section) SetOrder(order int)      { s.Order = order }

// ChallengeSubject is a unit of work inside a section.
type ChallengeSubject struct {
	ID          uuid.UUID     `json:"id"`
	Name        string        `json:"name"`
	Description string        `json:"description"`
	Status      SubjectStatus `json:"status"`
	Progress    int           `json:"progress"`
	StartDate   *time.Time    `json:"startDate,omitempty"`
	EndDate     *time.Time    `json:"endDate,omitempty"`
	Resources   []Resource    `json:"resources"`
	stamp
}

func (s *ChallengeSubject) EntryID() uuid.UUID      { return s.ID }
func (s *ChallengeSubject) SetEntryID(id uuid.UUID) { s.ID = id }
func (*ChallengeSubject) EntryKind() string         { return "subject" }
func (s *ChallengeSubject) EntryName() string       { return s.Name }

// ChallengeInput carries the fields of a new challenge.
type ChallengeInput struct {
	Name        string
	Description string
	Status      ChallengeStatus
	StartDate   *time.Time
	EndDate     *time.Time
	Sections    []SectionInput
}

// ChallengePatch lists the mutable challenge fields; nil means unchanged.
type ChallengePatch struct {
	Name        *string
	Description *string
	Status      *ChallengeStatus
	StartDate   *time.Time
	EndDate     *time.Time
}

// SectionInput carries the fields of a new section.
type SectionInput struct {
	Name        string
	Description string
	Progress    int
	Subjects    []SubjectInput
}

// SectionPatch lists the mutable section fields; nil means unchanged.
type SectionPatch struct {
	Name        *string
	Description *string
	Progress    *int
}

// SubjectInput carries the fields of a new challenge subject.
type SubjectInput struct {
	Name        string
	Description string
	Status      SubjectStatus
	Progress    int
	StartDate   *time.Time
	EndDate     *time.Time
	Resources   []Resource
}

// SubjectPatch lists the mutable challenge-subject fields; nil means unchanged.
type SubjectPatch struct {
	Name        *string
	Description *string
	Status      *SubjectStatus
	Progress    *int
	StartDate   *time.Time
	EndDate     *time.Time
	Resources   *[]Resource
}

// NewChallenge validates input and builds a challenge owned by ownerID.
func NewChallenge(ownerID uuid.UUID, in ChallengeInput, now time.Time) (*Challenge, error) {
	name, err := requireText("name", in.Name, maxChallengeNameLen)
	if err != nil {
		return nil, err
	}
	description, err := limitText("description", in.Description, maxDescriptionLen)
	if err != nil {
		return nil, err
	}

	status := in.Status
	if status == "" {
		status = ChallengeStatusActive
	}
	if err := checkChallengeStatus(status); err != nil {
		return nil, err
	}

	start := utcPtr(in.StartDate)
	if start == nil {
		today := now.UTC()
		start = &today
	}
	end := utcPtr(in.EndDate)
	if err := checkDateOrder("startDate", start, "endDate", end); err != nil {
		return nil, err
	}

	sections := make([]*Section, 0, len(in.Sections))
	for _, sectionIn := range in.Sections {
		section, err := buildSection(sectionIn, now)
		if err != nil {
			return nil, err
		}
		sections = append(sections, section)
	}

	challenge := &Challenge{
		Aggregate:   NewAggregate(ownerID, now),
		Name:        name,
		Description: description,
		Status:      status,
		StartDate:   start,
		EndDate:     end,
	}
	for _, section := range sections {
		challenge.Sections.Insert(section)
	}

	return challenge, nil
}

// Apply updates the challenge's own fields.
func (c *Challenge) Apply(patch ChallengePatch, now time.Time) error {
	name, description, status := c.Name, c.Description, c.Status
	start, end := c.StartDate, c.EndDate

	var err error
	if patch.Name != nil {
		if name, err = requireText("name", *patch.Name, maxChallengeNameLen); err != nil {
			return err
		}
	}
	if patch.Description != nil {
		if description, err = limitText("description", *patch.Description, maxDescriptionLen); err != nil {
			return err
		}
	}
	if patch.Status != nil {
		if err := checkChallengeStatus(*patch.Status); err != nil {
			return err
		}
		status = *patch.Status
	}
	if patch.StartDate != nil {
		start = utcPtr(patch.StartDate)
	}
	if patch.EndDate != nil {
		end = utcPtr(patch.EndDate)
	}
	if err := checkDateOrder("startDate", start, "endDate", end); err != nil {
		return err
	}

	c.Name, c.Description, c.Status = name, description, status
	c.StartDate, c.EndDate = start, end
	c.Touch(now)

	return nil
}

// MarkDeleted soft-deletes the challenge.
func (c *Challenge) MarkDeleted(now time.Time) {
	c.IsDeleted = true
	c.Touch(now)
}

// AddSection appends a section at the next order.
func (c *Challenge) AddSection(in SectionInput, now time.Time) (*Section, error) {
	section, err := buildSection(in, now)
	if err != nil {
		return nil, err
	}

	c.Sections.Insert(section)
	c.Touch(now)

	return section, nil
}

// UpdateSection applies a partial update to a section.
func (c *Challenge) UpdateSection(sectionID uuid.UUID, patch SectionPatch, now time.Time) (*Section, error) {
	section, err := c.Sections.Update(sectionID, func(s *Section) error {
		return s.apply(patch)
	})
	if err != nil {
		return nil, err
	}

	c.Touch(now)

	return section, nil
}

// RemoveSection deletes a section with its subjects and renumbers the rest.
func (c *Challenge) RemoveSection(sectionID uuid.UUID, now time.Time) error {
	if _, err := c.Sections.Remove(sectionID); err != nil {
		return err
	}

	c.Touch(now)

	return nil
}

// AddSubject appends a subject to a section.
func (c *Challenge) AddSubject(sectionID uuid.UUID, in SubjectInput, now time.Time) (*ChallengeSubject, error) {
	added, err := c.AddSubjects(sectionID, []SubjectInput{in}, now)
	if err != nil {
		return nil, err
	}

	return added[0], nil
}

// AddSubjects appends several subjects to a section. Either all inputs are
// valid and inserted, or none is.
func (c *Challenge) AddSubjects(sectionID uuid.UUID, ins []SubjectInput, now time.Time) ([]*ChallengeSubject, error) {
	section, err := c.Sections.Find(sectionID)
	if err != nil {
		return nil, err
	}

	subjects := make([]*ChallengeSubject, 0, len(ins))
	for _, in := range ins {
		subject, err := buildChallengeSubject(in, now)
		if err != nil {
			return nil, err
		}
		subjects = append(subjects, subject)
	}

	for _, subject := range subjects {
		section.Subjects.Insert(subject)
	}
	c.Touch(now)

	return subjects, nil
}

// FindSubject locates a subject in any section.
func (c *Challenge) FindSubject(subjectID uuid.UUID) (*Section, *ChallengeSubject, error) {
	for _, section := range c.Sections.Items() {
		if subject, err := section.Subjects.Find(subjectID); err == nil {
			return section, subject, nil
		}
	}

	return nil, nil, domainerrors.NotFound((*ChallengeSubject)(nil).EntryKind())
}

// UpdateSubject applies a partial update to a subject in any section.
func (c *Challenge) UpdateSubject(subjectID uuid.UUID, patch SubjectPatch, now time.Time) (*ChallengeSubject, error) {
	section, _, err := c.FindSubject(subjectID)
	if err != nil {
		return nil, err
	}

	subject, err := section.Subjects.Update(subjectID, func(s *ChallengeSubject) error {
		return s.apply(patch, now)
	})
	if err != nil {
		return nil, err
	}

	c.Touch(now)

	return subject, nil
}

// RemoveSubject deletes a subject from whichever section holds it. Section
// order is not affected.
func (c *Challenge) RemoveSubject(subjectID uuid.UUID, now time.Time) error {
	section, _, err := c.FindSubject(subjectID)
	if err != nil {
		return err
	}

	if _, err := section.Subjects.Remove(subjectID); err != nil {
		return err
	}

	c.Touch(now)

	return nil
}

func (s *Section) apply(patch SectionPatch) error {
	name, description, progress := s.Name, s.Description, s.Progress

	var err error
	if patch.Name != nil {
		if name, err = requireText("section name", *patch.Name, maxChallengeNameLen); err != nil {
			return err
		}
	}
	if patch.Description != nil {
		if description, err = limitText("section description", *patch.Description, maxDescriptionLen); err != nil {
			return err
		}
	}
	if patch.Progress != nil {
		if err := checkPercent("section progress", *patch.Progress); err != nil {
			return err
		}
		progress = *patch.Progress
	}

	s.Name, s.Description, s.Progress = name, description, progress

	return nil
}

func (s *ChallengeSubject) apply(patch SubjectPatch, now time.Time) error {
	next := *s

	var err error
	if patch.Name != nil {
		if next.Name, err = requireText("subject name", *patch.Name, maxChallengeNameLen); err != nil {
			return err
		}
	}
	if patch.Description != nil {
		if next.Description, err = limitText("subject description", *patch.Description, maxDescriptionLen); err != nil {
			return err
		}
	}
	if patch.Status != nil {
		if err := checkSubjectStatus(*patch.Status); err != nil {
			return err
		}
		next.Status = *patch.Status
	}
	if patch.Progress != nil {
		if err := checkPercent("subject progress", *patch.Progress); err != nil {
			return err
		}
		next.Progress = *patch.Progress
	}
	if patch.StartDate != nil {
		next.StartDate = utcPtr(patch.StartDate)
	}
	if patch.EndDate != nil {
		next.EndDate = utcPtr(patch.EndDate)
	}
	if err := checkDateOrder("startDate", next.StartDate, "endDate", next.EndDate); err != nil {
		return err
	}
	if patch.Resources != nil {
		if next.Resources, err = normalizeResources(*patch.Resources); err != nil {
			return err
		}
	}

	next.touch(now)
	*s = next

	return nil
}

func buildSection(in SectionInput, now time.Time) (*Section, error) {
	name, err := requireText("section name", in.Name, maxChallengeNameLen)
	if err != nil {
		return nil, err
	}
	description, err := limitText("section description", in.Description, maxDescriptionLen)
	if err != nil {
		return nil, err
	}
	if err := checkPercent("section progress", in.Progress); err != nil {
		return nil, err
	}

	section := &Section{Name: name, Description: description, Progress: in.Progress}
	for _, subjectIn := range in.Subjects {
		subject, err := buildChallengeSubject(subjectIn, now)
		if err != nil {
			return nil, err
		}
		section.Subjects.Insert(subject)
	}

	return section, nil
}

func buildChallengeSubject(in SubjectInput, now time.Time) (*ChallengeSubject, error) {
	name, err := requireText("subject name", in.Name, maxChallengeNameLen)
	if err != nil {
		return nil, err
	}
	description, err := limitText("subject description", in.Description, maxDescriptionLen)
	if err != nil {
		return nil, err
	}

	status := in.Status
	if status == "" {
		status = SubjectStatusNotStarted
	}
	if err := checkSubjectStatus(status); err != nil {
		return nil, err
	}
	if err := checkPercent("subject progress", in.Progress); err != nil {
		return nil, err
	}

	start, end := utcPtr(in.StartDate), utcPtr(in.EndDate)
	if err := checkDateOrder("startDate", start, "endDate", end); err != nil {
		return nil, err
	}

	resources, err := normalizeResources(in.Resources)
	if err != nil {
		return nil, err
	}

	return &ChallengeSubject{
		Name:        name,
		Description: description,
		Status:      status,
		Progress:    in.Progress,
		StartDate:   start,
		EndDate:     end,
		Resources:   resources,
		stamp:       newStamp(now),
	}, nil
}

func normalizeResources(in []Resource) ([]Resource, error) {
	out := make([]Resource, 0, len(in))
	for _, r := range in {
		title, err := requireText("resource title", r.Title, 200)
		if err != nil {
			return nil, err
		}
		url, err := requireText("resource url", r.URL, 2048)
		if err != nil {
			return nil, err
		}
		kind := r.Type
		if kind == "" {
			kind = ResourceTypeOther
		}
		if err := checkOneOf("resource type", kind,
			ResourceTypeVideo, ResourceTypeArticle, ResourceTypeDocument, ResourceTypeOther); err != nil {
			return nil, err
		}
		out = append(out, Resource{Title: title, URL: url, Type: kind})
	}

	return out, nil
}

func checkChallengeStatus(status ChallengeStatus) error {
	return checkOneOf("status", status,
		ChallengeStatusActive, ChallengeStatusCompleted, ChallengeStatusPaused)
}

func checkSubjectStatus(status SubjectStatus) error {
	return checkOneOf("subject status", status,
		SubjectStatusNotStarted, SubjectStatusInProgress, SubjectStatusCompleted)
}
