package entity

import (
	"time"

	"github.com/google/uuid"
)

// MaterialType classifies a study material.
type MaterialType string

const (
	MaterialTypePDF      MaterialType = "pdf"
	MaterialTypeVideo    MaterialType = "video"
	MaterialTypeWebsite  MaterialType = "website"
	MaterialTypeDocument MaterialType = "document"
	MaterialTypeOther    MaterialType = "other"
)

const (
	maxStudyNameLen        = 100
	maxStudyDescriptionLen = 500
	maxMaterialTitleLen    = 200
	maxLinkLen             = 2048
)

// StudyStructure is the single per-owner tree of branches, subjects and materials.
type StudyStructure struct {
	Aggregate
	Branches Collection[*Branch] `json:"branches"`
}

// Branch is a top-level field of study. Names are unique per owner.
type Branch struct {
	ID          uuid.UUID                 `json:"id"`
	Name        string                    `json:"name"`
	Description string                    `json:"description"`
	IsActive    bool                      `json:"isActive"`
	Subjects    Collection[*StudySubject] `json:"subjects"`
	stamp
}

func (b *Branch) EntryID() uuid.UUID      { return b.ID }
func (b *Branch) SetEntryID(id uuid.UUID) { b.ID = id }
func (*Branch) EntryKind() string         { return "branch" }
func (b *Branch) EntryName() string       { return b.Name }

// StudySubject belongs to a branch. Names are unique per branch.
type StudySubject struct {
	ID          uuid.UUID             `json:"id"`
	Name        string                `json:"name"`
	Description string                `json:"description"`
	IsActive    bool                  `json:"isActive"`
	Materials   Collection[*Material] `json:"materials"`
	stamp
}

func (s *StudySubject) EntryID() uuid.UUID      { return s.ID }
func (s *StudySubject) SetEntryID(id uuid.UUID) { s.ID = id }
func (*StudySubject) EntryKind() string         { return "subject" }
func (s *StudySubject) EntryName() string       { return s.Name }

// Material is a link to study content.
type Material struct {
	ID          uuid.UUID    `json:"id"`
	Title       string       `json:"title"`
	Link        string       `json:"link"`
	Description string       `json:"description"`
	Type        MaterialType `json:"type"`
	stamp
}

func (m *Material) EntryID() uuid.UUID      { return m.ID }
func (m *Material) SetEntryID(id uuid.UUID) { m.ID = id }
func (*Material) EntryKind() string         { return "material" }

// BranchInput carries the fields of a new branch.
type BranchInput struct {
	Name        string
	Description string
	IsActive    *bool
}

// BranchPatch lists the mutable branch fields; nil means unchanged.
type BranchPatch struct {
	Name        *string
	Description *string
	IsActive    *bool
}

// StudySubjectInput carries the fields of a new study subject.
type StudySubjectInput struct {
	Name        string
	Description string
	IsActive    *bool
}

// StudySubjectPatch lists the mutable study-subject fields; nil means unchanged.
type StudySubjectPatch struct {
	Name        *string
	Description *string
	IsActive    *bool
}

// MaterialInput carries the fields of a new material.
type MaterialInput struct {
	Title       string
	Link        string
	Description string
	Type        MaterialType
}

// MaterialPatch lists the mutable material fields; nil means unchanged.
type MaterialPatch struct {
	Title       *string
	Link        *string
	Description *string
	Type        *MaterialType
}

// StudyStatistics summarises a study structure.
type StudyStatistics struct {
	TotalBranches   int                  `json:"totalBranches"`
	ActiveBranches  int                  `json:"activeBranches"`
	TotalSubjects   int                  `json:"totalSubjects"`
	ActiveSubjects  int                  `json:"activeSubjects"`
	TotalMaterials  int                  `json:"totalMaterials"`
	MaterialsByType map[MaterialType]int `json:"materialsByType"`
}

// NewStudyStructure builds an empty structure for ownerID.
func NewStudyStructure(ownerID uuid.UUID, now time.Time) *StudyStructure {
	return &StudyStructure{Aggregate: NewAggregate(ownerID, now)}
}

// FindBranch returns a branch by id.
func (s *StudyStructure) FindBranch(branchID uuid.UUID) (*Branch, error) {
	return s.Branches.Find(branchID)
}

// FindSubject resolves the branch then the subject.
func (s *StudyStructure) FindSubject(branchID, subjectID uuid.UUID) (*Branch, *StudySubject, error) {
	branch, err := s.Branches.Find(branchID)
	if err != nil {
		return nil, nil, err
	}
	subject, err := branch.Subjects.Find(subjectID)
	if err != nil {
		return nil, nil, err
	}

	return branch, subject, nil
}

// AddBranch inserts a branch after checking the name against its siblings.
func (s *StudyStructure) AddBranch(in BranchInput, now time.Time) (*Branch, error) {
	name, err := requireText("branch name", in.Name, maxStudyNameLen)
	if err != nil {
		return nil, err
	}
	description, err := limitText("branch description", in.Description, maxStudyDescriptionLen)
	if err != nil {
		return nil, err
	}
	if err := EnsureUniqueName(&s.Branches, name, uuid.Nil); err != nil {
		return nil, err
	}

	branch := &Branch{
		Name:        name,
		Description: description,
		IsActive:    boolOr(in.IsActive, true),
		stamp:       newStamp(now),
	}
	s.Branches.Insert(branch)
	s.Touch(now)

	return branch, nil
}

// UpdateBranch applies a partial update, re-checking name uniqueness on rename.
func (s *StudyStructure) UpdateBranch(branchID uuid.UUID, patch BranchPatch, now time.Time) (*Branch, error) {
	branch, err := s.Branches.Update(branchID, func(b *Branch) error {
		name, description, active := b.Name, b.Description, b.IsActive

		var err error
		if patch.Name != nil {
			if name, err = requireText("branch name", *patch.Name, maxStudyNameLen); err != nil {
				return err
			}
			if err := EnsureUniqueName(&s.Branches, name, b.ID); err != nil {
				return err
			}
		}
		if patch.Description != nil {
			if description, err = limitText("branch description", *patch.Description, maxStudyDescriptionLen); err != nil {
				return err
			}
		}
		if patch.IsActive != nil {
			active = *patch.IsActive
		}

		b.Name, b.Description, b.IsActive = name, description, active
		b.touch(now)

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.Touch(now)

	return branch, nil
}

// RemoveBranch deletes a branch together with its subjects and materials.
func (s *StudyStructure) RemoveBranch(branchID uuid.UUID, now time.Time) error {
	if _, err := s.Branches.Remove(branchID); err != nil {
		return err
	}

	s.Touch(now)

	return nil
}

// AddSubject inserts a subject into a branch after checking the name within that branch.
func (s *StudyStructure) AddSubject(branchID uuid.UUID, in StudySubjectInput, now time.Time) (*StudySubject, error) {
	branch, err := s.Branches.Find(branchID)
	if err != nil {
		return nil, err
	}

	name, err := requireText("subject name", in.Name, maxStudyNameLen)
	if err != nil {
		return nil, err
	}
	description, err := limitText("subject description", in.Description, maxStudyDescriptionLen)
	if err != nil {
		return nil, err
	}
	if err := EnsureUniqueName(&branch.Subjects, name, uuid.Nil); err != nil {
		return nil, err
	}

	subject := &StudySubject{
		Name:        name,
		Description: description,
		IsActive:    boolOr(in.IsActive, true),
		stamp:       newStamp(now),
	}
	branch.Subjects.Insert(subject)
	branch.touch(now)
	s.Touch(now)

	return subject, nil
}

// UpdateSubject applies a partial update to a subject of a branch.
func (s *StudyStructure) UpdateSubject(branchID, subjectID uuid.UUID, patch StudySubjectPatch, now time.Time) (*StudySubject, error) {
	branch, err := s.Branches.Find(branchID)
	if err != nil {
		return nil, err
	}

	subject, err := branch.Subjects.Update(subjectID, func(sub *StudySubject) error {
		name, description, active := sub.Name, sub.Description, sub.IsActive

		var err error
		if patch.Name != nil {
			if name, err = requireText("subject name", *patch.Name, maxStudyNameLen); err != nil {
				return err
			}
			if err := EnsureUniqueName(&branch.Subjects, name, sub.ID); err != nil {
				return err
			}
		}
		if patch.Description != nil {
			if description, err = limitText("subject description", *patch.Description, maxStudyDescriptionLen); err != nil {
				return err
			}
		}
		if patch.IsActive != nil {
			active = *patch.IsActive
		}

		sub.Name, sub.Description, sub.IsActive = name, description, active
		sub.touch(now)

		return nil
	})
	if err != nil {
		return nil, err
	}

	branch.touch(now)
	s.Touch(now)

	return subject, nil
}

// RemoveSubject deletes a subject and its materials from a branch.
func (s *StudyStructure) RemoveSubject(branchID, subjectID uuid.UUID, now time.Time) error {
	branch, err := s.Branches.Find(branchID)
	if err != nil {
		return err
	}
	if _, err := branch.Subjects.Remove(subjectID); err != nil {
		return err
	}

	branch.touch(now)
	s.Touch(now)

	return nil
}

// AddMaterial inserts a material into a subject of a branch.
func (s *StudyStructure) AddMaterial(branchID, subjectID uuid.UUID, in MaterialInput, now time.Time) (*Material, error) {
	branch, subject, err := s.FindSubject(branchID, subjectID)
	if err != nil {
		return nil, err
	}

	material, err := buildMaterial(in, now)
	if err != nil {
		return nil, err
	}

	subject.Materials.Insert(material)
	subject.touch(now)
	branch.touch(now)
	s.Touch(now)

	return material, nil
}

// UpdateMaterial applies a partial update to a material.
func (s *StudyStructure) UpdateMaterial(branchID, subjectID, materialID uuid.UUID, patch MaterialPatch, now time.Time) (*Material, error) {
	branch, subject, err := s.FindSubject(branchID, subjectID)
	if err != nil {
		return nil, err
	}

	material, err := subject.Materials.Update(materialID, func(m *Material) error {
		return m.apply(patch, now)
	})
	if err != nil {
		return nil, err
	}

	subject.touch(now)
	branch.touch(now)
	s.Touch(now)

	return material, nil
}

// RemoveMaterial deletes a material.
func (s *StudyStructure) RemoveMaterial(branchID, subjectID, materialID uuid.UUID, now time.Time) error {
	branch, subject, err := s.FindSubject(branchID, subjectID)
	if err != nil {
		return err
	}
	if _, err := subject.Materials.Remove(materialID); err != nil {
		return err
	}

	subject.touch(now)
	branch.touch(now)
	s.Touch(now)

	return nil
}

// Statistics counts branches, subjects and materials.
func (s *StudyStructure) Statistics() StudyStatistics {
	stats := StudyStatistics{MaterialsByType: make(map[MaterialType]int)}
	for _, branch := range s.Branches.Items() {
		stats.TotalBranches++
		if branch.IsActive {
			stats.ActiveBranches++
		}
		for _, subject := range branch.Subjects.Items() {
			stats.TotalSubjects++
			if subject.IsActive {
				stats.ActiveSubjects++
			}
			for _, material := range subject.Materials.Items() {
				stats.TotalMaterials++
				stats.MaterialsByType[material.Type]++
			}
		}
	}

	return stats
}

func (m *Material) apply(patch MaterialPatch, now time.Time) error {
	next := *m

	var err error
	if patch.Title != nil {
		if next.Title, err = requireText("material title", *patch.Title, maxMaterialTitleLen); err != nil {
			return err
		}
	}
	if patch.Link != nil {
		if next.Link, err = requireText("material link", *patch.Link, maxLinkLen); err != nil {
			return err
		}
	}
	if patch.Description != nil {
		if next.Description, err = limitText("material description", *patch.Description, maxStudyDescriptionLen); err != nil {
			return err
		}
	}
	if patch.Type != nil {
		if err := checkMaterialType(*patch.Type); err != nil {
			return err
		}
		next.Type = *patch.Type
	}

	next.touch(now)
	*m = next

	return nil
}

func buildMaterial(in MaterialInput, now time.Time) (*Material, error) {
	title, err := requireText("material title", in.Title, maxMaterialTitleLen)
	if err != nil {
		return nil, err
	}
	link, err := requireText("material link", in.Link, maxLinkLen)
	if err != nil {
		return nil, err
	}
	description, err := limitText("material description", in.Description, maxStudyDescriptionLen)
	if err != nil {
		return nil, err
	}

	kind := in.Type
	if kind == "" {
		kind = MaterialTypeOther
	}
	if err := checkMaterialType(kind); err != nil {
		return nil, err
	}

	return &Material{
		Title:       title,
		Link:        link,
		Description: description,
		Type:        kind,
		stamp:       newStamp(now),
	}, nil
}

func checkMaterialType(kind MaterialType) error {
	return checkOneOf("material type", kind,
		MaterialTypePDF, MaterialTypeVideo, MaterialTypeWebsite, MaterialTypeDocument, MaterialTypeOther)
}

func boolOr(v *bool, fallback bool) bool {
	if v == nil {
		return fallback
	}

	return *v
}
