package types

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func profileFixture() *CandidateProfile {
	cgpa := 7.2
	return &CandidateProfile{
		ID:       uuid.New(),
		Name:     "Sam",
		ResumeID: "resume-9",
		Skills: []SkillEntry{
			{Name: "Python", Level: ProficiencyAdvanced},
			{Name: "SQL", Level: ProficiencyIntermediate},
		},
		Experience: []ExperienceEntry{
			{Company: "Acme", Kind: ExperienceInternship},
			{Company: "Globex", Kind: ExperienceJob},
			{Company: "Initech", Kind: ExperienceJob},
		},
		Projects: []Project{
			{Title: "Scraper", TechStack: []string{"Python", "Redis"}, Complexity: ComplexityMedium},
		},
		TotalExperienceMonths: 20,
		CGPA:                  &cgpa,
	}
}

func TestHasSkill_CaseInsensitive(t *testing.T) {
	p := profileFixture()

	assert.True(t, p.HasSkill("python"))
	assert.True(t, p.HasSkill("SQL"))
	assert.False(t, p.HasSkill("Rust"))
}

func TestSkillNames_PreservesOrder(t *testing.T) {
	p := profileFixture()

	assert.Equal(t, []string{"Python", "SQL"}, p.SkillNames())
}

func TestCountExperience(t *testing.T) {
	p := profileFixture()

	assert.Equal(t, 1, p.CountExperience(ExperienceInternship))
	assert.Equal(t, 2, p.CountExperience(ExperienceJob))
}

func TestClone_DeepCopy(t *testing.T) {
	original := profileFixture()
	clone := original.Clone()

	clone.Skills[0].Name = "Changed"
	clone.Experience[0].Company = "Changed"
	clone.Projects[0].TechStack[0] = "Changed"
	*clone.CGPA = 1.0

	assert.Equal(t, "Python", original.Skills[0].Name)
	assert.Equal(t, "Acme", original.Experience[0].Company)
	assert.Equal(t, "Python", original.Projects[0].TechStack[0])
	assert.Equal(t, 7.2, *original.CGPA)
}

func TestClone_AppendDoesNotLeakBack(t *testing.T) {
	original := profileFixture()
	clone := original.Clone()

	clone.Skills = append(clone.Skills, SkillEntry{Name: "Rust", Level: ProficiencyBeginner})

	assert.Len(t, original.Skills, 2)
}

func TestClone_NilCGPA(t *testing.T) {
	original := profileFixture()
	original.CGPA = nil

	clone := original.Clone()

	require.Nil(t, clone.CGPA)
}
