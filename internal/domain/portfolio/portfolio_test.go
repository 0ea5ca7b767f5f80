package portfolio

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpsertSkill_AppendsAndReplacesInPlace(t *testing.T) {
	p := New("Ada", "ada@example.com", "hash")

	first, err := p.UpsertSkill("Go", LevelIntermediate)
	require.NoError(t, err)
	_, err = p.UpsertSkill("Rust", LevelBeginner)
	require.NoError(t, err)

	// Same name replaces the level in place: position and id survive.
	replaced, err := p.UpsertSkill("Go", LevelExpert)
	require.NoError(t, err)

	require.Len(t, p.Skills, 2)
	assert.Equal(t, first.ID, replaced.ID)
	assert.Equal(t, "Go", p.Skills[0].Name)
	assert.Equal(t, LevelExpert, p.Skills[0].Level)
	assert.Equal(t, "Rust", p.Skills[1].Name)
}

func TestUpsertSkill_NamesAreCaseSensitive(t *testing.T) {
	p := New("Ada", "ada@example.com", "hash")

	_, err := p.UpsertSkill("go", LevelBeginner)
	require.NoError(t, err)
	_, err = p.UpsertSkill("Go", LevelExpert)
	require.NoError(t, err)

	assert.Len(t, p.Skills, 2)
}

func TestUpsertSkill_EmptyNameRejected(t *testing.T) {
	p := New("Ada", "ada@example.com", "hash")

	_, err := p.UpsertSkill("", LevelExpert)
	assert.ErrorIs(t, err, ErrEmptySkillName)
	assert.Empty(t, p.Skills)
}

func TestUpsertSkill_NeverDuplicatesNames(t *testing.T) {
	p := New("Ada", "ada@example.com", "hash")

	ops := []struct{ name, level string }{
		{"Go", LevelBeginner},
		{"Rust", LevelBeginner},
		{"Go", LevelExpert},
		{"Python", LevelIntermediate},
		{"Rust", LevelExpert},
		{"Go", LevelIntermediate},
	}
	for _, op := range ops {
		_, err := p.UpsertSkill(op.name, op.level)
		require.NoError(t, err)

		seen := map[string]bool{}
		for _, s := range p.Skills {
			require.False(t, seen[s.Name], "duplicate skill name %q", s.Name)
			seen[s.Name] = true
		}
	}
	assert.Len(t, p.Skills, 3)
}

func TestRemoveSkill_UnknownIDIsNoOp(t *testing.T) {
	p := New("Ada", "ada@example.com", "hash")
	_, err := p.UpsertSkill("Go", LevelExpert)
	require.NoError(t, err)

	p.RemoveSkill(uuid.New())

	assert.Len(t, p.Skills, 1)
}

func TestRemoveSkill_RemovesByID(t *testing.T) {
	p := New("Ada", "ada@example.com", "hash")
	s, err := p.UpsertSkill("Go", LevelExpert)
	require.NoError(t, err)
	_, err = p.UpsertSkill("Rust", LevelBeginner)
	require.NoError(t, err)

	p.RemoveSkill(s.ID)

	require.Len(t, p.Skills, 1)
	assert.Equal(t, "Rust", p.Skills[0].Name)
}

func TestAddProject_Validation(t *testing.T) {
	p := New("Ada", "ada@example.com", "hash")

	_, err := p.AddProject("", "desc", nil, "")
	assert.ErrorIs(t, err, ErrEmptyProjectTitle)

	_, err = p.AddProject("title", "", nil, "")
	assert.ErrorIs(t, err, ErrEmptyProjectDesc)

	assert.Empty(t, p.Projects)
}

func TestAddProject_DuplicateTitlesAllowed(t *testing.T) {
	p := New("Ada", "ada@example.com", "hash")

	first, err := p.AddProject("Side project", "v1", nil, "")
	require.NoError(t, err)
	second, err := p.AddProject("Side project", "v2", nil, "")
	require.NoError(t, err)

	assert.Len(t, p.Projects, 2)
	assert.NotEqual(t, first.ID, second.ID)
}

func TestSplitTechnologies(t *testing.T) {
	tests := []struct {
		raw  string
		want []string
	}{
		{"Go, Rust,  , Python", []string{"Go", "Rust", "Python"}},
		{"Go", []string{"Go"}},
		{"", []string{}},
		{" , ,", []string{}},
		{"  React ,Node.js ", []string{"React", "Node.js"}},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, SplitTechnologies(tt.raw), "input %q", tt.raw)
	}
}
