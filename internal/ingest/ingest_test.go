package ingest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/prospect-cli/internal/model"
)

func TestCompanies_SynonymResolution(t *testing.T) {
	t.Parallel()
	ing := New(FixedScore(50))

	companies, dropped := ing.Companies([]Row{
		{"company_name": "Acme Inc", "url": "https://acme.example", "sector": "Software", "province": "CA"},
		{"company": "Beta Co", "employee_count": "120"},
	})
	require.Len(t, companies, 2)
	assert.Zero(t, dropped)

	assert.Equal(t, "Acme Inc", companies[0].Name)
	assert.Equal(t, "https://acme.example", companies[0].Website)
	assert.Equal(t, "Software", companies[0].Industry)
	assert.Equal(t, "CA", companies[0].State)

	assert.Equal(t, "Beta Co", companies[1].Name)
	require.NotNil(t, companies[1].EmployeeCount)
	assert.Equal(t, 120, *companies[1].EmployeeCount)
}

func TestCompanies_FirstNonEmptySynonymWins(t *testing.T) {
	t.Parallel()
	ing := New(FixedScore(50))

	companies, _ := ing.Companies([]Row{
		{"name": "Primary", "company_name": "Secondary", "company": "Tertiary"},
		{"name": "", "company_name": "Fallback"},
	})
	require.Len(t, companies, 2)
	assert.Equal(t, "Primary", companies[0].Name)
	assert.Equal(t, "Fallback", companies[1].Name)
}

func TestCompanies_KeepFilter(t *testing.T) {
	t.Parallel()
	ing := New(FixedScore(50))

	companies, dropped := ing.Companies([]Row{
		{"name": "Kept By Name"},
		{"website": "https://kept.example"},
		{"industry": "Kept By Industry"},
		{"description": "no identifying fields at all"},
		{"name": "   "},
	})
	assert.Len(t, companies, 3)
	assert.Equal(t, 2, dropped)
}

func TestCompanies_SyntheticIDs(t *testing.T) {
	t.Parallel()
	ing := New(FixedScore(50))

	companies, _ := ing.Companies([]Row{
		{"name": "Has ID", "id": "custom-1"},
		{"name": "No ID"},
	})
	require.Len(t, companies, 2)
	assert.Equal(t, "custom-1", companies[0].ID)
	assert.Equal(t, "company-1", companies[1].ID)
}

func TestCompanies_NumericParsing(t *testing.T) {
	t.Parallel()
	ing := New(FixedScore(50))

	companies, _ := ing.Companies([]Row{
		{"name": "A", "employee_count": "not a number", "founded": "1999"},
		{"name": "B", "employee_count": "-5"},
		{"name": "C", "employee_count": "0"},
	})
	require.Len(t, companies, 3)

	// Unparsable counts become absent, not zero.
	assert.Nil(t, companies[0].EmployeeCount)
	require.NotNil(t, companies[0].Founded)
	assert.Equal(t, 1999, *companies[0].Founded)

	// Negative counts violate the invariant and become absent.
	assert.Nil(t, companies[1].EmployeeCount)

	require.NotNil(t, companies[2].EmployeeCount)
	assert.Equal(t, 0, *companies[2].EmployeeCount)
}

func TestCompanies_TechnologiesSplit(t *testing.T) {
	t.Parallel()
	ing := New(FixedScore(50))

	companies, _ := ing.Companies([]Row{
		{"name": "A", "technologies": "Go, Postgres ,Kafka"},
		{"name": "B"},
	})
	require.Len(t, companies, 2)
	assert.Equal(t, []string{"Go", "Postgres", "Kafka"}, companies[0].Technologies)
	assert.Nil(t, companies[1].Technologies)
}

func TestPeople_FullNameSynthesis(t *testing.T) {
	t.Parallel()
	ing := New(FixedScore(50))

	people, _ := ing.People([]Row{
		{"full_name": "Ada Lovelace", "title": "CTO"},
		{"first_name": "Grace", "last_name": "Hopper", "company": "Navy"},
		{"first_name": "Prince", "title": "Artist"},
	})
	require.Len(t, people, 3)
	assert.Equal(t, "Ada Lovelace", people[0].FullName)
	assert.Equal(t, "Grace Hopper", people[1].FullName)
	assert.Equal(t, "Prince", people[2].FullName)
}

func TestPeople_KeepFilter(t *testing.T) {
	t.Parallel()
	ing := New(FixedScore(50))

	people, dropped := ing.People([]Row{
		{"name": "Has Company", "company": "Acme"},
		{"name": "Has Title", "title": "CEO"},
		{"name": "Neither"},
		{"company": "Acme", "title": "CEO"}, // no name at all
	})
	assert.Len(t, people, 2)
	assert.Equal(t, 2, dropped)
}

func TestPeople_ContactScore(t *testing.T) {
	t.Parallel()

	t.Run("parsed when present", func(t *testing.T) {
		t.Parallel()
		ing := New(FixedScore(7))
		people, _ := ing.People([]Row{
			{"name": "A", "title": "CEO", "contact_score": "88"},
		})
		require.Len(t, people, 1)
		assert.Equal(t, 88, people[0].ContactScore)
	})

	t.Run("fixed default when absent", func(t *testing.T) {
		t.Parallel()
		ing := New(FixedScore(7))
		people, _ := ing.People([]Row{
			{"name": "A", "title": "CEO"},
			{"name": "B", "title": "CFO", "contact_score": "garbage"},
		})
		require.Len(t, people, 2)
		assert.Equal(t, 7, people[0].ContactScore)
		assert.Equal(t, 7, people[1].ContactScore)
	})

	t.Run("seeded random source is deterministic and in range", func(t *testing.T) {
		t.Parallel()
		rows := []Row{
			{"name": "A", "title": "CEO"},
			{"name": "B", "title": "CFO"},
			{"name": "C", "title": "COO"},
		}

		first, _ := New(NewRandomScores(42)).People(rows)
		second, _ := New(NewRandomScores(42)).People(rows)
		require.Len(t, first, 3)
		for i := range first {
			assert.Equal(t, first[i].ContactScore, second[i].ContactScore)
			assert.GreaterOrEqual(t, first[i].ContactScore, 1)
			assert.LessOrEqual(t, first[i].ContactScore, 100)
		}
	})
}

func TestPeople_SeniorityAndDecisionMaker(t *testing.T) {
	t.Parallel()
	ing := New(FixedScore(50))

	people, _ := ing.People([]Row{
		{"name": "A", "title": "CEO", "seniority": "c-suite", "decision_maker": "TRUE"},
		{"name": "B", "title": "Dev", "level": "Junior", "decision_maker": "false"},
		{"name": "C", "title": "Dev", "seniority": "Intergalactic Overlord"},
	})
	require.Len(t, people, 3)
	assert.Equal(t, model.SeniorityCSuite, people[0].Seniority)
	assert.True(t, people[0].DecisionMaker)
	assert.Equal(t, model.SeniorityJunior, people[1].Seniority)
	assert.False(t, people[1].DecisionMaker)
	assert.Equal(t, model.SeniorityUnknown, people[2].Seniority)
}

func TestRandomScores_Range(t *testing.T) {
	t.Parallel()

	src := NewRandomScores(1)
	for i := 0; i < 1000; i++ {
		n := src.Next()
		require.GreaterOrEqual(t, n, 1)
		require.LessOrEqual(t, n, 100)
	}
}
