package types

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPatchFrom(t *testing.T) {
	current := Name{ID: 7, Name: "Alice", Age: 30, City: "Austin"}

	tests := []struct {
		name      string
		candidate Candidate
		want      Name
		empty     bool
	}{
		{
			name:      "placeholders keep name and city, positive age overwrites",
			candidate: Candidate{Name: Placeholder, Age: 31, City: Placeholder},
			want:      Name{ID: 7, Name: "Alice", Age: 31, City: "Austin"},
		},
		{
			name:      "all fields supplied",
			candidate: Candidate{Name: "Bob", Age: 40, City: "Boston"},
			want:      Name{ID: 7, Name: "Bob", Age: 40, City: "Boston"},
		},
		{
			name:      "empty candidate changes nothing",
			candidate: Candidate{},
			want:      current,
			empty:     true,
		},
		{
			name:      "whitespace strings are ignored",
			candidate: Candidate{Name: "   ", City: "\t"},
			want:      current,
			empty:     true,
		},
		{
			name:      "zero and negative ages are ignored",
			candidate: Candidate{Age: -5},
			want:      current,
			empty:     true,
		},
		{
			name:      "largest age is accepted",
			candidate: Candidate{Age: MaxAge},
			want:      Name{ID: 7, Name: "Alice", Age: MaxAge, City: "Austin"},
		},
		{
			name:      "age above the column range is ignored",
			candidate: Candidate{Age: MaxAge + 1},
			want:      current,
			empty:     true,
		},
		{
			name:      "placeholder match is case sensitive",
			candidate: Candidate{Name: "String"},
			want:      Name{ID: 7, Name: "String", Age: 30, City: "Austin"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := PatchFrom(tt.candidate)
			assert.Equal(t, tt.empty, p.Empty())
			assert.Equal(t, tt.want, p.Apply(current))
		})
	}
}

func TestPatchOnlySetsUsableFields(t *testing.T) {
	p := PatchFrom(Candidate{Name: Placeholder, Age: 31})
	assert.Nil(t, p.Name)
	assert.Nil(t, p.City)
	require.NotNil(t, p.Age)
	assert.Equal(t, 31, *p.Age)
}

func TestCandidateRecordDropsNothing(t *testing.T) {
	c := Candidate{Name: "Alice", Age: 30, City: "Austin"}
	assert.Equal(t, Name{Name: "Alice", Age: 30, City: "Austin"}, c.Record())
}

func TestValidator(t *testing.T) {
	v := NewValidator()

	t.Run("valid candidate passes", func(t *testing.T) {
		require.NoError(t, v.Struct(Candidate{Name: "Alice", Age: 1}))
	})

	t.Run("city is optional", func(t *testing.T) {
		require.NoError(t, v.Struct(Candidate{Name: "Alice", Age: 30, City: ""}))
	})

	cases := []struct {
		name      string
		candidate Candidate
		field     string
		tag       string
	}{
		{"empty name", Candidate{Name: "", Age: 30}, "name", "notblank"},
		{"whitespace name", Candidate{Name: "  \t", Age: 30}, "name", "notblank"},
		{"zero age", Candidate{Name: "Alice", Age: 0}, "age", "gt"},
		{"negative age", Candidate{Name: "Alice", Age: -1}, "age", "gt"},
		{"age above int32", Candidate{Name: "Alice", Age: MaxAge + 1}, "age", "max"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := v.Struct(tc.candidate)
			require.Error(t, err)

			var verrs validator.ValidationErrors
			require.ErrorAs(t, err, &verrs)
			require.Len(t, verrs, 1)
			assert.Equal(t, tc.field, verrs[0].Field())
			assert.Equal(t, tc.tag, verrs[0].ActualTag())
		})
	}
}
