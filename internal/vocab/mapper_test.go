package vocab

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/ppiankov/rulegen/internal/model"
)

func TestFirstRating_Resolve(t *testing.T) {
	tests := []struct {
		label string
		kind  Kind
		want  string
	}{
		{"Very Satisfied", Mapped, RatingVerySatisfied},
		{"Somewhat Satisfied", Mapped, RatingSomewhatSatisfied},
		{"Neither Satisfied nor dissatisfied", Mapped, RatingNeither},
		{"Somewhat Dissatisfied", Mapped, RatingSomewhatDissatisfied},
		{"", Fallback, RatingSomewhatDissatisfied},
		{"very satisfied", Unmapped, RatingSomewhatDissatisfied},
		{"Extremely Satisfied", Unmapped, RatingSomewhatDissatisfied},
	}

	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			r := FirstRating.Resolve(tt.label)
			if r.Kind != tt.kind {
				t.Errorf("Expected kind %s, got %s", tt.kind, r.Kind)
			}
			if r.Value != tt.want {
				t.Errorf("Expected %q, got %q", tt.want, r.Value)
			}
		})
	}
}

func TestSecondRating_NAIsMapped(t *testing.T) {
	r := SecondRating.Resolve("N/A")
	if r.Kind != Mapped {
		t.Errorf("Expected N/A to be mapped, got %s", r.Kind)
	}
	if r.Value != "" {
		t.Errorf("Expected empty reason, got %q", r.Value)
	}

	r = SecondRating.Resolve("Not preferred Service")
	if r.Value != ReasonNotProvided {
		t.Errorf("Expected %q, got %q", ReasonNotProvided, r.Value)
	}
}

func TestJobTypes_Resolve(t *testing.T) {
	tests := []struct {
		label string
		kind  Kind
		want  model.JobType
	}{
		{"Auto Accident", Mapped, model.JobTypePersonalInjury},
		{"Slip and Fall", Mapped, model.JobTypePersonalInjury},
		{"Workers Compensation", Mapped, model.JobTypeWorkersCompensation},
		{"N/A", Mapped, model.JobTypeNone},
		{"n/a", Mapped, model.JobTypeNone},
		{"N/a", Unmapped, model.JobTypeNone},
		{"Dog Bite", Unmapped, model.JobTypeNone},
		{"", Fallback, model.JobTypeNone},
	}

	for _, tt := range tests {
		r := JobTypes.Resolve(tt.label)
		if r.Kind != tt.kind || r.Value != tt.want {
			t.Errorf("JobTypes.Resolve(%q) = (%s, %q), want (%s, %q)", tt.label, r.Kind, r.Value, tt.kind, tt.want)
		}
	}
}

func TestMapper_ApplyRecordsOnlyUnmapped(t *testing.T) {
	acc := NewUnmappedSet()

	JobTypes.Apply("Auto Accident", acc)
	JobTypes.Apply("N/A", acc)
	JobTypes.Apply("", acc)
	JobTypes.Apply("Dog Bite", acc)
	JobTypes.Apply("Dog Bite", acc)
	FirstRating.Apply("Thrilled", acc)
	SecondRating.Apply("Maybe", acc)

	if acc.Len() != 3 {
		t.Fatalf("Expected 3 distinct unmapped labels, got %d", acc.Len())
	}
	if diff := cmp.Diff([]string{"Dog Bite"}, acc.Values(CategoryJobType)); diff != "" {
		t.Errorf("Job Type values mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"Thrilled"}, acc.Values(CategoryFirstRating)); diff != "" {
		t.Errorf("First Rating values mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"Maybe"}, acc.Values(CategorySecondRating)); diff != "" {
		t.Errorf("Second Rating values mismatch (-want +got):\n%s", diff)
	}
}

func TestMapper_ApplyNilAccumulator(t *testing.T) {
	if got := FirstRating.Apply("Thrilled", nil); got != RatingSomewhatDissatisfied {
		t.Errorf("Expected fallback, got %q", got)
	}
}

func TestUnmappedSet_Empty(t *testing.T) {
	acc := NewUnmappedSet()
	if !acc.Empty() {
		t.Error("Expected new set to be empty")
	}

	acc.Add(CategoryMarkAs, "")
	if !acc.Empty() {
		t.Error("Expected blank label to be ignored")
	}

	acc.Add(CategoryMarkAs, "Pending")
	acc.Add(CategoryMarkAs, "Callback")
	if acc.Empty() {
		t.Error("Expected set with Mark As values to be non-empty")
	}
	if !acc.Empty(MapperCategories...) {
		t.Error("Mark As values should not count against the mapper categories")
	}
	if diff := cmp.Diff([]string{"Callback", "Pending"}, acc.Values(CategoryMarkAs)); diff != "" {
		t.Errorf("Values not sorted (-want +got):\n%s", diff)
	}
	if got := acc.Values(CategoryJobType); len(got) != 0 {
		t.Errorf("Expected no Job Type values, got %v", got)
	}
}
