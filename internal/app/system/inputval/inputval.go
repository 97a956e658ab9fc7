// internal/app/system/inputval/inputval.go

// Package inputval validates caller-supplied group and member input
// before any store call. A failed validation is never partially applied:
// the caller gets a ValidationError naming every offending field and the
// store is not touched.
package inputval

import (
	"errors"
	"fmt"
	"strings"

	"github.com/lbertrand/familyserve/internal/domain/models"
)

// MaxGroupNameLen bounds group names (matches the groups collection
// schema validator).
const MaxGroupNameLen = 200

// ValidationError reports one or more invalid input fields.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return "invalid input: " + strings.Join(e.Fields, ", ")
}

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// ValidateGroupName checks a group name is already trimmed, non-empty
// and within length bounds.
func ValidateGroupName(name string) error {
	var fields []string
	if strings.TrimSpace(name) == "" {
		fields = append(fields, "name must not be empty")
	} else if name != strings.TrimSpace(name) {
		fields = append(fields, "name must be trimmed")
	}
	if len(name) > MaxGroupNameLen {
		fields = append(fields, fmt.Sprintf("name must be at most %d characters", MaxGroupNameLen))
	}
	if fields != nil {
		return &ValidationError{Fields: fields}
	}
	return nil
}

// ValidateNewMember checks the required member attributes and the value
// ranges of the optional ones. The member's ID is ignored: identifiers
// are store-assigned.
func ValidateNewMember(m models.MemberProfile) error {
	var fields []string

	if !m.Role.Valid() {
		fields = append(fields, "role must be ADMIN or MEMBER")
	}
	if strings.TrimSpace(m.FirstName) == "" {
		fields = append(fields, "firstName must not be empty")
	}
	if strings.TrimSpace(m.LastName) == "" {
		fields = append(fields, "lastName must not be empty")
	}
	if m.Age < 0 {
		fields = append(fields, "age must not be negative")
	}
	if !m.Gender.Valid() {
		fields = append(fields, "gender must be MALE or FEMALE")
	}
	fields = append(fields, optionalFieldProblems(m)...)
	fields = append(fields, restrictionProblems(m.DietaryProfile.Restrictions)...)

	if fields != nil {
		return &ValidationError{Fields: fields}
	}
	return nil
}

func optionalFieldProblems(m models.MemberProfile) []string {
	var fields []string
	if m.WeightKg != nil && *m.WeightKg <= 0 {
		fields = append(fields, "weightKg must be positive")
	}
	if m.HeightCm != nil && *m.HeightCm <= 0 {
		fields = append(fields, "heightCm must be positive")
	}
	if m.ActivityLevel != "" && !m.ActivityLevel.Valid() {
		fields = append(fields, "activityLevel is not a known value")
	}
	for _, g := range m.HealthGoals {
		if !g.Valid() {
			fields = append(fields, fmt.Sprintf("healthGoals contains unknown value %q", g))
		}
	}
	if nt := m.NutritionTargets; nt != nil {
		if nt.TargetCalories != nil && *nt.TargetCalories < 0 {
			fields = append(fields, "nutritionTargets.targetCalories must not be negative")
		}
		if nt.ProteinGr != nil && *nt.ProteinGr < 0 {
			fields = append(fields, "nutritionTargets.proteinGr must not be negative")
		}
		if nt.CarbsGr != nil && *nt.CarbsGr < 0 {
			fields = append(fields, "nutritionTargets.carbsGr must not be negative")
		}
		if nt.FatsGr != nil && *nt.FatsGr < 0 {
			fields = append(fields, "nutritionTargets.fatsGr must not be negative")
		}
	}
	if m.BudgetLevel != "" && !m.BudgetLevel.Valid() {
		fields = append(fields, "budgetLevel is not a known value")
	}
	if m.CookingSkill != "" && !m.CookingSkill.Valid() {
		fields = append(fields, "cookingSkill is not a known value")
	}
	if m.MealFrequency != nil && (*m.MealFrequency < 1 || *m.MealFrequency > 10) {
		fields = append(fields, "mealFrequency must be between 1 and 10")
	}
	return fields
}

// ValidateRestriction checks a single dietary restriction. Reason may be
// a well-known constant or free text, but must not be empty.
func ValidateRestriction(r models.Restriction) error {
	if fields := restrictionProblems([]models.Restriction{r}); fields != nil {
		return &ValidationError{Fields: fields}
	}
	return nil
}

func restrictionProblems(rs []models.Restriction) []string {
	var fields []string
	for _, r := range rs {
		if !r.Type.Valid() {
			fields = append(fields, "restriction type must be FORBIDDEN or REDUCED")
		}
		if strings.TrimSpace(r.Reason) == "" {
			fields = append(fields, "restriction reason must not be empty")
		}
	}
	return fields
}

// ValidateAllergy checks a single allergy value.
func ValidateAllergy(allergy string) error {
	if strings.TrimSpace(allergy) == "" {
		return &ValidationError{Fields: []string{"allergy must not be empty"}}
	}
	return nil
}
