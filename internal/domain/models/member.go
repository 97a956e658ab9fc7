// internal/domain/models/member.go
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// NutritionTargets holds per-member macro targets. All amounts are
// optional; Rationale is free text explaining where the numbers came from.
type NutritionTargets struct {
	TargetCalories *int   `bson:"target_calories,omitempty" json:"targetCalories,omitempty"`
	ProteinGr      *int   `bson:"protein_gr,omitempty" json:"proteinGr,omitempty"`
	CarbsGr        *int   `bson:"carbs_gr,omitempty" json:"carbsGr,omitempty"`
	FatsGr         *int   `bson:"fats_gr,omitempty" json:"fatsGr,omitempty"`
	Rationale      string `bson:"rationale,omitempty" json:"rationale,omitempty"`
}

// Restriction is a single dietary rule. Reason is one of the well-known
// reason constants or free text.
type Restriction struct {
	ID     primitive.ObjectID `bson:"_id" json:"id"`
	Type   RestrictionType    `bson:"type" json:"type"`
	Reason string             `bson:"reason" json:"reason"`
	Notes  string             `bson:"notes,omitempty" json:"notes,omitempty"`
}

// Preferences are ordered like/dislike lists of foods or dishes.
type Preferences struct {
	Likes    []string `bson:"likes" json:"likes"`
	Dislikes []string `bson:"dislikes" json:"dislikes"`
}

// DietaryProfile is the required nested dietary sub-structure of a member.
// Each leaf (likes, dislikes, allergies, restrictions, health_notes) is
// independently addressable by the mutation engine.
type DietaryProfile struct {
	Preferences  Preferences   `bson:"preferences" json:"preferences"`
	Allergies    []string      `bson:"allergies" json:"allergies"`
	Restrictions []Restriction `bson:"restrictions" json:"restrictions"`
	HealthNotes  string        `bson:"health_notes,omitempty" json:"healthNotes,omitempty"`
}

// MemberProfile is one person's profile, embedded in its group document.
// A member never exists outside its parent group's members array; the ID
// is unique within that array, not globally.
type MemberProfile struct {
	ID        primitive.ObjectID `bson:"_id" json:"id"`
	Role      GroupRole          `bson:"role" json:"role"`
	FirstName string             `bson:"first_name" json:"firstName"`
	LastName  string             `bson:"last_name" json:"lastName"`
	Age       int                `bson:"age" json:"age"`
	Gender    Gender             `bson:"gender" json:"gender"`

	WeightKg         *float64          `bson:"weight_kg,omitempty" json:"weightKg,omitempty"`
	HeightCm         *float64          `bson:"height_cm,omitempty" json:"heightCm,omitempty"`
	ActivityLevel    ActivityLevel     `bson:"activity_level,omitempty" json:"activityLevel,omitempty"`
	HealthGoals      []HealthGoal      `bson:"health_goals,omitempty" json:"healthGoals,omitempty"`
	NutritionTargets *NutritionTargets `bson:"nutrition_targets,omitempty" json:"nutritionTargets,omitempty"`

	DietaryProfile DietaryProfile `bson:"dietary_profile" json:"dietaryProfile"`

	CuisinePreferences []string     `bson:"cuisine_preferences,omitempty" json:"cuisinePreferences,omitempty"`
	BudgetLevel        BudgetLevel  `bson:"budget_level,omitempty" json:"budgetLevel,omitempty"`
	CookingSkill       CookingSkill `bson:"cooking_skill,omitempty" json:"cookingSkill,omitempty"`
	MealFrequency      *int         `bson:"meal_frequency,omitempty" json:"mealFrequency,omitempty"`
	FastingWindow      string       `bson:"fasting_window,omitempty" json:"fastingWindow,omitempty"`
}

// HasRestriction reports whether the member has at least one restriction
// of the given type. An empty reason matches any reason for that type;
// otherwise the reason must match exactly (no case folding).
func (m MemberProfile) HasRestriction(t RestrictionType, reason string) bool {
	for _, r := range m.DietaryProfile.Restrictions {
		if r.Type != t {
			continue
		}
		if reason == "" || r.Reason == reason {
			return true
		}
	}
	return false
}
