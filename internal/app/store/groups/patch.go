// internal/app/store/groups/patch.go
package groupstore

import (
	"github.com/lbertrand/familyserve/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MemberPatch is a partial member update. A nil field means "leave
// unchanged"; a non-nil field fully replaces that field's value. Only
// the fields enumerated here are ever written; anything else a caller
// supplies (unknown JSON keys and the member identity included) is
// silently dropped, so the set of writable dotted paths is fixed and
// auditable.
type MemberPatch struct {
	Role      *models.GroupRole `json:"role"`
	FirstName *string           `json:"firstName"`
	LastName  *string           `json:"lastName"`
	Age       *int              `json:"age"`
	Gender    *models.Gender    `json:"gender"`

	WeightKg         *float64                 `json:"weightKg"`
	HeightCm         *float64                 `json:"heightCm"`
	ActivityLevel    *models.ActivityLevel    `json:"activityLevel"`
	HealthGoals      *[]models.HealthGoal     `json:"healthGoals"`
	NutritionTargets *models.NutritionTargets `json:"nutritionTargets"`

	DietaryProfile *DietaryPatch `json:"dietaryProfile"`

	CuisinePreferences *[]string            `json:"cuisinePreferences"`
	BudgetLevel        *models.BudgetLevel  `json:"budgetLevel"`
	CookingSkill       *models.CookingSkill `json:"cookingSkill"`
	MealFrequency      *int                 `json:"mealFrequency"`
	FastingWindow      *string              `json:"fastingWindow"`
}

// DietaryPatch addresses the leaves of the nested dietary profile
// independently: supplying one leaf never touches its siblings.
type DietaryPatch struct {
	Preferences  *PreferencesPatch     `json:"preferences"`
	Allergies    *[]string             `json:"allergies"`
	Restrictions *[]models.Restriction `json:"restrictions"`
	HealthNotes  *string               `json:"healthNotes"`
}

// PreferencesPatch addresses the two preference lists independently.
type PreferencesPatch struct {
	Likes    *[]string `json:"likes"`
	Dislikes *[]string `json:"dislikes"`
}

// IsZero reports whether the patch names no recognized field at all, in
// which case the engine performs no write.
func (p MemberPatch) IsZero() bool {
	return len(p.setDoc("members.$.")) == 0
}

// setDoc flattens the patch into dotted-path assignments under prefix
// (e.g. "members.$."). This enumeration is the whitelist of writable
// paths; nothing outside it can be written.
func (p MemberPatch) setDoc(prefix string) bson.M {
	set := bson.M{}

	if p.Role != nil {
		set[prefix+"role"] = *p.Role
	}
	if p.FirstName != nil {
		set[prefix+"first_name"] = *p.FirstName
	}
	if p.LastName != nil {
		set[prefix+"last_name"] = *p.LastName
	}
	if p.Age != nil {
		set[prefix+"age"] = *p.Age
	}
	if p.Gender != nil {
		set[prefix+"gender"] = *p.Gender
	}
	if p.WeightKg != nil {
		set[prefix+"weight_kg"] = *p.WeightKg
	}
	if p.HeightCm != nil {
		set[prefix+"height_cm"] = *p.HeightCm
	}
	if p.ActivityLevel != nil {
		set[prefix+"activity_level"] = *p.ActivityLevel
	}
	if p.HealthGoals != nil {
		set[prefix+"health_goals"] = *p.HealthGoals
	}
	if p.NutritionTargets != nil {
		set[prefix+"nutrition_targets"] = *p.NutritionTargets
	}
	if p.CuisinePreferences != nil {
		set[prefix+"cuisine_preferences"] = *p.CuisinePreferences
	}
	if p.BudgetLevel != nil {
		set[prefix+"budget_level"] = *p.BudgetLevel
	}
	if p.CookingSkill != nil {
		set[prefix+"cooking_skill"] = *p.CookingSkill
	}
	if p.MealFrequency != nil {
		set[prefix+"meal_frequency"] = *p.MealFrequency
	}
	if p.FastingWindow != nil {
		set[prefix+"fasting_window"] = *p.FastingWindow
	}

	if dp := p.DietaryProfile; dp != nil {
		if dp.Preferences != nil {
			if dp.Preferences.Likes != nil {
				set[prefix+"dietary_profile.preferences.likes"] = *dp.Preferences.Likes
			}
			if dp.Preferences.Dislikes != nil {
				set[prefix+"dietary_profile.preferences.dislikes"] = *dp.Preferences.Dislikes
			}
		}
		if dp.Allergies != nil {
			set[prefix+"dietary_profile.allergies"] = *dp.Allergies
		}
		if dp.Restrictions != nil {
			set[prefix+"dietary_profile.restrictions"] = withRestrictionIDs(*dp.Restrictions)
		}
		if dp.HealthNotes != nil {
			set[prefix+"dietary_profile.health_notes"] = *dp.HealthNotes
		}
	}

	return set
}

// withRestrictionIDs assigns a fresh ObjectID to any restriction that
// arrived without one, so every stored restriction is addressable by the
// pull-by-identifier operations.
func withRestrictionIDs(rs []models.Restriction) []models.Restriction {
	out := make([]models.Restriction, len(rs))
	for i, r := range rs {
		if r.ID.IsZero() {
			r.ID = primitive.NewObjectID()
		}
		out[i] = r
	}
	return out
}
