// internal/domain/models/enums.go
package models

// RestrictionType is the severity of a dietary restriction.
type RestrictionType string

const (
	RestrictionForbidden RestrictionType = "FORBIDDEN"
	RestrictionReduced   RestrictionType = "REDUCED"
)

func (t RestrictionType) Valid() bool {
	return t == RestrictionForbidden || t == RestrictionReduced
}

// Well-known restriction reasons. Restriction.Reason also accepts free
// text (e.g. "low sodium"), so these are not an exhaustive set.
const (
	ReasonVegetarian = "VEGETARIAN"
	ReasonVegan      = "VEGAN"
	ReasonGlutenFree = "GLUTEN_FREE"
	ReasonDairyFree  = "DAIRY_FREE"
	ReasonNoPork     = "NO_PORK"
	ReasonLowCarb    = "LOW_CARB"
	ReasonKosher     = "KOSHER"
)

// GroupRole is a member's role within its group.
type GroupRole string

const (
	RoleAdmin  GroupRole = "ADMIN"
	RoleMember GroupRole = "MEMBER"
)

func (r GroupRole) Valid() bool {
	return r == RoleAdmin || r == RoleMember
}

// Gender is used for nutritional calculations only.
type Gender string

const (
	GenderMale   Gender = "MALE"
	GenderFemale Gender = "FEMALE"
)

func (g Gender) Valid() bool {
	return g == GenderMale || g == GenderFemale
}

// ActivityLevel describes a member's daily physical activity.
type ActivityLevel string

const (
	ActivitySedentary        ActivityLevel = "SEDENTARY"
	ActivityLightlyActive    ActivityLevel = "LIGHTLY_ACTIVE"
	ActivityModeratelyActive ActivityLevel = "MODERATELY_ACTIVE"
	ActivityVeryActive       ActivityLevel = "VERY_ACTIVE"
)

func (a ActivityLevel) Valid() bool {
	switch a {
	case ActivitySedentary, ActivityLightlyActive, ActivityModeratelyActive, ActivityVeryActive:
		return true
	}
	return false
}

// HealthGoal is a wellness goal a member is working toward.
type HealthGoal string

const (
	GoalWeightLoss       HealthGoal = "WEIGHT_LOSS"
	GoalMuscleGain       HealthGoal = "MUSCLE_GAIN"
	GoalMaintenance      HealthGoal = "MAINTENANCE"
	GoalImproveDigestion HealthGoal = "IMPROVE_DIGESTION"
	GoalHeartHealth      HealthGoal = "HEART_HEALTH"
)

func (g HealthGoal) Valid() bool {
	switch g {
	case GoalWeightLoss, GoalMuscleGain, GoalMaintenance, GoalImproveDigestion, GoalHeartHealth:
		return true
	}
	return false
}

// BudgetLevel is a member's grocery budget bracket.
type BudgetLevel string

const (
	BudgetLow    BudgetLevel = "LOW"
	BudgetMedium BudgetLevel = "MEDIUM"
	BudgetHigh   BudgetLevel = "HIGH"
)

func (b BudgetLevel) Valid() bool {
	return b == BudgetLow || b == BudgetMedium || b == BudgetHigh
}

// CookingSkill rates how comfortable a member is in the kitchen.
type CookingSkill string

const (
	SkillBeginner     CookingSkill = "BEGINNER"
	SkillIntermediate CookingSkill = "INTERMEDIATE"
	SkillAdvanced     CookingSkill = "ADVANCED"
)

func (s CookingSkill) Valid() bool {
	return s == SkillBeginner || s == SkillIntermediate || s == SkillAdvanced
}
