// Package budget implements the 50-30-20 budgeting rule: expense
// subcategories map to one of three fixed categories, and a monthly income
// splits into fixed target allocations for each of them.
package budget

// Category is one of the three budget categories of the 50-30-20 rule.
type Category string

const (
	CategoryNeeds   Category = "needs"
	CategoryWants   Category = "wants"
	CategorySavings Category = "savings"
)

// The subcategory vocabulary. The sets are disjoint, but not exhaustive:
// anything not listed here is treated as a want.
var (
	needsSubcategories = []string{
		"housing",
		"utilities",
		"groceries",
		"transportation",
		"insurance",
		"healthcare",
	}

	wantsSubcategories = []string{
		"dining",
		"entertainment",
		"shopping",
		"travel",
		"hobbies",
		"beauty",
	}

	savingsSubcategories = []string{
		"emergency",
		"retirement",
		"investments",
		"debt",
	}
)

// Subcategories returns the recognized subcategories for a category.
// For CategoryWants this is only the recognized wants vocabulary, even though
// Categorize maps every unknown subcategory to wants as well.
func Subcategories(category Category) []string {
	switch category {
	case CategoryNeeds:
		return needsSubcategories
	case CategorySavings:
		return savingsSubcategories
	default:
		return wantsSubcategories
	}
}

// Categorize maps a subcategory to its budget category.
//
// Subcategories that are not part of any recognized set fall back to wants.
// This is deliberate: a typo or a new, unknown subcategory must never fail
// expense creation, so there is no error path here.
func Categorize(subcategory string) Category {
	if contains(needsSubcategories, subcategory) {
		return CategoryNeeds
	}

	if contains(savingsSubcategories, subcategory) {
		return CategorySavings
	}

	return CategoryWants
}

func contains(set []string, s string) bool {
	for _, member := range set {
		if member == s {
			return true
		}
	}

	return false
}
