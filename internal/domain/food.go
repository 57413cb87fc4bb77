package domain

// FoodSort orders the top-foods listing by purchase count.
type FoodSort string

const (
	FoodSortPurchaseCountAsc  FoodSort = "purchaseCount_ASC"
	FoodSortPurchaseCountDesc FoodSort = "purchaseCount_DESC"
)

// ParseFoodSort maps the sort query value; anything but the descending token sorts ascending.
func ParseFoodSort(raw string) FoodSort {
	if raw == string(FoodSortPurchaseCountDesc) {
		return FoodSortPurchaseCountDesc
	}
	return FoodSortPurchaseCountAsc
}

// Descending reports whether s sorts highest purchase count first.
func (s FoodSort) Descending() bool {
	return s == FoodSortPurchaseCountDesc
}

// TopFoodsLimit is the fixed page size of the top-foods listing.
const TopFoodsLimit = 6

// FoodPage selects a page of the name-filtered food listing. Page is 1-indexed;
// Size 0 means no limit.
type FoodPage struct {
	Page   int
	Size   int
	Search string
}

// Skip is the number of documents before the page.
func (p FoodPage) Skip() int {
	if p.Page <= 1 || p.Size <= 0 {
		return 0
	}
	return (p.Page - 1) * p.Size
}
