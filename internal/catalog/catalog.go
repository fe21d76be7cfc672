// Package catalog defines the static feature catalog for the e-commerce
// product line. The catalog is fixed at build time and never mutated.
package catalog

// Component is a single selectable microservice feature.
type Component struct {
	// ID is the feature identifier used in selections and commands.
	ID string

	// Name is the human-readable service name.
	Name string

	// Description is a one-line summary shown in menus and listings.
	Description string

	// Required marks features that every product variant must include.
	Required bool
}

// Category groups components that share a selection policy.
type Category struct {
	// ID is the category identifier ("core" or "optional").
	ID string

	// Description is shown as the category heading.
	Description string

	// Components lists the category's features in display order.
	Components []Component
}

// categories is the internal registry of the product line.
var categories = []Category{
	{
		ID:          "core",
		Description: "Core services required for basic e-commerce functionality",
		Components: []Component{
			{ID: "gateway", Name: "API Gateway", Description: "Entry point for all client requests", Required: true},
			{ID: "user", Name: "User Service", Description: "User authentication and profile management", Required: true},
			{ID: "catalog", Name: "Catalog Service", Description: "Product catalog management", Required: true},
			{ID: "cart", Name: "Cart Service", Description: "Shopping cart management", Required: true},
			{ID: "orders", Name: "Order Service", Description: "Order processing and management", Required: true},
			{ID: "payments", Name: "Payment Service", Description: "Payment processing", Required: true},
			{ID: "inventory", Name: "Inventory Service", Description: "Stock management", Required: true},
		},
	},
	{
		ID:          "optional",
		Description: "Optional services to enhance e-commerce functionality",
		Components: []Component{
			{ID: "reviews", Name: "Reviews Service", Description: "Product reviews and ratings"},
			{ID: "discounts", Name: "Discounts Service", Description: "Promotional offers and discount management"},
			{ID: "admin", Name: "Admin Dashboard Service", Description: "Administrative interface backend"},
		},
	},
}

// Categories returns all categories in display order.
// The returned slice is a copy; callers may not mutate the catalog.
func Categories() []Category {
	out := make([]Category, len(categories))
	for i, c := range categories {
		out[i] = Category{
			ID:          c.ID,
			Description: c.Description,
			Components:  append([]Component(nil), c.Components...),
		}
	}
	return out
}

// CategoryIDs returns the category identifiers in display order.
func CategoryIDs() []string {
	ids := make([]string, len(categories))
	for i, c := range categories {
		ids[i] = c.ID
	}
	return ids
}

// LookupCategory returns a category by id.
func LookupCategory(id string) (Category, bool) {
	for _, c := range categories {
		if c.ID == id {
			return Category{
				ID:          c.ID,
				Description: c.Description,
				Components:  append([]Component(nil), c.Components...),
			}, true
		}
	}
	return Category{}, false
}

// Lookup returns a component by category and feature id.
func Lookup(categoryID, featureID string) (Component, bool) {
	for _, c := range categories {
		if c.ID != categoryID {
			continue
		}
		for _, comp := range c.Components {
			if comp.ID == featureID {
				return comp, true
			}
		}
	}
	return Component{}, false
}

// Required returns the ids of a category's required components in display order.
func Required(categoryID string) []string {
	var ids []string
	for _, c := range categories {
		if c.ID != categoryID {
			continue
		}
		for _, comp := range c.Components {
			if comp.Required {
				ids = append(ids, comp.ID)
			}
		}
	}
	return ids
}
