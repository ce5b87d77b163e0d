package domain

// Category is a top-level branch of the catalog tree
type Category struct {
	ID            string        `json:"id"`
	Name          string        `json:"name"`
	Icon          string        `json:"icon"` // Font Awesome class, e.g. "fa-house"
	Subcategories []Subcategory `json:"subcategories"`
}

// Subcategory finds a direct child by id
func (c *Category) Subcategory(id string) (*Subcategory, bool) {
	return findSubcategory(c.Subcategories, id)
}

// Subcategory is either a group (has children) or a leaf that products attach to
type Subcategory struct {
	ID            string        `json:"id"`
	Name          string        `json:"name"`
	Subcategories []Subcategory `json:"subcategories,omitempty"`
}

// IsGroup reports whether the node has nested subcategories
func (s *Subcategory) IsGroup() bool {
	return len(s.Subcategories) > 0
}

// Child finds a nested subcategory by id
func (s *Subcategory) Child(id string) (*Subcategory, bool) {
	return findSubcategory(s.Subcategories, id)
}

// ChildIDs returns the ids of the nested subcategories in tree order
func (s *Subcategory) ChildIDs() []string {
	ids := make([]string, 0, len(s.Subcategories))
	for _, child := range s.Subcategories {
		ids = append(ids, child.ID)
	}
	return ids
}

func findSubcategory(subs []Subcategory, id string) (*Subcategory, bool) {
	for i := range subs {
		if subs[i].ID == id {
			return &subs[i], true
		}
	}
	return nil, false
}
