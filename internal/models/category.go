package models

import "strings"

// Category is a named spending bucket with display attributes.
type Category struct {
	ID               string `json:"id" yaml:"id" xml:"id,attr"`
	Name             string `json:"name" yaml:"name" xml:"name"`
	Color            string `json:"color" yaml:"color" xml:"color"`
	Icon             string `json:"icon" yaml:"icon" xml:"icon"`
	ParentCategoryID string `json:"parentCategoryId,omitempty" yaml:"parent_category_id,omitempty" xml:"parentCategoryId,omitempty"`
}

// NewCategory creates a root category that has not been persisted yet.
func NewCategory(name, color, icon string) Category {
	return Category{Name: name, Color: color, Icon: icon}
}

// NewSubcategory creates a category nested under parentID.
func NewSubcategory(name, color, icon, parentID string) Category {
	c := NewCategory(name, color, icon)
	c.ParentCategoryID = parentID
	return c
}

// IsRoot reports whether the category has no parent.
func (c Category) IsRoot() bool {
	return strings.TrimSpace(c.ParentCategoryID) == ""
}

// IsSubcategory reports whether the category is nested under another one.
func (c Category) IsSubcategory() bool {
	return !c.IsRoot()
}

// Key identifies the category for grouping: the ID when persisted, the
// lower-cased name otherwise.
func (c Category) Key() string {
	if c.ID != "" {
		return c.ID
	}
	return "name:" + strings.ToLower(c.Name)
}

// CategoryDetails are the canonical display attributes for a category name.
type CategoryDetails struct {
	Name  string `yaml:"name"`
	Color string `yaml:"color"`
	Icon  string `yaml:"icon"`
}
