package warung

import (
	"errors"
	"time"
)

// AddCategory validates and stores a new category.
func (s *Store) AddCategory(c Category) (*Category, error) {
	if c.Name == "" {
		return nil, errors.New("category name is required")
	}
	s.mu.Lock()
	now := time.Now()
	c.ID = NewID()
	c.CreatedAt = now
	c.UpdatedAt = now
	s.categories[c.ID] = &c
	cp := c
	s.mu.Unlock()
	s.markDirty()
	return &cp, nil
}

// UpdateCategory renames a category and refreshes the name snapshot of every
// product referencing it.
func (s *Store) UpdateCategory(id ID, name, description string) (*Category, error) {
	if name == "" {
		return nil, errors.New("category name is required")
	}
	s.mu.Lock()
	c, ok := s.categories[id]
	if !ok {
		s.mu.Unlock()
		return nil, ErrCategoryNotFound
	}
	c.Name = name
	c.Description = description
	c.UpdatedAt = time.Now()
	for _, p := range s.products {
		if p.CategoryID == id {
			p.Category = name
		}
	}
	cp := *c
	s.mu.Unlock()
	s.markDirty()
	return &cp, nil
}

// DeleteCategory removes the category. Products referencing it are orphaned,
// not deleted: their weak reference and name snapshot are cleared.
func (s *Store) DeleteCategory(id ID) error {
	s.mu.Lock()
	if _, ok := s.categories[id]; !ok {
		s.mu.Unlock()
		return ErrCategoryNotFound
	}
	delete(s.categories, id)
	for _, p := range s.products {
		if p.CategoryID == id {
			p.CategoryID = ""
			p.Category = ""
		}
	}
	s.mu.Unlock()
	s.markDirty()
	return nil
}
