package shop

import (
	"github.com/digistorehq/digistore/core/catalog"
	"github.com/digistorehq/digistore/store"
)

// Content tree edits. Like the tree primitives themselves, operations
// addressing an unknown product, module or file id are silent no-ops;
// the admin tooling depends on that tolerance.

func (s *Shop) editTree(productID int, fn func([]catalog.Module) []catalog.Module) {
	for i, p := range s.products {
		if p.ID == productID {
			s.products[i].Content = fn(p.Content)
			s.sync(store.KeyProducts)
			return
		}
	}
}

// AddModule appends a module under parentID (root when empty) and
// returns the new module's id, or "" when the product is unknown.
func (s *Shop) AddModule(productID int, parentID, title string) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	var id string
	s.editTree(productID, func(tree []catalog.Module) []catalog.Module {
		next, newID := catalog.AddModule(tree, parentID, title)
		id = newID
		return next
	})
	return id
}

// RenameModule sets a module's title.
func (s *Shop) RenameModule(productID int, moduleID, title string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.editTree(productID, func(tree []catalog.Module) []catalog.Module {
		return catalog.SetTitle(tree, moduleID, title)
	})
}

// DeleteModule removes a module and everything below it.
func (s *Shop) DeleteModule(productID int, moduleID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.editTree(productID, func(tree []catalog.Module) []catalog.Module {
		return catalog.DeleteModule(tree, moduleID)
	})
}

// AddFile appends a file to a module and returns the new file's id,
// or "" when the product is unknown.
func (s *Shop) AddFile(productID int, moduleID string, nf catalog.FileNew) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	f := catalog.File{
		Name:    nf.Name,
		Type:    catalog.FileType(nf.Type),
		URL:     nf.URL,
		Content: nf.Content,
	}

	var id string
	s.editTree(productID, func(tree []catalog.Module) []catalog.Module {
		next, newID := catalog.AddFile(tree, moduleID, f)
		id = newID
		return next
	})
	return id
}

// DeleteFile removes a file from a module.
func (s *Shop) DeleteFile(productID int, moduleID, fileID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.editTree(productID, func(tree []catalog.Module) []catalog.Module {
		return catalog.DeleteFile(tree, moduleID, fileID)
	})
}

// FindFile looks a file up anywhere in a product's tree.
func (s *Shop) FindFile(productID int, fileID string) (catalog.File, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.productLocked(productID)
	if !ok {
		return catalog.File{}, false
	}
	return catalog.FindFile(p.Content, fileID)
}
