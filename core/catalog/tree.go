package catalog

import (
	"github.com/digistorehq/digistore/validate"
)

// The tree operations below are pure: they return a rebuilt module
// list and never touch the input. Sibling order is preserved, and an
// operation addressing an id that does not exist anywhere in the tree
// is a silent no-op returning an equivalent tree. Admin tooling relies
// on that tolerance, so unknown ids must not become errors.

// NewModuleID allocates an id unique for the lifetime of the product.
func NewModuleID() string {
	return "mod-" + validate.GenerateID()
}

// NewFileID allocates an id unique within the owning module's files.
func NewFileID() string {
	return "file-" + validate.GenerateID()
}

// FindFile locates a file by id anywhere in the tree, depth first.
func FindFile(modules []Module, fileID string) (File, bool) {
	for _, m := range modules {
		for _, f := range m.Files {
			if f.ID == fileID {
				return f, true
			}
		}
		if f, ok := FindFile(m.Modules, fileID); ok {
			return f, true
		}
	}
	return File{}, false
}

// FindFirstFile returns the first file in document order. The course
// player uses it to pick the initial selection.
func FindFirstFile(modules []Module) (File, bool) {
	for _, m := range modules {
		if len(m.Files) > 0 {
			return m.Files[0], true
		}
		if f, ok := FindFirstFile(m.Modules); ok {
			return f, true
		}
	}
	return File{}, false
}

// FindModule locates a module by id anywhere in the tree.
func FindModule(modules []Module, moduleID string) (Module, bool) {
	for _, m := range modules {
		if m.ID == moduleID {
			return m, true
		}
		if sub, ok := FindModule(m.Modules, moduleID); ok {
			return sub, true
		}
	}
	return Module{}, false
}

// UpsertFiles rebuilds the tree applying fn to the file list of the
// module with the given id.
func UpsertFiles(modules []Module, moduleID string, fn func([]File) []File) []Module {
	out := make([]Module, len(modules))
	for i, m := range modules {
		if m.ID == moduleID {
			m.Files = fn(copyFiles(m.Files))
		} else if len(m.Modules) > 0 {
			m.Modules = UpsertFiles(m.Modules, moduleID, fn)
		}
		out[i] = m
	}
	return out
}

// UpsertModules rebuilds the tree applying fn to the child list of the
// module with the given parent id. An empty parentID applies fn to the
// top-level list itself.
func UpsertModules(modules []Module, parentID string, fn func([]Module) []Module) []Module {
	if parentID == "" {
		return fn(copyModules(modules))
	}
	out := make([]Module, len(modules))
	for i, m := range modules {
		if m.ID == parentID {
			m.Modules = fn(copyModules(m.Modules))
		} else if len(m.Modules) > 0 {
			m.Modules = UpsertModules(m.Modules, parentID, fn)
		}
		out[i] = m
	}
	return out
}

// SetTitle renames the module with the given id.
func SetTitle(modules []Module, moduleID, title string) []Module {
	out := make([]Module, len(modules))
	for i, m := range modules {
		if m.ID == moduleID {
			m.Title = title
		} else if len(m.Modules) > 0 {
			m.Modules = SetTitle(m.Modules, moduleID, title)
		}
		out[i] = m
	}
	return out
}

// AddModule appends a new empty module under parentID (root when empty)
// and returns the rebuilt tree together with the new module's id.
func AddModule(modules []Module, parentID, title string) ([]Module, string) {
	id := NewModuleID()
	next := UpsertModules(modules, parentID, func(children []Module) []Module {
		return append(children, Module{ID: id, Title: title, Files: []File{}, Modules: []Module{}})
	})
	return next, id
}

// DeleteModule removes the module with the given id from wherever it
// sits in the tree, including the root list.
func DeleteModule(modules []Module, moduleID string) []Module {
	out := make([]Module, 0, len(modules))
	for _, m := range modules {
		if m.ID == moduleID {
			continue
		}
		if len(m.Modules) > 0 {
			m.Modules = DeleteModule(m.Modules, moduleID)
		}
		out = append(out, m)
	}
	return out
}

// AddFile appends a file to the module with the given id and returns
// the rebuilt tree together with the new file's id.
func AddFile(modules []Module, moduleID string, f File) ([]Module, string) {
	if f.ID == "" {
		f.ID = NewFileID()
	}
	next := UpsertFiles(modules, moduleID, func(files []File) []File {
		return append(files, f)
	})
	return next, f.ID
}

// DeleteFile removes the file with the given id from the module with
// the given id.
func DeleteFile(modules []Module, moduleID, fileID string) []Module {
	return UpsertFiles(modules, moduleID, func(files []File) []File {
		out := make([]File, 0, len(files))
		for _, f := range files {
			if f.ID != fileID {
				out = append(out, f)
			}
		}
		return out
	})
}

func copyFiles(files []File) []File {
	out := make([]File, len(files))
	copy(out, files)
	return out
}

func copyModules(modules []Module) []Module {
	out := make([]Module, len(modules))
	copy(out, modules)
	return out
}
