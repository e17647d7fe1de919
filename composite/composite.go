// SPDX-License-Identifier: MIT

// Package composite demonstrates the Composite pattern with a file-system
// tree: files (leaves) and directories (composites) share the Item interface,
// so a whole tree is displayed with a single call on its root.
//
// Display format: each line starts with `depth` dashes followed by
// " File: <name>" or " Directory: <name>"; children of a directory are
// displayed two levels deeper.
package composite

import (
	"reflect"
	"strings"

	"github.com/katalvlaran/patterns/internal/narrate"
)

// Indent is the depth added for each directory level.
const Indent = 2

// Item is a node of the tree.
type Item interface {
	Name() string
	Display(n *narrate.Narrator, depth int)
}

// File is a leaf.
type File struct {
	name string
}

// NewFile returns a leaf named name.
func NewFile(name string) *File {
	return &File{name: name}
}

// Name returns the file name.
func (f *File) Name() string { return f.name }

// Display prints the file line.
func (f *File) Display(n *narrate.Narrator, depth int) {
	n.Say(strings.Repeat("-", depth) + " File: " + f.name)
}

// Directory is a composite holding an ordered list of items.
type Directory struct {
	name  string
	items []Item
}

// NewDirectory returns an empty directory named name.
func NewDirectory(name string) *Directory {
	return &Directory{name: name}
}

// Name returns the directory name.
func (d *Directory) Name() string { return d.name }

// Add appends item to the directory.
func (d *Directory) Add(item Item) {
	d.items = append(d.items, item)
}

// Remove deletes the first occurrence of item. Removing an absent item is a
// no-op. Items are matched by ==; one whose dynamic type is not comparable
// never matches.
func (d *Directory) Remove(item Item) {
	for i, it := range d.items {
		if sameItem(it, item) {
			d.items = append(d.items[:i], d.items[i+1:]...)
			return
		}
	}
}

func sameItem(a, b Item) bool {
	ta := reflect.TypeOf(a)
	if ta != reflect.TypeOf(b) {
		return false
	}
	if ta == nil {
		return true
	}
	return reflect.ValueOf(a).Comparable() && a == b
}

// Items returns a copy of the directory's children in insertion order.
func (d *Directory) Items() []Item {
	out := make([]Item, len(d.items))
	copy(out, d.items)
	return out
}

// Display prints the directory line, then every child at depth+Indent.
func (d *Directory) Display(n *narrate.Narrator, depth int) {
	n.Say(strings.Repeat("-", depth) + " Directory: " + d.name)
	for _, item := range d.items {
		item.Display(n, depth+Indent)
	}
}

// Walk visits root and its descendants depth-first in pre-order, passing the
// same depth Display would use. Returning false from fn skips that item's children.
func Walk(root Item, fn func(item Item, depth int) bool) {
	walk(root, 0, fn)
}

func walk(item Item, depth int, fn func(Item, int) bool) {
	if !fn(item, depth) {
		return
	}
	if d, ok := item.(*Directory); ok {
		for _, child := range d.items {
			walk(child, depth+Indent, fn)
		}
	}
}
