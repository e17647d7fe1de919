// SPDX-License-Identifier: MIT

// Package iterator demonstrates the Iterator pattern over a book collection,
// in both the classic HasNext/Next form and as a Go range-over-func sequence.
package iterator

import "iter"

// Book is the collection element.
type Book struct {
	Title string
}

// BookIterator walks a snapshot of a collection from the first book.
type BookIterator interface {
	HasNext() bool
	Next() Book
}

// Aggregate creates iterators.
type Aggregate interface {
	CreateIterator() BookIterator
}

// BookCollection is the concrete aggregate.
type BookCollection struct {
	books []Book
}

// AddBook appends b.
func (c *BookCollection) AddBook(b Book) {
	c.books = append(c.books, b)
}

// Len returns the number of books.
func (c *BookCollection) Len() int { return len(c.books) }

// CreateIterator returns an iterator positioned before the first book.
// Books added later are not seen by an existing iterator.
func (c *BookCollection) CreateIterator() BookIterator {
	return &bookIterator{books: c.books[:len(c.books):len(c.books)]}
}

// All yields the books in insertion order.
func (c *BookCollection) All() iter.Seq[Book] {
	return func(yield func(Book) bool) {
		for _, b := range c.books {
			if !yield(b) {
				return
			}
		}
	}
}

type bookIterator struct {
	books []Book
	pos   int
}

func (it *bookIterator) HasNext() bool {
	return it.pos < len(it.books)
}

// Next returns the current book and advances. Calling Next when HasNext is
// false returns the zero Book.
func (it *bookIterator) Next() Book {
	if !it.HasNext() {
		return Book{}
	}
	b := it.books[it.pos]
	it.pos++
	return b
}
