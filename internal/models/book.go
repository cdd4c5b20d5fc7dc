package models

import (
	"strings"

	"github.com/dmitrijs2005/bookstore/internal/money"
)

// Book is one catalog record. ISBN is the unique key. A book created by
// selecting a fresh ISBN starts with every other field empty or zero.
type Book struct {
	ISBN     string
	Name     string
	Author   string
	Keywords string // pipe-separated, duplicate-free tokens
	Price    money.Amount
	Stock    int64
}

// HasKeyword reports whether kw equals one of the book's keyword tokens.
func (b *Book) HasKeyword(kw string) bool {
	for _, tok := range strings.Split(b.Keywords, "|") {
		if tok != "" && tok == kw {
			return true
		}
	}
	return false
}
