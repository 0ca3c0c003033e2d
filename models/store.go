package models

import "sync"

// Store owns the in-memory collections for the lifetime of the process. It is
// created once at startup and injected into the repositories; nothing else
// touches the slices. The lock serializes writers and gives readers a
// consistent snapshot when gin runs handlers on multiple goroutines.
type Store struct {
	sync.RWMutex
	Products  []Product
	BlogPosts []BlogPost
}

func NewStore() *Store {
	return &Store{
		Products:  SeedProducts(),
		BlogPosts: SeedBlogPosts(),
	}
}
