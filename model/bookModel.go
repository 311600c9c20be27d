// model/book.go
package model

type Book struct {
	ID     int64  `json:"id"`
	Title  string `json:"title"`
	Author string `json:"author"`
	ISBN   string `json:"isbn"`
}

// BookQuery carries the list filters and paging as read from the query string.
type BookQuery struct {
	Page    int
	PerPage int
	Title   string
	Author  string
}

// BookPage is one page of a filtered book listing.
type BookPage struct {
	Books   []Book `json:"books"`
	Total   int64  `json:"total"`
	Page    int    `json:"page"`
	PerPage int    `json:"per_page"`
}

// BookPatch holds the fields of a partial update; nil means keep the stored value.
type BookPatch struct {
	Title  *string
	Author *string
	ISBN   *string
}

// Apply copies every non-nil field of p onto b.
func (p BookPatch) Apply(b *Book) {
	if p.Title != nil {
		b.Title = *p.Title
	}
	if p.Author != nil {
		b.Author = *p.Author
	}
	if p.ISBN != nil {
		b.ISBN = *p.ISBN
	}
}
