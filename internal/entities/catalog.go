package entities

// User is a login credential seeded from the users source file.
// Passwords are stored and compared as plain text.
type User struct {
	ID       uint   `gorm:"column:user_id;primaryKey;autoIncrement" json:"user_id"`
	Username string `gorm:"column:username;type:text;not null" json:"username"`
	Password string `gorm:"column:password;type:text;not null" json:"-"`
}

// Book is a catalog entry. Title uniqueness is checked by the catalog on
// create only, so the column carries no unique index.
type Book struct {
	ID        uint   `gorm:"column:book_id;primaryKey;autoIncrement" json:"book_id"`
	Title     string `gorm:"column:title;type:text;not null" json:"title"`
	Author    string `gorm:"column:author;type:text;not null" json:"author"`
	Publisher string `gorm:"column:publisher;type:text;not null" json:"publisher"`
	Year      int    `gorm:"column:year;type:integer;not null" json:"year"`
}

func (User) TableName() string {
	return "users"
}

func (Book) TableName() string {
	return "books"
}

// BookRecord is the on-disk shape of a book in the book source and the
// export snapshot. Field order here is the key order in the written JSON.
type BookRecord struct {
	Title     string `json:"title"`
	Author    string `json:"author"`
	Publisher string `json:"publisher"`
	Year      int    `json:"year"`
}

// Record drops the identity of b.
func (b Book) Record() BookRecord {
	return BookRecord{
		Title:     b.Title,
		Author:    b.Author,
		Publisher: b.Publisher,
		Year:      b.Year,
	}
}

// Book builds an unsaved Book from r.
func (r BookRecord) Book() Book {
	return Book{
		Title:     r.Title,
		Author:    r.Author,
		Publisher: r.Publisher,
		Year:      r.Year,
	}
}
