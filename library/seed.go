package library

import "context"

// SeedItems returns fresh instances of the reference catalog: five items in
// each of the seven genres, print and digital interleaved.
func SeedItems() []*Item {
	p := NewPhysicalItem
	d := NewDigitalItem
	return []*Item{
		// Fantasy
		d("The Dragon's Heir", "Christopher Paolini", Fantasy, 420, AZW, StatusUndownloadable),
		p("Wizards of the North", "J.K. Rowling", Fantasy, 380, Hardcover, StatusAvailable),
		d("Blade of the Dawn", "Brandon Sanderson", Fantasy, 560, PDF, StatusDownloadable),
		p("Forest of Shadows", "Patrick Rothfuss", Fantasy, 490, Paperback, StatusUnavailable),
		d("The Enchanted Grove", "Leigh Bardugo", Fantasy, 350, EPUB, StatusDownloadable),

		// Romance
		d("Letters to Verona", "Nicholas Sparks", Romance, 310, TXT, StatusUndownloadable),
		p("Summer of Us", "Colleen Hoover", Romance, 290, Paperback, StatusAvailable),
		d("Chasing the Sunset", "Jojo Moyes", Romance, 280, DOCX, StatusDownloadable),
		p("The Heart's Journey", "Jane Austen", Romance, 400, Hardcover, StatusUnavailable),
		d("Paris in the Rain", "Debbie Macomber", Romance, 250, PDF, StatusUndownloadable),

		// Non-fiction
		d("The Art of Clarity", "Cal Newport", NonFiction, 200, AZW, StatusDownloadable),
		p("History of Civilizations", "Yuval Noah Harari", NonFiction, 480, Hardcover, StatusAvailable),
		d("Building Better Habits", "James Clear", NonFiction, 310, PDF, StatusUndownloadable),
		p("The Nature Explorer", "David Attenborough", NonFiction, 320, GraphicNovel, StatusUnavailable),
		d("Economics for Everyone", "Thomas Sowell", NonFiction, 270, HTML, StatusDownloadable),

		// Poetry
		p("Whispers of the Sea", "Rupi Kaur", Poetry, 150, Paperback, StatusAvailable),
		d("Moonlight Verses", "Pablo Neruda", Poetry, 180, EPUB, StatusUndownloadable),
		p("Songs for the Stars", "Maya Angelou", Poetry, 200, Hardcover, StatusUnavailable),
		d("Petals of Time", "Robert Frost", Poetry, 160, TXT, StatusDownloadable),
		p("The Quiet Garden", "Emily Dickinson", Poetry, 140, GraphicNovel, StatusAvailable),

		// Mystery
		d("The Vanishing Key", "Agatha Christie", Mystery, 340, AZW, StatusDownloadable),
		p("Shadows in the Fog", "Arthur Conan Doyle", Mystery, 320, Hardcover, StatusUnavailable),
		d("Murder at Hollow Manor", "Tana French", Mystery, 380, PDF, StatusUndownloadable),
		p("The Last Cipher", "Dan Brown", Mystery, 450, Paperback, StatusAvailable),
		d("Midnight Intrigue", "Ruth Ware", Mystery, 360, DOCX, StatusDownloadable),

		// Science fiction
		d("Neon Skies", "William Gibson", ScienceFiction, 420, AZW, StatusUndownloadable),
		p("The Quantum Horizon", "Isaac Asimov", ScienceFiction, 500, Hardcover, StatusUnavailable),
		d("Android's Dream", "Philip K. Dick", ScienceFiction, 390, EPUB, StatusDownloadable),
		p("Cosmic Voyage", "Carl Sagan", ScienceFiction, 410, GraphicNovel, StatusAvailable),
		d("Starlight Protocol", "Liu Cixin", ScienceFiction, 450, PDF, StatusUndownloadable),

		// Fiction
		p("The Silent Village", "Harper Lee", Fiction, 320, Paperback, StatusAvailable),
		d("Ocean Between Us", "Kazuo Ishiguro", Fiction, 280, TXT, StatusDownloadable),
		p("Beneath the Willow", "Margaret Atwood", Fiction, 350, Hardcover, StatusUnavailable),
		d("Paths of Glass", "Jhumpa Lahiri", Fiction, 300, DOCX, StatusUndownloadable),
		p("Voices in the Wind", "Chimamanda Ngozi Adichie", Fiction, 310, GraphicNovel, StatusAvailable),
	}
}

// NewSeedCatalog wraps SeedItems in a catalog.
func NewSeedCatalog() *Catalog {
	return NewCatalog(SeedItems()...)
}

// SeedSource serves the built-in fixture as a CatalogSource.
type SeedSource struct{}

func (SeedSource) LoadItems(context.Context) ([]*Item, error) {
	return SeedItems(), nil
}
