package catalog

// Question is a single multiple-choice question from the catalog.
// Questions are immutable once loaded.
type Question struct {
	ID         int
	Text       string
	Options    []string
	Answer     int // index into Options of the correct choice
	Topic      string
	Difficulty int // 1 (easy) to 5 (hard)
}

// Catalog is the loaded question bank: an ordered list plus an ID index.
type Catalog struct {
	questions []Question
	byID      map[int]*Question
}

// New builds a Catalog from a slice of questions. Later duplicates of an
// ID shadow earlier ones in the index but keep their place in the list.
func New(questions []Question) *Catalog {
	c := &Catalog{
		questions: questions,
		byID:      make(map[int]*Question, len(questions)),
	}
	for i := range c.questions {
		c.byID[c.questions[i].ID] = &c.questions[i]
	}
	return c
}

// ByID returns the question with the given ID, or false if absent.
func (c *Catalog) ByID(id int) (Question, bool) {
	q, ok := c.byID[id]
	if !ok {
		return Question{}, false
	}
	return *q, true
}

// All returns the questions in load order.
func (c *Catalog) All() []Question {
	return c.questions
}

// Len returns the number of questions in the catalog.
func (c *Catalog) Len() int {
	return len(c.questions)
}
