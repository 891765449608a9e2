package todo

// Todo is a single task.
// ID is assigned at creation and never changes.
type Todo struct {
	ID        ID     `json:"id"`
	Title     string `json:"title"`
	Completed bool   `json:"completed"`
}

// Input carries the fields a caller may supply when creating or updating a Todo
type Input struct {
	Title string `json:"title"`
}

// New builds a Todo from input with a fresh ID and Completed=false
func New(in Input) Todo {
	return Todo{
		ID:    NewID(),
		Title: in.Title,
	}
}

// Apply replaces the title with the one from in.
// ID and Completed are left untouched.
func (t *Todo) Apply(in Input) {
	t.Title = in.Title
}
