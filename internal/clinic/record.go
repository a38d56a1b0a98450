package clinic

// Displayer is implemented by every record the console can show.
type Displayer interface {
	DisplayName() string
	Display() string
}

var (
	_ Displayer = Patient{}
	_ Displayer = Staff{}
)
