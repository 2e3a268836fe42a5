package greeting

// DefaultName is used when no name is given
const DefaultName = "World"

// Greet returns a greeting message for name
func Greet(name string) string {
	return "Hello, " + name + "!"
}

// GreetDefault greets DefaultName
func GreetDefault() string {
	return Greet(DefaultName)
}
