package port

// Tokenizer produces the filtered term stream keyword analysis runs on.
type Tokenizer interface {
	Keywords(text string) []string
}
