package entities

// Locale is one entry of the language picker.
type Locale struct {
	Code string `json:"code"`
	Name string `json:"name"`
}
