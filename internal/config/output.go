package config

// OutputConfig holds settings related to the report printed after loading.
type OutputConfig struct {
	// ShowBoard prints the rendered board
	ShowBoard bool

	// ListMoves prints every legal move of the side to move
	ListMoves bool

	// ShowThreats prints, for each threatened square, who threatens it
	ShowThreats bool
}

// NewOutputConfig creates an OutputConfig with default values.
func NewOutputConfig() *OutputConfig {
	return &OutputConfig{
		ShowBoard: true,
	}
}
