package registry

// RegistryError is a custom error type for registry errors
type RegistryError string

// Error implements the error interface
func (e RegistryError) Error() string {
	return string(e)
}

const (
	ErrNilTeam       RegistryError = "team cannot be nil"
	ErrMissingTeamID RegistryError = "team id is required"
	ErrDuplicateTeam RegistryError = "team already registered"
	ErrTeamNotFound  RegistryError = "team not found"
)
