package models

const (
	DefaultCycleLength  = 28
	DefaultPeriodLength = 5
)

// UserProfile is one local account. Logs holds canonical YYYY-MM-DD keys,
// kept sorted ascending and de-duplicated after every mutation.
type UserProfile struct {
	ID           string   `json:"id"`
	Username     string   `json:"username"`
	CycleLength  int      `json:"cycle_length"`
	PeriodLength int      `json:"period_length"`
	Logs         []string `json:"logs"`
}

// Database is the full persisted state, serialized as a single snapshot.
type Database struct {
	Users []UserProfile `json:"users"`
}
