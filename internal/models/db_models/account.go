package db_models

const (
	AccountTypePrimary = "primary"
	AccountTypeSupport = "support"
)

type Account struct {
	BaseModel
	FirstName    string
	LastName     string
	Email        string `gorm:"unique"`
	PasswordHash string
	// Full YYYY-MM-DD form for display plus the MMDDYY form used as a
	// lightweight second factor.
	DateOfBirthFull   string
	DateOfBirth6Digit string
	AccountType       string `gorm:"index"`
	LastLogin         int64
}
