package domain

// Gender is the enumerated gender of an employee.
type Gender string

const (
	GenderMale   Gender = "Male"
	GenderFemale Gender = "Female"
)

// Genders lists the accepted values in the order the form offers them.
var Genders = []Gender{GenderMale, GenderFemale}

// Form field names. They double as the JSON keys of the persisted snapshot
// and as the keys of a validation error map.
const (
	FieldName        = "name"
	FieldDateOfBirth = "dateOfBirth"
	FieldGender      = "gender"
	FieldEmail       = "email"
	FieldAddress     = "address"
)

// RequiredFields is every non-identity field, in display order.
var RequiredFields = []string{
	FieldName,
	FieldDateOfBirth,
	FieldGender,
	FieldEmail,
	FieldAddress,
}

// Employee is one roster entry. The whole slice of employees is the
// persisted unit; there is no per-record storage.
type Employee struct {
	// ID is a decimal string assigned by the roster store and never changed.
	ID string `json:"id"`

	Name string `json:"name" validate:"required"`

	// DateOfBirth is kept as the ISO string the date input produces
	// ("2006-01-02"). It is never parsed on the write path.
	DateOfBirth string `json:"dateOfBirth" validate:"required"`

	Gender Gender `json:"gender" validate:"required"`

	// Email is presence-checked only.
	Email string `json:"email" validate:"required"`

	Address string `json:"address" validate:"required"`
}

// NewEmployee returns the blank record a create form starts from.
func NewEmployee() Employee {
	return Employee{Gender: GenderMale}
}

// Value returns the named field's value.
func (e Employee) Value(field string) (string, bool) {
	switch field {
	case FieldName:
		return e.Name, true
	case FieldDateOfBirth:
		return e.DateOfBirth, true
	case FieldGender:
		return string(e.Gender), true
	case FieldEmail:
		return e.Email, true
	case FieldAddress:
		return e.Address, true
	}
	return "", false
}

// Set assigns the named field. It reports false for an unknown field.
func (e *Employee) Set(field, value string) bool {
	switch field {
	case FieldName:
		e.Name = value
	case FieldDateOfBirth:
		e.DateOfBirth = value
	case FieldGender:
		e.Gender = Gender(value)
	case FieldEmail:
		e.Email = value
	case FieldAddress:
		e.Address = value
	default:
		return false
	}
	return true
}
