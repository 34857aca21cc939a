package onboarding

import "errors"

// Step is one screen of the onboarding overlay.
type Step string

const (
	StepLogin         Step = "login"
	StepSignup        Step = "signup"
	StepRoleSelect    Step = "role-select"
	StepTravelerSetup Step = "traveler-setup"
	StepBusinessSetup Step = "business-setup"
)

// Role decides which setup branch runs after role selection.
type Role string

const (
	RoleUnset    Role = ""
	RoleTraveler Role = "traveler"
	RoleBusiness Role = "business"
)

// Field names a free-text or categorical input of the overlay forms.
type Field string

const (
	FieldEmail            Field = "email"
	FieldPassword         Field = "password"
	FieldName             Field = "name"
	FieldBusinessName     Field = "business_name"
	FieldBusinessCategory Field = "business_category"
	FieldBusinessLocation Field = "business_location"
)

var (
	ErrInvalidInitialStep = errors.New("onboarding must start at login or signup")
	ErrInvalidTransition  = errors.New("event is not allowed in the current step")
	ErrIncomplete         = errors.New("required fields are missing")
	ErrFinished           = errors.New("onboarding flow already finished")
	ErrUnknownField       = errors.New("unknown onboarding field")
	ErrUnknownRole        = errors.New("unknown role")
	ErrUnknownEvent       = errors.New("unknown onboarding event")
	ErrUnknownOption      = errors.New("value is not a catalog option")
)

// Draft accumulates what the user typed across steps. It only lives while the
// overlay is open.
type Draft struct {
	Email            string   `json:"email"`
	Password         string   `json:"password"`
	Name             string   `json:"name"`
	Role             Role     `json:"role"`
	Interests        []string `json:"interests"`
	Country          string   `json:"country"`
	BusinessName     string   `json:"business_name"`
	BusinessCategory string   `json:"business_category"`
	BusinessLocation string   `json:"business_location"`
}

// Payload is the finished draft handed to the shell. The password stays
// behind in the discarded draft.
type Payload struct {
	Role             Role     `json:"role"`
	Email            string   `json:"email"`
	Name             string   `json:"name"`
	Interests        []string `json:"interests"`
	Country          string   `json:"country"`
	BusinessName     string   `json:"business_name"`
	BusinessCategory string   `json:"business_category"`
	BusinessLocation string   `json:"business_location"`
}

func ParseInitialStep(v string) (Step, error) {
	switch Step(v) {
	case "":
		return StepSignup, nil
	case StepLogin, StepSignup:
		return Step(v), nil
	default:
		return "", ErrInvalidInitialStep
	}
}

func ParseRole(v string) (Role, error) {
	switch Role(v) {
	case RoleTraveler, RoleBusiness:
		return Role(v), nil
	default:
		return RoleUnset, ErrUnknownRole
	}
}

func ParseField(v string) (Field, error) {
	switch Field(v) {
	case FieldEmail, FieldPassword, FieldName, FieldBusinessName, FieldBusinessCategory, FieldBusinessLocation:
		return Field(v), nil
	default:
		return "", ErrUnknownField
	}
}

func (d Draft) hasInterest(id string) bool {
	for _, item := range d.Interests {
		if item == id {
			return true
		}
	}
	return false
}

func (d Draft) payload() Payload {
	return Payload{
		Role:             d.Role,
		Email:            d.Email,
		Name:             d.Name,
		Interests:        append([]string(nil), d.Interests...),
		Country:          d.Country,
		BusinessName:     d.BusinessName,
		BusinessCategory: d.BusinessCategory,
		BusinessLocation: d.BusinessLocation,
	}
}
