package onboarding

import (
	"fmt"
	"strings"
)

// EventType names one user action inside the overlay.
type EventType string

const (
	EventSwitchMode     EventType = "switch_mode"
	EventSetField       EventType = "set_field"
	EventSubmit         EventType = "submit"
	EventSelectRole     EventType = "select_role"
	EventToggleInterest EventType = "toggle_interest"
	EventSelectCountry  EventType = "select_country"
)

// Event is a single user action. Only the fields relevant to Type are read.
type Event struct {
	Type     EventType
	Mode     Step
	Field    Field
	Value    string
	Role     Role
	Interest string
	Country  string
}

// Flow is the onboarding state machine: the current step plus the draft.
type Flow struct {
	Step     Step  `json:"step"`
	Draft    Draft `json:"draft"`
	Finished bool  `json:"finished"`
}

func NewFlow(initial Step) (Flow, error) {
	if initial != StepLogin && initial != StepSignup {
		return Flow{}, ErrInvalidInitialStep
	}
	return Flow{Step: initial}, nil
}

// Apply dispatches ev to the matching transition. A non-nil payload means the
// event finished the flow.
func (f *Flow) Apply(ev Event) (*Payload, error) {
	switch ev.Type {
	case EventSwitchMode:
		return nil, f.SwitchMode(ev.Mode)
	case EventSetField:
		return nil, f.SetField(ev.Field, ev.Value)
	case EventSubmit:
		return f.Submit()
	case EventSelectRole:
		return nil, f.SelectRole(ev.Role)
	case EventToggleInterest:
		return nil, f.ToggleInterest(ev.Interest)
	case EventSelectCountry:
		return nil, f.SelectCountry(ev.Country)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownEvent, ev.Type)
	}
}

// SwitchMode follows the "sign up" / "login" links between the two credential
// forms. The draft is kept, like the shared form state it models.
func (f *Flow) SwitchMode(target Step) error {
	if err := f.ensureOpen(); err != nil {
		return err
	}
	if f.Step != StepLogin && f.Step != StepSignup {
		return fmt.Errorf("%w: cannot switch mode from %s", ErrInvalidTransition, f.Step)
	}
	if target != StepLogin && target != StepSignup {
		return fmt.Errorf("%w: mode must be login or signup", ErrInvalidTransition)
	}
	f.Step = target
	return nil
}

func (f *Flow) SetField(field Field, value string) error {
	if err := f.ensureOpen(); err != nil {
		return err
	}
	if !f.fieldVisible(field) {
		return fmt.Errorf("%w: field %s is not shown in %s", ErrInvalidTransition, field, f.Step)
	}

	switch field {
	case FieldEmail:
		f.Draft.Email = value
	case FieldPassword:
		f.Draft.Password = value
	case FieldName:
		f.Draft.Name = value
	case FieldBusinessName:
		f.Draft.BusinessName = value
	case FieldBusinessCategory:
		f.Draft.BusinessCategory = strings.TrimSpace(value)
	case FieldBusinessLocation:
		f.Draft.BusinessLocation = value
	}
	return nil
}

// Submit submits the form of the current step. Credential forms move on to
// role selection; the setup forms finish the flow and return the payload.
func (f *Flow) Submit() (*Payload, error) {
	if err := f.ensureOpen(); err != nil {
		return nil, err
	}
	if !f.CanSubmit() {
		if f.Step == StepRoleSelect {
			return nil, fmt.Errorf("%w: role selection has no submit", ErrInvalidTransition)
		}
		return nil, fmt.Errorf("%w: %s", ErrIncomplete, f.Step)
	}

	switch f.Step {
	case StepLogin, StepSignup:
		f.Step = StepRoleSelect
		return nil, nil
	case StepTravelerSetup, StepBusinessSetup:
		f.Finished = true
		out := f.Draft.payload()
		return &out, nil
	default:
		return nil, fmt.Errorf("%w: unknown step %s", ErrInvalidTransition, f.Step)
	}
}

func (f *Flow) SelectRole(role Role) error {
	if err := f.ensureOpen(); err != nil {
		return err
	}
	if f.Step != StepRoleSelect {
		return fmt.Errorf("%w: cannot select role in %s", ErrInvalidTransition, f.Step)
	}

	switch role {
	case RoleTraveler:
		f.Step = StepTravelerSetup
	case RoleBusiness:
		f.Step = StepBusinessSetup
	default:
		return fmt.Errorf("%w: %q", ErrUnknownRole, role)
	}
	f.Draft.Role = role
	return nil
}

// ToggleInterest adds the tag when absent and removes it when present.
func (f *Flow) ToggleInterest(id string) error {
	if err := f.ensureOpen(); err != nil {
		return err
	}
	if f.Step != StepTravelerSetup {
		return fmt.Errorf("%w: cannot toggle interests in %s", ErrInvalidTransition, f.Step)
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return fmt.Errorf("%w: interest is required", ErrIncomplete)
	}

	if !f.Draft.hasInterest(id) {
		f.Draft.Interests = append(f.Draft.Interests, id)
		return nil
	}

	kept := make([]string, 0, len(f.Draft.Interests))
	for _, item := range f.Draft.Interests {
		if item != id {
			kept = append(kept, item)
		}
	}
	f.Draft.Interests = kept
	return nil
}

func (f *Flow) SelectCountry(country string) error {
	if err := f.ensureOpen(); err != nil {
		return err
	}
	if f.Step != StepTravelerSetup {
		return fmt.Errorf("%w: cannot select a destination in %s", ErrInvalidTransition, f.Step)
	}
	f.Draft.Country = strings.TrimSpace(country)
	return nil
}

// CanSubmit reports whether the submit control of the current step is enabled.
func (f Flow) CanSubmit() bool {
	if f.Finished {
		return false
	}

	switch f.Step {
	case StepLogin:
		return filled(f.Draft.Email) && filled(f.Draft.Password)
	case StepSignup:
		return filled(f.Draft.Name) && filled(f.Draft.Email) && filled(f.Draft.Password)
	case StepTravelerSetup:
		return len(f.Draft.Interests) > 0 && filled(f.Draft.Country)
	case StepBusinessSetup:
		return filled(f.Draft.BusinessName) && filled(f.Draft.BusinessCategory) && filled(f.Draft.BusinessLocation)
	default:
		return false
	}
}

func (f Flow) Title() string {
	switch f.Step {
	case StepLogin:
		return "Welcome Back"
	case StepSignup:
		return "Create Account"
	case StepRoleSelect:
		return "Choose Your Role"
	case StepTravelerSetup:
		return "Tell Us Your Interests"
	case StepBusinessSetup:
		return "Business Information"
	default:
		return ""
	}
}

// Clone returns a copy that shares no slices with f.
func (f Flow) Clone() Flow {
	out := f
	out.Draft.Interests = append([]string(nil), f.Draft.Interests...)
	return out
}

func (f Flow) fieldVisible(field Field) bool {
	switch f.Step {
	case StepLogin:
		return field == FieldEmail || field == FieldPassword
	case StepSignup:
		return field == FieldName || field == FieldEmail || field == FieldPassword
	case StepBusinessSetup:
		return field == FieldBusinessName || field == FieldBusinessCategory || field == FieldBusinessLocation
	default:
		return false
	}
}

func (f Flow) ensureOpen() error {
	if f.Finished {
		return ErrFinished
	}
	return nil
}

// filled treats whitespace-only input as empty.
func filled(v string) bool {
	return strings.TrimSpace(v) != ""
}
