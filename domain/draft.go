package domain

// FormType identifies which edit form a draft belongs to. Each form type
// owns exactly one draft slot.
type FormType string

// Known form types.
const (
	FormLead      FormType = "lead_form"
	FormEmployee  FormType = "employee_form"
	FormQuotation FormType = "quotation_form"
	FormItinerary FormType = "itinerary_form"
)

// DraftKey returns the storage key for this form type's draft. Draft keys
// live in their own namespace and never collide with collection keys.
func (t FormType) DraftKey() string {
	return "draft:" + string(t)
}

// DraftRepository is the autosave channel for in-progress, unsubmitted form
// input. It is independent of the collection repositories: a draft has no id
// and represents work not yet promoted to a record.
type DraftRepository interface {
	// SaveDraft overwrites the form type's draft unconditionally
	// (last-write-wins; callers invoke it on every field change).
	SaveDraft(formType FormType, data any) bool

	// LoadDraft decodes the stored draft into dest and reports whether a
	// draft existed. A malformed draft counts as absent and the corrupt
	// key is removed so it will not be retried.
	LoadDraft(formType FormType, dest any) bool

	// ClearDraft removes the draft, after a successful submit or an
	// explicit discard.
	ClearDraft(formType FormType) bool
}
