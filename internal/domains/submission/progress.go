package submission

// Stage identifies where a submission attempt currently is. Transitions are
// strictly sequential; failed and succeeded are terminal per attempt.
type Stage string

const (
	StageIdle               Stage = "idle"
	StageValidating         Stage = "validating"
	StageUploadingPrimary   Stage = "uploading_primary"
	StageUploadingSecondary Stage = "uploading_secondary"
	StagePersisting         Stage = "persisting"
	StageNotifying          Stage = "notifying"
	StageSucceeded          Stage = "succeeded"
	StageFailed             Stage = "failed"
)

// Fixed percent allocations per stage keep the displayed bar monotonic
// across a whole attempt.
const (
	percentValidated     = 10
	percentPrimaryDone   = 60
	percentSecondaryDone = 85
	percentPersisting    = 85
	percentNotifying     = 90
	percentDone          = 100
	primaryUploadSpan    = percentPrimaryDone - percentValidated
	secondaryUploadSpan  = percentSecondaryDone - percentPrimaryDone
)

// Progress is the descriptor the frontend polls while a form is submitting.
// Fields carries field-keyed validation messages when validation rejected
// the attempt.
type Progress struct {
	Stage   Stage             `json:"stage"`
	Percent float64           `json:"percent"`
	Error   bool              `json:"error,omitempty"`
	Message string            `json:"message,omitempty"`
	Fields  map[string]string `json:"fields,omitempty"`
}
