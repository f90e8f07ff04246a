// Package flow holds the interaction state machine behind the TUI. It decides
// when an analysis should be issued so that re-rendering, re-selecting the same
// image, or editing unrelated inputs never sends the same meal twice.
package flow

type State int

const (
	NoImageSelected State = iota
	ImageSelectedInvalidInputs
	ImageSelectedValidInputs
	AnalysisInFlight
	AnalysisDisplayed
)

var stateNames = [...]string{
	"no image selected",
	"image selected, inputs incomplete",
	"image selected, inputs valid",
	"analysis in flight",
	"analysis displayed",
}

func (s State) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		return "unknown"
	}
	return stateNames[s]
}

// Key identifies one analysis: the same image under a different meal type is
// a new analysis.
type Key struct {
	ImageID  string
	MealType string
}

// Decision tells the caller whether to issue an analysis for Key.
type Decision struct {
	Analyze bool
	Key     Key
}

type Machine struct {
	state    State
	imageID  string
	mealType string
	valid    bool

	analyzed    Key
	hasAnalyzed bool
	inFlight    Key
	pending     bool
}

func New() *Machine {
	return &Machine{state: NoImageSelected}
}

func (m *Machine) State() State { return m.state }

func (m *Machine) Key() Key { return Key{ImageID: m.imageID, MealType: m.mealType} }

func (m *Machine) HasImage() bool { return m.imageID != "" }

func (m *Machine) InputsValid() bool { return m.valid }

// SelectImage records a newly selected image. An empty id clears the selection.
func (m *Machine) SelectImage(imageID string) Decision {
	m.imageID = imageID
	return m.evaluate()
}

// ProfileChanged records the current form state after any edit.
func (m *Machine) ProfileChanged(mealType string, valid bool) Decision {
	m.mealType = mealType
	m.valid = valid
	return m.evaluate()
}

// Start marks key as in flight. Callers issue the analysis right after.
func (m *Machine) Start(key Key) {
	m.inFlight = key
	m.pending = false
	m.state = AnalysisInFlight
}

// Complete records that the analysis for key finished, whether it produced
// model output or an error message. Edits made while it was in flight are
// evaluated now.
func (m *Machine) Complete(key Key) Decision {
	m.analyzed = key
	m.hasAnalyzed = true
	m.inFlight = Key{}
	m.state = AnalysisDisplayed
	if !m.pending {
		return Decision{}
	}
	m.pending = false
	return m.evaluate()
}

// Retry forgets the last analyzed key so the next evaluation issues a fresh call.
func (m *Machine) Retry() Decision {
	if m.state == AnalysisInFlight {
		return Decision{}
	}
	m.hasAnalyzed = false
	m.analyzed = Key{}
	return m.evaluate()
}

func (m *Machine) evaluate() Decision {
	if m.state == AnalysisInFlight {
		m.pending = true
		return Decision{}
	}
	switch {
	case m.imageID == "":
		m.state = NoImageSelected
		return Decision{}
	case !m.valid:
		m.state = ImageSelectedInvalidInputs
		return Decision{}
	}
	key := m.Key()
	if m.hasAnalyzed && m.analyzed == key {
		m.state = AnalysisDisplayed
		return Decision{}
	}
	m.state = ImageSelectedValidInputs
	return Decision{Analyze: true, Key: key}
}
