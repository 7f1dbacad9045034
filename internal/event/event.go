// internal/event/event.go
package event

// Type identifies the kind of event.
type Type int

const (
	TypeUnknown Type = iota

	// Document events, one per session transition
	TypeDocumentNew      // content reset by New
	TypeDocumentLoaded   // Load succeeded
	TypeDocumentSaved    // Save or SaveAs succeeded
	TypeDocumentModified // first edit after a clean state

	TypeStyleApplied // a span was recorded

	TypeWindowOpened
	TypeWindowClosed
	TypeWindowFocused

	TypeAppReady
	TypeAppQuit
)

var typeNames = map[Type]string{
	TypeUnknown:          "Unknown",
	TypeDocumentNew:      "DocumentNew",
	TypeDocumentLoaded:   "DocumentLoaded",
	TypeDocumentSaved:    "DocumentSaved",
	TypeDocumentModified: "DocumentModified",
	TypeStyleApplied:     "StyleApplied",
	TypeWindowOpened:     "WindowOpened",
	TypeWindowClosed:     "WindowClosed",
	TypeWindowFocused:    "WindowFocused",
	TypeAppReady:         "AppReady",
	TypeAppQuit:          "AppQuit",
}

func (t Type) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return "Unknown"
}

// Event is the structure passed through the event bus.
type Event struct {
	Type Type
	Data interface{}
}

// DocumentData identifies the window and file involved in a document event.
// FilePath is empty for unbound documents.
type DocumentData struct {
	WindowID string
	FilePath string
}

// StyleAppliedData describes a recorded span.
type StyleAppliedData struct {
	WindowID   string
	Descriptor string
	Seq        int
}

// WindowData identifies a window.
type WindowData struct {
	WindowID string
	Index    int
}

// AppQuitData is sent once, before the screen is torn down.
type AppQuitData struct {
	Forced bool
}

// AppReadyData carries the number of windows open at start.
type AppReadyData struct {
	Windows int
}
