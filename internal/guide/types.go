package guide

// Role identifies the author of a conversation turn.
type Role string

const (
	// RoleRequester marks turns composed by this program.
	RoleRequester Role = "requester"
	// RoleModel marks turns produced by the text-generation service.
	RoleModel Role = "model"
)

// CandidatePath is a file selected by the scanner, paired with the extension
// that matched it. Paths are relative to the repository root.
type CandidatePath struct {
	Path string
	Ext  string
}

// CodeSample holds one successfully read source file.
type CodeSample struct {
	RelPath string
	Content string
	Lines   int
}

// Skip records a candidate the reader dropped and why. Skips are reported
// but never fail the run.
type Skip struct {
	Path   string
	Reason error
}

// Turn is a single message in the analysis conversation. Turns alternate
// strictly requester/model, starting with requester.
type Turn struct {
	Role    Role
	Content string
}
