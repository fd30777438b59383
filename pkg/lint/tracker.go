package lint

// State is the tracker's view of the file at a given line. It is the
// only sequential state in the engine; both lint and format rules read
// it but never modify it directly.
type State struct {
	// Depth is the count of currently open menu/choice/if blocks.
	// For block-closer lines it is the depth after the close.
	Depth int

	// InHelp is true while inside a help-text block.
	InHelp bool

	// HelpMarker is the leading whitespace of the help keyword that
	// opened the current block. Only meaningful while InHelp is true.
	HelpMarker Indent
}

// tracker maintains nesting depth and help-block membership as lines
// are processed in order. A fresh tracker is created per file pass, so
// concurrent passes over different files need no coordination.
type tracker struct {
	depth      int
	inHelp     bool
	helpMarker Indent
	declIndent Indent // leading whitespace of the most recent declaration
}

// before updates state that must be settled before a line is acted on:
// help-block exit, help-body reclassification, and block-closer depth
// decrement. It returns the state the line should be evaluated under.
func (t *tracker) before(c *Classified) State {
	// A recognized keyword line at or below the enclosing declaration's
	// own indent level ends the help block. Blank and free-text lines
	// always continue the body, so unindented input still formats its
	// help text into place. No lookahead is needed: comparing against
	// the declaration column decides the exit.
	if t.inHelp && c.Kind != KindBlank && c.Kind != KindOther &&
		c.Indent.Width() <= t.declIndent.Width() {
		t.inHelp = false
	}

	// Help bodies are free text. A body line may begin with a word
	// that happens to be a keyword ("If unsure, say N."), so while the
	// block is active every non-blank line is demoted to KindOther.
	if t.inHelp && c.Kind != KindBlank {
		c.Kind = KindOther
	}

	if c.Kind.IsBlockClose() {
		// Unbalanced closers clamp at zero. This tool does not
		// validate block balance, only uses depth for indentation.
		t.depth--
		if t.depth < 0 {
			t.depth = 0
		}
	}

	return State{
		Depth:      t.depth,
		InHelp:     t.inHelp,
		HelpMarker: t.helpMarker,
	}
}

// after applies the transitions a line causes for subsequent lines:
// block-opener depth increment and help-block entry.
func (t *tracker) after(c Classified) {
	if c.Kind.IsBlockOpen() {
		t.depth++
	}
	if c.Kind.IsDeclaration() {
		t.declIndent = c.Indent
	}
	if c.Kind == KindHelp {
		t.inHelp = true
		t.helpMarker = c.Indent
	}
}
