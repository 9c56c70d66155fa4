package entity

// Agent is a target company of an offer. Agents are never persisted; they are
// fetched on demand from the company registry by INN.
type Agent struct {
	// Full legal company name
	FullName string

	// Short company name (with legal form)
	ShortName string

	// Tax identifier
	INN string

	// Principal full name, used in the offer greeting. The registry may not
	// provide management data, hence the pointer.
	Management *string
}
