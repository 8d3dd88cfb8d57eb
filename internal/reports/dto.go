package reports

// submitRequest is the loosely-typed inbound submission body. It is
// translated into a validated Draft before anything touches the store.
type submitRequest struct {
	CompanyName string `json:"company_name"`
	Position    string `json:"position"`
	Outcome     string `json:"outcome"`
	DaysWaited  int    `json:"days_waited"`
	AppliedVia  string `json:"applied_via"`
	Notes       string `json:"notes"`
}

func (req submitRequest) toDraft() Draft {
	draft := Draft{
		CompanyName: req.CompanyName,
		Position:    req.Position,
		Outcome:     Outcome(req.Outcome),
		DaysWaited:  req.DaysWaited,
		AppliedVia:  req.AppliedVia,
		Notes:       req.Notes,
	}
	draft.Normalize()
	return draft
}

// submitResponse acknowledges a submission. DemoMode and Message appear only
// on fabricated acknowledgements.
type submitResponse struct {
	Success  bool   `json:"success"`
	DemoMode bool   `json:"demo_mode,omitempty"`
	Message  string `json:"message,omitempty"`
	Report   Report `json:"report"`
}
