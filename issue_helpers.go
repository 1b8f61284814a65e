package goxapi

// IssueAt creates an Issue at the given path with provided code, message and params map.
// The Field is taken from the first pointer segment.
func IssueAt(p PathRef, code Code, msg string, params map[string]any) *Issue {
	return &Issue{Path: p.Pointer(), Field: p.Top(), Code: code, Message: msg, Params: params}
}
