package exam

// criticalFields are checked on the first question only. This is a cheap
// structural sniff, not per-record validation: later questions may be missing
// anything and the normalizer fills defaults.
var criticalFields = []string{"question_no", "answer"}

// Validate checks that a parsed document has the minimum required shape.
// It returns descriptors for each missing field; an empty result means the
// document is accepted. Checks run in order and short-circuit: a missing or
// malformed questions key stops everything, only the first-question field
// checks accumulate.
func Validate(data map[string]any) []string {
	var missing []string

	qs, ok := data["questions"]
	if !ok {
		return append(missing, "questions")
	}

	list, ok := qs.([]any)
	if !ok {
		return append(missing, "questions (must be a list)")
	}

	if len(list) == 0 {
		return append(missing, "questions (list is empty)")
	}

	first, _ := list[0].(map[string]any)
	for _, field := range criticalFields {
		if first == nil {
			missing = append(missing, "questions[0]."+field)
			continue
		}
		if _, ok := first[field]; !ok {
			missing = append(missing, "questions[0]."+field)
		}
	}

	return missing
}

// Valid reports whether the document passes Validate.
func (d *Document) Valid() bool {
	return len(Validate(d.Data)) == 0
}
