package mwe

// annotate attaches span metadata to every token inside a matched span.
// It is a pure transformation: the returned sequence has the same length
// and order as the input, and untouched fields are copied as-is.
//
// Spans from matchSpans never overlap; should an overlapping list ever
// reach this point, the first span in scan order containing the index
// wins.
func annotate(tokens []Token, spans []Span) []Token {
	out := make([]Token, len(tokens))
	copy(out, tokens)

	for idx := range out {
		for _, sp := range spans {
			if sp.Start <= idx && idx < sp.End {
				out[idx].MWE = &Annotation{
					Start:    sp.Start,
					End:      sp.End,
					Lemma:    sp.Info.Lemma,
					POS:      sp.Info.POS,
					Type:     sp.Info.Type,
					Head:     sp.Start,
					Position: idx - sp.Start,
				}
				break
			}
		}
	}

	return out
}
