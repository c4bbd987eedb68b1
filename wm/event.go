package wm

// Event is the banded decode of one raw triple.
type Event struct {
	// Band is the identifier range the triple fell in.
	Band Band

	// Message holds the decoded payload for system-band events and
	// is nil for every other band.
	Message Message

	// Raw carries the triple. For non-system bands the identifier is
	// rebased to the band's lower bound; the parameter words are
	// always untouched.
	Raw RawEvent
}

// Parse classifies a received triple and, for the system band,
// decodes its payload. Pure and total apart from EnumError on an
// out-of-set payload scalar.
func Parse(id uint32, wParam WParam, lParam LParam) (Event, error) {
	band := Classify(id)
	raw := RawEvent{Msg: id, WParam: wParam, LParam: lParam}
	if band == BandSystem {
		m, err := DecodeSystem(id, wParam, lParam)
		if err != nil {
			return Event{}, err
		}
		return Event{Band: band, Message: m, Raw: raw}, nil
	}
	raw.Msg = id - band.Base()
	return Event{Band: band, Raw: raw}, nil
}
