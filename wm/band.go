package wm

// Band identifies which protocol-defined identifier range a raw
// message falls in.
type Band uint8

const (
	// BandSystem covers the protocol's own message set.
	BandSystem Band = iota
	// BandUser covers messages private to a window class.
	BandUser
	// BandApp covers messages private to an application.
	BandApp
	// BandString covers messages registered by name at runtime.
	BandString
	// BandReserved covers identifiers the protocol keeps for itself.
	BandReserved
)

// Band lower bounds defined by the protocol.
const (
	UserBase     uint32 = 0x0400
	AppBase      uint32 = 0x8000
	StringBase   uint32 = 0xC000
	ReservedBase uint32 = 0xFFFF
)

// String returns the band name.
func (b Band) String() string {
	switch b {
	case BandSystem:
		return "system"
	case BandUser:
		return "user"
	case BandApp:
		return "app"
	case BandString:
		return "string"
	case BandReserved:
		return "reserved"
	default:
		return "invalid"
	}
}

// Classify maps a raw identifier to its band. The bands are
// contiguous and together cover the full identifier space, so
// classification never fails.
func Classify(id uint32) Band {
	switch {
	case id < UserBase:
		return BandSystem
	case id < AppBase:
		return BandUser
	case id < StringBase:
		return BandApp
	case id < ReservedBase:
		return BandString
	default:
		return BandReserved
	}
}

// Base returns the band's lower bound. Each band rebases by its own
// bound, the string band included; adding Base to a rebased
// identifier recovers the received one.
func (b Band) Base() uint32 {
	switch b {
	case BandUser:
		return UserBase
	case BandApp:
		return AppBase
	case BandString:
		return StringBase
	case BandReserved:
		return ReservedBase
	default:
		return 0
	}
}
