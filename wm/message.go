package wm

import "github.com/dshills/winmsg/wm/keystate"

// Message is one decoded system-band message. The concrete types in
// this package form a closed set: payload structs for identifiers
// whose parameters carry defined fields, Plain for identifiers with
// no payload, and Unknown for identifiers absent from the protocol
// table. Consumers type-switch over the set; the marker method keeps
// outside packages from adding cases.
type Message interface {
	// ID reports the identifier the message was decoded from.
	ID() MsgID

	sysMessage()
}

// Plain is a message whose parameters carry no defined payload.
type Plain struct {
	Msg MsgID
}

func (p Plain) ID() MsgID { return p.Msg }
func (Plain) sysMessage() {}

// Unknown is a system-band message the protocol table does not know.
// It carries the original triple untouched so nothing is lost and
// nothing is misread.
type Unknown struct {
	Raw RawEvent
}

func (u Unknown) ID() MsgID { return MsgID(u.Raw.Msg) }
func (Unknown) sysMessage() {}

// ActivationState reports how a window is being activated or
// deactivated.
type ActivationState uint16

const (
	ActivationInactive ActivationState = iota
	ActivationActive
	ActivationClickActive
)

// String returns the activation state name.
func (a ActivationState) String() string {
	switch a {
	case ActivationInactive:
		return "inactive"
	case ActivationActive:
		return "active"
	case ActivationClickActive:
		return "click-active"
	default:
		return "invalid"
	}
}

// ResizeKind reports what kind of size change a Size message
// describes.
type ResizeKind uint8

const (
	ResizeRestored ResizeKind = iota
	ResizeMinimized
	ResizeMaximized
	ResizeMaxShow
	ResizeMaxHide
)

// String returns the resize kind name.
func (r ResizeKind) String() string {
	switch r {
	case ResizeRestored:
		return "restored"
	case ResizeMinimized:
		return "minimized"
	case ResizeMaximized:
		return "maximized"
	case ResizeMaxShow:
		return "max-show"
	case ResizeMaxHide:
		return "max-hide"
	default:
		return "invalid"
	}
}

// IconSize selects which window icon a GetIcon/SetIcon message
// refers to.
type IconSize uint8

const (
	IconSmall IconSize = iota
	IconBig
	IconSmall2
)

// String returns the icon size name.
func (s IconSize) String() string {
	switch s {
	case IconSmall:
		return "small"
	case IconBig:
		return "big"
	case IconSmall2:
		return "small2"
	default:
		return "invalid"
	}
}

// PowerEvent is the kind of power-broadcast notification.
type PowerEvent uint32

const (
	PowerSuspend         PowerEvent = 0x0004
	PowerResumeSuspend   PowerEvent = 0x0007
	PowerStatusChange    PowerEvent = 0x000A
	PowerResumeAutomatic PowerEvent = 0x0012
	PowerSettingChange   PowerEvent = 0x8013
)

// String returns the power event name.
func (p PowerEvent) String() string {
	switch p {
	case PowerSuspend:
		return "suspend"
	case PowerResumeSuspend:
		return "resume-suspend"
	case PowerStatusChange:
		return "status-change"
	case PowerResumeAutomatic:
		return "resume-automatic"
	case PowerSettingChange:
		return "setting-change"
	default:
		return "invalid"
	}
}

// StyleTarget selects which style word a StyleChanging/StyleChanged
// message refers to.
type StyleTarget int32

const (
	StyleTargetStyle    StyleTarget = -16
	StyleTargetExtended StyleTarget = -20
)

// String returns the style target name.
func (t StyleTarget) String() string {
	switch t {
	case StyleTargetStyle:
		return "style"
	case StyleTargetExtended:
		return "extended-style"
	default:
		return "invalid"
	}
}

// Create announces window creation; Params points to the creation
// parameters, owned by the windowing subsystem.
type Create struct {
	Params Pointer
}

func (Create) ID() MsgID   { return MsgCreate }
func (Create) sysMessage() {}

// Move reports the new client-area position.
type Move struct {
	Pos Point
}

func (Move) ID() MsgID   { return MsgMove }
func (Move) sysMessage() {}

// Size reports the new client-area size.
type Size struct {
	Kind   ResizeKind
	Width  int16
	Height int16
}

func (Size) ID() MsgID   { return MsgSize }
func (Size) sysMessage() {}

// Activate reports an activation change. Window identifies the
// window being activated or deactivated, depending on State.
type Activate struct {
	State     ActivationState
	Minimized bool
	Window    Handle
}

func (Activate) ID() MsgID   { return MsgActivate }
func (Activate) sysMessage() {}

// SetFocus reports keyboard focus gained; Window is the window that
// lost it (zero when none).
type SetFocus struct {
	Window Handle
}

func (SetFocus) ID() MsgID   { return MsgSetFocus }
func (SetFocus) sysMessage() {}

// EraseBackground asks for the background to be erased into DC.
type EraseBackground struct {
	DC Handle
}

func (EraseBackground) ID() MsgID   { return MsgEraseBackground }
func (EraseBackground) sysMessage() {}

// ShowWindow reports a visibility change. Status is zero when the
// change came from an explicit show call; otherwise it carries the
// subsystem's reason code verbatim.
type ShowWindow struct {
	Shown  bool
	Status LParam
}

func (ShowWindow) ID() MsgID   { return MsgShowWindow }
func (ShowWindow) sysMessage() {}

// ActivateApp reports that a window belonging to a different
// application is being activated or deactivated.
type ActivateApp struct {
	Activated bool
	Thread    uint32
}

func (ActivateApp) ID() MsgID   { return MsgActivateApp }
func (ActivateApp) sysMessage() {}

// SetCursor asks for the cursor shape; HitTest locates the cursor
// and Trigger is the identifier of the message that prompted it.
type SetCursor struct {
	Window  Handle
	HitTest uint16
	Trigger uint16
}

func (SetCursor) ID() MsgID   { return MsgSetCursor }
func (SetCursor) sysMessage() {}

// MouseActivate reports a click in an inactive window.
type MouseActivate struct {
	TopWindow Handle
	HitTest   uint16
	Trigger   uint16
}

func (MouseActivate) ID() MsgID   { return MsgMouseActivate }
func (MouseActivate) sysMessage() {}

// GetMinMaxInfo carries a pointer to the size/position limits being
// negotiated.
type GetMinMaxInfo struct {
	Info Pointer
}

func (GetMinMaxInfo) ID() MsgID   { return MsgGetMinMaxInfo }
func (GetMinMaxInfo) sysMessage() {}

// WindowPosChanging carries a pointer to the pending geometry.
type WindowPosChanging struct {
	Pos Pointer
}

func (WindowPosChanging) ID() MsgID   { return MsgWindowPosChanging }
func (WindowPosChanging) sysMessage() {}

// WindowPosChanged carries a pointer to the applied geometry.
type WindowPosChanged struct {
	Pos Pointer
}

func (WindowPosChanged) ID() MsgID   { return MsgWindowPosChanged }
func (WindowPosChanged) sysMessage() {}

// StyleChanging carries a pointer to the proposed style words.
type StyleChanging struct {
	Target StyleTarget
	Style  Pointer
}

func (StyleChanging) ID() MsgID   { return MsgStyleChanging }
func (StyleChanging) sysMessage() {}

// StyleChanged carries a pointer to the applied style words.
type StyleChanged struct {
	Target StyleTarget
	Style  Pointer
}

func (StyleChanged) ID() MsgID   { return MsgStyleChanged }
func (StyleChanged) sysMessage() {}

// GetIcon asks for one of the window's icons.
type GetIcon struct {
	Size IconSize
	DPI  LParam
}

func (GetIcon) ID() MsgID   { return MsgGetIcon }
func (GetIcon) sysMessage() {}

// SetIcon installs one of the window's icons.
type SetIcon struct {
	Size IconSize
	Icon Handle
}

func (SetIcon) ID() MsgID   { return MsgSetIcon }
func (SetIcon) sysMessage() {}

// NcCalcSize negotiates the client area. When Validate is true, Data
// points to the full size-negotiation parameters; when false it
// points to a plain rectangle.
type NcCalcSize struct {
	Validate bool
	Data     Pointer
}

func (NcCalcSize) ID() MsgID   { return MsgNcCalcSize }
func (NcCalcSize) sysMessage() {}

// NcHitTest asks which part of the window a position falls on.
type NcHitTest struct {
	Pos Point
}

func (NcHitTest) ID() MsgID   { return MsgNcHitTest }
func (NcHitTest) sysMessage() {}

// NcPaint asks for the frame to be painted; Region bounds the
// update area.
type NcPaint struct {
	Region Handle
}

func (NcPaint) ID() MsgID   { return MsgNcPaint }
func (NcPaint) sysMessage() {}

// NcActivate reports that the frame needs an active or inactive
// look. Region carries the subsystem's update-region word verbatim.
type NcActivate struct {
	Active bool
	Region LParam
}

func (NcActivate) ID() MsgID   { return MsgNcActivate }
func (NcActivate) sysMessage() {}

// NcMouseMove reports cursor movement over the non-client area.
type NcMouseMove struct {
	HitTest WParam
	Pos     Point
}

func (NcMouseMove) ID() MsgID   { return MsgNcMouseMove }
func (NcMouseMove) sysMessage() {}

// NcUahDrawCaption is an undocumented themed-caption request; both
// words are carried verbatim.
type NcUahDrawCaption struct {
	W WParam
	L LParam
}

func (NcUahDrawCaption) ID() MsgID   { return MsgNcUahDrawCaption }
func (NcUahDrawCaption) sysMessage() {}

// NcUahDrawFrame is an undocumented themed-frame request; both
// words are carried verbatim.
type NcUahDrawFrame struct {
	W WParam
	L LParam
}

func (NcUahDrawFrame) ID() MsgID   { return MsgNcUahDrawFrame }
func (NcUahDrawFrame) sysMessage() {}

// KeyDown reports a key press.
type KeyDown struct {
	Code  WParam
	State keystate.State
}

func (KeyDown) ID() MsgID   { return MsgKeyDown }
func (KeyDown) sysMessage() {}

// KeyUp reports a key release.
type KeyUp struct {
	Code  WParam
	State keystate.State
}

func (KeyUp) ID() MsgID   { return MsgKeyUp }
func (KeyUp) sysMessage() {}

// SysKeyDown reports a system-scope key press.
type SysKeyDown struct {
	Code  WParam
	State keystate.State
}

func (SysKeyDown) ID() MsgID   { return MsgSysKeyDown }
func (SysKeyDown) sysMessage() {}

// SysKeyUp reports a system-scope key release.
type SysKeyUp struct {
	Code  WParam
	State keystate.State
}

func (SysKeyUp) ID() MsgID   { return MsgSysKeyUp }
func (SysKeyUp) sysMessage() {}

// MouseMove reports cursor movement over the client area.
type MouseMove struct {
	Modifiers WParam
	Pos       Point
}

func (MouseMove) ID() MsgID   { return MsgMouseMove }
func (MouseMove) sysMessage() {}

// MouseHover reports that the cursor lingered over the client area.
type MouseHover struct {
	Modifiers WParam
	Pos       Point
}

func (MouseHover) ID() MsgID   { return MsgMouseHover }
func (MouseHover) sysMessage() {}

// LButtonDown reports a left-button press.
type LButtonDown struct {
	Modifiers WParam
	Pos       Point
}

func (LButtonDown) ID() MsgID   { return MsgLButtonDown }
func (LButtonDown) sysMessage() {}

// LButtonUp reports a left-button release.
type LButtonUp struct {
	Modifiers WParam
	Pos       Point
}

func (LButtonUp) ID() MsgID   { return MsgLButtonUp }
func (LButtonUp) sysMessage() {}

// LButtonDblClk reports a left-button double click.
type LButtonDblClk struct {
	Modifiers WParam
	Pos       Point
}

func (LButtonDblClk) ID() MsgID   { return MsgLButtonDblClk }
func (LButtonDblClk) sysMessage() {}

// RButtonDown reports a right-button press.
type RButtonDown struct {
	Modifiers WParam
	Pos       Point
}

func (RButtonDown) ID() MsgID   { return MsgRButtonDown }
func (RButtonDown) sysMessage() {}

// RButtonUp reports a right-button release.
type RButtonUp struct {
	Modifiers WParam
	Pos       Point
}

func (RButtonUp) ID() MsgID   { return MsgRButtonUp }
func (RButtonUp) sysMessage() {}

// RButtonDblClk reports a right-button double click.
type RButtonDblClk struct {
	Modifiers WParam
	Pos       Point
}

func (RButtonDblClk) ID() MsgID   { return MsgRButtonDblClk }
func (RButtonDblClk) sysMessage() {}

// MButtonDown reports a middle-button press.
type MButtonDown struct {
	Modifiers WParam
	Pos       Point
}

func (MButtonDown) ID() MsgID   { return MsgMButtonDown }
func (MButtonDown) sysMessage() {}

// MButtonUp reports a middle-button release.
type MButtonUp struct {
	Modifiers WParam
	Pos       Point
}

func (MButtonUp) ID() MsgID   { return MsgMButtonUp }
func (MButtonUp) sysMessage() {}

// MButtonDblClk reports a middle-button double click.
type MButtonDblClk struct {
	Modifiers WParam
	Pos       Point
}

func (MButtonDblClk) ID() MsgID   { return MsgMButtonDblClk }
func (MButtonDblClk) sysMessage() {}

// MouseWheel reports vertical wheel rotation.
type MouseWheel struct {
	Modifiers uint16
	Delta     int16
	Pos       Point
}

func (MouseWheel) ID() MsgID   { return MsgMouseWheel }
func (MouseWheel) sysMessage() {}

// MouseHWheel reports horizontal wheel rotation.
type MouseHWheel struct {
	Modifiers uint16
	Delta     int16
	Pos       Point
}

func (MouseHWheel) ID() MsgID   { return MsgMouseHWheel }
func (MouseHWheel) sysMessage() {}

// XButtonDown reports an extended-button press; Button is the
// 1-based extended button index.
type XButtonDown struct {
	Modifiers uint16
	Button    uint16
	Pos       Point
}

func (XButtonDown) ID() MsgID   { return MsgXButtonDown }
func (XButtonDown) sysMessage() {}

// XButtonUp reports an extended-button release.
type XButtonUp struct {
	Modifiers uint16
	Button    uint16
	Pos       Point
}

func (XButtonUp) ID() MsgID   { return MsgXButtonUp }
func (XButtonUp) sysMessage() {}

// XButtonDblClk reports an extended-button double click.
type XButtonDblClk struct {
	Modifiers uint16
	Button    uint16
	Pos       Point
}

func (XButtonDblClk) ID() MsgID   { return MsgXButtonDblClk }
func (XButtonDblClk) sysMessage() {}

// CaptureChanged reports that mouse capture moved to Window.
type CaptureChanged struct {
	Window Handle
}

func (CaptureChanged) ID() MsgID   { return MsgCaptureChanged }
func (CaptureChanged) sysMessage() {}

// PowerBroadcast reports a power-management event. Setting points
// to event-specific data for setting-change events, zero otherwise.
type PowerBroadcast struct {
	Event   PowerEvent
	Setting Pointer
}

func (PowerBroadcast) ID() MsgID   { return MsgPowerBroadcast }
func (PowerBroadcast) sysMessage() {}

// ImeSetContext reports input-context activation; Display carries
// the composition display options verbatim.
type ImeSetContext struct {
	Active  bool
	Display LParam
}

func (ImeSetContext) ID() MsgID   { return MsgImeSetContext }
func (ImeSetContext) sysMessage() {}

// ImeNotify reports an input-method change; Value is
// command-specific.
type ImeNotify struct {
	Command WParam
	Value   LParam
}

func (ImeNotify) ID() MsgID   { return MsgImeNotify }
func (ImeNotify) sysMessage() {}
