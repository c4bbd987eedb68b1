package wm

import "github.com/dshills/winmsg/wm/keystate"

// DecodeSystem decodes a system-band triple into its typed message.
// Identifiers absent from the protocol table come back as Unknown
// carrying the triple untouched; the words are never reinterpreted
// as a guessed payload shape. The only error is an EnumError for a
// payload field holding a value outside its closed set.
func DecodeSystem(id uint32, wParam WParam, lParam LParam) (Message, error) {
	raw := RawEvent{Msg: id, WParam: wParam, LParam: lParam}
	if d, ok := decoders[MsgID(id)]; ok {
		return d(raw)
	}
	return Unknown{Raw: raw}, nil
}

type decoder func(RawEvent) (Message, error)

func decodePlain(raw RawEvent) (Message, error) {
	return Plain{Msg: MsgID(raw.Msg)}, nil
}

// decoders maps every known system-band identifier to its payload
// decoder. Payload-less identifiers are registered in init from
// plainMsgs.
var decoders = map[MsgID]decoder{
	MsgCreate: func(raw RawEvent) (Message, error) {
		return Create{Params: Pointer(raw.LParam)}, nil
	},
	MsgMove: func(raw RawEvent) (Message, error) {
		return Move{Pos: pointOf(raw.LParam)}, nil
	},
	MsgSize: func(raw RawEvent) (Message, error) {
		if raw.WParam > WParam(ResizeMaxHide) {
			return nil, &EnumError{Msg: MsgSize, Field: "resize kind", Value: uint64(raw.WParam)}
		}
		pos := pointOf(raw.LParam)
		return Size{Kind: ResizeKind(raw.WParam), Width: pos.X, Height: pos.Y}, nil
	},
	MsgActivate: func(raw RawEvent) (Message, error) {
		state := low16(raw.WParam)
		if state > uint16(ActivationClickActive) {
			return nil, &EnumError{Msg: MsgActivate, Field: "activation state", Value: uint64(state)}
		}
		return Activate{
			State:     ActivationState(state),
			Minimized: high16(raw.WParam) != 0,
			Window:    Handle(raw.LParam),
		}, nil
	},
	MsgSetFocus: func(raw RawEvent) (Message, error) {
		return SetFocus{Window: Handle(raw.WParam)}, nil
	},
	MsgEraseBackground: func(raw RawEvent) (Message, error) {
		return EraseBackground{DC: Handle(raw.WParam)}, nil
	},
	MsgShowWindow: func(raw RawEvent) (Message, error) {
		return ShowWindow{Shown: raw.WParam != 0, Status: raw.LParam}, nil
	},
	MsgActivateApp: func(raw RawEvent) (Message, error) {
		return ActivateApp{Activated: raw.WParam != 0, Thread: uint32(raw.LParam)}, nil
	},
	MsgSetCursor: func(raw RawEvent) (Message, error) {
		return SetCursor{
			Window:  Handle(raw.WParam),
			HitTest: uint16(raw.LParam),
			Trigger: uint16(uint64(raw.LParam) >> 16),
		}, nil
	},
	MsgMouseActivate: func(raw RawEvent) (Message, error) {
		return MouseActivate{
			TopWindow: Handle(raw.WParam),
			HitTest:   uint16(raw.LParam),
			Trigger:   uint16(uint64(raw.LParam) >> 16),
		}, nil
	},
	MsgGetMinMaxInfo: func(raw RawEvent) (Message, error) {
		return GetMinMaxInfo{Info: Pointer(raw.LParam)}, nil
	},
	MsgWindowPosChanging: func(raw RawEvent) (Message, error) {
		return WindowPosChanging{Pos: Pointer(raw.LParam)}, nil
	},
	MsgWindowPosChanged: func(raw RawEvent) (Message, error) {
		return WindowPosChanged{Pos: Pointer(raw.LParam)}, nil
	},
	MsgStyleChanging: func(raw RawEvent) (Message, error) {
		target, err := styleTargetOf(MsgStyleChanging, raw.WParam)
		if err != nil {
			return nil, err
		}
		return StyleChanging{Target: target, Style: Pointer(raw.LParam)}, nil
	},
	MsgStyleChanged: func(raw RawEvent) (Message, error) {
		target, err := styleTargetOf(MsgStyleChanged, raw.WParam)
		if err != nil {
			return nil, err
		}
		return StyleChanged{Target: target, Style: Pointer(raw.LParam)}, nil
	},
	MsgGetIcon: func(raw RawEvent) (Message, error) {
		if raw.WParam > WParam(IconSmall2) {
			return nil, &EnumError{Msg: MsgGetIcon, Field: "icon size", Value: uint64(raw.WParam)}
		}
		return GetIcon{Size: IconSize(raw.WParam), DPI: raw.LParam}, nil
	},
	MsgSetIcon: func(raw RawEvent) (Message, error) {
		if raw.WParam > WParam(IconSmall2) {
			return nil, &EnumError{Msg: MsgSetIcon, Field: "icon size", Value: uint64(raw.WParam)}
		}
		return SetIcon{Size: IconSize(raw.WParam), Icon: Handle(raw.LParam)}, nil
	},
	MsgNcCalcSize: func(raw RawEvent) (Message, error) {
		return NcCalcSize{Validate: raw.WParam != 0, Data: Pointer(raw.LParam)}, nil
	},
	MsgNcHitTest: func(raw RawEvent) (Message, error) {
		return NcHitTest{Pos: pointOf(raw.LParam)}, nil
	},
	MsgNcPaint: func(raw RawEvent) (Message, error) {
		return NcPaint{Region: Handle(raw.WParam)}, nil
	},
	MsgNcActivate: func(raw RawEvent) (Message, error) {
		return NcActivate{Active: raw.WParam != 0, Region: raw.LParam}, nil
	},
	MsgNcMouseMove: func(raw RawEvent) (Message, error) {
		return NcMouseMove{HitTest: raw.WParam, Pos: pointOf(raw.LParam)}, nil
	},
	MsgNcUahDrawCaption: func(raw RawEvent) (Message, error) {
		return NcUahDrawCaption{W: raw.WParam, L: raw.LParam}, nil
	},
	MsgNcUahDrawFrame: func(raw RawEvent) (Message, error) {
		return NcUahDrawFrame{W: raw.WParam, L: raw.LParam}, nil
	},
	MsgKeyDown: func(raw RawEvent) (Message, error) {
		return KeyDown{Code: raw.WParam, State: keystate.Decode(uint32(raw.LParam))}, nil
	},
	MsgKeyUp: func(raw RawEvent) (Message, error) {
		return KeyUp{Code: raw.WParam, State: keystate.Decode(uint32(raw.LParam))}, nil
	},
	MsgSysKeyDown: func(raw RawEvent) (Message, error) {
		return SysKeyDown{Code: raw.WParam, State: keystate.Decode(uint32(raw.LParam))}, nil
	},
	MsgSysKeyUp: func(raw RawEvent) (Message, error) {
		return SysKeyUp{Code: raw.WParam, State: keystate.Decode(uint32(raw.LParam))}, nil
	},
	MsgMouseMove: func(raw RawEvent) (Message, error) {
		return MouseMove{Modifiers: raw.WParam, Pos: pointOf(raw.LParam)}, nil
	},
	MsgMouseHover: func(raw RawEvent) (Message, error) {
		return MouseHover{Modifiers: raw.WParam, Pos: pointOf(raw.LParam)}, nil
	},
	MsgLButtonDown: func(raw RawEvent) (Message, error) {
		return LButtonDown{Modifiers: raw.WParam, Pos: pointOf(raw.LParam)}, nil
	},
	MsgLButtonUp: func(raw RawEvent) (Message, error) {
		return LButtonUp{Modifiers: raw.WParam, Pos: pointOf(raw.LParam)}, nil
	},
	MsgLButtonDblClk: func(raw RawEvent) (Message, error) {
		return LButtonDblClk{Modifiers: raw.WParam, Pos: pointOf(raw.LParam)}, nil
	},
	MsgRButtonDown: func(raw RawEvent) (Message, error) {
		return RButtonDown{Modifiers: raw.WParam, Pos: pointOf(raw.LParam)}, nil
	},
	MsgRButtonUp: func(raw RawEvent) (Message, error) {
		return RButtonUp{Modifiers: raw.WParam, Pos: pointOf(raw.LParam)}, nil
	},
	MsgRButtonDblClk: func(raw RawEvent) (Message, error) {
		return RButtonDblClk{Modifiers: raw.WParam, Pos: pointOf(raw.LParam)}, nil
	},
	MsgMButtonDown: func(raw RawEvent) (Message, error) {
		return MButtonDown{Modifiers: raw.WParam, Pos: pointOf(raw.LParam)}, nil
	},
	MsgMButtonUp: func(raw RawEvent) (Message, error) {
		return MButtonUp{Modifiers: raw.WParam, Pos: pointOf(raw.LParam)}, nil
	},
	MsgMButtonDblClk: func(raw RawEvent) (Message, error) {
		return MButtonDblClk{Modifiers: raw.WParam, Pos: pointOf(raw.LParam)}, nil
	},
	MsgMouseWheel: func(raw RawEvent) (Message, error) {
		return MouseWheel{
			Modifiers: low16(raw.WParam),
			Delta:     int16(high16(raw.WParam)),
			Pos:       pointOf(raw.LParam),
		}, nil
	},
	MsgMouseHWheel: func(raw RawEvent) (Message, error) {
		return MouseHWheel{
			Modifiers: low16(raw.WParam),
			Delta:     int16(high16(raw.WParam)),
			Pos:       pointOf(raw.LParam),
		}, nil
	},
	MsgXButtonDown: func(raw RawEvent) (Message, error) {
		return XButtonDown{
			Modifiers: low16(raw.WParam),
			Button:    high16(raw.WParam),
			Pos:       pointOf(raw.LParam),
		}, nil
	},
	MsgXButtonUp: func(raw RawEvent) (Message, error) {
		return XButtonUp{
			Modifiers: low16(raw.WParam),
			Button:    high16(raw.WParam),
			Pos:       pointOf(raw.LParam),
		}, nil
	},
	MsgXButtonDblClk: func(raw RawEvent) (Message, error) {
		return XButtonDblClk{
			Modifiers: low16(raw.WParam),
			Button:    high16(raw.WParam),
			Pos:       pointOf(raw.LParam),
		}, nil
	},
	MsgCaptureChanged: func(raw RawEvent) (Message, error) {
		return CaptureChanged{Window: Handle(raw.LParam)}, nil
	},
	MsgPowerBroadcast: func(raw RawEvent) (Message, error) {
		ev := PowerEvent(raw.WParam)
		switch ev {
		case PowerSuspend, PowerResumeSuspend, PowerStatusChange,
			PowerResumeAutomatic, PowerSettingChange:
		default:
			return nil, &EnumError{Msg: MsgPowerBroadcast, Field: "power event", Value: uint64(raw.WParam)}
		}
		return PowerBroadcast{Event: ev, Setting: Pointer(raw.LParam)}, nil
	},
	MsgImeSetContext: func(raw RawEvent) (Message, error) {
		return ImeSetContext{Active: raw.WParam != 0, Display: raw.LParam}, nil
	},
	MsgImeNotify: func(raw RawEvent) (Message, error) {
		return ImeNotify{Command: raw.WParam, Value: raw.LParam}, nil
	},
}

func styleTargetOf(msg MsgID, w WParam) (StyleTarget, error) {
	// The selector is a signed value carried in an unsigned word.
	t := StyleTarget(int32(uint32(w)))
	if t != StyleTargetStyle && t != StyleTargetExtended {
		return 0, &EnumError{Msg: msg, Field: "style target", Value: uint64(w)}
	}
	return t, nil
}

// plainMsgs lists every known identifier whose parameters carry no
// defined payload.
var plainMsgs = []MsgID{
	MsgNull, MsgDestroy, MsgKillFocus, MsgEnable, MsgSetRedraw,
	MsgSetText, MsgGetText, MsgGetTextLength, MsgPaint, MsgClose,
	MsgQueryEndSession, MsgQuit, MsgQueryOpen, MsgSysColorChange,
	MsgEndSession, MsgSettingChange, MsgDevModeChange, MsgFontChange,
	MsgTimeChange, MsgCancelMode, MsgChildActivate, MsgQueueSync,
	MsgPaintIcon, MsgIconEraseBackground, MsgNextDialogCtl,
	MsgSpoolerStatus, MsgDrawItem, MsgMeasureItem, MsgDeleteItem,
	MsgVKeyToItem, MsgCharToItem, MsgSetFont, MsgGetFont,
	MsgSetHotkey, MsgGetHotkey, MsgQueryDragIcon, MsgCompareItem,
	MsgGetObject, MsgCompacting, MsgCommNotify, MsgPower,
	MsgCopyData, MsgCancelJournal, MsgNotify, MsgInputLangChangeReq,
	MsgInputLangChange, MsgTCard, MsgHelp, MsgUserChanged,
	MsgNotifyFormat, MsgContextMenu, MsgDisplayChange, MsgNcCreate,
	MsgNcDestroy, MsgGetDlgCode, MsgSyncPaint, MsgNcLButtonDown,
	MsgNcLButtonUp, MsgNcLButtonDblClk, MsgNcRButtonDown,
	MsgNcRButtonUp, MsgNcRButtonDblClk, MsgNcMButtonDown,
	MsgNcMButtonUp, MsgNcMButtonDblClk, MsgNcXButtonDown,
	MsgNcXButtonUp, MsgNcXButtonDblClk, MsgInputDeviceChange,
	MsgInput, MsgChar, MsgDeadChar, MsgSysChar, MsgSysDeadChar,
	MsgUniChar, MsgImeStartComposition, MsgImeEndComposition,
	MsgImeComposition, MsgInitDialog, MsgCommand, MsgSysCommand,
	MsgTimer, MsgHScroll, MsgVScroll, MsgInitMenu, MsgInitMenuPopup,
	MsgGesture, MsgGestureNotify, MsgMenuSelect, MsgMenuChar,
	MsgEnterIdle, MsgMenuRButtonUp, MsgMenuDrag, MsgMenuGetObject,
	MsgUninitMenuPopup, MsgMenuCommand, MsgChangeUIState,
	MsgUpdateUIState, MsgQueryUIState, MsgCtlColorMsgBox,
	MsgCtlColorEdit, MsgCtlColorListBox, MsgCtlColorBtn,
	MsgCtlColorDlg, MsgCtlColorScrollbar, MsgCtlColorStatic,
	MsgParentNotify, MsgEnterMenuLoop, MsgExitMenuLoop, MsgNextMenu,
	MsgSizing, MsgMoving, MsgDeviceChange, MsgMdiCreate,
	MsgMdiDestroy, MsgMdiActivate, MsgMdiRestore, MsgMdiNext,
	MsgMdiMaximize, MsgMdiTile, MsgMdiCascade, MsgMdiIconArrange,
	MsgMdiGetActive, MsgMdiSetMenu, MsgEnterSizeMove,
	MsgExitSizeMove, MsgDropFiles, MsgMdiRefreshMenu,
	MsgPointerDeviceChange, MsgPointerDeviceInRange,
	MsgPointerDeviceOutOfRange, MsgTouch, MsgNcPointerUpdate,
	MsgNcPointerDown, MsgNcPointerUp, MsgPointerUpdate,
	MsgPointerDown, MsgPointerUp, MsgPointerEnter, MsgPointerLeave,
	MsgPointerActivate, MsgPointerCaptureChanged, MsgTouchHitTesting,
	MsgPointerWheel, MsgPointerHWheel, MsgPointerRoutedTo,
	MsgPointerRoutedAway, MsgPointerRoutedReleased, MsgImeControl,
	MsgImeCompositionFull, MsgImeSelect, MsgImeChar, MsgImeRequest,
	MsgImeKeyDown, MsgImeKeyUp, MsgNcMouseHover, MsgNcMouseLeave,
	MsgMouseLeave, MsgWtsSessionChange, MsgTabletFirst,
	MsgTabletLast, MsgDpiChanged, MsgDpiChangedBeforeParent,
	MsgDpiChangedAfterParent, MsgGetDpiScaledSize, MsgCut, MsgCopy,
	MsgPaste, MsgClear, MsgUndo, MsgRenderFormat,
	MsgRenderAllFormats, MsgDestroyClipboard, MsgDrawClipboard,
	MsgPaintClipboard, MsgVScrollClipboard, MsgSizeClipboard,
	MsgAskCbFormatName, MsgChangeCbChain, MsgHScrollClipboard,
	MsgQueryNewPalette, MsgPaletteIsChanging, MsgPaletteChanged,
	MsgHotkey, MsgPrint, MsgPrintClient, MsgAppCommand,
	MsgThemeChanged, MsgClipboardUpdate, MsgDwmCompositionChanged,
	MsgDwmNcRenderingChanged, MsgDwmColorizationColorChanged,
	MsgDwmWindowMaximizedChange, MsgDwmSendIconicThumbnail,
	MsgDwmSendIconicLivePreview, MsgGetTitleBarInfoEx,
	MsgHandheldFirst, MsgHandheldLast, MsgAfxFirst, MsgAfxLast,
	MsgPenWinFirst, MsgPenWinLast,
}

func init() {
	for _, id := range plainMsgs {
		decoders[id] = decodePlain
	}
}
