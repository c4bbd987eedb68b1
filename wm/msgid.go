package wm

import "fmt"

// MsgID is the numeric discriminant of a system-band message. The
// constants below are the identifiers the decoder knows; anything
// else in the system band decodes to Unknown.
type MsgID uint32

// Window lifecycle and state.
const (
	MsgNull            MsgID = 0x0000
	MsgCreate          MsgID = 0x0001
	MsgDestroy         MsgID = 0x0002
	MsgMove            MsgID = 0x0003
	MsgSize            MsgID = 0x0005
	MsgActivate        MsgID = 0x0006
	MsgSetFocus        MsgID = 0x0007
	MsgKillFocus       MsgID = 0x0008
	MsgEnable          MsgID = 0x000A
	MsgSetRedraw       MsgID = 0x000B
	MsgSetText         MsgID = 0x000C
	MsgGetText         MsgID = 0x000D
	MsgGetTextLength   MsgID = 0x000E
	MsgPaint           MsgID = 0x000F
	MsgClose           MsgID = 0x0010
	MsgQueryEndSession MsgID = 0x0011
	MsgQuit            MsgID = 0x0012
	MsgQueryOpen       MsgID = 0x0013
	MsgEraseBackground MsgID = 0x0014
	MsgSysColorChange  MsgID = 0x0015
	MsgEndSession      MsgID = 0x0016
	MsgShowWindow      MsgID = 0x0018
	MsgSettingChange   MsgID = 0x001A
	MsgDevModeChange   MsgID = 0x001B
	MsgActivateApp     MsgID = 0x001C
	MsgFontChange      MsgID = 0x001D
	MsgTimeChange      MsgID = 0x001E
	MsgCancelMode      MsgID = 0x001F
	MsgSetCursor       MsgID = 0x0020
	MsgMouseActivate   MsgID = 0x0021
	MsgChildActivate   MsgID = 0x0022
	MsgQueueSync       MsgID = 0x0023
	MsgGetMinMaxInfo   MsgID = 0x0024
)

// Icons, items, and window chrome.
const (
	MsgPaintIcon           MsgID = 0x0026
	MsgIconEraseBackground MsgID = 0x0027
	MsgNextDialogCtl       MsgID = 0x0028
	MsgSpoolerStatus       MsgID = 0x002A
	MsgDrawItem            MsgID = 0x002B
	MsgMeasureItem         MsgID = 0x002C
	MsgDeleteItem          MsgID = 0x002D
	MsgVKeyToItem          MsgID = 0x002E
	MsgCharToItem          MsgID = 0x002F
	MsgSetFont             MsgID = 0x0030
	MsgGetFont             MsgID = 0x0031
	MsgSetHotkey           MsgID = 0x0032
	MsgGetHotkey           MsgID = 0x0033
	MsgQueryDragIcon       MsgID = 0x0037
	MsgCompareItem         MsgID = 0x0039
	MsgGetObject           MsgID = 0x003D
	MsgCompacting          MsgID = 0x0041
	MsgCommNotify          MsgID = 0x0044
	MsgWindowPosChanging   MsgID = 0x0046
	MsgWindowPosChanged    MsgID = 0x0047
	MsgPower               MsgID = 0x0048
	MsgCopyData            MsgID = 0x004A
	MsgCancelJournal       MsgID = 0x004B
	MsgNotify              MsgID = 0x004E
	MsgInputLangChangeReq  MsgID = 0x0050
	MsgInputLangChange     MsgID = 0x0051
	MsgTCard               MsgID = 0x0052
	MsgHelp                MsgID = 0x0053
	MsgUserChanged         MsgID = 0x0054
	MsgNotifyFormat        MsgID = 0x0055
	MsgContextMenu         MsgID = 0x007B
	MsgStyleChanging       MsgID = 0x007C
	MsgStyleChanged        MsgID = 0x007D
	MsgDisplayChange       MsgID = 0x007E
	MsgGetIcon             MsgID = 0x007F
	MsgSetIcon             MsgID = 0x0080
)

// Non-client area.
const (
	MsgNcCreate          MsgID = 0x0081
	MsgNcDestroy         MsgID = 0x0082
	MsgNcCalcSize        MsgID = 0x0083
	MsgNcHitTest         MsgID = 0x0084
	MsgNcPaint           MsgID = 0x0085
	MsgNcActivate        MsgID = 0x0086
	MsgGetDlgCode        MsgID = 0x0087
	MsgSyncPaint         MsgID = 0x0088
	MsgNcMouseMove       MsgID = 0x00A0
	MsgNcLButtonDown     MsgID = 0x00A1
	MsgNcLButtonUp       MsgID = 0x00A2
	MsgNcLButtonDblClk   MsgID = 0x00A3
	MsgNcRButtonDown     MsgID = 0x00A4
	MsgNcRButtonUp       MsgID = 0x00A5
	MsgNcRButtonDblClk   MsgID = 0x00A6
	MsgNcMButtonDown     MsgID = 0x00A7
	MsgNcMButtonUp       MsgID = 0x00A8
	MsgNcMButtonDblClk   MsgID = 0x00A9
	MsgNcXButtonDown     MsgID = 0x00AB
	MsgNcXButtonUp       MsgID = 0x00AC
	MsgNcXButtonDblClk   MsgID = 0x00AD
	MsgNcUahDrawCaption  MsgID = 0x00AE
	MsgNcUahDrawFrame    MsgID = 0x00AF
	MsgInputDeviceChange MsgID = 0x00FE
	MsgInput             MsgID = 0x00FF
)

// Keyboard.
const (
	MsgKeyDown             MsgID = 0x0100
	MsgKeyUp               MsgID = 0x0101
	MsgChar                MsgID = 0x0102
	MsgDeadChar            MsgID = 0x0103
	MsgSysKeyDown          MsgID = 0x0104
	MsgSysKeyUp            MsgID = 0x0105
	MsgSysChar             MsgID = 0x0106
	MsgSysDeadChar         MsgID = 0x0107
	MsgUniChar             MsgID = 0x0109
	MsgImeStartComposition MsgID = 0x010D
	MsgImeEndComposition   MsgID = 0x010E
	MsgImeComposition      MsgID = 0x010F
)

// Dialogs, commands, and menus.
const (
	MsgInitDialog        MsgID = 0x0110
	MsgCommand           MsgID = 0x0111
	MsgSysCommand        MsgID = 0x0112
	MsgTimer             MsgID = 0x0113
	MsgHScroll           MsgID = 0x0114
	MsgVScroll           MsgID = 0x0115
	MsgInitMenu          MsgID = 0x0116
	MsgInitMenuPopup     MsgID = 0x0117
	MsgGesture           MsgID = 0x0119
	MsgGestureNotify     MsgID = 0x011A
	MsgMenuSelect        MsgID = 0x011F
	MsgMenuChar          MsgID = 0x0120
	MsgEnterIdle         MsgID = 0x0121
	MsgMenuRButtonUp     MsgID = 0x0122
	MsgMenuDrag          MsgID = 0x0123
	MsgMenuGetObject     MsgID = 0x0124
	MsgUninitMenuPopup   MsgID = 0x0125
	MsgMenuCommand       MsgID = 0x0126
	MsgChangeUIState     MsgID = 0x0127
	MsgUpdateUIState     MsgID = 0x0128
	MsgQueryUIState      MsgID = 0x0129
	MsgCtlColorMsgBox    MsgID = 0x0132
	MsgCtlColorEdit      MsgID = 0x0133
	MsgCtlColorListBox   MsgID = 0x0134
	MsgCtlColorBtn       MsgID = 0x0135
	MsgCtlColorDlg       MsgID = 0x0136
	MsgCtlColorScrollbar MsgID = 0x0137
	MsgCtlColorStatic    MsgID = 0x0138
)

// Mouse.
const (
	MsgMouseMove     MsgID = 0x0200
	MsgLButtonDown   MsgID = 0x0201
	MsgLButtonUp     MsgID = 0x0202
	MsgLButtonDblClk MsgID = 0x0203
	MsgRButtonDown   MsgID = 0x0204
	MsgRButtonUp     MsgID = 0x0205
	MsgRButtonDblClk MsgID = 0x0206
	MsgMButtonDown   MsgID = 0x0207
	MsgMButtonUp     MsgID = 0x0208
	MsgMButtonDblClk MsgID = 0x0209
	MsgMouseWheel    MsgID = 0x020A
	MsgXButtonDown   MsgID = 0x020B
	MsgXButtonUp     MsgID = 0x020C
	MsgXButtonDblClk MsgID = 0x020D
	MsgMouseHWheel   MsgID = 0x020E
)

// Size/move loops, power, and MDI.
const (
	MsgParentNotify   MsgID = 0x0210
	MsgEnterMenuLoop  MsgID = 0x0211
	MsgExitMenuLoop   MsgID = 0x0212
	MsgNextMenu       MsgID = 0x0213
	MsgSizing         MsgID = 0x0214
	MsgCaptureChanged MsgID = 0x0215
	MsgMoving         MsgID = 0x0216
	MsgPowerBroadcast MsgID = 0x0218
	MsgDeviceChange   MsgID = 0x0219
	MsgMdiCreate      MsgID = 0x0220
	MsgMdiDestroy     MsgID = 0x0221
	MsgMdiActivate    MsgID = 0x0222
	MsgMdiRestore     MsgID = 0x0223
	MsgMdiNext        MsgID = 0x0224
	MsgMdiMaximize    MsgID = 0x0225
	MsgMdiTile        MsgID = 0x0226
	MsgMdiCascade     MsgID = 0x0227
	MsgMdiIconArrange MsgID = 0x0228
	MsgMdiGetActive   MsgID = 0x0229
	MsgMdiSetMenu     MsgID = 0x0230
	MsgEnterSizeMove  MsgID = 0x0231
	MsgExitSizeMove   MsgID = 0x0232
	MsgDropFiles      MsgID = 0x0233
	MsgMdiRefreshMenu MsgID = 0x0234
)

// Pointer and touch.
const (
	MsgPointerDeviceChange     MsgID = 0x0238
	MsgPointerDeviceInRange    MsgID = 0x0239
	MsgPointerDeviceOutOfRange MsgID = 0x023A
	MsgTouch                   MsgID = 0x0240
	MsgNcPointerUpdate         MsgID = 0x0241
	MsgNcPointerDown           MsgID = 0x0242
	MsgNcPointerUp             MsgID = 0x0243
	MsgPointerUpdate           MsgID = 0x0245
	MsgPointerDown             MsgID = 0x0246
	MsgPointerUp               MsgID = 0x0247
	MsgPointerEnter            MsgID = 0x0249
	MsgPointerLeave            MsgID = 0x024A
	MsgPointerActivate         MsgID = 0x024B
	MsgPointerCaptureChanged   MsgID = 0x024C
	MsgTouchHitTesting         MsgID = 0x024D
	MsgPointerWheel            MsgID = 0x024E
	MsgPointerHWheel           MsgID = 0x024F
	MsgPointerRoutedTo         MsgID = 0x0251
	MsgPointerRoutedAway       MsgID = 0x0252
	MsgPointerRoutedReleased   MsgID = 0x0253
)

// IME and hover/leave tracking.
const (
	MsgImeSetContext      MsgID = 0x0281
	MsgImeNotify          MsgID = 0x0282
	MsgImeControl         MsgID = 0x0283
	MsgImeCompositionFull MsgID = 0x0284
	MsgImeSelect          MsgID = 0x0285
	MsgImeChar            MsgID = 0x0286
	MsgImeRequest         MsgID = 0x0288
	MsgImeKeyDown         MsgID = 0x0290
	MsgImeKeyUp           MsgID = 0x0291
	MsgNcMouseHover       MsgID = 0x02A0
	MsgMouseHover         MsgID = 0x02A1
	MsgNcMouseLeave       MsgID = 0x02A2
	MsgMouseLeave         MsgID = 0x02A3
	MsgWtsSessionChange   MsgID = 0x02B1
	MsgTabletFirst        MsgID = 0x02C0
	MsgTabletLast         MsgID = 0x02DF
)

// DPI.
const (
	MsgDpiChanged             MsgID = 0x02E0
	MsgDpiChangedBeforeParent MsgID = 0x02E2
	MsgDpiChangedAfterParent  MsgID = 0x02E3
	MsgGetDpiScaledSize       MsgID = 0x02E4
)

// Clipboard and palette.
const (
	MsgCut               MsgID = 0x0300
	MsgCopy              MsgID = 0x0301
	MsgPaste             MsgID = 0x0302
	MsgClear             MsgID = 0x0303
	MsgUndo              MsgID = 0x0304
	MsgRenderFormat      MsgID = 0x0305
	MsgRenderAllFormats  MsgID = 0x0306
	MsgDestroyClipboard  MsgID = 0x0307
	MsgDrawClipboard     MsgID = 0x0308
	MsgPaintClipboard    MsgID = 0x0309
	MsgVScrollClipboard  MsgID = 0x030A
	MsgSizeClipboard     MsgID = 0x030B
	MsgAskCbFormatName   MsgID = 0x030C
	MsgChangeCbChain     MsgID = 0x030D
	MsgHScrollClipboard  MsgID = 0x030E
	MsgQueryNewPalette   MsgID = 0x030F
	MsgPaletteIsChanging MsgID = 0x0310
	MsgPaletteChanged    MsgID = 0x0311
	MsgHotkey            MsgID = 0x0312
	MsgPrint             MsgID = 0x0317
	MsgPrintClient       MsgID = 0x0318
	MsgAppCommand        MsgID = 0x0319
	MsgThemeChanged      MsgID = 0x031A
	MsgClipboardUpdate   MsgID = 0x031D
)

// Desktop composition and reserved ranges.
const (
	MsgDwmCompositionChanged       MsgID = 0x031E
	MsgDwmNcRenderingChanged       MsgID = 0x031F
	MsgDwmColorizationColorChanged MsgID = 0x0320
	MsgDwmWindowMaximizedChange    MsgID = 0x0321
	MsgDwmSendIconicThumbnail      MsgID = 0x0323
	MsgDwmSendIconicLivePreview    MsgID = 0x0326
	MsgGetTitleBarInfoEx           MsgID = 0x033F
	MsgHandheldFirst               MsgID = 0x0358
	MsgHandheldLast                MsgID = 0x035F
	MsgAfxFirst                    MsgID = 0x0360
	MsgAfxLast                     MsgID = 0x037F
	MsgPenWinFirst                 MsgID = 0x0380
	MsgPenWinLast                  MsgID = 0x038F
)

// String returns the protocol name of the identifier, or a hex form
// for identifiers outside the known table.
func (m MsgID) String() string {
	if name, ok := msgNames[m]; ok {
		return name
	}
	return fmt.Sprintf("MsgID(%#04x)", uint32(m))
}

var msgNames = map[MsgID]string{
	MsgNull:                        "Null",
	MsgCreate:                      "Create",
	MsgDestroy:                     "Destroy",
	MsgMove:                        "Move",
	MsgSize:                        "Size",
	MsgActivate:                    "Activate",
	MsgSetFocus:                    "SetFocus",
	MsgKillFocus:                   "KillFocus",
	MsgEnable:                      "Enable",
	MsgSetRedraw:                   "SetRedraw",
	MsgSetText:                     "SetText",
	MsgGetText:                     "GetText",
	MsgGetTextLength:               "GetTextLength",
	MsgPaint:                       "Paint",
	MsgClose:                       "Close",
	MsgQueryEndSession:             "QueryEndSession",
	MsgQuit:                        "Quit",
	MsgQueryOpen:                   "QueryOpen",
	MsgEraseBackground:             "EraseBackground",
	MsgSysColorChange:              "SysColorChange",
	MsgEndSession:                  "EndSession",
	MsgShowWindow:                  "ShowWindow",
	MsgSettingChange:               "SettingChange",
	MsgDevModeChange:               "DevModeChange",
	MsgActivateApp:                 "ActivateApp",
	MsgFontChange:                  "FontChange",
	MsgTimeChange:                  "TimeChange",
	MsgCancelMode:                  "CancelMode",
	MsgSetCursor:                   "SetCursor",
	MsgMouseActivate:               "MouseActivate",
	MsgChildActivate:               "ChildActivate",
	MsgQueueSync:                   "QueueSync",
	MsgGetMinMaxInfo:               "GetMinMaxInfo",
	MsgPaintIcon:                   "PaintIcon",
	MsgIconEraseBackground:         "IconEraseBackground",
	MsgNextDialogCtl:               "NextDialogCtl",
	MsgSpoolerStatus:               "SpoolerStatus",
	MsgDrawItem:                    "DrawItem",
	MsgMeasureItem:                 "MeasureItem",
	MsgDeleteItem:                  "DeleteItem",
	MsgVKeyToItem:                  "VKeyToItem",
	MsgCharToItem:                  "CharToItem",
	MsgSetFont:                     "SetFont",
	MsgGetFont:                     "GetFont",
	MsgSetHotkey:                   "SetHotkey",
	MsgGetHotkey:                   "GetHotkey",
	MsgQueryDragIcon:               "QueryDragIcon",
	MsgCompareItem:                 "CompareItem",
	MsgGetObject:                   "GetObject",
	MsgCompacting:                  "Compacting",
	MsgCommNotify:                  "CommNotify",
	MsgWindowPosChanging:           "WindowPosChanging",
	MsgWindowPosChanged:            "WindowPosChanged",
	MsgPower:                       "Power",
	MsgCopyData:                    "CopyData",
	MsgCancelJournal:               "CancelJournal",
	MsgNotify:                      "Notify",
	MsgInputLangChangeReq:          "InputLangChangeRequest",
	MsgInputLangChange:             "InputLangChange",
	MsgTCard:                       "TCard",
	MsgHelp:                        "Help",
	MsgUserChanged:                 "UserChanged",
	MsgNotifyFormat:                "NotifyFormat",
	MsgContextMenu:                 "ContextMenu",
	MsgStyleChanging:               "StyleChanging",
	MsgStyleChanged:                "StyleChanged",
	MsgDisplayChange:               "DisplayChange",
	MsgGetIcon:                     "GetIcon",
	MsgSetIcon:                     "SetIcon",
	MsgNcCreate:                    "NcCreate",
	MsgNcDestroy:                   "NcDestroy",
	MsgNcCalcSize:                  "NcCalcSize",
	MsgNcHitTest:                   "NcHitTest",
	MsgNcPaint:                     "NcPaint",
	MsgNcActivate:                  "NcActivate",
	MsgGetDlgCode:                  "GetDlgCode",
	MsgSyncPaint:                   "SyncPaint",
	MsgNcMouseMove:                 "NcMouseMove",
	MsgNcLButtonDown:               "NcLButtonDown",
	MsgNcLButtonUp:                 "NcLButtonUp",
	MsgNcLButtonDblClk:             "NcLButtonDblClk",
	MsgNcRButtonDown:               "NcRButtonDown",
	MsgNcRButtonUp:                 "NcRButtonUp",
	MsgNcRButtonDblClk:             "NcRButtonDblClk",
	MsgNcMButtonDown:               "NcMButtonDown",
	MsgNcMButtonUp:                 "NcMButtonUp",
	MsgNcMButtonDblClk:             "NcMButtonDblClk",
	MsgNcXButtonDown:               "NcXButtonDown",
	MsgNcXButtonUp:                 "NcXButtonUp",
	MsgNcXButtonDblClk:             "NcXButtonDblClk",
	MsgNcUahDrawCaption:            "NcUahDrawCaption",
	MsgNcUahDrawFrame:              "NcUahDrawFrame",
	MsgInputDeviceChange:           "InputDeviceChange",
	MsgInput:                       "Input",
	MsgKeyDown:                     "KeyDown",
	MsgKeyUp:                       "KeyUp",
	MsgChar:                        "Char",
	MsgDeadChar:                    "DeadChar",
	MsgSysKeyDown:                  "SysKeyDown",
	MsgSysKeyUp:                    "SysKeyUp",
	MsgSysChar:                     "SysChar",
	MsgSysDeadChar:                 "SysDeadChar",
	MsgUniChar:                     "UniChar",
	MsgImeStartComposition:         "ImeStartComposition",
	MsgImeEndComposition:           "ImeEndComposition",
	MsgImeComposition:              "ImeComposition",
	MsgInitDialog:                  "InitDialog",
	MsgCommand:                     "Command",
	MsgSysCommand:                  "SysCommand",
	MsgTimer:                       "Timer",
	MsgHScroll:                     "HScroll",
	MsgVScroll:                     "VScroll",
	MsgInitMenu:                    "InitMenu",
	MsgInitMenuPopup:               "InitMenuPopup",
	MsgGesture:                     "Gesture",
	MsgGestureNotify:               "GestureNotify",
	MsgMenuSelect:                  "MenuSelect",
	MsgMenuChar:                    "MenuChar",
	MsgEnterIdle:                   "EnterIdle",
	MsgMenuRButtonUp:               "MenuRButtonUp",
	MsgMenuDrag:                    "MenuDrag",
	MsgMenuGetObject:               "MenuGetObject",
	MsgUninitMenuPopup:             "UninitMenuPopup",
	MsgMenuCommand:                 "MenuCommand",
	MsgChangeUIState:               "ChangeUIState",
	MsgUpdateUIState:               "UpdateUIState",
	MsgQueryUIState:                "QueryUIState",
	MsgCtlColorMsgBox:              "CtlColorMsgBox",
	MsgCtlColorEdit:                "CtlColorEdit",
	MsgCtlColorListBox:             "CtlColorListBox",
	MsgCtlColorBtn:                 "CtlColorBtn",
	MsgCtlColorDlg:                 "CtlColorDlg",
	MsgCtlColorScrollbar:           "CtlColorScrollbar",
	MsgCtlColorStatic:              "CtlColorStatic",
	MsgMouseMove:                   "MouseMove",
	MsgLButtonDown:                 "LButtonDown",
	MsgLButtonUp:                   "LButtonUp",
	MsgLButtonDblClk:               "LButtonDblClk",
	MsgRButtonDown:                 "RButtonDown",
	MsgRButtonUp:                   "RButtonUp",
	MsgRButtonDblClk:               "RButtonDblClk",
	MsgMButtonDown:                 "MButtonDown",
	MsgMButtonUp:                   "MButtonUp",
	MsgMButtonDblClk:               "MButtonDblClk",
	MsgMouseWheel:                  "MouseWheel",
	MsgXButtonDown:                 "XButtonDown",
	MsgXButtonUp:                   "XButtonUp",
	MsgXButtonDblClk:               "XButtonDblClk",
	MsgMouseHWheel:                 "MouseHWheel",
	MsgParentNotify:                "ParentNotify",
	MsgEnterMenuLoop:               "EnterMenuLoop",
	MsgExitMenuLoop:                "ExitMenuLoop",
	MsgNextMenu:                    "NextMenu",
	MsgSizing:                      "Sizing",
	MsgCaptureChanged:              "CaptureChanged",
	MsgMoving:                      "Moving",
	MsgPowerBroadcast:              "PowerBroadcast",
	MsgDeviceChange:                "DeviceChange",
	MsgMdiCreate:                   "MdiCreate",
	MsgMdiDestroy:                  "MdiDestroy",
	MsgMdiActivate:                 "MdiActivate",
	MsgMdiRestore:                  "MdiRestore",
	MsgMdiNext:                     "MdiNext",
	MsgMdiMaximize:                 "MdiMaximize",
	MsgMdiTile:                     "MdiTile",
	MsgMdiCascade:                  "MdiCascade",
	MsgMdiIconArrange:              "MdiIconArrange",
	MsgMdiGetActive:                "MdiGetActive",
	MsgMdiSetMenu:                  "MdiSetMenu",
	MsgEnterSizeMove:               "EnterSizeMove",
	MsgExitSizeMove:                "ExitSizeMove",
	MsgDropFiles:                   "DropFiles",
	MsgMdiRefreshMenu:              "MdiRefreshMenu",
	MsgPointerDeviceChange:         "PointerDeviceChange",
	MsgPointerDeviceInRange:        "PointerDeviceInRange",
	MsgPointerDeviceOutOfRange:     "PointerDeviceOutOfRange",
	MsgTouch:                       "Touch",
	MsgNcPointerUpdate:             "NcPointerUpdate",
	MsgNcPointerDown:               "NcPointerDown",
	MsgNcPointerUp:                 "NcPointerUp",
	MsgPointerUpdate:               "PointerUpdate",
	MsgPointerDown:                 "PointerDown",
	MsgPointerUp:                   "PointerUp",
	MsgPointerEnter:                "PointerEnter",
	MsgPointerLeave:                "PointerLeave",
	MsgPointerActivate:             "PointerActivate",
	MsgPointerCaptureChanged:       "PointerCaptureChanged",
	MsgTouchHitTesting:             "TouchHitTesting",
	MsgPointerWheel:                "PointerWheel",
	MsgPointerHWheel:               "PointerHWheel",
	MsgPointerRoutedTo:             "PointerRoutedTo",
	MsgPointerRoutedAway:           "PointerRoutedAway",
	MsgPointerRoutedReleased:       "PointerRoutedReleased",
	MsgImeSetContext:               "ImeSetContext",
	MsgImeNotify:                   "ImeNotify",
	MsgImeControl:                  "ImeControl",
	MsgImeCompositionFull:          "ImeCompositionFull",
	MsgImeSelect:                   "ImeSelect",
	MsgImeChar:                     "ImeChar",
	MsgImeRequest:                  "ImeRequest",
	MsgImeKeyDown:                  "ImeKeyDown",
	MsgImeKeyUp:                    "ImeKeyUp",
	MsgNcMouseHover:                "NcMouseHover",
	MsgMouseHover:                  "MouseHover",
	MsgNcMouseLeave:                "NcMouseLeave",
	MsgMouseLeave:                  "MouseLeave",
	MsgWtsSessionChange:            "WtsSessionChange",
	MsgTabletFirst:                 "TabletFirst",
	MsgTabletLast:                  "TabletLast",
	MsgDpiChanged:                  "DpiChanged",
	MsgDpiChangedBeforeParent:      "DpiChangedBeforeParent",
	MsgDpiChangedAfterParent:       "DpiChangedAfterParent",
	MsgGetDpiScaledSize:            "GetDpiScaledSize",
	MsgCut:                         "Cut",
	MsgCopy:                        "Copy",
	MsgPaste:                       "Paste",
	MsgClear:                       "Clear",
	MsgUndo:                        "Undo",
	MsgRenderFormat:                "RenderFormat",
	MsgRenderAllFormats:            "RenderAllFormats",
	MsgDestroyClipboard:            "DestroyClipboard",
	MsgDrawClipboard:               "DrawClipboard",
	MsgPaintClipboard:              "PaintClipboard",
	MsgVScrollClipboard:            "VScrollClipboard",
	MsgSizeClipboard:               "SizeClipboard",
	MsgAskCbFormatName:             "AskCbFormatName",
	MsgChangeCbChain:               "ChangeCbChain",
	MsgHScrollClipboard:            "HScrollClipboard",
	MsgQueryNewPalette:             "QueryNewPalette",
	MsgPaletteIsChanging:           "PaletteIsChanging",
	MsgPaletteChanged:              "PaletteChanged",
	MsgHotkey:                      "Hotkey",
	MsgPrint:                       "Print",
	MsgPrintClient:                 "PrintClient",
	MsgAppCommand:                  "AppCommand",
	MsgThemeChanged:                "ThemeChanged",
	MsgClipboardUpdate:             "ClipboardUpdate",
	MsgDwmCompositionChanged:       "DwmCompositionChanged",
	MsgDwmNcRenderingChanged:       "DwmNcRenderingChanged",
	MsgDwmColorizationColorChanged: "DwmColorizationColorChanged",
	MsgDwmWindowMaximizedChange:    "DwmWindowMaximizedChange",
	MsgDwmSendIconicThumbnail:      "DwmSendIconicThumbnail",
	MsgDwmSendIconicLivePreview:    "DwmSendIconicLivePreviewBitmap",
	MsgGetTitleBarInfoEx:           "GetTitleBarInfoEx",
	MsgHandheldFirst:               "HandheldFirst",
	MsgHandheldLast:                "HandheldLast",
	MsgAfxFirst:                    "AfxFirst",
	MsgAfxLast:                     "AfxLast",
	MsgPenWinFirst:                 "PenWinFirst",
	MsgPenWinLast:                  "PenWinLast",
}
