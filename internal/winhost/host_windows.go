//go:build windows

package winhost

import (
	"errors"
	"fmt"
	"log"
	"runtime"
	"sync/atomic"
	"unsafe"

	"github.com/lxn/win"
	"golang.org/x/sys/windows"

	"github.com/frudas24/inputreceiver/internal/event"
)

const (
	className       = "InputReceiverWindow"
	idShowMove      = 1001
	idLogView       = 1002
	msgSyncShowMove = win.WM_APP + 1
	emSetLimitText  = 0x00C5
	defaultWidth    = 800
	defaultHeight   = 600
)

// Host owns the top-level window, its log view, and the message pump.
// Append must be called on the pump thread; Close and SyncShowMouseMove are safe from any goroutine.
type Host struct {
	opts    Options
	handler Handler

	hwnd     atomic.Uintptr
	closing  atomic.Bool
	showMove atomic.Bool

	check   win.HWND
	logView win.HWND
	font    win.HFONT
}

// New prepares a host. The window is created by Run on the calling thread.
func New(opts Options) (*Host, error) {
	h := &Host{opts: opts.withDefaults()}
	h.showMove.Store(h.opts.ShowMouseMove)
	return h, nil
}

// Run creates the window and pumps messages until the window is closed.
// Each recognized input message is passed to handler before it is dispatched.
func (h *Host) Run(handler Handler) error {
	if handler == nil {
		return errors.New("event handler is required")
	}
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	h.handler = handler
	if err := h.create(); err != nil {
		return err
	}
	defer h.releaseFont()
	if h.closing.Load() {
		h.postClose()
	}
	return h.pump()
}

// Append adds a line to the bottom of the log view.
func (h *Host) Append(line string) {
	if h.logView == 0 {
		return
	}
	end := win.SendMessage(h.logView, win.WM_GETTEXTLENGTH, 0, 0)
	text := line
	if end > 0 {
		text = "\r\n" + line
	}
	ptr, err := windows.UTF16PtrFromString(text)
	if err != nil {
		log.Printf("winhost: skip line: %v", err)
		return
	}
	win.SendMessage(h.logView, win.EM_SETSEL, end, end)
	win.SendMessage(h.logView, win.EM_REPLACESEL, 0, uintptr(unsafe.Pointer(ptr)))
}

// SyncShowMouseMove updates the checkbox to match a preference changed elsewhere.
func (h *Host) SyncShowMouseMove(show bool) {
	h.showMove.Store(show)
	hwnd := win.HWND(h.hwnd.Load())
	if hwnd == 0 {
		return
	}
	var wParam uintptr
	if show {
		wParam = 1
	}
	win.PostMessage(hwnd, msgSyncShowMove, wParam, 0)
}

// Close asks the window to close, which ends Run.
func (h *Host) Close() error {
	h.closing.Store(true)
	h.postClose()
	return nil
}

// postClose posts WM_CLOSE when the window exists.
func (h *Host) postClose() {
	if hwnd := win.HWND(h.hwnd.Load()); hwnd != 0 {
		win.PostMessage(hwnd, win.WM_CLOSE, 0, 0)
	}
}

// create registers the window class and builds the window with its children.
func (h *Host) create() error {
	inst := win.GetModuleHandle(nil)
	cls, err := windows.UTF16PtrFromString(className)
	if err != nil {
		return err
	}
	wc := win.WNDCLASSEX{
		LpfnWndProc:   windows.NewCallback(h.wndProc),
		HInstance:     inst,
		HCursor:       win.LoadCursor(0, win.MAKEINTRESOURCE(win.IDC_ARROW)),
		HbrBackground: win.HBRUSH(win.COLOR_BTNFACE + 1),
		LpszClassName: cls,
	}
	wc.CbSize = uint32(unsafe.Sizeof(wc))
	if win.RegisterClassEx(&wc) == 0 {
		return fmt.Errorf("RegisterClassEx failed: %w", windows.GetLastError())
	}

	title, err := windows.UTF16PtrFromString(h.opts.Title)
	if err != nil {
		return err
	}
	hwnd := win.CreateWindowEx(0, cls, title, win.WS_OVERLAPPEDWINDOW,
		win.CW_USEDEFAULT, win.CW_USEDEFAULT, defaultWidth, defaultHeight, 0, 0, inst, nil)
	if hwnd == 0 {
		return fmt.Errorf("CreateWindowEx failed: %w", windows.GetLastError())
	}

	if err := h.createChildren(hwnd, inst); err != nil {
		win.DestroyWindow(hwnd)
		return err
	}
	h.hwnd.Store(uintptr(hwnd))

	var rc win.RECT
	if win.GetClientRect(hwnd, &rc) {
		h.arrange(rc.Right-rc.Left, rc.Bottom-rc.Top)
	}
	win.ShowWindow(hwnd, win.SW_SHOWDEFAULT)
	win.UpdateWindow(hwnd)
	return nil
}

// createChildren builds the show-mouse-move checkbox and the read-only log view.
func (h *Host) createChildren(parent win.HWND, inst win.HINSTANCE) error {
	buttonCls, err := windows.UTF16PtrFromString("BUTTON")
	if err != nil {
		return err
	}
	label, err := windows.UTF16PtrFromString(showMoveLabel)
	if err != nil {
		return err
	}
	h.check = win.CreateWindowEx(0, buttonCls, label,
		uint32(win.WS_CHILD|win.WS_VISIBLE|win.WS_TABSTOP|win.BS_AUTOCHECKBOX),
		0, 0, 0, 0, parent, win.HMENU(idShowMove), inst, nil)
	if h.check == 0 {
		return fmt.Errorf("create checkbox failed: %w", windows.GetLastError())
	}
	h.setChecked(h.showMove.Load())

	editCls, err := windows.UTF16PtrFromString("EDIT")
	if err != nil {
		return err
	}
	h.logView = win.CreateWindowEx(win.WS_EX_CLIENTEDGE, editCls, nil,
		uint32(win.WS_CHILD|win.WS_VISIBLE|win.WS_VSCROLL|win.ES_MULTILINE|win.ES_READONLY|win.ES_AUTOVSCROLL),
		0, 0, 0, 0, parent, win.HMENU(idLogView), inst, nil)
	if h.logView == 0 {
		return fmt.Errorf("create log view failed: %w", windows.GetLastError())
	}
	// Zero lifts the default 32K character cap.
	win.SendMessage(h.logView, emSetLimitText, 0, 0)

	if h.font = h.createFont(); h.font != 0 {
		win.SendMessage(h.logView, win.WM_SETFONT, uintptr(h.font), 1)
	}
	return nil
}

// createFont builds the monospace log font at the configured point size.
func (h *Host) createFont() win.HFONT {
	dpi := 96
	if hdc := win.GetDC(0); hdc != 0 {
		dpi = int(win.GetDeviceCaps(hdc, win.LOGPIXELSY))
		win.ReleaseDC(0, hdc)
	}
	lf := win.LOGFONT{LfHeight: fontHeight(h.opts.FontSize, dpi)}
	face, err := windows.UTF16FromString(h.opts.FontFace)
	if err != nil || len(face) > len(lf.LfFaceName) {
		log.Printf("winhost: invalid font face %q, using system font", h.opts.FontFace)
		return 0
	}
	copy(lf.LfFaceName[:], face)
	return win.CreateFontIndirect(&lf)
}

// releaseFont deletes the log font.
func (h *Host) releaseFont() {
	if h.font != 0 {
		win.DeleteObject(win.HGDIOBJ(h.font))
		h.font = 0
	}
}

// setChecked sets the checkbox state without raising a click notification.
func (h *Host) setChecked(show bool) {
	state := uintptr(win.BST_UNCHECKED)
	if show {
		state = win.BST_CHECKED
	}
	win.SendMessage(h.check, win.BM_SETCHECK, state, 0)
}

// arrange moves the children to fit a client area of the given size.
func (h *Host) arrange(width, height int32) {
	if h.check == 0 || h.logView == 0 {
		return
	}
	check, logView := layout(width, height)
	win.MoveWindow(h.check, check.X, check.Y, check.W, check.H, true)
	win.MoveWindow(h.logView, logView.X, logView.Y, logView.W, logView.H, true)
}

// pump runs the message loop, observing input before dispatch.
func (h *Host) pump() error {
	var msg win.MSG
	for {
		switch win.GetMessage(&msg, 0, 0, 0) {
		case 0:
			return nil
		case -1:
			return fmt.Errorf("GetMessage failed: %w", windows.GetLastError())
		}
		if event.Recognized(msg.Message) {
			h.handler(event.FromNative(msg.Message, msg.WParam, msg.LParam))
		}
		if !shouldDispatch(msg.Message, msg.HWnd == h.logView) {
			continue
		}
		win.TranslateMessage(&msg)
		win.DispatchMessage(&msg)
	}
}

// wndProc handles messages for the top-level window.
func (h *Host) wndProc(hwnd win.HWND, msg uint32, wParam, lParam uintptr) uintptr {
	switch msg {
	case win.WM_SIZE:
		size := uint32(lParam)
		h.arrange(int32(event.LowWord(size)), int32(event.HighWord(size)))
		return 0
	case win.WM_COMMAND:
		cmd := uint32(wParam)
		if event.LowWord(cmd) == idShowMove && event.HighWord(cmd) == win.BN_CLICKED {
			show := win.SendMessage(h.check, win.BM_GETCHECK, 0, 0) == win.BST_CHECKED
			h.showMove.Store(show)
			if h.opts.OnShowMouseMove != nil {
				h.opts.OnShowMouseMove(show)
			}
			return 0
		}
	case msgSyncShowMove:
		h.setChecked(wParam != 0)
		return 0
	case win.WM_DESTROY:
		h.hwnd.Store(0)
		win.PostQuitMessage(0)
		return 0
	}
	return win.DefWindowProc(hwnd, msg, wParam, lParam)
}
