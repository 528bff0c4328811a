package main

import (
	"context"
	"fmt"
	"runtime/debug"

	"github.com/gotk3/gotk3/gtk"
)

func CatchPanicToContext(ctxCancel context.CancelCauseFunc) {
	if v := recover(); v != nil {
		err, ok := v.(error)
		if !ok {
			err = fmt.Errorf("panic: %v", v)
		}
		err = fmt.Errorf("%w\n%v", err, string(debug.Stack()))
		if ctxCancel != nil {
			ctxCancel(err)
		}
	}
}

// ShowErrorDialog blocks showing err in a modal dialog.
// Without a display it only logs.
func ShowErrorDialog(title string, err error) {
	if gtkErr := gtk.InitCheck(nil); gtkErr != nil {
		mainLogger.Warning(fmt.Sprintf("Unable to show error dialog: %v", gtkErr))
		return
	}

	dialog := gtk.MessageDialogNew(
		nil,
		gtk.DIALOG_MODAL,
		gtk.MESSAGE_ERROR,
		gtk.BUTTONS_CLOSE,
		"%s",
		err.Error(),
	)
	dialog.SetTitle(title)

	messageArea, err := dialog.GetMessageArea()
	if err != nil {
		mainLogger.Warning(err.Error())
	} else {
		messageArea.GetChildren().Foreach(func(item interface{}) {
			if widget, ok := item.(*gtk.Widget); ok {
				l, err := gtk.WidgetToLabel(widget)
				if err != nil {
					return
				}

				l.SetSelectable(true)
			}
		})
	}

	dialog.SetKeepAbove(true)
	dialog.Run()
	dialog.Destroy()
}
