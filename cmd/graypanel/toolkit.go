package main

import (
	"github.com/nerrad567/gray-logic-panel/internal/infrastructure/logging"
	"github.com/nerrad567/gray-logic-panel/internal/screen"
	"github.com/nerrad567/gray-logic-panel/internal/screens"
)

// headlessToolkit is the toolkit used when no display stack is linked in.
//
// Hardware builds swap this for the LVGL-backed toolkit; the headless one
// keeps bring-up, soak testing and CI runs working on machines without a
// display. Roots are plain bookkeeping objects so lifecycle pairing is
// still observable in logs.
type headlessToolkit struct {
	log *logging.Logger
}

// headlessRoot is the opaque root object handed to the lifecycle manager.
type headlessRoot struct {
	name string
}

func newToolkit(log *logging.Logger) screens.Toolkit {
	return &headlessToolkit{log: log.With("component", "toolkit")}
}

func (tk *headlessToolkit) NewRoot(name string) (screen.Object, error) {
	tk.log.Debug("root created", "screen", name)
	return &headlessRoot{name: name}, nil
}

func (tk *headlessToolkit) Release(root screen.Object) {
	if r, ok := root.(*headlessRoot); ok {
		tk.log.Debug("root released", "screen", r.name)
	}
}
