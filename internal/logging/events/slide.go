package events

import "github.com/atomicstack/hero-slider/internal/logging"

type SlideTracer struct{}

type ViewTracer struct{}

type SearchTracer struct{}

var (
	Slide  = SlideTracer{}
	View   = ViewTracer{}
	Search = SearchTracer{}
)

// Transition records an accepted index change. Dropped requests are not traced.
func (SlideTracer) Transition(source string, from, to int, epoch uint64) {
	logging.Trace("slide.transition", map[string]interface{}{
		"source": source,
		"from":   from,
		"to":     to,
		"epoch":  epoch,
	})
}

func (SlideTracer) Release(epoch uint64, index int) {
	logging.Trace("slide.release", map[string]interface{}{"epoch": epoch, "index": index})
}

func (ViewTracer) Mount(slides int) {
	logging.Trace("view.mount", map[string]interface{}{"slides": slides})
}

func (ViewTracer) Unmount(index int, locked bool) {
	logging.Trace("view.unmount", map[string]interface{}{"index": index, "locked": locked})
}

func (ViewTracer) Resize(width, height int) {
	logging.Trace("view.resize", map[string]interface{}{"width": width, "height": height})
}

func (SearchTracer) Open() {
	logging.Trace("search.open", nil)
}

func (SearchTracer) Cancel() {
	logging.Trace("search.cancel", nil)
}

func (SearchTracer) Match(query string, index int, label string) {
	logging.Trace("search.match", map[string]interface{}{"query": query, "index": index, "label": label})
}

func (SearchTracer) Miss(query string) {
	logging.Trace("search.miss", map[string]interface{}{"query": query})
}
