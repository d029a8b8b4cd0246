package fetcher

import (
	"fmt"
	"github.com/vbauerster/mpb/v8"
	"github.com/vbauerster/mpb/v8/decor"
	"io"
	"time"
)

type BarAdapter interface {
	Increment()
	Complete()
}

// Progress draws a single bar for one request. The bar is removed once
// complete so status lines printed afterwards are not overwritten.
type Progress struct {
	progress *mpb.Progress
	bar      *mpb.Bar
	start    time.Time
}

func NewProgress(output io.Writer, label string) *Progress {
	p := mpb.New(mpb.WithOutput(output))
	return &Progress{
		progress: p,
		bar:      p.New(1, barStyle(), fetchOptions(label)...),
		start:    time.Now(),
	}
}

func (pb *Progress) Increment() {
	pb.bar.EwmaIncrement(time.Since(pb.start))
}

func (pb *Progress) Complete() {
	pb.bar.Abort(true)
	pb.progress.Wait()
}

type noopBar struct{}

func (noopBar) Increment() {}
func (noopBar) Complete()  {}

func barStyle() mpb.BarStyleComposer {
	return mpb.BarStyle().Lbound("").Filler("█").Padding("░").Tip("").Refiller("").Rbound("")
}

func fetchOptions(label string) []mpb.BarOption {
	return []mpb.BarOption{
		mpb.BarPriority(0),
		mpb.BarWidth(65),
		mpb.BarRemoveOnComplete(),
		mpb.PrependDecorators(
			decor.Name(fmt.Sprintf("%s: ", label)),
			decor.Name("Fetching...", decor.WCSyncSpaceR),
			decor.CountersNoUnit("%d / %d", decor.WCSyncWidth),
		),
		mpb.AppendDecorators(
			decor.OnComplete(decor.Percentage(decor.WC{W: 5}), "Done!"),
		),
	}
}
