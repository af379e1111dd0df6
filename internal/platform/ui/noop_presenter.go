package ui

// NoopPresenter is an empty Presenter implementation that produces no
// output. Used for quiet or scripted runs.
type NoopPresenter struct{}

// NewNoopPresenter creates a presenter without output.
func NewNoopPresenter() *NoopPresenter {
	return &NoopPresenter{}
}

func (n *NoopPresenter) Start(info RunInfo)                                  {}
func (n *NoopPresenter) Step(num, total int, name string)                    {}
func (n *NoopPresenter) Info(msg string)                                     {}
func (n *NoopPresenter) Warning(msg string)                                  {}
func (n *NoopPresenter) Error(msg string)                                    {}
func (n *NoopPresenter) FilteredEntry(index int, name, uri, username string) {}
func (n *NoopPresenter) Group(detail GroupDetail)                            {}
func (n *NoopPresenter) Finish(stats RunStats)                               {}
func (n *NoopPresenter) Close() error                                        { return nil }
