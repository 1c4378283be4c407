package search

// Option configures a PathFinder via functional arguments.
type Option[R comparable, C Cost] func(*Options[R, C])

// Options holds the observation hooks of a PathFinder. Hooks must not
// mutate the finder, its storage or the map being searched.
type Options[R comparable, C Cost] struct {
	// OnPush is called for every frontier entry pushed during expansion,
	// with the neighbor and its tentative cost. The seed entry is not reported.
	OnPush func(node R, cost C)

	// OnSettle is called right after a node's slot is written.
	OnSettle func(node R, item VisitedItem[R, C])

	// OnDiscard is called when a stale frontier entry is dropped.
	OnDiscard func(node R)

	// OnFinish is called once, when the finder enters a terminal status.
	OnFinish func(status Status)
}

// DefaultOptions returns Options with no-op hooks.
func DefaultOptions[R comparable, C Cost]() Options[R, C] {
	return Options[R, C]{
		OnPush:    func(R, C) {},
		OnSettle:  func(R, VisitedItem[R, C]) {},
		OnDiscard: func(R) {},
		OnFinish:  func(Status) {},
	}
}

// WithOnPush registers a callback run for each pushed frontier entry.
func WithOnPush[R comparable, C Cost](fn func(node R, cost C)) Option[R, C] {
	return func(o *Options[R, C]) {
		if fn != nil {
			o.OnPush = fn
		}
	}
}

// WithOnSettle registers a callback run for each settled node.
func WithOnSettle[R comparable, C Cost](fn func(node R, item VisitedItem[R, C])) Option[R, C] {
	return func(o *Options[R, C]) {
		if fn != nil {
			o.OnSettle = fn
		}
	}
}

// WithOnDiscard registers a callback run for each discarded stale entry.
func WithOnDiscard[R comparable, C Cost](fn func(node R)) Option[R, C] {
	return func(o *Options[R, C]) {
		if fn != nil {
			o.OnDiscard = fn
		}
	}
}

// WithOnFinish registers a callback run when the search terminates.
func WithOnFinish[R comparable, C Cost](fn func(status Status)) Option[R, C] {
	return func(o *Options[R, C]) {
		if fn != nil {
			o.OnFinish = fn
		}
	}
}
