package batch

// Option configures a Batch during creation.
//
// Example:
//
//	// Pre-size the vertex stream for about 1000 sprites.
//	b := batch.NewBatch(batch.WithCapacity(6 * 1000))
type Option func(*options)

// options holds optional configuration for Batch creation.
type options struct {
	capacity int
	view     View
}

// defaultOptions returns the default batch options.
func defaultOptions() options {
	return options{
		capacity: 0, // grow on demand
	}
}

// WithCapacity reserves room for n vertices up front.
// This is an allocation hint only and never changes what is drawn.
func WithCapacity(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.capacity = n
		}
	}
}

// WithView declares v as the batch view, as if SetView(v) were called right
// after construction.
func WithView(v View) Option {
	return func(o *options) {
		o.view = v
	}
}
