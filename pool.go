package jsonvalue

import (
	"context"
	"runtime"

	"github.com/jackc/puddle/v2"
)

// DefaultMaxRetainedStack is the largest scratch stack capacity, in elements,
// that a codec keeps when it is returned to a [Pool]. See [PoolConfig.MaxRetainedStack].
const DefaultMaxRetainedStack = 64 * 1024

// PoolConfig holds configuration parameters for creating a [Pool].
type PoolConfig struct {
	// Callbacks are run on pool events. A nil OnParseError is replaced by
	// [DefaultOnParseError].
	Callbacks Callbacks

	// MaxRetainedStack caps the capacity, in elements, of any scratch stack a
	// codec may carry back into the pool. Codecs that grew larger while
	// handling a big document are destroyed on release instead of pinning the
	// memory. Defaults to [DefaultMaxRetainedStack] if zero or negative.
	MaxRetainedStack int

	// MaxSize defines the maximum number of codecs, and so the maximum number
	// of concurrent Parse/Stringify calls served by the pool. If zero or
	// negative, it defaults to `min(runtime.NumCPU(), runtime.GOMAXPROCS(-1)) * 2`.
	// Calls beyond that block until a codec is released or their context ends.
	MaxSize int32
}

// codec is the pooled resource: one set of parse stacks and one output stack.
type codec struct {
	p   parser
	out stack[byte]
}

// reset drops all content while keeping capacity, and reports the largest
// stack capacity held.
func (c *codec) reset() int {
	c.p.bytes.reset()
	c.p.values.reset()
	c.p.members.reset()
	c.out.reset()

	return max(c.p.bytes.cap(), c.p.values.cap(), c.p.members.cap(), c.out.cap())
}

// Pool bounds and recycles the scratch memory used for parsing and
// stringifying, for services that handle many documents concurrently.
//
// Each call acquires a codec from the pool, so at most [PoolConfig.MaxSize]
// calls run at once. A codec keeps the capacity its stacks grew to, never
// their content: every stack is emptied and zeroed before the codec is
// released. Values returned by the pool are independent of it.
//
// Use [NewPool] to create instances. A Pool is safe for concurrent use.
type Pool struct {
	pool      *puddle.Pool[*codec] // Underlying resource pool from github.com/jackc/puddle/v2
	callbacks Callbacks
	retain    int
}

// PoolStat is a snapshot of [Pool] usage.
type PoolStat struct {
	AcquireCount      int64 // Cumulative successful acquires.
	AcquiredCodecs    int32 // Codecs currently serving a call.
	IdleCodecs        int32 // Codecs waiting in the pool.
	TotalCodecs       int32 // Codecs currently alive.
	MaxCodecs         int32 // Configured maximum.
	CanceledAcquires  int64 // Acquires abandoned because their context ended.
	EmptyAcquireCount int64 // Acquires that had to wait for or construct a codec.
}

// NewPool creates a new [Pool].
//
// Example:
//
//	pool, err := jsonvalue.NewPool(jsonvalue.PoolConfig{MaxSize: 8})
//	if err != nil {
//	    log.Fatalf("Failed to create pool: %v", err)
//	}
//	defer pool.Close()
//
//	v, err := pool.Parse(ctx, body)
func NewPool(config PoolConfig) (*Pool, error) {
	if config.MaxSize <= 0 {
		//nolint:gosec,mnd //How many cpus do you think we have? Puddle requires int32.
		config.MaxSize = int32(min(runtime.NumCPU(), runtime.GOMAXPROCS(-1)) * 2)
	}

	if config.MaxRetainedStack <= 0 {
		config.MaxRetainedStack = DefaultMaxRetainedStack
	}

	if config.Callbacks.OnParseError == nil {
		config.Callbacks.OnParseError = DefaultOnParseError
	}

	pool, err := puddle.NewPool[*codec](&puddle.Config[*codec]{
		Constructor: func(context.Context) (*codec, error) { return &codec{}, nil },
		Destructor:  func(*codec) {},
		MaxSize:     config.MaxSize,
	})
	if err != nil {
		return nil, err
	}

	return &Pool{pool: pool, callbacks: config.Callbacks, retain: config.MaxRetainedStack}, nil
}

// release empties the codec and returns it to the pool, or destroys it when
// its stacks outgrew the retention limit.
func (p *Pool) release(ctx context.Context, res *puddle.Resource[*codec]) {
	if capacity := res.Value().reset(); capacity > p.retain {
		p.callbacks.runOnDiscard(ctx, capacity)
		res.Destroy()

		return
	}

	res.Release()
}

// Parse is [Parse] using pooled scratch stacks. ctx bounds only the wait for a
// free codec; the parse itself is not interruptible.
//
// Failures run [Callbacks.OnParseError] before returning.
func (p *Pool) Parse(ctx context.Context, text []byte) (Value, error) {
	res, err := p.pool.Acquire(ctx)
	if err != nil {
		return Value{}, err
	}

	var v Value

	err = res.Value().p.parse(&v, text)
	p.release(ctx, res)

	if err != nil {
		p.callbacks.runOnParseError(ctx, text, err)
		return Value{}, err
	}

	return v, nil
}

// Stringify is [Stringify] using a pooled output stack. The returned slice is
// a fresh copy owned by the caller and, like [Stringify], is followed by a
// zero byte in its backing array.
func (p *Pool) Stringify(ctx context.Context, v *Value) ([]byte, error) {
	res, err := p.pool.Acquire(ctx)
	if err != nil {
		return nil, err
	}

	c := res.Value()
	stringifyValue(&c.out, v)

	n := c.out.len()
	text := make([]byte, n, n+1)
	copy(text, c.out.buf[:n])

	p.release(ctx, res)

	return text, nil
}

// Stat returns a snapshot of pool usage.
func (p *Pool) Stat() PoolStat {
	s := p.pool.Stat()

	return PoolStat{
		AcquireCount:      s.AcquireCount(),
		AcquiredCodecs:    s.AcquiredResources(),
		IdleCodecs:        s.IdleResources(),
		TotalCodecs:       s.TotalResources(),
		MaxCodecs:         s.MaxResources(),
		CanceledAcquires:  s.CanceledAcquireCount(),
		EmptyAcquireCount: s.EmptyAcquireCount(),
	}
}

// Close closes all idle codecs and waits for acquired ones to be released.
// Calls made after Close return [puddle.ErrClosedPool].
func (p *Pool) Close() {
	p.pool.Close()
}
