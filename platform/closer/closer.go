package closer

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"
)

type Logger interface {
	Info(ctx context.Context, msg string, fields ...zap.Field)
	Error(ctx context.Context, msg string, fields ...zap.Field)
}

type namedFunc struct {
	name string
	fn   func(ctx context.Context) error
}

// Closer runs registered shutdown functions in reverse registration order,
// so resources built later (which may depend on earlier ones) go first.
type Closer struct {
	mu     sync.Mutex
	once   sync.Once
	funcs  []namedFunc
	logger Logger
}

var globalCloser = New()

func New() *Closer {
	return &Closer{logger: noopLogger{}}
}

func SetLogger(l Logger)                                       { globalCloser.SetLogger(l) }
func Add(fns ...func(ctx context.Context) error)               { globalCloser.Add(fns...) }
func AddNamed(name string, fn func(ctx context.Context) error) { globalCloser.AddNamed(name, fn) }
func CloseAll(ctx context.Context) error                       { return globalCloser.CloseAll(ctx) }

func (c *Closer) SetLogger(l Logger) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.logger = l
}

func (c *Closer) Add(fns ...func(ctx context.Context) error) {
	for _, fn := range fns {
		c.AddNamed("anonymous", fn)
	}
}

func (c *Closer) AddNamed(name string, fn func(ctx context.Context) error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.funcs = append(c.funcs, namedFunc{name: name, fn: fn})
}

// CloseAll is safe to call more than once; only the first call does work.
func (c *Closer) CloseAll(ctx context.Context) error {
	var result error

	c.once.Do(func() {
		c.mu.Lock()
		funcs := c.funcs
		c.funcs = nil
		log := c.logger
		c.mu.Unlock()

		var errs []error
		for i := len(funcs) - 1; i >= 0; i-- {
			f := funcs[i]
			if err := ctx.Err(); err != nil {
				errs = append(errs, fmt.Errorf("closer: %s skipped: %w", f.name, err))
				continue
			}

			log.Info(ctx, "closing", zap.String("name", f.name))
			if err := f.fn(ctx); err != nil {
				log.Error(ctx, "close failed", zap.String("name", f.name), zap.Error(err))
				errs = append(errs, fmt.Errorf("closer: %s: %w", f.name, err))
				continue
			}
			log.Info(ctx, "closed", zap.String("name", f.name))
		}

		result = errors.Join(errs...)
	})

	return result
}

type noopLogger struct{}

func (noopLogger) Info(context.Context, string, ...zap.Field)  {}
func (noopLogger) Error(context.Context, string, ...zap.Field) {}
